package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const DefaultPageLimit = 10

// Page is the paginated list envelope: count plus absolute next/previous
// links, null when there is no further page.
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// PageParams reads limit/offset query parameters, falling back to the
// default page size. Negative or malformed values are ignored.
func PageParams(c *gin.Context) (limit, offset int) {
	limit = DefaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

// NewPage builds the envelope around one page of results.
func NewPage(c *gin.Context, count int64, limit, offset int, results interface{}) Page {
	page := Page{Count: count, Results: results}

	if int64(offset+limit) < count {
		next := pageURL(c, limit, offset+limit)
		page.Next = &next
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		previous := pageURL(c, limit, prev)
		page.Previous = &previous
	}
	return page
}

func pageURL(c *gin.Context, limit, offset int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s?limit=%d&offset=%d",
		scheme, c.Request.Host, c.Request.URL.Path, limit, offset)
}
