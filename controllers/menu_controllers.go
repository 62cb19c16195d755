package controllers

import (
	"net/http"

	"github.com/farhanhossain/lunch-vote/services"
	"github.com/farhanhossain/lunch-vote/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB      *gorm.DB
	service *services.RestaurantService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db, service: services.NewRestaurantService(db)}
}

// GetAvailableMenus -> GET /menus
// Paginated list of menus open for voting, ascending id.
func (mc *MenuController) GetAvailableMenus(c *gin.Context) {
	limit, offset := utils.PageParams(c)

	menus, count, err := mc.service.AvailableMenusPage(limit, offset)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	page := utils.NewPage(c, count, limit, offset, serializeMenus(menus))
	c.JSON(http.StatusOK, page)
}
