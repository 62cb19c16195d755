package controllers

import (
	"errors"
	"net/http"

	"github.com/farhanhossain/lunch-vote/services"
	"github.com/farhanhossain/lunch-vote/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoteResultController struct {
	DB      *gorm.DB
	service *services.ResultService
}

func NewVoteResultController(db *gorm.DB) *VoteResultController {
	return &VoteResultController{DB: db, service: services.NewResultService(db)}
}

// GetVoteResult -> GET /vote-results
// Runs the arbiter and answers with the bare winner object.
func (vrc *VoteResultController) GetVoteResult(c *gin.Context) {
	outcome, err := vrc.service.TodaysResult()
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoVotesToday):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrNoRunnerUp):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, outcome)
}
