package controllers

import (
	"errors"
	"net/http"

	"github.com/farhanhossain/lunch-vote/services"
	"github.com/farhanhossain/lunch-vote/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoteController struct {
	DB      *gorm.DB
	service *services.VoteService
}

func NewVoteController(db *gorm.DB) *VoteController {
	return &VoteController{DB: db, service: services.NewVoteService(db)}
}

// GetVoteStatus -> GET /votes
// Today's tally, grouped by menu with the owning restaurant.
func (vc *VoteController) GetVoteStatus(c *gin.Context) {
	status, err := vc.service.VoteStatus()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vote_status": status})
}

// CastVote -> POST /votes
// A same-day repeat by the same employee is a no-op, answered with 200.
func (vc *VoteController) CastVote(c *gin.Context) {
	var req struct {
		MenuID uint `json:"menu_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	username := c.GetString("username")
	voted, err := vc.service.SaveVote(username, req.MenuID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if !voted {
		utils.RespondJSON(c, http.StatusOK, "Already voted today", gin.H{"voted": false})
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Vote recorded", gin.H{"voted": true})
}
