package services

import (
	"errors"
	"time"

	"github.com/farhanhossain/lunch-vote/models"
	"github.com/farhanhossain/lunch-vote/utils"
	"gorm.io/gorm"
)

// VoteStatusEntry is one row of today's tally: votes for one menu, with the
// restaurant that serves it.
type VoteStatusEntry struct {
	RestaurantName string `json:"restaurant_name"`
	MenuName       string `json:"menu_name"`
	VoteCount      int64  `json:"vote_count"`
}

type VoteService struct {
	DB *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{DB: db}
}

// SaveVote records one vote by the employee for the menu, at most once per
// calendar day. A same-day duplicate returns (false, nil) — not an error.
// The composite unique index on (employee_id, vote_date) enforces the rule
// even under concurrent requests.
func (vs *VoteService) SaveVote(employeeUsername string, menuID uint) (bool, error) {
	var employee models.User
	if err := vs.DB.Where("username = ?", employeeUsername).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	var menu models.Menu
	if err := vs.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	vote := models.Vote{
		MenuID:     menu.ID,
		EmployeeID: employee.ID,
		VoteDate:   models.VoteDay(time.Now()),
	}
	if err := vs.DB.Create(&vote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	utils.InfoLogger.Printf("Vote recorded: employee=%s menu=%d", employeeUsername, menuID)
	return true, nil
}

// VoteStatus tallies today's votes grouped by menu. Ordering is policy:
// vote_count descending, then the id of the group's first vote ascending,
// so the tally is deterministic on every database.
func (vs *VoteService) VoteStatus() ([]VoteStatusEntry, error) {
	entries := []VoteStatusEntry{}
	err := vs.DB.Model(&models.Vote{}).
		Select("restaurants.name AS restaurant_name, menus.name AS menu_name, COUNT(votes.id) AS vote_count").
		Joins("JOIN menus ON menus.id = votes.menu_id").
		Joins("JOIN restaurants ON restaurants.id = menus.restaurant_id").
		Where("votes.vote_date = ?", models.VoteDay(time.Now())).
		Group("menus.id, menus.name, restaurants.name").
		Order("COUNT(votes.id) DESC, MIN(votes.id) ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
