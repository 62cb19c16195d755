package services

import (
	"time"

	"github.com/farhanhossain/lunch-vote/models"
	"github.com/farhanhossain/lunch-vote/utils"
	"gorm.io/gorm"
)

// PersistPolicy controls when the arbiter writes a VoteResult row. The
// reference behavior records history only when the suppression rule
// overrides the top entry; PersistAlways records every announced winner.
type PersistPolicy int

const (
	PersistOnOverride PersistPolicy = iota
	PersistAlways
)

// VoteOutcome is the announced winner for the day.
type VoteOutcome struct {
	RestaurantName string `json:"restaurant_name"`
	MenuName       string `json:"menu_name"`
}

type ResultService struct {
	DB     *gorm.DB
	Policy PersistPolicy

	votes *VoteService
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{DB: db, votes: NewVoteService(db)}
}

// TodaysResult picks today's winning restaurant and menu from the tally,
// demoting a restaurant to runner-up when it would otherwise win a third
// consecutive day.
func (rs *ResultService) TodaysResult() (*VoteOutcome, error) {
	status, err := rs.votes.VoteStatus()
	if err != nil {
		return nil, err
	}
	if len(status) == 0 {
		return nil, ErrNoVotesToday
	}

	top := status[0]

	today := startOfDay(time.Now())
	wonYesterday, err := rs.resultExistsSince(top.RestaurantName, today.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	wonInTwoDays, err := rs.resultExistsSince(top.RestaurantName, today.AddDate(0, 0, -2))
	if err != nil {
		return nil, err
	}

	if wonYesterday && wonInTwoDays {
		if len(status) < 2 {
			return nil, ErrNoRunnerUp
		}
		runnerUp := status[1]
		if err := rs.record(runnerUp.RestaurantName); err != nil {
			return nil, err
		}
		utils.InfoLogger.Printf("Winner %q suppressed after consecutive wins, promoting %q",
			top.RestaurantName, runnerUp.RestaurantName)
		return &VoteOutcome{RestaurantName: runnerUp.RestaurantName, MenuName: runnerUp.MenuName}, nil
	}

	if rs.Policy == PersistAlways {
		if err := rs.record(top.RestaurantName); err != nil {
			return nil, err
		}
	}
	return &VoteOutcome{RestaurantName: top.RestaurantName, MenuName: top.MenuName}, nil
}

// resultExistsSince reports whether the restaurant has a VoteResult row on
// or after the given instant.
func (rs *ResultService) resultExistsSince(restaurantName string, since time.Time) (bool, error) {
	var count int64
	err := rs.DB.Model(&models.VoteResult{}).
		Where("restaurant_name = ? AND created_at >= ?", restaurantName, since).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (rs *ResultService) record(restaurantName string) error {
	return rs.DB.Create(&models.VoteResult{RestaurantName: restaurantName}).Error
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
