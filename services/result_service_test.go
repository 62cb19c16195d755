package services

import (
	"testing"
	"time"

	"github.com/farhanhossain/lunch-vote/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// seedTwoRestaurantTally -> Restaurant 1 gets two votes for "alu",
// Restaurant 2 gets one vote for "chicken".
func seedTwoRestaurantTally(t *testing.T, db *gorm.DB) {
	t.Helper()

	rs := NewRestaurantService(db)
	vs := NewVoteService(db)

	seedUser(t, db, "res", models.RoleOwner)
	seedUser(t, db, "res1", models.RoleOwner)
	e1 := seedUser(t, db, "user", models.RoleEmployee)
	e2 := seedUser(t, db, "user2", models.RoleEmployee)
	e3 := seedUser(t, db, "user3", models.RoleEmployee)

	_, err := rs.CreateRestaurant("Restaurant 1", "res")
	assert.NoError(t, err)
	_, err = rs.CreateRestaurant("Restaurant 2", "res1")
	assert.NoError(t, err)

	alu, err := rs.CreateMenu("alu", "res")
	assert.NoError(t, err)
	chicken, err := rs.CreateMenu("chicken", "res1")
	assert.NoError(t, err)

	for _, vote := range []struct {
		employee string
		menuID   uint
	}{
		{e1.Username, alu.ID},
		{e2.Username, alu.ID},
		{e3.Username, chicken.ID},
	} {
		voted, err := vs.SaveVote(vote.employee, vote.menuID)
		assert.NoError(t, err)
		assert.True(t, voted)
	}
}

// seedPastWin backdates a winner record by the given number of days.
func seedPastWin(t *testing.T, db *gorm.DB, restaurantName string, daysAgo int) {
	t.Helper()
	result := models.VoteResult{
		RestaurantName: restaurantName,
		CreatedAt:      time.Now().AddDate(0, 0, -daysAgo),
	}
	if err := db.Create(&result).Error; err != nil {
		t.Fatalf("failed to seed past win: %v", err)
	}
}

func TestResultWithoutSuppression(t *testing.T) {
	db := setupServiceDB(t)
	seedTwoRestaurantTally(t, db)

	outcome, err := NewResultService(db).TodaysResult()
	assert.NoError(t, err)
	assert.Equal(t, &VoteOutcome{RestaurantName: "Restaurant 1", MenuName: "alu"}, outcome)

	// Reference behavior: no history row when the top entry wins outright
	var count int64
	db.Model(&models.VoteResult{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestResultSuppressedOnThirdConsecutiveDay(t *testing.T) {
	db := setupServiceDB(t)
	seedTwoRestaurantTally(t, db)
	seedPastWin(t, db, "Restaurant 1", 1)
	seedPastWin(t, db, "Restaurant 1", 2)

	outcome, err := NewResultService(db).TodaysResult()
	assert.NoError(t, err)
	assert.Equal(t, &VoteOutcome{RestaurantName: "Restaurant 2", MenuName: "chicken"}, outcome)

	// Exactly one new record, for the promoted runner-up
	var promoted int64
	db.Model(&models.VoteResult{}).Where("restaurant_name = ?", "Restaurant 2").Count(&promoted)
	assert.Equal(t, int64(1), promoted)
}

func TestResultNotSuppressedAfterSingleWin(t *testing.T) {
	db := setupServiceDB(t)
	seedTwoRestaurantTally(t, db)
	// A single win two days ago misses the one-day window, so no suppression
	seedPastWin(t, db, "Restaurant 1", 2)

	outcome, err := NewResultService(db).TodaysResult()
	assert.NoError(t, err)
	assert.Equal(t, "Restaurant 1", outcome.RestaurantName)
}

func TestResultNoVotesToday(t *testing.T) {
	db := setupServiceDB(t)

	_, err := NewResultService(db).TodaysResult()
	assert.ErrorIs(t, err, ErrNoVotesToday)
}

func TestResultNoRunnerUp(t *testing.T) {
	db := setupServiceDB(t)

	rs := NewRestaurantService(db)
	vs := NewVoteService(db)
	seedUser(t, db, "res", models.RoleOwner)
	employee := seedUser(t, db, "user", models.RoleEmployee)
	_, err := rs.CreateRestaurant("Restaurant 1", "res")
	assert.NoError(t, err)
	menu, err := rs.CreateMenu("alu", "res")
	assert.NoError(t, err)
	voted, err := vs.SaveVote(employee.Username, menu.ID)
	assert.NoError(t, err)
	assert.True(t, voted)

	seedPastWin(t, db, "Restaurant 1", 1)
	seedPastWin(t, db, "Restaurant 1", 2)

	_, err = NewResultService(db).TodaysResult()
	assert.ErrorIs(t, err, ErrNoRunnerUp)
}

func TestResultPersistAlways(t *testing.T) {
	db := setupServiceDB(t)
	seedTwoRestaurantTally(t, db)

	service := NewResultService(db)
	service.Policy = PersistAlways

	outcome, err := service.TodaysResult()
	assert.NoError(t, err)
	assert.Equal(t, "Restaurant 1", outcome.RestaurantName)

	var count int64
	db.Model(&models.VoteResult{}).Where("restaurant_name = ?", "Restaurant 1").Count(&count)
	assert.Equal(t, int64(1), count)
}
