package services

import (
	"testing"

	"github.com/farhanhossain/lunch-vote/models"
	"github.com/stretchr/testify/assert"
)

func TestSaveVoteOncePerDay(t *testing.T) {
	db := setupServiceDB(t)
	rs := NewRestaurantService(db)
	vs := NewVoteService(db)

	seedUser(t, db, "res", models.RoleOwner)
	employee := seedUser(t, db, "user", models.RoleEmployee)

	_, err := rs.CreateRestaurant("example", "res")
	assert.NoError(t, err)
	menu1, err := rs.CreateMenu("alu", "res")
	assert.NoError(t, err)
	menu2, err := rs.CreateMenu("kola", "res")
	assert.NoError(t, err)

	voted, err := vs.SaveVote(employee.Username, menu1.ID)
	assert.NoError(t, err)
	assert.True(t, voted)

	// Same employee, same day, different menu -> silently rejected
	voted, err = vs.SaveVote(employee.Username, menu2.ID)
	assert.NoError(t, err)
	assert.False(t, voted)

	var count int64
	db.Model(&models.Vote{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSaveVoteUnknownMenu(t *testing.T) {
	db := setupServiceDB(t)
	vs := NewVoteService(db)

	seedUser(t, db, "user", models.RoleEmployee)

	_, err := vs.SaveVote("user", 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveVoteUnknownEmployee(t *testing.T) {
	db := setupServiceDB(t)
	vs := NewVoteService(db)

	_, err := vs.SaveVote("ghost", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVoteStatusGrouping(t *testing.T) {
	db := setupServiceDB(t)
	rs := NewRestaurantService(db)
	vs := NewVoteService(db)

	seedUser(t, db, "res", models.RoleOwner)
	e1 := seedUser(t, db, "user", models.RoleEmployee)
	e2 := seedUser(t, db, "user2", models.RoleEmployee)
	e3 := seedUser(t, db, "user3", models.RoleEmployee)

	_, err := rs.CreateRestaurant("example", "res")
	assert.NoError(t, err)
	menu1, err := rs.CreateMenu("alu", "res")
	assert.NoError(t, err)
	menu2, err := rs.CreateMenu("kola", "res")
	assert.NoError(t, err)

	for _, vote := range []struct {
		employee string
		menuID   uint
	}{
		{e1.Username, menu1.ID},
		{e2.Username, menu1.ID},
		{e3.Username, menu2.ID},
	} {
		voted, err := vs.SaveVote(vote.employee, vote.menuID)
		assert.NoError(t, err)
		assert.True(t, voted)
	}

	status, err := vs.VoteStatus()
	assert.NoError(t, err)
	assert.Equal(t, []VoteStatusEntry{
		{RestaurantName: "example", MenuName: "alu", VoteCount: 2},
		{RestaurantName: "example", MenuName: "kola", VoteCount: 1},
	}, status)
}

func TestVoteStatusTieKeepsFirstVoteOrder(t *testing.T) {
	db := setupServiceDB(t)
	rs := NewRestaurantService(db)
	vs := NewVoteService(db)

	seedUser(t, db, "res", models.RoleOwner)
	e1 := seedUser(t, db, "user", models.RoleEmployee)
	e2 := seedUser(t, db, "user2", models.RoleEmployee)

	_, err := rs.CreateRestaurant("example", "res")
	assert.NoError(t, err)
	menu1, err := rs.CreateMenu("alu", "res")
	assert.NoError(t, err)
	menu2, err := rs.CreateMenu("kola", "res")
	assert.NoError(t, err)

	// kola voted first: on equal counts it must come first
	voted, err := vs.SaveVote(e1.Username, menu2.ID)
	assert.NoError(t, err)
	assert.True(t, voted)
	voted, err = vs.SaveVote(e2.Username, menu1.ID)
	assert.NoError(t, err)
	assert.True(t, voted)

	status, err := vs.VoteStatus()
	assert.NoError(t, err)
	assert.Len(t, status, 2)
	assert.Equal(t, "kola", status[0].MenuName)
	assert.Equal(t, "alu", status[1].MenuName)
}
