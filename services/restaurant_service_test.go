package services

import (
	"testing"

	"github.com/farhanhossain/lunch-vote/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateRestaurantUnknownOwner(t *testing.T) {
	db := setupServiceDB(t)
	rs := NewRestaurantService(db)

	_, err := rs.CreateRestaurant("example", "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRestaurantOncePerOwner(t *testing.T) {
	db := setupServiceDB(t)
	rs := NewRestaurantService(db)

	seedUser(t, db, "res", models.RoleOwner)

	first, err := rs.CreateRestaurant("example", "res")
	assert.NoError(t, err)
	assert.Equal(t, "example", first.Name)

	_, err = rs.CreateRestaurant("second place", "res")
	assert.ErrorIs(t, err, ErrOwnerHasRestaurant)
}

func TestCreateMenuScoping(t *testing.T) {
	db := setupServiceDB(t)
	rs := NewRestaurantService(db)

	seedUser(t, db, "res", models.RoleOwner)
	restaurant, err := rs.CreateRestaurant("example", "res")
	assert.NoError(t, err)

	menu, err := rs.CreateMenu("kola", "res")
	assert.NoError(t, err)
	assert.Equal(t, restaurant.ID, menu.RestaurantID)

	menus, err := rs.MenusForRestaurant(restaurant.ID)
	assert.NoError(t, err)
	assert.Len(t, menus, 1)
	assert.Equal(t, "kola", menus[0].Name)
	assert.Equal(t, "example", menus[0].Restaurant.Name)
}

func TestCreateMenuWithoutRestaurant(t *testing.T) {
	db := setupServiceDB(t)
	rs := NewRestaurantService(db)

	seedUser(t, db, "res", models.RoleOwner)

	_, err := rs.CreateMenu("kola", "res")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAvailableMenusOrderedAscending(t *testing.T) {
	db := setupServiceDB(t)
	rs := NewRestaurantService(db)

	seedUser(t, db, "res", models.RoleOwner)
	_, err := rs.CreateRestaurant("example", "res")
	assert.NoError(t, err)

	_, err = rs.CreateMenu("alu", "res")
	assert.NoError(t, err)
	kola, err := rs.CreateMenu("kola", "res")
	assert.NoError(t, err)

	// Unavailable menus stay out of the list
	err = db.Model(&models.Menu{}).Where("id = ?", kola.ID).
		Update("is_available", false).Error
	assert.NoError(t, err)

	menus, err := rs.AvailableMenus()
	assert.NoError(t, err)
	assert.Len(t, menus, 1)
	assert.Equal(t, "alu", menus[0].Name)

	page, count, err := rs.AvailableMenusPage(10, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, page, 1)
}
