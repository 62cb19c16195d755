package services

import (
	"errors"

	"github.com/farhanhossain/lunch-vote/models"
	"github.com/farhanhossain/lunch-vote/utils"
	"gorm.io/gorm"
)

type RestaurantService struct {
	DB *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{DB: db}
}

// CreateRestaurant registers a restaurant for the owner resolved by username.
// The unique index on owner_id turns a second registration into
// ErrOwnerHasRestaurant instead of a silent duplicate.
func (rs *RestaurantService) CreateRestaurant(name, ownerUsername string) (*models.Restaurant, error) {
	var owner models.User
	if err := rs.DB.Where("username = ?", ownerUsername).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	restaurant := models.Restaurant{
		OwnerID: owner.ID,
		Name:    name,
	}
	if err := rs.DB.Create(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrOwnerHasRestaurant
		}
		return nil, err
	}
	restaurant.Owner = owner

	utils.InfoLogger.Printf("Restaurant %q registered for owner %s", name, ownerUsername)
	return &restaurant, nil
}

// ListRestaurants returns every restaurant, newest first.
func (rs *RestaurantService) ListRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := rs.DB.Preload("Owner").Order("id DESC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// RestaurantForOwner resolves the single restaurant owned by the given account.
func (rs *RestaurantService) RestaurantForOwner(ownerUsername string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := rs.DB.Preload("Owner").
		Joins("JOIN users ON users.id = restaurants.owner_id").
		Where("users.username = ?", ownerUsername).
		First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// CreateMenu adds a menu under the restaurant owned by ownerUsername.
func (rs *RestaurantService) CreateMenu(name, ownerUsername string) (*models.Menu, error) {
	restaurant, err := rs.RestaurantForOwner(ownerUsername)
	if err != nil {
		return nil, err
	}

	menu := models.Menu{
		RestaurantID: restaurant.ID,
		Name:         name,
		IsAvailable:  true,
	}
	if err := rs.DB.Create(&menu).Error; err != nil {
		return nil, err
	}
	menu.Restaurant = *restaurant

	utils.InfoLogger.Printf("Menu %q created for restaurant %q", name, restaurant.Name)
	return &menu, nil
}

// AvailableMenus lists menus open for voting, ascending id.
func (rs *RestaurantService) AvailableMenus() ([]models.Menu, error) {
	var menus []models.Menu
	err := rs.DB.Preload("Restaurant").
		Where("is_available = ?", true).
		Order("id ASC").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// AvailableMenusPage returns one page of the available-menu list plus the
// total count, for the paginated employee-facing endpoint.
func (rs *RestaurantService) AvailableMenusPage(limit, offset int) ([]models.Menu, int64, error) {
	base := rs.DB.Model(&models.Menu{}).Where("is_available = ?", true)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var menus []models.Menu
	err := rs.DB.Preload("Restaurant").
		Where("is_available = ?", true).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&menus).Error
	if err != nil {
		return nil, 0, err
	}
	return menus, count, nil
}

// MenusForRestaurant lists every menu belonging to one restaurant.
func (rs *RestaurantService) MenusForRestaurant(restaurantID uint) ([]models.Menu, error) {
	var menus []models.Menu
	err := rs.DB.Preload("Restaurant").
		Where("restaurant_id = ?", restaurantID).
		Order("id ASC").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}
