package controllers

import (
	"errors"
	"net/http"

	"github.com/farhanhossain/lunch-vote/services"
	"github.com/farhanhossain/lunch-vote/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB      *gorm.DB
	service *services.RestaurantService
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db, service: services.NewRestaurantService(db)}
}

// GetAllRestaurants -> GET /restaurants
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.service.ListRestaurants()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	payload := make([]RestaurantPayload, 0, len(restaurants))
	for _, r := range restaurants {
		payload = append(payload, serializeRestaurant(r))
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", payload)
}

// CreateRestaurant -> POST /restaurants
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	username := c.GetString("username")
	restaurant, err := rc.service.CreateRestaurant(req.Name, username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrOwnerHasRestaurant):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", serializeRestaurant(*restaurant))
}

// CreateMenu -> POST /restaurants/create-menu
func (rc *RestaurantController) CreateMenu(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	username := c.GetString("username")
	menu, err := rc.service.CreateMenu(req.Name, username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("no restaurant registered for this owner"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu created", serializeMenu(*menu))
}

// GetAllMenu -> GET /restaurants/get-all-menu
// Response shape is the bare {"menus": [...]} object the clients expect.
func (rc *RestaurantController) GetAllMenu(c *gin.Context) {
	username := c.GetString("username")
	restaurant, err := rc.service.RestaurantForOwner(username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("no restaurant registered for this owner"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	menus, err := rc.service.MenusForRestaurant(restaurant.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"menus": serializeMenus(menus)})
}
