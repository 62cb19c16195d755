package controllers

import "github.com/farhanhossain/lunch-vote/models"

// Response payloads are kept separate from the GORM models so the wire shapes
// stay stable when columns change.

type RestaurantPayload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type MenuPayload struct {
	ID    uint              `json:"id"`
	Name  string            `json:"name"`
	Owner RestaurantPayload `json:"owner"`
}

func serializeRestaurant(r models.Restaurant) RestaurantPayload {
	return RestaurantPayload{ID: r.ID, Name: r.Name}
}

func serializeMenu(m models.Menu) MenuPayload {
	return MenuPayload{
		ID:    m.ID,
		Name:  m.Name,
		Owner: serializeRestaurant(m.Restaurant),
	}
}

func serializeMenus(menus []models.Menu) []MenuPayload {
	out := make([]MenuPayload, 0, len(menus))
	for _, m := range menus {
		out = append(out, serializeMenu(m))
	}
	return out
}
