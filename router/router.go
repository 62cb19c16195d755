package router

import (
	"github.com/farhanhossain/lunch-vote/controllers"
	"github.com/farhanhossain/lunch-vote/middlewares"
	"github.com/farhanhossain/lunch-vote/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	menuCtrl := controllers.NewMenuController(db)
	voteCtrl := controllers.NewVoteController(db)
	resultCtrl := controllers.NewVoteResultController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// Winner announcement is open to every authenticated account
		auth.GET("/vote-results", resultCtrl.GetVoteResult)

		// -- RESTAURANT OWNER --
		owner := auth.Group("/restaurants")
		owner.Use(middlewares.RequireRole(models.RoleOwner))
		{
			owner.GET("", restaurantCtrl.GetAllRestaurants)
			owner.POST("", restaurantCtrl.CreateRestaurant)
			owner.POST("/create-menu", restaurantCtrl.CreateMenu)
			owner.GET("/get-all-menu", restaurantCtrl.GetAllMenu)
		}

		// -- EMPLOYEE --
		employee := auth.Group("/")
		employee.Use(middlewares.RequireRole(models.RoleEmployee))
		{
			employee.GET("/menus", menuCtrl.GetAvailableMenus)
			employee.GET("/votes", voteCtrl.GetVoteStatus)
			employee.POST("/votes", voteCtrl.CastVote)
		}
	}

	return r
}
