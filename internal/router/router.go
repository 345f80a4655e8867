package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/auth"
	"github.com/keysaw7/MenuMaster-sub000/internal/dailymenu"
	"github.com/keysaw7/MenuMaster-sub000/internal/ingredient"
	"github.com/keysaw7/MenuMaster-sub000/internal/logger"
	"github.com/keysaw7/MenuMaster-sub000/internal/menu"
	"github.com/keysaw7/MenuMaster-sub000/internal/middleware"
	"github.com/keysaw7/MenuMaster-sub000/internal/restaurant"
	"github.com/keysaw7/MenuMaster-sub000/internal/weather"
)

type Deps struct {
	Log         *logrus.Logger
	Tokens      middleware.TokenValidator
	CORSOrigins []string

	Auth        *auth.Handler
	Restaurants *restaurant.Handler
	Ingredients *ingredient.Handler
	Menus       *menu.Handler
	Weather     *weather.Handler
	DailyMenus  *dailymenu.Handler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		logger.GinMiddleware(d.Log),
		gin.Recovery(),
	)

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", d.Auth.Register)
		authGroup.POST("/login", d.Auth.Login)
	}

	api := r.Group("/")
	api.Use(middleware.AuthMiddleware(d.Tokens))

	// ───────────────────────── WEATHER ─────────────────────────
	api.GET("/weather", d.Weather.GetWeather)

	// ───────────────────────── RESTAURANTS ─────────────────────────
	restaurants := api.Group("/restaurants")
	{
		restaurants.POST("", d.Restaurants.CreateRestaurant)
		restaurants.GET("/me", d.Restaurants.ListMyRestaurants)
		restaurants.GET("/:id", d.Restaurants.GetRestaurant)
		restaurants.DELETE("/:id", d.Restaurants.DeleteRestaurant)

		restaurants.GET("/:id/ingredients", d.Ingredients.List)
		restaurants.POST("/:id/ingredients", d.Ingredients.Add)
		restaurants.PATCH("/:id/ingredients/:inventoryId", d.Ingredients.SetAvailability)
		restaurants.DELETE("/:id/ingredients/:inventoryId", d.Ingredients.Delete)
		restaurants.DELETE("/:id/ingredients", d.Ingredients.DeleteAll)

		restaurants.GET("/:id/menu", d.Menus.Get)
		restaurants.PUT("/:id/menu", d.Menus.Put)
	}

	// ───────────────────────── DAILY MENUS ─────────────────────────
	d.DailyMenus.Register(api)

	return r
}
