package routes

import (
	"favorites_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	User      *handlers.UserHandler
	Planet    *handlers.PlanetHandler
	Character *handlers.CharacterHandler
	Favorite  *handlers.FavoriteHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	root := router.Group("")

	NewUserRoutes(h.User, h.Favorite).RegisterRoutes(root)
	NewPlanetRoutes(h.Planet).RegisterRoutes(root)
	NewCharacterRoutes(h.Character).RegisterRoutes(root)

	router.GET("/", handlers.NewSitemapHandler(router.Routes).Sitemap)
}
