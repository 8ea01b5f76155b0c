package routes

import (
	"favorites_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type UserRoutes struct {
	userHandler     *handlers.UserHandler
	favoriteHandler *handlers.FavoriteHandler
}

func NewUserRoutes(userHandler *handlers.UserHandler, favoriteHandler *handlers.FavoriteHandler) *UserRoutes {
	return &UserRoutes{
		userHandler:     userHandler,
		favoriteHandler: favoriteHandler,
	}
}

func (r *UserRoutes) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/user")
	{
		users.GET("", r.userHandler.ListUsers)
		users.POST("", r.userHandler.CreateUser)
		users.GET("/:id", r.userHandler.GetUser)
		users.PUT("/:id", r.userHandler.UpdateUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)

		// Favorites hang off the user. category is planet or character.
		users.GET("/:id/favorites", r.favoriteHandler.ListFavorites)
		users.POST("/:id/:category/:item_id", r.favoriteHandler.AddFavorite)
		users.DELETE("/:id/:category/:item_id", r.favoriteHandler.RemoveFavorite)
	}
}
