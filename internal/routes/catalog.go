package routes

import (
	"favorites_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type PlanetRoutes struct {
	handler *handlers.PlanetHandler
}

func NewPlanetRoutes(handler *handlers.PlanetHandler) *PlanetRoutes {
	return &PlanetRoutes{handler: handler}
}

func (r *PlanetRoutes) RegisterRoutes(router *gin.RouterGroup) {
	planets := router.Group("/planet")
	{
		planets.GET("", r.handler.ListPlanets)
		planets.POST("", r.handler.CreatePlanet)
		planets.GET("/:id", r.handler.GetPlanet)
		planets.PUT("/:id", r.handler.UpdatePlanet)
		planets.DELETE("/:id", r.handler.DeletePlanet)
	}
}

type CharacterRoutes struct {
	handler *handlers.CharacterHandler
}

func NewCharacterRoutes(handler *handlers.CharacterHandler) *CharacterRoutes {
	return &CharacterRoutes{handler: handler}
}

func (r *CharacterRoutes) RegisterRoutes(router *gin.RouterGroup) {
	characters := router.Group("/character")
	{
		characters.GET("", r.handler.ListCharacters)
		characters.POST("", r.handler.CreateCharacter)
		characters.GET("/:id", r.handler.GetCharacter)
		characters.PUT("/:id", r.handler.UpdateCharacter)
		characters.DELETE("/:id", r.handler.DeleteCharacter)
	}
}
