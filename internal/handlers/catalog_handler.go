package handlers

import (
	"net/http"

	"favorites_api/internal/responses"
	"favorites_api/internal/services"

	"github.com/gin-gonic/gin"
)

type PlanetHandler struct {
	planetService PlanetService
}

func NewPlanetHandler(planetService PlanetService) *PlanetHandler {
	return &PlanetHandler{planetService: planetService}
}

// ListPlanets handles GET /planet
func (h *PlanetHandler) ListPlanets(c *gin.Context) {
	planets, err := h.planetService.ListPlanets(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, planets)
}

// CreatePlanet handles POST /planet
func (h *PlanetHandler) CreatePlanet(c *gin.Context) {
	var req services.CreateCatalogItemRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Error(c, err)
		return
	}

	planet, err := h.planetService.CreatePlanet(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, planet)
}

// GetPlanet handles GET /planet/:id
func (h *PlanetHandler) GetPlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	planet, err := h.planetService.GetPlanet(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, planet)
}

// UpdatePlanet handles PUT /planet/:id
func (h *PlanetHandler) UpdatePlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateCatalogItemRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Error(c, err)
		return
	}

	planet, err := h.planetService.UpdatePlanet(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, planet)
}

// DeletePlanet handles DELETE /planet/:id
func (h *PlanetHandler) DeletePlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.planetService.DeletePlanet(c.Request.Context(), id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Text(c, http.StatusOK, "Planet deleted")
}

type CharacterHandler struct {
	characterService CharacterService
}

func NewCharacterHandler(characterService CharacterService) *CharacterHandler {
	return &CharacterHandler{characterService: characterService}
}

// ListCharacters handles GET /character
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	characters, err := h.characterService.ListCharacters(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, characters)
}

// CreateCharacter handles POST /character
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var req services.CreateCatalogItemRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Error(c, err)
		return
	}

	character, err := h.characterService.CreateCharacter(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, character)
}

// GetCharacter handles GET /character/:id
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	character, err := h.characterService.GetCharacter(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, character)
}

// UpdateCharacter handles PUT /character/:id
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateCatalogItemRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Error(c, err)
		return
	}

	character, err := h.characterService.UpdateCharacter(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, character)
}

// DeleteCharacter handles DELETE /character/:id
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.characterService.DeleteCharacter(c.Request.Context(), id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Text(c, http.StatusOK, "Character deleted")
}
