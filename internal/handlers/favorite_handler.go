package handlers

import (
	"net/http"

	"favorites_api/internal/responses"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService FavoriteService
}

func NewFavoriteHandler(favoriteService FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// ListFavorites handles GET /user/:id/favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	favorites, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, favorites)
}

// AddFavorite handles POST /user/:id/:category/:item_id
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, itemID, ok := favoriteIDs(c)
	if !ok {
		return
	}

	fav, err := h.favoriteService.AddFavorite(c.Request.Context(), userID, c.Param("category"), itemID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, fav)
}

// RemoveFavorite handles DELETE /user/:id/:category/:item_id
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, itemID, ok := favoriteIDs(c)
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(c.Request.Context(), userID, c.Param("category"), itemID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Text(c, http.StatusOK, "Deleted successfully")
}

func favoriteIDs(c *gin.Context) (userID, itemID int64, ok bool) {
	if userID, ok = pathID(c, "id"); !ok {
		return 0, 0, false
	}
	if itemID, ok = pathID(c, "item_id"); !ok {
		return 0, 0, false
	}
	return userID, itemID, true
}
