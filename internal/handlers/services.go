package handlers

import (
	"context"

	"favorites_api/internal/models"
	"favorites_api/internal/services"
)

// Handlers depend on these rather than on the concrete services so they can
// be tested with mocks.

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req services.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req services.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type PlanetService interface {
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	CreatePlanet(ctx context.Context, req services.CreateCatalogItemRequest) (*models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (*models.Planet, error)
	UpdatePlanet(ctx context.Context, id int64, req services.UpdateCatalogItemRequest) (*models.Planet, error)
	DeletePlanet(ctx context.Context, id int64) error
}

type CharacterService interface {
	ListCharacters(ctx context.Context) ([]models.Character, error)
	CreateCharacter(ctx context.Context, req services.CreateCatalogItemRequest) (*models.Character, error)
	GetCharacter(ctx context.Context, id int64) (*models.Character, error)
	UpdateCharacter(ctx context.Context, id int64, req services.UpdateCatalogItemRequest) (*models.Character, error)
	DeleteCharacter(ctx context.Context, id int64) error
}

type FavoriteService interface {
	ListFavorites(ctx context.Context, userID int64) ([]any, error)
	AddFavorite(ctx context.Context, userID int64, category string, itemID int64) (any, error)
	RemoveFavorite(ctx context.Context, userID int64, category string, itemID int64) error
}
