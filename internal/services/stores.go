package services

import (
	"context"

	"favorites_api/internal/models"
)

// The stores below are satisfied by the gorm repositories in
// internal/repositories and by mocks in tests.

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

type PlanetStore interface {
	List(ctx context.Context) ([]models.Planet, error)
	FindByID(ctx context.Context, id int64) (*models.Planet, error)
	Create(ctx context.Context, planet *models.Planet) error
	Update(ctx context.Context, planet *models.Planet) error
	Delete(ctx context.Context, id int64) error
}

type CharacterStore interface {
	List(ctx context.Context) ([]models.Character, error)
	FindByID(ctx context.Context, id int64) (*models.Character, error)
	Create(ctx context.Context, character *models.Character) error
	Update(ctx context.Context, character *models.Character) error
	Delete(ctx context.Context, id int64) error
}

type FavoriteStore interface {
	ListPlanets(ctx context.Context, userID int64) ([]models.FavPlanet, error)
	ListCharacters(ctx context.Context, userID int64) ([]models.FavCharacter, error)
	FindPlanet(ctx context.Context, userID, planetID int64) (*models.FavPlanet, error)
	FindCharacter(ctx context.Context, userID, characterID int64) (*models.FavCharacter, error)
	CreatePlanet(ctx context.Context, fav *models.FavPlanet) error
	CreateCharacter(ctx context.Context, fav *models.FavCharacter) error
	DeletePlanet(ctx context.Context, id int64) error
	DeleteCharacter(ctx context.Context, id int64) error
}
