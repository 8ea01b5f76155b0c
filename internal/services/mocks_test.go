package services

import (
	"context"

	"favorites_api/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPlanetStore struct{ mock.Mock }

func (m *mockPlanetStore) List(ctx context.Context) ([]models.Planet, error) {
	args := m.Called(ctx)
	planets, _ := args.Get(0).([]models.Planet)
	return planets, args.Error(1)
}

func (m *mockPlanetStore) FindByID(ctx context.Context, id int64) (*models.Planet, error) {
	args := m.Called(ctx, id)
	planet, _ := args.Get(0).(*models.Planet)
	return planet, args.Error(1)
}

func (m *mockPlanetStore) Create(ctx context.Context, planet *models.Planet) error {
	return m.Called(ctx, planet).Error(0)
}

func (m *mockPlanetStore) Update(ctx context.Context, planet *models.Planet) error {
	return m.Called(ctx, planet).Error(0)
}

func (m *mockPlanetStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCharacterStore struct{ mock.Mock }

func (m *mockCharacterStore) List(ctx context.Context) ([]models.Character, error) {
	args := m.Called(ctx)
	characters, _ := args.Get(0).([]models.Character)
	return characters, args.Error(1)
}

func (m *mockCharacterStore) FindByID(ctx context.Context, id int64) (*models.Character, error) {
	args := m.Called(ctx, id)
	character, _ := args.Get(0).(*models.Character)
	return character, args.Error(1)
}

func (m *mockCharacterStore) Create(ctx context.Context, character *models.Character) error {
	return m.Called(ctx, character).Error(0)
}

func (m *mockCharacterStore) Update(ctx context.Context, character *models.Character) error {
	return m.Called(ctx, character).Error(0)
}

func (m *mockCharacterStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFavoriteStore struct{ mock.Mock }

func (m *mockFavoriteStore) ListPlanets(ctx context.Context, userID int64) ([]models.FavPlanet, error) {
	args := m.Called(ctx, userID)
	favs, _ := args.Get(0).([]models.FavPlanet)
	return favs, args.Error(1)
}

func (m *mockFavoriteStore) ListCharacters(ctx context.Context, userID int64) ([]models.FavCharacter, error) {
	args := m.Called(ctx, userID)
	favs, _ := args.Get(0).([]models.FavCharacter)
	return favs, args.Error(1)
}

func (m *mockFavoriteStore) FindPlanet(ctx context.Context, userID, planetID int64) (*models.FavPlanet, error) {
	args := m.Called(ctx, userID, planetID)
	fav, _ := args.Get(0).(*models.FavPlanet)
	return fav, args.Error(1)
}

func (m *mockFavoriteStore) FindCharacter(ctx context.Context, userID, characterID int64) (*models.FavCharacter, error) {
	args := m.Called(ctx, userID, characterID)
	fav, _ := args.Get(0).(*models.FavCharacter)
	return fav, args.Error(1)
}

func (m *mockFavoriteStore) CreatePlanet(ctx context.Context, fav *models.FavPlanet) error {
	return m.Called(ctx, fav).Error(0)
}

func (m *mockFavoriteStore) CreateCharacter(ctx context.Context, fav *models.FavCharacter) error {
	return m.Called(ctx, fav).Error(0)
}

func (m *mockFavoriteStore) DeletePlanet(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFavoriteStore) DeleteCharacter(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
