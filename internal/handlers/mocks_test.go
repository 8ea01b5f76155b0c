package handlers

import (
	"context"

	"favorites_api/internal/models"
	"favorites_api/internal/services"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserService) CreateUser(ctx context.Context, req services.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, req services.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPlanetService struct{ mock.Mock }

func (m *mockPlanetService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	args := m.Called(ctx)
	planets, _ := args.Get(0).([]models.Planet)
	return planets, args.Error(1)
}

func (m *mockPlanetService) CreatePlanet(ctx context.Context, req services.CreateCatalogItemRequest) (*models.Planet, error) {
	args := m.Called(ctx, req)
	planet, _ := args.Get(0).(*models.Planet)
	return planet, args.Error(1)
}

func (m *mockPlanetService) GetPlanet(ctx context.Context, id int64) (*models.Planet, error) {
	args := m.Called(ctx, id)
	planet, _ := args.Get(0).(*models.Planet)
	return planet, args.Error(1)
}

func (m *mockPlanetService) UpdatePlanet(ctx context.Context, id int64, req services.UpdateCatalogItemRequest) (*models.Planet, error) {
	args := m.Called(ctx, id, req)
	planet, _ := args.Get(0).(*models.Planet)
	return planet, args.Error(1)
}

func (m *mockPlanetService) DeletePlanet(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCharacterService struct{ mock.Mock }

func (m *mockCharacterService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	args := m.Called(ctx)
	characters, _ := args.Get(0).([]models.Character)
	return characters, args.Error(1)
}

func (m *mockCharacterService) CreateCharacter(ctx context.Context, req services.CreateCatalogItemRequest) (*models.Character, error) {
	args := m.Called(ctx, req)
	character, _ := args.Get(0).(*models.Character)
	return character, args.Error(1)
}

func (m *mockCharacterService) GetCharacter(ctx context.Context, id int64) (*models.Character, error) {
	args := m.Called(ctx, id)
	character, _ := args.Get(0).(*models.Character)
	return character, args.Error(1)
}

func (m *mockCharacterService) UpdateCharacter(ctx context.Context, id int64, req services.UpdateCatalogItemRequest) (*models.Character, error) {
	args := m.Called(ctx, id, req)
	character, _ := args.Get(0).(*models.Character)
	return character, args.Error(1)
}

func (m *mockCharacterService) DeleteCharacter(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFavoriteService struct{ mock.Mock }

func (m *mockFavoriteService) ListFavorites(ctx context.Context, userID int64) ([]any, error) {
	args := m.Called(ctx, userID)
	favs, _ := args.Get(0).([]any)
	return favs, args.Error(1)
}

func (m *mockFavoriteService) AddFavorite(ctx context.Context, userID int64, category string, itemID int64) (any, error) {
	args := m.Called(ctx, userID, category, itemID)
	return args.Get(0), args.Error(1)
}

func (m *mockFavoriteService) RemoveFavorite(ctx context.Context, userID int64, category string, itemID int64) error {
	return m.Called(ctx, userID, category, itemID).Error(0)
}
