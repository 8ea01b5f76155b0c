package services

import (
	"context"
	"errors"
	"fmt"

	"favorites_api/internal/apperrors"
	"favorites_api/internal/models"
	"favorites_api/internal/repositories"

	"github.com/rs/zerolog/log"
)

const favAlreadyExists = "Fav already exists"

type FavoriteService struct {
	favorites  FavoriteStore
	users      UserStore
	planets    PlanetStore
	characters CharacterStore
}

func NewFavoriteService(favorites FavoriteStore, users UserStore, planets PlanetStore, characters CharacterStore) *FavoriteService {
	return &FavoriteService{
		favorites:  favorites,
		users:      users,
		planets:    planets,
		characters: characters,
	}
}

// ListFavorites returns the user's planet favorites followed by its character
// favorites. An unknown user simply has no favorites.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID int64) ([]any, error) {
	planets, err := s.favorites.ListPlanets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list planet favorites: %w", err)
	}
	characters, err := s.favorites.ListCharacters(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list character favorites: %w", err)
	}

	all := make([]any, 0, len(planets)+len(characters))
	for _, f := range planets {
		all = append(all, f)
	}
	for _, f := range characters {
		all = append(all, f)
	}
	return all, nil
}

// AddFavorite marks item as a favorite of the user. It returns the created
// join row (*models.FavPlanet or *models.FavCharacter).
func (s *FavoriteService) AddFavorite(ctx context.Context, userID int64, category string, itemID int64) (any, error) {
	cat, err := s.prepare(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	if cat == models.CategoryPlanet {
		fav, err := s.addPlanet(ctx, userID, itemID)
		if err != nil {
			return nil, err
		}
		return fav, nil
	}

	fav, err := s.addCharacter(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID int64, category string, itemID int64) error {
	cat, err := s.prepare(ctx, userID, category)
	if err != nil {
		return err
	}

	if cat == models.CategoryPlanet {
		fav, err := s.favorites.FindPlanet(ctx, userID, itemID)
		if err != nil {
			return fmt.Errorf("find planet favorite: %w", err)
		}
		if fav == nil {
			return apperrors.NewNotFound("Planet not found in data base")
		}
		if err := s.favorites.DeletePlanet(ctx, fav.ID); err != nil {
			return fmt.Errorf("delete planet favorite %d: %w", fav.ID, err)
		}
		return nil
	}

	fav, err := s.favorites.FindCharacter(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("find character favorite: %w", err)
	}
	if fav == nil {
		return apperrors.NewNotFound("Character not found in data base")
	}
	if err := s.favorites.DeleteCharacter(ctx, fav.ID); err != nil {
		return fmt.Errorf("delete character favorite %d: %w", fav.ID, err)
	}
	return nil
}

// prepare validates the category before touching the database, then checks
// that the user exists.
func (s *FavoriteService) prepare(ctx context.Context, userID int64, category string) (models.Category, error) {
	cat, ok := models.ParseCategory(category)
	if !ok {
		return "", apperrors.NewValidation(fmt.Sprintf("Unknown category %q, expected planet or character", category))
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("find user %d: %w", userID, err)
	}
	if user == nil {
		return "", apperrors.NewNotFound(userNotFound)
	}
	return cat, nil
}

func (s *FavoriteService) addPlanet(ctx context.Context, userID, planetID int64) (*models.FavPlanet, error) {
	planet, err := s.planets.FindByID(ctx, planetID)
	if err != nil {
		return nil, fmt.Errorf("find planet %d: %w", planetID, err)
	}
	if planet == nil {
		return nil, apperrors.NewNotFound("Planet not found in data base")
	}

	existing, err := s.favorites.FindPlanet(ctx, userID, planetID)
	if err != nil {
		return nil, fmt.Errorf("find planet favorite: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflict(favAlreadyExists, nil)
	}

	fav := &models.FavPlanet{UserID: userID, PlanetID: planet.ID}
	if err := s.favorites.CreatePlanet(ctx, fav); err != nil {
		return nil, classifyFavoriteWrite(err)
	}

	log.Ctx(ctx).Info().Int64("user_id", userID).Int64("planet_id", planetID).Msg("planet favorite added")
	return fav, nil
}

func (s *FavoriteService) addCharacter(ctx context.Context, userID, characterID int64) (*models.FavCharacter, error) {
	character, err := s.characters.FindByID(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("find character %d: %w", characterID, err)
	}
	if character == nil {
		return nil, apperrors.NewNotFound("Character not found in data base")
	}

	existing, err := s.favorites.FindCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, fmt.Errorf("find character favorite: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflict(favAlreadyExists, nil)
	}

	fav := &models.FavCharacter{UserID: userID, CharacterID: character.ID}
	if err := s.favorites.CreateCharacter(ctx, fav); err != nil {
		return nil, classifyFavoriteWrite(err)
	}

	log.Ctx(ctx).Info().Int64("user_id", userID).Int64("character_id", characterID).Msg("character favorite added")
	return fav, nil
}

// classifyFavoriteWrite turns a lost insert race into the same conflict the
// existence check reports.
func classifyFavoriteWrite(err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		return apperrors.NewConflict(favAlreadyExists, err)
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return apperrors.NewNotFound("Favorite target no longer exists")
	}
	return fmt.Errorf("create favorite: %w", err)
}
