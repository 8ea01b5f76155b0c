package repositories

import (
	"context"
	"errors"

	"favorites_api/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) ListPlanets(ctx context.Context, userID int64) ([]models.FavPlanet, error) {
	favs := []models.FavPlanet{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepository) ListCharacters(ctx context.Context, userID int64) ([]models.FavCharacter, error) {
	favs := []models.FavCharacter{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favs).Error
	return favs, err
}

// FindPlanet returns nil, nil when the user has not favorited the planet.
func (r *FavoriteRepository) FindPlanet(ctx context.Context, userID, planetID int64) (*models.FavPlanet, error) {
	var fav models.FavPlanet
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fav, nil
}

// FindCharacter returns nil, nil when the user has not favorited the character.
func (r *FavoriteRepository) FindCharacter(ctx context.Context, userID, characterID int64) (*models.FavCharacter, error) {
	var fav models.FavCharacter
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepository) CreatePlanet(ctx context.Context, fav *models.FavPlanet) error {
	return translateError(r.db.WithContext(ctx).Create(fav).Error)
}

func (r *FavoriteRepository) CreateCharacter(ctx context.Context, fav *models.FavCharacter) error {
	return translateError(r.db.WithContext(ctx).Create(fav).Error)
}

func (r *FavoriteRepository) DeletePlanet(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.FavPlanet{}, id).Error
}

func (r *FavoriteRepository) DeleteCharacter(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.FavCharacter{}, id).Error
}
