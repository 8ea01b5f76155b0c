package repositories

import (
	"context"
	"errors"

	"favorites_api/internal/models"

	"gorm.io/gorm"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) List(ctx context.Context) ([]models.Character, error) {
	characters := []models.Character{}
	err := r.db.WithContext(ctx).Order("id").Find(&characters).Error
	return characters, err
}

func (r *CharacterRepository) FindByID(ctx context.Context, id int64) (*models.Character, error) {
	var character models.Character
	err := r.db.WithContext(ctx).First(&character, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &character, nil
}

func (r *CharacterRepository) Create(ctx context.Context, character *models.Character) error {
	character.Prepare()
	return translateError(r.db.WithContext(ctx).Create(character).Error)
}

func (r *CharacterRepository) Update(ctx context.Context, character *models.Character) error {
	character.Prepare()
	return translateError(r.db.WithContext(ctx).Save(character).Error)
}

func (r *CharacterRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_id = ?", id).Delete(&models.FavCharacter{}).Error; err != nil {
			return err
		}
		return translateError(tx.Delete(&models.Character{}, id).Error)
	})
}
