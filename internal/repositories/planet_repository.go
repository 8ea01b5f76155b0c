package repositories

import (
	"context"
	"errors"

	"favorites_api/internal/models"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) List(ctx context.Context) ([]models.Planet, error) {
	planets := []models.Planet{}
	err := r.db.WithContext(ctx).Order("id").Find(&planets).Error
	return planets, err
}

func (r *PlanetRepository) FindByID(ctx context.Context, id int64) (*models.Planet, error) {
	var planet models.Planet
	err := r.db.WithContext(ctx).First(&planet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &planet, nil
}

func (r *PlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	planet.Prepare()
	return translateError(r.db.WithContext(ctx).Create(planet).Error)
}

func (r *PlanetRepository) Update(ctx context.Context, planet *models.Planet) error {
	planet.Prepare()
	return translateError(r.db.WithContext(ctx).Save(planet).Error)
}

// Delete drops the planet's favorite rows first so no join row is orphaned.
func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("planet_id = ?", id).Delete(&models.FavPlanet{}).Error; err != nil {
			return err
		}
		return translateError(tx.Delete(&models.Planet{}, id).Error)
	})
}
