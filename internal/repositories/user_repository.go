package repositories

import (
	"context"
	"errors"

	"favorites_api/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

// FindByID returns nil, nil when no user has the given id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Prepare()
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.Prepare()
	return translateError(r.db.WithContext(ctx).Save(user).Error)
}

// Delete removes the user together with every planet and character favorite
// that references it, in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.FavPlanet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.FavCharacter{}).Error; err != nil {
			return err
		}
		return translateError(tx.Delete(&models.User{}, id).Error)
	})
}
