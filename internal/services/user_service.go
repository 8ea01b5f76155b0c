package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"favorites_api/internal/apperrors"
	"favorites_api/internal/models"
	"favorites_api/internal/repositories"
	"favorites_api/internal/utils"

	"github.com/rs/zerolog/log"
)

const userNotFound = "User not found in data base"

type CreateUserRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *CreateUserRequest) Validate() error {
	if err := requireText("user_name", models.Some(r.UserName)); err != nil {
		return err
	}
	if err := requireText("email", models.Some(r.Email)); err != nil {
		return err
	}
	return requireText("password", models.Some(r.Password))
}

// UpdateUserRequest is a partial update: fields absent from the body are left unchanged.
type UpdateUserRequest struct {
	UserName models.Optional[string] `json:"user_name"`
	Email    models.Optional[string] `json:"email"`
	Password models.Optional[string] `json:"password"`
	IsActive models.Optional[bool]   `json:"is_active"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := requireText("user_name", r.UserName); err != nil {
		return err
	}
	if err := requireText("email", r.Email); err != nil {
		return err
	}
	if err := requireText("password", r.Password); err != nil {
		return err
	}
	if r.IsActive.Set && r.IsActive.Null {
		return apperrors.NewValidation("is_active cannot be null")
	}
	return nil
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		UserName: req.UserName,
		Email:    req.Email,
		Password: hash,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, classifyUserWrite(err)
	}

	log.Ctx(ctx).Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound(userNotFound)
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserName.Set {
		user.UserName = req.UserName.Value
	}
	if req.Email.Set {
		user.Email = req.Email.Value
	}
	if req.Password.Set {
		hash, err := utils.HashPassword(req.Password.Value)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hash
	}
	if req.IsActive.Set {
		user.IsActive = req.IsActive.Value
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, classifyUserWrite(err)
	}
	return user, nil
}

// DeleteUser removes the user and all of its favorites.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	log.Ctx(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func classifyUserWrite(err error) error {
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return apperrors.NewConflict("User name or email already in use", err)
	}
	return fmt.Errorf("save user: %w", err)
}

func requireText(field string, v models.Optional[string]) error {
	if v.Set && (v.Null || strings.TrimSpace(v.Value) == "") {
		return apperrors.NewValidation("You need to specify the " + field)
	}
	return nil
}
