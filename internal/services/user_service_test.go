package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"favorites_api/internal/apperrors"
	"favorites_api/internal/models"
	"favorites_api/internal/repositories"
	"favorites_api/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	store := new(mockUserStore)
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 1
		}).
		Return(nil)

	svc := NewUserService(store)
	user, err := svc.CreateUser(context.Background(), CreateUserRequest{
		UserName: "leia",
		Email:    "leia@alderaan.org",
		Password: "help-me-obi-wan",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "leia", user.UserName)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "help-me-obi-wan", user.Password)
	assert.NoError(t, utils.VerifyPassword(user.Password, "help-me-obi-wan"))
	store.AssertExpectations(t)
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	store := new(mockUserStore)
	store.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("insert user: %w", repositories.ErrDuplicateKey))

	svc := NewUserService(store)
	_, err := svc.CreateUser(context.Background(), CreateUserRequest{UserName: "a", Email: "b", Password: "c"})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.Conflict))
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
	assert.Equal(t, "User name or email already in use", apperrors.From(err).Message)
}

func TestUserService_CreateUser_BlankField(t *testing.T) {
	store := new(mockUserStore)

	_, err := NewUserService(store).CreateUser(context.Background(), CreateUserRequest{UserName: "a", Email: " ", Password: "c"})

	assert.True(t, apperrors.IsKind(err, apperrors.Validation))
	assert.Equal(t, "You need to specify the email", apperrors.From(err).Message)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	store := new(mockUserStore)
	store.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	_, err := NewUserService(store).GetUser(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
	assert.Equal(t, "User not found in data base", apperrors.From(err).Message)
}

func TestUserService_GetUser_StoreError(t *testing.T) {
	boom := errors.New("connection reset")
	store := new(mockUserStore)
	store.On("FindByID", mock.Anything, int64(1)).Return(nil, boom)

	_, err := NewUserService(store).GetUser(context.Background(), 1)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, apperrors.Internal, apperrors.From(err).Kind)
}

func TestUserService_UpdateUser_Partial(t *testing.T) {
	existing := &models.User{ID: 5, UserName: "han", Email: "han@falcon.com", Password: "hash", IsActive: true}

	store := new(mockUserStore)
	store.On("FindByID", mock.Anything, int64(5)).Return(existing, nil)
	store.On("Update", mock.Anything, existing).Return(nil)

	svc := NewUserService(store)
	user, err := svc.UpdateUser(context.Background(), 5, UpdateUserRequest{
		Email:    models.Some("solo@falcon.com"),
		IsActive: models.Some(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "han", user.UserName, "absent field must stay unchanged")
	assert.Equal(t, "solo@falcon.com", user.Email)
	assert.Equal(t, "hash", user.Password)
	assert.False(t, user.IsActive)
	store.AssertExpectations(t)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	existing := &models.User{ID: 5, UserName: "han", Email: "han@falcon.com", Password: "old", IsActive: true}

	store := new(mockUserStore)
	store.On("FindByID", mock.Anything, int64(5)).Return(existing, nil)
	store.On("Update", mock.Anything, existing).Return(nil)

	user, err := NewUserService(store).UpdateUser(context.Background(), 5, UpdateUserRequest{
		Password: models.Some("kessel-run"),
	})
	require.NoError(t, err)

	assert.NoError(t, utils.VerifyPassword(user.Password, "kessel-run"))
}

func TestUserService_UpdateUser_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  UpdateUserRequest
		want string
	}{
		{
			name: "empty user name",
			req:  UpdateUserRequest{UserName: models.Some("  ")},
			want: "You need to specify the user_name",
		},
		{
			name: "null email",
			req:  UpdateUserRequest{Email: models.Optional[string]{Set: true, Null: true}},
			want: "You need to specify the email",
		},
		{
			name: "null is_active",
			req:  UpdateUserRequest{IsActive: models.Optional[bool]{Set: true, Null: true}},
			want: "is_active cannot be null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockUserStore)

			_, err := NewUserService(store).UpdateUser(context.Background(), 1, tt.req)

			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.Validation))
			assert.Equal(t, tt.want, apperrors.From(err).Message)
			store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	store := new(mockUserStore)
	store.On("FindByID", mock.Anything, int64(3)).Return(&models.User{ID: 3}, nil)
	store.On("Delete", mock.Anything, int64(3)).Return(nil)

	require.NoError(t, NewUserService(store).DeleteUser(context.Background(), 3))
	store.AssertExpectations(t)
	store.AssertNumberOfCalls(t, "Delete", 1)
}

func TestUserService_DeleteUser_StoreFailure(t *testing.T) {
	store := new(mockUserStore)
	store.On("FindByID", mock.Anything, int64(3)).Return(&models.User{ID: 3}, nil)
	store.On("Delete", mock.Anything, int64(3)).Return(errors.New("tx aborted"))

	err := NewUserService(store).DeleteUser(context.Background(), 3)

	require.ErrorContains(t, err, "tx aborted")
	assert.Equal(t, apperrors.Internal, apperrors.From(err).Kind)
	store.AssertNumberOfCalls(t, "Delete", 1)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	store := new(mockUserStore)
	store.On("FindByID", mock.Anything, int64(3)).Return(nil, nil)

	err := NewUserService(store).DeleteUser(context.Background(), 3)

	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
