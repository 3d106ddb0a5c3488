package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-OvenBooking/internal/service/users/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).([]domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	return m.Called(ctx, id, isAdmin).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func admin() *domain.User { return &domain.User{ID: "admin", Name: "Root", IsAdmin: true} }

func TestEnsureUser(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Upsert", mock.Anything, &domain.User{ID: "u1", Name: "Alice", Email: "alice@lab.org"}).
		Return(&domain.User{ID: "u1", Name: "Alice", Email: "alice@lab.org"}, nil)
	s := NewService(repo, nopLogger{})

	resp, err := s.EnsureUser(context.Background(), &models.EnsureUserRequest{UserID: "u1", Name: " Alice ", Email: "alice@lab.org"})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.Role)

	_, err = s.EnsureUser(context.Background(), &models.EnsureUserRequest{UserID: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("GetByID", mock.Anything, "admin").Return(admin(), nil)
	repo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.On("List", mock.Anything).Return([]domain.User{*admin(), {ID: "u1", Name: "Alice"}}, nil)
	s := NewService(repo, nopLogger{})

	resp, err := s.List(context.Background(), "admin")
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "admin", resp.Users[0].Role)

	_, err = s.List(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetRole(t *testing.T) {
	t.Run("promote user", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("GetByID", mock.Anything, "admin").Return(admin(), nil)
		repo.On("SetAdmin", mock.Anything, "u1", true).Return(nil)
		repo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", IsAdmin: true}, nil)

		resp, err := NewService(repo, nopLogger{}).SetRole(context.Background(), &models.SetRoleRequest{
			UserID: "admin", TargetUserID: "u1", Role: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Role)
		repo.AssertExpectations(t)
	})

	t.Run("cannot revoke own role", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("GetByID", mock.Anything, "admin").Return(admin(), nil)

		_, err := NewService(repo, nopLogger{}).SetRole(context.Background(), &models.SetRoleRequest{
			UserID: "admin", TargetUserID: "admin", Role: "user",
		})
		assert.ErrorIs(t, err, ErrSelfDemotion)
		repo.AssertNotCalled(t, "SetAdmin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("GetByID", mock.Anything, "u1").Return(nil, userRepo.ErrUserNotFound)

		_, err := NewService(repo, nopLogger{}).SetRole(context.Background(), &models.SetRoleRequest{
			UserID: "u1", TargetUserID: "u1", Role: "admin",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := NewService(&mockUserRepo{}, nopLogger{}).SetRole(context.Background(), &models.SetRoleRequest{
			UserID: "admin", TargetUserID: "u1", Role: "owner",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("target not found", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("GetByID", mock.Anything, "admin").Return(admin(), nil)
		repo.On("SetAdmin", mock.Anything, "ghost", false).Return(userRepo.ErrUserNotFound)

		_, err := NewService(repo, nopLogger{}).SetRole(context.Background(), &models.SetRoleRequest{
			UserID: "admin", TargetUserID: "ghost", Role: "user",
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
