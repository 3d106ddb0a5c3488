package ovens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	ovenRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/oven"
	userRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens/models"
	"github.com/m04kA/SMC-OvenBooking/pkg/ptr"
)

type mockOvenRepo struct {
	mock.Mock
}

func (m *mockOvenRepo) Create(ctx context.Context, oven *domain.Oven) (*domain.Oven, error) {
	args := m.Called(ctx, oven)
	if o, ok := args.Get(0).(*domain.Oven); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOvenRepo) GetByID(ctx context.Context, id string) (*domain.Oven, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*domain.Oven); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOvenRepo) List(ctx context.Context, status *domain.OvenStatus) ([]domain.Oven, error) {
	args := m.Called(ctx, status)
	if o, ok := args.Get(0).([]domain.Oven); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOvenRepo) Update(ctx context.Context, oven *domain.Oven) (*domain.Oven, error) {
	args := m.Called(ctx, oven)
	if o, ok := args.Get(0).(*domain.Oven); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOvenRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) CountActive(ctx context.Context, ovenID string) (int, error) {
	args := m.Called(ctx, ovenID)
	return args.Int(0), args.Error(1)
}

type stubUsers map[string]domain.User

func (s stubUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return &u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var users = stubUsers{
	"admin": {ID: "admin", Name: "Root", IsAdmin: true},
	"u1":    {ID: "u1", Name: "Alice"},
}

func TestList(t *testing.T) {
	repo := &mockOvenRepo{}
	repo.On("List", mock.Anything, (*domain.OvenStatus)(nil)).Return([]domain.Oven{
		{ID: "o1", Name: "Carbolite", Status: domain.OvenStatusActive},
		{ID: "o2", Name: "Nabertherm", Status: domain.OvenStatusRetired},
	}, nil)
	s := NewService(repo, &mockCounter{}, users, nopLogger{})

	resp, err := s.List(context.Background(), &models.ListOvensRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Ovens, 2)
	assert.True(t, resp.Ovens[0].Bookable)
	assert.False(t, resp.Ovens[1].Bookable)

	_, err = s.List(context.Background(), &models.ListOvensRequest{Status: ptr.Ptr("broken")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockOvenRepo{}
	repo.On("GetByID", mock.Anything, "nope").Return(nil, ovenRepo.ErrOvenNotFound)

	_, err := NewService(repo, &mockCounter{}, users, nopLogger{}).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrOvenNotFound)
}

func TestCreate(t *testing.T) {
	t.Run("admin creates oven with default status", func(t *testing.T) {
		repo := &mockOvenRepo{}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Oven) bool {
			return o.Name == "Carbolite" && o.Status == domain.OvenStatusActive
		})).Return(&domain.Oven{ID: "o1", Name: "Carbolite", Status: domain.OvenStatusActive}, nil)
		s := NewService(repo, &mockCounter{}, users, nopLogger{})

		resp, err := s.Create(context.Background(), &models.SaveOvenRequest{UserID: "admin", Name: "  Carbolite "})
		require.NoError(t, err)
		assert.Equal(t, "o1", resp.ID)
		repo.AssertExpectations(t)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		s := NewService(&mockOvenRepo{}, &mockCounter{}, users, nopLogger{})
		_, err := s.Create(context.Background(), &models.SaveOvenRequest{UserID: "u1", Name: "X"})
		assert.ErrorIs(t, err, ErrAccessDenied)

		_, err = s.Create(context.Background(), &models.SaveOvenRequest{UserID: "stranger", Name: "X"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("validation", func(t *testing.T) {
		s := NewService(&mockOvenRepo{}, &mockCounter{}, users, nopLogger{})
		cases := []models.SaveOvenRequest{
			{UserID: "admin", Name: "   "},
			{UserID: "admin", Name: "X", Status: "broken"},
			{UserID: "admin", Name: "X", MaxTemperature: ptr.Ptr(-1)},
		}
		for _, req := range cases {
			_, err := s.Create(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := &mockOvenRepo{}
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, ovenRepo.ErrDuplicateName)
		s := NewService(repo, &mockCounter{}, users, nopLogger{})

		_, err := s.Create(context.Background(), &models.SaveOvenRequest{UserID: "admin", Name: "Carbolite"})
		assert.ErrorIs(t, err, ErrDuplicateName)
	})
}

func TestUpdate(t *testing.T) {
	repo := &mockOvenRepo{}
	repo.On("Update", mock.Anything, mock.MatchedBy(func(o *domain.Oven) bool { return o.ID == "o1" })).
		Return(&domain.Oven{ID: "o1", Name: "Carbolite", Status: domain.OvenStatusMaintenance}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(o *domain.Oven) bool { return o.ID == "nope" })).
		Return(nil, ovenRepo.ErrOvenNotFound)
	s := NewService(repo, &mockCounter{}, users, nopLogger{})

	resp, err := s.Update(context.Background(), &models.SaveOvenRequest{
		UserID: "admin", OvenID: "o1", Name: "Carbolite", Status: "maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, "maintenance", resp.Status)
	assert.False(t, resp.Bookable)

	_, err = s.Update(context.Background(), &models.SaveOvenRequest{UserID: "admin", OvenID: "nope", Name: "X"})
	assert.ErrorIs(t, err, ErrOvenNotFound)

	_, err = s.Update(context.Background(), &models.SaveOvenRequest{UserID: "admin", Name: "X"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	t.Run("refused while active bookings exist", func(t *testing.T) {
		repo := &mockOvenRepo{}
		counter := &mockCounter{}
		counter.On("CountActive", mock.Anything, "o1").Return(2, nil)

		err := NewService(repo, counter, users, nopLogger{}).Delete(context.Background(), "o1", "admin")

		assert.ErrorIs(t, err, ErrOvenInUse)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("history blocks delete", func(t *testing.T) {
		repo := &mockOvenRepo{}
		repo.On("Delete", mock.Anything, "o1").Return(ovenRepo.ErrOvenReferenced)
		counter := &mockCounter{}
		counter.On("CountActive", mock.Anything, "o1").Return(0, nil)

		err := NewService(repo, counter, users, nopLogger{}).Delete(context.Background(), "o1", "admin")
		assert.ErrorIs(t, err, ErrOvenReferenced)
	})

	t.Run("success", func(t *testing.T) {
		repo := &mockOvenRepo{}
		repo.On("Delete", mock.Anything, "o1").Return(nil)
		counter := &mockCounter{}
		counter.On("CountActive", mock.Anything, "o1").Return(0, nil)

		require.NoError(t, NewService(repo, counter, users, nopLogger{}).Delete(context.Background(), "o1", "admin"))
		repo.AssertExpectations(t)
	})

	t.Run("count failure", func(t *testing.T) {
		counter := &mockCounter{}
		counter.On("CountActive", mock.Anything, "o1").Return(0, errors.New("db down"))

		err := NewService(&mockOvenRepo{}, counter, users, nopLogger{}).Delete(context.Background(), "o1", "admin")
		assert.ErrorIs(t, err, ErrInternal)
	})
}
