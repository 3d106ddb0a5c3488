package create_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, reservation)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Reservation) *domain.Reservation); ok {
		return fn(ctx, reservation), args.Error(1)
	}
	if r, ok := args.Get(0).(*domain.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetSnapshot(ctx context.Context, ovenID, userID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, ovenID, userID)
	if r, ok := args.Get(0).([]domain.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOvenRepo struct {
	mock.Mock
}

func (m *mockOvenRepo) GetByID(ctx context.Context, id string) (*domain.Oven, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*domain.Oven); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type staticPolicy domain.ValidationPolicy

func (p staticPolicy) Current() domain.ValidationPolicy {
	return domain.ValidationPolicy(p)
}

// passthroughTx выполняет функцию без реальной транзакции
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordedDecision struct {
	mode    string
	outcome string
}

type fakeRecorder struct {
	decisions []recordedDecision
}

func (r *fakeRecorder) RecordDecision(mode, outcome string) {
	r.decisions = append(r.decisions, recordedDecision{mode: mode, outcome: outcome})
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
