package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/booking"
	ovenRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/oven"
)

var now = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	bookings *mockBookingRepo
	ovens    *mockOvenRepo
	recorder *fakeRecorder
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &mockBookingRepo{},
		ovens:    &mockOvenRepo{},
		recorder: &fakeRecorder{},
	}
	f.uc = NewUseCase(f.bookings, f.ovens, staticPolicy(domain.DefaultValidationPolicy()), passthroughTx{}, f.recorder, nopLogger{})
	f.uc.timeProvider = fixedClock(now)
	return f
}

func activeOven() *domain.Oven {
	return &domain.Oven{ID: "ovenA", Name: "Carbolite", Status: domain.OvenStatusActive}
}

func request() *Request {
	return &Request{
		UserID: "u1",
		OvenID: "ovenA",
		Title:  " Annealing ",
		Start:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	f.ovens.On("GetByID", mock.Anything, "ovenA").Return(activeOven(), nil)
	f.bookings.On("GetSnapshot", mock.Anything, "ovenA", "u1").Return([]domain.Reservation{}, nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Title == "Annealing" && r.Status == domain.StatusActive && r.RequesterID == "u1"
	})).Return(func(_ context.Context, r *domain.Reservation) *domain.Reservation {
		r.ID = "b1"
		return r
	}, nil)

	resp, err := f.uc.Execute(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "Carbolite", resp.OvenName)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, []recordedDecision{{mode: "create", outcome: "accepted"}}, f.recorder.decisions)
	f.bookings.AssertExpectations(t)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()
	req := request()
	req.OvenID = " "

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	f.ovens.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestExecute_OvenNotFound(t *testing.T) {
	f := newFixture()
	f.ovens.On("GetByID", mock.Anything, "ovenA").Return(nil, ovenRepo.ErrOvenNotFound)

	_, err := f.uc.Execute(context.Background(), request())

	assert.ErrorIs(t, err, ErrOvenNotFound)
}

func TestExecute_OvenUnderMaintenance(t *testing.T) {
	f := newFixture()
	oven := activeOven()
	oven.Status = domain.OvenStatusMaintenance
	f.ovens.On("GetByID", mock.Anything, "ovenA").Return(oven, nil)

	_, err := f.uc.Execute(context.Background(), request())

	assert.ErrorIs(t, err, ErrOvenUnavailable)
	f.bookings.AssertNotCalled(t, "GetSnapshot", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(r *Request)
		existing []domain.Reservation
		wantErr  error
		outcome  string
	}{
		{
			name:    "end before start",
			modify:  func(r *Request) { r.End = r.Start.Add(-time.Hour) },
			wantErr: ErrInvalidInterval,
			outcome: "invalid_interval",
		},
		{
			name:    "start in the past",
			modify:  func(r *Request) { r.Start = now.Add(-time.Hour) },
			wantErr: ErrStartInPast,
			outcome: "start_in_past",
		},
		{
			name:    "span too long",
			modify:  func(r *Request) { r.End = r.Start.AddDate(0, 0, 8) },
			wantErr: ErrSpanTooLong,
			outcome: "span_too_long",
		},
		{
			name: "quota",
			existing: []domain.Reservation{
				{ID: "b1", RequesterID: "u1", ResourceID: "ovenB", Status: domain.StatusActive,
					Start: now.Add(48 * time.Hour), End: now.Add(50 * time.Hour)},
				{ID: "b2", RequesterID: "u1", ResourceID: "ovenC", Status: domain.StatusActive,
					Start: now.Add(72 * time.Hour), End: now.Add(74 * time.Hour)},
			},
			wantErr: ErrQuotaExceeded,
			outcome: "quota_exceeded",
		},
		{
			name: "conflict",
			existing: []domain.Reservation{
				{ID: "b9", RequesterID: "u2", ResourceID: "ovenA", Status: domain.StatusActive,
					Start: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)},
			},
			wantErr: ErrResourceConflict,
			outcome: "resource_conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.ovens.On("GetByID", mock.Anything, "ovenA").Return(activeOven(), nil)
			f.bookings.On("GetSnapshot", mock.Anything, "ovenA", "u1").Return(tt.existing, nil)

			req := request()
			if tt.modify != nil {
				tt.modify(req)
			}

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []recordedDecision{{mode: "create", outcome: tt.outcome}}, f.recorder.decisions)
			f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_ConflictMessageNamesBooking(t *testing.T) {
	f := newFixture()
	f.ovens.On("GetByID", mock.Anything, "ovenA").Return(activeOven(), nil)
	f.bookings.On("GetSnapshot", mock.Anything, "ovenA", "u1").Return([]domain.Reservation{
		{ID: "b9", RequesterID: "u2", ResourceID: "ovenA", Status: domain.StatusActive,
			Start: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)},
	}, nil)

	_, err := f.uc.Execute(context.Background(), request())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "b9")
}

func TestExecute_ExclusionConstraintMapsToConflict(t *testing.T) {
	f := newFixture()
	f.ovens.On("GetByID", mock.Anything, "ovenA").Return(activeOven(), nil)
	f.bookings.On("GetSnapshot", mock.Anything, "ovenA", "u1").Return([]domain.Reservation{}, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrOverlap)

	_, err := f.uc.Execute(context.Background(), request())

	assert.ErrorIs(t, err, ErrResourceConflict)
	assert.Equal(t, []recordedDecision{{mode: "create", outcome: "resource_conflict"}}, f.recorder.decisions)
}

func TestExecute_SnapshotError(t *testing.T) {
	f := newFixture()
	f.ovens.On("GetByID", mock.Anything, "ovenA").Return(activeOven(), nil)
	f.bookings.On("GetSnapshot", mock.Anything, "ovenA", "u1").Return(nil, errors.New("db down"))

	_, err := f.uc.Execute(context.Background(), request())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.recorder.decisions)
}
