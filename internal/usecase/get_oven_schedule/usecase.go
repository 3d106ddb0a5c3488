package get_oven_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	ovenRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/oven"
	"github.com/m04kA/SMC-OvenBooking/pkg/ptr"
)

// UseCase use case для получения расписания печи (календарь)
type UseCase struct {
	bookingRepo  BookingRepository
	ovenRepo     OvenRepository
	policies     PolicySource
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, ovenRepo OvenRepository, policies PolicySource, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ovenRepo:     ovenRepo,
		policies:     policies,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOvenSchedule: oven=%s", req.OvenID)

	// 1. Валидация и окно
	from, to, err := resolveWindow(req, uc.timeProvider.Now(), uc.policies.Current().Zone())
	if err != nil {
		uc.logger.Warn("GetOvenSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем печь
	oven, err := uc.ovenRepo.GetByID(ctx, req.OvenID)
	if err != nil {
		if errors.Is(err, ovenRepo.ErrOvenNotFound) {
			uc.logger.Warn("GetOvenSchedule: oven id=%s not found", req.OvenID)
			return nil, ErrOvenNotFound
		}
		uc.logger.Error("GetOvenSchedule: failed to get oven id=%s: %v", req.OvenID, err)
		return nil, fmt.Errorf("%w: failed to get oven: %v", ErrInternal, err)
	}

	// 3. Активные бронирования, пересекающие окно
	reservations, err := uc.bookingRepo.List(ctx, domain.ReservationQuery{
		ResourceID: ptr.Ptr(oven.ID),
		Status:     ptr.Ptr(domain.StatusActive),
		From:       &from,
		To:         &to,
	})
	if err != nil {
		uc.logger.Error("GetOvenSchedule: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Собираем интервалы
	slots := buildSlots(reservations, from, to)

	uc.logger.Info("GetOvenSchedule: oven=%s, %d bookings in window", oven.ID, len(reservations))

	response := &Response{
		OvenID:     oven.ID,
		OvenName:   oven.Name,
		OvenStatus: string(oven.Status),
		From:       from,
		To:         to,
		Slots:      make([]Slot, len(slots)),
	}
	for i, s := range slots {
		response.Slots[i] = Slot{
			Start:     s.Start,
			End:       s.End,
			Free:      s.IsFree(),
			BookingID: s.ReservationID,
			UserID:    s.RequesterID,
			Title:     s.Title,
		}
	}

	return response, nil
}
