package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/booking"
	ovenRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/oven"
	"github.com/m04kA/SMC-OvenBooking/internal/validator"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	ovenRepo     OvenRepository
	policies     PolicySource
	txManager    TransactionManager
	recorder     DecisionRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// recorder может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	ovenRepo OvenRepository,
	policies PolicySource,
	txManager TransactionManager,
	recorder DecisionRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ovenRepo:     ovenRepo,
		policies:     policies,
		txManager:    txManager,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Чтение снимка, проверка и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, oven=%s, start=%s, end=%s",
		req.UserID, req.OvenID, req.Start.Format(timeLayout), req.End.Format(timeLayout))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем печь
	oven, err := uc.ovenRepo.GetByID(ctx, req.OvenID)
	if err != nil {
		if errors.Is(err, ovenRepo.ErrOvenNotFound) {
			uc.logger.Warn("CreateBooking: oven id=%s not found", req.OvenID)
			return nil, ErrOvenNotFound
		}
		uc.logger.Error("CreateBooking: failed to get oven id=%s: %v", req.OvenID, err)
		return nil, fmt.Errorf("%w: failed to get oven: %v", ErrInternal, err)
	}

	// 3. Бронировать можно только работающую печь
	if !oven.IsBookable() {
		uc.logger.Warn("CreateBooking: oven id=%s has status %s", oven.ID, oven.Status)
		return nil, ErrOvenUnavailable
	}

	// 4. Правила и текущее время
	policy := uc.policies.Current().ForMode(domain.ModeCreate)
	now := uc.timeProvider.Now()

	candidate := domain.Reservation{
		RequesterID: req.UserID,
		ResourceID:  oven.ID,
		Title:       strings.TrimSpace(req.Title),
		Start:       req.Start.UTC(),
		End:         req.End.UTC(),
		Status:      domain.StatusActive,
	}

	var (
		decision validator.Decision
		result   *domain.Reservation
	)

	// 5. Снимок, проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные бронирования печи и пользователя с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetSnapshot(txCtx, candidate.ResourceID, candidate.RequesterID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get snapshot: %v", err)
			return fmt.Errorf("%w: failed to get snapshot: %w", ErrInternal, err)
		}

		// 5.2. Решение валидатора
		decision = validator.Validate(candidate, existing, policy, now)
		if !decision.Accepted() {
			return rejection(decision)
		}

		// 5.3. Сохраняем бронирование
		toCreate := candidate
		created, err := uc.bookingRepo.Create(txCtx, &toCreate)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) {
				decision = validator.Decision{Reason: validator.ReasonResourceConflict}
				return ErrResourceConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	uc.record(decision, err)

	if err != nil {
		if !decision.Accepted() {
			uc.logger.Warn("CreateBooking: rejected user=%s oven=%s: %s %s",
				req.UserID, req.OvenID, decision.Reason, decision.ConflictingID)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.RequesterID,
		OvenID:    result.ResourceID,
		OvenName:  oven.Name,
		Title:     result.Title,
		Start:     result.Start,
		End:       result.End,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// record пишет исход в метрики, если решение было принято
func (uc *UseCase) record(decision validator.Decision, err error) {
	if uc.recorder == nil {
		return
	}
	if decision.Accepted() && err != nil {
		// Ошибка до или после валидатора, это не решение
		return
	}
	uc.recorder.RecordDecision(string(domain.ModeCreate), decision.Outcome())
}

const timeLayout = "2006-01-02T15:04Z07:00"

// rejection превращает отказ валидатора в ошибку usecase
func rejection(decision validator.Decision) error {
	if decision.ConflictingID != "" {
		return fmt.Errorf("%w: conflicts with booking %s", decision.Err(), decision.ConflictingID)
	}
	return decision.Err()
}
