package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-OvenBooking/internal/validator"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	policies     PolicySource
	txManager    TransactionManager
	recorder     DecisionRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	policies PolicySource,
	txManager TransactionManager,
	recorder DecisionRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		policies:     policies,
		txManager:    txManager,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute меняет название и интервал активного бронирования
// Уже начавшееся бронирование можно продлить или сократить, но не перенести раньше его начала.
// Перенос будущего бронирования проверяется как новое бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: user=%s, booking=%s", req.UserID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем роль пользователя
	isAdmin, err := uc.isAdmin(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	basePolicy := uc.policies.Current()
	now := uc.timeProvider.Now()

	var (
		decision validator.Decision
		result   *domain.Reservation
	)

	// 3. Чтение, проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Бронирование с блокировкой строки
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 3.2. Доступ: владелец или администратор
		if !current.IsOwnedBy(req.UserID) && !isAdmin {
			uc.logger.Warn("UpdateBooking: user=%s is not allowed to edit booking id=%s", req.UserID, current.ID)
			return ErrAccessDenied
		}

		if !current.IsActive() {
			return ErrBookingNotActive
		}

		// 3.3. Снимок для печи и владельца бронирования (лимит считается по владельцу)
		existing, err := uc.bookingRepo.GetSnapshot(txCtx, current.ResourceID, current.RequesterID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get snapshot: %v", err)
			return fmt.Errorf("%w: failed to get snapshot: %w", ErrInternal, err)
		}

		candidate := *current
		candidate.Title = strings.TrimSpace(req.Title)
		candidate.Start = req.Start.UTC()
		candidate.End = req.End.UTC()

		// 3.4. Начавшееся бронирование не переносится раньше фактического начала
		if !current.Start.After(now) && candidate.Start.Before(current.Start) {
			decision = validator.Decision{Reason: validator.ReasonStartInPast}
			return decision.Err()
		}

		// 3.5. Решение валидатора, собственное бронирование исключается по ID
		decision = validator.Validate(candidate, existing, editPolicy(basePolicy, current, &candidate, now), now)
		if !decision.Accepted() {
			if decision.ConflictingID != "" {
				return fmt.Errorf("%w: conflicts with booking %s", decision.Err(), decision.ConflictingID)
			}
			return decision.Err()
		}

		// 3.6. Сохраняем
		if err := uc.bookingRepo.Update(txCtx, &candidate); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrOverlap):
				decision = validator.Decision{Reason: validator.ReasonResourceConflict}
				return ErrResourceConflict
			case errors.Is(err, bookingRepo.ErrBookingNotActive):
				return ErrBookingNotActive
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", candidate.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = &candidate
		return nil
	})

	if uc.recorder != nil && (err == nil || !decision.Accepted()) {
		uc.recorder.RecordDecision(string(domain.ModeEdit), decision.Outcome())
	}

	if err != nil {
		if !decision.Accepted() {
			uc.logger.Warn("UpdateBooking: rejected booking=%s: %s", req.BookingID, decision.Reason)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.RequesterID,
		OvenID:    result.ResourceID,
		Title:     result.Title,
		Start:     result.Start,
		End:       result.End,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: now,
	}, nil
}

// editPolicy выбирает режим проверки изменения.
// Проверка начала в прошлом пропускается, если начало не меняется или бронирование уже идет.
func editPolicy(base domain.ValidationPolicy, current, candidate *domain.Reservation, now time.Time) domain.ValidationPolicy {
	if candidate.Start.Equal(current.Start) || !current.Start.After(now) {
		return base.ForMode(domain.ModeEdit)
	}
	return base.ForMode(domain.ModeCreate)
}

func (uc *UseCase) isAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return false, nil
		}
		uc.logger.Error("UpdateBooking: failed to get user id=%s: %v", userID, err)
		return false, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user.IsAdmin, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is longer than %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	return nil
}
