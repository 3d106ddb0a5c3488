package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-OvenBooking/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	ovenRepo     OvenRepository
	policies     PolicySource
	recorder     CompletionRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// recorder может быть nil
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	ovenRepo OvenRepository,
	policies PolicySource,
	recorder CompletionRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		ovenRepo:     ovenRepo,
		policies:     policies,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть своё бронирование, администратор любое
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingView, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(userID) {
		if err := s.checkAdminAccess(ctx, userID); err != nil {
			return nil, err
		}
	}

	vc, err := s.viewContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := models.BuildView(booking, vc)
	return &view, nil
}

// GetUserBookings получает бронирования пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings of user=%s for user=%s, status=%v",
		req.TargetUserID, req.UserID, req.Status)

	if req.TargetUserID != req.UserID {
		if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
			return nil, err
		}
	}

	query := domain.ReservationQuery{RequesterID: ptr.Ptr(req.TargetUserID)}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		query.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, query)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.TargetUserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	vc, err := s.viewContext(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.TargetUserID)
	return &models.BookingListResponse{Bookings: models.BuildViews(bookings, vc)}, nil
}

// ListAll возвращает все бронирования с фильтрами и сводкой (панель администратора)
func (s *Service) ListAll(ctx context.Context, req *models.ListBookingsRequest) (*models.AdminBookingsResponse, error) {
	s.logger.Info("ListAll: user=%s, status=%v, dateRange=%s, sortBy=%s %s",
		req.UserID, req.Status, req.DateRange, req.SortBy, req.SortOrder)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListAll: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.ReservationQuery{})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	users, ovens, err := s.loadDirectories(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	policy := s.policies.Current()
	vc := models.NewViewContext(users, ovens, req.UserID, now, policy.CancellationLeadTime)

	views := models.FilterAndSort(models.BuildViews(bookings, vc), filter, now, policy.Zone())

	active, err := s.bookingRepo.CountActive(ctx, "")
	if err != nil {
		s.logger.Error("ListAll: failed to count active bookings: %v", err)
		return nil, fmt.Errorf("%w: ListAll - count error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: %d of %d bookings match filter", len(views), len(bookings))
	return &models.AdminBookingsResponse{
		Bookings: views,
		Stats:    models.ComputeStats(ovens, users, active, len(views)),
	}, nil
}

// Cancel отменяет бронирование
// Владелец может отменить активное бронирование не позже чем за CancellationLeadTime до начала.
// Администратор может отменить любое активное бронирование, указав причину из списка.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.IsActive() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	now := s.timeProvider.Now()
	lead := s.policies.Current().CancellationLeadTime
	reason := ""

	switch {
	case booking.CanBeCancelledBy(req.UserID, now, lead):
		// Отмена владельцем, причина необязательна
		reason = req.Reason
	default:
		isAdmin, err := s.isAdmin(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !isAdmin {
			if booking.IsOwnedBy(req.UserID) {
				s.logger.Warn("Cancel: too late to cancel booking id=%s, start=%s", bookingID, booking.Start)
				return ErrTooLateToCancel
			}
			s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", req.UserID, bookingID)
			return ErrAccessDenied
		}

		reason, err = models.BuildAdminCancellationReason(req.Reason, req.Details)
		if err != nil {
			s.logger.Warn("Cancel: invalid reason for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrInvalidReason, err)
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.UserID, reason, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotActive) {
			s.logger.Warn("Cancel: booking id=%s is no longer active", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// CompleteFinished переводит закончившиеся бронирования в статус completed
func (s *Service) CompleteFinished(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	n, err := s.bookingRepo.CompleteFinished(ctx, now)
	if err != nil {
		s.logger.Error("CompleteFinished: repository error: %v", err)
		return 0, fmt.Errorf("%w: CompleteFinished - repository error: %v", ErrInternal, err)
	}

	if n > 0 {
		s.logger.Info("CompleteFinished: %d bookings completed", n)
		if s.recorder != nil {
			s.recorder.AddCompleted(n)
		}
	}
	return n, nil
}

// Вспомогательные методы

func (s *Service) isAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return false, nil
		}
		s.logger.Error("isAdmin: failed to get user id=%s: %v", userID, err)
		return false, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user.IsAdmin, nil
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	isAdmin, err := s.isAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		s.logger.Warn("checkAdminAccess: user=%s is not an admin", userID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) loadDirectories(ctx context.Context) ([]domain.User, []domain.Oven, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("loadDirectories: failed to list users: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list users: %v", ErrInternal, err)
	}

	ovens, err := s.ovenRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("loadDirectories: failed to list ovens: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list ovens: %v", ErrInternal, err)
	}

	return users, ovens, nil
}

func (s *Service) viewContext(ctx context.Context, viewerID string) (models.ViewContext, error) {
	users, ovens, err := s.loadDirectories(ctx)
	if err != nil {
		return models.ViewContext{}, err
	}
	return models.NewViewContext(users, ovens, viewerID, s.timeProvider.Now(), s.policies.Current().CancellationLeadTime), nil
}
