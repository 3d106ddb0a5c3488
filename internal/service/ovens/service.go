package ovens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	ovenRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/oven"
	userRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens/models"
)

// Service сервис для работы с печами
type Service struct {
	ovenRepo OvenRepository
	bookings BookingCounter
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса печей
func NewService(
	ovenRepo OvenRepository,
	bookings BookingCounter,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		ovenRepo: ovenRepo,
		bookings: bookings,
		userRepo: userRepo,
		logger:   logger,
	}
}

// List возвращает список печей, доступен любому пользователю
func (s *Service) List(ctx context.Context, req *models.ListOvensRequest) (*models.OvenListResponse, error) {
	var status *domain.OvenStatus
	if req.Status != nil {
		st := domain.OvenStatus(*req.Status)
		if !st.IsValid() {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &st
	}

	ovens, err := s.ovenRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainList(ovens), nil
}

// Get возвращает печь по ID
func (s *Service) Get(ctx context.Context, id string) (*models.OvenResponse, error) {
	oven, err := s.ovenRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ovenRepo.ErrOvenNotFound) {
			s.logger.Warn("Get: oven id=%s not found", id)
			return nil, ErrOvenNotFound
		}
		s.logger.Error("Get: repository error for oven id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomain(oven), nil
}

// Create создает печь
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.SaveOvenRequest) (*models.OvenResponse, error) {
	s.logger.Info("Create: creating oven name=%q by user=%s", req.Name, req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 2. Валидируем данные
	oven := req.ToDomain()
	oven.ID = ""
	if err := validateOven(oven); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.ovenRepo.Create(ctx, oven)
	if err != nil {
		if errors.Is(err, ovenRepo.ErrDuplicateName) {
			s.logger.Warn("Create: oven name=%q already exists", oven.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created oven id=%s", created.ID)
	return models.FromDomain(created), nil
}

// Update изменяет печь
// Перевод печи в maintenance или retired не отменяет существующие бронирования,
// но новые бронирования на нее не принимаются
func (s *Service) Update(ctx context.Context, req *models.SaveOvenRequest) (*models.OvenResponse, error) {
	s.logger.Info("Update: updating oven id=%s by user=%s", req.OvenID, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	oven := req.ToDomain()
	if oven.ID == "" {
		return nil, fmt.Errorf("%w: oven id is required", ErrInvalidInput)
	}
	if err := validateOven(oven); err != nil {
		s.logger.Warn("Update: validation failed for oven id=%s: %v", oven.ID, err)
		return nil, err
	}

	updated, err := s.ovenRepo.Update(ctx, oven)
	if err != nil {
		switch {
		case errors.Is(err, ovenRepo.ErrOvenNotFound):
			s.logger.Warn("Update: oven id=%s not found", oven.ID)
			return nil, ErrOvenNotFound
		case errors.Is(err, ovenRepo.ErrDuplicateName):
			s.logger.Warn("Update: oven name=%q already exists", oven.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Update: repository error for oven id=%s: %v", oven.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated oven id=%s", updated.ID)
	return models.FromDomain(updated), nil
}

// Delete удаляет печь без активных бронирований
func (s *Service) Delete(ctx context.Context, ovenID, userID string) error {
	s.logger.Info("Delete: deleting oven id=%s by user=%s", ovenID, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	active, err := s.bookings.CountActive(ctx, ovenID)
	if err != nil {
		s.logger.Error("Delete: failed to count bookings of oven id=%s: %v", ovenID, err)
		return fmt.Errorf("%w: Delete - count error: %v", ErrInternal, err)
	}
	if active > 0 {
		s.logger.Warn("Delete: oven id=%s has %d active bookings", ovenID, active)
		return ErrOvenInUse
	}

	if err := s.ovenRepo.Delete(ctx, ovenID); err != nil {
		switch {
		case errors.Is(err, ovenRepo.ErrOvenNotFound):
			s.logger.Warn("Delete: oven id=%s not found", ovenID)
			return ErrOvenNotFound
		case errors.Is(err, ovenRepo.ErrOvenReferenced):
			s.logger.Warn("Delete: oven id=%s has booking history", ovenID)
			return ErrOvenReferenced
		}
		s.logger.Error("Delete: repository error for oven id=%s: %v", ovenID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted oven id=%s", ovenID)
	return nil
}

func validateOven(o *domain.Oven) error {
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(o.Name) > domain.MaxOvenNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxOvenNameLength)
	}
	if !o.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, o.Status)
	}
	if o.MaxTemperature != nil && *o.MaxTemperature < 0 {
		return fmt.Errorf("%w: max temperature must be non-negative", ErrInvalidInput)
	}
	if o.Description != nil && utf8.RuneCountInString(*o.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}

func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user=%s not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%s: %v", userID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsAdmin {
		s.logger.Warn("checkAdminAccess: user=%s is not an admin", userID)
		return ErrAccessDenied
	}
	return nil
}
