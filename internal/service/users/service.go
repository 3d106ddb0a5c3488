package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-OvenBooking/internal/service/users/models"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// EnsureUser регистрирует пользователя при первом обращении
// Пустые имя и email не затирают сохраненные значения
func (s *Service) EnsureUser(ctx context.Context, req *models.EnsureUserRequest) (*models.UserResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	user, err := s.userRepo.Upsert(ctx, &domain.User{
		ID:    req.UserID,
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	})
	if err != nil {
		s.logger.Error("EnsureUser: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: EnsureUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(user), nil
}

// List возвращает всех пользователей
// Доступно только администраторам
func (s *Service) List(ctx context.Context, userID string) (*models.UserListResponse, error) {
	s.logger.Info("List: listing users for user=%s", userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainList(users), nil
}

// SetRole выдает или снимает роль администратора
func (s *Service) SetRole(ctx context.Context, req *models.SetRoleRequest) (*models.UserResponse, error) {
	s.logger.Info("SetRole: user=%s sets role=%s for user=%s", req.UserID, req.Role, req.TargetUserID)

	// 1. Проверяем роль
	role := domain.Role(req.Role)
	if role != domain.RoleAdmin && role != domain.RoleUser {
		s.logger.Warn("SetRole: unknown role=%s", req.Role)
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	// 2. Проверяем права доступа
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 3. Администратор не может снять роль с самого себя
	if req.TargetUserID == req.UserID && role != domain.RoleAdmin {
		s.logger.Warn("SetRole: user=%s tried to revoke own admin role", req.UserID)
		return nil, ErrSelfDemotion
	}

	// 4. Сохраняем
	if err := s.userRepo.SetAdmin(ctx, req.TargetUserID, role == domain.RoleAdmin); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("SetRole: user=%s not found", req.TargetUserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("SetRole: repository error for user=%s: %v", req.TargetUserID, err)
		return nil, fmt.Errorf("%w: SetRole - repository error: %v", ErrInternal, err)
	}

	user, err := s.userRepo.GetByID(ctx, req.TargetUserID)
	if err != nil {
		s.logger.Error("SetRole: failed to reload user=%s: %v", req.TargetUserID, err)
		return nil, fmt.Errorf("%w: SetRole - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("SetRole: user=%s now has role=%s", user.ID, user.Role())
	return models.FromDomain(user), nil
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
