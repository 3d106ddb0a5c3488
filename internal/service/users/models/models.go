package models

import (
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// EnsureUserRequest данные пользователя из заголовков запроса
type EnsureUserRequest struct {
	UserID string
	Name   string
	Email  string
}

// SetRoleRequest запрос на смену роли
type SetRoleRequest struct {
	UserID       string
	TargetUserID string
	Role         string
}

// UserResponse пользователь в ответе API
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FromDomain конвертирует доменного пользователя в ответ
func FromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt,
	}
}

// FromDomainList конвертирует список пользователей
func FromDomainList(users []domain.User) *UserListResponse {
	resp := &UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, *FromDomain(&users[i]))
	}
	return resp
}
