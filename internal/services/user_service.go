package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"huurly_backend/internal/auth"
	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
	"huurly_backend/internal/services/dto"
	"huurly_backend/pkg/apperrors"
)

type UserService interface {
	GetUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
	ListUsers(db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error)
	ChangeRole(db *gorm.DB, userID string, newRole models.UserRole) (*dto.UserResponse, error)
	ChangeStatus(db *gorm.DB, userID string, status models.UserStatus) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.userRepo.List(db, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users:    make([]dto.UserResponse, 0, len(users)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

// ChangeRole applies an admin-initiated role change. Only transitions
// in the static table are allowed; everything else is rejected even
// for admins, so accidental staff-role grants cannot happen here.
func (s *userService) ChangeRole(db *gorm.DB, userID string, newRole models.UserRole) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role == newRole {
		return nil, apperrors.ErrInvalidOperation("user",
			"Gebruiker heeft deze rol al")
	}

	if !auth.CanTransitionRole(user.Role, newRole) {
		return nil, apperrors.ErrInvalidOperation("user",
			fmt.Sprintf("Rolwijziging van %s naar %s is niet toegestaan", user.Role, newRole))
	}

	if err := s.userRepo.UpdateRole(db, userID, newRole); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.Role = newRole
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) ChangeStatus(db *gorm.DB, userID string, status models.UserStatus) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateStatus(db, userID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.Status = status
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
