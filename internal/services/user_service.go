package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/apperror"
	"github.com/yukikurage/taskboard-api/internal/auth"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
)

// UserService handles user profile and password management.
type UserService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, lookupError(err, "User", id)
	}
	return user, nil
}

// ChangePassword verifies the current password and stores a hash of the new one.
func (s *UserService) ChangePassword(userID, oldPassword, newPassword string) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Verify(user.Password, oldPassword); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, apperror.Unauthorized("old password is incorrect")
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	hash, err := s.hashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	user.Password = hash
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	return user, nil
}

// UpdateProfileInput carries the profile fields a user may change; nil
// fields are left untouched.
type UpdateProfileInput struct {
	FullName *string
	Avatar   *string
}

// UpdateProfile applies the provided profile fields.
func (s *UserService) UpdateProfile(userID string, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return "", apperror.Validation("password must be 72 bytes or fewer")
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}
