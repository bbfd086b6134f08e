package dto

import (
	"time"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,strongpassword"`
	FullName *string `json:"fullName" binding:"omitempty,fullname"`
	Avatar   *string `json:"avatar"`
}

func (r RegisterRequest) ToInput() services.RegisterInput {
	return services.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Avatar:   r.Avatar,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token in the body rather than a header.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest is shared by POST /auth/change-password and
// PUT /users/changePassword. The target user is always the caller; a userId
// sent by older clients is accepted and ignored.
type ChangePasswordRequest struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,strongpassword"`
}

type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type GitHubLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateProfileRequest is the body of PATCH /users/me.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,fullname"`
	Avatar   *string `json:"avatar"`
}

func (r UpdateProfileRequest) ToInput() services.UpdateProfileInput {
	return services.UpdateProfileInput{FullName: r.FullName, Avatar: r.Avatar}
}

// UserDTO represents a user in API responses. Password is always blank.
type UserDTO struct {
	ID         string               `json:"id"`
	Email      string               `json:"email"`
	FullName   *string              `json:"fullName"`
	Avatar     *string              `json:"avatar"`
	Password   string               `json:"password"`
	Role       models.UserRole      `json:"role"`
	Provider   *models.AuthProvider `json:"provider"`
	ProviderID *string              `json:"providerId"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// AuthResponse is returned by every endpoint that issues tokens.
type AuthResponse struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	User         UserDTO `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		Role:       user.Role,
		Provider:   user.Provider,
		ProviderID: user.ProviderID,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// ToAuthResponse converts an AuthResult to AuthResponse
func ToAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         ToUserDTO(*result.User),
	}
}
