package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/taskboard-api/internal/apperror"
	"github.com/yukikurage/taskboard-api/internal/auth"
	"github.com/yukikurage/taskboard-api/internal/cache"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"gorm.io/gorm"
)

const (
	msgInvalidCredentials = "invalid credentials"
	msgInvalidToken       = "invalid or expired token"
	msgRevokedToken       = "token has been revoked"
	msgExternalAuthFailed = "external authentication failed"
)

// AuthService handles registration, login and the token lifecycle.
type AuthService struct {
	userRepo  repository.UserRepository
	users     *UserService
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenIssuer
	cache     cache.TokenCache
	providers auth.Providers
	log       *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	users *UserService,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	tokenCache cache.TokenCache,
	providers auth.Providers,
	log *slog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		cache:     tokenCache,
		providers: providers,
		log:       log,
	}
}

// AuthResult is returned by every operation that signs the user in.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// Principal identifies the caller of an authenticated request.
type Principal struct {
	UserID string
	Email  string
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email    string
	Password string
	FullName *string
	Avatar   *string
}

// Register creates a local account and signs it in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperror.Conflict("user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.users.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		FullName: input.FullName,
		Avatar:   input.Avatar,
		Role:     models.UserRoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("user with this email already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Login verifies credentials and signs the user in.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.HasPassword() {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	if err := s.hasher.Verify(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Refresh re-issues both tokens for a user authenticated by a refresh token.
func (s *AuthService) Refresh(ctx context.Context, userID string) (*AuthResult, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("user no longer exists")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return s.issueTokens(ctx, user)
}

// Logout forgets both cached tokens of the user.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.cache.Delete(ctx, cache.AccessKey(userID), cache.RefreshKey(userID)); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// ChangePassword replaces the password, revokes existing tokens and signs the user in again.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (*AuthResult, error) {
	user, err := s.users.ChangePassword(userID, oldPassword, newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.Logout(ctx, userID); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

// OAuthLogin signs in with an external identity, linking or creating the local user.
func (s *AuthService) OAuthLogin(ctx context.Context, provider models.AuthProvider, credential string) (*AuthResult, error) {
	if !provider.Valid() {
		return nil, apperror.BadRequest("unsupported provider %q", provider)
	}
	p, ok := s.providers[provider]
	if !ok {
		return nil, apperror.BadRequest("%s login is not configured", provider)
	}

	identity, err := p.Exchange(ctx, credential)
	if err != nil {
		s.log.WarnContext(ctx, "external authentication failed",
			slog.String("provider", string(provider)),
			slog.String("error", err.Error()),
		)
		return nil, apperror.Unauthorized(msgExternalAuthFailed)
	}

	user, err := s.linkExternalUser(identity)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *AuthService) linkExternalUser(identity *auth.ExternalIdentity) (*models.User, error) {
	user, err := s.userRepo.FindByProvider(identity.Provider, identity.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find user by provider: %w", err)
	}

	user, err = s.userRepo.FindByEmail(identity.Email)
	switch {
	case err == nil:
		changed := false
		if user.Provider == nil || user.ProviderID == nil {
			provider, externalID := identity.Provider, identity.ExternalID
			user.Provider = &provider
			user.ProviderID = &externalID
			changed = true
		}
		if user.Avatar == nil && identity.AvatarURL != "" {
			user.Avatar = stringPtr(identity.AvatarURL)
			changed = true
		}
		if user.FullName == nil && identity.DisplayName != "" {
			user.FullName = stringPtr(identity.DisplayName)
			changed = true
		}
		if changed {
			if err := s.userRepo.Update(user); err != nil {
				return nil, fmt.Errorf("failed to link external identity: %w", err)
			}
		}
		return user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		provider, externalID := identity.Provider, identity.ExternalID
		user = &models.User{
			Email:      identity.Email,
			Role:       models.UserRoleUser,
			Provider:   &provider,
			ProviderID: &externalID,
		}
		if identity.DisplayName != "" {
			user.FullName = stringPtr(identity.DisplayName)
		}
		if identity.AvatarURL != "" {
			user.Avatar = stringPtr(identity.AvatarURL)
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return user, nil
	default:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
}

// ValidateAccess authenticates a bearer access token.
func (s *AuthService) ValidateAccess(ctx context.Context, token string) (*Principal, error) {
	return s.validate(ctx, auth.AccessToken, token)
}

// ValidateRefresh authenticates a refresh token taken from the request body.
func (s *AuthService) ValidateRefresh(ctx context.Context, token string) (*Principal, error) {
	return s.validate(ctx, auth.RefreshToken, token)
}

// validate accepts a token only while it is the one recorded in the cache
// for its subject; logout or a newer sign-in invalidates it.
func (s *AuthService) validate(ctx context.Context, kind auth.TokenKind, token string) (*Principal, error) {
	claims, err := s.tokens.Parse(kind, token)
	if err != nil {
		return nil, apperror.Unauthorized(msgInvalidToken)
	}

	user, err := s.userRepo.FindByID(claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("user no longer exists")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	cached, err := s.cache.Get(ctx, cacheKey(kind, user.ID))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WarnContext(ctx, "token cache read failed", slog.String("error", err.Error()))
		}
		return nil, apperror.Unauthorized(msgRevokedToken)
	}
	if cached != token {
		return nil, apperror.Unauthorized(msgRevokedToken)
	}

	return &Principal{UserID: user.ID, Email: user.Email}, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*AuthResult, error) {
	snapshot := auth.UserSnapshot{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
	if !user.UpdatedAt.IsZero() {
		updated := user.UpdatedAt
		snapshot.UpdatedAt = &updated
	}

	result := &AuthResult{User: user}
	for _, kind := range []auth.TokenKind{auth.AccessToken, auth.RefreshToken} {
		token, err := s.tokens.Issue(kind, snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to issue %s token: %w", kind, err)
		}
		if err := s.cache.Set(ctx, cacheKey(kind, user.ID), token, s.tokens.TTL(kind)); err != nil {
			return nil, fmt.Errorf("failed to store %s token: %w", kind, err)
		}
		if kind == auth.AccessToken {
			result.AccessToken = token
		} else {
			result.RefreshToken = token
		}
	}
	return result, nil
}

func cacheKey(kind auth.TokenKind, userID string) string {
	if kind == auth.RefreshToken {
		return cache.RefreshKey(userID)
	}
	return cache.AccessKey(userID)
}

func stringPtr(s string) *string {
	return &s
}
