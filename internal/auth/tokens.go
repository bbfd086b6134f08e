package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"
	"github.com/yukikurage/taskboard-api/internal/constants"
)

type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

func (k TokenKind) String() string {
	if k == RefreshToken {
		return "refresh"
	}
	return "access"
}

var (
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrTokenExpired = errors.New("auth: token expired")
)

// UserSnapshot is the denormalized copy of the user embedded in every token.
type UserSnapshot struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  *string    `json:"fullName,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Claims struct {
	Email string       `json:"email"`
	User  UserSnapshot `json:"user"`
	jwt.RegisteredClaims
}

type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// TokenIssuer signs and verifies access and refresh JWTs. Each kind has its
// own secret and lifetime so a refresh token is never accepted as an access
// token and vice versa.
type TokenIssuer struct {
	secrets map[TokenKind][]byte
	ttls    map[TokenKind]time.Duration
	now     func() time.Time
}

func NewTokenIssuer(cfg TokenConfig) (*TokenIssuer, error) {
	if len(cfg.AccessSecret) < constants.MinSecretLength || len(cfg.RefreshSecret) < constants.MinSecretLength {
		return nil, fmt.Errorf("auth: JWT secrets must be at least %d characters", constants.MinSecretLength)
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, errors.New("auth: access and refresh secrets must differ")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("auth: token lifetimes must be positive")
	}

	return &TokenIssuer{
		secrets: map[TokenKind][]byte{
			AccessToken:  []byte(cfg.AccessSecret),
			RefreshToken: []byte(cfg.RefreshSecret),
		},
		ttls: map[TokenKind]time.Duration{
			AccessToken:  cfg.AccessTTL,
			RefreshToken: cfg.RefreshTTL,
		},
		now: time.Now,
	}, nil
}

// TTL is the lifetime of tokens of the given kind.
func (i *TokenIssuer) TTL(kind TokenKind) time.Duration {
	return i.ttls[kind]
}

// Issue signs a token of the given kind for user.
func (i *TokenIssuer) Issue(kind TokenKind, user UserSnapshot) (string, error) {
	now := i.now()
	claims := Claims{
		Email: user.Email,
		User:  user,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        xid.New().String(),
			Subject:   user.ID,
			Issuer:    constants.TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttls[kind])),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secrets[kind])
	if err != nil {
		return "", fmt.Errorf("auth: signing %s token: %w", kind, err)
	}
	return signed, nil
}

// Parse verifies signature, algorithm, issuer and expiry with the kind's secret.
func (i *TokenIssuer) Parse(kind TokenKind, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			return i.secrets[kind], nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(constants.TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
