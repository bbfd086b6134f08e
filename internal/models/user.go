package models

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// AuthProvider identifies an external identity provider.
type AuthProvider string

const (
	ProviderGoogle AuthProvider = "google"
	ProviderGitHub AuthProvider = "github"
)

func (p AuthProvider) Valid() bool {
	return p == ProviderGoogle || p == ProviderGitHub
}

type User struct {
	Base
	Email      string        `gorm:"type:varchar(255);uniqueIndex:idx_user_email;not null" json:"email"`
	FullName   *string       `gorm:"type:varchar(255)" json:"fullName,omitempty"`
	Avatar     *string       `gorm:"type:text" json:"avatar,omitempty"`
	Password   string        `gorm:"type:varchar(255);not null;default:''" json:"-"`
	Role       UserRole      `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Provider   *AuthProvider `gorm:"type:varchar(20);uniqueIndex:idx_user_provider_provider_id" json:"provider"`
	ProviderID *string       `gorm:"type:varchar(255);uniqueIndex:idx_user_provider_provider_id" json:"providerId"`

	// Relations
	Memberships []DashboardMember `gorm:"foreignKey:UserID" json:"-"`
}

// HasPassword reports whether the user can sign in with a local password.
// Users created through an external provider carry an empty hash.
func (u *User) HasPassword() bool {
	return u.Password != ""
}
