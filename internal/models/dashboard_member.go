package models

type DashboardRole string

const (
	DashboardRoleUser  DashboardRole = "user"
	DashboardRoleAdmin DashboardRole = "admin"
)

// DashboardMember links a user to a dashboard with a dashboard-scoped role.
// A user holds at most one membership per dashboard.
type DashboardMember struct {
	Base
	UserID      string        `gorm:"type:varchar(36);not null;uniqueIndex:idx_dashboard_users_user_dashboard;index" json:"userId"`
	DashboardID string        `gorm:"type:varchar(36);not null;uniqueIndex:idx_dashboard_users_user_dashboard;index" json:"dashboardId"`
	Role        DashboardRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// Relations
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Dashboard *Dashboard `gorm:"foreignKey:DashboardID" json:"dashboard,omitempty"`
}

func (DashboardMember) TableName() string {
	return "dashboard_users"
}
