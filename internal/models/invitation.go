package models

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

type DashboardInvitation struct {
	Base
	DashboardID  string           `gorm:"type:varchar(36);not null;index" json:"dashboardId"`
	InviterID    string           `gorm:"type:varchar(36);not null;index" json:"inviterId"`
	InviterEmail string           `gorm:"type:varchar(255);not null" json:"inviterEmail"`
	InviteeEmail string           `gorm:"type:varchar(255);not null;index" json:"inviteeEmail"`
	Status       InvitationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Dashboard *Dashboard `gorm:"foreignKey:DashboardID" json:"-"`
	Inviter   *User      `gorm:"foreignKey:InviterID" json:"-"`
}

func (DashboardInvitation) TableName() string {
	return "dashboard_invitations"
}
