package models

import "gorm.io/datatypes"

// DashboardSettings is stored as a JSON document on the dashboard row.
type DashboardSettings struct {
	IsPublic      bool    `json:"isPublic"`
	AllowComments bool    `json:"allowComments"`
	AllowInvites  bool    `json:"allowInvites"`
	Theme         *string `json:"theme,omitempty"`
}

type Dashboard struct {
	Base
	Title       string                                  `gorm:"type:varchar(255);not null" json:"title"`
	Background  *string                                 `gorm:"type:text" json:"background,omitempty"`
	Description *string                                 `gorm:"type:text" json:"description,omitempty"`
	IsPublic    bool                                    `gorm:"not null;default:false" json:"isPublic"`
	Settings    datatypes.JSONType[*DashboardSettings] `json:"settings"`
	OwnerIDs    datatypes.JSONSlice[string]             `json:"ownerIds"`

	// Relations
	Members     []DashboardMember     `gorm:"foreignKey:DashboardID" json:"dashboardUsers,omitempty"`
	Columns     []Column              `gorm:"foreignKey:DashboardID" json:"columns,omitempty"`
	Invitations []DashboardInvitation `gorm:"foreignKey:DashboardID" json:"invitations,omitempty"`
}
