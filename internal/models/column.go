package models

type Column struct {
	Base
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Order       int    `gorm:"column:sort_order;not null" json:"order"`
	IsArchive   bool   `gorm:"not null;default:false" json:"is_archive"`
	DashboardID string `gorm:"type:varchar(36);not null;index" json:"dashboardId"`

	// Relations
	Dashboard *Dashboard `gorm:"foreignKey:DashboardID" json:"dashboard,omitempty"`
	Cards     []Card     `gorm:"foreignKey:ColumnID" json:"cards,omitempty"`
}
