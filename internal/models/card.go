package models

import "gorm.io/datatypes"

type Card struct {
	Base
	Number      int                         `gorm:"not null;index" json:"number"`
	Title       string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description *string                     `gorm:"type:text" json:"description,omitempty"`
	DueDate     *string                     `gorm:"type:varchar(64)" json:"dueDate,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	ColumnID    string                      `gorm:"type:varchar(36);not null;index" json:"columnId"`

	// Relations
	Column      *Column      `gorm:"foreignKey:ColumnID" json:"column,omitempty"`
	Members     []User       `gorm:"many2many:card_members" json:"members"`
	Labels      []Label      `gorm:"foreignKey:CardID" json:"labels"`
	Checklists  []Checklist  `gorm:"foreignKey:CardID" json:"checklists"`
	Comments    []Comment    `gorm:"foreignKey:CardID" json:"comments"`
	Attachments []Attachment `gorm:"foreignKey:CardID" json:"attachments"`
}

type Label struct {
	Base
	Text   string `gorm:"type:varchar(255);not null" json:"text"`
	Color  string `gorm:"type:varchar(64);not null" json:"color"`
	CardID string `gorm:"type:varchar(36);not null;index" json:"cardId"`
}

type Checklist struct {
	Base
	Title  string `gorm:"type:varchar(255);not null" json:"title"`
	CardID string `gorm:"type:varchar(36);not null;index" json:"cardId"`

	Items []ChecklistItem `gorm:"foreignKey:ChecklistID" json:"items"`
}

type ChecklistItem struct {
	Base
	Text        string `gorm:"type:text;not null" json:"text"`
	Completed   bool   `gorm:"not null;default:false" json:"completed"`
	ChecklistID string `gorm:"type:varchar(36);not null;index" json:"checklistId"`
}

type Comment struct {
	Base
	Text      string `gorm:"type:text;not null" json:"text"`
	UserID    string `gorm:"type:varchar(36);not null;index" json:"userId"`
	UserEmail string `gorm:"type:varchar(255);not null" json:"userEmail"`
	CardID    string `gorm:"type:varchar(36);not null;index" json:"cardId"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type Attachment struct {
	Base
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	URL    string `gorm:"type:text;not null" json:"url"`
	Type   string `gorm:"type:varchar(255);not null" json:"type"`
	Size   int64  `gorm:"not null" json:"size"`
	CardID string `gorm:"type:varchar(36);not null;index" json:"cardId"`
}
