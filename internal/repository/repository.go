package repository

import (
	"github.com/yukikurage/taskboard-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email, including the password hash
	FindByEmail(email string) (*models.User, error)

	// FindByProvider finds a user linked to an external identity
	FindByProvider(provider models.AuthProvider, providerID string) (*models.User, error)

	// FindByIDs returns the users that exist among ids
	FindByIDs(ids []string) ([]models.User, error)

	// Update saves the user's own columns
	Update(user *models.User) error
}

// DashboardRepository defines the interface for dashboard and membership data access
type DashboardRepository interface {
	// CreateWithAdmin creates a dashboard and the creator's admin membership atomically
	CreateWithAdmin(dashboard *models.Dashboard, adminID string) error

	// FindByID finds a dashboard without relations
	FindByID(id string) (*models.Dashboard, error)

	// FindTree finds a dashboard with members, columns, cards and all card relations
	FindTree(id string) (*models.Dashboard, error)

	// ListByIDs lists dashboards with members, columns, cards and invitations
	ListByIDs(ids []string) ([]models.Dashboard, error)

	// ListIDsForUser returns the distinct dashboard IDs the user is a member of
	ListIDsForUser(userID string) ([]string, error)

	// Update saves the dashboard's own columns
	Update(dashboard *models.Dashboard) error

	// Delete removes the dashboard, its memberships and everything it owns
	Delete(id string) error

	// FindMember finds a user's membership in a dashboard
	FindMember(dashboardID, userID string) (*models.DashboardMember, error)

	// ListMembers lists memberships of a dashboard with their users
	ListMembers(dashboardID string) ([]models.DashboardMember, error)
}

// ColumnRepository defines the interface for column data access
type ColumnRepository interface {
	// CreateNext appends a column at the end of its dashboard
	CreateNext(column *models.Column) error

	// FindByID finds a column by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Column, error)

	// ListByDashboard lists a dashboard's columns in order with their cards
	ListByDashboard(dashboardID string) ([]models.Column, error)

	// Update saves the column's own columns
	Update(column *models.Column) error

	// Delete removes the column and its cards
	Delete(id string) error

	// Reorder assigns positions 1..n following ids
	Reorder(dashboardID string, ids []string) error
}

// CardRepository defines the interface for card data access
type CardRepository interface {
	// CreateNext numbers the card after the highest number in the dashboard and creates it
	CreateNext(card *models.Card, dashboardID string) error

	// FindByID finds a card with all of its relations and its column
	FindByID(id string) (*models.Card, error)

	// Exists reports whether a card with the id is stored
	Exists(id string) (bool, error)

	// ListByColumn lists a column's cards with their relations
	ListByColumn(columnID string) ([]models.Card, error)

	// UpdateFields saves the editable scalar fields of a card
	UpdateFields(card *models.Card) error

	// Delete removes the card and its children
	Delete(id string) error
}

// LabelRepository defines the interface for card label data access
type LabelRepository interface {
	ReplaceForCard(cardID string, labels []models.Label) error
	ListByCard(cardID string) ([]models.Label, error)
}

// ChecklistRepository defines the interface for card checklist data access
type ChecklistRepository interface {
	// ReplaceForCard deletes the card's checklists with their items and creates checklists (without items)
	ReplaceForCard(cardID string, checklists []models.Checklist) error
	ListByCard(cardID string) ([]models.Checklist, error)
}

// ChecklistItemRepository defines the interface for checklist item data access
type ChecklistItemRepository interface {
	ReplaceForChecklist(checklistID string, items []models.ChecklistItem) error
	ListByChecklist(checklistID string) ([]models.ChecklistItem, error)
}

// CommentRepository defines the interface for card comment data access
type CommentRepository interface {
	ReplaceForCard(cardID string, comments []models.Comment) error
	ListByCard(cardID string) ([]models.Comment, error)
}

// AttachmentRepository defines the interface for card attachment data access
type AttachmentRepository interface {
	ReplaceForCard(cardID string, attachments []models.Attachment) error
	ListByCard(cardID string) ([]models.Attachment, error)
}

// InvitationRepository defines the interface for dashboard invitation data access
type InvitationRepository interface {
	Create(invitation *models.DashboardInvitation) error
	ListByDashboard(dashboardID string) ([]models.DashboardInvitation, error)
}
