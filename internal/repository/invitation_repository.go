package repository

import (
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvitationRepository is a GORM implementation of InvitationRepository
type GormInvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new InvitationRepository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &GormInvitationRepository{db: db}
}

// Create creates a new invitation
func (r *GormInvitationRepository) Create(invitation *models.DashboardInvitation) error {
	return r.db.Omit(clause.Associations).Create(invitation).Error
}

// ListByDashboard lists a dashboard's invitations, newest first
func (r *GormInvitationRepository) ListByDashboard(dashboardID string) ([]models.DashboardInvitation, error) {
	invitations := []models.DashboardInvitation{}
	if err := r.db.Where("dashboard_id = ?", dashboardID).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}
