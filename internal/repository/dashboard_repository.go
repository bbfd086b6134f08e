package repository

import (
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDashboardRepository is a GORM implementation of DashboardRepository
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &GormDashboardRepository{db: db}
}

// CreateWithAdmin creates the dashboard and the creator's admin membership in one transaction.
func (r *GormDashboardRepository) CreateWithAdmin(dashboard *models.Dashboard, adminID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(dashboard).Error; err != nil {
			return err
		}

		member := &models.DashboardMember{
			UserID:      adminID,
			DashboardID: dashboard.ID,
			Role:        models.DashboardRoleAdmin,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		dashboard.Members = []models.DashboardMember{*member}
		return nil
	})
}

// FindByID finds a dashboard by ID
func (r *GormDashboardRepository) FindByID(id string) (*models.Dashboard, error) {
	var dashboard models.Dashboard
	if err := r.db.Where("id = ?", id).First(&dashboard).Error; err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// FindTree finds a dashboard with its full tree of relations
func (r *GormDashboardRepository) FindTree(id string) (*models.Dashboard, error) {
	var dashboard models.Dashboard
	if err := r.db.Scopes(database.DashboardTree).Where("id = ?", id).First(&dashboard).Error; err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// ListByIDs lists dashboards by ID, oldest first
func (r *GormDashboardRepository) ListByIDs(ids []string) ([]models.Dashboard, error) {
	dashboards := []models.Dashboard{}
	if len(ids) == 0 {
		return dashboards, nil
	}
	if err := r.db.Scopes(database.DashboardSummary).
		Where("id IN ?", ids).
		Order("created_at ASC").
		Find(&dashboards).Error; err != nil {
		return nil, err
	}
	return dashboards, nil
}

// ListIDsForUser returns the distinct dashboard IDs the user is a member of
func (r *GormDashboardRepository) ListIDsForUser(userID string) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.DashboardMember{}).
		Distinct("dashboard_id").
		Where("user_id = ?", userID).
		Pluck("dashboard_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Update saves the dashboard row
func (r *GormDashboardRepository) Update(dashboard *models.Dashboard) error {
	return r.db.Omit(clause.Associations).Save(dashboard).Error
}

// Delete removes memberships first, then columns with their cards, invitations and the dashboard itself.
func (r *GormDashboardRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dashboard_id = ?", id).Delete(&models.DashboardMember{}).Error; err != nil {
			return err
		}

		var columnIDs []string
		if err := tx.Model(&models.Column{}).Where("dashboard_id = ?", id).Pluck("id", &columnIDs).Error; err != nil {
			return err
		}
		if err := deleteColumns(tx, columnIDs); err != nil {
			return err
		}

		if err := tx.Where("dashboard_id = ?", id).Delete(&models.DashboardInvitation{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Dashboard{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// FindMember finds a user's membership in a dashboard
func (r *GormDashboardRepository) FindMember(dashboardID, userID string) (*models.DashboardMember, error) {
	var member models.DashboardMember
	if err := r.db.Where("dashboard_id = ? AND user_id = ?", dashboardID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists all members of a dashboard
func (r *GormDashboardRepository) ListMembers(dashboardID string) ([]models.DashboardMember, error) {
	members := []models.DashboardMember{}
	if err := r.db.Preload("User").
		Where("dashboard_id = ?", dashboardID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
