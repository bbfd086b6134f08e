package repository

import (
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormColumnRepository is a GORM implementation of ColumnRepository
type GormColumnRepository struct {
	db *gorm.DB
}

// NewColumnRepository creates a new ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &GormColumnRepository{db: db}
}

// lockDashboard serializes position and numbering writes per dashboard.
func lockDashboard(tx *gorm.DB, dashboardID string) error {
	var dashboard models.Dashboard
	return tx.Scopes(database.ForUpdate).
		Select("id").
		Where("id = ?", dashboardID).
		First(&dashboard).Error
}

// CreateNext sets Order to the dashboard's column count plus one and creates the column.
func (r *GormColumnRepository) CreateNext(column *models.Column) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockDashboard(tx, column.DashboardID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Column{}).Where("dashboard_id = ?", column.DashboardID).Count(&count).Error; err != nil {
			return err
		}

		column.Order = int(count) + 1
		return tx.Omit(clause.Associations).Create(column).Error
	})
}

// FindByID finds a column by ID with optional preloading
func (r *GormColumnRepository) FindByID(id string, preload ...string) (*models.Column, error) {
	var column models.Column
	query := r.db
	for _, p := range preload {
		if p == "Cards" {
			query = query.Preload(p, database.OrderedCards)
			continue
		}
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&column).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// ListByDashboard lists a dashboard's columns ordered by position
func (r *GormColumnRepository) ListByDashboard(dashboardID string) ([]models.Column, error) {
	columns := []models.Column{}
	if err := r.db.Scopes(database.OrderedColumns).
		Preload("Cards", database.OrderedCards).
		Where("dashboard_id = ?", dashboardID).
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// Update saves the column row
func (r *GormColumnRepository) Update(column *models.Column) error {
	return r.db.Omit(clause.Associations).Save(column).Error
}

// Delete removes the column and its cards in a transaction
func (r *GormColumnRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var column models.Column
		if err := tx.Select("id").Where("id = ?", id).First(&column).Error; err != nil {
			return err
		}
		return deleteColumns(tx, []string{id})
	})
}

// Reorder writes order = position+1 for every id in one transaction
func (r *GormColumnRepository) Reorder(dashboardID string, ids []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockDashboard(tx, dashboardID); err != nil {
			return err
		}
		for i, id := range ids {
			if err := tx.Model(&models.Column{}).
				Where("id = ? AND dashboard_id = ?", id, dashboardID).
				Update("sort_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
