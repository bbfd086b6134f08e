package repository

import (
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
)

// GormCardRepository is a GORM implementation of CardRepository
type GormCardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &GormCardRepository{db: db}
}

// CreateNext assigns the next dashboard-wide number under the dashboard lock and creates the card.
// Members are linked, never created or updated.
func (r *GormCardRepository) CreateNext(card *models.Card, dashboardID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockDashboard(tx, dashboardID); err != nil {
			return err
		}

		var highest int
		if err := tx.Model(&models.Card{}).
			Joins("JOIN columns ON columns.id = cards.column_id").
			Where("columns.dashboard_id = ?", dashboardID).
			Select("COALESCE(MAX(cards.number), 0)").
			Scan(&highest).Error; err != nil {
			return err
		}

		card.Number = highest + 1
		return tx.Omit("Members.*", "Column", "Labels", "Checklists", "Comments", "Attachments").Create(card).Error
	})
}

// FindByID finds a card with its relations and column
func (r *GormCardRepository) FindByID(id string) (*models.Card, error) {
	var card models.Card
	if err := r.db.Scopes(database.CardRelations).
		Preload("Column").
		Where("id = ?", id).
		First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *GormCardRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Card{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByColumn lists a column's cards by number
func (r *GormCardRepository) ListByColumn(columnID string) ([]models.Card, error) {
	cards := []models.Card{}
	if err := r.db.Scopes(database.CardRelations, database.OrderedCards).
		Where("column_id = ?", columnID).
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// UpdateFields saves column, title, description, due date and images
func (r *GormCardRepository) UpdateFields(card *models.Card) error {
	return r.db.Model(card).
		Select("column_id", "title", "description", "due_date", "images", "updated_at").
		Updates(card).Error
}

// Delete removes the card and its children in a transaction
func (r *GormCardRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var card models.Card
		if err := tx.Select("id").Where("id = ?", id).First(&card).Error; err != nil {
			return err
		}
		return deleteCards(tx, []string{id})
	})
}
