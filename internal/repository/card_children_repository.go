package repository

import (
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Each Replace* method deletes every existing child of the parent with one
// bulk delete and inserts the given rows, inside its own transaction.

// GormLabelRepository is a GORM implementation of LabelRepository
type GormLabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &GormLabelRepository{db: db}
}

func (r *GormLabelRepository) ReplaceForCard(cardID string, labels []models.Label) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", cardID).Delete(&models.Label{}).Error; err != nil {
			return err
		}
		if len(labels) == 0 {
			return nil
		}
		for i := range labels {
			labels[i].CardID = cardID
		}
		return tx.Create(&labels).Error
	})
}

func (r *GormLabelRepository) ListByCard(cardID string) ([]models.Label, error) {
	labels := []models.Label{}
	err := r.db.Where("card_id = ?", cardID).Order("created_at ASC").Find(&labels).Error
	return labels, err
}

// GormChecklistRepository is a GORM implementation of ChecklistRepository
type GormChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) ChecklistRepository {
	return &GormChecklistRepository{db: db}
}

func (r *GormChecklistRepository) ReplaceForCard(cardID string, checklists []models.Checklist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		existing := tx.Model(&models.Checklist{}).Select("id").Where("card_id = ?", cardID)
		if err := tx.Where("checklist_id IN (?)", existing).Delete(&models.ChecklistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("card_id = ?", cardID).Delete(&models.Checklist{}).Error; err != nil {
			return err
		}
		if len(checklists) == 0 {
			return nil
		}
		for i := range checklists {
			checklists[i].CardID = cardID
		}
		return tx.Omit(clause.Associations).Create(&checklists).Error
	})
}

func (r *GormChecklistRepository) ListByCard(cardID string) ([]models.Checklist, error) {
	checklists := []models.Checklist{}
	err := r.db.Where("card_id = ?", cardID).Order("created_at ASC").Find(&checklists).Error
	return checklists, err
}

// GormChecklistItemRepository is a GORM implementation of ChecklistItemRepository
type GormChecklistItemRepository struct {
	db *gorm.DB
}

func NewChecklistItemRepository(db *gorm.DB) ChecklistItemRepository {
	return &GormChecklistItemRepository{db: db}
}

func (r *GormChecklistItemRepository) ReplaceForChecklist(checklistID string, items []models.ChecklistItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("checklist_id = ?", checklistID).Delete(&models.ChecklistItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ChecklistID = checklistID
		}
		return tx.Create(&items).Error
	})
}

func (r *GormChecklistItemRepository) ListByChecklist(checklistID string) ([]models.ChecklistItem, error) {
	items := []models.ChecklistItem{}
	err := r.db.Where("checklist_id = ?", checklistID).Order("created_at ASC").Find(&items).Error
	return items, err
}

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) ReplaceForCard(cardID string, comments []models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", cardID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if len(comments) == 0 {
			return nil
		}
		for i := range comments {
			comments[i].CardID = cardID
		}
		return tx.Omit(clause.Associations).Create(&comments).Error
	})
}

func (r *GormCommentRepository) ListByCard(cardID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.Preload("User").Where("card_id = ?", cardID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// GormAttachmentRepository is a GORM implementation of AttachmentRepository
type GormAttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

func (r *GormAttachmentRepository) ReplaceForCard(cardID string, attachments []models.Attachment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", cardID).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		if len(attachments) == 0 {
			return nil
		}
		for i := range attachments {
			attachments[i].CardID = cardID
		}
		return tx.Create(&attachments).Error
	})
}

func (r *GormAttachmentRepository) ListByCard(cardID string) ([]models.Attachment, error) {
	attachments := []models.Attachment{}
	err := r.db.Where("card_id = ?", cardID).Order("created_at ASC").Find(&attachments).Error
	return attachments, err
}
