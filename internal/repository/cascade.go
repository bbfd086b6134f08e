package repository

import (
	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
)

// deleteCards removes the given cards and everything they own. It must run
// inside the caller's transaction.
func deleteCards(tx *gorm.DB, cardIDs []string) error {
	if len(cardIDs) == 0 {
		return nil
	}

	checklistIDs := tx.Model(&models.Checklist{}).Select("id").Where("card_id IN ?", cardIDs)
	if err := tx.Where("checklist_id IN (?)", checklistIDs).Delete(&models.ChecklistItem{}).Error; err != nil {
		return err
	}

	for _, child := range []interface{}{
		&models.Checklist{},
		&models.Label{},
		&models.Comment{},
		&models.Attachment{},
	} {
		if err := tx.Where("card_id IN ?", cardIDs).Delete(child).Error; err != nil {
			return err
		}
	}

	if err := tx.Exec("DELETE FROM card_members WHERE card_id IN ?", cardIDs).Error; err != nil {
		return err
	}

	return tx.Where("id IN ?", cardIDs).Delete(&models.Card{}).Error
}

// deleteColumns removes the given columns with their cards.
func deleteColumns(tx *gorm.DB, columnIDs []string) error {
	if len(columnIDs) == 0 {
		return nil
	}

	var cardIDs []string
	if err := tx.Model(&models.Card{}).Where("column_id IN ?", columnIDs).Pluck("id", &cardIDs).Error; err != nil {
		return err
	}
	if err := deleteCards(tx, cardIDs); err != nil {
		return err
	}

	return tx.Where("id IN ?", columnIDs).Delete(&models.Column{}).Error
}
