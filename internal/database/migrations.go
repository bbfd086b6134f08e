package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/taskboard-api/internal/models"
	"gorm.io/gorm"
)

// requiredIndexes names the indexes every deployment must carry. They are
// declared on the models; this list guards against schemas created by older
// builds that predate a tag.
var requiredIndexes = []struct {
	model interface{}
	name  string
}{
	{&models.User{}, "idx_user_email"},
	{&models.User{}, "idx_user_provider_provider_id"},
	{&models.DashboardMember{}, "idx_dashboard_users_user_dashboard"},
	{&models.DashboardMember{}, "idx_dashboard_users_dashboard_id"},
	{&models.DashboardMember{}, "idx_dashboard_users_user_id"},
	{&models.Column{}, "idx_columns_dashboard_id"},
	{&models.Card{}, "idx_cards_column_id"},
	{&models.Label{}, "idx_labels_card_id"},
	{&models.Checklist{}, "idx_checklists_card_id"},
	{&models.ChecklistItem{}, "idx_checklist_items_checklist_id"},
	{&models.Comment{}, "idx_comments_card_id"},
	{&models.Comment{}, "idx_comments_user_id"},
	{&models.Attachment{}, "idx_attachments_card_id"},
	{&models.DashboardInvitation{}, "idx_dashboard_invitations_dashboard_id"},
}

// EnsureIndexes creates any declared index missing from the live schema.
func EnsureIndexes(db *gorm.DB, log *slog.Logger) error {
	migrator := db.Migrator()
	for _, idx := range requiredIndexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		log.Info("created index", slog.String("index", idx.name))
	}
	return nil
}
