package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var cardAssociations = []string{
	"Members",
	"Labels",
	"Checklists",
	"Checklists.Items",
	"Comments",
	"Comments.User",
	"Attachments",
}

// OrderedColumns sorts columns by their position within the dashboard.
func OrderedColumns(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// OrderedCards sorts cards by their dashboard-wide number.
func OrderedCards(db *gorm.DB) *gorm.DB {
	return db.Order("number ASC")
}

// CardRelations preloads everything a card response carries.
func CardRelations(db *gorm.DB) *gorm.DB {
	return preloadCards(db, "")
}

// DashboardTree preloads a dashboard with its members, ordered columns,
// every card relation and the invitations.
func DashboardTree(db *gorm.DB) *gorm.DB {
	db = db.
		Preload("Members.User").
		Preload("Columns", OrderedColumns).
		Preload("Columns.Cards", OrderedCards).
		Preload("Invitations")
	return preloadCards(db, "Columns.Cards.")
}

// DashboardSummary is the lighter preload used for dashboard lists.
func DashboardSummary(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Members.User").
		Preload("Columns", OrderedColumns).
		Preload("Columns.Cards", OrderedCards).
		Preload("Invitations")
}

// ForUpdate takes a row lock on the selected rows for the rest of the
// transaction. Dialects without row locks (sqlite) ignore the clause.
func ForUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func preloadCards(db *gorm.DB, prefix string) *gorm.DB {
	for _, assoc := range cardAssociations {
		db = db.Preload(prefix + assoc)
	}
	return db
}
