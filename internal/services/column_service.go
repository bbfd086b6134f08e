package services

import (
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/apperror"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
)

// ColumnService provides business logic for column operations.
type ColumnService struct {
	columnRepo    repository.ColumnRepository
	dashboardRepo repository.DashboardRepository
}

// NewColumnService creates a new ColumnService.
func NewColumnService(columnRepo repository.ColumnRepository, dashboardRepo repository.DashboardRepository) *ColumnService {
	return &ColumnService{
		columnRepo:    columnRepo,
		dashboardRepo: dashboardRepo,
	}
}

// CreateColumnInput represents parameters to create a new column.
type CreateColumnInput struct {
	Title       string
	DashboardID string
	IsArchive   *bool
}

// Create appends a column to the end of the dashboard.
func (s *ColumnService) Create(input CreateColumnInput) (*models.Column, error) {
	if _, err := s.dashboardRepo.FindByID(input.DashboardID); err != nil {
		return nil, lookupError(err, "Dashboard", input.DashboardID)
	}

	column := &models.Column{
		Title:       input.Title,
		DashboardID: input.DashboardID,
	}
	if input.IsArchive != nil {
		column.IsArchive = *input.IsArchive
	}

	if err := s.columnRepo.CreateNext(column); err != nil {
		return nil, lookupError(err, "Dashboard", input.DashboardID)
	}
	return column, nil
}

// ListByDashboard returns the dashboard's columns in order with their cards.
func (s *ColumnService) ListByDashboard(dashboardID string) ([]models.Column, error) {
	if _, err := s.dashboardRepo.FindByID(dashboardID); err != nil {
		return nil, lookupError(err, "Dashboard", dashboardID)
	}

	columns, err := s.columnRepo.ListByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	return columns, nil
}

// Get returns a column with its cards and dashboard.
func (s *ColumnService) Get(id string) (*models.Column, error) {
	column, err := s.columnRepo.FindByID(id, "Cards", "Dashboard")
	if err != nil {
		return nil, lookupError(err, "Column", id)
	}
	return column, nil
}

// UpdateColumnInput carries the fields to change; nil fields are kept.
type UpdateColumnInput struct {
	Title     *string
	IsArchive *bool
	Order     *int
}

// Update applies a shallow merge of the provided fields.
func (s *ColumnService) Update(id string, input UpdateColumnInput) (*models.Column, error) {
	column, err := s.columnRepo.FindByID(id)
	if err != nil {
		return nil, lookupError(err, "Column", id)
	}

	if input.Title != nil {
		column.Title = *input.Title
	}
	if input.IsArchive != nil {
		column.IsArchive = *input.IsArchive
	}
	if input.Order != nil {
		column.Order = *input.Order
	}

	if err := s.columnRepo.Update(column); err != nil {
		return nil, fmt.Errorf("failed to update column: %w", err)
	}
	return column, nil
}

// Delete removes a column and its cards.
func (s *ColumnService) Delete(id string) error {
	if err := s.columnRepo.Delete(id); err != nil {
		return lookupError(err, "Column", id)
	}
	return nil
}

// Reorder positions the dashboard's columns following columnIDs, which must
// name every column of the dashboard exactly once.
func (s *ColumnService) Reorder(dashboardID string, columnIDs []string) ([]models.Column, error) {
	if _, err := s.dashboardRepo.FindByID(dashboardID); err != nil {
		return nil, lookupError(err, "Dashboard", dashboardID)
	}

	columns, err := s.columnRepo.ListByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	owned := make(map[string]bool, len(columns))
	for _, column := range columns {
		owned[column.ID] = true
	}
	for _, id := range columnIDs {
		if !owned[id] {
			return nil, apperror.NotFoundf("Column with ID %s not found in dashboard %s", id, dashboardID)
		}
	}

	if len(columnIDs) != len(columns) {
		return nil, apperror.BadRequest("expected %d column ids, got %d", len(columns), len(columnIDs))
	}

	seen := make(map[string]bool, len(columnIDs))
	for _, id := range columnIDs {
		if seen[id] {
			return nil, apperror.BadRequest("duplicate column id %s", id)
		}
		seen[id] = true
	}

	if err := s.columnRepo.Reorder(dashboardID, columnIDs); err != nil {
		return nil, fmt.Errorf("failed to reorder columns: %w", err)
	}

	return s.columnRepo.ListByDashboard(dashboardID)
}
