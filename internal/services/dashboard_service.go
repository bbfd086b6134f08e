package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DashboardService provides business logic for dashboard operations.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
	userRepo      repository.UserRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboardRepo repository.DashboardRepository, userRepo repository.UserRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
	}
}

// CreateDashboardInput represents parameters to create a new dashboard.
type CreateDashboardInput struct {
	Title       string
	Background  *string
	Description *string
	IsPublic    *bool
	Settings    *models.DashboardSettings
}

// Create creates a dashboard owned by creatorID, who becomes its admin.
func (s *DashboardService) Create(input CreateDashboardInput, creatorID string) (*models.Dashboard, error) {
	if _, err := s.userRepo.FindByID(creatorID); err != nil {
		return nil, lookupError(err, "User", creatorID)
	}

	dashboard := &models.Dashboard{
		Title:       input.Title,
		Background:  input.Background,
		Description: input.Description,
		OwnerIDs:    datatypes.JSONSlice[string]{creatorID},
	}
	if input.IsPublic != nil {
		dashboard.IsPublic = *input.IsPublic
	}
	if input.Settings != nil {
		dashboard.Settings = datatypes.NewJSONType(input.Settings)
	}

	if err := s.dashboardRepo.CreateWithAdmin(dashboard, creatorID); err != nil {
		return nil, fmt.Errorf("failed to create dashboard: %w", err)
	}
	return dashboard, nil
}

// ListForUser returns every dashboard the user is a member of.
func (s *DashboardService) ListForUser(userID string) ([]models.Dashboard, error) {
	ids, err := s.dashboardRepo.ListIDsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	dashboards, err := s.dashboardRepo.ListByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}
	return dashboards, nil
}

// Get returns a dashboard with its full tree.
func (s *DashboardService) Get(id string) (*models.Dashboard, error) {
	dashboard, err := s.dashboardRepo.FindTree(id)
	if err != nil {
		return nil, lookupError(err, "Dashboard", id)
	}
	return dashboard, nil
}

// UpdateDashboardInput carries the fields to change; nil fields are kept.
// Owner IDs cannot be changed.
type UpdateDashboardInput struct {
	Title       *string
	Background  *string
	Description *string
	IsPublic    *bool
	Settings    *models.DashboardSettings
}

// Update applies a shallow merge of the provided fields.
func (s *DashboardService) Update(id string, input UpdateDashboardInput) (*models.Dashboard, error) {
	dashboard, err := s.dashboardRepo.FindByID(id)
	if err != nil {
		return nil, lookupError(err, "Dashboard", id)
	}

	if input.Title != nil {
		dashboard.Title = *input.Title
	}
	if input.Background != nil {
		dashboard.Background = input.Background
	}
	if input.Description != nil {
		dashboard.Description = input.Description
	}
	if input.IsPublic != nil {
		dashboard.IsPublic = *input.IsPublic
	}
	if input.Settings != nil {
		dashboard.Settings = datatypes.NewJSONType(input.Settings)
	}

	if err := s.dashboardRepo.Update(dashboard); err != nil {
		return nil, fmt.Errorf("failed to update dashboard: %w", err)
	}
	return dashboard, nil
}

// Delete removes a dashboard with its memberships, columns, cards and invitations.
func (s *DashboardService) Delete(id string) error {
	if err := s.dashboardRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lookupError(err, "Dashboard", id)
		}
		return fmt.Errorf("failed to delete dashboard: %w", err)
	}
	return nil
}

// Members lists the dashboard's memberships with their users.
func (s *DashboardService) Members(id string) ([]models.DashboardMember, error) {
	if _, err := s.dashboardRepo.FindByID(id); err != nil {
		return nil, lookupError(err, "Dashboard", id)
	}

	members, err := s.dashboardRepo.ListMembers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboard members: %w", err)
	}
	return members, nil
}
