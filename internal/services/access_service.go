package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/apperror"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"gorm.io/gorm"
)

// AccessService answers dashboard permission questions for the HTTP guard.
type AccessService struct {
	dashboardRepo repository.DashboardRepository
	columnRepo    repository.ColumnRepository
}

// NewAccessService creates a new AccessService.
func NewAccessService(dashboardRepo repository.DashboardRepository, columnRepo repository.ColumnRepository) *AccessService {
	return &AccessService{
		dashboardRepo: dashboardRepo,
		columnRepo:    columnRepo,
	}
}

// ResolveDashboardID treats id as a column ID when such a column exists and
// returns its dashboard; otherwise id is taken to be a dashboard ID.
func (s *AccessService) ResolveDashboardID(id string) (string, error) {
	column, err := s.columnRepo.FindByID(id)
	if err == nil {
		return column.DashboardID, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return id, nil
	}
	return "", fmt.Errorf("failed to find column: %w", err)
}

// RequireAdmin fails with Forbidden unless userID holds the admin role on the dashboard.
func (s *AccessService) RequireAdmin(dashboardID, userID string) error {
	member, err := s.dashboardRepo.FindMember(dashboardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.Forbidden("you are not a member of this dashboard")
		}
		return fmt.Errorf("failed to find membership: %w", err)
	}
	if member.Role != models.DashboardRoleAdmin {
		return apperror.Forbidden("only dashboard admins can perform this action")
	}
	return nil
}
