package services

import (
	"fmt"
	"strings"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
)

// InvitationService provides business logic for dashboard invitations.
type InvitationService struct {
	invitationRepo repository.InvitationRepository
	dashboardRepo  repository.DashboardRepository
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(invitationRepo repository.InvitationRepository, dashboardRepo repository.DashboardRepository) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		dashboardRepo:  dashboardRepo,
	}
}

// CreateInvitationInput represents parameters to invite someone to a dashboard.
type CreateInvitationInput struct {
	DashboardID  string
	InviteeEmail string
}

// Create records a pending invitation sent by inviter.
func (s *InvitationService) Create(input CreateInvitationInput, inviter Principal) (*models.DashboardInvitation, error) {
	if _, err := s.dashboardRepo.FindByID(input.DashboardID); err != nil {
		return nil, lookupError(err, "Dashboard", input.DashboardID)
	}

	invitation := &models.DashboardInvitation{
		DashboardID:  input.DashboardID,
		InviterID:    inviter.UserID,
		InviterEmail: inviter.Email,
		InviteeEmail: strings.TrimSpace(input.InviteeEmail),
		Status:       models.InvitationPending,
	}
	if err := s.invitationRepo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}
	return invitation, nil
}

// ListByDashboard returns the dashboard's invitations.
func (s *InvitationService) ListByDashboard(dashboardID string) ([]models.DashboardInvitation, error) {
	if _, err := s.dashboardRepo.FindByID(dashboardID); err != nil {
		return nil, lookupError(err, "Dashboard", dashboardID)
	}

	invitations, err := s.invitationRepo.ListByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}
