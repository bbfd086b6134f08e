package dto

import (
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// CreateDashboardRequest is the body of POST /dashboards. ownerIds is
// accepted for compatibility; the owner is always the caller.
type CreateDashboardRequest struct {
	Title       string                    `json:"title" binding:"required"`
	OwnerIDs    []string                  `json:"ownerIds"`
	Background  *string                   `json:"background"`
	Description *string                   `json:"description"`
	IsPublic    *bool                     `json:"isPublic"`
	Settings    *models.DashboardSettings `json:"settings"`
}

func (r CreateDashboardRequest) ToInput() services.CreateDashboardInput {
	return services.CreateDashboardInput{
		Title:       r.Title,
		Background:  r.Background,
		Description: r.Description,
		IsPublic:    r.IsPublic,
		Settings:    r.Settings,
	}
}

type UpdateDashboardRequest struct {
	Title       *string                   `json:"title" binding:"omitempty,min=1"`
	Background  *string                   `json:"background"`
	Description *string                   `json:"description"`
	IsPublic    *bool                     `json:"isPublic"`
	Settings    *models.DashboardSettings `json:"settings"`
}

func (r UpdateDashboardRequest) ToInput() services.UpdateDashboardInput {
	return services.UpdateDashboardInput{
		Title:       r.Title,
		Background:  r.Background,
		Description: r.Description,
		IsPublic:    r.IsPublic,
		Settings:    r.Settings,
	}
}

// CreateColumnRequest is the body of POST /columns. A client supplied order
// is ignored; new columns are always appended.
type CreateColumnRequest struct {
	Title       string `json:"title" binding:"required"`
	DashboardID string `json:"dashboardId" binding:"required"`
	Order       *int   `json:"order"`
	IsArchive   *bool  `json:"is_archive"`
}

func (r CreateColumnRequest) ToInput() services.CreateColumnInput {
	return services.CreateColumnInput{
		Title:       r.Title,
		DashboardID: r.DashboardID,
		IsArchive:   r.IsArchive,
	}
}

type UpdateColumnRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1"`
	Order     *int    `json:"order" binding:"omitempty,min=1"`
	IsArchive *bool   `json:"is_archive"`
}

func (r UpdateColumnRequest) ToInput() services.UpdateColumnInput {
	return services.UpdateColumnInput{
		Title:     r.Title,
		IsArchive: r.IsArchive,
		Order:     r.Order,
	}
}

// UpdateOrderRequest is the body of PATCH /columns/order. columnIds must name
// every column of the dashboard exactly once.
type UpdateOrderRequest struct {
	DashboardID string   `json:"dashboardId" binding:"required"`
	ColumnIDs   []string `json:"columnIds" binding:"required,dive,required"`
}

// CreateInvitationRequest is the body of POST /invitations. status is
// validated but the stored invitation always starts pending.
type CreateInvitationRequest struct {
	DashboardID  string `json:"dashboardId" binding:"required"`
	InviteeEmail string `json:"inviteeEmail" binding:"required,email"`
	Status       string `json:"status" binding:"omitempty,invitestatus"`
}

func (r CreateInvitationRequest) ToInput() services.CreateInvitationInput {
	return services.CreateInvitationInput{
		DashboardID:  r.DashboardID,
		InviteeEmail: r.InviteeEmail,
	}
}

// MemberDTO represents a dashboard membership in API responses
type MemberDTO struct {
	ID          string               `json:"id"`
	DashboardID string               `json:"dashboardId"`
	Role        models.DashboardRole `json:"role"`
	User        *UserDTO             `json:"user,omitempty"`
}

// ToMemberDTOs converts memberships, blanking any embedded credentials
func ToMemberDTOs(members []models.DashboardMember) []MemberDTO {
	out := make([]MemberDTO, len(members))
	for i, m := range members {
		out[i] = MemberDTO{ID: m.ID, DashboardID: m.DashboardID, Role: m.Role}
		if m.User != nil {
			user := ToUserDTO(*m.User)
			out[i].User = &user
		}
	}
	return out
}
