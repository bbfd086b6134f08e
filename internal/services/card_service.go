package services

import (
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/apperror"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"gorm.io/datatypes"
)

// CardService provides business logic for card operations.
type CardService struct {
	cardRepo      repository.CardRepository
	columnRepo    repository.ColumnRepository
	dashboardRepo repository.DashboardRepository
	userRepo      repository.UserRepository

	labels      *LabelService
	checklists  *ChecklistService
	comments    *CommentService
	attachments *AttachmentService
}

// CardChildren groups the services owning a card's nested collections.
type CardChildren struct {
	Labels      *LabelService
	Checklists  *ChecklistService
	Comments    *CommentService
	Attachments *AttachmentService
}

// NewCardService creates a new CardService.
func NewCardService(
	cardRepo repository.CardRepository,
	columnRepo repository.ColumnRepository,
	dashboardRepo repository.DashboardRepository,
	userRepo repository.UserRepository,
	children CardChildren,
) *CardService {
	return &CardService{
		cardRepo:      cardRepo,
		columnRepo:    columnRepo,
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
		labels:        children.Labels,
		checklists:    children.Checklists,
		comments:      children.Comments,
		attachments:   children.Attachments,
	}
}

// CreateCardInput represents parameters to create a new card.
type CreateCardInput struct {
	Title       string
	DashboardID string
	ColumnID    string
	Description *string
	DueDate     *string
	MemberIDs   []string
	Labels      []LabelInput
	Images      []string
}

// Create numbers the card after the highest number in the dashboard and stores it.
func (s *CardService) Create(input CreateCardInput) (*models.Card, error) {
	if _, err := s.dashboardRepo.FindByID(input.DashboardID); err != nil {
		return nil, lookupError(err, "Dashboard", input.DashboardID)
	}

	column, err := s.columnRepo.FindByID(input.ColumnID)
	if err != nil {
		return nil, lookupError(err, "Column", input.ColumnID)
	}
	if column.DashboardID != input.DashboardID {
		return nil, apperror.BadRequest("column %s does not belong to dashboard %s", input.ColumnID, input.DashboardID)
	}

	members, err := s.resolveMembers(input.MemberIDs)
	if err != nil {
		return nil, err
	}

	card := &models.Card{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Images:      datatypes.JSONSlice[string](input.Images),
		ColumnID:    column.ID,
		Members:     members,
	}
	if err := s.cardRepo.CreateNext(card, input.DashboardID); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	if len(input.Labels) > 0 {
		labels, err := s.labels.Replace(card.ID, input.Labels)
		if err != nil {
			return nil, err
		}
		card.Labels = labels
	}

	return s.Get(card.ID)
}

func (s *CardService) resolveMembers(ids []string) ([]models.User, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	users, err := s.userRepo.FindByIDs(unique)
	if err != nil {
		return nil, fmt.Errorf("failed to find members: %w", err)
	}
	if len(users) != len(unique) {
		found := make(map[string]bool, len(users))
		for _, u := range users {
			found[u.ID] = true
		}
		for _, id := range unique {
			if !found[id] {
				return nil, apperror.NotFound("User", id)
			}
		}
	}
	return users, nil
}

// ListByColumn returns a column's cards with their relations.
func (s *CardService) ListByColumn(columnID string) ([]models.Card, error) {
	if _, err := s.columnRepo.FindByID(columnID); err != nil {
		return nil, lookupError(err, "Column", columnID)
	}

	cards, err := s.cardRepo.ListByColumn(columnID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// Get returns a card with its relations and column.
func (s *CardService) Get(id string) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(id)
	if err != nil {
		return nil, lookupError(err, "Card", id)
	}
	return card, nil
}

// Labels lists the labels of a card.
func (s *CardService) Labels(cardID string) ([]models.Label, error) {
	if err := s.requireCard(cardID); err != nil {
		return nil, err
	}
	return s.labels.ListByCard(cardID)
}

// Checklists lists the checklists of a card with their items.
func (s *CardService) Checklists(cardID string) ([]models.Checklist, error) {
	if err := s.requireCard(cardID); err != nil {
		return nil, err
	}
	return s.checklists.ListByCard(cardID)
}

// Comments lists the comments of a card with their authors.
func (s *CardService) Comments(cardID string) ([]models.Comment, error) {
	if err := s.requireCard(cardID); err != nil {
		return nil, err
	}
	return s.comments.ListByCard(cardID)
}

func (s *CardService) Attachments(cardID string) ([]models.Attachment, error) {
	if err := s.requireCard(cardID); err != nil {
		return nil, err
	}
	return s.attachments.ListByCard(cardID)
}

func (s *CardService) requireCard(id string) error {
	exists, err := s.cardRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to find card: %w", err)
	}
	if !exists {
		return apperror.NotFound("Card", id)
	}
	return nil
}

// UpdateCardInput carries a partial card update. Scalar fields are applied
// when non-nil. A child collection is replaced when its slice is non-nil,
// including an empty slice, which clears it.
type UpdateCardInput struct {
	ColumnID    *string
	Title       *string
	Description *string
	DueDate     *string
	Images      []string

	Labels      []LabelInput
	Checklists  []ChecklistInput
	Comments    []CommentInput
	Attachments []AttachmentInput
}

// Update applies the scalar allow-list first and then replaces the supplied
// child collections one after another. A failing replacement leaves the
// earlier writes in place.
func (s *CardService) Update(id string, input UpdateCardInput) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(id)
	if err != nil {
		return nil, lookupError(err, "Card", id)
	}

	if input.ColumnID != nil {
		column, err := s.columnRepo.FindByID(*input.ColumnID)
		if err != nil {
			return nil, lookupError(err, "Column", *input.ColumnID)
		}
		current := card.Column
		if current == nil {
			if current, err = s.columnRepo.FindByID(card.ColumnID); err != nil {
				return nil, lookupError(err, "Column", card.ColumnID)
			}
		}
		// numbers are unique per dashboard only
		if column.DashboardID != current.DashboardID {
			return nil, apperror.BadRequest("column %s does not belong to dashboard %s", column.ID, current.DashboardID)
		}
		card.ColumnID = column.ID
		card.Column = column
	}
	if input.Title != nil {
		card.Title = *input.Title
	}
	if input.Description != nil {
		card.Description = input.Description
	}
	if input.DueDate != nil {
		card.DueDate = input.DueDate
	}
	if input.Images != nil {
		card.Images = datatypes.JSONSlice[string](input.Images)
	}

	if err := s.cardRepo.UpdateFields(card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	if input.Labels != nil {
		if _, err := s.labels.Replace(card.ID, input.Labels); err != nil {
			return nil, err
		}
	}
	if input.Checklists != nil {
		if _, err := s.checklists.Replace(card.ID, input.Checklists); err != nil {
			return nil, err
		}
	}
	if input.Comments != nil {
		if _, err := s.comments.Replace(card.ID, input.Comments); err != nil {
			return nil, err
		}
	}
	if input.Attachments != nil {
		if _, err := s.attachments.Replace(card.ID, input.Attachments); err != nil {
			return nil, err
		}
	}

	return s.Get(card.ID)
}

// Delete removes a card and its children.
func (s *CardService) Delete(id string) error {
	if err := s.cardRepo.Delete(id); err != nil {
		return lookupError(err, "Card", id)
	}
	return nil
}
