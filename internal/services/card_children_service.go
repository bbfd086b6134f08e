package services

import (
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
)

// Child collections of a card are replaced wholesale: every existing row is
// deleted and the payload recreated, so incoming IDs are not preserved.

type LabelInput struct {
	ID    *string
	Text  string
	Color string
}

type ChecklistItemInput struct {
	ID        *string
	Text      string
	Completed *bool
}

type ChecklistInput struct {
	ID    *string
	Title string
	Items []ChecklistItemInput
}

type CommentInput struct {
	ID     *string
	Text   string
	UserID *string
}

type AttachmentInput struct {
	Name string
	URL  string
	Type string
	Size int64
}

// LabelService manages card labels.
type LabelService struct {
	repo repository.LabelRepository
}

func NewLabelService(repo repository.LabelRepository) *LabelService {
	return &LabelService{repo: repo}
}

func (s *LabelService) Replace(cardID string, inputs []LabelInput) ([]models.Label, error) {
	labels := make([]models.Label, 0, len(inputs))
	for _, in := range inputs {
		labels = append(labels, models.Label{Text: in.Text, Color: in.Color})
	}
	if err := s.repo.ReplaceForCard(cardID, labels); err != nil {
		return nil, fmt.Errorf("failed to replace labels: %w", err)
	}
	return labels, nil
}

func (s *LabelService) ListByCard(cardID string) ([]models.Label, error) {
	return s.repo.ListByCard(cardID)
}

// ChecklistItemService manages the items of a checklist.
type ChecklistItemService struct {
	repo repository.ChecklistItemRepository
}

func NewChecklistItemService(repo repository.ChecklistItemRepository) *ChecklistItemService {
	return &ChecklistItemService{repo: repo}
}

func (s *ChecklistItemService) Replace(checklistID string, inputs []ChecklistItemInput) ([]models.ChecklistItem, error) {
	items := make([]models.ChecklistItem, 0, len(inputs))
	for _, in := range inputs {
		item := models.ChecklistItem{Text: in.Text}
		if in.Completed != nil {
			item.Completed = *in.Completed
		}
		items = append(items, item)
	}
	if err := s.repo.ReplaceForChecklist(checklistID, items); err != nil {
		return nil, fmt.Errorf("failed to replace checklist items: %w", err)
	}
	return items, nil
}

func (s *ChecklistItemService) ListByChecklist(checklistID string) ([]models.ChecklistItem, error) {
	items, err := s.repo.ListByChecklist(checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	return items, nil
}

// ChecklistService manages card checklists and cascades replacement to their items.
type ChecklistService struct {
	repo  repository.ChecklistRepository
	items *ChecklistItemService
}

func NewChecklistService(repo repository.ChecklistRepository, items *ChecklistItemService) *ChecklistService {
	return &ChecklistService{repo: repo, items: items}
}

func (s *ChecklistService) Replace(cardID string, inputs []ChecklistInput) ([]models.Checklist, error) {
	checklists := make([]models.Checklist, 0, len(inputs))
	for _, in := range inputs {
		checklists = append(checklists, models.Checklist{Title: in.Title})
	}
	if err := s.repo.ReplaceForCard(cardID, checklists); err != nil {
		return nil, fmt.Errorf("failed to replace checklists: %w", err)
	}

	for i := range checklists {
		items, err := s.items.Replace(checklists[i].ID, inputs[i].Items)
		if err != nil {
			return nil, err
		}
		checklists[i].Items = items
	}
	return checklists, nil
}

func (s *ChecklistService) ListByCard(cardID string) ([]models.Checklist, error) {
	checklists, err := s.repo.ListByCard(cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}
	for i := range checklists {
		if checklists[i].Items, err = s.items.ListByChecklist(checklists[i].ID); err != nil {
			return nil, err
		}
	}
	return checklists, nil
}

// CommentService manages card comments.
type CommentService struct {
	repo     repository.CommentRepository
	userRepo repository.UserRepository
}

func NewCommentService(repo repository.CommentRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{repo: repo, userRepo: userRepo}
}

// Replace resolves every author before touching stored comments. Entries
// without a user ID are skipped.
func (s *CommentService) Replace(cardID string, inputs []CommentInput) ([]models.Comment, error) {
	comments := make([]models.Comment, 0, len(inputs))
	for _, in := range inputs {
		if in.UserID == nil || *in.UserID == "" {
			continue
		}
		author, err := s.userRepo.FindByID(*in.UserID)
		if err != nil {
			return nil, lookupError(err, "User", *in.UserID)
		}
		comments = append(comments, models.Comment{
			Text:      in.Text,
			UserID:    author.ID,
			UserEmail: author.Email,
			User:      author,
		})
	}

	if err := s.repo.ReplaceForCard(cardID, comments); err != nil {
		return nil, fmt.Errorf("failed to replace comments: %w", err)
	}
	return comments, nil
}

func (s *CommentService) ListByCard(cardID string) ([]models.Comment, error) {
	return s.repo.ListByCard(cardID)
}

// AttachmentService manages card attachments.
type AttachmentService struct {
	repo repository.AttachmentRepository
}

func NewAttachmentService(repo repository.AttachmentRepository) *AttachmentService {
	return &AttachmentService{repo: repo}
}

func (s *AttachmentService) Replace(cardID string, inputs []AttachmentInput) ([]models.Attachment, error) {
	attachments := make([]models.Attachment, 0, len(inputs))
	for _, in := range inputs {
		attachments = append(attachments, models.Attachment{
			Name: in.Name,
			URL:  in.URL,
			Type: in.Type,
			Size: in.Size,
		})
	}
	if err := s.repo.ReplaceForCard(cardID, attachments); err != nil {
		return nil, fmt.Errorf("failed to replace attachments: %w", err)
	}
	return attachments, nil
}

func (s *AttachmentService) ListByCard(cardID string) ([]models.Attachment, error) {
	return s.repo.ListByCard(cardID)
}
