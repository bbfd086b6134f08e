package dto

import "github.com/yukikurage/taskboard-api/internal/services"

type LabelRequest struct {
	ID    *string `json:"id"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
}

type ChecklistItemRequest struct {
	ID        *string `json:"id"`
	Text      string  `json:"text"`
	Completed *bool   `json:"completed"`
}

type ChecklistRequest struct {
	ID    *string                `json:"id"`
	Title string                 `json:"title"`
	Items []ChecklistItemRequest `json:"items" binding:"omitempty,dive"`
}

// CommentRequest mirrors a stored comment. userEmail and createdAt are
// read-only and ignored on input.
type CommentRequest struct {
	ID        *string `json:"id"`
	Text      string  `json:"text"`
	UserID    *string `json:"userId"`
	UserEmail *string `json:"userEmail"`
	CreatedAt *string `json:"createdAt"`
}

type AttachmentRequest struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
	URL  string  `json:"url"`
	Type string  `json:"type"`
	Size int64   `json:"size" binding:"min=0"`
}

type CreateCardRequest struct {
	Title       string         `json:"title" binding:"required"`
	DashboardID string         `json:"dashboardId" binding:"required"`
	ColumnID    string         `json:"columnId" binding:"required"`
	Description *string        `json:"description"`
	MemberIDs   []string       `json:"memberIds" binding:"omitempty,dive,required"`
	Labels      []LabelRequest `json:"labels" binding:"omitempty,dive"`
	DueDate     *string        `json:"dueDate"`
	Images      []string       `json:"images"`
}

func (r CreateCardRequest) ToInput() services.CreateCardInput {
	return services.CreateCardInput{
		Title:       r.Title,
		DashboardID: r.DashboardID,
		ColumnID:    r.ColumnID,
		Description: r.Description,
		DueDate:     r.DueDate,
		MemberIDs:   r.MemberIDs,
		Labels:      toLabelInputs(r.Labels),
		Images:      r.Images,
	}
}

// UpdateCardRequest accepts a full card document. Only columnId, title,
// description, dueDate and images are applied directly; id, timestamps,
// number, dashboardId and members are ignored. Every child collection that
// is present, even empty, replaces the stored one.
type UpdateCardRequest struct {
	ID          *string             `json:"id"`
	CreatedAt   *string             `json:"createdAt"`
	UpdatedAt   *string             `json:"updatedAt"`
	Number      *int                `json:"number"`
	DashboardID *string             `json:"dashboardId"`
	Members     []any               `json:"members"`
	ColumnID    *string             `json:"columnId"`
	Title       *string             `json:"title" binding:"omitempty,min=1"`
	Description *string             `json:"description"`
	DueDate     *string             `json:"dueDate"`
	Images      []string            `json:"images"`
	Labels      []LabelRequest      `json:"labels" binding:"omitempty,dive"`
	Checklists  []ChecklistRequest  `json:"checklists" binding:"omitempty,dive"`
	Comments    []CommentRequest    `json:"comments" binding:"omitempty,dive"`
	Attachments []AttachmentRequest `json:"attachments" binding:"omitempty,dive"`
}

func (r UpdateCardRequest) ToInput() services.UpdateCardInput {
	input := services.UpdateCardInput{
		ColumnID:    r.ColumnID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Images:      r.Images,
		Labels:      toLabelInputs(r.Labels),
	}

	if r.Checklists != nil {
		input.Checklists = make([]services.ChecklistInput, len(r.Checklists))
		for i, cl := range r.Checklists {
			items := make([]services.ChecklistItemInput, len(cl.Items))
			for j, it := range cl.Items {
				items[j] = services.ChecklistItemInput{ID: it.ID, Text: it.Text, Completed: it.Completed}
			}
			input.Checklists[i] = services.ChecklistInput{ID: cl.ID, Title: cl.Title, Items: items}
		}
	}
	if r.Comments != nil {
		input.Comments = make([]services.CommentInput, len(r.Comments))
		for i, cm := range r.Comments {
			input.Comments[i] = services.CommentInput{ID: cm.ID, Text: cm.Text, UserID: cm.UserID}
		}
	}
	if r.Attachments != nil {
		input.Attachments = make([]services.AttachmentInput, len(r.Attachments))
		for i, at := range r.Attachments {
			input.Attachments[i] = services.AttachmentInput{Name: at.Name, URL: at.URL, Type: at.Type, Size: at.Size}
		}
	}
	return input
}

// toLabelInputs keeps the nil/empty distinction of the request.
func toLabelInputs(labels []LabelRequest) []services.LabelInput {
	if labels == nil {
		return nil
	}
	out := make([]services.LabelInput, len(labels))
	for i, l := range labels {
		out[i] = services.LabelInput{ID: l.ID, Text: l.Text, Color: l.Color}
	}
	return out
}
