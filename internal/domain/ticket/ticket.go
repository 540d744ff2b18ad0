package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	MinRating            = 1
	MaxRating            = 5
)

type Ticket struct {
	id          uint
	creatorID   uint
	assigneeID  uint
	title       string
	description string
	category    vo.Category
	priority    vo.Priority
	status      vo.Status
	rating      *int
	attachments []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	creatorID uint,
	assigneeID uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
) (*Ticket, error) {
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if category == "" {
		category = vo.DefaultCategory()
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if priority == "" {
		priority = vo.DefaultPriority()
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	return &Ticket{
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusOpen,
		attachments: []string{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	creatorID uint,
	assigneeID uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	status vo.Status,
	rating *int,
	attachments []string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Ticket{
		id:          id,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		rating:      rating,
		attachments: attachments,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() uint {
	return t.assigneeID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Rating() *int {
	return t.rating
}

func (t *Ticket) Attachments() []string {
	attachmentsCopy := make([]string, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Update describes a partial update; nil pointer fields keep their prior value.
// Title and Description are required because the resulting record must never
// hold empty ones.
type Update struct {
	Title       string
	Description string
	Category    *vo.Category
	Priority    *vo.Priority
	Status      *vo.Status
	AssigneeID  *uint
	Rating      *int
}

func (t *Ticket) ApplyUpdate(u Update) error {
	if len(u.Title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(u.Title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(u.Description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(u.Description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if u.Category != nil && !u.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", *u.Category)
	}
	if u.Priority != nil && !u.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *u.Priority)
	}
	if u.Status != nil && !u.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", *u.Status)
	}
	if u.AssigneeID != nil && *u.AssigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if u.Rating != nil && (*u.Rating < MinRating || *u.Rating > MaxRating) {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}

	t.title = u.Title
	t.description = u.Description
	if u.Category != nil {
		t.category = *u.Category
	}
	if u.Priority != nil {
		t.priority = *u.Priority
	}
	if u.Status != nil {
		t.status = *u.Status
	}
	if u.AssigneeID != nil {
		t.assigneeID = *u.AssigneeID
	}
	if u.Rating != nil {
		rating := *u.Rating
		t.rating = &rating
	}
	t.updatedAt = time.Now()

	return nil
}

// SetRating records the star rating without touching any other field. This is
// the path used once a ticket reaches Resolved, so rating submission stays
// decoupled from the general update path.
func (t *Ticket) SetRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}

	t.rating = &rating
	t.updatedAt = time.Now()
	return nil
}

// AppendAttachments adds stored attachment paths in call order.
func (t *Ticket) AppendAttachments(paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("at least one attachment is required")
	}

	t.attachments = append(t.attachments, paths...)
	t.updatedAt = time.Now()
	return nil
}

// NormalizeAttachments resolves the legacy single-image representation into
// the attachment list: a non-empty list wins, otherwise a set legacy image
// becomes a single-element list. Idempotent.
func NormalizeAttachments(attachments []string, legacyImage string) []string {
	if len(attachments) > 0 {
		return attachments
	}
	if legacyImage != "" {
		return []string{legacyImage}
	}
	return []string{}
}
