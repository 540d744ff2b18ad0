package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestNewTicket_Success(t *testing.T) {
	tkt, err := NewTicket(1, 2, "Printer down", "No toner", vo.CategoryGeneral, vo.PriorityHigh)

	require.NoError(t, err)
	assert.Equal(t, uint(1), tkt.CreatorID())
	assert.Equal(t, uint(2), tkt.AssigneeID())
	assert.Equal(t, "Printer down", tkt.Title())
	assert.Equal(t, vo.StatusOpen, tkt.Status())
	assert.Empty(t, tkt.Attachments())
	assert.Nil(t, tkt.Rating())
	assert.False(t, tkt.CreatedAt().IsZero())
}

func TestNewTicket_Defaults(t *testing.T) {
	tkt, err := NewTicket(1, 2, "Printer down", "No toner", "", "")

	require.NoError(t, err)
	assert.Equal(t, vo.CategoryGeneral, tkt.Category())
	assert.Equal(t, vo.PriorityMedium, tkt.Priority())
}

func TestNewTicket_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		creatorID   uint
		assigneeID  uint
		title       string
		description string
		category    vo.Category
		priority    vo.Priority
		wantErr     string
	}{
		{
			name:        "missing creator",
			assigneeID:  2,
			title:       "t",
			description: "d",
			wantErr:     "creator ID is required",
		},
		{
			name:        "missing assignee",
			creatorID:   1,
			title:       "t",
			description: "d",
			wantErr:     "assignee ID is required",
		},
		{
			name:        "empty title",
			creatorID:   1,
			assigneeID:  2,
			description: "d",
			wantErr:     "title is required",
		},
		{
			name:       "empty description",
			creatorID:  1,
			assigneeID: 2,
			title:      "t",
			wantErr:    "description is required",
		},
		{
			name:        "invalid category",
			creatorID:   1,
			assigneeID:  2,
			title:       "t",
			description: "d",
			category:    "Nope",
			wantErr:     "invalid category",
		},
		{
			name:        "invalid priority",
			creatorID:   1,
			assigneeID:  2,
			title:       "t",
			description: "d",
			priority:    "Extreme",
			wantErr:     "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.creatorID, tt.assigneeID, tt.title, tt.description, tt.category, tt.priority)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyUpdate_MergesOnlySuppliedFields(t *testing.T) {
	tkt, err := NewTicket(1, 2, "Printer down", "No toner", vo.CategoryGeneral, vo.PriorityMedium)
	require.NoError(t, err)

	newStatus := vo.StatusInProgress
	err = tkt.ApplyUpdate(Update{
		Title:       "Printer down",
		Description: "No toner, tray two",
		Status:      &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, "No toner, tray two", tkt.Description())
	assert.Equal(t, vo.StatusInProgress, tkt.Status())
	assert.Equal(t, vo.CategoryGeneral, tkt.Category())
	assert.Equal(t, vo.PriorityMedium, tkt.Priority())
	assert.Equal(t, uint(2), tkt.AssigneeID())
}

func TestApplyUpdate_RejectsEmptyTitleOrDescription(t *testing.T) {
	tkt, err := NewTicket(1, 2, "Printer down", "No toner", "", "")
	require.NoError(t, err)

	err = tkt.ApplyUpdate(Update{Title: "", Description: "d"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")

	err = tkt.ApplyUpdate(Update{Title: "t", Description: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
}

func TestSetRating_OnlyTouchesRatingAndUpdatedAt(t *testing.T) {
	rating := 3
	createdAt := time.Now().Add(-time.Hour)
	tkt, err := ReconstructTicket(
		1, 1, 2,
		"Printer down", "No toner",
		vo.CategoryGeneral, vo.PriorityMedium, vo.StatusResolved,
		nil, []string{"/uploads/a.png"},
		createdAt, createdAt,
	)
	require.NoError(t, err)

	err = tkt.SetRating(rating)
	require.NoError(t, err)

	require.NotNil(t, tkt.Rating())
	assert.Equal(t, rating, *tkt.Rating())
	assert.Equal(t, vo.StatusResolved, tkt.Status())
	assert.Equal(t, "Printer down", tkt.Title())
	assert.Equal(t, []string{"/uploads/a.png"}, tkt.Attachments())
	assert.Equal(t, createdAt, tkt.CreatedAt())
	assert.True(t, tkt.UpdatedAt().After(createdAt))
}

func TestSetRating_OutOfRange(t *testing.T) {
	tkt, err := NewTicket(1, 2, "t", "d", "", "")
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		err := tkt.SetRating(rating)
		require.Error(t, err)
		assert.Nil(t, tkt.Rating())
	}
}

func TestAppendAttachments(t *testing.T) {
	tkt, err := NewTicket(1, 2, "t", "d", "", "")
	require.NoError(t, err)

	require.Error(t, tkt.AppendAttachments())

	require.NoError(t, tkt.AppendAttachments("/uploads/a.png"))
	require.NoError(t, tkt.AppendAttachments("/uploads/b.png", "/uploads/c.png"))
	assert.Equal(t, []string{"/uploads/a.png", "/uploads/b.png", "/uploads/c.png"}, tkt.Attachments())
}

func TestNormalizeAttachments(t *testing.T) {
	tests := []struct {
		name        string
		attachments []string
		legacyImage string
		want        []string
	}{
		{
			name: "both empty",
			want: []string{},
		},
		{
			name:        "legacy image only",
			legacyImage: "/uploads/old.png",
			want:        []string{"/uploads/old.png"},
		},
		{
			name:        "list wins over legacy",
			attachments: []string{"/uploads/a.png"},
			legacyImage: "/uploads/old.png",
			want:        []string{"/uploads/a.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAttachments(tt.attachments, tt.legacyImage)
			assert.Equal(t, tt.want, got)

			// Normalizing again must not change the result.
			assert.Equal(t, got, NormalizeAttachments(got, ""))
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, vo.StatusOpen.CanTransitionTo(vo.StatusInProgress))
	assert.True(t, vo.StatusOpen.CanTransitionTo(vo.StatusResolved))
	assert.True(t, vo.StatusInProgress.CanTransitionTo(vo.StatusOpen))
	assert.True(t, vo.StatusResolved.CanTransitionTo(vo.StatusClosed))
	assert.False(t, vo.StatusResolved.CanTransitionTo(vo.StatusOpen))
	assert.False(t, vo.StatusClosed.CanTransitionTo(vo.StatusOpen))
}
