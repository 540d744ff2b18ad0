package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestSubmitRatingUseCase_Execute_OnlyTouchesRating(t *testing.T) {
	existing := storedTicket(t, 8, vo.StatusResolved, []string{"/uploads/x.png"})
	originalTitle := existing.Title()
	originalStatus := existing.Status()

	repo := new(mockTicketRepository)
	repo.On("FindByID", mock.Anything, uint(8)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	uc := NewSubmitRatingUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), SubmitRatingCommand{TicketID: 8, Rating: 4})

	require.NoError(t, err)
	require.NotNil(t, result.Rating)
	assert.Equal(t, 4, *result.Rating)
	assert.Equal(t, originalTitle, existing.Title())
	assert.Equal(t, originalStatus, existing.Status())
	assert.Equal(t, []string{"/uploads/x.png"}, existing.Attachments())
	repo.AssertExpectations(t)
}

func TestSubmitRatingUseCase_Execute_OutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		existing := storedTicket(t, 8, vo.StatusResolved, nil)

		repo := new(mockTicketRepository)
		repo.On("FindByID", mock.Anything, uint(8)).Return(existing, nil)

		uc := NewSubmitRatingUseCase(repo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), SubmitRatingCommand{TicketID: 8, Rating: rating})

		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	}
}

func TestAppendImagesUseCase_Execute_PreservesOrder(t *testing.T) {
	existing := storedTicket(t, 9, vo.StatusOpen, []string{"/uploads/first.png"})

	repo := new(mockTicketRepository)
	repo.On("FindByID", mock.Anything, uint(9)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	uc := NewAppendImagesUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AppendImagesCommand{
		TicketID: 9,
		Paths:    []string{"/uploads/second.png", "/uploads/third.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/first.png", "/uploads/second.png", "/uploads/third.png"}, result.Images)
	repo.AssertExpectations(t)
}

func TestAppendImagesUseCase_Execute_NoFiles(t *testing.T) {
	repo := new(mockTicketRepository)

	uc := NewAppendImagesUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AppendImagesCommand{TicketID: 9})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
