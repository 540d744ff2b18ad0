package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func storedTicket(t *testing.T, id uint, status vo.Status, attachments []string) *ticket.Ticket {
	t.Helper()
	created := time.Now().Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(
		id, 1, 2,
		"printer offline", "the printer on floor 3 stopped responding",
		vo.CategoryGeneral, vo.PriorityMedium, status,
		nil, attachments,
		created, created,
	)
	require.NoError(t, err)
	return tk
}

type mockTicketRepository struct {
	mock.Mock
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) ListByUser(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

type recordingRemover struct {
	removed []string
	failOn  map[string]error
}

func (r *recordingRemover) Remove(urlPath string) error {
	r.removed = append(r.removed, urlPath)
	if r.failOn != nil {
		return r.failOn[urlPath]
	}
	return nil
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func intPtr(i int) *int { return &i }
