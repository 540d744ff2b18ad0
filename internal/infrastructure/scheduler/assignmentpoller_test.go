package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/logger"
)

type fakeSource struct {
	mu      sync.Mutex
	tickets []*ticket.Ticket
	err     error
	calls   int
}

func (s *fakeSource) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.tickets, nil
}

func (s *fakeSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type collectingSink struct {
	published []notification.Notification
}

func (s *collectingSink) Publish(n notification.Notification) {
	s.published = append(s.published, n)
}

type recordingAlerter struct {
	alerts []notification.Notification
	err    error
}

func (a *recordingAlerter) Alert(ctx context.Context, userID uint, n notification.Notification) error {
	a.alerts = append(a.alerts, n)
	return a.err
}

func assignedTicket(t *testing.T, id, assigneeID uint, priority vo.Priority) *ticket.Ticket {
	t.Helper()
	created := time.Now().Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(
		id, 1, assigneeID,
		fmt.Sprintf("ticket %d", id), "details",
		vo.CategoryGeneral, priority, vo.StatusOpen,
		nil, nil, created, created,
	)
	require.NoError(t, err)
	return tk
}

func TestAssignmentPoller_BaselineEmitsNothing(t *testing.T) {
	source := &fakeSource{tickets: []*ticket.Ticket{
		assignedTicket(t, 1, 7, vo.PriorityHigh),
		assignedTicket(t, 2, 7, vo.PriorityLow),
	}}
	sink := &collectingSink{}

	p := NewAssignmentPoller(7, source, nil, time.Minute, logger.NewLogger(), sink)
	p.poll(context.Background())

	assert.Empty(t, sink.published)
}

func TestAssignmentPoller_EmitsOnlyUnseenAssignedTickets(t *testing.T) {
	source := &fakeSource{tickets: []*ticket.Ticket{
		assignedTicket(t, 1, 7, vo.PriorityHigh),
		assignedTicket(t, 2, 9, vo.PriorityLow),
	}}
	sink := &collectingSink{}
	alerter := &recordingAlerter{}

	p := NewAssignmentPoller(7, source, alerter, time.Minute, logger.NewLogger(), sink)
	ctx := context.Background()

	p.poll(ctx)
	require.Empty(t, sink.published)

	source.tickets = append(source.tickets,
		assignedTicket(t, 3, 7, vo.PriorityUrgent),
		assignedTicket(t, 4, 9, vo.PriorityMedium),
		assignedTicket(t, 5, 7, vo.PriorityLow),
	)
	p.poll(ctx)

	require.Len(t, sink.published, 2)
	assert.Equal(t, uint(3), sink.published[0].TicketID)
	assert.Equal(t, uint(5), sink.published[1].TicketID)
	assert.Equal(t, "Urgent", sink.published[0].Priority)
	require.Len(t, alerter.alerts, 2)

	// Already notified tickets stay quiet on the next pass.
	p.poll(ctx)
	assert.Len(t, sink.published, 2)
}

func TestAssignmentPoller_FetchFailureSwallowedAndBaselineDeferred(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("connection refused")}
	sink := &collectingSink{}

	p := NewAssignmentPoller(7, source, nil, time.Minute, logger.NewLogger(), sink)
	ctx := context.Background()

	p.poll(ctx)
	assert.Empty(t, sink.published)

	// The first successful fetch is still the baseline.
	source.err = nil
	source.tickets = []*ticket.Ticket{assignedTicket(t, 1, 7, vo.PriorityHigh)}
	p.poll(ctx)
	assert.Empty(t, sink.published)

	source.tickets = append(source.tickets, assignedTicket(t, 2, 7, vo.PriorityHigh))
	p.poll(ctx)
	assert.Len(t, sink.published, 1)
}

func TestAssignmentPoller_AlerterFailureDoesNotStopEmission(t *testing.T) {
	source := &fakeSource{tickets: nil}
	sink := &collectingSink{}
	alerter := &recordingAlerter{err: fmt.Errorf("smtp down")}

	p := NewAssignmentPoller(7, source, alerter, time.Minute, logger.NewLogger(), sink)
	ctx := context.Background()

	p.poll(ctx)
	source.tickets = []*ticket.Ticket{assignedTicket(t, 1, 7, vo.PriorityHigh)}
	p.poll(ctx)

	assert.Len(t, sink.published, 1)
}

func TestAssignmentPoller_LatePollAfterStopIsDiscarded(t *testing.T) {
	source := &fakeSource{tickets: nil}
	sink := &collectingSink{}

	p := NewAssignmentPoller(7, source, nil, time.Minute, logger.NewLogger(), sink)
	ctx := context.Background()

	p.poll(ctx)
	p.Stop()
	p.Stop()

	source.tickets = []*ticket.Ticket{assignedTicket(t, 1, 7, vo.PriorityHigh)}
	p.poll(ctx)

	assert.Empty(t, sink.published)
}

func TestAssignmentPoller_TickerLoopStops(t *testing.T) {
	source := &fakeSource{tickets: nil}

	p := NewAssignmentPoller(7, source, nil, 10*time.Millisecond, logger.NewLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, p.Start(ctx))
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.GreaterOrEqual(t, source.Calls(), 2)
}
