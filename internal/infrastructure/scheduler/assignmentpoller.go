package scheduler

import (
	"context"
	"sync"
	"time"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

// TicketSource is the read side the poller diffs against.
type TicketSource interface {
	ListAll(ctx context.Context) ([]*ticket.Ticket, error)
}

// Alerter delivers an out-of-band alert for a new assignment. Failures are
// logged and never affect the polling loop.
type Alerter interface {
	Alert(ctx context.Context, userID uint, n notification.Notification) error
}

// AssignmentPoller watches for tickets newly assigned to one user. The first
// successful fetch only records what already exists; every later fetch emits
// a notification per unseen assigned ticket, in listing order.
type AssignmentPoller struct {
	userID   uint
	source   TicketSource
	sinks    []notification.Sink
	alerter  Alerter
	interval time.Duration
	logger   logger.Interface

	stopChan chan struct{}
	stopOnce sync.Once

	seen         map[uint]struct{}
	baselineDone bool
}

func NewAssignmentPoller(
	userID uint,
	source TicketSource,
	alerter Alerter,
	interval time.Duration,
	logger logger.Interface,
	sinks ...notification.Sink,
) *AssignmentPoller {
	return &AssignmentPoller{
		userID:   userID,
		source:   source,
		sinks:    sinks,
		alerter:  alerter,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		seen:     make(map[uint]struct{}),
	}
}

func (p *AssignmentPoller) Start(ctx context.Context) error {
	p.logger.Infow("starting assignment poller", "user_id", p.userID, "interval", p.interval)
	go p.run(ctx)
	return nil
}

func (p *AssignmentPoller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}

func (p *AssignmentPoller) run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Infow("assignment poller stopped due to context cancellation", "user_id", p.userID)
			return
		case <-p.stopChan:
			p.logger.Infow("assignment poller stopped", "user_id", p.userID)
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *AssignmentPoller) poll(ctx context.Context) {
	tickets, err := p.source.ListAll(ctx)
	if err != nil {
		// A failed fetch never breaks the cadence.
		p.logger.Warnw("assignment poll failed", "user_id", p.userID, "error", err)
		return
	}

	select {
	case <-p.stopChan:
		// A poll resolving after teardown must not emit.
		return
	default:
	}

	if !p.baselineDone {
		for _, t := range tickets {
			if t.AssigneeID() == p.userID {
				p.seen[t.ID()] = struct{}{}
			}
		}
		p.baselineDone = true
		p.logger.Debugw("assignment baseline recorded", "user_id", p.userID, "seen", len(p.seen))
		return
	}

	for _, t := range tickets {
		if t.AssigneeID() != p.userID {
			continue
		}
		if _, ok := p.seen[t.ID()]; ok {
			continue
		}
		p.seen[t.ID()] = struct{}{}
		p.emit(ctx, t)
	}
}

func (p *AssignmentPoller) emit(ctx context.Context, t *ticket.Ticket) {
	n := notification.NewNotification(
		t.ID(),
		t.Title(),
		t.Priority().String(),
		t.Category().String(),
		time.Now(),
	)

	p.logger.Infow("new assignment detected",
		"user_id", p.userID,
		"ticket_id", t.ID(),
		"priority", n.Priority,
	)

	for _, sink := range p.sinks {
		sink.Publish(n)
	}

	if p.alerter != nil {
		if err := p.alerter.Alert(ctx, p.userID, n); err != nil {
			p.logger.Warnw("assignment alert failed", "user_id", p.userID, "ticket_id", t.ID(), "error", err)
		}
	}
}
