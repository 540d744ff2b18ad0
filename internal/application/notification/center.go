package notification

import (
	"context"
	"sync"
	"time"

	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// Poller feeds a session's sinks with assignment notifications until stopped.
type Poller interface {
	Start(ctx context.Context) error
	Stop()
}

// PollerFactory builds a poller bound to one user's sinks. The alert
// notifier, repositories and cadence are closed over at wiring time.
type PollerFactory func(userID uint, sinks ...Sink) Poller

type session struct {
	toasts *ToastSink
	panel  *PanelSink
	poller Poller
	cancel context.CancelFunc
}

// Center owns one notification session per logged-in user. A session exists
// from login to logout; its seen-ticket state lives inside the poller and
// dies with the session.
type Center struct {
	mu        sync.Mutex
	sessions  map[uint]*session
	newPoller PollerFactory
	toastTTL  time.Duration
	logger    logger.Interface
}

func NewCenter(newPoller PollerFactory, toastTTL time.Duration, logger logger.Interface) *Center {
	return &Center{
		sessions:  make(map[uint]*session),
		newPoller: newPoller,
		toastTTL:  toastTTL,
		logger:    logger,
	}
}

// StartSession begins polling for the user. Starting an already running
// session is a no-op, so repeated logins do not stack pollers.
func (c *Center) StartSession(userID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sessions[userID]; ok {
		return nil
	}

	toasts := NewToastSink(c.toastTTL)
	panel := NewPanelSink()
	poller := c.newPoller(userID, toasts, panel)

	ctx, cancel := context.WithCancel(context.Background())
	if err := poller.Start(ctx); err != nil {
		cancel()
		c.logger.Errorw("failed to start notification poller", "user_id", userID, "error", err)
		return err
	}

	c.sessions[userID] = &session{
		toasts: toasts,
		panel:  panel,
		poller: poller,
		cancel: cancel,
	}
	c.logger.Infow("notification session started", "user_id", userID)
	return nil
}

// StopSession tears the session down. Stopping a missing session is a no-op.
func (c *Center) StopSession(userID uint) {
	c.mu.Lock()
	s, ok := c.sessions[userID]
	if ok {
		delete(c.sessions, userID)
	}
	c.mu.Unlock()

	if !ok {
		return
	}
	s.poller.Stop()
	s.cancel()
	c.logger.Infow("notification session stopped", "user_id", userID)
}

func (c *Center) get(userID uint) (*session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[userID]
	if !ok {
		return nil, errors.NewNotFoundError("no active notification session")
	}
	return s, nil
}

// PanelItem is a panel notification plus its rendered age.
type PanelItem struct {
	Notification
	TimeAgo string `json:"time_ago"`
}

// Snapshot returns the panel entries (newest first) and the still-live toasts.
func (c *Center) Snapshot(userID uint) ([]PanelItem, []Notification, error) {
	s, err := c.get(userID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	panel := s.panel.List()
	items := make([]PanelItem, 0, len(panel))
	for _, n := range panel {
		items = append(items, PanelItem{Notification: n, TimeAgo: n.TimeAgo(now)})
	}
	return items, s.toasts.Active(), nil
}

// Dismiss removes one notification from both sinks. Unknown ids are a no-op.
func (c *Center) Dismiss(userID uint, id string) error {
	s, err := c.get(userID)
	if err != nil {
		return err
	}
	s.panel.Dismiss(id)
	s.toasts.Dismiss(id)
	return nil
}

// ClearAll empties the panel.
func (c *Center) ClearAll(userID uint) error {
	s, err := c.get(userID)
	if err != nil {
		return err
	}
	s.panel.Clear()
	return nil
}

// Navigate resolves a notification to its ticket and removes it from both
// sinks, mirroring a click-through in the UI.
func (c *Center) Navigate(userID uint, id string) (uint, error) {
	s, err := c.get(userID)
	if err != nil {
		return 0, err
	}

	var ticketID uint
	found := false
	for _, n := range s.panel.List() {
		if n.ID == id {
			ticketID = n.TicketID
			found = true
			break
		}
	}
	if !found {
		for _, n := range s.toasts.Active() {
			if n.ID == id {
				ticketID = n.TicketID
				found = true
				break
			}
		}
	}
	if !found {
		return 0, errors.NewNotFoundError("notification not found")
	}

	s.panel.Dismiss(id)
	s.toasts.Dismiss(id)
	return ticketID, nil
}
