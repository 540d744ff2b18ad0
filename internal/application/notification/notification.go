// Package notification keeps per-session assignment notifications: a toast
// sink that auto-expires entries and a panel sink that holds them until the
// user dismisses or clears them.
package notification

import (
	"fmt"
	"time"
)

// Notification is one assignment alert derived from a ticket. The ID is
// synthetic and unique per emission, so re-notifying the same ticket in a
// later session produces a distinct record.
type Notification struct {
	ID        string    `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotification(ticketID uint, title, priority, category string, now time.Time) Notification {
	return Notification{
		ID:        fmt.Sprintf("notif-%d-%d", ticketID, now.UnixMilli()),
		TicketID:  ticketID,
		Title:     title,
		Priority:  priority,
		Category:  category,
		CreatedAt: now,
	}
}

// TimeAgo renders the age of the notification the way the panel displays it.
func (n Notification) TimeAgo(now time.Time) string {
	d := now.Sub(n.CreatedAt)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Sink receives notifications fanned out by the poller.
type Sink interface {
	Publish(n Notification)
}
