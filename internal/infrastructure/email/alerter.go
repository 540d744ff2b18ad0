package email

import (
	"context"
	"fmt"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/domain/user"
)

// AssignmentAlerter resolves the assignee's address and sends the assignment
// email. It backs the poller's out-of-band alert channel.
type AssignmentAlerter struct {
	notifier *SMTPNotifier
	users    user.Repository
}

func NewAssignmentAlerter(notifier *SMTPNotifier, users user.Repository) *AssignmentAlerter {
	return &AssignmentAlerter{
		notifier: notifier,
		users:    users,
	}
}

func (a *AssignmentAlerter) Alert(ctx context.Context, userID uint, n notification.Notification) error {
	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve alert recipient: %w", err)
	}
	return a.notifier.NotifyAssignment(u.Email(), n.TicketID, n.Title, n.Priority)
}

// NoopAlerter is used when email delivery is not configured.
type NoopAlerter struct{}

func (NoopAlerter) Alert(ctx context.Context, userID uint, n notification.Notification) error {
	return nil
}
