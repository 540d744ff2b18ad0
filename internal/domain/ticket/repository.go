package ticket

import "context"

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// ListAll returns every ticket in insertion order.
	ListAll(ctx context.Context) ([]*Ticket, error)
	// ListByUser returns tickets the user created or is assigned to.
	ListByUser(ctx context.Context, userID uint) ([]*Ticket, error)
}
