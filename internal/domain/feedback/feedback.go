// Package feedback holds the standalone feedback entity, distinct from the
// star rating embedded in a ticket.
package feedback

import (
	"fmt"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Feedback struct {
	id        uint
	userID    uint
	ticketID  *uint
	rating    int
	comment   string
	createdAt time.Time
}

func NewFeedback(userID uint, ticketID *uint, rating int, comment string) (*Feedback, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	if ticketID != nil && *ticketID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}

	return &Feedback{
		userID:    userID,
		ticketID:  ticketID,
		rating:    rating,
		comment:   comment,
		createdAt: time.Now(),
	}, nil
}

func ReconstructFeedback(
	id uint,
	userID uint,
	ticketID *uint,
	rating int,
	comment string,
	createdAt time.Time,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}

	return &Feedback{
		id:        id,
		userID:    userID,
		ticketID:  ticketID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}, nil
}

func (f *Feedback) ID() uint {
	return f.id
}

func (f *Feedback) UserID() uint {
	return f.userID
}

func (f *Feedback) TicketID() *uint {
	return f.ticketID
}

func (f *Feedback) Rating() int {
	return f.rating
}

func (f *Feedback) Comment() string {
	return f.comment
}

func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}
