package user

import "context"

type Repository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	FindByID(ctx context.Context, userID uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// ExistsByUsernameOrEmail reports whether another user already holds
	// either identifier.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	ListAll(ctx context.Context) ([]*User, error)
}
