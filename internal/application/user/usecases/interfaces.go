package usecases

import "context"

// Executor interfaces decouple the HTTP handlers from the concrete use cases.
type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]UserSummary, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*UserDTO, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenGenerator issues a signed access token for an authenticated user.
type TokenGenerator interface {
	Generate(userID uint, username string) (string, error)
}
