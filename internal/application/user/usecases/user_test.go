package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*user.User).SetID(1))
		}).
		Return(nil)

	uc := NewRegisterUseCase(repo, plainHasher{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
		FullName: "Alice Example",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.UserID)
	assert.Equal(t, "alice", result.Username)
	repo.AssertExpectations(t)
}

func TestRegisterUseCase_Execute_DuplicateIdentity(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(true, nil)

	uc := NewRegisterUseCase(repo, plainHasher{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
		FullName: "Alice Example",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegisterUseCase_Execute_ShortPassword(t *testing.T) {
	repo := new(mockUserRepository)

	uc := NewRegisterUseCase(repo, plainHasher{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "abc",
		FullName: "Alice Example",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	existing := storedUser(t, 3, "bob", "bob@example.com", "hunter22")

	repo := new(mockUserRepository)
	repo.On("FindByEmail", mock.Anything, "bob@example.com").Return(existing, nil)

	uc := NewLoginUseCase(repo, plainHasher{}, staticTokens{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "bob@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.UserID)
	assert.Equal(t, "token-for-bob", result.AccessToken)
}

func TestLoginUseCase_Execute_BadCredentialsIndistinguishable(t *testing.T) {
	existing := storedUser(t, 3, "bob", "bob@example.com", "hunter22")

	repo := new(mockUserRepository)
	repo.On("FindByEmail", mock.Anything, "bob@example.com").Return(existing, nil)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(nil, errors.NewNotFoundError("user not found"))

	uc := NewLoginUseCase(repo, plainHasher{}, staticTokens{}, logger.NewLogger())

	_, wrongPassword := uc.Execute(context.Background(), LoginCommand{
		Email:    "bob@example.com",
		Password: "wrong",
	})
	_, unknownEmail := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})

	assert.True(t, errors.IsUnauthorizedError(wrongPassword))
	assert.True(t, errors.IsUnauthorizedError(unknownEmail))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		existing := storedUser(t, 5, "carol", "carol@example.com", "oldpass")

		repo := new(mockUserRepository)
		repo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
		repo.On("Update", mock.Anything, existing).Return(nil)

		uc := NewChangePasswordUseCase(repo, plainHasher{}, logger.NewLogger())

		err := uc.Execute(context.Background(), ChangePasswordCommand{
			UserID:          5,
			CurrentPassword: "oldpass",
			NewPassword:     "newpass",
		})

		require.NoError(t, err)
		assert.Equal(t, "hashed:newpass", existing.PasswordHash())
		repo.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		existing := storedUser(t, 5, "carol", "carol@example.com", "oldpass")

		repo := new(mockUserRepository)
		repo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)

		uc := NewChangePasswordUseCase(repo, plainHasher{}, logger.NewLogger())

		err := uc.Execute(context.Background(), ChangePasswordCommand{
			UserID:          5,
			CurrentPassword: "guess",
			NewPassword:     "newpass",
		})

		assert.True(t, errors.IsUnauthorizedError(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestListUsersUseCase_Execute_OmitsSensitiveFields(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("ListAll", mock.Anything).Return([]*user.User{
		storedUser(t, 1, "alice", "alice@example.com", "x"),
		storedUser(t, 2, "bob", "bob@example.com", "y"),
	}, nil)

	uc := NewListUsersUseCase(repo, logger.NewLogger())

	summaries, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, UserSummary{ID: 1, Username: "alice", FullName: "Test User"}, summaries[0])
}

func TestGetUserUseCase_Execute(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("FindByID", mock.Anything, uint(1)).
		Return(storedUser(t, 1, "alice", "alice@example.com", "x"), nil)

	uc := NewGetUserUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.Email)
}
