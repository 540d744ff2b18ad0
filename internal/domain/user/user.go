package user

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	fullName     string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash, fullName string) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}

	now := time.Now()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, email, passwordHash, fullName string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

// PasswordHash is only consumed by the authentication path; it must never
// appear in any client-facing DTO.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ChangePassword(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash is required")
	}

	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}
