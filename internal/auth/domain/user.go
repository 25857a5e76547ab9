//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserRepository=UserRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const Name = "auth"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with specified username already exists")
)

type (
	User struct {
		ID           UserID
		Username     string
		PasswordHash string
		CreatedAt    time.Time
	}

	UserRepository interface {
		NextID() UserID
		Add(context.Context, *User) error
		Find(context.Context, FindUserSpecification) ([]User, error)
		FindOne(context.Context, FindUserSpecification) (*User, error)
	}

	// FindUserSpecification with no criteria matches every user.
	FindUserSpecification struct {
		IDs       []UserID
		Usernames []string
	}

	UserID struct{ uuid.UUID }
)
