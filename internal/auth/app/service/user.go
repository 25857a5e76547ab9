//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "User=User"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/encoding"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/domain"
	"github.com/klwxsrx/farm-expense-tracker/pkg/persistence"
)

var (
	ErrInvalidUserCredentials = errors.New("invalid user credentials")
	ErrUserAlreadyExists      = domain.ErrUserAlreadyExists
)

const updateUsersLockName = "update_users"

type (
	User interface {
		ListUsernames(context.Context) ([]string, error)
		Register(context.Context, UserCredentials) (UserData, error)
		Exists(ctx context.Context, username string) (bool, error)
	}

	UserCredentials struct {
		Username string
		Password string
	}

	UserData struct {
		ID       domain.UserID
		Username string
	}

	userService struct {
		userRepo        domain.UserRepository
		passwordEncoder encoding.PasswordEncoder
		transaction     persistence.Transaction
	}
)

func NewUser(
	userRepo domain.UserRepository,
	passwordEncoder encoding.PasswordEncoder,
	transaction persistence.Transaction,
) User {
	return &userService{
		userRepo:        userRepo,
		passwordEncoder: passwordEncoder,
		transaction:     transaction,
	}
}

func (s *userService) ListUsernames(ctx context.Context) ([]string, error) {
	users, err := s.userRepo.Find(ctx, domain.FindUserSpecification{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	usernames := make([]string, 0, len(users))
	for _, user := range users {
		usernames = append(usernames, user.Username)
	}

	return usernames, nil
}

func (s *userService) Register(ctx context.Context, credentials UserCredentials) (UserData, error) {
	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		return UserData{}, ErrInvalidUserCredentials
	}

	passwordHash, err := s.passwordEncoder.HashPassword(credentials.Password)
	if errors.Is(err, encoding.ErrPasswordTooLong) {
		return UserData{}, fmt.Errorf("%w: %w", ErrInvalidUserCredentials, err)
	}
	if err != nil {
		return UserData{}, fmt.Errorf("hash password: %w", err)
	}

	return persistence.ExecuteWith(ctx, s.transaction, func(ctx context.Context) (UserData, error) {
		_, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Usernames: []string{username}})
		if err == nil {
			return UserData{}, ErrUserAlreadyExists
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return UserData{}, fmt.Errorf("find user by username: %w", err)
		}

		user := &domain.User{
			ID:           s.userRepo.NextID(),
			Username:     username,
			PasswordHash: passwordHash,
		}
		err = s.userRepo.Add(ctx, user)
		if err != nil {
			return UserData{}, fmt.Errorf("add user: %w", err)
		}

		return UserData{ID: user.ID, Username: user.Username}, nil
	}, updateUsersLockName)
}

func (s *userService) Exists(ctx context.Context, username string) (bool, error) {
	_, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Usernames: []string{username}})
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find user by username: %w", err)
	}

	return true, nil
}
