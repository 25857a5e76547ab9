//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Authentication=Authentication"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/encoding"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/session"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/domain"
	"github.com/klwxsrx/farm-expense-tracker/pkg/auth"
)

const SessionTTL = 120 * time.Minute

// ErrInvalidCredentials is returned both for an unknown username and for a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type (
	Authentication interface {
		Authenticate(ctx context.Context, username, password string) (session.TokenData, error)
		VerifyAuthentication(context.Context, session.EncodedToken) (auth.Identity, error)
	}

	authenticationService struct {
		userRepo        domain.UserRepository
		sessionTokens   session.TokenCodec
		passwordEncoder encoding.PasswordEncoder
	}
)

func NewAuthentication(
	userRepo domain.UserRepository,
	sessionTokens session.TokenCodec,
	passwordEncoder encoding.PasswordEncoder,
) Authentication {
	return &authenticationService{
		userRepo:        userRepo,
		sessionTokens:   sessionTokens,
		passwordEncoder: passwordEncoder,
	}
}

func (s authenticationService) Authenticate(ctx context.Context, username, password string) (session.TokenData, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return session.TokenData{}, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Usernames: []string{username}})
	if errors.Is(err, domain.ErrUserNotFound) {
		return session.TokenData{}, ErrInvalidCredentials
	}
	if err != nil {
		return session.TokenData{}, fmt.Errorf("find user by username: %w", err)
	}

	if !s.passwordEncoder.CompareHash(user.PasswordHash, password) {
		return session.TokenData{}, ErrInvalidCredentials
	}

	token, err := s.sessionTokens.Sign(ctx, auth.Identity{
		SubjectID: user.ID.String(),
		Username:  user.Username,
	}, SessionTTL)
	if err != nil {
		return session.TokenData{}, fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

func (s authenticationService) VerifyAuthentication(ctx context.Context, token session.EncodedToken) (auth.Identity, error) {
	if token == "" {
		return auth.Identity{}, auth.ErrUnauthenticated
	}

	tokenData, err := s.sessionTokens.Verify(ctx, token)
	if errors.Is(err, session.ErrInvalidToken) {
		return auth.Identity{}, fmt.Errorf("%w: %w", auth.ErrUnauthenticated, err)
	}
	if err != nil {
		return auth.Identity{}, fmt.Errorf("verify token: %w", err)
	}

	return tokenData.Identity, nil
}
