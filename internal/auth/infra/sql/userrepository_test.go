package sql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/domain"
	authinfrasql "github.com/klwxsrx/farm-expense-tracker/internal/auth/infra/sql"
	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

func newRepo(t *testing.T) (domain.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return authinfrasql.NewUserRepository(pkgsql.WrapDB(sqlx.NewDb(db, "postgres"), log.NewStub())), mock
}

func TestUserRepository_FindOne(t *testing.T) {
	t.Parallel()
	repo, mock := newRepo(t)

	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, username, password_hash, created_at FROM users WHERE username IN ($1) ORDER BY username ASC LIMIT 1",
	)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(id.String(), "alice", "hash", createdAt))

	user, err := repo.FindOne(context.Background(), domain.FindUserSpecification{Usernames: []string{"alice"}})
	require.NoError(t, err)
	assert.Equal(t, &domain.User{
		ID:           domain.UserID{UUID: id},
		Username:     "alice",
		PasswordHash: "hash",
		CreatedAt:    createdAt,
	}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindOne_NotFound(t *testing.T) {
	t.Parallel()
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	_, err := repo.FindOne(context.Background(), domain.FindUserSpecification{Usernames: []string{"mallory"}})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Find_All(t *testing.T) {
	t.Parallel()
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at FROM users ORDER BY username ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(uuid.NewString(), "alice", "h1", time.Now()).
			AddRow(uuid.NewString(), "bob", "h2", time.Now()))

	users, err := repo.Find(context.Background(), domain.FindUserSpecification{})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUserRepository_Add(t *testing.T) {
	t.Parallel()
	repo, mock := newRepo(t)

	user := &domain.User{ID: repo.NextID(), Username: "alice", PasswordHash: "hash"}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,username,password_hash) VALUES ($1,$2,$3)")).
		WithArgs(user.ID.String(), "alice", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	require.NoError(t, repo.Add(context.Background(), user))

	err := repo.Add(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
