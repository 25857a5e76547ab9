package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/domain"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type userRepository struct {
	db pkgsql.Client
}

func NewUserRepository(db pkgsql.Client) domain.UserRepository {
	return userRepository{db: db}
}

func (r userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r userRepository) Add(ctx context.Context, user *domain.User) error {
	query, args, err := sq.
		Insert("users").
		Columns("id", "username", "password_hash").
		Values(user.ID.UUID, user.Username, user.PasswordHash).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	err = pkgsql.WrapError(err)
	if errors.Is(err, pkgsql.ErrDuplicateKey) {
		return fmt.Errorf("%w: %w", domain.ErrUserAlreadyExists, err)
	}

	return err
}

func (r userRepository) Find(ctx context.Context, spec domain.FindUserSpecification) ([]domain.User, error) {
	query, args, err := r.buildFindQuery(spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxUser
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

func (r userRepository) FindOne(ctx context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	query, args, err := r.buildFindQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user := row.toDomain()
	return &user, nil
}

func (r userRepository) buildFindQuery(spec domain.FindUserSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "username", "password_hash", "created_at").
		From("users").
		OrderBy("username ASC")
	if len(spec.IDs) > 0 {
		ids := make([]uuid.UUID, 0, len(spec.IDs))
		for _, id := range spec.IDs {
			ids = append(ids, id.UUID)
		}
		qb = qb.Where(sq.Eq{"id": ids})
	}
	if len(spec.Usernames) > 0 {
		qb = qb.Where(sq.Eq{"username": spec.Usernames})
	}

	return qb
}

type sqlxUser struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u sqlxUser) toDomain() domain.User {
	return domain.User{
		ID:           domain.UserID{UUID: u.ID},
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
