package sql_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
	cataloginfrasql "github.com/klwxsrx/farm-expense-tracker/internal/catalog/infra/sql"
	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

func newDB(t *testing.T) (pkgsql.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return pkgsql.WrapDB(sqlx.NewDb(db, "postgres"), log.NewStub()), mock
}

func TestCropRepository(t *testing.T) {
	t.Parallel()
	db, mock := newDB(t)
	repo := cataloginfrasql.NewCropRepository(db)

	crop := domain.Crop{ID: repo.NextID(), Name: "wheat"}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO crops (id,name) VALUES ($1,$2)")).
		WithArgs(crop.ID.String(), "wheat").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO crops (id,name) VALUES ($1,$2)")).
		WillReturnError(&pq.Error{Code: "23505"})

	barleyID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM crops ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(barleyID.String(), "barley").
			AddRow(crop.ID.String(), "wheat"))

	require.NoError(t, repo.Add(context.Background(), &crop))
	assert.ErrorIs(t, repo.Add(context.Background(), &crop), domain.ErrCatalogEntryAlreadyExists)

	crops, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Crop{
		{ID: domain.CropID{UUID: barleyID}, Name: "barley"},
		crop,
	}, crops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReasonRepository(t *testing.T) {
	t.Parallel()
	db, mock := newDB(t)
	repo := cataloginfrasql.NewReasonRepository(db)

	reason := domain.Reason{ID: repo.NextID(), Reason: "fuel"}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reasons (id,reason) VALUES ($1,$2)")).
		WithArgs(reason.ID.String(), "fuel").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, reason FROM reasons ORDER BY reason ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reason"}).AddRow(reason.ID.String(), "fuel"))

	require.NoError(t, repo.Add(context.Background(), &reason))

	reasons, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Reason{reason}, reasons)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmountRepository(t *testing.T) {
	t.Parallel()
	db, mock := newDB(t)
	repo := cataloginfrasql.NewAmountRepository(db)

	amount := domain.SavedAmount{ID: repo.NextID(), Amount: 250.5}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO saved_amounts (id,amount) VALUES ($1,$2)")).
		WithArgs(amount.ID.String(), 250.5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO saved_amounts (id,amount) VALUES ($1,$2)")).
		WillReturnError(&pq.Error{Code: "23505"})

	smallID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, amount FROM saved_amounts ORDER BY amount ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount"}).
			AddRow(smallID.String(), "100.00").
			AddRow(amount.ID.String(), "250.50"))

	require.NoError(t, repo.Add(context.Background(), &amount))
	assert.ErrorIs(t, repo.Add(context.Background(), &amount), domain.ErrCatalogEntryAlreadyExists)

	amounts, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SavedAmount{
		{ID: domain.SavedAmountID{UUID: smallID}, Amount: 100},
		amount,
	}, amounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
