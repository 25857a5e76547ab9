package cmd_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

func newMigrations(t *testing.T) (cmd.SQLMigrations, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return cmd.NewSQLMigrations(pkgsql.WrapDB(sqlx.NewDb(db, "postgres"), log.NewStub()), log.NewStub()), mock
}

func expectMigrationRun(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("select pg_advisory_xact_lock($1)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS migration")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM migration")).WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func expectMigrationFile(mock sqlmock.Sqlmock, id, query string) {
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO migration VALUES ($1)")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(query)).WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestSQLMigrations_AllModulesAppliedInOneRun(t *testing.T) {
	t.Parallel()
	migrations, mock := newMigrations(t)

	users := pkgsql.FSMigrations("auth", fstest.MapFS{"001_users.sql": {Data: []byte("CREATE TABLE users (id uuid)")}})
	crops := pkgsql.FSMigrations("catalog", fstest.MapFS{"001_crops.sql": {Data: []byte("CREATE TABLE crops (id uuid)")}})
	migrations.Register(users)
	migrations.Register(crops, users)

	expectMigrationRun(mock)
	expectMigrationFile(mock, "auth/001_users.sql", "CREATE TABLE users (id uuid)")
	expectMigrationFile(mock, "catalog/001_crops.sql", "CREATE TABLE crops (id uuid)")
	mock.ExpectCommit()

	require.NoError(t, migrations.Execute(context.Background()))
	assert.NoError(t, migrations.Execute(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLMigrations_NothingRegistered(t *testing.T) {
	t.Parallel()
	migrations, mock := newMigrations(t)

	assert.NotPanics(t, func() { migrations.MustExecute(context.Background()) })
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLMigrations_FailedRunIsRetried(t *testing.T) {
	t.Parallel()
	migrations, mock := newMigrations(t)
	migrations.Register(pkgsql.FSMigrations("expense", fstest.MapFS{
		"001_expenses.sql": {Data: []byte("CREATE TABLE expenses (id uuid)")},
	}))

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
	assert.Panics(t, func() { migrations.MustExecute(context.Background()) })

	expectMigrationRun(mock)
	expectMigrationFile(mock, "expense/001_expenses.sql", "CREATE TABLE expenses (id uuid)")
	mock.ExpectCommit()

	require.NoError(t, migrations.Execute(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
