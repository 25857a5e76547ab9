package sql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
)

const (
	defaultConnectionTimeout  = 20 * time.Second
	defaultMaxOpenConnections = 10
	defaultMaxIdleConnections = 5
)

type (
	Config struct {
		DSN                DSN
		ConnectionTimeout  time.Duration
		MaxOpenConnections int
		MaxIdleConnections int
	}

	DSN struct {
		User     string
		Password string
		Address  string
		Database string
		// SSLMode is passed to lib/pq as is: disable, require, verify-ca or verify-full.
		SSLMode     string
		SSLRootCert string
	}
)

func (d DSN) String() string {
	query := url.Values{}
	if d.SSLMode != "" {
		query.Set("sslmode", d.SSLMode)
	}
	if d.SSLRootCert != "" {
		query.Set("sslrootcert", d.SSLRootCert)
	}

	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Address,
		Path:     d.Database,
		RawQuery: query.Encode(),
	}
	return u.String()
}

type (
	Client interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		GetContext(ctx context.Context, dest any, query string, args ...any) error
		SelectContext(ctx context.Context, dest any, query string, args ...any) error
	}

	ClientTx interface {
		Client
		Commit() error
		Rollback() error
	}

	TxClient interface {
		Client
		Begin(ctx context.Context) (ClientTx, error)
	}

	Database interface {
		TxClient
		Close(ctx context.Context)
	}
)

// database routes queries to the transaction stored in ctx, if any.
type database struct {
	db     *sqlx.DB
	logger log.Logger
}

func NewDatabase(ctx context.Context, config *Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}
	if config.MaxOpenConnections <= 0 {
		config.MaxOpenConnections = defaultMaxOpenConnections
	}
	if config.MaxIdleConnections <= 0 {
		config.MaxIdleConnections = defaultMaxIdleConnections
	}

	db, err := openConnection(ctx, config)
	if err != nil {
		return nil, err
	}

	return WrapDB(db, logger), nil
}

func WrapDB(db *sqlx.DB, logger log.Logger) Database {
	enablePostgreSQLSquirrelPlaceholderFormat()
	return &database{
		db:     db,
		logger: logger,
	}
}

func (d *database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.client(ctx).ExecContext(ctx, query, args...)
}

func (d *database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.client(ctx).GetContext(ctx, dest, query, args...)
}

func (d *database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.client(ctx).SelectContext(ctx, dest, query, args...)
}

func (d *database) Begin(ctx context.Context) (ClientTx, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (d *database) Close(ctx context.Context) {
	err := d.db.Close()
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func (d *database) client(ctx context.Context) Client {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.ClientTx
	}
	return d.db
}

func openConnection(ctx context.Context, config *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", config.DSN.String())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(config.MaxOpenConnections)
	db.SetMaxIdleConns(config.MaxIdleConnections)

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

var squirrelPlaceholderOnceDoer = &sync.Once{}

func enablePostgreSQLSquirrelPlaceholderFormat() {
	squirrelPlaceholderOnceDoer.Do(func() {
		sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	})
}
