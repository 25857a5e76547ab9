package cmd

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"time"

	"github.com/klwxsrx/farm-expense-tracker/pkg/cmd"
	"github.com/klwxsrx/farm-expense-tracker/pkg/env"
	"github.com/klwxsrx/farm-expense-tracker/pkg/http"
	"github.com/klwxsrx/farm-expense-tracker/pkg/lazy"
	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
	"github.com/klwxsrx/farm-expense-tracker/pkg/metric"
	"github.com/klwxsrx/farm-expense-tracker/pkg/observability"
	"github.com/klwxsrx/farm-expense-tracker/pkg/sql"
	pkgtime "github.com/klwxsrx/farm-expense-tracker/pkg/time"
)

const metricsNamespace = "farm"

type InfrastructureContainer struct {
	Config       lazy.Loader[Config]
	HTTPServer   lazy.Loader[http.Server]
	DBMigrations lazy.Loader[SQLMigrations]
	DB           lazy.Loader[sql.Database]
	Metrics      lazy.Loader[*metric.PrometheusMetrics]
	Logger       lazy.Loader[log.Logger]
	Clock        lazy.Loader[pkgtime.Clock]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	err := env.LoadDotEnv()
	if err != nil {
		panic(fmt.Errorf("load dotenv: %w", err))
	}

	config := configProvider()
	logger := loggerProvider()
	metrics := metricsProvider(logger)
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, config, logger)
	dbMigrations := sqlMigrationsProvider(db, logger)

	return &InfrastructureContainer{
		Config:       config,
		HTTPServer:   httpServerProvider(config, observer, metrics, logger),
		DBMigrations: dbMigrations,
		DB:           db,
		Metrics:      metrics,
		Logger:       logger,
		Clock:        lazy.Value(pkgtime.NewClock()),
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func configProvider() lazy.Loader[Config] {
	return lazy.New(ParseConfig)
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := log.ParseLevel(logLevelStr)
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func metricsProvider(logger lazy.Loader[log.Logger]) lazy.Loader[*metric.PrometheusMetrics] {
	return lazy.New(func() (*metric.PrometheusMetrics, error) {
		return metric.NewPrometheus(metricsNamespace, logger.MustLoad()), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID, observability.LogFieldUsername),
		), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	config lazy.Loader[Config],
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		dsn := sql.DSN{
			User:     env.Must(env.Parse[string]("SQL_USER")),
			Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
			Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
			Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			SSLMode:  "require",
		}
		if config.MustLoad().IsProduction() {
			dsn.SSLMode = "verify-full"
			dsn.SSLRootCert = env.Must(env.ParseWithDefault("SQL_SSL_ROOT_CERT", ""))
		}

		sqlConfig := &sql.Config{
			DSN:                dsn,
			MaxOpenConnections: env.Must(env.ParseWithDefault("SQL_MAX_OPEN_CONNECTIONS", 0)),
			MaxIdleConnections: env.Must(env.ParseWithDefault("SQL_MAX_IDLE_CONNECTIONS", 0)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	config lazy.Loader[Config],
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[*metric.PrometheusMetrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		return http.NewServer(
			http.WithServerAddress(config.MustLoad().HTTPAddress),
			http.WithObservability(
				observer.MustLoad(),
				http.RequestIDHeaderExtractor(http.RequestIDHeader),
				http.RequestIDRandomUUIDExtractor(),
			),
			http.WithLogging(logger.MustLoad(), "/metrics"),
			http.WithMetrics(metrics.MustLoad()),
			http.WithErrorMapping(nethttp.StatusBadRequest, sql.ErrDuplicateKey),
			http.WithHealthCheck(nil),
			http.WithMetricsHandler(metrics.MustLoad().HTTPHandler()),
		), nil
	})
}
