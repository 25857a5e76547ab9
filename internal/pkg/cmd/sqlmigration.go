package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
	"github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type (
	// SQLMigrations collects the migration sources of every module, so the schema is brought up to date in one run at start-up.
	SQLMigrations interface {
		Register(sources ...sql.MigrationSource)
		Execute(context.Context) error
		MustExecute(context.Context)
	}

	sqlMigrations struct {
		migrator *sql.Migrator
		logger   log.Logger

		mutex   sync.Mutex
		names   map[string]struct{}
		pending []sql.MigrationSource
	}
)

func NewSQLMigrations(db sql.Database, logger log.Logger) SQLMigrations {
	return &sqlMigrations{
		migrator: sql.NewMigrator(db, logger),
		logger:   logger,
		names:    make(map[string]struct{}),
	}
}

// Register queues sources, a source whose name is already known is skipped.
func (s *sqlMigrations) Register(sources ...sql.MigrationSource) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, source := range sources {
		if _, ok := s.names[source.Name()]; ok {
			continue
		}

		s.names[source.Name()] = struct{}{}
		s.pending = append(s.pending, source)
	}
}

// Execute applies the queued sources in registration order and clears the queue on success.
func (s *sqlMigrations) Execute(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	err := s.migrator.Execute(ctx, s.pending...)
	if err != nil {
		return fmt.Errorf("execute migrations: %w", err)
	}

	s.logger.WithField("sources", len(s.pending)).Info(ctx, "sql migrations applied")
	s.pending = nil
	return nil
}

func (s *sqlMigrations) MustExecute(ctx context.Context) {
	err := s.Execute(ctx)
	if err != nil {
		panic(err)
	}
}
