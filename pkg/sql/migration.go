package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type (
	MigrationSource interface {
		Name() string
		Files() fs.ReadDirFS
	}

	fsMigrations struct {
		name  string
		files fs.ReadDirFS
	}

	Migrator struct {
		db     TxClient
		logger log.Logger
	}
)

func FSMigrations(name string, files fs.ReadDirFS) MigrationSource {
	return fsMigrations{name: name, files: files}
}

func (m fsMigrations) Name() string {
	return m.name
}

func (m fsMigrations) Files() fs.ReadDirFS {
	return m.files
}

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Execute applies not yet performed migration files in lexical order.
// The whole run holds an advisory lock, so concurrent instances apply each file once.
func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	return NewTransaction(m.db, migrationLock).Execute(ctx, func(ctx context.Context) error {
		_, err := m.db.ExecContext(ctx, migrationTableDDL)
		if err != nil {
			return fmt.Errorf("create migration table: %w", err)
		}

		performed, err := m.getPerformedMigrationIDs(ctx)
		if err != nil {
			return fmt.Errorf("get performed migrations: %w", err)
		}

		for _, source := range sources {
			err = m.executeSource(ctx, source, performed)
			if err != nil {
				return err
			}
		}

		return nil
	}, migrationLock)
}

func (m *Migrator) executeSource(ctx context.Context, source MigrationSource, performed map[string]struct{}) error {
	fileNames, err := getFileNames(source.Files())
	if err != nil {
		return fmt.Errorf("get migration file names of %s: %w", source.Name(), err)
	}

	for _, fileName := range fileNames {
		migrationID := fmt.Sprintf("%s/%s", source.Name(), fileName)
		if _, ok := performed[migrationID]; ok {
			continue
		}

		content, err := fs.ReadFile(source.Files(), fileName)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", migrationID, err)
		}

		err = m.performMigration(ctx, migrationID, string(content))
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", migrationID, err)
		}

		m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	}

	return nil
}

func (m *Migrator) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	if strings.TrimSpace(migrationSQL) == "" {
		return errors.New("empty migration")
	}

	_, err := m.db.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = m.db.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	err := m.db.SelectContext(ctx, &ids, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}

func getFileNames(files fs.ReadDirFS) ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)

	return result, nil
}
