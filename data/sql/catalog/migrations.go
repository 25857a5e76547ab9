package catalog

import (
	"embed"

	"github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

var Migrations = sql.FSMigrations("catalog", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
