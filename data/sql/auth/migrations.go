package auth

import (
	"embed"

	"github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

var Migrations = sql.FSMigrations("auth", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
