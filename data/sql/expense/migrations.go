package expense

import (
	"embed"

	"github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

var Migrations = sql.FSMigrations("expense", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
