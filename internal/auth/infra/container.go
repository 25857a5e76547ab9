package infra

import (
	"github.com/klwxsrx/farm-expense-tracker/data/sql/auth"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/domain"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/infra/sql"
	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	"github.com/klwxsrx/farm-expense-tracker/pkg/lazy"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type SQLContainer struct {
	UserRepo lazy.Loader[domain.UserRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().Register(auth.Migrations)

		return SQLContainer{
			UserRepo: userRepoProvider(db),
		}, nil
	})
}

func userRepoProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[domain.UserRepository] {
	return lazy.New(func() (domain.UserRepository, error) {
		return sql.NewUserRepository(db.MustLoad()), nil
	})
}
