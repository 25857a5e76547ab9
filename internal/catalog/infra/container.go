package infra

import (
	"github.com/klwxsrx/farm-expense-tracker/data/sql/catalog"
	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/infra/sql"
	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	"github.com/klwxsrx/farm-expense-tracker/pkg/lazy"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type SQLContainer struct {
	CropRepo   lazy.Loader[domain.CropRepository]
	ReasonRepo lazy.Loader[domain.ReasonRepository]
	AmountRepo lazy.Loader[domain.AmountRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().Register(catalog.Migrations)

		return SQLContainer{
			CropRepo: lazy.New(func() (domain.CropRepository, error) {
				return sql.NewCropRepository(db.MustLoad()), nil
			}),
			ReasonRepo: lazy.New(func() (domain.ReasonRepository, error) {
				return sql.NewReasonRepository(db.MustLoad()), nil
			}),
			AmountRepo: lazy.New(func() (domain.AmountRepository, error) {
				return sql.NewAmountRepository(db.MustLoad()), nil
			}),
		}, nil
	})
}
