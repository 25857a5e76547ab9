package catalog

import (
	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/infra"
	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/infra/http"
	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
	"github.com/klwxsrx/farm-expense-tracker/pkg/lazy"
	"github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type DependencyContainer struct {
	authGate lazy.Loader[pkghttp.HandlerOption]
	handlers []lazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(
	authGate lazy.Loader[pkghttp.HandlerOption],
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) DependencyContainer {
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)
	catalog := catalogServiceProvider(sqlContainer)

	return DependencyContainer{
		authGate: authGate,
		handlers: []lazy.Loader[pkghttp.Handler]{
			lazy.New(func() (pkghttp.Handler, error) {
				return http.NewListCropsHandler(catalog.MustLoad()), nil
			}),
			lazy.New(func() (pkghttp.Handler, error) {
				return http.NewAddCropHandler(catalog.MustLoad()), nil
			}),
			lazy.New(func() (pkghttp.Handler, error) {
				return http.NewListReasonsHandler(catalog.MustLoad()), nil
			}),
			lazy.New(func() (pkghttp.Handler, error) {
				return http.NewAddReasonHandler(catalog.MustLoad()), nil
			}),
			lazy.New(func() (pkghttp.Handler, error) {
				return http.NewListAmountsHandler(catalog.MustLoad()), nil
			}),
			lazy.New(func() (pkghttp.Handler, error) {
				return http.NewAddAmountHandler(catalog.MustLoad()), nil
			}),
		},
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	authGate := c.authGate.MustLoad()
	for _, handler := range c.handlers {
		registry.Register(handler.MustLoad(), authGate)
	}
}

func catalogServiceProvider(sqlContainer lazy.Loader[infra.SQLContainer]) lazy.Loader[service.Catalog] {
	return lazy.New(func() (service.Catalog, error) {
		sqlRepos := sqlContainer.MustLoad()
		return service.NewCatalog(
			sqlRepos.CropRepo.MustLoad(),
			sqlRepos.ReasonRepo.MustLoad(),
			sqlRepos.AmountRepo.MustLoad(),
		), nil
	})
}
