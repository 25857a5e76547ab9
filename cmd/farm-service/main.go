package main

import (
	"context"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth"
	"github.com/klwxsrx/farm-expense-tracker/internal/catalog"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense"
	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/farm-expense-tracker/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	authContainer := auth.NewDependencyContainer(
		infra.Config,
		infra.Clock,
		infra.DB,
		infra.DBMigrations,
	)
	catalogContainer := catalog.NewDependencyContainer(
		authContainer.AuthGate,
		infra.DB,
		infra.DBMigrations,
	)
	expenseContainer := expense.NewDependencyContainer(
		authContainer.AuthGate,
		authContainer.UserService,
		infra.DB,
		infra.DBMigrations,
	)

	httpServer := infra.HTTPServer.MustLoad()
	authContainer.MustRegisterHTTPHandlers(httpServer)
	catalogContainer.MustRegisterHTTPHandlers(httpServer)
	expenseContainer.MustRegisterHTTPHandlers(httpServer)
	infra.DBMigrations.MustLoad().MustExecute(ctx)

	logger := infra.Logger.MustLoad()
	logger.Info(ctx, "app is ready")

	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
