package auth

import (
	"fmt"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/api"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/encoding"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/service"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/session"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/domain"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/infra"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/infra/http"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/infra/password"
	authinfrasession "github.com/klwxsrx/farm-expense-tracker/internal/auth/infra/session"
	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
	"github.com/klwxsrx/farm-expense-tracker/pkg/lazy"
	"github.com/klwxsrx/farm-expense-tracker/pkg/persistence"
	"github.com/klwxsrx/farm-expense-tracker/pkg/sql"
	pkgtime "github.com/klwxsrx/farm-expense-tracker/pkg/time"
)

type DependencyContainer struct {
	UserService lazy.Loader[api.UserService]
	AuthGate    lazy.Loader[pkghttp.HandlerOption]

	config              lazy.Loader[cmd.Config]
	loginHandler        lazy.Loader[http.LoginHandler]
	logoutHandler       lazy.Loader[http.LogoutHandler]
	listUsersHandler    lazy.Loader[http.ListUsersHandler]
	registerUserHandler lazy.Loader[http.RegisterUserHandler]
}

func NewDependencyContainer(
	config lazy.Loader[cmd.Config],
	clock lazy.Loader[pkgtime.Clock],
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) DependencyContainer {
	transaction := transactionProvider(db)
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)

	passwordEncoder := passwordEncoderProvider()
	sessionTokens := sessionTokenCodecProvider(config, clock)
	sessionCookies := sessionCookiesProvider(config)

	authService := authServiceProvider(sessionTokens, passwordEncoder, sqlContainer)
	userService := userServiceProvider(passwordEncoder, transaction, sqlContainer)

	return DependencyContainer{
		UserService: lazy.New(func() (api.UserService, error) {
			return userService.Load()
		}),
		AuthGate: lazy.New(func() (pkghttp.HandlerOption, error) {
			return http.NewGate(authService.MustLoad()).Option(), nil
		}),
		config: config,
		loginHandler: lazy.New(func() (http.LoginHandler, error) {
			return http.NewLoginHandler(authService.MustLoad(), sessionCookies.MustLoad()), nil
		}),
		logoutHandler: lazy.New(func() (http.LogoutHandler, error) {
			return http.NewLogoutHandler(sessionCookies.MustLoad()), nil
		}),
		listUsersHandler: lazy.New(func() (http.ListUsersHandler, error) {
			return http.NewListUsersHandler(userService.MustLoad()), nil
		}),
		registerUserHandler: lazy.New(func() (http.RegisterUserHandler, error) {
			return http.NewRegisterUserHandler(userService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	config := c.config.MustLoad()
	authGate := c.AuthGate.MustLoad()

	registry.Register(c.loginHandler.MustLoad(),
		pkghttp.WithCORS(config.CORSDefaultOrigin),
		pkghttp.WithRateLimit(config.LoginRateLimit, config.LoginRateBurst),
	)
	registry.Register(c.logoutHandler.MustLoad())
	registry.Register(c.listUsersHandler.MustLoad(), authGate)
	registry.Register(c.registerUserHandler.MustLoad(), authGate)
}

func transactionProvider(db lazy.Loader[sql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		return sql.NewTransaction(db.MustLoad(), domain.Name), nil
	})
}

func passwordEncoderProvider() lazy.Loader[encoding.PasswordEncoder] {
	return lazy.New(func() (encoding.PasswordEncoder, error) {
		return password.NewEncoder(), nil
	})
}

func sessionTokenCodecProvider(
	config lazy.Loader[cmd.Config],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[session.TokenCodec] {
	return lazy.New(func() (session.TokenCodec, error) {
		codec, err := authinfrasession.NewJWTCodec(config.MustLoad().JWTSecret, clock.MustLoad())
		if err != nil {
			return nil, fmt.Errorf("create session token codec: %w", err)
		}
		return codec, nil
	})
}

func sessionCookiesProvider(config lazy.Loader[cmd.Config]) lazy.Loader[http.SessionCookies] {
	return lazy.New(func() (http.SessionCookies, error) {
		return http.NewSessionCookies(config.MustLoad().IsProduction()), nil
	})
}

func authServiceProvider(
	sessionTokens lazy.Loader[session.TokenCodec],
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
	sqlContainer lazy.Loader[infra.SQLContainer],
) lazy.Loader[service.Authentication] {
	return lazy.New(func() (service.Authentication, error) {
		return service.NewAuthentication(
			sqlContainer.MustLoad().UserRepo.MustLoad(),
			sessionTokens.MustLoad(),
			passwordEncoder.MustLoad(),
		), nil
	})
}

func userServiceProvider(
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
	transaction lazy.Loader[persistence.Transaction],
	sqlContainer lazy.Loader[infra.SQLContainer],
) lazy.Loader[service.User] {
	return lazy.New(func() (service.User, error) {
		return service.NewUser(
			sqlContainer.MustLoad().UserRepo.MustLoad(),
			passwordEncoder.MustLoad(),
			transaction.MustLoad(),
		), nil
	})
}
