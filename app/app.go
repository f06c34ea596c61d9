// Package app wires the application together: config, logger, tracing, transport,
// repository, use cases and screen controllers.
package app

import (
	"context"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/nav"
	"github.com/rise-and-shine/userbook/repo"
	"github.com/rise-and-shine/userbook/screen"
	"github.com/rise-and-shine/userbook/tracing"
	"github.com/rise-and-shine/userbook/transport"
	"github.com/rise-and-shine/userbook/ucdef"
	"github.com/rise-and-shine/userbook/ucdef/wrapper"
	"github.com/rise-and-shine/userbook/usecase"
)

// App holds the wired use cases and opens screens on top of them.
type App struct {
	cfg      Config
	log      logger.Logger
	api      repo.UserAPI
	launcher screen.Launcher

	getUsers      ucdef.Query[ucdef.NoInput, []domain.User]
	getUserDetail ucdef.Query[int, domain.User]

	shutdownTracer func() error
}

// Option customizes an App.
type Option func(*App)

// WithLogger uses l instead of building a logger from the config.
func WithLogger(l logger.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// WithUserAPI replaces the HTTP transport.
func WithUserAPI(api repo.UserAPI) Option {
	return func(a *App) {
		a.api = api
	}
}

// WithLauncher sets how screens start their fetches.
func WithLauncher(l screen.Launcher) Option {
	return func(a *App) {
		a.launcher = l
	}
}

// New wires an App from cfg. Call Shutdown when done.
func New(cfg Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:      cfg,
		launcher: screen.GoLauncher{},
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		l, err := logger.New(cfg.Logger)
		if err != nil {
			return nil, errx.Wrap(err)
		}
		logger.SetGlobal(l)
		a.log = l
	}

	svc := meta.GetService()
	shutdown, err := tracing.InitGlobalTracer(cfg.Tracing, svc.Name, svc.Version)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	a.shutdownTracer = shutdown

	if a.api == nil {
		a.api = transport.New(cfg.API, transport.WithLogger(a.log))
	}

	userRepo := repo.NewRemoteUserRepo(a.api, a.log)

	a.getUsers = ucdef.Chain[ucdef.NoInput, []domain.User](
		usecase.NewGetUsers(userRepo),
		wrapper.NewTracingQueryWrapper[ucdef.NoInput, []domain.User](),
		wrapper.NewLoggerQueryWrapper[ucdef.NoInput, []domain.User](a.log),
		wrapper.NewRecoveryQueryWrapper[ucdef.NoInput, []domain.User](a.log),
	)
	a.getUserDetail = ucdef.Chain[int, domain.User](
		usecase.NewGetUserDetail(userRepo),
		wrapper.NewTracingQueryWrapper[int, domain.User](),
		wrapper.NewLoggerQueryWrapper[int, domain.User](a.log),
		wrapper.NewRecoveryQueryWrapper[int, domain.User](a.log),
	)

	a.log.With("base_url", cfg.API.BaseURL).Debug("application wired")

	return a, nil
}

// Logger returns the application logger.
func (a *App) Logger() logger.Logger {
	return a.log
}

// Config returns the configuration the App was built from.
func (a *App) Config() Config {
	return a.cfg
}

// OpenUserList activates the list screen; the first fetch starts immediately.
func (a *App) OpenUserList(ctx context.Context, route string) *screen.UserList {
	return screen.NewUserList(ctx, a.getUsers, a.screenOptions(route)...)
}

// OpenUserDetail activates the detail screen for the userId parameter in args.
func (a *App) OpenUserDetail(ctx context.Context, route string, args nav.Args) *screen.UserDetail {
	return screen.NewUserDetail(ctx, a.getUserDetail, args, a.screenOptions(route)...)
}

// Shutdown flushes spans and logs.
func (a *App) Shutdown() error {
	err := a.shutdownTracer()
	if err != nil {
		return errx.Wrap(err)
	}

	// stderr does not support fsync on every platform
	_ = a.log.Sync()
	return nil
}

func (a *App) screenOptions(route string) []screen.Option {
	return []screen.Option{
		screen.WithLauncher(a.launcher),
		screen.WithLogger(a.log),
		screen.WithRoute(route),
	}
}
