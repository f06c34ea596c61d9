package fixtureapi

import (
	"time"

	"github.com/rise-and-shine/userbook/http/server"
	"github.com/rise-and-shine/userbook/http/server/middleware"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/meta"
)

// Config configures the fixture API.
type Config struct {
	// File is the YAML file holding the fixture users.
	File string `yaml:"file" validate:"required" default:"./config/fixtures/users.yaml"`

	// Delay holds back every response.
	Delay time.Duration `yaml:"delay"`

	Server server.Config `yaml:"server"`
}

// NewServer builds an HTTP server serving store.
func NewServer(cfg Config, store *Store, log logger.Logger) *server.HTTPServer {
	srv := server.NewHTTPServer(cfg.Server, []server.Middleware{
		middleware.NewRecoveryMW(log),
		middleware.NewTracingMW(),
		middleware.NewTimeoutMW(cfg.Server.HandleTimeout),
		middleware.NewMetaInjectMW(meta.GetService()),
		middleware.NewLoggerMW(log),
		middleware.NewErrorHandlerMW(cfg.Server.HideErrorDetails),
	})

	srv.RegisterRouter(NewHandler(store, cfg.Delay, log).Register)

	return srv
}
