package app

import (
	"github.com/rise-and-shine/userbook/fixtureapi"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/tracing"
	"github.com/rise-and-shine/userbook/transport"
)

// Config is the configuration of the whole application, loaded by cfgloader.
type Config struct {
	API      transport.Config  `yaml:"api"`
	Logger   logger.Config     `yaml:"logger"`
	Tracing  tracing.Config    `yaml:"tracing"`
	Fixtures fixtureapi.Config `yaml:"fixtures"`
}
