package cli

import (
	"context"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/fixtureapi"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/spf13/cobra"
)

// serve-fixtures: run the fixture users API until the context is cancelled.
func serveFixturesCmd(f *flags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "serve-fixtures",
		Short: "Serve the users API from a YAML fixture file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			if file != "" {
				cfg.Fixtures.File = file
			}

			log, err := logger.New(cfg.Logger)
			if err != nil {
				return errx.Wrap(err)
			}
			logger.SetGlobal(log)
			defer func() { _ = log.Sync() }()

			store, err := fixtureapi.LoadFile(cfg.Fixtures.File)
			if err != nil {
				return errx.Wrap(err)
			}

			srv := fixtureapi.NewServer(cfg.Fixtures, store, log)
			return serveUntilDone(cmd.Context(), srv, log)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "fixture file, overrides fixtures.file")
	return cmd
}

type startStopper interface {
	Start() error
	Stop() error
	Address() string
}

func serveUntilDone(ctx context.Context, srv startStopper, log logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	log.With("address", srv.Address()).Info("fixture API listening")

	select {
	case err := <-errCh:
		return errx.Wrap(err)
	case <-ctx.Done():
		log.Info("shutting down fixture API")
		return errx.Wrap(srv.Stop())
	}
}
