// Package cli exposes the application as cobra commands.
package cli

import (
	"context"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/app"
	"github.com/rise-and-shine/userbook/cfgloader"
	"github.com/rise-and-shine/userbook/ui"
	"github.com/spf13/cobra"
)

// flags are the persistent flags shared by every command.
type flags struct {
	env        string
	configDir  string
	baseURL    string
	noColor    bool
	showConfig bool
}

// NewRootCmd builds the userbook command tree.
func NewRootCmd(version string) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "userbook",
		Short:         "Browse users of a users API from the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&f.env, "env", "", "environment config to load (default $ENVIRONMENT or local)")
	root.PersistentFlags().StringVar(&f.configDir, "config-dir", "", "directory holding <env>.yaml (default ./config)")
	root.PersistentFlags().StringVar(&f.baseURL, "base-url", "", "users API base URL, overrides api.base_url")
	root.PersistentFlags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&f.showConfig, "show-config", false, "print the loaded config")

	root.AddCommand(
		usersCmd(f),
		userCmd(f),
		browseCmd(f),
		serveFixturesCmd(f),
	)

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, version string) error {
	return NewRootCmd(version).ExecuteContext(ctx)
}

func (f *flags) loadConfig() (app.Config, error) {
	opts := []cfgloader.Option{
		cfgloader.WithDir(f.configDir),
		cfgloader.WithEnv(f.env),
	}
	if !f.showConfig {
		opts = append(opts, cfgloader.WithSilent())
	}

	cfg, err := cfgloader.Load[app.Config](opts...)
	if err != nil {
		return app.Config{}, errx.Wrap(err)
	}

	if f.baseURL != "" {
		cfg.API.BaseURL = f.baseURL
	}
	return cfg, nil
}

// withApp loads the config, wires the App, runs fn and shuts the App down.
func (f *flags) withApp(cmd *cobra.Command, fn func(a *app.App, r *ui.Renderer) error) error {
	cfg, err := f.loadConfig()
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return errx.Wrap(err)
	}

	err = fn(a, ui.NewRenderer(cmd.OutOrStdout(), f.noColor))

	shutdownErr := a.Shutdown()
	if err != nil {
		return err
	}
	return shutdownErr
}
