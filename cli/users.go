package cli

import (
	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/app"
	"github.com/rise-and-shine/userbook/nav"
	"github.com/rise-and-shine/userbook/ui"
	"github.com/spf13/cobra"
)

const (
	CodeFetchFailed   = "FETCH_FAILED"
	CodeInvalidUserID = "INVALID_USER_ID"
)

// users: render the list screen once its fetch completes.
func usersCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.withApp(cmd, func(a *app.App, r *ui.Renderer) error {
				s := a.OpenUserList(cmd.Context(), nav.RouteUserList)

				err := s.Settle(cmd.Context())
				if err != nil {
					return err
				}

				state := s.State()
				r.UserList(state)

				if msg, failed := state.Message(); failed {
					return errx.New(msg, errx.WithCode(CodeFetchFailed))
				}
				return nil
			})
		},
	}
}

// user: render the detail screen of one user.
func userCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "user <userId>",
		Short: "Show the details of one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.withApp(cmd, func(a *app.App, r *ui.Renderer) error {
				params := nav.Args{nav.ArgUserID: args[0]}
				s := a.OpenUserDetail(cmd.Context(), nav.RouteUserDetail, params)

				if _, ok := s.UserID(); !ok {
					// the screen never leaves Loading for an invalid id
					r.UserDetail(s.State())
					return errx.New(
						"invalid user id "+args[0],
						errx.WithCode(CodeInvalidUserID),
						errx.WithType(errx.T_Validation),
					)
				}

				err := s.Settle(cmd.Context())
				if err != nil {
					return err
				}

				state := s.State()
				r.UserDetail(state)

				if msg, failed := state.Message(); failed {
					return errx.New(msg, errx.WithCode(CodeFetchFailed))
				}
				return nil
			})
		},
	}
}

// browse: interactive shell over both screens.
func browseCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse users interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.withApp(cmd, func(a *app.App, r *ui.Renderer) error {
				sh, err := ui.NewShell(a, r, cmd.InOrStdin(), a.Logger())
				if err != nil {
					return err
				}
				return sh.Run(cmd.Context())
			})
		},
	}
}
