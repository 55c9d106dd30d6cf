package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newVersionCmd(opts *rootOptions, open sessionFactory) *cobra.Command {
	var checkEngine bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_ = cliWritef(out, "habitat %s\n", Version)
			_ = cliWritef(out, "Commit: %s\n", Commit)
			_ = cliWritef(out, "Build Date: %s\n", BuildDate)

			if !checkEngine {
				return nil
			}
			return withSession(cmd, opts, open, nil, func(ctx context.Context, sess *session) error {
				if err := sess.svc.Ping(ctx); err != nil {
					_ = cliWriteLine(out, cliRenderWarning("Docker engine unreachable"))
					return err
				}
				return cliWriteLine(out, cliRenderSuccess("Docker engine reachable"))
			})
		},
	}

	cmd.Flags().BoolVar(&checkEngine, "check-engine", false, "Also check that the Docker engine answers")

	return cmd
}
