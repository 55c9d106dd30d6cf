// Package cli implements the CLI adapter for habitat.
// This package provides Cobra commands that delegate to the container service.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"habitat/internal/app"
	"habitat/internal/boundaries/in"
	"habitat/internal/boundaries/out"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// session is what a command needs from the application layer.
type session struct {
	svc   in.ContainerService
	cfg   app.Config
	close func() error
}

type sessionFactory func(opts rootOptions, progress out.ProgressSink) (*session, error)

func kernelSession(opts rootOptions, progress out.ProgressSink) (*session, error) {
	kernel, err := app.NewKernel(app.Options{
		ConfigPath: opts.configPath,
		Verbose:    opts.verbose,
		Progress:   progress,
	})
	if err != nil {
		return nil, err
	}
	return &session{
		svc:   kernel.Container(),
		cfg:   kernel.Config(),
		close: kernel.Close,
	}, nil
}

// NewRootCmd creates the root command for the habitat CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(kernelSession)
}

func newRootCmd(open sessionFactory) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "habitat",
		Short: "Habitat - disposable development containers",
		Long: `Habitat builds development images and runs them as long lived containers
on the local Docker engine.

Images describe what they need from the host through labels: engine socket
access, an X11 display, named volumes and networks. Habitat provisions those
resources when the container is created and started.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newBuildCmd(opts, open))
	rootCmd.AddCommand(newStartCmd(opts, open))
	rootCmd.AddCommand(newStopCmd(opts, open))
	rootCmd.AddCommand(newConnectCmd(opts, open))
	rootCmd.AddCommand(newInspectCmd(opts, open))
	rootCmd.AddCommand(newVersionCmd(opts, open))

	return rootCmd
}

// withSession opens a session for the duration of fn.
func withSession(cmd *cobra.Command, opts *rootOptions, open sessionFactory, progress out.ProgressSink, fn func(context.Context, *session) error) error {
	sess, err := open(*opts, progress)
	if err != nil {
		return err
	}
	defer func() { _ = sess.close() }()

	return fn(cmd.Context(), sess)
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if date != "" {
		BuildDate = date
	}
}

// Execute runs the CLI and exits non-zero on failure.
func Execute(version, commit, date string) {
	SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_ = cliWriteLine(rootCmd.ErrOrStderr(), formatError(err))
		stop()
		os.Exit(1)
	}
}
