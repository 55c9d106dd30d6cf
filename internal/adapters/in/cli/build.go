package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"habitat/internal/domain"
	"habitat/pkg/validation"
)

type buildOptions struct {
	dockerfile string
	directory  string
	tag        string
	user       string
	password   string
	noCache    bool
}

func newBuildCmd(opts *rootOptions, open sessionFactory) *cobra.Command {
	var b buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a habitat image",
		Long: `Build a habitat image from a Dockerfile inside a working directory.

The user name and password are passed to the build as the HABITAT_USER and
HABITAT_USER_PASSWORD build args. When no password is given and the terminal
is interactive, it is prompted for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			progress := progressPrinter{w: cmd.OutOrStdout()}
			return withSession(cmd, opts, open, progress, func(ctx context.Context, sess *session) error {
				return runBuild(ctx, cmd, sess, b)
			})
		},
	}

	cmd.Flags().StringVarP(&b.dockerfile, "file", "f", "", "Path to the Dockerfile (default: <directory>/Dockerfile)")
	cmd.Flags().StringVarP(&b.directory, "directory", "d", "", "Build context directory (default: current directory)")
	cmd.Flags().StringVarP(&b.tag, "tag", "t", "", "Image tag")
	cmd.Flags().StringVarP(&b.user, "user", "u", "", "User created in the image (default: build.user)")
	cmd.Flags().StringVarP(&b.password, "password", "p", "", "Password of that user (default: build.password)")
	cmd.Flags().BoolVar(&b.noCache, "no-cache", false, "Do not use the build cache")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, sess *session, b buildOptions) error {
	out := cmd.OutOrStdout()

	if b.directory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		b.directory = wd
	}
	if b.dockerfile == "" {
		b.dockerfile = filepath.Join(b.directory, "Dockerfile")
	}
	if b.user == "" {
		b.user = sess.cfg.Build.User
	}
	if b.password == "" {
		b.password = sess.cfg.Build.Password
	}

	if err := validation.ValidateImageRef(b.tag); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidImageFormat, err)
	}
	if err := validation.ValidateUser(b.user); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidName, err)
	}
	if err := validation.ValidateBuildPaths(b.directory, b.dockerfile); err != nil {
		if errors.Is(err, validation.ErrPathEscapesRoot) {
			return fmt.Errorf("%w: %w", domain.ErrDockerfileOutsideContext, err)
		}
		return err
	}

	if b.password == "" {
		if !stdinIsTerminal() {
			return errors.New("a password is required: use --password or set HABITAT_USER_PASSWORD")
		}
		password, err := promptPassword(b.user)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		b.password = password
	}

	_ = cliWriteLine(out, cliRenderTitle("Building "+b.tag))
	_ = cliWriteLine(out, cliRenderMeta("Dockerfile:", b.dockerfile))
	_ = cliWriteLine(out, cliRenderMeta("Context:", b.directory))
	_ = cliWriteLine(out, cliRenderMeta("User:", b.user))

	err := sess.svc.BuildContainer(ctx, domain.BuildRequest{
		Dockerfile: b.dockerfile,
		ContextDir: b.directory,
		Tag:        b.tag,
		BuildArgs: map[string]string{
			domain.BuildArgUser:     b.user,
			domain.BuildArgPassword: b.password,
		},
		NoCache: b.noCache,
	})
	if err != nil {
		return err
	}

	return cliWriteLine(out, cliRenderSuccess("Built "+b.tag))
}
