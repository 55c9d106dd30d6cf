package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitat/internal/domain"
	"habitat/pkg/validation"
)

func containerName(flagValue string, sess *session) (string, error) {
	name := strings.TrimSpace(flagValue)
	if name == "" {
		name = sess.cfg.Container.Name
	}
	if err := validation.ValidateContainerName(name); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidName, err)
	}
	return name, nil
}

func newStartCmd(opts *rootOptions, open sessionFactory) *cobra.Command {
	var image, name string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a habitat container",
		Long: `Start the named container from an image, creating it first when needed.

Host resources declared by the image labels are provisioned on creation, and
the declared networks are joined once the container runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, open, nil, func(ctx context.Context, sess *session) error {
				return runStart(ctx, cmd, sess, image, name)
			})
		},
	}

	cmd.Flags().StringVarP(&image, "image", "i", "", "Image to run")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Container name (default: container.name)")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func runStart(ctx context.Context, cmd *cobra.Command, sess *session, image, nameFlag string) error {
	out := cmd.OutOrStdout()

	name, err := containerName(nameFlag, sess)
	if err != nil {
		return err
	}
	if err := validation.ValidateImageRef(image); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidImageFormat, err)
	}

	running, err := sess.svc.IsContainerRunning(ctx, name)
	if err != nil {
		return err
	}
	if running {
		return cliWriteLine(out, cliRenderInfo(fmt.Sprintf("Container %s is already running", name)))
	}

	exists, err := sess.svc.ImageExists(ctx, image)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrImageNotFound, image)
	}

	containerID, err := sess.svc.FindContainerID(ctx, name)
	if err != nil {
		return err
	}
	if containerID == "" {
		containerID, err = sess.svc.CreateContainer(ctx, image, name)
		if err != nil {
			return err
		}
		_ = cliWriteLine(out, cliRenderMeta("Created:", name))
	}

	started, err := sess.svc.RunContainer(ctx, containerID)
	if err != nil {
		return err
	}
	if !started {
		return fmt.Errorf("%w: %s", domain.ErrContainerNotRunning, name)
	}

	if err := sess.svc.BindNetworks(ctx, name); err != nil {
		return err
	}

	return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Container %s started", name)))
}

func newStopCmd(opts *rootOptions, open sessionFactory) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop a habitat container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, open, nil, func(ctx context.Context, sess *session) error {
				out := cmd.OutOrStdout()

				name, err := containerName(name, sess)
				if err != nil {
					return err
				}

				containerID, err := sess.svc.RunningContainerID(ctx, name)
				if err != nil {
					return err
				}
				if containerID == "" {
					return cliWriteLine(out, cliRenderMuted(fmt.Sprintf("No running container named %s", name)))
				}

				if _, err := sess.svc.StopContainer(ctx, containerID); err != nil {
					return err
				}
				return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Container %s stopped", name)))
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Container name (default: container.name)")

	return cmd
}

func newConnectCmd(opts *rootOptions, open sessionFactory) *cobra.Command {
	var name, command string

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Print the command that opens a shell in a running habitat container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, open, nil, func(ctx context.Context, sess *session) error {
				name, err := containerName(name, sess)
				if err != nil {
					return err
				}

				shell := strings.TrimSpace(command)
				if shell == "" {
					shell = sess.cfg.Container.Shell
				}
				if shell == "" {
					return fmt.Errorf("the command must not be blank")
				}

				running, err := sess.svc.IsContainerRunning(ctx, name)
				if err != nil {
					return err
				}
				if !running {
					return fmt.Errorf("%w: %s", domain.ErrContainerNotRunning, name)
				}

				return cliWritef(cmd.OutOrStdout(), "docker exec -it %s %s\n", name, shell)
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Container name (default: container.name)")
	cmd.Flags().StringVarP(&command, "command", "c", "", "Command to exec (default: container.shell)")

	return cmd
}
