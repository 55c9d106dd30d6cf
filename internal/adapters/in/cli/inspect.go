package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"habitat/internal/adapters/in/cli/ui/styles"
	"habitat/internal/domain"
)

func newInspectCmd(opts *rootOptions, open sessionFactory) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show a habitat container and the host resources it declares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, open, nil, func(ctx context.Context, sess *session) error {
				name, err := containerName(name, sess)
				if err != nil {
					return err
				}
				return runInspect(ctx, cmd.OutOrStdout(), sess, name)
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Container name (default: container.name)")

	return cmd
}

func runInspect(ctx context.Context, out io.Writer, sess *session, name string) error {
	labels, err := sess.svc.GetLabels(ctx, name)
	if err != nil {
		return err
	}
	containerID, err := sess.svc.FindContainerID(ctx, name)
	if err != nil {
		return err
	}
	if containerID == "" {
		return fmt.Errorf("%w: %s", domain.ErrContainerNotFound, name)
	}

	running, err := sess.svc.IsContainerRunning(ctx, name)
	if err != nil {
		return err
	}
	entryPoint, err := sess.svc.GetEntryPoint(ctx, name)
	if err != nil {
		return err
	}

	state := "stopped"
	if running {
		state = "running"
	}

	_ = cliWriteLine(out, cliRenderTitle(name)+" "+styles.RenderBadge(state))
	_ = cliWriteLine(out, cliRenderMeta("ID:", containerID))
	_ = cliWriteLine(out, cliRenderMeta("Entry point:", entryPoint))

	req := domain.ParseRequirements(labels)
	_ = cliWriteLine(out, "")
	_ = cliWriteLine(out, styles.Theme.Heading.Render("Requirements"))
	_ = cliWriteLine(out, cliRenderListItem("engine socket: "+strconv.FormatBool(req.SocketAccess)))
	_ = cliWriteLine(out, cliRenderListItem("x11 display: "+strconv.FormatBool(req.DisplayBinding)))
	if req.HasVolumes() {
		_ = cliWriteLine(out, cliRenderListItem(fmt.Sprintf("volumes under %s: %s", req.VolumeRoot, strings.Join(req.VolumeNames, ", "))))
	}
	for _, network := range req.NetworkNames {
		exists, err := sess.svc.NetworkExists(ctx, network)
		if err != nil {
			return err
		}
		status := "missing"
		if exists {
			status = "present"
		}
		_ = cliWriteLine(out, cliRenderListItem(fmt.Sprintf("network %s: %s", network, status)))
	}

	if len(labels) == 0 {
		return nil
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	_ = cliWriteLine(out, "")
	_ = cliWriteLine(out, styles.Theme.Heading.Render("Labels"))
	for _, k := range keys {
		_ = cliWriteLine(out, cliRenderListItem(k+"="+labels[k]))
	}
	return nil
}
