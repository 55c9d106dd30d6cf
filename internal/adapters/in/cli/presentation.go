package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/client"

	"habitat/internal/adapters/in/cli/ui/styles"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

var cliWritef = func(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderListItem(msg string) string {
	return styles.RenderListItem(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.RenderMeta(label, value)
}

func cliRenderSuccess(msg string) string {
	return styles.RenderSuccess(msg)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

func cliRenderInfo(msg string) string {
	return styles.RenderInfo(msg)
}

const engineHint = "Is the Docker engine running?"

// formatError renders a command failure, hinting at the engine when it could not be reached.
func formatError(err error) string {
	msg := styles.RenderError(err.Error())
	if engineUnreachable(err) {
		msg += "\n" + cliRenderMuted(engineHint)
	}
	return msg
}

func engineUnreachable(err error) bool {
	return client.IsErrConnectionFailed(err) ||
		cerrdefs.IsUnavailable(err) ||
		errors.Is(err, context.DeadlineExceeded)
}

// progressPrinter writes build output lines as they arrive.
type progressPrinter struct {
	w io.Writer
}

func (p progressPrinter) Progress(line string) {
	_ = cliWriteLine(p.w, line)
}
