package container

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/pkg/jsonmessage"

	"habitat/internal/domain"
	"habitat/pkg/buildcontext"
	"habitat/pkg/validation"
)

// BuildContainer archives the context directory, submits the build and forwards
// the engine's progress to the sink as it arrives.
func (s *Service) BuildContainer(ctx context.Context, req domain.BuildRequest) error {
	ctx = s.useCaseContext(ctx, "BuildContainer", map[string]any{
		zerowrap.FieldPath: req.ContextDir,
		"dockerfile":       req.Dockerfile,
		"tag":              req.Tag,
	})
	log := zerowrap.FromCtx(ctx)

	dockerfile, err := validation.RelativeWithinRoot(req.ContextDir, req.Dockerfile)
	if err != nil {
		if errors.Is(err, validation.ErrPathEscapesRoot) {
			return fmt.Errorf("%w: %s", domain.ErrDockerfileOutsideContext, req.Dockerfile)
		}
		return err
	}

	var opts []buildcontext.Option
	if s.config.CompressContext {
		opts = append(opts, buildcontext.WithGzip())
	}

	archive, err := buildcontext.Tarball(ctx, req.ContextDir, opts...)
	if err != nil {
		if errors.Is(err, buildcontext.ErrNotDirectory) {
			return fmt.Errorf("%w: %s", domain.ErrBuildContextNotDirectory, req.ContextDir)
		}
		return log.WrapErr(err, "failed to archive build context")
	}
	log.Debug().Int(zerowrap.FieldSize, archive.Len()).Msg("build context archived")

	var tags []string
	if req.Tag != "" {
		tags = []string{req.Tag}
	}

	body, err := s.engine.BuildImage(ctx, archive, domain.BuildOptions{
		Dockerfile: dockerfile,
		Tags:       tags,
		BuildArgs:  req.BuildArgs,
		NoCache:    req.NoCache,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := body.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close build output")
		}
	}()

	if err := s.forwardProgress(ctx, body); err != nil {
		return err
	}

	log.Info().Msg("image built")
	return nil
}

// forwardProgress reads the NDJSON build output one line at a time, forwarding
// stream text to the sink. Lines that do not decode are skipped. A line
// carrying an engine error ends the build.
func (s *Service) forwardProgress(ctx context.Context, body io.Reader) error {
	log := zerowrap.FromCtx(ctx)
	reader := bufio.NewReader(body)

	lines := 0
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			lines++
			if err := s.handleProgressLine(ctx, line); err != nil {
				return err
			}
		}

		if readErr == io.EOF {
			log.Debug().Int(zerowrap.FieldCount, lines).Msg("build output complete")
			return nil
		}
		if readErr != nil {
			return log.WrapErr(readErr, "failed to read build output")
		}
	}
}

func (s *Service) handleProgressLine(ctx context.Context, line []byte) error {
	var msg jsonmessage.JSONMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		zerowrap.FromCtx(ctx).Debug().Err(err).Msg("skipping malformed build output line")
		return nil
	}

	if msg.Error != nil && msg.Error.Message != "" {
		return fmt.Errorf("%w: %s", domain.ErrBuildFailed, msg.Error.Message)
	}
	if msg.ErrorMessage != "" {
		return fmt.Errorf("%w: %s", domain.ErrBuildFailed, msg.ErrorMessage)
	}

	text := strings.TrimRight(msg.Stream, "\r\n")
	if strings.TrimSpace(text) != "" {
		s.sink.Progress(text)
	}
	return nil
}
