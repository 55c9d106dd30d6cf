// Package container implements the development container use case: provisioning
// host resources from image labels, lifecycle control and image builds.
package container

import (
	"context"
	"time"

	"github.com/bnema/zerowrap"

	"habitat/internal/boundaries/out"
	"habitat/internal/domain"
)

// DefaultStopTimeout is the grace period given to a container before it is killed.
const DefaultStopTimeout = 30 * time.Second

// Config holds configuration needed by the container service.
type Config struct {
	DockerSocket    string        // host engine socket bound into containers that ask for it
	Display         string        // DISPLAY value for containers that ask for X11
	StopTimeout     time.Duration // grace period on stop
	CompressContext bool          // gzip the build context before upload
}

// Service implements the ContainerService interface.
type Service struct {
	engine out.ContainerEngine
	sink   out.ProgressSink
	log    zerowrap.Logger
	config Config
}

// NewService creates a new container service. A nil sink discards build progress.
func NewService(engine out.ContainerEngine, sink out.ProgressSink, log zerowrap.Logger, config Config) *Service {
	if config.DockerSocket == "" {
		config.DockerSocket = domain.DefaultDockerSocket
	}
	if config.Display == "" {
		config.Display = domain.DefaultDisplay
	}
	if config.StopTimeout <= 0 {
		config.StopTimeout = DefaultStopTimeout
	}
	if sink == nil {
		sink = discardSink{}
	}

	return &Service{
		engine: engine,
		sink:   sink,
		log:    log,
		config: config,
	}
}

type discardSink struct{}

func (discardSink) Progress(string) {}

// useCaseContext attaches the service logger and the use case fields to ctx.
func (s *Service) useCaseContext(ctx context.Context, useCase string, fields map[string]any) context.Context {
	all := map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: useCase,
	}
	for k, v := range fields {
		all[k] = v
	}
	return zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, s.log), all)
}

// Ping checks that the engine answers.
func (s *Service) Ping(ctx context.Context) error {
	ctx = s.useCaseContext(ctx, "Ping", nil)
	return s.engine.Ping(ctx)
}

// FindImage returns the local image named imageName, or nil.
func (s *Service) FindImage(ctx context.Context, imageName string) (*domain.Image, error) {
	ctx = s.useCaseContext(ctx, "FindImage", map[string]any{"image": imageName})
	return s.engine.FindImage(ctx, imageName)
}

// ImageExists reports whether imageName is available locally.
func (s *Service) ImageExists(ctx context.Context, imageName string) (bool, error) {
	img, err := s.FindImage(ctx, imageName)
	if err != nil {
		return false, err
	}
	return img != nil, nil
}

// NetworkExists reports whether a network named exactly networkName exists.
func (s *Service) NetworkExists(ctx context.Context, networkName string) (bool, error) {
	ctx = s.useCaseContext(ctx, "NetworkExists", map[string]any{"network": networkName})

	n, err := s.engine.FindNetwork(ctx, networkName)
	if err != nil {
		return false, err
	}
	return n != nil, nil
}

// RunningContainerID returns the id of the running container named containerName, or "".
func (s *Service) RunningContainerID(ctx context.Context, containerName string) (string, error) {
	ctx = s.useCaseContext(ctx, "RunningContainerID", map[string]any{"container_name": containerName})
	return s.containerID(ctx, containerName, domain.ContainerStatusRunning)
}

// IsContainerRunning reports whether a container named containerName is running.
func (s *Service) IsContainerRunning(ctx context.Context, containerName string) (bool, error) {
	id, err := s.RunningContainerID(ctx, containerName)
	if err != nil {
		return false, err
	}
	return id != "", nil
}

// FindContainerID returns the id of the container named containerName in any state, or "".
func (s *Service) FindContainerID(ctx context.Context, containerName string) (string, error) {
	ctx = s.useCaseContext(ctx, "FindContainerID", map[string]any{"container_name": containerName})
	return s.containerID(ctx, containerName, "")
}

func (s *Service) containerID(ctx context.Context, containerName string, status domain.ContainerStatus) (string, error) {
	c, err := s.engine.FindContainer(ctx, containerName, status)
	if err != nil || c == nil {
		return "", err
	}
	return c.ID, nil
}

// GetEntryPoint returns the command of the container named containerName, or "".
func (s *Service) GetEntryPoint(ctx context.Context, containerName string) (string, error) {
	ctx = s.useCaseContext(ctx, "GetEntryPoint", map[string]any{"container_name": containerName})

	c, err := s.engine.FindContainer(ctx, containerName, "")
	if err != nil || c == nil {
		return "", err
	}
	return c.Command, nil
}

// GetLabels returns the labels of the container named containerName, or nil.
func (s *Service) GetLabels(ctx context.Context, containerName string) (map[string]string, error) {
	ctx = s.useCaseContext(ctx, "GetLabels", map[string]any{"container_name": containerName})

	c, err := s.engine.FindContainer(ctx, containerName, "")
	if err != nil || c == nil {
		return nil, err
	}
	return c.Labels, nil
}

// RunContainer starts a created container and reports whether it is running right after.
func (s *Service) RunContainer(ctx context.Context, containerID string) (bool, error) {
	ctx = s.useCaseContext(ctx, "RunContainer", map[string]any{zerowrap.FieldEntityID: containerID})
	log := zerowrap.FromCtx(ctx)

	running, err := s.engine.StartContainer(ctx, containerID)
	if err != nil {
		return false, err
	}
	if !running {
		log.Warn().Msg("container is not running after start")
	}
	return running, nil
}

// StopContainer stops a container gracefully.
func (s *Service) StopContainer(ctx context.Context, containerID string) (bool, error) {
	ctx = s.useCaseContext(ctx, "StopContainer", map[string]any{zerowrap.FieldEntityID: containerID})
	return s.engine.StopContainer(ctx, containerID, s.config.StopTimeout)
}
