// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, console output, etc.).
package out

import (
	"context"
	"io"
	"time"

	"habitat/internal/domain"
)

// ContainerEngine defines the contract for the container engine operations habitat needs.
// Lookups report absence as a nil result with a nil error.
type ContainerEngine interface {
	// Images
	FindImage(ctx context.Context, name string) (*domain.Image, error)
	BuildImage(ctx context.Context, buildContext io.Reader, opts domain.BuildOptions) (io.ReadCloser, error)

	// Containers
	FindContainer(ctx context.Context, name string, status domain.ContainerStatus) (*domain.Container, error)
	CreateContainer(ctx context.Context, spec domain.ContainerSpec) (string, error)
	StartContainer(ctx context.Context, containerID string) (bool, error)
	StopContainer(ctx context.Context, containerID string, timeout time.Duration) (bool, error)

	// Networks
	FindNetwork(ctx context.Context, name string) (*domain.Network, error)
	CreateBridgeNetwork(ctx context.Context, name string, labels map[string]string) (*domain.Network, error)
	ConnectNetwork(ctx context.Context, networkID, containerID string, aliases []string) error

	// Volumes
	FindVolume(ctx context.Context, name string) (*domain.Volume, error)
	CreateLocalVolume(ctx context.Context, name string, labels map[string]string) (*domain.Volume, error)

	// Runtime information
	Ping(ctx context.Context) error
}
