// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"habitat/internal/domain"
)

// ContainerService defines the contract for development container operations.
// Absent images, containers and networks are reported as zero values, not errors.
type ContainerService interface {
	// Ping checks that the engine answers.
	Ping(ctx context.Context) error

	// ImageExists reports whether an image with the given name:tag is available locally.
	ImageExists(ctx context.Context, imageName string) (bool, error)

	// FindImage returns the image with the given name:tag, or nil.
	FindImage(ctx context.Context, imageName string) (*domain.Image, error)

	// NetworkExists reports whether a network with exactly this name exists.
	NetworkExists(ctx context.Context, networkName string) (bool, error)

	// RunningContainerID returns the id of the running container with this name, or "".
	RunningContainerID(ctx context.Context, containerName string) (string, error)

	// IsContainerRunning reports whether a container with this name is running.
	IsContainerRunning(ctx context.Context, containerName string) (bool, error)

	// FindContainerID returns the id of the container with this name in any state, or "".
	FindContainerID(ctx context.Context, containerName string) (string, error)

	// CreateContainer creates a container from an existing image, provisioning the
	// host resources the image declares through its labels.
	CreateContainer(ctx context.Context, imageName, containerName string) (string, error)

	// RunContainer starts a created container and reports whether it is running.
	RunContainer(ctx context.Context, containerID string) (bool, error)

	// StopContainer stops a container gracefully and reports the engine outcome.
	StopContainer(ctx context.Context, containerID string) (bool, error)

	// BindNetworks connects a running container to the networks its labels declare.
	BindNetworks(ctx context.Context, containerName string) error

	// BuildContainer builds an image from a working directory, streaming progress.
	BuildContainer(ctx context.Context, req domain.BuildRequest) error

	// GetEntryPoint returns the command of the named container, or "".
	GetEntryPoint(ctx context.Context, containerName string) (string, error)

	// GetLabels returns the labels of the named container, or nil.
	GetLabels(ctx context.Context, containerName string) (map[string]string, error)
}
