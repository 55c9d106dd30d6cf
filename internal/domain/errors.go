package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// Absent engine objects are reported as nil results, not as these errors; the
// not-found sentinels are for callers that need to turn absence into a failure.
var (
	// Container errors
	ErrContainerNotFound   = errors.New("container not found")
	ErrContainerNotRunning = errors.New("container is not running")

	// Image errors
	ErrImageNotFound      = errors.New("image not found")
	ErrInvalidImageFormat = errors.New("invalid image format")

	// Build errors
	ErrBuildFailed              = errors.New("image build failed")
	ErrDockerfileOutsideContext = errors.New("dockerfile is outside the build context")
	ErrBuildContextNotDirectory = errors.New("build context is not a directory")

	// Input errors
	ErrInvalidName = errors.New("invalid name")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
