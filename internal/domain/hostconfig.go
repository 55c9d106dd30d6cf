package domain

import "strings"

// MountType is the kind of a container mount.
type MountType string

const (
	MountTypeBind   MountType = "bind"
	MountTypeVolume MountType = "volume"
)

// Mount describes one host binding applied at container creation.
type Mount struct {
	Type     MountType
	Source   string
	Target   string
	ReadOnly bool
}

// HostConfig aggregates the host level bindings of a container.
// The With* methods return a new value and never write through the receiver's slices.
type HostConfig struct {
	Mounts      []Mount
	NetworkMode string
}

// WithMount returns a copy of the config with m appended.
func (h HostConfig) WithMount(m Mount) HostConfig {
	mounts := make([]Mount, 0, len(h.Mounts)+1)
	mounts = append(mounts, h.Mounts...)
	h.Mounts = append(mounts, m)
	return h
}

// WithVolume returns a copy of the config with the named volume mounted at {root}/{name}.
func (h HostConfig) WithVolume(root, volumeName string) HostConfig {
	return h.WithMount(Mount{
		Type:   MountTypeVolume,
		Source: volumeName,
		Target: strings.TrimRight(root, "/") + "/" + volumeName,
	})
}

// WithNetworkMode returns a copy of the config using the given network mode.
func (h HostConfig) WithNetworkMode(mode string) HostConfig {
	h.NetworkMode = mode
	return h
}

// DockerSocketMount returns the read-write bind mount exposing the host engine socket
// at the same path inside the container.
func DockerSocketMount(socketPath string) Mount {
	if socketPath == "" {
		socketPath = DefaultDockerSocket
	}
	return Mount{
		Type:     MountTypeBind,
		Source:   socketPath,
		Target:   socketPath,
		ReadOnly: false,
	}
}

// ContainerSpec is the creation request submitted to the engine.
type ContainerSpec struct {
	Name         string
	Image        string
	Tty          bool
	AttachStdin  bool
	AttachStdout bool
	AttachStderr bool
	Env          []string
	HostConfig   HostConfig
}

// NewContainerSpec returns an interactive creation request: TTY on, all stdio streams attached.
func NewContainerSpec(image, name string, hostConfig HostConfig) ContainerSpec {
	return ContainerSpec{
		Name:         name,
		Image:        image,
		Tty:          true,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		HostConfig:   hostConfig,
	}
}

// WithEnv returns a copy with NAME=value added. A blank value leaves it unchanged.
func (s ContainerSpec) WithEnv(name, value string) ContainerSpec {
	if strings.TrimSpace(value) == "" {
		return s
	}
	env := make([]string, 0, len(s.Env)+1)
	env = append(env, s.Env...)
	s.Env = append(env, name+"="+value)
	return s
}
