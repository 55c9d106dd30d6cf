// Package docker implements the container engine adapter using Docker API.
package docker

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"

	"habitat/internal/domain"
	"habitat/pkg/validation"
)

// Config selects the engine endpoint. Blank fields fall back to the
// DOCKER_* environment and API version negotiation.
type Config struct {
	Host       string
	APIVersion string
}

// Runtime implements the ContainerEngine interface using Docker API.
type Runtime struct {
	client *client.Client
}

// NewRuntime creates a new Docker runtime instance.
func NewRuntime(cfg Config) (*Runtime, error) {
	opts := []client.Opt{client.FromEnv}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}
	if cfg.APIVersion != "" {
		opts = append(opts, client.WithVersion(cfg.APIVersion))
	} else {
		opts = append(opts, client.WithAPIVersionNegotiation())
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Runtime{
		client: cli,
	}, nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client) *Runtime {
	return &Runtime{
		client: cli,
	}
}

// Close releases the underlying client transport.
func (r *Runtime) Close() error {
	return r.client.Close()
}

// FindImage returns the local image tagged imageRef, or nil when there is none.
func (r *Runtime) FindImage(ctx context.Context, imageRef string) (*domain.Image, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "FindImage",
		"image":               imageRef,
	})
	log := zerowrap.FromCtx(ctx)

	canonical, err := validation.CanonicalImageRef(imageRef)
	if err != nil {
		return nil, log.WrapErr(fmt.Errorf("%w: %w", domain.ErrInvalidImageFormat, err), "invalid image reference")
	}

	images, err := r.client.ImageList(ctx, image.ListOptions{Filters: referenceFilter(canonical)})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list images")
	}

	for _, img := range images {
		tag, ok := matchingRepoTag(img.RepoTags, canonical)
		if !ok {
			continue
		}
		log.Debug().Str(zerowrap.FieldEntityID, img.ID).Msg("image found")
		return &domain.Image{
			ID:       img.ID,
			Name:     tag,
			RepoTags: img.RepoTags,
			Labels:   img.Labels,
		}, nil
	}

	log.Debug().Int(zerowrap.FieldCount, len(images)).Msg("image not found")
	return nil, nil
}

// BuildImage submits a build and returns the engine's NDJSON progress stream.
// The caller must close the returned reader.
func (r *Runtime) BuildImage(ctx context.Context, buildContext io.Reader, opts domain.BuildOptions) (io.ReadCloser, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "BuildImage",
		"dockerfile":          opts.Dockerfile,
		"tags":                opts.Tags,
	})
	log := zerowrap.FromCtx(ctx)

	buildArgs := make(map[string]*string, len(opts.BuildArgs))
	for k, v := range opts.BuildArgs {
		buildArgs[k] = &v
	}

	resp, err := r.client.ImageBuild(ctx, buildContext, types.ImageBuildOptions{
		Dockerfile: opts.Dockerfile,
		Tags:       opts.Tags,
		BuildArgs:  buildArgs,
		NoCache:    opts.NoCache,
		Remove:     true,
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to build image")
	}

	log.Debug().Bool("no_cache", opts.NoCache).Msg("build submitted")
	return resp.Body, nil
}

// FindContainer returns the container named exactly name, optionally restricted to a status.
func (r *Runtime) FindContainer(ctx context.Context, name string, status domain.ContainerStatus) (*domain.Container, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "FindContainer",
		"container_name":      name,
		"status":              string(status),
	})
	log := zerowrap.FromCtx(ctx)

	containers, err := r.client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: containerFilter(name, status),
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list containers")
	}

	for _, c := range containers {
		if !hasContainerName(c.Names, name) {
			continue
		}

		var networks []string
		if c.NetworkSettings != nil {
			networks = networkNames(c.NetworkSettings.Networks)
		}

		log.Debug().Str(zerowrap.FieldEntityID, c.ID).Str("state", c.State).Msg("container found")
		return &domain.Container{
			ID:       c.ID,
			Name:     name,
			Names:    c.Names,
			Image:    c.Image,
			Command:  c.Command,
			State:    c.State,
			Labels:   c.Labels,
			Networks: networks,
		}, nil
	}

	return nil, nil
}

// CreateContainer creates a container from spec and returns its id.
func (r *Runtime) CreateContainer(ctx context.Context, spec domain.ContainerSpec) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateContainer",
		"container_name":      spec.Name,
		"image":               spec.Image,
	})
	log := zerowrap.FromCtx(ctx)

	mounts := make([]mount.Mount, 0, len(spec.HostConfig.Mounts))
	for _, m := range spec.HostConfig.Mounts {
		mountType := mount.TypeBind
		if m.Type == domain.MountTypeVolume {
			mountType = mount.TypeVolume
		}
		mounts = append(mounts, mount.Mount{
			Type:     mountType,
			Source:   m.Source,
			Target:   m.Target,
			ReadOnly: m.ReadOnly,
		})
		log.Debug().Str("source", m.Source).Str("target", m.Target).Msg("adding mount")
	}

	containerConfig := &container.Config{
		Image:        spec.Image,
		Tty:          spec.Tty,
		AttachStdin:  spec.AttachStdin,
		AttachStdout: spec.AttachStdout,
		AttachStderr: spec.AttachStderr,
		OpenStdin:    spec.AttachStdin,
		Env:          spec.Env,
	}

	hostConfig := &container.HostConfig{
		Mounts:      mounts,
		NetworkMode: container.NetworkMode(spec.HostConfig.NetworkMode),
	}

	resp, err := r.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, spec.Name)
	if err != nil {
		return "", log.WrapErr(err, "failed to create container")
	}

	for _, warning := range resp.Warnings {
		log.Warn().Str("warning", warning).Msg("engine warning on create")
	}

	log.Info().Str(zerowrap.FieldEntityID, resp.ID).Msg("container created")
	return resp.ID, nil
}

// StartContainer starts a container and reports whether it is running right after.
func (r *Runtime) StartContainer(ctx context.Context, containerID string) (bool, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "StartContainer",
		zerowrap.FieldEntityID: containerID,
	})
	log := zerowrap.FromCtx(ctx)

	if err := r.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return false, log.WrapErr(err, "failed to start container")
	}

	resp, err := r.client.ContainerInspect(ctx, containerID)
	if err != nil {
		return false, log.WrapErr(err, "failed to inspect container")
	}

	running := resp.ContainerJSONBase != nil && resp.State != nil && resp.State.Running
	log.Info().Bool("running", running).Msg("container started")
	return running, nil
}

// StopContainer stops a container, allowing timeout for a graceful shutdown.
func (r *Runtime) StopContainer(ctx context.Context, containerID string, timeout time.Duration) (bool, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "StopContainer",
		zerowrap.FieldEntityID: containerID,
	})
	log := zerowrap.FromCtx(ctx)

	// The engine takes whole seconds; a partial second rounds up so it is never zero.
	seconds := int(math.Ceil(timeout.Seconds()))
	err := r.client.ContainerStop(ctx, containerID, container.StopOptions{Timeout: &seconds})
	if err != nil {
		return false, log.WrapErr(err, "failed to stop container")
	}

	log.Info().Int("timeout_seconds", seconds).Msg("container stopped")
	return true, nil
}

// FindNetwork returns the network named exactly name, or nil when there is none.
func (r *Runtime) FindNetwork(ctx context.Context, name string) (*domain.Network, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "FindNetwork",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	networks, err := r.client.NetworkList(ctx, network.ListOptions{Filters: nameFilter(name)})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list networks")
	}

	for _, n := range networks {
		if sameName(n.Name, name) {
			return &domain.Network{ID: n.ID, Name: n.Name, Driver: n.Driver}, nil
		}
	}
	return nil, nil
}

// CreateBridgeNetwork creates a bridge network.
func (r *Runtime) CreateBridgeNetwork(ctx context.Context, name string, labels map[string]string) (*domain.Network, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateBridgeNetwork",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	resp, err := r.client.NetworkCreate(ctx, name, network.CreateOptions{
		Driver: domain.NetworkDriverBridge,
		Labels: labels,
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to create network")
	}

	if resp.Warning != "" {
		log.Warn().Str("warning", resp.Warning).Msg("engine warning on network create")
	}

	log.Info().Str(zerowrap.FieldEntityID, resp.ID).Msg("network created")
	return &domain.Network{ID: resp.ID, Name: name, Driver: domain.NetworkDriverBridge}, nil
}

// ConnectNetwork attaches a container to a network under the given aliases.
func (r *Runtime) ConnectNetwork(ctx context.Context, networkID, containerID string, aliases []string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "ConnectNetwork",
		zerowrap.FieldEntityID: containerID,
		"network":              networkID,
	})
	log := zerowrap.FromCtx(ctx)

	err := r.client.NetworkConnect(ctx, networkID, containerID, &network.EndpointSettings{Aliases: aliases})
	if err != nil {
		return log.WrapErr(err, "failed to connect container to network")
	}

	log.Info().Strs("aliases", aliases).Msg("container connected to network")
	return nil
}

// FindVolume returns the named volume, or nil when there is none.
func (r *Runtime) FindVolume(ctx context.Context, name string) (*domain.Volume, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "FindVolume",
		"volume":              name,
	})
	log := zerowrap.FromCtx(ctx)

	vol, err := r.client.VolumeInspect(ctx, name)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, nil
		}
		return nil, log.WrapErr(err, "failed to inspect volume")
	}

	if !sameName(vol.Name, name) {
		return nil, nil
	}
	return &domain.Volume{Name: vol.Name, Driver: vol.Driver, Labels: vol.Labels}, nil
}

// CreateLocalVolume creates a volume using the local driver.
func (r *Runtime) CreateLocalVolume(ctx context.Context, name string, labels map[string]string) (*domain.Volume, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateLocalVolume",
		"volume":              name,
	})
	log := zerowrap.FromCtx(ctx)

	vol, err := r.client.VolumeCreate(ctx, volume.CreateOptions{
		Name:   name,
		Driver: domain.VolumeDriverLocal,
		Labels: labels,
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to create volume")
	}

	log.Info().Msg("volume created")
	return &domain.Volume{Name: vol.Name, Driver: vol.Driver, Labels: vol.Labels}, nil
}

// Ping checks if Docker is responsive.
func (r *Runtime) Ping(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "Ping",
	})
	log := zerowrap.FromCtx(ctx)

	_, err := r.client.Ping(ctx)
	if err != nil {
		return log.WrapErr(err, "Docker ping failed")
	}
	return nil
}
