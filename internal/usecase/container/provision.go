package container

import (
	"context"
	"fmt"

	"github.com/bnema/zerowrap"

	"habitat/internal/domain"
)

// CreateContainer creates containerName from imageName, provisioning the host
// resources the image labels declare. The image must exist; calling this for
// an absent image is a programming error and panics.
func (s *Service) CreateContainer(ctx context.Context, imageName, containerName string) (string, error) {
	ctx = s.useCaseContext(ctx, "CreateContainer", map[string]any{
		"image":          imageName,
		"container_name": containerName,
	})
	log := zerowrap.FromCtx(ctx)

	img, err := s.engine.FindImage(ctx, imageName)
	if err != nil {
		return "", err
	}
	if img == nil {
		panic(fmt.Sprintf("container: CreateContainer called for absent image %q", imageName))
	}

	req := domain.ParseRequirements(img.Labels)

	hostConfig := domain.HostConfig{}
	if req.SocketAccess {
		hostConfig = hostConfig.WithMount(domain.DockerSocketMount(s.config.DockerSocket))
		log.Debug().Str("socket", s.config.DockerSocket).Msg("binding engine socket")
	}

	hostConfig, err = s.provisionVolumes(ctx, req, containerName, hostConfig)
	if err != nil {
		return "", err
	}

	spec := domain.NewContainerSpec(imageName, containerName, hostConfig)
	if req.DisplayBinding {
		spec = spec.WithEnv(domain.EnvDisplay, s.config.Display)
	}

	id, err := s.engine.CreateContainer(ctx, spec)
	if err != nil {
		return "", err
	}

	log.Info().Str(zerowrap.FieldEntityID, id).Int("mounts", len(hostConfig.Mounts)).Msg("container created")
	return id, nil
}

// provisionVolumes finds or creates each declared volume and mounts it under the volume root.
func (s *Service) provisionVolumes(ctx context.Context, req domain.Requirements, containerName string, hostConfig domain.HostConfig) (domain.HostConfig, error) {
	log := zerowrap.FromCtx(ctx)

	if !req.HasVolumes() {
		if req.VolumeRoot != "" || len(req.VolumeNames) > 0 {
			log.Debug().
				Str("volume_root", req.VolumeRoot).
				Strs("volumes", req.VolumeNames).
				Msg("volume root and names must both be declared, skipping volumes")
		}
		return hostConfig, nil
	}

	for _, name := range req.VolumeNames {
		if err := s.ensureVolume(ctx, name, containerName); err != nil {
			return hostConfig, err
		}
		hostConfig = hostConfig.WithVolume(req.VolumeRoot, name)
	}

	return hostConfig, nil
}

func (s *Service) ensureVolume(ctx context.Context, name, containerName string) error {
	log := zerowrap.FromCtx(ctx)

	vol, err := s.engine.FindVolume(ctx, name)
	if err != nil {
		return err
	}
	if vol != nil {
		log.Debug().Str("volume", name).Msg("reusing volume")
		return nil
	}

	_, err = s.engine.CreateLocalVolume(ctx, name, map[string]string{
		domain.LabelManagedVolume:  "true",
		domain.LabelOwnerContainer: containerName,
	})
	return err
}
