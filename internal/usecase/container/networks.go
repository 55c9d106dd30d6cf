package container

import (
	"context"

	"github.com/bnema/zerowrap"

	"habitat/internal/domain"
)

// BindNetworks connects the running container named containerName to every network
// its labels declare and it is not yet attached to. Missing networks are created.
// A container that is not running, or declares no networks, is left untouched.
func (s *Service) BindNetworks(ctx context.Context, containerName string) error {
	ctx = s.useCaseContext(ctx, "BindNetworks", map[string]any{"container_name": containerName})
	log := zerowrap.FromCtx(ctx)

	c, err := s.engine.FindContainer(ctx, containerName, domain.ContainerStatusRunning)
	if err != nil {
		return err
	}
	if c == nil {
		log.Debug().Msg("container not running, no networks bound")
		return nil
	}

	req := domain.ParseRequirements(c.Labels)
	if len(req.NetworkNames) == 0 {
		return nil
	}

	aliases := c.Aliases()
	for _, name := range req.NetworkNames {
		if c.AttachedTo(name) {
			log.Debug().Str("network", name).Msg("already attached")
			continue
		}

		n, err := s.ensureNetwork(ctx, name)
		if err != nil {
			return err
		}

		if err := s.engine.ConnectNetwork(ctx, n.ID, c.ID, aliases); err != nil {
			return err
		}
		log.Info().Str("network", name).Strs("aliases", aliases).Msg("network bound")
	}

	return nil
}

func (s *Service) ensureNetwork(ctx context.Context, name string) (*domain.Network, error) {
	n, err := s.engine.FindNetwork(ctx, name)
	if err != nil || n != nil {
		return n, err
	}
	return s.engine.CreateBridgeNetwork(ctx, name, map[string]string{
		domain.LabelManagedNetwork: "true",
	})
}
