// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

import "strings"

// Image represents a locally available image as reported by the engine.
type Image struct {
	ID       string
	Name     string // canonical name:tag the image was found by
	RepoTags []string
	Labels   map[string]string
}

// Container represents a container known to the engine.
type Container struct {
	ID       string
	Name     string   // primary name without the leading slash
	Names    []string // engine names, leading-slash form ("/habitat")
	Image    string
	Command  string
	State    string
	Labels   map[string]string
	Networks []string // names of the networks attached when the container was listed
}

// Aliases returns the container names without their leading slash, in engine order.
func (c *Container) Aliases() []string {
	aliases := make([]string, 0, len(c.Names))
	for _, n := range c.Names {
		aliases = append(aliases, strings.TrimPrefix(n, "/"))
	}
	return aliases
}

// AttachedTo reports whether the container snapshot lists the given network.
func (c *Container) AttachedTo(network string) bool {
	for _, n := range c.Networks {
		if n == network {
			return true
		}
	}
	return false
}

// Volume represents a named engine volume.
type Volume struct {
	Name   string
	Driver string
	Labels map[string]string
}

// Network represents an engine network.
type Network struct {
	ID     string
	Name   string
	Driver string
}

// ContainerStatus represents the current state of a container.
type ContainerStatus string

// ContainerStatusRunning is the only state lookups filter on; the zero value matches any state.
const ContainerStatusRunning ContainerStatus = "running"

// Engine defaults baked into the label contract.
const (
	DefaultDockerSocket = "/var/run/docker.sock"
	DefaultDisplay      = "host.docker.internal:0"
	VolumeDriverLocal   = "local"
	NetworkDriverBridge = "bridge"
	EnvDisplay          = "DISPLAY"
)
