package domain

// Image labels read by habitat. Existing images are built against these exact keys.
const (
	// LabelWithDocker binds the host engine socket into the container.
	LabelWithDocker = "HABITAT_WITH_DOCKER"
	// LabelWithX11 binds DISPLAY to the host gateway.
	LabelWithX11 = "HABITAT_WITH_X11"
	// LabelVolumeRoot is the directory declared volumes are mounted under.
	LabelVolumeRoot = "HABITAT_VOLUME_ROOT"
	// LabelVolumes is a comma separated list of volume names.
	LabelVolumes = "HABITAT_VOLUMES"
	// LabelNetworks is a comma separated list of network names joined after start.
	LabelNetworks = "HABITAT_NETWORKS"
)

// Provenance labels written on objects habitat creates.
const (
	LabelManagedVolume  = "HABITAT_VOLUME"
	LabelOwnerContainer = "HABITAT_CONTAINER"
	LabelManagedNetwork = "HABITAT_NETWORK"
)

// Build arguments passed to every habitat image build.
const (
	BuildArgUser     = "HABITAT_USER"
	BuildArgPassword = "HABITAT_USER_PASSWORD"
)
