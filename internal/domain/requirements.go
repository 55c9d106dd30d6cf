package domain

import "strings"

// Requirements is the typed form of the runtime needs an image declares through its labels.
type Requirements struct {
	// SocketAccess grants the container control of the host engine.
	SocketAccess bool
	// DisplayBinding points DISPLAY at the host X11 server.
	DisplayBinding bool
	// VolumeRoot is where declared volumes are mounted; empty when not declared.
	VolumeRoot string
	// VolumeNames lists the volumes to find or create, in declaration order.
	VolumeNames []string
	// NetworkNames lists the networks to join after start, in declaration order.
	NetworkNames []string
}

// HasVolumes reports whether both a volume root and at least one volume name are declared.
func (r Requirements) HasVolumes() bool {
	return r.VolumeRoot != "" && len(r.VolumeNames) > 0
}

// ParseRequirements translates a raw label map into Requirements.
// It is the only place label strings are split, trimmed or coerced.
func ParseRequirements(labels map[string]string) Requirements {
	return Requirements{
		SocketAccess:   markerSet(labels, LabelWithDocker),
		DisplayBinding: markerSet(labels, LabelWithX11),
		VolumeRoot:     strings.TrimSpace(labels[LabelVolumeRoot]),
		VolumeNames:    SplitList(labels[LabelVolumes]),
		NetworkNames:   SplitList(labels[LabelNetworks]),
	}
}

// markerSet reports whether key is present. The value is never read.
func markerSet(labels map[string]string, key string) bool {
	_, ok := labels[key]
	return ok
}

// SplitList splits a comma separated label value, trimming items and dropping blanks and repeats.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var items []string
	seen := make(map[string]struct{})
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}
	return items
}
