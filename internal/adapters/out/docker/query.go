package docker

import (
	"sort"

	"github.com/docker/docker/api/types/filters"

	"habitat/internal/domain"
	"habitat/pkg/validation"
)

// Engine name filters match by substring, so every filtered lookup is
// followed by one of the exact predicates below.

func addFilter(args filters.Args, key, value string) filters.Args {
	if value == "" {
		return args
	}
	args.Add(key, value)
	return args
}

func nameFilter(name string) filters.Args {
	return addFilter(filters.NewArgs(), "name", name)
}

func containerFilter(name string, status domain.ContainerStatus) filters.Args {
	args := nameFilter(name)
	return addFilter(args, "status", string(status))
}

func referenceFilter(imageRef string) filters.Args {
	return addFilter(filters.NewArgs(), "reference", imageRef)
}

// hasContainerName reports whether names, in the engine's "/name" form, contains name exactly.
func hasContainerName(names []string, name string) bool {
	for _, n := range names {
		if n == "/"+name {
			return true
		}
	}
	return false
}

// matchingRepoTag returns the first tag naming the same image as imageRef.
func matchingRepoTag(tags []string, imageRef string) (string, bool) {
	for _, tag := range tags {
		if validation.SameImage(tag, imageRef) {
			return tag, true
		}
	}
	return "", false
}

func sameName(a, b string) bool {
	return a != "" && a == b
}

func networkNames[T any](networks map[string]T) []string {
	if len(networks) == 0 {
		return nil
	}
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
