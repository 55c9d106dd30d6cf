package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Container and resource names per the engine grammar:
// - Must start with an alphanumeric character
// - Letters, digits, underscores, dots and hyphens afterwards
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// MaxNameLength is the maximum allowed length for container, volume and network names.
const MaxNameLength = 253

// ValidateName validates a container, volume or network name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("name too long: %d chars (max %d)", len(name), MaxNameLength)
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match [a-zA-Z0-9][a-zA-Z0-9_.-]*", name)
	}

	return nil
}

// ValidateContainerName validates a container name.
func ValidateContainerName(name string) error {
	if err := ValidateName(name); err != nil {
		return fmt.Errorf("container %w", err)
	}
	return nil
}

// ValidateUser validates the user name baked into an image.
func ValidateUser(user string) error {
	if strings.TrimSpace(user) == "" {
		return fmt.Errorf("user cannot be blank")
	}

	if strings.IndexFunc(user, unicode.IsSpace) >= 0 {
		return fmt.Errorf("user must not contain spaces")
	}

	return nil
}

// NormalizeUser lowercases a user name and strips its whitespace.
func NormalizeUser(user string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, user)
}
