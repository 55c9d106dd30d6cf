package validation

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"
)

// CanonicalImageRef normalizes an image reference to its familiar tagged form.
// Supports formats:
//   - image (defaults to "latest")
//   - image:tag
//   - image@sha256:... (digest, kept as is)
//   - registry.example.com/image:tag
//   - docker.io/library/image:tag (shortened to image:tag)
func CanonicalImageRef(imageRef string) (string, error) {
	imageRef = strings.TrimSpace(imageRef)
	if imageRef == "" {
		return "", fmt.Errorf("image reference cannot be empty")
	}

	named, err := reference.ParseNormalizedNamed(imageRef)
	if err != nil {
		return "", fmt.Errorf("invalid image reference %q: %w", imageRef, err)
	}

	return reference.FamiliarString(reference.TagNameOnly(named)), nil
}

// ValidateImageRef validates an image reference as accepted by the engine.
func ValidateImageRef(imageRef string) error {
	_, err := CanonicalImageRef(imageRef)
	return err
}

// SameImage reports whether two references name the same image once canonicalized.
// Unparsable references only match themselves.
func SameImage(a, b string) bool {
	ca, errA := CanonicalImageRef(a)
	cb, errB := CanonicalImageRef(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}
