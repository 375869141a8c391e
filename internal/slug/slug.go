// Package slug derives unique, URL-safe organization slugs from
// human-entered names. Uniqueness here is best effort; the slug column's
// unique index is the write-time backstop for concurrent creates.
package slug

import (
	"context"
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	fallbackBase  = "org"
	maxBaseLength = 45
	maxSlugLength = 50
	suffixLength  = 4
	maxAttempts   = 10

	// Excludes visually ambiguous characters (0/O, 1/l/I).
	suffixAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// CheckFunc reports whether a slug is still available. Implementations
// query the organization store.
type CheckFunc func(ctx context.Context, slug string) (bool, error)

// Normalize sanitizes a candidate name into a base slug: lowercase,
// strip invalid characters, collapse whitespace and hyphen runs, trim
// edge hyphens, enforce minimum and maximum length.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) < 2 {
		s = fallbackBase
	}
	if len(s) > maxBaseLength {
		s = strings.TrimRight(s[:maxBaseLength], "-")
	}
	return s
}

// Generate returns a unique slug for the candidate name. The base slug
// is tried first, then up to maxAttempts random-suffix variants, then a
// UUID-fragment fallback returned without a final availability check.
// Only checker failures produce an error.
func Generate(ctx context.Context, name string, isAvailable CheckFunc) (string, error) {
	base := Normalize(name)

	available, err := isAvailable(ctx, base)
	if err != nil {
		return "", err
	}
	if available {
		return base, nil
	}

	for i := 0; i < maxAttempts; i++ {
		candidate := base + "-" + randomSuffix(suffixLength)
		available, err := isAvailable(ctx, candidate)
		if err != nil {
			return "", err
		}
		if available {
			return candidate, nil
		}
	}

	// All attempts collided. Accept a negligible collision risk and let
	// the unique index reject the write if it ever materializes. The
	// base is shortened so the result stays within maxSlugLength.
	fragment := strings.SplitN(uuid.NewString(), "-", 2)[0]
	if limit := maxSlugLength - len(fragment) - 1; len(base) > limit {
		base = strings.TrimRight(base[:limit], "-")
	}
	return base + "-" + fragment, nil
}

func randomSuffix(length int) string {
	max := big.NewInt(int64(len(suffixAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform source is broken;
			// fall back to a UUID-derived byte rather than panic.
			b[i] = uuid.NewString()[0]
			continue
		}
		b[i] = suffixAlphabet[n.Int64()]
	}
	return string(b)
}
