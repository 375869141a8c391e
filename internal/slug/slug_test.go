package slug

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func alwaysAvailable(context.Context, string) (bool, error) { return true, nil }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Acme Inc.", "acme-inc"},
		{"mixed case and symbols", "  My Café & Bar!  ", "my-caf-bar"},
		{"whitespace runs", "a   b\t\tc", "a-b-c"},
		{"hyphen runs", "a---b", "a-b"},
		{"edge hyphens", "-acme-", "acme"},
		{"too short", "!", "org"},
		{"empty", "", "org"},
		{"single char", "x", "org"},
		{"unicode stripped", "日本語", "org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Truncation(t *testing.T) {
	long := "this is a very long organization name that keeps going and going"
	got := Normalize(long)
	assert.LessOrEqual(t, len(got), 45)
	assert.False(t, len(got) > 0 && got[len(got)-1] == '-', "no trailing hyphen after truncation")
	assert.Regexp(t, slugPattern, got)
}

func TestGenerate_BaseAvailable(t *testing.T) {
	got, err := Generate(context.Background(), "Acme Inc.", alwaysAvailable)
	require.NoError(t, err)
	assert.Equal(t, "acme-inc", got)
}

func TestGenerate_CollisionAppendsSuffix(t *testing.T) {
	taken := map[string]bool{"acme": true}
	check := func(_ context.Context, s string) (bool, error) { return !taken[s], nil }

	got, err := Generate(context.Background(), "Acme", check)
	require.NoError(t, err)
	assert.Regexp(t, `^acme-[a-z2-9]{4}$`, got)
	for _, c := range got[len(got)-4:] {
		assert.Contains(t, suffixAlphabet, string(c))
	}
}

func TestGenerate_ExhaustedFallsBackToUUIDFragment(t *testing.T) {
	calls := 0
	check := func(context.Context, string) (bool, error) {
		calls++
		return false, nil
	}

	got, err := Generate(context.Background(), "Acme", check)
	require.NoError(t, err)
	assert.Equal(t, 1+10, calls, "base check plus ten suffix attempts")
	assert.Regexp(t, `^acme-[0-9a-f]{8}$`, got)
}

func TestGenerate_ExhaustedLongNameStaysWithinLimit(t *testing.T) {
	check := func(context.Context, string) (bool, error) { return false, nil }

	long := "this is a very long organization name that keeps going and going"
	got, err := Generate(context.Background(), long, check)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 50)
	assert.Regexp(t, `-[0-9a-f]{8}$`, got)
	assert.Regexp(t, slugPattern, got)
}

func TestGenerate_CheckerErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	check := func(context.Context, string) (bool, error) { return false, boom }

	_, err := Generate(context.Background(), "Acme", check)
	assert.ErrorIs(t, err, boom)
}

func TestGenerate_Properties(t *testing.T) {
	seen := map[string]bool{}
	check := func(_ context.Context, s string) (bool, error) { return !seen[s], nil }

	names := []string{"Acme", "Acme", "Acme", "  ", "Acme Inc.", "acme inc", "ACME-INC"}
	for _, name := range names {
		got, err := Generate(context.Background(), name, check)
		require.NoError(t, err)
		assert.Regexp(t, slugPattern, got)
		assert.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), 50)
		assert.False(t, seen[got], "slug %q generated twice", got)
		seen[got] = true
	}
}
