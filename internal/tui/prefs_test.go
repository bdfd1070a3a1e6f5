package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := LoadPrefs()
	assert.False(t, p.HideClean, "default is to show everything")

	p.HideClean = true
	require.NoError(t, SavePrefs(p))

	got := LoadPrefs()
	assert.True(t, got.HideClean)
}

func TestLoadPrefsMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p := LoadPrefs()
	assert.Equal(t, Prefs{}, p)
}
