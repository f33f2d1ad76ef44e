package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderEmbeddedFallback(t *testing.T) {
	// no external directories
	m, err := NewLoader(nil).LoadManifest()
	require.NoError(t, err)

	target, err := m.Game("target")
	require.NoError(t, err)
	assert.Equal(t, "Target Number", target.Title)
	assert.Equal(t, 10, target.Attempts)

	hit, ok := target.Rule("hit")
	assert.True(t, ok)
	assert.Equal(t, "total == target", hit)

	for _, key := range []string{"roll", "highest", "survival", "doubles", "sequences", "house"} {
		_, err := m.Game(key)
		assert.NoError(t, err, key)
	}

	_, err = m.Game("poker")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestLoaderPrefersDataDir(t *testing.T) {
	dir := t.TempDir()
	body := "games:\n  doubles:\n    title: House Doubles\n    dice: 8\n    rules:\n      group: \"count * 3\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(body), 0o644))

	m, err := NewLoader([]string{filepath.Join(dir, "missing"), dir}).LoadManifest()
	require.NoError(t, err)

	doubles, err := m.Game("doubles")
	require.NoError(t, err)
	assert.Equal(t, "House Doubles", doubles.Title)
	assert.Equal(t, 8, doubles.Dice)

	_, err = m.Game("target")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestLoaderRejectsBrokenManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte("games: [1, 2"), 0o644))

	_, err := NewLoader([]string{dir}).LoadManifest()
	assert.Error(t, err)
}
