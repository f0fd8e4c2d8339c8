package track

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func TestLoaderLoadAll(t *testing.T) {
	defs, err := NewLoader("testdata").LoadAll()
	require.NoError(t, err)

	// broken.yaml and notes.txt are skipped
	require.Len(t, defs, 2)
	assert.Equal(t, "corridor", defs[0].ID)
	assert.Equal(t, "ring", defs[1].ID)
}

func TestLoaderLoadByID(t *testing.T) {
	def, err := NewLoader("testdata").LoadByID("ring")
	require.NoError(t, err)

	assert.Equal(t, "Test Ring", def.Name)
	assert.Len(t, def.Track.Walls(), 8)
	assert.Equal(t, Start{Position: core.V(30, 140), Rotation: 90}, def.Start)
	assert.Equal(t, filepath.Join("testdata", "ring.yaml"), def.FilePath)

	_, err = NewLoader("testdata").LoadByID("missing")
	assert.Error(t, err)
}

func TestLoadFileDefaultStart(t *testing.T) {
	def, err := LoadFile(filepath.Join("testdata", "corridor.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultStart(), def.Start)
	assert.Len(t, def.Track.Walls(), 2)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "broken.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join("testdata", "notes.txt"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	assert.Error(t, err)
}
