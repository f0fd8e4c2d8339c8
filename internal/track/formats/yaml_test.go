package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: square
name: Square Ring
outer: [[0, 0], [100, 0], [100, 100], [0, 100], [0, 0]]
inner:
  - [30, 30]
  - [70, 30]
start:
  x: 10
  y: 40
  rotation: 90
`)

	tr, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "square", tr.ID)
	assert.Equal(t, "Square Ring", tr.Name)
	assert.Len(t, tr.Outer, 5)
	assert.Equal(t, []core.Vec{core.V(30, 30), core.V(70, 30)}, tr.Inner)
	assert.True(t, tr.HasStart)
	assert.Equal(t, core.V(10, 40), tr.Start)
	assert.Equal(t, 90.0, tr.Rotation)
}

func TestParseYAMLDefaults(t *testing.T) {
	tr, err := ParseYAML([]byte("id: bare\nouter: [[0, 0], [1, 1]]\n"))
	require.NoError(t, err)

	assert.Equal(t, "bare", tr.Name, "name falls back to id")
	assert.False(t, tr.HasStart)
	assert.Empty(t, tr.Inner)
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := ParseYAML([]byte("name: nameless\n"))
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = ParseYAML([]byte("id: [unclosed"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("id: bad\nouter: [[1, 2, 3]]\n"))
	assert.Error(t, err, "points must have exactly two coordinates")
}
