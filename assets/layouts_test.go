package assets

import (
	"image"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Obstacles">
  <object id="1" x="200" y="80" width="32" height="16"/>
  <object id="2" x="48" y="40.4" width="20" height="30"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="30" y="100"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="Notes">
  <object id="4" x="1" y="1" width="5" height="5"/>
 </objectgroup>
</map>`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"maps/test.tmx": {Data: []byte(testTMX)}}

	layout, err := LoadLayout(fsys, "maps/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", layout.Name)
	assert.Equal(t, image.Rect(0, 0, 320, 160), layout.Bounds)
	assert.True(t, layout.HasSpawn)
	assert.Equal(t, image.Pt(30, 100), layout.Spawn)
	assert.Equal(t, []image.Rectangle{
		image.Rect(48, 40, 68, 70),
		image.Rect(200, 80, 232, 96),
	}, layout.Obstacles)
}

func TestLoadLayoutWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0"></map>`)}}

	layout, err := LoadLayout(fsys, "empty.tmx")
	require.NoError(t, err)
	assert.False(t, layout.HasSpawn)
	assert.Empty(t, layout.Obstacles)
	assert.Equal(t, image.Rect(0, 0, 64, 64), layout.Bounds)
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}

func TestEmbeddedLayouts(t *testing.T) {
	names, err := LayoutNames()
	require.NoError(t, err)
	assert.Contains(t, names, "default")

	for _, name := range names {
		layout, err := ResolveLayout(name)
		require.NoError(t, err, name)
		assert.True(t, layout.HasSpawn, name)
		for _, r := range layout.Obstacles {
			assert.True(t, r.In(layout.Bounds), "%s: %v", name, r)
		}
	}
}

func TestResolveLayoutEmpty(t *testing.T) {
	layout, err := ResolveLayout("")
	require.NoError(t, err)
	assert.Nil(t, layout)
}
