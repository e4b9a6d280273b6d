package spawner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterbaudains/vizue/editor/host/memory"
	"github.com/peterbaudains/vizue/editor/math"
)

func TestRunSpawnsEveryAssetAtOffset(t *testing.T) {
	h := memory.New()
	h.RegisterAsset("/Game/Test/crate")
	h.RegisterAsset("/Game/Test/barrel")
	h.RegisterAsset("/Game/Other/lamp")

	offset := math.Vec3{X: -53281600, Y: 18075900, Z: 0}
	sp, err := NewSpawner(&Config{AssetPath: "/Game/Test/", Offset: offset}, h)
	require.NoError(t, err)

	require.NoError(t, sp.Run())

	actors := h.Actors()
	require.Len(t, actors, 2)
	for _, a := range actors {
		assert.Equal(t, offset, a.Location)
	}
}

func TestRunDoesNotDeduplicate(t *testing.T) {
	h := memory.New()
	h.RegisterAsset("/Game/Test/crate")

	sp, err := NewSpawner(&Config{AssetPath: "/Game/Test/"}, h)
	require.NoError(t, err)

	// Re-running spawns duplicate instances; that is accepted behavior,
	// not an error.
	require.NoError(t, sp.Run())
	require.NoError(t, sp.Run())
	assert.Len(t, h.Actors(), 2)
}

func TestNewSpawnerValidation(t *testing.T) {
	_, err := NewSpawner(&Config{}, memory.New())
	assert.Error(t, err)
}
