package colormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAt(t *testing.T) {
	autumn, err := MapByName("autumn")
	require.NoError(t, err)

	t.Run("endpoints hit the first and last stops", func(t *testing.T) {
		assert.Equal(t, autumn.Stops[0], autumn.At(0))
		assert.Equal(t, autumn.Stops[len(autumn.Stops)-1], autumn.At(1))
	})

	t.Run("midpoint interpolates", func(t *testing.T) {
		mid := autumn.At(0.5)
		assert.InDelta(t, 1.0, mid.R, 1e-9)
		assert.InDelta(t, 0.5, mid.G, 1e-9)
		assert.InDelta(t, 0.0, mid.B, 1e-9)
		assert.InDelta(t, 1.0, mid.A, 1e-9)
	})

	t.Run("out of range values clamp", func(t *testing.T) {
		assert.Equal(t, autumn.At(0), autumn.At(-3))
		assert.Equal(t, autumn.At(1), autumn.At(42))
	})
}

func TestMapByName(t *testing.T) {
	t.Run("unknown name errors", func(t *testing.T) {
		_, err := MapByName("plasma")
		assert.Error(t, err)
	})

	t.Run("registry lists names sorted", func(t *testing.T) {
		names := AvailableMapNames()
		assert.Contains(t, names, "autumn")
		assert.Contains(t, names, "viridis")
		assert.IsIncreasing(t, names)
	})
}

func TestNormalize(t *testing.T) {
	n := Normalize{VMin: 1, VMax: 5}

	assert.Equal(t, 0.0, n.Norm(1))
	assert.Equal(t, 1.0, n.Norm(5))
	assert.InDelta(t, 0.5, n.Norm(3), 1e-9)

	t.Run("clamps outside the bounds", func(t *testing.T) {
		assert.Equal(t, 0.0, n.Norm(-10))
		assert.Equal(t, 1.0, n.Norm(10))
	})

	t.Run("degenerate range maps to zero", func(t *testing.T) {
		flat := Normalize{VMin: 2, VMax: 2}
		assert.Equal(t, 0.0, flat.Norm(2))
	})
}

func TestFromValues(t *testing.T) {
	n := FromValues([]int{3, 1, 5, 2, 4})
	assert.Equal(t, 1.0, n.VMin)
	assert.Equal(t, 5.0, n.VMax)

	assert.Equal(t, Normalize{}, FromValues(nil))
}
