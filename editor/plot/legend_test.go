package plot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterbaudains/vizue/editor/colormap"
	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/math"
)

func TestLegendImage(t *testing.T) {
	cmap, err := colormap.MapByName("autumn")
	require.NoError(t, err)
	norm := colormap.Normalize{VMin: 1, VMax: 5}

	values := []int{1, 2, 3, 4, 5}
	labels := []string{"1", "2", "3", "4", "5"}

	img, err := LegendImage(values, labels, cmap, &norm)
	require.NoError(t, err)

	// One row per legend entry plus the fixed margin on both sides.
	bounds := img.Bounds()
	assert.Equal(t, 5*legendRowHeight+2*legendMargin, bounds.Dy())
	assert.Greater(t, bounds.Dx(), 2*legendMargin)

	// The first marker center carries the color of the lowest value.
	cx := legendMargin + legendMarkerRadius
	cy := legendMargin + legendRowHeight/2
	assert.Equal(t, toRGBA(cmap.At(norm.Norm(1))), img.RGBAAt(cx, cy))

	// The margin stays background-colored.
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(1, 1))
}

func TestLegendImageValidation(t *testing.T) {
	cmap, err := colormap.MapByName("autumn")
	require.NoError(t, err)
	norm := colormap.Normalize{VMin: 0, VMax: 1}

	_, err = LegendImage([]int{1, 2}, []string{"only one"}, cmap, &norm)
	assert.Error(t, err)

	_, err = LegendImage([]int{1}, []string{"1"}, cmap, nil)
	assert.ErrorIs(t, err, core.ErrNoNormalization)
}

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, toRGBA(math.LinearColor{R: 1, A: 1}))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, toRGBA(math.LinearColor{R: 0.5, G: 0.5, B: 0.5, A: 1}))
	// Channels outside the unit interval clamp instead of wrapping.
	assert.Equal(t, color.RGBA{R: 255, A: 255}, toRGBA(math.LinearColor{R: 7, G: -1, A: 1}))
}
