package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/peterbaudains/vizue/editor/colormap"
	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/host"
	"github.com/peterbaudains/vizue/editor/math"
)

const (
	// legendMargin is the fixed pixel margin kept around the cropped
	// legend extent.
	legendMargin = 5

	legendRowHeight    = 20
	legendMarkerRadius = 5
	legendTextPad      = 8
)

// LegendImage composes the legend for the given category values: one
// colored marker and label per value, stacked vertically, cropped to the
// drawn extent plus a fixed margin.
func LegendImage(values []int, labels []string, cmap *colormap.Map, norm *colormap.Normalize) (*image.RGBA, error) {
	if norm == nil {
		return nil, core.ErrNoNormalization
	}
	if len(values) != len(labels) {
		return nil, fmt.Errorf("legend needs one label per value, got %d values and %d labels", len(values), len(labels))
	}

	face := basicfont.Face7x13
	maxTextWidth := 0
	for _, label := range labels {
		if w := font.MeasureString(face, label).Ceil(); w > maxTextWidth {
			maxTextWidth = w
		}
	}

	contentWidth := 2*legendMarkerRadius + legendTextPad + maxTextWidth
	contentHeight := legendRowHeight * len(values)
	img := image.NewRGBA(image.Rect(0, 0, contentWidth+2*legendMargin, contentHeight+2*legendMargin))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	textColor := image.NewUniform(color.Black)
	for i, value := range values {
		rowTop := legendMargin + i*legendRowHeight
		cx := legendMargin + legendMarkerRadius
		cy := rowTop + legendRowHeight/2
		drawMarker(img, cx, cy, legendMarkerRadius, cmap.At(norm.Norm(float64(value))))

		d := &font.Drawer{
			Dst:  img,
			Src:  textColor,
			Face: face,
			Dot: fixed.P(
				legendMargin+2*legendMarkerRadius+legendTextPad,
				cy+face.Metrics().Ascent.Ceil()/2,
			),
		}
		d.DrawString(labels[i])
	}
	return img, nil
}

// drawMarker rasterizes a filled circle of the given color.
func drawMarker(img *image.RGBA, cx, cy, r int, c math.LinearColor) {
	rgba := toRGBA(c)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(cx+dx, cy+dy, rgba)
			}
		}
	}
}

func toRGBA(c math.LinearColor) color.RGBA {
	return color.RGBA{
		R: uint8(math.Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(math.Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(math.Clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(math.Clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// RenderLegend renders the legend image, imports it as a texture asset and
// removes the temporary file that carried it. Render or import failures
// are not retried.
func (p *Plotter) RenderLegend(values []int, labels []string, cmap *colormap.Map, norm *colormap.Normalize) error {
	img, err := LegendImage(values, labels, cmap, norm)
	if err != nil {
		return err
	}

	name := p.config.LegendTextureName
	if name == "" {
		name = "legend"
	}
	scratch, cleanup, err := p.scratchDir()
	if err != nil {
		return err
	}
	defer cleanup()

	tmpPath := filepath.Join(scratch, name+".png")
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	core.LogInfo("importing legend texture %s", host.JoinPath(p.config.LegendPath, name))
	return p.store.ImportTasks([]*host.ImportTask{{
		Filename:        tmpPath,
		DestinationPath: p.config.LegendPath,
		ReplaceExisting: true,
		Automated:       true,
		Save:            true,
	}})
}
