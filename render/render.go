// Package render rasterizes a wedge collection into a PNG preview image.
//
// Previews are diagnostic output, not cartography: the collection's bounds
// are fitted into the image with a small margin, each feature is filled in a
// cycling palette color, and ring orientation drives the fill so arcband
// holes stay transparent.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	wedge "github.com/sf-apex/wedge-maker-4-gis"
)

// palette holds the fill colors cycled across features.
var palette = []color.NRGBA{
	{R: 0xe6, G: 0x5c, B: 0x5c, A: 0xb0},
	{R: 0x5c, G: 0xb8, B: 0x5c, A: 0xb0},
	{R: 0x5c, G: 0x7a, B: 0xe6, A: 0xb0},
	{R: 0xe6, G: 0xb8, B: 0x3d, A: 0xb0},
	{R: 0x9b, G: 0x5c, B: 0xe6, A: 0xb0},
}

// PNG renders the collection into a PNG of the given pixel width written to
// w. The height follows from the collection's aspect ratio. An empty
// collection cannot be fitted and is an error.
func PNG(w io.Writer, c wedge.Collection, width int) error {
	if width <= 0 {
		width = 800
	}

	minX, minY, maxX, maxY, ok := bounds(c)
	if !ok {
		return errors.New("render: empty collection")
	}

	// A degenerate extent still gets a visible canvas.
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	margin := float64(width) * 0.05
	scale := (float64(width) - 2*margin) / spanX
	height := int(math.Ceil(spanY*scale + 2*margin))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// Projected Y grows north, image Y grows down.
	toPx := func(p wedge.Point) (float32, float32) {
		return float32((p.X-minX)*scale + margin), float32((maxY-p.Y)*scale + margin)
	}

	for i, t := range c.Features {
		z := vector.NewRasterizer(width, height)
		for _, ring := range t.Polygon.Rings {
			if len(ring) < 3 {
				continue
			}
			x, y := toPx(ring[0])
			z.MoveTo(x, y)
			for _, p := range ring[1:] {
				x, y = toPx(p)
				z.LineTo(x, y)
			}
			z.ClosePath()
		}
		src := image.NewUniform(palette[i%len(palette)])
		z.Draw(img, img.Bounds(), src, image.Point{})
	}

	return png.Encode(w, img)
}

// bounds returns the collection's extent over every ring vertex.
func bounds(c wedge.Collection) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, t := range c.Features {
		for _, ring := range t.Polygon.Rings {
			for _, p := range ring {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
				ok = true
			}
		}
	}
	return minX, minY, maxX, maxY, ok
}
