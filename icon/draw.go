// SPDX-License-Identifier: EPL-2.0

package icon

import (
	"image"
	"image/color"
	"math"
)

// BundleSizes are the resolutions packed into the application icon.
var BundleSizes = []int{16, 32, 48, 256}

// The palette: blue disc, white eye, dark pupil, purple magnifier.
var (
	discFill    = color.NRGBA{R: 41, G: 128, B: 185, A: 255}
	discOutline = color.NRGBA{R: 52, G: 152, B: 219, A: 255}
	eyeOutline  = color.NRGBA{R: 33, G: 97, B: 140, A: 255}
	pupilFill   = color.NRGBA{R: 33, G: 47, B: 61, A: 255}
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	lensFill    = color.NRGBA{R: 155, G: 89, B: 182, A: 128}
	lensOutline = color.NRGBA{R: 142, G: 68, B: 173, A: 255}
)

// Render draws the icon at the given square pixel size on a fully
// transparent canvas. Pixels outside the drawn shapes stay
// transparent. Returns ErrInvalidSize for a non-positive size.
func Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	padding := size / 8
	center := size / 2
	eyeRadius := (size - 2*padding) / 2

	// Background disc.
	fillEllipse(img, box(padding, padding, size-padding, size-padding), discFill)
	strokeEllipse(img, box(padding, padding, size-padding, size-padding), 1, discOutline)

	// Eye white.
	eyeH := eyeRadius * 7 / 10
	eyeV := eyeRadius * 5 / 10
	fillEllipse(img, box(center-eyeH, center-eyeV, center+eyeH, center+eyeV), white)
	strokeEllipse(img, box(center-eyeH, center-eyeV, center+eyeH, center+eyeV),
		max(1, size/32), eyeOutline)

	// Pupil.
	pupil := eyeV * 6 / 10
	fillEllipse(img, box(center-pupil, center-pupil, center+pupil, center+pupil), pupilFill)

	// Highlight, offset up-left from the pupil center.
	hlRadius := pupil / 3
	hlOffset := pupil / 3
	fillEllipse(img, box(
		center-hlOffset-hlRadius, center-hlOffset-hlRadius,
		center-hlOffset+hlRadius, center-hlOffset+hlRadius), white)

	// Magnifier at the bottom-right: handle first, lens on top.
	lensSize := size / 3
	lensX := size - lensSize - padding/2
	lensY := size - lensSize - padding/2

	drawLine(img,
		float64(lensX+lensSize/3), float64(lensY+lensSize/3),
		float64(lensX+lensSize), float64(lensY+lensSize),
		max(2, size/16), lensOutline)

	lensRadius := lensSize / 3
	fillEllipse(img, box(lensX, lensY, lensX+2*lensRadius, lensY+2*lensRadius), lensFill)
	strokeEllipse(img, box(lensX, lensY, lensX+2*lensRadius, lensY+2*lensRadius),
		max(1, size/32), lensOutline)

	return img, nil
}

// ellipseBox is an ellipse described by its bounding box corners.
type ellipseBox struct {
	cx, cy float64
	rx, ry float64
}

func box(x0, y0, x1, y1 int) ellipseBox {
	return ellipseBox{
		cx: float64(x0+x1) / 2,
		cy: float64(y0+y1) / 2,
		rx: float64(x1-x0) / 2,
		ry: float64(y1-y0) / 2,
	}
}

// norm is the normalized elliptical distance of a pixel center from
// the ellipse center: 1.0 lies exactly on the ellipse outline.
func (e ellipseBox) norm(x, y int) float64 {
	dx := (float64(x) + 0.5 - e.cx) / e.rx
	dy := (float64(y) + 0.5 - e.cy) / e.ry
	return math.Sqrt(dx*dx + dy*dy)
}

func (e ellipseBox) minRadius() float64 {
	return math.Min(e.rx, e.ry)
}

// degenerate reports an ellipse too small to rasterize by coverage:
// a radius under half a pixel collapses onto its center.
func (e ellipseBox) degenerate() bool {
	return e.rx < 0.5 || e.ry < 0.5
}

// fillEllipse composites c over every pixel inside the ellipse, with
// half-pixel edge feathering for anti-aliasing. An ellipse smaller
// than a pixel fills just its center pixel, the way a point-sized
// bounding box still yields one pixel of ink.
func fillEllipse(img *image.NRGBA, e ellipseBox, c color.NRGBA) {
	if e.degenerate() {
		x := int(e.cx)
		y := int(e.cy)
		if image.Pt(x, y).In(img.Bounds()) {
			blend(img, x, y, c, 1)
		}
		return
	}

	x0, y0, x1, y1 := e.pixelBounds(img)
	minR := e.minRadius()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			coverage := clampUnit((1-e.norm(x, y))*minR + 0.5)
			blend(img, x, y, c, coverage)
		}
	}
}

// strokeEllipse composites a ring of the given width centered on the
// ellipse outline. Sub-pixel ellipses have no meaningful outline and
// are skipped; their fill already covers the center pixel.
func strokeEllipse(img *image.NRGBA, e ellipseBox, width int, c color.NRGBA) {
	if e.degenerate() {
		return
	}

	x0, y0, x1, y1 := e.pixelBounds(img)
	minR := e.minRadius()
	halfW := float64(width) / 2
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dist := math.Abs(e.norm(x, y)-1) * minR
			coverage := clampUnit(halfW + 0.5 - dist)
			blend(img, x, y, c, coverage)
		}
	}
}

func (e ellipseBox) pixelBounds(img *image.NRGBA) (x0, y0, x1, y1 int) {
	b := img.Bounds()
	x0 = max(b.Min.X, int(e.cx-e.rx)-1)
	y0 = max(b.Min.Y, int(e.cy-e.ry)-1)
	x1 = min(b.Max.X-1, int(e.cx+e.rx)+1)
	y1 = min(b.Max.Y-1, int(e.cy+e.ry)+1)
	return x0, y0, x1, y1
}

// drawLine composites a straight stroke from (ax,ay) to (bx,by) with
// butt end caps, so coverage never extends past the endpoints. The
// butt caps keep the handle from bleeding into the canvas corner at
// small sizes.
func drawLine(img *image.NRGBA, ax, ay, bx, by float64, width int, c color.NRGBA) {
	dx := bx - ax
	dy := by - ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux := dx / length
	uy := dy / length
	halfW := float64(width) / 2

	b := img.Bounds()
	pad := int(halfW) + 2
	x0 := max(b.Min.X, int(math.Min(ax, bx))-pad)
	y0 := max(b.Min.Y, int(math.Min(ay, by))-pad)
	x1 := min(b.Max.X-1, int(math.Max(ax, bx))+pad)
	y1 := min(b.Max.Y-1, int(math.Max(ay, by))+pad)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5 - ax
			py := float64(y) + 0.5 - ay
			along := px*ux + py*uy
			perp := math.Abs(px*uy - py*ux)

			coverage := clampUnit(halfW + 0.5 - perp)
			if along < 0 {
				coverage *= clampUnit(0.5 + along)
			} else if along > length {
				coverage *= clampUnit(0.5 + (length - along))
			}
			blend(img, x, y, c, coverage)
		}
	}
}

// blend composites c src-over onto the pixel, scaled by coverage.
// Non-finite coverage (from a degenerate geometry upstream) must
// never leak into the pixel data, so anything but a positive finite
// value is a no-op.
func blend(img *image.NRGBA, x, y int, c color.NRGBA, coverage float64) {
	if !(coverage > 0) || math.IsInf(coverage, 1) {
		return
	}

	srcA := float64(c.A) / 255 * coverage
	if srcA <= 0 {
		return
	}

	dst := img.NRGBAAt(x, y)
	dstA := float64(dst.A) / 255

	outA := srcA + dstA*(1-srcA)
	if outA == 0 {
		return
	}

	mix := func(s, d uint8) uint8 {
		v := (float64(s)*srcA + float64(d)*dstA*(1-srcA)) / outA
		return uint8(math.Round(v))
	}

	img.SetNRGBA(x, y, color.NRGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(math.Round(outA * 255)),
	})
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
