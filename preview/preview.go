// Package preview rasterizes gear geometry to an image for visual
// inspection. The geometry is serialized through the svg exporter, parsed
// back with oksvg and scan-filled with rasterx, so the preview exercises
// the same path data a cutting toolchain would receive.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/gearcut/gear"
	"github.com/gearcut/gear/svg"
)

// marginFactor matches the svg exporter default so the gear fills the
// frame with the same breathing room as an exported drawing.
const marginFactor = 0.2

// Render rasterizes the geometry onto a white sizePx x sizePx canvas with
// the default hairline style.
func Render(geom *gear.Geometry, sizePx int) (image.Image, error) {
	if sizePx < 1 {
		return nil, fmt.Errorf("preview: size must be at least 1 pixel, got %d", sizePx)
	}

	b := geom.Bounds()
	dim := b.Width()
	if b.Height() > dim {
		dim = b.Height()
	}
	if dim <= 0 {
		return nil, fmt.Errorf("preview: geometry has empty bounds")
	}
	scale := float64(sizePx) / (dim * (1 + marginFactor))

	var buf bytes.Buffer
	if err := svg.Write(&buf, geom, svg.WithScale(scale), svg.WithMarginFactor(marginFactor)); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("preview: parse SVG: %w", err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("preview: degenerate SVG viewport %dx%d", w, h)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	scanner.SetClip(img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	if w == sizePx && h == sizePx {
		return img, nil
	}

	// Resample onto the exact requested canvas.
	dst := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	xdraw.CatmullRom.Scale(dst, fitRect(sizePx, w, h), img, img.Bounds(), xdraw.Over, nil)
	return dst, nil
}

// fitRect centers a w x h source within a square of size px, preserving
// aspect ratio.
func fitRect(px, w, h int) image.Rectangle {
	if w >= h {
		th := h * px / w
		top := (px - th) / 2
		return image.Rect(0, top, px, top+th)
	}
	tw := w * px / h
	left := (px - tw) / 2
	return image.Rect(left, 0, left+tw, px)
}

// WritePNG renders the geometry and encodes it as PNG.
func WritePNG(w io.Writer, geom *gear.Geometry, sizePx int) error {
	img, err := Render(geom, sizePx)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
