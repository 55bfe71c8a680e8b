package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearcut/gear"
)

func testGeometry(t *testing.T) *gear.Geometry {
	t.Helper()
	g, err := gear.New(48, 32, 20)
	require.NoError(t, err)
	geom, err := g.Geometry(gear.WithBore(0.125))
	require.NoError(t, err)
	return geom
}

func TestRenderSize(t *testing.T) {
	img, err := Render(testGeometry(t), 256)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 256, b.Dx())
	assert.Equal(t, 256, b.Dy())
}

func TestRenderDrawsSomething(t *testing.T) {
	img, err := Render(testGeometry(t), 256)
	require.NoError(t, err)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	inked := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			wr, wg, wb, wa := white.RGBA()
			if r != wr || g != wg || bl != wb || a != wa {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 100, "gear outline must leave a visible stroke")

	// Corners stay background white.
	r, g, bl, _ := img.At(b.Min.X, b.Min.Y).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), bl)
}

func TestRenderRejectsBadSize(t *testing.T) {
	_, err := Render(testGeometry(t), 0)
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, testGeometry(t), 128))

	img, err := png.Decode(&buf)
	require.NoError(t, err, "output must decode as PNG")
	assert.Equal(t, 128, img.Bounds().Dx())
}
