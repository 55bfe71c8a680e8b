package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/srwiley/oksvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearcut/gear"
)

func testGeometry(t *testing.T, opts ...gear.GeometryOption) *gear.Geometry {
	t.Helper()
	g, err := gear.New(48, 32, 20)
	require.NoError(t, err)
	geom, err := g.Geometry(opts...)
	require.NoError(t, err)
	return geom
}

func TestWriteOutlineOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testGeometry(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"), "missing XML declaration")
	assert.Contains(t, out, "<svg version=\"1.1\"")
	assert.Equal(t, 1, strings.Count(out, "<path"), "one path per closed loop")
	assert.Contains(t, out, " Z\"", "closed loop must end with a close command")
	assert.Contains(t, out, "stroke=\"black\"")
	assert.Contains(t, out, "fill=\"none\"")
}

func TestWriteWithBore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testGeometry(t, gear.WithBore(0.125))))
	assert.Equal(t, 2, strings.Count(buf.String(), "<path"), "outline plus bore")
}

func TestWriteScalesStrokeWidth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testGeometry(t), WithScale(500)))
	// Default stroke width 0.002 at scale 500 is exactly 1.
	assert.Contains(t, buf.String(), "stroke-width=\"1\"")
}

func TestWriteCustomStyle(t *testing.T) {
	var buf bytes.Buffer
	style := Style{Fill: "yellow", Stroke: "red", StrokeWidth: 0.01}
	require.NoError(t, Write(&buf, testGeometry(t), WithStyle(style)))
	out := buf.String()
	assert.Contains(t, out, "fill=\"yellow\"")
	assert.Contains(t, out, "stroke=\"red\"")
}

func TestWriteRejectsBadScale(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, testGeometry(t), WithScale(0)))
	assert.Error(t, Write(&buf, testGeometry(t), WithScale(-2)))
}

func TestOutputParsesAsSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testGeometry(t, gear.WithBore(0.125)), WithScale(500)))

	icon, err := oksvg.ReadIconStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err, "exported SVG must parse")
	assert.Greater(t, icon.ViewBox.W, 0.0)
	assert.Greater(t, icon.ViewBox.H, 0.0)
	assert.Len(t, icon.SVGPaths, 2)
}
