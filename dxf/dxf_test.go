package dxf

import (
	"bytes"
	"strings"
	"testing"

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

func TestWriteStructure(t *testing.T) {
	geom := testGeometry(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, geom))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "0\nSECTION\n2\nENTITIES\n"))
	assert.True(t, strings.HasSuffix(out, "0\nENDSEC\n0\nEOF\n"))

	assert.Equal(t, 1, strings.Count(out, "0\nPOLYLINE\n"), "one POLYLINE per loop")
	assert.Equal(t, 1, strings.Count(out, "0\nSEQEND\n"))
	assert.Contains(t, out, "70\n1\n", "closed polyline flag")

	wantVertices := len(geom.Outline().Points)
	assert.Equal(t, wantVertices, strings.Count(out, "0\nVERTEX\n"))
}

func TestWriteWithBore(t *testing.T) {
	geom := testGeometry(t, gear.WithBore(0.125))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, geom))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "0\nPOLYLINE\n"), "outline plus bore")
	assert.Equal(t, 2, strings.Count(out, "0\nSEQEND\n"))
}

func TestWriteCustomLayer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testGeometry(t), WithLayer("CUT")))
	out := buf.String()
	assert.Contains(t, out, "8\nCUT\n")
	assert.NotContains(t, out, "8\n"+DefaultLayer+"\n")
}

func TestWriteNegatesY(t *testing.T) {
	geom := testGeometry(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, geom))

	// The first outline point sits above the x axis; its emitted y group
	// must be negative.
	first := geom.Outline().Points[0]
	require.Greater(t, first.Y, 0.0)

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		if line == "20" {
			assert.True(t, strings.HasPrefix(lines[i+1], "-"), "first y group %q not negated", lines[i+1])
			break
		}
	}
}
