// Package gear generates the 2D outline geometry of involute spur gears.
//
// # Overview
//
// A gear is described by three primary parameters: diametral pitch (teeth
// per unit of pitch diameter), tooth count, and pressure angle. From these
// the package derives the standard full-depth gear dimensions, samples the
// involute tooth flank as a polyline, assembles a single tooth by mirroring
// the flank, and replicates the tooth around the gear to produce one closed,
// counter-clockwise outline suitable for manufacturing export.
//
// # Quick Start
//
//	import "github.com/gearcut/gear"
//
//	// 32 teeth, 48 diametral pitch, 20 degree pressure angle
//	g, err := gear.New(48, 32, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Generate the outline with a 1/8" bore
//	geom, err := g.Geometry(gear.WithBore(0.125))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The resulting [Geometry] is immutable and self-contained; the svg, dxf
// and preview subpackages consume it to produce files.
//
// # Units
//
// All coordinates are in the gear's own length units (whatever unit the
// pitch was specified in). Export-time scaling never touches the canonical
// geometry: [Geometry.Scale] returns a new value.
//
// # Limitations
//
// Involute curves are sampled polylines, not exact arcs. Low tooth counts
// combined with high pressure angles can produce undercut geometry; the
// package reports such cases as degenerate rather than attempting undercut
// correction.
package gear
