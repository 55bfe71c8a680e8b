// Command gearcut generates involute spur gear outlines and writes them as
// SVG, DXF, or PNG preview files.
//
// Generate a 32 tooth, 48 pitch gear with a 1/8" bore as SVG and DXF:
//
//	gearcut -n 32 -p 48 -a 20 -b 0.125 -s gear.svg -svg-scale 500 -d gear.dxf
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gearcut/gear"
	"github.com/gearcut/gear/dxf"
	"github.com/gearcut/gear/preview"
	"github.com/gearcut/gear/svg"
)

func main() {
	var (
		teeth       = flag.Int("n", 0, "number of teeth (required)")
		pitch       = flag.Float64("p", 0, "diametral pitch, teeth per unit diameter (required)")
		angle       = flag.Float64("a", 20, "pressure angle in degrees")
		bore        = flag.Float64("b", 0, "center bore diameter (0 for no bore)")
		kerf        = flag.Float64("k", 0, "kerf: total width removed by the cutting tool")
		steps       = flag.Int("r", gear.DefaultSteps, "number of steps used to approximate the involute")
		addendum    = flag.Float64("addendum", gear.DefaultAddendumFactor, "addendum factor")
		dedendum    = flag.Float64("dedendum", gear.DefaultDedendumFactor, "dedendum factor")
		svgPath     = flag.String("s", "", "SVG file to write")
		svgScale    = flag.Float64("svg-scale", 1, "scale factor for SVG output")
		dxfPath     = flag.String("d", "", "DXF file to write")
		previewPath = flag.String("preview", "", "PNG preview file to write")
		previewSize = flag.Int("preview-size", 512, "PNG preview size in pixels")
		verbose     = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		gear.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *svgPath == "" && *dxfPath == "" && *previewPath == "" {
		fmt.Fprintln(os.Stderr, "no output file specified (use the -s, -d or -preview flags)")
		flag.Usage()
		os.Exit(1)
	}

	g, err := gear.New(*pitch, *teeth, *angle,
		gear.WithAddendumFactor(*addendum),
		gear.WithDedendumFactor(*dedendum))
	if err != nil {
		log.Fatalf("Invalid gear parameters: %v", err)
	}

	geom, err := g.Geometry(
		gear.WithSteps(*steps),
		gear.WithKerf(*kerf),
		gear.WithBore(*bore))
	if err != nil {
		log.Fatalf("Failed to generate geometry: %v", err)
	}

	if *svgPath != "" {
		writeFile(*svgPath, func(f *os.File) error {
			return svg.Write(f, geom, svg.WithScale(*svgScale))
		})
	}
	if *dxfPath != "" {
		writeFile(*dxfPath, func(f *os.File) error {
			return dxf.Write(f, geom)
		})
	}
	if *previewPath != "" {
		writeFile(*previewPath, func(f *os.File) error {
			return preview.WritePNG(f, geom, *previewSize)
		})
	}
}

// writeFile creates path, runs write against it, and exits on any failure.
func writeFile(path string, write func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", path, err)
	}
}
