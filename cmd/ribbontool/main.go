// ribbontool builds ribbon meshes from point files without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/ribbon-studio/internal/config"
	"github.com/Faultbox/ribbon-studio/internal/engine/capture"
	"github.com/Faultbox/ribbon-studio/internal/logger"
	"github.com/Faultbox/ribbon-studio/internal/meshio"
	"github.com/Faultbox/ribbon-studio/internal/tiles"
	"github.com/Faultbox/ribbon-studio/pkg/curve"
	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build", "stats":
		cmdBuild(args)
	case "export", "obj":
		cmdExport(args)
	case "sample":
		cmdSample(args)
	case "tiles":
		cmdTiles(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`ribbontool - ribbon mesh generator

Usage:
  ribbontool <command> [options] <args>

Commands:
  build  [options] <points.yaml>            Build and print segment statistics
  export [options] <points.yaml> <out.obj>  Build and write Wavefront OBJ
  sample [-shape s] [-n N] <out.yaml>       Write a sample point file (%s)
  tiles  [-config file] <outdir>            Write every tile frame as PNG

Build options:
  -config <file>   Studio config to take ribbon and stroke settings from
  -width <w>       Ribbon width (overrides the point file)
  -time <t>        Animation time in seconds (overrides the point file)
  -truncate        Leave a gap at the end of every segment
  -still           Disable the wave
  -v               Debug logging to stderr

Examples:
  ribbontool sample -shape spiral spiral.yaml
  ribbontool build -width 0.5 spiral.yaml
  ribbontool export -time 1.2 spiral.yaml spiral.obj
`, strings.Join(meshio.Shapes, ", "))
}

// buildFlags are shared by build and export.
type buildFlags struct {
	fs       *flag.FlagSet
	config   *string
	width    *float64
	time     *float64
	truncate *bool
	still    *bool
	verbose  *bool
}

func newBuildFlags(name string) *buildFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &buildFlags{
		fs:       fs,
		config:   fs.String("config", "", "Studio config file"),
		width:    fs.Float64("width", 0, "Ribbon width"),
		time:     fs.Float64("time", -1, "Animation time in seconds"),
		truncate: fs.Bool("truncate", false, "Truncate segments"),
		still:    fs.Bool("still", false, "Disable the wave"),
		verbose:  fs.Bool("v", false, "Debug logging"),
	}
}

// build loads the point file named by the first argument and generates its
// ribbon.
func (f *buildFlags) build() (*meshio.PointFile, *ribbon.Ribbon, error) {
	level := "warn"
	if *f.verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		return nil, nil, err
	}

	cfg := config.Default()
	if *f.config != "" {
		var err error
		if cfg, err = config.LoadFile(*f.config); err != nil {
			return nil, nil, err
		}
	}

	pf, err := meshio.LoadPoints(f.fs.Arg(0))
	if err != nil {
		return nil, nil, err
	}

	width, t, opts := resolveBuild(cfg, pf, f.overrides())

	tp := tileParams(cfg.Tiles)
	r := ribbon.New(opts, tiles.NewSolid(tp), nil)
	r.SetLogger(logger.Named("ribbon"))

	var segs []*ribbon.Segment
	if pf.Prepared {
		segs = r.BuildFromPoints(pf.Vec3s(), width, t)
	} else {
		segs = r.BuildFromStroke(pf.Vec2s(), width, t, cfg.Stroke.Options())
	}
	if segs == nil {
		return nil, nil, fmt.Errorf("%s: not enough distinct points for a ribbon", f.fs.Arg(0))
	}
	return pf, r, nil
}

// buildOverrides are the command-line values that take precedence over the
// point file and config. Width <= 0 and Time < 0 mean unset.
type buildOverrides struct {
	Width    float64
	Time     float64
	Truncate bool
	Still    bool
}

func (f *buildFlags) overrides() buildOverrides {
	return buildOverrides{
		Width:    *f.width,
		Time:     *f.time,
		Truncate: *f.truncate,
		Still:    *f.still,
	}
}

// resolveBuild picks width and time from flags, then the point file, then the
// config, and applies the truncate and still switches to the ribbon options.
func resolveBuild(cfg *config.Config, pf *meshio.PointFile, o buildOverrides) (float32, float64, ribbon.Options) {
	width := cfg.Ribbon.Width
	if pf.Width > 0 {
		width = pf.Width
	}
	if o.Width > 0 {
		width = float32(o.Width)
	}

	t := pf.Time
	if o.Time >= 0 {
		t = o.Time
	}

	opts := cfg.Ribbon.Options()
	opts.Truncate = opts.Truncate || o.Truncate
	if o.Still {
		opts.WaveAmplitude = 0
	}
	return width, t, opts
}

func tileParams(t config.TilesConfig) tiles.Params {
	return tiles.Params{Count: t.Count, HueOffset: t.HueOffset, Saturation: t.Saturation, Value: t.Value}
}

func cmdBuild(args []string) {
	f := newBuildFlags("build")
	f.fs.Parse(args)
	if f.fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ribbontool build [options] <points.yaml>")
		os.Exit(1)
	}

	pf, r, err := f.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	segs := r.Segments()

	verts, tris := 0, 0
	for _, s := range segs {
		verts += s.VertexCount()
		tris += s.TriangleCount()
	}
	b, _ := ribbon.Union(segs)

	fmt.Printf("Points:    %d (%d after preparation)\n", len(pf.Points), len(r.Points()))
	fmt.Printf("Length:    %.3f\n", curve.Length(r.Points()))
	fmt.Printf("Width:     %g\n", r.Width())
	fmt.Printf("Segments:  %d\n", len(segs))
	fmt.Printf("Vertices:  %d\n", verts)
	fmt.Printf("Triangles: %d\n", tris)
	fmt.Printf("Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	fmt.Println()
	fmt.Println("Segment  Tile  Verts  Tris")
	for _, s := range segs {
		fmt.Printf("  %-6d %-5d %-6d %d\n", s.Index, s.Surface.Tile, s.VertexCount(), s.TriangleCount())
	}
}

func cmdExport(args []string) {
	f := newBuildFlags("export")
	f.fs.Parse(args)
	if f.fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: ribbontool export [options] <points.yaml> <out.obj>")
		os.Exit(1)
	}

	_, r, err := f.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	segs := r.Segments()

	out := f.fs.Arg(1)
	name := strings.TrimSuffix(out, ".obj")
	if err := meshio.WriteOBJFile(out, name, segs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d segments to %s\n", len(segs), out)
}

func cmdSample(args []string) {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	shape := fs.String("shape", "wave", "Shape: "+strings.Join(meshio.Shapes, ", "))
	n := fs.Int("n", 64, "Number of points")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ribbontool sample [-shape s] [-n N] <out.yaml>")
		os.Exit(1)
	}

	pf, err := meshio.Sample(*shape, *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := meshio.SavePoints(fs.Arg(0), pf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d %s points to %s\n", *n, *shape, fs.Arg(0))
}

func cmdTiles(args []string) {
	fs := flag.NewFlagSet("tiles", flag.ExitOnError)
	configPath := fs.String("config", "", "Studio config file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ribbontool tiles [-config file] <outdir>")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	written, err := writeTiles(cfg.Tiles, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d frames for %d tiles to %s\n", written, cfg.Tiles.Count, fs.Arg(0))
}

// writeTiles paints every frame of every tile into dir and returns how many
// files it wrote.
func writeTiles(t config.TilesConfig, dir string) (int, error) {
	palette := tiles.Palette(t.Count, t.HueOffset, t.Saturation, t.Value)
	written := 0
	for i, base := range palette {
		for f, img := range tiles.PaintFrames(base, t.Size, t.Frames) {
			path := filepath.Join(dir, fmt.Sprintf("tile%02d_frame%02d.png", i, f))
			if err := capture.SavePNG(path, img); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}
