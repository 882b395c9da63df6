package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/ribbon-studio/internal/config"
	"github.com/Faultbox/ribbon-studio/internal/meshio"
)

func TestResolveBuild(t *testing.T) {
	truncating := config.Default()
	truncating.Ribbon.Truncate = true

	tests := []struct {
		name         string
		cfg          *config.Config
		pf           meshio.PointFile
		o            buildOverrides
		wantWidth    float32
		wantTime     float64
		wantTruncate bool
		wantStill    bool
	}{
		{
			name:      "config only",
			cfg:       config.Default(),
			o:         buildOverrides{Time: -1},
			wantWidth: 1,
		},
		{
			name:      "point file over config",
			cfg:       config.Default(),
			pf:        meshio.PointFile{Width: 0.5, Time: 1.5},
			o:         buildOverrides{Time: -1},
			wantWidth: 0.5,
			wantTime:  1.5,
		},
		{
			name:      "flags over point file",
			cfg:       config.Default(),
			pf:        meshio.PointFile{Width: 0.5, Time: 1.5},
			o:         buildOverrides{Width: 2, Time: 0.25},
			wantWidth: 2,
			wantTime:  0.25,
		},
		{
			name:      "zero time flag is explicit",
			cfg:       config.Default(),
			pf:        meshio.PointFile{Time: 3},
			o:         buildOverrides{Time: 0},
			wantWidth: 1,
		},
		{
			name:         "truncate flag",
			cfg:          config.Default(),
			o:            buildOverrides{Time: -1, Truncate: true},
			wantWidth:    1,
			wantTruncate: true,
		},
		{
			name:         "config truncate survives unset flag",
			cfg:          truncating,
			o:            buildOverrides{Time: -1},
			wantWidth:    1,
			wantTruncate: true,
		},
		{
			name:      "still disables the wave",
			cfg:       config.Default(),
			o:         buildOverrides{Time: -1, Still: true},
			wantWidth: 1,
			wantStill: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, tm, opts := resolveBuild(tt.cfg, &tt.pf, tt.o)
			if width != tt.wantWidth {
				t.Errorf("width = %g, want %g", width, tt.wantWidth)
			}
			if tm != tt.wantTime {
				t.Errorf("time = %g, want %g", tm, tt.wantTime)
			}
			if opts.Truncate != tt.wantTruncate {
				t.Errorf("truncate = %v, want %v", opts.Truncate, tt.wantTruncate)
			}
			if still := opts.WaveAmplitude == 0; still != tt.wantStill {
				t.Errorf("wave amplitude = %g, want still=%v", opts.WaveAmplitude, tt.wantStill)
			}
		})
	}
}

func writeSample(t *testing.T, dir string) string {
	t.Helper()
	pf, err := meshio.Sample("line", 32)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "line.yaml")
	if err := meshio.SavePoints(path, pf); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildFromFiles(t *testing.T) {
	points := writeSample(t, t.TempDir())

	f := newBuildFlags("build")
	if err := f.fs.Parse([]string{"-width", "0.5", "-still", points}); err != nil {
		t.Fatal(err)
	}
	pf, r, err := f.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(pf.Points) != 32 {
		t.Errorf("loaded %d points, want 32", len(pf.Points))
	}
	if r.Width() != 0.5 {
		t.Errorf("ribbon width = %g, want 0.5", r.Width())
	}
	// An 8-unit line at width 0.5.
	if got := len(r.Segments()); got != 16 {
		t.Errorf("got %d segments, want 16", got)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	points := writeSample(t, dir)
	cfgPath := filepath.Join(dir, "studio.yaml")
	if err := os.WriteFile(cfgPath, []byte("ribbon:\n  width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := newBuildFlags("build")
	if err := f.fs.Parse([]string{"-config", cfgPath, points}); err != nil {
		t.Fatal(err)
	}
	_, _, err := f.build()
	if err == nil {
		t.Fatal("expected invalid config error")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error %q should mention the invalid config", err)
	}
}

func TestWriteTiles(t *testing.T) {
	dir := t.TempDir()
	tc := config.Default().Tiles
	tc.Count, tc.Frames, tc.Size = 2, 3, 8

	written, err := writeTiles(tc, dir)
	if err != nil {
		t.Fatalf("writeTiles: %v", err)
	}
	if written != 6 {
		t.Errorf("wrote %d files, want 6", written)
	}
	for _, name := range []string{"tile00_frame00.png", "tile01_frame02.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
