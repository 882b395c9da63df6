package meshio

import (
	"fmt"
	gomath "math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// PointFile is a YAML stroke description:
//
//	points: [[0, 0], [120, 40], [260, 10]]
//	width: 1
//	time: 0
//	prepared: false
//
// Unprepared points are raw screen coordinates and go through stroke
// preparation. Prepared points are world coordinates and may carry z.
type PointFile struct {
	Points   [][]float32 `yaml:"points"`
	Width    float32     `yaml:"width,omitempty"`
	Time     float64     `yaml:"time,omitempty"`
	Prepared bool        `yaml:"prepared,omitempty"`
}

// ParsePoints decodes and checks a point file.
func ParsePoints(data []byte) (*PointFile, error) {
	var pf PointFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("decoding points: %w", err)
	}
	for i, p := range pf.Points {
		if len(p) < 2 || len(p) > 3 {
			return nil, fmt.Errorf("point %d has %d coordinates, want 2 or 3", i, len(p))
		}
	}
	if pf.Width < 0 {
		return nil, fmt.Errorf("width %g must not be negative", pf.Width)
	}
	return &pf, nil
}

// LoadPoints reads a point file from disk.
func LoadPoints(path string) (*PointFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pf, err := ParsePoints(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pf, nil
}

// SavePoints writes a point file to disk.
func SavePoints(path string, pf *PointFile) error {
	data, err := yaml.Marshal(pf)
	if err != nil {
		return fmt.Errorf("encoding points: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Vec2s returns the x and y of every point.
func (pf *PointFile) Vec2s() []math.Vec2 {
	out := make([]math.Vec2, len(pf.Points))
	for i, p := range pf.Points {
		out[i] = math.Vec2{X: p[0], Y: p[1]}
	}
	return out
}

// Vec3s returns every point in 3D; missing z is 0.
func (pf *PointFile) Vec3s() []math.Vec3 {
	out := make([]math.Vec3, len(pf.Points))
	for i, p := range pf.Points {
		out[i] = math.Vec3{X: p[0], Y: p[1]}
		if len(p) == 3 {
			out[i].Z = p[2]
		}
	}
	return out
}

// Shapes understood by Sample.
var Shapes = []string{"line", "wave", "spiral", "loop"}

// Sample generates n screen-space points tracing a named shape in a
// 800x600 canvas.
func Sample(shape string, n int) (*PointFile, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", n)
	}
	pf := &PointFile{Width: 1, Points: make([][]float32, n)}
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		var x, y float64
		switch shape {
		case "line":
			x, y = 100+600*t, 300
		case "wave":
			x, y = 100+600*t, 300+120*gomath.Sin(t*4*gomath.Pi)
		case "spiral":
			a := t * 6 * gomath.Pi
			r := 20 + 230*t
			x, y = 400+r*gomath.Cos(a), 300+r*gomath.Sin(a)
		case "loop":
			a := t * 2 * gomath.Pi
			x, y = 400+300*gomath.Sin(a), 300+150*gomath.Sin(2*a)
		default:
			return nil, fmt.Errorf("unknown shape %q", shape)
		}
		pf.Points[i] = []float32{float32(x), float32(y)}
	}
	return pf, nil
}
