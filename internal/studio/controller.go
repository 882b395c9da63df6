package studio

import (
	"fmt"
	"path/filepath"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ribbon-studio/internal/config"
	"github.com/Faultbox/ribbon-studio/internal/engine/camera"
	"github.com/Faultbox/ribbon-studio/internal/engine/input"
	"github.com/Faultbox/ribbon-studio/internal/meshio"
	"github.com/Faultbox/ribbon-studio/internal/sketch"
	"github.com/Faultbox/ribbon-studio/pkg/math"
	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
	"github.com/Faultbox/ribbon-studio/pkg/stroke"
)

// Key bindings.
const (
	KeyQuit     = sdl.SCANCODE_ESCAPE
	KeyTruncate = sdl.SCANCODE_T
	KeyWave     = sdl.SCANCODE_W
	KeyClear    = sdl.SCANCODE_C
	KeyExport   = sdl.SCANCODE_E
	KeyReset    = sdl.SCANCODE_R
	KeyCapture  = sdl.SCANCODE_P
)

// clock is implemented by tile providers that animate.
type clock interface {
	SetTime(t float64)
}

// Controller turns input events into strokes, ribbon builds and camera
// moves. It has no GL dependencies.
type Controller struct {
	recorder *sketch.Recorder
	ribbon   *ribbon.Ribbon
	camera   *camera.OrbitCamera
	tiles    ribbon.TileProvider
	log      *zap.Logger

	width     float32
	prep      stroke.Options
	amplitude float32
	exportDir string

	orbiting bool
	capture  bool
	now      float64
	quit     bool
}

// NewController wires a controller to scene and tiles using the ribbon and
// stroke sections of cfg. Exports are written to exportDir.
func NewController(cfg *config.Config, scene ribbon.Scene, tiles ribbon.TileProvider, exportDir string, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	opts := cfg.Ribbon.Options()
	r := ribbon.New(opts, tiles, scene)
	r.SetLogger(log.Named("ribbon"))

	c := &Controller{
		recorder:  sketch.NewRecorder(cfg.Stroke.MinPixels),
		ribbon:    r,
		camera:    camera.NewOrbitCamera(),
		tiles:     tiles,
		log:       log,
		width:     cfg.Ribbon.Width,
		prep:      cfg.Stroke.Options(),
		amplitude: cfg.Ribbon.Wave.Amplitude,
		exportDir: exportDir,
	}
	c.recorder.OnStroke = c.build
	return c
}

// Ribbon returns the ribbon being edited.
func (c *Controller) Ribbon() *ribbon.Ribbon { return c.ribbon }

// Camera returns the view camera.
func (c *Controller) Camera() *camera.OrbitCamera { return c.camera }

// Recorder returns the stroke recorder.
func (c *Controller) Recorder() *sketch.Recorder { return c.recorder }

// Quit reports whether the user asked to leave.
func (c *Controller) Quit() bool { return c.quit }

// Handle applies one input event.
func (c *Controller) Handle(e input.Event) {
	pos := math.Vec2{X: float32(e.MouseX), Y: float32(e.MouseY)}

	switch e.Type {
	case input.EventQuit:
		c.quit = true

	case input.EventMouseDown:
		switch e.Button {
		case input.ButtonLeft:
			c.recorder.Press(pos)
		case input.ButtonRight:
			c.orbiting = true
		}

	case input.EventMouseMove:
		if c.recorder.Drawing() {
			c.recorder.Drag(pos)
		}
		if c.orbiting {
			c.camera.HandleDrag(e.DX, e.DY)
		}

	case input.EventMouseUp:
		switch e.Button {
		case input.ButtonLeft:
			c.recorder.Release(pos)
		case input.ButtonRight:
			c.orbiting = false
		}

	case input.EventMouseWheel:
		c.camera.HandleZoom(e.DY)

	case input.EventKeyDown:
		c.handleKey(e.Key)
	}
}

func (c *Controller) handleKey(key sdl.Scancode) {
	switch key {
	case KeyQuit:
		c.quit = true
	case KeyTruncate:
		opts := c.ribbon.Options()
		opts.Truncate = !opts.Truncate
		c.setOptions(opts)
		c.log.Info("truncate toggled", zap.Bool("on", opts.Truncate))
	case KeyWave:
		opts := c.ribbon.Options()
		if opts.WaveAmplitude != 0 {
			opts.WaveAmplitude = 0
		} else {
			opts.WaveAmplitude = c.amplitude
		}
		c.setOptions(opts)
		c.log.Info("wave toggled", zap.Bool("on", opts.WaveAmplitude != 0))
	case KeyClear:
		c.Clear()
	case KeyExport:
		if _, err := c.Export(); err != nil {
			c.log.Warn("export failed", zap.Error(err))
		}
	case KeyReset:
		c.camera.Reset()
	case KeyCapture:
		c.capture = true
	}
}

func (c *Controller) setOptions(opts ribbon.Options) {
	c.ribbon.SetOptions(opts)
	c.ribbon.Update(c.now)
}

// build turns a finished stroke into a ribbon and frames it.
func (c *Controller) build(s sketch.Stroke) {
	segs := c.ribbon.BuildFromStroke(s.Points, c.width, c.now, c.prep)
	if segs == nil {
		c.log.Debug("stroke too small for a ribbon",
			zap.String("stroke", s.ID),
			zap.Int("points", len(s.Points)),
		)
		return
	}
	if b, ok := ribbon.Union(segs); ok {
		c.camera.FitToBounds(math.Vec3{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]}, math.Vec3{X: b.Max[0], Y: b.Max[1], Z: b.Max[2]})
	}
	c.log.Info("ribbon drawn",
		zap.String("stroke", s.ID),
		zap.Int("points", len(s.Points)),
		zap.Int("segments", len(segs)),
	)
}

// CaptureRequested reports, once, that the user asked for a screenshot.
func (c *Controller) CaptureRequested() bool {
	req := c.capture
	c.capture = false
	return req
}

// Advance moves the animation clock to t seconds and regenerates the ribbon.
func (c *Controller) Advance(t float64) {
	c.now = t
	if ck, ok := c.tiles.(clock); ok {
		ck.SetTime(t)
	}
	c.ribbon.Update(t)
}

// Clear removes the ribbon and any stroke in progress.
func (c *Controller) Clear() {
	c.recorder.Clear()
	c.ribbon.Dispose()
	c.log.Info("canvas cleared")
}

// Export writes the current ribbon as OBJ and returns the file path.
func (c *Controller) Export() (string, error) {
	segs := c.ribbon.Segments()
	if len(segs) == 0 {
		return "", fmt.Errorf("nothing to export")
	}
	name := "ribbon-" + c.ribbon.ID()[:8]
	path := filepath.Join(c.exportDir, name+".obj")
	if err := meshio.WriteOBJFile(path, name, segs); err != nil {
		return "", err
	}
	c.log.Info("ribbon exported", zap.String("path", path), zap.Int("segments", len(segs)))
	return path, nil
}

// Status summarizes the studio state for the window title.
func (c *Controller) Status() string {
	opts := c.ribbon.Options()
	return fmt.Sprintf("%d segments | wave %s | truncate %s",
		len(c.ribbon.Segments()), onOff(opts.WaveAmplitude != 0), onOff(opts.Truncate))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
