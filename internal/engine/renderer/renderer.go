// Package renderer draws ribbon segments with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/ribbon-studio/internal/engine/shader"
	"github.com/Faultbox/ribbon-studio/internal/logger"
	"github.com/Faultbox/ribbon-studio/pkg/math"
	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// Background is the clear color.
	Background [4]float32
	// SunLongitude and SunLatitude place the directional light, in degrees.
	SunLongitude float64
	SunLatitude  float64
}

// DefaultConfig returns a dark background lit from the upper right.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:        width,
		Height:       height,
		Background:   [4]float32{0.1, 0.1, 0.15, 1},
		SunLongitude: 35,
		SunLatitude:  50,
	}
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config   Config
	program  *shader.Ribbon
	scene    *Scene
	textures []uint32
	light    math.Vec3
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.NewRibbon()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		config:  cfg,
		program: program,
		scene:   newScene(glBackend{}),
		light:   SunDirection(cfg.SunLongitude, cfg.SunLatitude),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Scene returns the segment scene. Pass it to ribbon.New.
func (r *Renderer) Scene() *Scene { return r.scene }

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Debug("closing renderer",
		zap.Int("meshes", r.scene.Created()),
		zap.Int("textures", len(r.textures)),
	)
	r.scene.release()
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	r.program.Delete()
}

// Resize handles window resize. Sizes are in drawable pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every visible segment of the scene.
func (r *Renderer) Draw(view, projection math.Mat4, eye math.Vec3) {
	p := r.program
	gl.UseProgram(p.ID)
	gl.UniformMatrix4fv(p.View, 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Projection, 1, false, projection.Ptr())
	gl.Uniform3f(p.LightDir, r.light.X, r.light.Y, r.light.Z)
	gl.Uniform3f(p.Eye, eye.X, eye.Y, eye.Z)
	gl.Uniform1i(p.Tiles, 0)
	gl.ActiveTexture(gl.TEXTURE0)

	r.scene.each(func(seg *ribbon.Segment, m mesh) {
		surf := seg.Surface
		if surf.DoubleSided {
			gl.Disable(gl.CULL_FACE)
		} else {
			gl.Enable(gl.CULL_FACE)
		}

		if surf.Texture != 0 {
			gl.BindTexture(gl.TEXTURE_2D_ARRAY, surf.Texture)
			gl.Uniform1i(p.Textured, 1)
			gl.Uniform1f(p.Layer, float32(surf.Layer))
		} else {
			gl.Uniform1i(p.Textured, 0)
		}
		c := surf.Color
		gl.Uniform4f(p.Color, c[0], c[1], c[2], c[3])

		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	})

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		logger.Warn("GL error", zap.Uint32("code", errCode))
	}
}
