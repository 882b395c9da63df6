// Package studio runs the interactive ribbon sketching app: the window, the
// frame loop and the controller that turns strokes into ribbons.
package studio

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ribbon-studio/internal/config"
	"github.com/Faultbox/ribbon-studio/internal/engine/capture"
	"github.com/Faultbox/ribbon-studio/internal/engine/input"
	"github.com/Faultbox/ribbon-studio/internal/engine/renderer"
	"github.com/Faultbox/ribbon-studio/internal/engine/window"
	"github.com/Faultbox/ribbon-studio/internal/logger"
	"github.com/Faultbox/ribbon-studio/internal/tiles"
	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
)

const title = "Ribbon Studio"

// Studio is the main app instance.
type Studio struct {
	config     *config.Config
	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	controller *Controller
	capture    *capture.Capture
}

// New opens the window and prepares GPU resources. Exports go to exportDir.
func New(cfg *config.Config, exportDir string) (*Studio, error) {
	logger.Info("initializing studio",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Float32("ribbon_width", cfg.Ribbon.Width),
	)

	s := &Studio{
		config:  cfg,
		input:   input.New(),
		capture: capture.New(exportDir, "ribbon"),
	}

	var err error
	s.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	dw, dh := s.window.DrawableSize()
	s.renderer, err = renderer.New(renderer.DefaultConfig(dw, dh))
	if err != nil {
		s.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s.controller = NewController(cfg, s.renderer.Scene(), s.tileProvider(), exportDir, logger.Log)

	logger.Info("studio initialized")
	return s, nil
}

// tileProvider uploads the animated tile set, falling back to flat colors.
func (s *Studio) tileProvider() ribbon.TileProvider {
	p := tileParams(s.config.Tiles)
	if p.Count == 0 {
		return nil
	}
	anim, err := tiles.NewAnimated(s.renderer, p)
	if err != nil {
		logger.Warn("animated tiles unavailable, using flat colors", zap.Error(err))
		return tiles.NewSolid(p)
	}
	logger.Debug("tiles uploaded", zap.Int("tiles", p.Count), zap.Int("frames", p.Frames))
	return anim
}

func tileParams(t config.TilesConfig) tiles.Params {
	return tiles.Params{
		Count:      t.Count,
		Frames:     t.Frames,
		FPS:        t.FPS,
		Size:       t.Size,
		HueOffset:  t.HueOffset,
		Saturation: t.Saturation,
		Value:      t.Value,
	}
}

// Controller returns the input controller.
func (s *Studio) Controller() *Controller { return s.controller }

// Run starts the frame loop. It returns when the user quits or ctx is done.
func (s *Studio) Run(ctx context.Context) error {
	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	var frameBudget time.Duration
	if limit := s.config.Window.FPSLimit; limit > 0 && !s.config.Window.VSync {
		frameBudget = time.Second / time.Duration(limit)
	}

	logger.Info("starting frame loop")

	for ctx.Err() == nil && !s.controller.Quit() {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// 1. Input
		s.input.Update()
		for _, event := range s.input.Events() {
			if event.Type == input.EventWindowResize {
				s.renderer.Resize(s.window.DrawableSize())
			}
			s.controller.Handle(event)
		}

		// 2. Regenerate
		s.controller.Advance(frameStart.Sub(start).Seconds())

		// 3. Render and present
		s.render()
		if s.controller.CaptureRequested() {
			s.screenshot()
		}
		s.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			s.window.SetTitle(fmt.Sprintf("%s | %s | %d fps", title, s.controller.Status(), frameCount))
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (s *Studio) render() {
	cam := s.controller.Camera()
	s.renderer.Begin()
	s.renderer.Draw(cam.ViewMatrix(), cam.ProjectionMatrix(s.renderer.Aspect()), cam.Position())
	s.renderer.End()
}

// screenshot saves the frame just rendered.
func (s *Studio) screenshot() {
	pixels, w, h := s.renderer.ReadPixels()
	path, err := s.capture.FromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases the ribbon, GPU resources and the window.
func (s *Studio) Close() {
	logger.Info("closing studio")

	if s.controller != nil {
		s.controller.Ribbon().Dispose()
	}
	if s.renderer != nil {
		s.renderer.Close()
	}
	if s.window != nil {
		s.window.Close()
	}
}
