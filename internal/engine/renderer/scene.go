package renderer

import (
	"slices"

	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
)

// mesh is the GPU-side storage of one segment.
type mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// meshBackend owns GPU objects. The scene only hands meshes around.
type meshBackend interface {
	create() mesh
	upload(m *mesh, seg *ribbon.Segment)
	destroy(m mesh)
}

// Scene tracks the segments on screen and the meshes holding their
// geometry. Meshes of removed segments go on a free list and are reused by
// the next Add, so rebuilding a ribbon every frame allocates no new GL
// objects once the pool is warm.
type Scene struct {
	backend meshBackend
	order   []*ribbon.Segment
	live    map[*ribbon.Segment]mesh
	free    []mesh
	created int
}

func newScene(b meshBackend) *Scene {
	return &Scene{
		backend: b,
		live:    make(map[*ribbon.Segment]mesh),
	}
}

// Add implements ribbon.Scene. Adding a segment twice re-uploads it.
func (s *Scene) Add(seg *ribbon.Segment) {
	if seg == nil {
		return
	}
	m, ok := s.live[seg]
	if !ok {
		m = s.take()
		s.order = append(s.order, seg)
	}
	s.backend.upload(&m, seg)
	s.live[seg] = m
}

// Remove implements ribbon.Scene.
func (s *Scene) Remove(seg *ribbon.Segment) {
	m, ok := s.live[seg]
	if !ok {
		return
	}
	delete(s.live, seg)
	s.free = append(s.free, m)
	if i := slices.Index(s.order, seg); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// Len returns the number of segments in the scene.
func (s *Scene) Len() int { return len(s.order) }

// Segments returns the segments in the order they were added.
func (s *Scene) Segments() []*ribbon.Segment { return s.order }

// Pooled returns how many meshes wait for reuse.
func (s *Scene) Pooled() int { return len(s.free) }

// Created returns how many meshes were ever allocated.
func (s *Scene) Created() int { return s.created }

// each calls fn for every visible segment in draw order.
func (s *Scene) each(fn func(seg *ribbon.Segment, m mesh)) {
	for _, seg := range s.order {
		if !seg.Visible {
			continue
		}
		if m := s.live[seg]; m.indexCount > 0 {
			fn(seg, m)
		}
	}
}

func (s *Scene) take() mesh {
	if n := len(s.free); n > 0 {
		m := s.free[n-1]
		s.free = s.free[:n-1]
		return m
	}
	s.created++
	return s.backend.create()
}

// release destroys every mesh, live or pooled.
func (s *Scene) release() {
	for _, m := range s.live {
		s.backend.destroy(m)
	}
	for _, m := range s.free {
		s.backend.destroy(m)
	}
	clear(s.live)
	s.order = nil
	s.free = nil
}
