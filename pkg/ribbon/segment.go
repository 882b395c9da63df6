package ribbon

import (
	"github.com/Faultbox/ribbon-studio/pkg/curve"
	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// Vertex is a ribbon vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Segment is one independently textured run of the ribbon.
//
// Vertices alternate left, right along the walk; vertex 2i is the left edge
// of sample i. U runs along the segment from 0 and V across it (0 left,
// 1 right).
type Segment struct {
	Index    int
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
	Surface  Surface

	// Visible is owned by the scene the segment is added to.
	Visible bool

	disposed bool
}

// VertexCount returns the number of vertices.
func (s *Segment) VertexCount() int { return len(s.Vertices) }

// TriangleCount returns the number of triangles.
func (s *Segment) TriangleCount() int { return len(s.Indices) / 3 }

// Dispose releases the segment's geometry. The surface belongs to the tile
// provider and is only dropped, never modified.
func (s *Segment) Dispose() {
	s.Vertices = nil
	s.Indices = nil
	s.Surface = Surface{}
	s.Visible = false
	s.disposed = true
}

// Disposed reports whether Dispose has been called.
func (s *Segment) Disposed() bool { return s.disposed }

// BuildSegment emits segment s of count along c using a precomputed field
// of count*PointsPerSegment+1 normals. The surface is left zero.
func BuildSegment(c curve.PathCurve, field NormalField, s, count int, width float32, time float64, opts Options) *Segment {
	opts = opts.withDefaults()
	b := &segmentBuild{
		curve:  c,
		field:  field,
		count:  count,
		width:  width,
		time:   time,
		opts:   opts,
		maxPts: opts.MaxPoints(),
	}
	return b.build(s)
}

// segmentBuild carries the per-build state shared by every segment.
type segmentBuild struct {
	curve  curve.PathCurve
	field  NormalField
	count  int
	width  float32
	time   float64
	opts   Options
	maxPts int
}

// build emits the geometry for segment s.
func (b *segmentBuild) build(s int) *Segment {
	pps := b.opts.PointsPerSegment
	startT := float32(s) / float32(b.count)
	endT := float32(s+1) / float32(b.count)
	half := b.width / 2

	seg := &Segment{
		Index:    s,
		Vertices: make([]Vertex, 0, 2*(b.maxPts+1)),
		Indices:  make([]uint32, 0, 6*b.maxPts),
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	for i := 0; i <= b.maxPts; i++ {
		localT := float32(i) / float32(pps)
		globalT := startT + (endT-startT)*localT

		point := b.curve.Position(globalT)
		tangent := b.curve.Tangent(globalT)
		normal := b.field.At(s*pps + i)
		normal = math.RotateAround(normal, tangent, b.opts.WavePhase(globalT, b.time))

		offset := normal.Scale(half)
		left := point.Sub(offset).Array()
		right := point.Add(offset).Array()
		updateBounds(&seg.Bounds, left)
		updateBounds(&seg.Bounds, right)

		seg.Vertices = append(seg.Vertices,
			Vertex{Position: left, TexCoord: [2]float32{localT, 0}},
			Vertex{Position: right, TexCoord: [2]float32{localT, 1}},
		)
	}

	for i := 0; i < b.maxPts; i++ {
		base := uint32(i * 2)
		seg.Indices = append(seg.Indices,
			base, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	ComputeVertexNormals(seg.Vertices, seg.Indices)
	return seg
}

// ComputeVertexNormals sets each vertex normal to the area-weighted average
// of the faces that use it. Vertices touching only degenerate faces get +Y.
func ComputeVertexNormals(vertices []Vertex, indices []uint32) {
	sums := make([]math.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		ia, ib, ic := indices[i], indices[i+1], indices[i+2]
		a := vec(vertices[ia].Position)
		face := vec(vertices[ib].Position).Sub(a).Cross(vec(vertices[ic].Position).Sub(a))
		sums[ia] = sums[ia].Add(face)
		sums[ib] = sums[ib].Add(face)
		sums[ic] = sums[ic].Add(face)
	}
	for i, sum := range sums {
		n := sum.Normalize()
		if n == (math.Vec3{}) {
			n = math.UnitY
		}
		vertices[i].Normal = n.Array()
	}
}

// FaceNormal returns the unit normal of triangle tri (0-based) in seg.
func FaceNormal(seg *Segment, tri int) math.Vec3 {
	a := vec(seg.Vertices[seg.Indices[tri*3]].Position)
	b := vec(seg.Vertices[seg.Indices[tri*3+1]].Position)
	c := vec(seg.Vertices[seg.Indices[tri*3+2]].Position)
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func vec(p [3]float32) math.Vec3 {
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

func updateBounds(b *Bounds, p [3]float32) {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}

// Union returns the smallest box containing every segment's bounds.
func Union(segments []*Segment) (Bounds, bool) {
	if len(segments) == 0 {
		return Bounds{}, false
	}
	out := segments[0].Bounds
	for _, s := range segments[1:] {
		updateBounds(&out, s.Bounds.Min)
		updateBounds(&out, s.Bounds.Max)
	}
	return out, true
}
