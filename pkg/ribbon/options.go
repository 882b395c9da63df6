package ribbon

import gomath "math"

// Tuning constants. They are defaults for the matching Options fields.
const (
	// DefaultPointsPerSegment is the number of quads in one segment.
	DefaultPointsPerSegment = 50

	// DefaultTruncateFactor shortens segments when Options.Truncate is set,
	// leaving a visible gap before the next segment.
	DefaultTruncateFactor = 0.99

	// DefaultNormalBlend is how far each normal-field sample is pulled back
	// toward its predecessor to damp jitter from noisy curvature.
	DefaultNormalBlend = 0.1

	// ParallelEpsilon is the cross-product length below which two unit
	// vectors are treated as parallel.
	ParallelEpsilon = 1e-3
)

// Wave defaults.
const (
	DefaultWaveAmplitude = 0.25 // radians
	DefaultWaveFrequency = 2.0  // cycles over the full ribbon
	DefaultWaveSpeed     = 2.0  // radians per second
)

// Options controls a ribbon build.
type Options struct {
	PointsPerSegment int
	Truncate         bool
	TruncateFactor   float32
	NormalBlend      float32

	// WaveAmplitude is the peak twist of the undulation around the path
	// tangent, in radians. Zero disables the wave.
	WaveAmplitude float32
	// WaveFrequency is the number of wave cycles along the ribbon.
	WaveFrequency float32
	// WaveSpeed scales time into wave phase.
	WaveSpeed float32
}

// DefaultOptions returns the standard build settings.
func DefaultOptions() Options {
	return Options{
		PointsPerSegment: DefaultPointsPerSegment,
		TruncateFactor:   DefaultTruncateFactor,
		NormalBlend:      DefaultNormalBlend,
		WaveAmplitude:    DefaultWaveAmplitude,
		WaveFrequency:    DefaultWaveFrequency,
		WaveSpeed:        DefaultWaveSpeed,
	}
}

// withDefaults fills zero-valued resolution and tuning fields.
func (o Options) withDefaults() Options {
	if o.PointsPerSegment <= 0 {
		o.PointsPerSegment = DefaultPointsPerSegment
	}
	if o.TruncateFactor <= 0 || o.TruncateFactor > 1 {
		o.TruncateFactor = DefaultTruncateFactor
	}
	if o.NormalBlend < 0 || o.NormalBlend >= 1 {
		o.NormalBlend = DefaultNormalBlend
	}
	return o
}

// MaxPoints returns the last sample index walked in each segment.
func (o Options) MaxPoints() int {
	o = o.withDefaults()
	if !o.Truncate {
		return o.PointsPerSegment
	}
	return int(gomath.Floor(float64(o.PointsPerSegment) * float64(o.TruncateFactor)))
}

// WavePhase returns the undulation angle at path parameter t and time.
func (o Options) WavePhase(t float32, time float64) float32 {
	if o.WaveAmplitude == 0 {
		return 0
	}
	arg := float64(t)*2*gomath.Pi*float64(o.WaveFrequency) + time*float64(o.WaveSpeed)
	return float32(gomath.Sin(arg)) * o.WaveAmplitude
}
