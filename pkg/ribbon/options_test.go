package ribbon

import (
	gomath "math"
	"testing"
)

func TestMaxPoints(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want int
	}{
		{"default", DefaultOptions(), 50},
		{"truncated", Options{PointsPerSegment: 50, Truncate: true}, 49},
		{"coarse truncated", Options{PointsPerSegment: 10, Truncate: true, TruncateFactor: 0.5}, 5},
		{"zero resolution", Options{}, DefaultPointsPerSegment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.MaxPoints(); got != tt.want {
				t.Errorf("MaxPoints() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWavePhase(t *testing.T) {
	o := Options{WaveAmplitude: 0.5, WaveFrequency: 1, WaveSpeed: 2}

	if got := o.WavePhase(0, 0); got != 0 {
		t.Errorf("WavePhase(0, 0) = %v, want 0", got)
	}
	// A quarter cycle along the path peaks the wave.
	if got := o.WavePhase(0.25, 0); gomath.Abs(float64(got-0.5)) > 1e-6 {
		t.Errorf("WavePhase(0.25, 0) = %v, want 0.5", got)
	}
	// Time shifts the phase: speed 2 for pi/4 seconds is also a quarter cycle.
	if got := o.WavePhase(0, gomath.Pi/4); gomath.Abs(float64(got-0.5)) > 1e-6 {
		t.Errorf("WavePhase(0, pi/4) = %v, want 0.5", got)
	}
	if got := (Options{}).WavePhase(0.3, 10); got != 0 {
		t.Errorf("zero amplitude should give no phase, got %v", got)
	}
}

func TestWithDefaultsKeepsValidValues(t *testing.T) {
	o := Options{PointsPerSegment: 12, TruncateFactor: 0.8, NormalBlend: 0.25}.withDefaults()
	if o.PointsPerSegment != 12 || o.TruncateFactor != 0.8 || o.NormalBlend != 0.25 {
		t.Errorf("withDefaults() overrode valid values: %+v", o)
	}

	o = Options{NormalBlend: 1.5, TruncateFactor: 2}.withDefaults()
	if o.NormalBlend != DefaultNormalBlend || o.TruncateFactor != DefaultTruncateFactor {
		t.Errorf("withDefaults() kept out-of-range values: %+v", o)
	}
}
