package tiles

import gomath "math"

// FrameAt returns the animation frame shown at time seconds for a cycle of
// frames played at fps. It is 0 when there is nothing to animate.
func FrameAt(time, fps float64, frames int) int {
	if frames <= 1 || fps <= 0 || time <= 0 {
		return 0
	}
	return int(gomath.Floor(time*fps)) % frames
}
