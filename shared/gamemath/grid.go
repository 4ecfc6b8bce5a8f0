package gamemath

import "math"

// CellOrigin snaps a world-space point to the top-left corner of the grid
// cell that contains it.
func CellOrigin(p Vec2, cellSize float64) Vec2 {
	return Vec2{
		X: math.Floor(p.X/cellSize) * cellSize,
		Y: math.Floor(p.Y/cellSize) * cellSize,
	}
}

// Clamp constrains v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DecayFriction multiplies speed by factor, snapping to exactly zero once
// the magnitude drops below epsilon so the player eventually comes to rest
// instead of decaying forever.
func DecayFriction(speed, factor, epsilon float64) float64 {
	speed *= factor
	if math.Abs(speed) < epsilon {
		return 0
	}
	return speed
}
