// Package netforce reduces a force grid to the load it places on the nucleus:
// the nucleus centroid and the net 2D force vector on the nucleus surface.
//
// Coordinates follow image conventions: X is the column axis and Y the row
// axis, both growing away from the top-left pixel.
package netforce

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/nucleusforce/grid"
)

// ErrEmptyNucleus indicates the nucleus mask has no member pixels, so its
// centroid is undefined.
var ErrEmptyNucleus = errors.New("netforce: nucleus has no pixels")

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Vector is a 2D force.
type Vector struct {
	X, Y float64
}

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in radians, measured from the +X (column)
// axis toward +Y (row).
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Centroid returns the arithmetic mean position of all nucleus pixels.
// Returns ErrEmptyNucleus if nucleus has no nonzero pixel.
func Centroid(nucleus *grid.Labels) (Point, error) {
	if err := grid.SameShape(nucleus); err != nil {
		return Point{}, err
	}
	xs := make([]float64, 0, nucleus.Count())
	ys := make([]float64, 0, cap(xs))
	for r := 0; r < nucleus.Rows(); r++ {
		for c := 0; c < nucleus.Cols(); c++ {
			if nucleus.At(r, c) != 0 {
				xs = append(xs, float64(c))
				ys = append(ys, float64(r))
			}
		}
	}
	if len(xs) == 0 {
		return Point{}, ErrEmptyNucleus
	}
	n := float64(len(xs))

	return Point{X: floats.Sum(xs) / n, Y: floats.Sum(ys) / n}, nil
}

// Of returns the net force f places on the nucleus: for every nucleus pixel
// with nonzero force, the unit vector from that pixel toward the centroid,
// scaled by the pixel's force, summed over pixels.
//
// A force-bearing pixel located exactly at the centroid has no direction and
// contributes nothing.
//
// Returns grid.ErrDimensionMismatch if the shapes differ and ErrEmptyNucleus
// if the nucleus is empty.
func Of(nucleus *grid.Labels, f *grid.Forces) (Vector, error) {
	if err := grid.SameShape(nucleus, f); err != nil {
		return Vector{}, err
	}
	m, err := Centroid(nucleus)
	if err != nil {
		return Vector{}, err
	}

	var net Vector
	for r := 0; r < nucleus.Rows(); r++ {
		for c := 0; c < nucleus.Cols(); c++ {
			load := f.At(r, c)
			if nucleus.At(r, c) == 0 || load == 0 {
				continue
			}
			dx, dy := m.X-float64(c), m.Y-float64(r)
			mag := math.Hypot(dx, dy)
			if mag == 0 {
				continue // at the centroid
			}
			net.X += dx / mag * load
			net.Y += dy / mag * load
		}
	}

	return net, nil
}

// Total returns the sum of f over nucleus pixels.
func Total(nucleus *grid.Labels, f *grid.Forces) (float64, error) {
	if err := grid.SameShape(nucleus, f); err != nil {
		return 0, err
	}
	loads := make([]float64, 0, nucleus.Count())
	fv := f.Values()
	for i, v := range nucleus.Values() {
		if v != 0 {
			loads = append(loads, fv[i])
		}
	}
	return floats.Sum(loads), nil
}
