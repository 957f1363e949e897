// seehuhn.de/go/shape - a 2D shape rasterisation library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shape

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrSingular is returned when a transform's linear part is not
// invertible.
var ErrSingular = errors.New("singular transform")

// Transform is an invertible affine map of the plane, p ↦ M·p + t.
// It stores the forward matrix together with its precomputed inverse
// and the singular values of the linear part, so that mapped distance
// bounds stay conservative without per-query matrix work.
//
// The zero value is not usable; construct transforms with NewTransform
// or one of the builders.
type Transform struct {
	m, inv     matrix.Matrix
	smin, smax float64
}

// NewTransform creates a Transform from an affine matrix in PDF order,
// x' = m[0]·x + m[2]·y + m[4], y' = m[1]·x + m[3]·y + m[5].
// It returns ErrSingular if the linear part is not invertible.
func NewTransform(m matrix.Matrix) (Transform, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < singularThreshold {
		return Transform{}, ErrSingular
	}
	inv := matrix.Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}
	smin, smax := singularValues(m)
	return Transform{m: m, inv: inv, smin: smin, smax: smax}, nil
}

// Identity returns the identity transform.
func Identity() Transform {
	t, _ := NewTransform(matrix.Identity)
	return t
}

// Translation returns the transform that shifts every point by (dx, dy).
func Translation(dx, dy float64) Transform {
	t, _ := NewTransform(matrix.Matrix{1, 0, 0, 1, dx, dy})
	return t
}

// Rotation returns the rotation by theta radians about the origin,
// counter-clockwise in a y-up coordinate system.
func Rotation(theta float64) Transform {
	c := math.Cos(theta)
	s := math.Sin(theta)
	t, _ := NewTransform(matrix.Matrix{c, s, -s, c, 0, 0})
	return t
}

// RotationDeg returns the rotation by an angle given in degrees.
func RotationDeg(deg float64) Transform {
	return Rotation(deg * math.Pi / 180)
}

// Scaling returns the transform that scales x by sx and y by sy.
// It returns ErrSingular if either factor is (numerically) zero.
func Scaling(sx, sy float64) (Transform, error) {
	return NewTransform(matrix.Matrix{sx, 0, 0, sy, 0, 0})
}

// Mul composes two transforms.  The result applies u first and t
// second, so t.Mul(u).Apply(p) == t.Apply(u.Apply(p)).
func (t Transform) Mul(u Transform) Transform {
	a, b := t.m, u.m
	m := matrix.Matrix{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
	// The product of two invertible maps is invertible, so this
	// cannot fail.
	res, _ := NewTransform(m)
	return res
}

// Apply maps a point through the transform.
func (t Transform) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: t.m[0]*p.X + t.m[2]*p.Y + t.m[4],
		Y: t.m[1]*p.X + t.m[3]*p.Y + t.m[5],
	}
}

// ApplyInverse maps a point through the inverse transform.
func (t Transform) ApplyInverse(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: t.inv[0]*p.X + t.inv[2]*p.Y + t.inv[4],
		Y: t.inv[1]*p.X + t.inv[3]*p.Y + t.inv[5],
	}
}

// Matrix returns the forward matrix of the transform.
func (t Transform) Matrix() matrix.Matrix {
	return t.m
}

// MaxStretch returns the operator norm of the linear part, i.e. the
// largest factor by which the transform can expand a distance.
func (t Transform) MaxStretch() float64 {
	return t.smax
}

// MinStretch returns the smallest factor by which the transform can
// expand a distance.  A distance bound computed in source space,
// multiplied by MinStretch, remains valid in target space.
func (t Transform) MinStretch() float64 {
	return t.smin
}

// singularValues computes the singular values of the 2×2 linear part.
func singularValues(m matrix.Matrix) (smin, smax float64) {
	// For L = [[a, c], [b, d]], the singular values satisfy
	// σ² = (q ± sqrt(q² − 4·det²)) / 2 with q = a²+b²+c²+d².
	q := m[0]*m[0] + m[1]*m[1] + m[2]*m[2] + m[3]*m[3]
	det := m[0]*m[3] - m[1]*m[2]
	disc := q*q - 4*det*det
	if disc < 0 {
		disc = 0 // rounding noise for near-conformal maps
	}
	smax = math.Sqrt((q + math.Sqrt(disc)) / 2)
	// σmin·σmax = |det|; this form avoids cancellation in q − sqrt(disc).
	smin = math.Abs(det) / smax
	return smin, smax
}

// singularThreshold is the minimum determinant magnitude for a linear
// part to count as invertible.
const singularThreshold = 1e-12
