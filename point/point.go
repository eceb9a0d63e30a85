// Package point defines the foundational geometric primitive of voronoi2d:
// a coordinate pair generic over the signed numeric types the sweepline
// algorithm moves between. Input sites carry integer coordinates (so the
// total order required by event sorting is exact); the finished diagram's
// vertices carry float coordinates (so downstream comparisons need an
// epsilon or ULP tolerance). Both are the same [Point] type, parameterized
// differently.
//
// # Key Features
//
// Creation
//   - Points are created with New.
//
// Vector Operations
//   - Add, Sub and Negate support the bisector and circle-formation algebra.
//   - CrossProduct and DotProduct back the orientation and distance predicates.
//
// Distance
//   - DistanceToPoint and DistanceSquaredToPoint provide Euclidean distance,
//     always as float64 regardless of the point's own coordinate type.
//
// Equality & Ordering
//   - Eq checks exact equality, or approximate equality via [options.WithEpsilon].
//   - Compare gives the total (x, then y) order sites are sorted by.
package point

import (
	"fmt"
	"math"

	"github.com/mikenye/voronoi2d/numeric"
	"github.com/mikenye/voronoi2d/options"
	"github.com/mikenye/voronoi2d/types"
)

// Point represents a point in two-dimensional space with coordinates of a
// signed numeric type T. Input sites use an integer T; diagram vertices use
// a floating-point T.
type Point[T types.SignedNumber] struct {
	x T
	y T
}

// New creates a new Point with the specified x and y coordinates.
func New[T types.SignedNumber](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point[T]) X() T {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point[T]) Y() T {
	return p.y
}

// Coordinates returns the x and y coordinates as separate values.
func (p Point[T]) Coordinates() (x, y T) {
	return p.x, p.y
}

// Add returns the componentwise sum of two points, treating them as vectors.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{x: p.x - q.x, y: p.y - q.y}
}

// Negate returns the point reflected through the origin.
func (p Point[T]) Negate() Point[T] {
	return Point[T]{x: -p.x, y: -p.y}
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	p × q = p.x*q.y - p.y*q.x
//
// A positive result indicates a counterclockwise turn from p to q, negative
// indicates clockwise, and zero indicates the vectors are collinear. This is
// the primitive the orientation predicate is built on.
func (p Point[T]) CrossProduct(q Point[T]) T {
	return p.x*q.y - p.y*q.x
}

// DotProduct returns the dot product of p and q.
func (p Point[T]) DotProduct(q Point[T]) T {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p
// and q as a float64, regardless of T.
func (p Point[T]) DistanceSquaredToPoint(q Point[T]) float64 {
	dx := float64(q.x) - float64(p.x)
	dy := float64(q.y) - float64(p.y)
	return dx*dx + dy*dy
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point[T]) DistanceToPoint(q Point[T]) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Compare gives the total order points are sorted by: ascending x, then
// ascending y. It returns -1, 0, or 1.
func (p Point[T]) Compare(q Point[T]) int {
	switch {
	case p.x < q.x:
		return -1
	case p.x > q.x:
		return 1
	case p.y < q.y:
		return -1
	case p.y > q.y:
		return 1
	default:
		return 0
	}
}

// Eq reports whether p and q are equal. With no options, equality is exact.
// [options.WithEpsilon] allows a tolerance, meaningful when T is a
// floating-point type (e.g. comparing diagram vertices against fixtures).
func (p Point[T]) Eq(q Point[T], opts ...options.BuildOptionFunc) bool {
	o := options.ApplyBuildOptions(options.BuildOptions{}, opts...)
	if o.Epsilon == 0 {
		return p.x == q.x && p.y == q.y
	}
	return numeric.FloatEquals(float64(p.x), float64(q.x), o.Epsilon) &&
		numeric.FloatEquals(float64(p.y), float64(q.y), o.Epsilon)
}

// String returns a string representation of the point in the format "(x,y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.x, p.y)
}
