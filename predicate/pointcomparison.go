package predicate

import (
	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/types"
)

// PointLess reports whether p sorts strictly before q under the (x, then
// y) total order every site and event comparison is ultimately built from.
func PointLess[T types.SignedInteger](p, q point.Point[T]) bool {
	return p.Compare(q) < 0
}
