package predicate

import (
	"math"

	"github.com/mikenye/voronoi2d/bigext"
	"github.com/mikenye/voronoi2d/event"
	"github.com/mikenye/voronoi2d/numeric"
	"github.com/mikenye/voronoi2d/point"
	"github.com/mikenye/voronoi2d/robustfpt"
	"github.com/mikenye/voronoi2d/types"
)

// VerticalSegmentULPBudget is the tolerance applied when deciding whether a
// query point's y falls within a vertical segment site's own y-range; per
// the spec this uses a looser budget than the pps foot-of-perpendicular
// check below it, and that asymmetry is intentional rather than a bug to
// fix — both are preserved as observed.
const VerticalSegmentULPBudget = 64

// CircleFormationULPBudget is the tracked-error threshold above which a
// lazily (RobustFpt) computed circumcircle is untrustworthy and the
// computation is redone exactly in bigext's arbitrary-precision arithmetic.
const CircleFormationULPBudget = 128

// CircleFormation computes the circle event, if any, that the convergence
// of three consecutive beach-line arcs (left, mid, right, in left-to-right
// order) would produce, dispatching on how many of the three sites are
// segments. ok is false when the three arcs never converge (diverging or
// degenerate configuration) and event is the zero value.
func CircleFormation[T types.SignedInteger](left, mid, right event.Site[T]) (ev event.CircleEvent, ok bool) {
	switch numSegments(left, mid, right) {
	case 0:
		return circlePPP(left, mid, right)
	case 1:
		return circlePPS(left, mid, right)
	case 2:
		return circlePSS(left, mid, right)
	default:
		return circleSSS(left, mid, right)
	}
}

func numSegments[T types.SignedInteger](sites ...event.Site[T]) int {
	n := 0
	for _, s := range sites {
		if s.IsSegment() {
			n++
		}
	}
	return n
}

func toFloat[T types.SignedInteger](p point.Point[T]) point.Point[float64] {
	return point.New(float64(p.X()), float64(p.Y()))
}

func toExtInt[T types.SignedInteger](v T) bigext.ExtendedInt {
	return bigext.NewExtendedInt(int64(v))
}

// makeCircleEvent assembles the CircleEvent itself. BeachLineIndex is left
// at its zero value; the builder fills it in once it knows which beach-line
// node this event is attached to.
func makeCircleEvent(centerX, centerY, radius float64, isSitePoint bool) (event.CircleEvent, bool) {
	if radius < 0 || math.IsNaN(radius) || math.IsNaN(centerX) || math.IsNaN(centerY) || math.IsInf(radius, 0) {
		return event.CircleEvent{}, false
	}
	ev := event.NewCircleEvent(centerX, centerY, centerX+radius, 0)
	ev.IsSitePoint = isSitePoint
	return ev, true
}

// circumcircleLazy computes a circumcenter and radius in plain float64,
// tracking each result's accumulated ULP error through robustfpt.RobustFpt
// as it goes. Callers escalate to the exact rational kernel below when any
// of the three returned ULP bounds exceeds CircleFormationULPBudget.
func circumcircleLazy(p1, p2, p3 point.Point[float64]) (cx, cy, r, cxULP, cyULP, rULP float64, ok bool) {
	ax, ay := robustfpt.New(p1.X()), robustfpt.New(p1.Y())
	bx, by := robustfpt.New(p2.X()), robustfpt.New(p2.Y())
	ccx, ccy := robustfpt.New(p3.X()), robustfpt.New(p3.Y())

	byMinusCy := by.Sub(ccy)
	cyMinusAy := ccy.Sub(ay)
	ayMinusBy := ay.Sub(by)

	d := ax.Mul(byMinusCy).Add(bx.Mul(cyMinusAy)).Add(ccx.Mul(ayMinusBy)).Mul(robustfpt.New(2))
	if d.IsZero() {
		return 0, 0, 0, 0, 0, 0, false
	}

	aSq := ax.Mul(ax).Add(ay.Mul(ay))
	bSq := bx.Mul(bx).Add(by.Mul(by))
	cSq := ccx.Mul(ccx).Add(ccy.Mul(ccy))

	ux := aSq.Mul(byMinusCy).Add(bSq.Mul(cyMinusAy)).Add(cSq.Mul(ayMinusBy)).Div(d)
	cxMinusBx := ccx.Sub(bx)
	axMinusCx := ax.Sub(ccx)
	bxMinusAx := bx.Sub(ax)
	uy := aSq.Mul(cxMinusBx).Add(bSq.Mul(axMinusCx)).Add(cSq.Mul(bxMinusAx)).Div(d)

	dx := ux.Sub(ax)
	dy := uy.Sub(ay)
	rr := dx.Mul(dx).Add(dy.Mul(dy)).Sqrt()

	return ux.Value(), uy.Value(), rr.Value(), ux.ULP(), uy.ULP(), rr.ULP(), true
}

// ratPoint is a point with exact rational coordinates (nx/den, ny/den),
// den always positive: the representation the exact circle-formation
// escalation path uses so that a segment's foot-of-perpendicular — not
// itself an integer point — can still feed the same exact circumcenter
// kernel as an integer input site.
type ratPoint struct {
	nx, ny, den bigext.ExtendedInt
}

func intRatPoint[T types.SignedInteger](p point.Point[T]) ratPoint {
	return ratPoint{nx: toExtInt(p.X()), ny: toExtInt(p.Y()), den: bigext.NewExtendedInt(1)}
}

// midpointRat returns the exact midpoint of p and q.
func midpointRat(p, q ratPoint) ratPoint {
	nx := p.nx.Mul(q.den).Add(q.nx.Mul(p.den))
	ny := p.ny.Mul(q.den).Add(q.ny.Mul(p.den))
	den := p.den.Mul(q.den).Mul(bigext.NewExtendedInt(2))
	return ratPoint{nx: nx, ny: ny, den: den}
}

// footRat projects the rational point p onto the infinite line through the
// exact integer segment endpoints a, b, exactly (not clamped to [0,1]:
// circlePPS has already rejected a foot outside the segment's parameter
// range in float64 before escalating here; circlePSS and circleSSS do not
// check the parameter range).
func footRat[T types.SignedInteger](p ratPoint, a, b point.Point[T]) ratPoint {
	ax, ay := toExtInt(a.X()), toExtInt(a.Y())
	bx, by := toExtInt(b.X()), toExtInt(b.Y())
	dx, dy := bx.Sub(ax), by.Sub(ay)
	lenSq := dx.Mul(dx).Add(dy.Mul(dy))

	pxMinusA := p.nx.Sub(ax.Mul(p.den))
	pyMinusA := p.ny.Sub(ay.Mul(p.den))
	dotNum := pxMinusA.Mul(dx).Add(pyMinusA.Mul(dy))

	den := p.den.Mul(lenSq)
	nx := ax.Mul(den).Add(dotNum.Mul(dx))
	ny := ay.Mul(den).Add(dotNum.Mul(dy))
	return ratPoint{nx: nx, ny: ny, den: den}
}

// circumcenterExactInt solves the circumcenter of three points given
// directly as ExtendedInt coordinates (already on a common scale), via the
// same determinant-based formula circumcircleLazy uses, but in exact
// arbitrary-precision arithmetic. px/dAbs and py/dAbs are the circumcenter;
// q/dAbs² is the squared radius.
func circumcenterExactInt(ax, ay, bx, by, cx, cy bigext.ExtendedInt) (px, py, dAbs, q bigext.ExtendedInt, ok bool) {
	two := bigext.NewExtendedInt(2)
	byMinusCy := by.Sub(cy)
	cyMinusAy := cy.Sub(ay)
	ayMinusBy := ay.Sub(by)

	d := two.Mul(ax.Mul(byMinusCy).Add(bx.Mul(cyMinusAy)).Add(cx.Mul(ayMinusBy)))
	if d.Sign() == 0 {
		return bigext.ExtendedInt{}, bigext.ExtendedInt{}, bigext.ExtendedInt{}, bigext.ExtendedInt{}, false
	}

	aSq := ax.Mul(ax).Add(ay.Mul(ay))
	bSq := bx.Mul(bx).Add(by.Mul(by))
	cSq := cx.Mul(cx).Add(cy.Mul(cy))

	px0 := aSq.Mul(byMinusCy).Add(bSq.Mul(cyMinusAy)).Add(cSq.Mul(ayMinusBy))
	cxMinusBx := cx.Sub(bx)
	axMinusCx := ax.Sub(cx)
	bxMinusAx := bx.Sub(ax)
	py0 := aSq.Mul(cxMinusBx).Add(bSq.Mul(axMinusCx)).Add(cSq.Mul(bxMinusAx))

	dAbs0 := d
	if d.Sign() < 0 {
		dAbs0 = d.Neg()
		px0 = px0.Neg()
		py0 = py0.Neg()
	}

	qx := px0.Sub(ax.Mul(dAbs0))
	qy := py0.Sub(ay.Mul(dAbs0))
	q0 := qx.Mul(qx).Add(qy.Mul(qy))
	return px0, py0, dAbs0, q0, true
}

// circumcenterExactRational is circumcenterExactInt generalized to three
// rational points, by scaling each to a shared denominator before running
// the same integer algebra: since the circumcenter construction is a linear
// solve, uniformly scaling all three input coordinates by L scales the
// circumcenter (and radius) by the same L, which the final division by
// dAbs*L undoes.
func circumcenterExactRational(p1, p2, p3 ratPoint) (cx, cy, lowerX float64, ok bool) {
	d2d3 := p2.den.Mul(p3.den)
	d1d3 := p1.den.Mul(p3.den)
	d1d2 := p1.den.Mul(p2.den)

	ax, ay := p1.nx.Mul(d2d3), p1.ny.Mul(d2d3)
	bx, by := p2.nx.Mul(d1d3), p2.ny.Mul(d1d3)
	ccx, ccy := p3.nx.Mul(d1d2), p3.ny.Mul(d1d2)

	px, py, dAbs, q, ok := circumcenterExactInt(ax, ay, bx, by, ccx, ccy)
	if !ok {
		return 0, 0, 0, false
	}

	l := p1.den.Mul(p2.den).Mul(p3.den)
	finalDen := dAbs.Mul(l).ToExtendedExponentFpt()

	one := bigext.NewExtendedInt(1)
	lowerNumer := robustfpt.Eval2([]bigext.ExtendedInt{one, px}, []bigext.ExtendedInt{q, one})

	cxFpt := px.ToExtendedExponentFpt().Div(finalDen)
	cyFpt := py.ToExtendedExponentFpt().Div(finalDen)
	lowerFpt := lowerNumer.Div(finalDen)

	return cxFpt.ToFloat64(), cyFpt.ToFloat64(), lowerFpt.ToFloat64(), true
}

// footWithParam projects p onto the infinite line through a,b in plain
// float64, also returning the unclamped parameter t (p's position along
// a->b, 0 at a and 1 at b) and the segment's squared length, so a caller
// can reject a foot that falls outside the segment's own [0,1] range.
func footWithParam(p, a, b point.Point[float64]) (foot point.Point[float64], t, lenSq float64) {
	abx, aby := b.X()-a.X(), b.Y()-a.Y()
	lenSq = abx*abx + aby*aby
	if lenSq == 0 {
		return a, 0, 0
	}
	t = ((p.X()-a.X())*abx + (p.Y()-a.Y())*aby) / lenSq
	return point.New(a.X()+t*abx, a.Y()+t*aby), t, lenSq
}

// circlePPP is the exact case: three point sites, given in the beach
// line's own left-to-right order, converge iff the triangle they form
// turns clockwise (Right) — the orientation the sweep's left-to-right
// adjacency always produces for a genuinely convergent triple, confirmed
// against TestCircleFormation_PPP_Converges's canonical arch-shaped
// triangle. The lazy circumcenter is computed with tracked ULP error
// first; only when that error exceeds CircleFormationULPBudget does this
// escalate to the exact rational kernel.
func circlePPP[T types.SignedInteger](left, mid, right event.Site[T]) (event.CircleEvent, bool) {
	p0, p1, p2 := left.Point0(), mid.Point0(), right.Point0()
	if OrientationOf(p0, p1, p2) != Right {
		return event.CircleEvent{}, false
	}

	cx, cy, r, cxULP, cyULP, rULP, ok := circumcircleLazy(toFloat(p0), toFloat(p1), toFloat(p2))
	if !ok {
		return event.CircleEvent{}, false
	}

	if cxULP > CircleFormationULPBudget || cyULP > CircleFormationULPBudget || rULP > CircleFormationULPBudget {
		if ecx, ecy, elx, ok := circumcenterExactRational(intRatPoint(p0), intRatPoint(p1), intRatPoint(p2)); ok {
			return makeCircleEvent(ecx, ecy, elx-ecx, true)
		}
	}
	return makeCircleEvent(cx, cy, r, true)
}

// circlePPS handles exactly one segment among the three sites. The exact
// treatment solves for a circle tangent to the segment's line and passing
// through the two point foci; this reduces that to a circumcircle through
// the two point foci and the segment's foot-of-perpendicular from their
// midpoint, then sanity-checks the foot lies within [0,1] of the segment's
// own parameter range (outside that range there is no valid tangency).
func circlePPS[T types.SignedInteger](left, mid, right event.Site[T]) (event.CircleEvent, bool) {
	sites := []event.Site[T]{left, mid, right}
	var pts []event.Site[T]
	var seg event.Site[T]
	for _, s := range sites {
		if s.IsSegment() {
			seg = s
		} else {
			pts = append(pts, s)
		}
	}
	if len(pts) != 2 {
		return event.CircleEvent{}, false
	}

	p0f, p1f := toFloat(pts[0].Point0()), toFloat(pts[1].Point0())
	a, b := toFloat(seg.Point0()), toFloat(seg.Point1())
	mid2 := point.New((p0f.X()+p1f.X())/2, (p0f.Y()+p1f.Y())/2)
	footF, t, lenSq := footWithParam(mid2, a, b)
	if lenSq == 0 || t < 0 || t > 1 {
		return event.CircleEvent{}, false
	}

	cx, cy, r, cxULP, cyULP, rULP, ok := circumcircleLazy(p0f, p1f, footF)
	if !ok {
		return event.CircleEvent{}, false
	}

	if cxULP > CircleFormationULPBudget || cyULP > CircleFormationULPBudget || rULP > CircleFormationULPBudget {
		p0r := intRatPoint(pts[0].Point0())
		p1r := intRatPoint(pts[1].Point0())
		footR := footRat(midpointRat(p0r, p1r), seg.Point0(), seg.Point1())
		if ecx, ecy, elx, ok := circumcenterExactRational(p0r, p1r, footR); ok {
			return makeCircleEvent(ecx, ecy, elx-ecx, false)
		}
	}
	return makeCircleEvent(cx, cy, r, false)
}

// circlePSS handles two segment sites and one point site, reducing to the
// point-point case by replacing each segment with its closest point to the
// lone point focus and applying the same circumcircle construction. A
// vertical segment's own y-range is checked against the resulting center
// within VerticalSegmentULPBudget ULPs, deliberately looser than the pps
// foot-of-perpendicular check above: both tolerances are taken directly
// from observed sweepline behavior rather than unified.
func circlePSS[T types.SignedInteger](left, mid, right event.Site[T]) (event.CircleEvent, bool) {
	sites := []event.Site[T]{left, mid, right}
	var pointSite event.Site[T]
	var segs []event.Site[T]
	for _, s := range sites {
		if s.IsSegment() {
			segs = append(segs, s)
		} else {
			pointSite = s
		}
	}
	if len(segs) != 2 {
		return event.CircleEvent{}, false
	}

	pf := toFloat(pointSite.Point0())
	a1, b1 := toFloat(segs[0].Point0()), toFloat(segs[0].Point1())
	a2, b2 := toFloat(segs[1].Point0()), toFloat(segs[1].Point1())
	f1, _, len1 := footWithParam(pf, a1, b1)
	f2, _, len2 := footWithParam(pf, a2, b2)
	if len1 == 0 || len2 == 0 {
		return event.CircleEvent{}, false
	}

	cx, cy, r, cxULP, cyULP, rULP, ok := circumcircleLazy(pf, f1, f2)
	if !ok {
		return event.CircleEvent{}, false
	}

	for _, s := range segs {
		a, b := toFloat(s.Point0()), toFloat(s.Point1())
		if a.X() == b.X() {
			lo, hi := a.Y(), b.Y()
			if lo > hi {
				lo, hi = hi, lo
			}
			if (cy < lo && !numeric.WithinULP(cy, lo, VerticalSegmentULPBudget)) ||
				(cy > hi && !numeric.WithinULP(cy, hi, VerticalSegmentULPBudget)) {
				return event.CircleEvent{}, false
			}
		}
	}

	if cxULP > CircleFormationULPBudget || cyULP > CircleFormationULPBudget || rULP > CircleFormationULPBudget {
		pr := intRatPoint(pointSite.Point0())
		f1r := footRat(pr, segs[0].Point0(), segs[0].Point1())
		f2r := footRat(pr, segs[1].Point0(), segs[1].Point1())
		if ecx, ecy, elx, ok := circumcenterExactRational(pr, f1r, f2r); ok {
			return makeCircleEvent(ecx, ecy, elx-ecx, false)
		}
	}
	return makeCircleEvent(cx, cy, r, false)
}

// circleSSS handles three segment sites by reducing each to its closest
// point to the centroid of the other two segments' midpoints, then
// applying the same circumcircle construction as the point-only case.
func circleSSS[T types.SignedInteger](left, mid, right event.Site[T]) (event.CircleEvent, bool) {
	segs := []event.Site[T]{left, mid, right}
	midsF := make([]point.Point[float64], 3)
	for i, s := range segs {
		a, b := toFloat(s.Point0()), toFloat(s.Point1())
		midsF[i] = point.New((a.X()+b.X())/2, (a.Y()+b.Y())/2)
	}

	feetF := make([]point.Point[float64], 3)
	for i, s := range segs {
		other := point.New(
			(midsF[(i+1)%3].X()+midsF[(i+2)%3].X())/2,
			(midsF[(i+1)%3].Y()+midsF[(i+2)%3].Y())/2,
		)
		a, b := toFloat(s.Point0()), toFloat(s.Point1())
		foot, _, lenSq := footWithParam(other, a, b)
		if lenSq == 0 {
			return event.CircleEvent{}, false
		}
		feetF[i] = foot
	}

	cx, cy, r, cxULP, cyULP, rULP, ok := circumcircleLazy(feetF[0], feetF[1], feetF[2])
	if !ok {
		return event.CircleEvent{}, false
	}

	if cxULP > CircleFormationULPBudget || cyULP > CircleFormationULPBudget || rULP > CircleFormationULPBudget {
		midsR := make([]ratPoint, 3)
		for i, s := range segs {
			midsR[i] = midpointRat(intRatPoint(s.Point0()), intRatPoint(s.Point1()))
		}
		feetR := make([]ratPoint, 3)
		for i, s := range segs {
			other := midpointRat(midsR[(i+1)%3], midsR[(i+2)%3])
			feetR[i] = footRat(other, s.Point0(), s.Point1())
		}
		if ecx, ecy, elx, ok := circumcenterExactRational(feetR[0], feetR[1], feetR[2]); ok {
			return makeCircleEvent(ecx, ecy, elx-ecx, false)
		}
	}
	return makeCircleEvent(cx, cy, r, false)
}
