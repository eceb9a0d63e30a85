package robustfpt

// RobustDif defers the computation of a difference as a running sum of
// positive and negative contributions, each tracked as a RobustFpt. This
// avoids the error blow-up of repeatedly subtracting partial results; the
// one subtraction that matters happens once, in Dif, after every term has
// been accumulated.
type RobustDif struct {
	positive RobustFpt
	negative RobustFpt
}

// NewRobustDif returns a zero RobustDif.
func NewRobustDif() RobustDif {
	return RobustDif{}
}

// AddFpt folds a signed value into the running positive or negative sum.
func (d RobustDif) AddFpt(v RobustFpt) RobustDif {
	if v.IsPos() {
		d.positive = d.positive.Add(v)
	} else {
		d.negative = d.negative.Sub(v)
	}
	return d
}

// SubFpt folds the negation of v into the running sums.
func (d RobustDif) SubFpt(v RobustFpt) RobustDif {
	if v.IsPos() {
		d.negative = d.negative.Add(v)
	} else {
		d.positive = d.positive.Sub(v)
	}
	return d
}

// Add combines two RobustDif accumulators.
func (d RobustDif) Add(o RobustDif) RobustDif {
	return RobustDif{positive: d.positive.Add(o.positive), negative: d.negative.Add(o.negative)}
}

// Sub combines d - o by swapping o's positive/negative roles.
func (d RobustDif) Sub(o RobustDif) RobustDif {
	return RobustDif{positive: d.positive.Add(o.negative), negative: d.negative.Add(o.positive)}
}

// Positive returns the accumulated positive sum.
func (d RobustDif) Positive() RobustFpt { return d.positive }

// Negative returns the accumulated negative sum.
func (d RobustDif) Negative() RobustFpt { return d.negative }

// Dif computes the final difference, positive - negative.
func (d RobustDif) Dif() RobustFpt {
	return d.positive.Sub(d.negative)
}
