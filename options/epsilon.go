package options

// WithEpsilon returns a [BuildOptionFunc] that sets the Epsilon value for functions that support it.
// Epsilon is a small positive value used to adjust for floating-point precision errors,
// ensuring numerical stability in geometric calculations.
//
// A negative epsilon is clamped to 0 (no adjustment).
func WithEpsilon(epsilon float64) BuildOptionFunc {
	return func(opts *BuildOptions) {
		if epsilon < 0 {
			epsilon = 0 // Default to no adjustment
		}
		opts.Epsilon = epsilon
	}
}
