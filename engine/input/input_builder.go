package input

// AccumulatorBuilderOption is a functional option for configuring an Accumulator.
type AccumulatorBuilderOption func(*accumulator)

// WithMouseScale scales every pointer delta before it is accumulated.
//
// Parameters:
//   - scale: multiplier applied to dx and dy
//
// Returns:
//   - AccumulatorBuilderOption: option function to apply
func WithMouseScale(scale float32) AccumulatorBuilderOption {
	return func(a *accumulator) {
		a.mouseScale = scale
	}
}

// WithInvertY flips the vertical pointer delta.
//
// Parameters:
//   - invert: true to invert vertical look
//
// Returns:
//   - AccumulatorBuilderOption: option function to apply
func WithInvertY(invert bool) AccumulatorBuilderOption {
	return func(a *accumulator) {
		a.invertY = invert
	}
}
