package closure

import "github.com/randomizedcoder/strategy-dispatch-benchmarks/internal/randbool"

// NewRandomValue draws kind then operation from src, two independent
// unbiased draws, and returns one of the four equally likely combinations
// behind the Value interface. Increment binds the method-value form and
// decrement the closure-literal form, so the workload mixes both. The value
// starts at its kind's zero.
func NewRandomValue(src *randbool.Source) Value {
	if src.Bool() {
		if src.Bool() {
			return NewIntValue(0, IncrementInt{}.Apply)
		}
		return NewIntValue(0, DecrementIntStrategy())
	}
	if src.Bool() {
		return NewFloatValue(0, IncrementFloat{}.Apply)
	}
	return NewFloatValue(0, DecrementFloatStrategy())
}
