package static

import "github.com/randomizedcoder/strategy-dispatch-benchmarks/internal/randbool"

// NewRandomValue draws kind then operation from src, two independent
// unbiased draws, and returns one of the four concrete instantiations
// erased behind Value so mixed collections can hold them. The value starts
// at its kind's zero.
func NewRandomValue(src *randbool.Source) Value {
	if src.Bool() {
		if src.Bool() {
			return NewIntValue[IncrementInt](0)
		}
		return NewIntValue[DecrementInt](0)
	}
	if src.Bool() {
		return NewFloatValue[IncrementFloat](0)
	}
	return NewFloatValue[DecrementFloat](0)
}
