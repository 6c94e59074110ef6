package dynamic

import "github.com/randomizedcoder/strategy-dispatch-benchmarks/internal/randbool"

// NewRandomValue draws kind then operation from src, two independent
// unbiased draws, and returns one of the four equally likely combinations
// behind the Value interface. The value starts at its kind's zero.
func NewRandomValue(src *randbool.Source) Value {
	if src.Bool() {
		if src.Bool() {
			return NewIntValue(0, IncrementInt{})
		}
		return NewIntValue(0, DecrementInt{})
	}
	if src.Bool() {
		return NewFloatValue(0, IncrementFloat{})
	}
	return NewFloatValue(0, DecrementFloat{})
}
