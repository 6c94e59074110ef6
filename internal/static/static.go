// Package static implements the value/strategy contract with compile-time
// dispatch.
//
// The strategy is a type parameter of the value, so every Operation call is
// a direct method call the compiler can inline, and no runtime replacement
// exists: the binding is part of the value's type identity. This asymmetry
// against the dynamic and closure packages is deliberate; it is the contrast
// the benchmarks measure.
//
// Implementation notes:
//   - IntStrategy and FloatStrategy constrain the type argument and operate
//     on the numeric cell directly. Strategy instances are zero-size and
//     live inline in the value, so values carry no pointer to behavior.
//   - Four concrete value types exist: IntValue[IncrementInt],
//     IntValue[DecrementInt], FloatValue[IncrementFloat], and
//     FloatValue[DecrementFloat].
//   - The Value interface exists only so the random factory can erase those
//     four types for uniform storage; it is the one place this package
//     allocates dynamically.
package static

// Value is the erasure boundary for uniform storage of the concrete value
// types.
type Value interface {
	Operation()
}

// IntStrategy constrains int-kind strategy type arguments.
type IntStrategy interface {
	// Apply mutates the numeric cell.
	Apply(v *int32)
}

// FloatStrategy constrains float-kind strategy type arguments.
type FloatStrategy interface {
	// Apply mutates the numeric cell.
	Apply(v *float32)
}
