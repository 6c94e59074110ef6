// Package closure implements the value/strategy contract with func-value
// dispatch.
//
// The strategy slot holds a type-erased callable, replaceable at runtime
// like the dynamic package's interface but with no type hierarchy behind
// it: anything matching the signature binds. Two forms are exercised
// throughout, a method value of a stateless struct (IncrementInt.Apply,
// IncrementFloat.Apply) and a captureless closure literal
// (DecrementIntStrategy, DecrementFloatStrategy), and both live in the same
// slot interchangeably.
//
// Implementation notes:
//   - Operation calls the held func value; the indirect call is the
//     dispatch under measurement.
//   - Strategies touch values only through the Value/SetValue accessor pair.
//   - Operation never allocates; method-value and closure creation cost
//     sits at construction and replacement.
package closure

// Value is the common capability every entity exposes: one operation that
// mutates the entity's numeric state according to its bound strategy.
type Value interface {
	Operation()
}

// IntStrategy is any callable mutating an IntValue.
type IntStrategy func(v *IntValue)

// FloatStrategy is any callable mutating a FloatValue.
type FloatStrategy func(v *FloatValue)
