// Package dynamic implements the value/strategy contract with runtime
// interface dispatch.
//
// Each value holds its strategy as an interface, so every Operation call
// resolves the target through the itab. The binding is replaceable at any
// time via SetStrategy.
//
// Implementation notes:
//   - Strategy is generic over the value kind, so increment and decrement
//     stay kind-matched at compile time while dispatch stays dynamic.
//   - Strategies touch values only through the Value/SetValue accessor pair.
//   - Operation never allocates; allocation happens at construction and
//     replacement only.
package dynamic

// Value is the common capability every entity exposes: one operation that
// mutates the entity's numeric state according to its bound strategy.
type Value interface {
	Operation()
}

// Strategy is a replaceable unit of behavior bound to a value of kind V.
// A strategy is mandatory at construction; values never run without one.
type Strategy[V any] interface {
	// Apply mutates v's numeric state.
	Apply(v *V)
}
