package dynamic

// IntValue is a mutable int32 cell with a runtime-replaceable strategy.
type IntValue struct {
	strategy Strategy[IntValue]
	value    int32
}

// NewIntValue creates an IntValue holding value with strategy bound.
func NewIntValue(value int32, strategy Strategy[IntValue]) *IntValue {
	return &IntValue{
		strategy: strategy,
		value:    value,
	}
}

// SetStrategy replaces the bound strategy. The previous strategy is no
// longer referenced. Takes effect on the next Operation call; the current
// value is untouched.
func (v *IntValue) SetStrategy(strategy Strategy[IntValue]) {
	v.strategy = strategy
}

// Operation dispatches to the bound strategy through the interface.
func (v *IntValue) Operation() {
	v.strategy.Apply(v)
}

// Value returns the current numeric state.
func (v *IntValue) Value() int32 {
	return v.value
}

// SetValue overwrites the numeric state.
func (v *IntValue) SetValue(value int32) {
	v.value = value
}

// IncrementInt raises an IntValue by one per application.
type IncrementInt struct{}

// Apply adds one to v.
func (IncrementInt) Apply(v *IntValue) {
	v.SetValue(v.Value() + 1)
}

// DecrementInt lowers an IntValue by one per application.
type DecrementInt struct{}

// Apply subtracts one from v.
func (DecrementInt) Apply(v *IntValue) {
	v.SetValue(v.Value() - 1)
}
