package dynamic

// FloatValue is a mutable float32 cell with a runtime-replaceable strategy.
type FloatValue struct {
	strategy Strategy[FloatValue]
	value    float32
}

// NewFloatValue creates a FloatValue holding value with strategy bound.
func NewFloatValue(value float32, strategy Strategy[FloatValue]) *FloatValue {
	return &FloatValue{
		strategy: strategy,
		value:    value,
	}
}

// SetStrategy replaces the bound strategy. The previous strategy is no
// longer referenced. Takes effect on the next Operation call; the current
// value is untouched.
func (v *FloatValue) SetStrategy(strategy Strategy[FloatValue]) {
	v.strategy = strategy
}

// Operation dispatches to the bound strategy through the interface.
func (v *FloatValue) Operation() {
	v.strategy.Apply(v)
}

// Value returns the current numeric state.
func (v *FloatValue) Value() float32 {
	return v.value
}

// SetValue overwrites the numeric state.
func (v *FloatValue) SetValue(value float32) {
	v.value = value
}

// IncrementFloat raises a FloatValue by one per application.
type IncrementFloat struct{}

// Apply adds 1.0 to v.
func (IncrementFloat) Apply(v *FloatValue) {
	v.SetValue(v.Value() + 1)
}

// DecrementFloat lowers a FloatValue by one per application.
type DecrementFloat struct{}

// Apply subtracts 1.0 from v.
func (DecrementFloat) Apply(v *FloatValue) {
	v.SetValue(v.Value() - 1)
}
