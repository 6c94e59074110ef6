package closure

// IntValue is a mutable int32 cell dispatching through a held func value.
type IntValue struct {
	strategy IntStrategy
	value    int32
}

// NewIntValue creates an IntValue holding value with strategy bound.
func NewIntValue(value int32, strategy IntStrategy) *IntValue {
	return &IntValue{
		strategy: strategy,
		value:    value,
	}
}

// SetStrategy replaces the bound callable. The previous callable is no
// longer referenced. Takes effect on the next Operation call; the current
// value is untouched.
func (v *IntValue) SetStrategy(strategy IntStrategy) {
	v.strategy = strategy
}

// Operation invokes the bound callable with the value.
func (v *IntValue) Operation() {
	v.strategy(v)
}

// Value returns the current numeric state.
func (v *IntValue) Value() int32 {
	return v.value
}

// SetValue overwrites the numeric state.
func (v *IntValue) SetValue(value int32) {
	v.value = value
}

// IncrementInt is the stateless-callable strategy form; bind its Apply
// method value.
type IncrementInt struct{}

// Apply adds one to v.
func (IncrementInt) Apply(v *IntValue) {
	v.SetValue(v.Value() + 1)
}

// DecrementIntStrategy returns the closure-literal strategy form: a
// captureless func subtracting one per call.
func DecrementIntStrategy() IntStrategy {
	return func(v *IntValue) {
		v.SetValue(v.Value() - 1)
	}
}
