package closure

// FloatValue is a mutable float32 cell dispatching through a held func
// value.
type FloatValue struct {
	strategy FloatStrategy
	value    float32
}

// NewFloatValue creates a FloatValue holding value with strategy bound.
func NewFloatValue(value float32, strategy FloatStrategy) *FloatValue {
	return &FloatValue{
		strategy: strategy,
		value:    value,
	}
}

// SetStrategy replaces the bound callable. The previous callable is no
// longer referenced. Takes effect on the next Operation call; the current
// value is untouched.
func (v *FloatValue) SetStrategy(strategy FloatStrategy) {
	v.strategy = strategy
}

// Operation invokes the bound callable with the value.
func (v *FloatValue) Operation() {
	v.strategy(v)
}

// Value returns the current numeric state.
func (v *FloatValue) Value() float32 {
	return v.value
}

// SetValue overwrites the numeric state.
func (v *FloatValue) SetValue(value float32) {
	v.value = value
}

// IncrementFloat is the stateless-callable strategy form; bind its Apply
// method value.
type IncrementFloat struct{}

// Apply adds 1.0 to v.
func (IncrementFloat) Apply(v *FloatValue) {
	v.SetValue(v.Value() + 1)
}

// DecrementFloatStrategy returns the closure-literal strategy form: a
// captureless func subtracting 1.0 per call.
func DecrementFloatStrategy() FloatStrategy {
	return func(v *FloatValue) {
		v.SetValue(v.Value() - 1)
	}
}
