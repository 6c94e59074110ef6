package static

// FloatValue is a mutable float32 cell whose strategy S is fixed at compile
// time. As with IntValue, there is no SetStrategy.
type FloatValue[S FloatStrategy] struct {
	strategy S
	value    float32
}

// NewFloatValue creates a FloatValue holding value. The strategy instance
// is the zero value of S.
func NewFloatValue[S FloatStrategy](value float32) *FloatValue[S] {
	return &FloatValue[S]{value: value}
}

// Operation applies the compile-time strategy. S is concrete at every call
// site, so the call is direct and inlinable.
func (v *FloatValue[S]) Operation() {
	v.strategy.Apply(&v.value)
}

// Value returns the current numeric state.
func (v *FloatValue[S]) Value() float32 {
	return v.value
}

// SetValue overwrites the numeric state.
func (v *FloatValue[S]) SetValue(value float32) {
	v.value = value
}

// IncrementFloat raises a float cell by one per application.
type IncrementFloat struct{}

// Apply adds 1.0 to the cell.
func (IncrementFloat) Apply(v *float32) {
	*v++
}

// DecrementFloat lowers a float cell by one per application.
type DecrementFloat struct{}

// Apply subtracts 1.0 from the cell.
func (DecrementFloat) Apply(v *float32) {
	*v--
}
