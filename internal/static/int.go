package static

// IntValue is a mutable int32 cell whose strategy S is fixed at compile
// time. There is no SetStrategy: changing behavior means instantiating a
// different type.
type IntValue[S IntStrategy] struct {
	strategy S
	value    int32
}

// NewIntValue creates an IntValue holding value. The strategy instance is
// the zero value of S.
func NewIntValue[S IntStrategy](value int32) *IntValue[S] {
	return &IntValue[S]{value: value}
}

// Operation applies the compile-time strategy. S is concrete at every call
// site, so the call is direct and inlinable.
func (v *IntValue[S]) Operation() {
	v.strategy.Apply(&v.value)
}

// Value returns the current numeric state.
func (v *IntValue[S]) Value() int32 {
	return v.value
}

// SetValue overwrites the numeric state.
func (v *IntValue[S]) SetValue(value int32) {
	v.value = value
}

// IncrementInt raises an int cell by one per application.
type IncrementInt struct{}

// Apply adds one to the cell.
func (IncrementInt) Apply(v *int32) {
	*v++
}

// DecrementInt lowers an int cell by one per application.
type DecrementInt struct{}

// Apply subtracts one from the cell.
func (DecrementInt) Apply(v *int32) {
	*v--
}
