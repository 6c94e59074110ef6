package combined_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/strategy-dispatch-benchmarks/internal/closure"
	"github.com/randomizedcoder/strategy-dispatch-benchmarks/internal/dynamic"
	"github.com/randomizedcoder/strategy-dispatch-benchmarks/internal/static"
)

// ============================================================================
// Cross-mechanism behavioral equivalence
// ============================================================================
//
// Dispatch mechanics must not leak into observable semantics: the same
// (initial value, strategy, operation count) scenario has to land on the
// same final value under all three packages.

type intScenario struct {
	name       string
	initial    int32
	increment  bool
	operations int
	want       int32
}

func TestMechanismsAgreeOnIntScenarios(t *testing.T) {
	scenarios := []intScenario{
		{"increment from zero", 0, true, 2, 2},
		{"decrement from zero", 0, false, 2, -2},
		{"increment from negative", -5, true, 7, 2},
		{"decrement across zero", 3, false, 5, -2},
		{"no operations", 42, true, 0, 42},
		{"long run", 0, true, 10_000, 10_000},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			require.Equal(t, sc.want, runDynamicInt(sc), "dynamic")
			require.Equal(t, sc.want, runStaticInt(sc), "static")
			require.Equal(t, sc.want, runClosureInt(sc), "closure")
		})
	}
}

func runDynamicInt(sc intScenario) int32 {
	var strategy dynamic.Strategy[dynamic.IntValue] = dynamic.DecrementInt{}
	if sc.increment {
		strategy = dynamic.IncrementInt{}
	}
	v := dynamic.NewIntValue(sc.initial, strategy)
	for i := 0; i < sc.operations; i++ {
		v.Operation()
	}
	return v.Value()
}

func runStaticInt(sc intScenario) int32 {
	if sc.increment {
		v := static.NewIntValue[static.IncrementInt](sc.initial)
		for i := 0; i < sc.operations; i++ {
			v.Operation()
		}
		return v.Value()
	}
	v := static.NewIntValue[static.DecrementInt](sc.initial)
	for i := 0; i < sc.operations; i++ {
		v.Operation()
	}
	return v.Value()
}

func runClosureInt(sc intScenario) int32 {
	strategy := closure.DecrementIntStrategy()
	if sc.increment {
		strategy = closure.IncrementInt{}.Apply
	}
	v := closure.NewIntValue(sc.initial, strategy)
	for i := 0; i < sc.operations; i++ {
		v.Operation()
	}
	return v.Value()
}

type floatScenario struct {
	name       string
	initial    float32
	increment  bool
	operations int
	want       float32
}

func TestMechanismsAgreeOnFloatScenarios(t *testing.T) {
	// All values here are exactly representable, so plain equality holds.
	scenarios := []floatScenario{
		{"increment from zero", 0, true, 2, 2},
		{"decrement from zero", 0, false, 2, -2},
		{"increment from half", 0.5, true, 2, 2.5},
		{"decrement across zero", 1, false, 3, -2},
		{"no operations", 8.25, false, 0, 8.25},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			require.Equal(t, sc.want, runDynamicFloat(sc), "dynamic")
			require.Equal(t, sc.want, runStaticFloat(sc), "static")
			require.Equal(t, sc.want, runClosureFloat(sc), "closure")
		})
	}
}

func runDynamicFloat(sc floatScenario) float32 {
	var strategy dynamic.Strategy[dynamic.FloatValue] = dynamic.DecrementFloat{}
	if sc.increment {
		strategy = dynamic.IncrementFloat{}
	}
	v := dynamic.NewFloatValue(sc.initial, strategy)
	for i := 0; i < sc.operations; i++ {
		v.Operation()
	}
	return v.Value()
}

func runStaticFloat(sc floatScenario) float32 {
	if sc.increment {
		v := static.NewFloatValue[static.IncrementFloat](sc.initial)
		for i := 0; i < sc.operations; i++ {
			v.Operation()
		}
		return v.Value()
	}
	v := static.NewFloatValue[static.DecrementFloat](sc.initial)
	for i := 0; i < sc.operations; i++ {
		v.Operation()
	}
	return v.Value()
}

func runClosureFloat(sc floatScenario) float32 {
	strategy := closure.DecrementFloatStrategy()
	if sc.increment {
		strategy = closure.IncrementFloat{}.Apply
	}
	v := closure.NewFloatValue(sc.initial, strategy)
	for i := 0; i < sc.operations; i++ {
		v.Operation()
	}
	return v.Value()
}

// TestRebindAgreesAcrossSwappableMechanisms runs the same rebind sequence
// through the two mechanisms that offer replacement. The static package has
// no replacement operation; that gap is the designed contrast, not an
// omission.
func TestRebindAgreesAcrossSwappableMechanisms(t *testing.T) {
	dyn := dynamic.NewIntValue(0, dynamic.IncrementInt{})
	clo := closure.NewIntValue(0, closure.IncrementInt{}.Apply)

	for i := 0; i < 2; i++ {
		dyn.Operation()
		clo.Operation()
	}
	require.Equal(t, int32(2), dyn.Value())
	require.Equal(t, dyn.Value(), clo.Value())

	dyn.SetStrategy(dynamic.DecrementInt{})
	clo.SetStrategy(closure.DecrementIntStrategy())
	require.Equal(t, int32(2), dyn.Value())
	require.Equal(t, int32(2), clo.Value())

	for i := 0; i < 2; i++ {
		dyn.Operation()
		clo.Operation()
	}
	require.Equal(t, int32(0), dyn.Value())
	require.Equal(t, dyn.Value(), clo.Value())
}
