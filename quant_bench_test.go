package quant

import "testing"

// The *Raw benchmarks are the float64 baselines for the quantity
// benchmarks that follow them. Matching numbers back the zero-overhead
// claim: a quantity compiles down to the same arithmetic as a bare
// float64.

var (
	sinkFloat  float64
	sinkForce  Force
	sinkString string
)

func BenchmarkAddRaw(b *testing.B) {
	x, y := 1.5, 2.5
	for i := 0; i < b.N; i++ {
		sinkFloat = x + y
	}
}

func BenchmarkAddQuantity(b *testing.B) {
	x, y := NewForce(1.5), NewForce(2.5)
	for i := 0; i < b.N; i++ {
		sinkForce = x.Add(y)
	}
}

func BenchmarkMulRaw(b *testing.B) {
	x, y := 2.0, 9.81
	for i := 0; i < b.N; i++ {
		sinkFloat = x * y
	}
}

func BenchmarkMulQuantity(b *testing.B) {
	mass := NewMass(2.0)
	acceleration := NewAcceleration(9.81)
	for i := 0; i < b.N; i++ {
		sinkForce = mass.MulAcceleration(acceleration)
	}
}

func BenchmarkDerivedChain(b *testing.B) {
	length := NewLength(100.0)
	mass := NewMass(70.0)
	time := NewTime(9.58)
	for i := 0; i < b.N; i++ {
		sinkForce = mass.MulAcceleration(length.DivTime(time).DivTime(time))
	}
}

func BenchmarkFormatUnits(b *testing.B) {
	v := NewVelocity(10.4)
	for i := 0; i < b.N; i++ {
		sinkString = v.FormatUnits()
	}
}
