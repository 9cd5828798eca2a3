package quant

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/quant/dim"
)

// TestQuantitySize verifies a quantity adds no storage on top of its
// float64 magnitude.
func TestQuantitySize(t *testing.T) {
	require := require.New(t)

	require.Equal(unsafe.Sizeof(float64(0)), unsafe.Sizeof(Length{}))
	require.Equal(unsafe.Sizeof(float64(0)), unsafe.Sizeof(Dimensionless{}))
	require.Equal(unsafe.Sizeof(float64(0)), unsafe.Sizeof(Force{}))
	require.Equal(unsafe.Sizeof(float64(0)), unsafe.Sizeof(Power{}))
}

// TestArithmetic verifies same-dimension add, sub, assign and negate forms
func TestArithmetic(t *testing.T) {
	require := require.New(t)

	dimensionless := NewDimensionless(1.0)
	require.Equal(NewDimensionless(2.0), dimensionless.Add(dimensionless))
	require.Equal(NewDimensionless(0.0), dimensionless.Sub(dimensionless))

	acc := NewDimensionless(0.0)
	acc.AddAssign(NewDimensionless(1.0))
	require.Equal(NewDimensionless(1.0), acc)

	acc = NewDimensionless(0.0)
	acc.SubAssign(NewDimensionless(1.0))
	require.Equal(NewDimensionless(-1.0), acc)

	require.Equal(NewDimensionless(-1.0), NewDimensionless(1.0).Neg())
}

// TestAssignMatchesNonAssign verifies the in-place operators agree with
// their value-returning counterparts on a derived dimension.
func TestAssignMatchesNonAssign(t *testing.T) {
	require := require.New(t)

	a := NewForce(3.5)
	b := NewForce(1.25)

	sum := a
	sum.AddAssign(b)
	require.Equal(a.Add(b), sum)

	diff := a
	diff.SubAssign(b)
	require.Equal(a.Sub(b), diff)
}

// TestFormatting verifies the exact unit rendering layout
func TestFormatting(t *testing.T) {
	require := require.New(t)

	require.Equal("1.0 m^1 kg^0 s^0", NewLength(1.0).FormatUnits())
	require.Equal("2.5 m^1 kg^0 s^-1", NewVelocity(2.5).FormatUnits())
	require.Equal("-4.2 m^-1 kg^1 s^-2", NewPressure(-4.2).FormatUnits())
	require.Equal("0.0 m^0 kg^0 s^0", NewDimensionless(0.0).FormatUnits())

	// String is the Stringer form of FormatUnits
	require.Equal(NewEnergy(9.0).FormatUnits(), NewEnergy(9.0).String())
}

// TestDimAccessor verifies quantities report their canonical descriptor
func TestDimAccessor(t *testing.T) {
	require := require.New(t)

	require.Equal(dim.Dimensionless, NewDimensionless(1.0).Dim())
	require.Equal(dim.Length, NewLength(1.0).Dim())
	require.Equal(dim.Force, NewForce(1.0).Dim())
	require.Equal(dim.Power, NewPower(1.0).Dim())
}

func TestFloat(t *testing.T) {
	require.Equal(t, 42.5, NewMass(42.5).Float())
}

// TestScale verifies dimensionless scaling leaves the dimension alone
func TestScale(t *testing.T) {
	require := require.New(t)

	require.Equal(NewLength(6.0), NewLength(2.0).Scale(3.0))
	require.Equal(NewLength(2.0).MulDimensionless(NewDimensionless(3.0)), NewLength(2.0).Scale(3.0))
}

func TestDivisionIdentity(t *testing.T) {
	length := NewLength(1.0)
	require.Equal(t, NewDimensionless(1.0), length.DivLength(length))
}

func TestArea(t *testing.T) {
	length := NewLength(1.0)
	require.Equal(t, NewArea(1.0), length.MulLength(length))
}

func TestVolume(t *testing.T) {
	length := NewLength(1.0)
	require.Equal(t, NewVolume(1.0), length.MulLength(length).MulLength(length))
}

func TestVelocity(t *testing.T) {
	length := NewLength(1.0)
	time := NewTime(1.0)
	require.Equal(t, NewVelocity(1.0), length.DivTime(time))
}

func TestAcceleration(t *testing.T) {
	require := require.New(t)

	length := NewLength(1.0)
	time := NewTime(1.0)
	require.Equal(NewAcceleration(1.0), length.DivTime(time).DivTime(time))
	require.Equal(NewAcceleration(1.0), length.DivTimeSquared(time.MulTime(time)))
}

func TestForce(t *testing.T) {
	length := NewLength(1.0)
	mass := NewMass(1.0)
	time := NewTime(1.0)

	acceleration := length.DivTimeSquared(time.MulTime(time))
	require.Equal(t, NewForce(1.0), mass.MulAcceleration(acceleration))
}

func TestFrequency(t *testing.T) {
	require := require.New(t)

	time := NewTime(1.0)
	require.Equal(NewFrequency(1.0), NewDimensionless(1.0).DivTime(time))

	// the reciprocal form: 1/time
	require.Equal(NewFrequency(1.0), time.Inv())
}

func TestPressure(t *testing.T) {
	require := require.New(t)

	dimensionless := NewDimensionless(1.0)
	length := NewLength(1.0)
	mass := NewMass(1.0)
	time := NewTime(1.0)

	pressure := dimensionless.DivLength(length).MulMass(mass).DivTimeSquared(time.MulTime(time))
	require.Equal(NewPressure(1.0), pressure)

	// stepwise through viscosity, dividing by time twice
	require.Equal(NewPressure(1.0), length.Inv().MulMass(mass).DivTime(time).DivTime(time))
}

func TestEnergy(t *testing.T) {
	length := NewLength(1.0)
	mass := NewMass(1.0)
	time := NewTime(1.0)

	energy := length.MulLength(length).MulMass(mass).DivTimeSquared(time.MulTime(time))
	require.Equal(t, NewEnergy(1.0), energy)
}

func TestPower(t *testing.T) {
	length := NewLength(1.0)
	mass := NewMass(1.0)
	time := NewTime(1.0)

	energy := length.MulLength(length).MulMass(mass).DivTimeSquared(time.MulTime(time))
	require.Equal(t, NewPower(1.0), energy.DivTime(time))
}

func TestMomentum(t *testing.T) {
	require := require.New(t)

	mass := NewMass(2.0)
	velocity := NewVelocity(3.0)

	momentum := mass.MulVelocity(velocity)
	require.Equal(NewMomentum(6.0), momentum)

	// momentum per unit time is a force
	require.Equal(NewForce(3.0), momentum.DivTime(NewTime(2.0)))
}

// TestInvRoundTrip verifies the reciprocal pairs in the dimension table
func TestInvRoundTrip(t *testing.T) {
	require := require.New(t)

	require.Equal(NewWavenumber(0.5), NewLength(2.0).Inv())
	require.Equal(NewLength(2.0), NewLength(2.0).Inv().Inv())
	require.Equal(NewTime(4.0), NewFrequency(0.25).Inv())
}

// TestFloatSpecialValues verifies NaN and infinities pass through untouched
func TestFloatSpecialValues(t *testing.T) {
	require := require.New(t)

	nan := NewLength(math.NaN())
	require.True(math.IsNaN(nan.Add(NewLength(1.0)).Float()))
	require.True(math.IsNaN(nan.MulLength(NewLength(2.0)).Float()))

	// division by zero magnitude follows IEEE 754
	inf := NewLength(1.0).DivTime(NewTime(0.0))
	require.True(math.IsInf(inf.Float(), 1))
	require.True(math.IsInf(NewLength(-1.0).DivTime(NewTime(0.0)).Float(), -1))
	require.True(math.IsNaN(NewLength(0.0).DivTime(NewTime(0.0)).Float()))
}
