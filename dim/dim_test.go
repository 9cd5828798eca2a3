package dim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	require := require.New(t)

	require.Equal(Area, Length.Add(Length))
	require.Equal(Volume, Area.Add(Length))
	require.Equal(Force, Mass.Add(Acceleration))
	require.Equal(Energy, MomentOfInertia.Add(Frequency).Add(Frequency))

	// Dimensionless is the additive identity
	for _, d := range []Dim{Dimensionless, Length, Mass, Time, Pressure, Power} {
		require.Equal(d, d.Add(Dimensionless))
		require.Equal(d, Dimensionless.Add(d))
	}
}

func TestAddCommutative(t *testing.T) {
	all := []Dim{Dimensionless, Length, Mass, Time, Velocity, Force, Energy, Pressure}
	for _, a := range all {
		for _, b := range all {
			require.Equal(t, a.Add(b), b.Add(a))
		}
	}
}

func TestSub(t *testing.T) {
	require := require.New(t)

	require.Equal(Velocity, Length.Sub(Time))
	require.Equal(Acceleration, Velocity.Sub(Time))
	require.Equal(Dimensionless, Length.Sub(Length))
	require.Equal(Power, Energy.Sub(Time))
	require.Equal(Pressure, Force.Sub(Area))

	// Sub is Add of the negation
	all := []Dim{Dimensionless, Length, Mass, Time, Velocity, Force, Energy}
	for _, a := range all {
		for _, b := range all {
			require.Equal(a.Sub(b), a.Add(b.Neg()))
		}
	}
}

func TestNeg(t *testing.T) {
	require := require.New(t)

	require.Equal(Frequency, Time.Neg())
	require.Equal(Time, Frequency.Neg())
	require.Equal(Wavenumber, Length.Neg())
	require.Equal(Dimensionless, Dimensionless.Neg())

	// Neg is its own inverse
	for _, d := range []Dim{Length, Mass, Time, Force, Pressure, Power} {
		require.Equal(d, d.Neg().Neg())
	}
}

func TestEqual(t *testing.T) {
	require := require.New(t)

	require.True(Velocity.Equal(Length.Sub(Time)))
	require.True(Dimensionless.Equal(Dim{}))
	require.False(Length.Equal(Mass))
	require.False(Energy.Equal(Power))

	// Equal agrees with ==
	require.True(Force.Equal(Dim{Length: 1, Mass: 1, Time: -2}))
	require.Equal(Force, Dim{Length: 1, Mass: 1, Time: -2})
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal("m^0 kg^0 s^0", Dimensionless.String())
	require.Equal("m^1 kg^0 s^0", Length.String())
	require.Equal("m^1 kg^0 s^-1", Velocity.String())
	require.Equal("m^-1 kg^1 s^-2", Pressure.String())
	require.Equal("m^2 kg^1 s^-3", Power.String())
}

func TestCanonicalDescriptors(t *testing.T) {
	require := require.New(t)

	// Derived descriptors decompose into base descriptors
	require.Equal(Area, Length.Add(Length))
	require.Equal(Volume, Length.Add(Length).Add(Length))
	require.Equal(Velocity, Length.Sub(Time))
	require.Equal(Acceleration, Length.Sub(Time).Sub(Time))
	require.Equal(Force, Mass.Add(Length).Sub(TimeSquared))
	require.Equal(Frequency, Dimensionless.Sub(Time))
	require.Equal(Pressure, Force.Sub(Area))
	require.Equal(Energy, Force.Add(Length))
	require.Equal(Power, Energy.Sub(Time))
	require.Equal(Momentum, Mass.Add(Velocity))
	require.Equal(AngularMomentum, MomentOfInertia.Sub(Time))
	require.Equal(Viscosity, Pressure.Add(Time))
	require.Equal(Density, Mass.Sub(Volume))
	require.Equal(VolumetricFlow, Volume.Sub(Time))
	require.Equal(SpecificEnergy, Energy.Sub(Mass))
	require.Equal(SurfaceTension, Force.Sub(Length))
	require.Equal(SurfaceDensity, Mass.Sub(Area))
	require.Equal(LinearDensity, Mass.Sub(Length))
	require.Equal(TimeSquared, Time.Add(Time))
	require.Equal(Wavenumber, Dimensionless.Sub(Length))
}
