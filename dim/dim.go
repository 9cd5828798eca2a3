// Package dim provides the dimension descriptor algebra that underpins the
// quant package.
//
// A dimension descriptor is a vector of signed integer exponents over the
// three base dimensions length, mass and time. Every physical quantity maps
// to exactly one descriptor: velocity is length¹·time⁻¹, force is
// length¹·mass¹·time⁻², and so on. The descriptor algebra is three
// componentwise operations:
//
//   - Add: the dimension of a product (exponents sum)
//   - Sub: the dimension of a quotient (exponents subtract)
//   - Neg: the dimension of a reciprocal (exponents flip sign)
//
// All operations are total and pure. There are no failure modes: every
// integer input is valid.
//
// # Role in quant
//
// The quant package never evaluates this algebra while a consumer's program
// runs. It is evaluated by scripts/genquantity when quantity_gen.go is
// generated, which is how result dimensions are fixed before any consumer
// code compiles. At runtime a descriptor surfaces in exactly one place:
// rendering a quantity's unit suffix via String.
//
// # Thread Safety
//
// Dim is an immutable value type. The canonical descriptors declared in
// this package are written once at package init and must be treated as
// constants.
package dim

import "fmt"

// Dim is a dimension descriptor: one signed exponent per base dimension.
// The zero value is the dimensionless descriptor.
//
// Dim is comparable; two descriptors are equal iff every exponent is equal.
type Dim struct {
	Length int
	Mass   int
	Time   int
}

// Canonical descriptors for the named dimensions known to the quant
// package. The generator derives the method set of every quantity type
// from these values.
var (
	Dimensionless = Dim{}
	Length        = Dim{Length: 1}
	Mass          = Dim{Mass: 1}
	Time          = Dim{Time: 1}

	Area            = Dim{Length: 2}
	Volume          = Dim{Length: 3}
	Velocity        = Dim{Length: 1, Time: -1}
	Acceleration    = Dim{Length: 1, Time: -2}
	Force           = Dim{Length: 1, Mass: 1, Time: -2}
	Frequency       = Dim{Time: -1}
	Pressure        = Dim{Length: -1, Mass: 1, Time: -2}
	Energy          = Dim{Length: 2, Mass: 1, Time: -2}
	Power           = Dim{Length: 2, Mass: 1, Time: -3}
	Wavenumber      = Dim{Length: -1}
	TimeSquared     = Dim{Time: 2}
	Momentum        = Dim{Length: 1, Mass: 1, Time: -1}
	MomentOfInertia = Dim{Length: 2, Mass: 1}
	AngularMomentum = Dim{Length: 2, Mass: 1, Time: -1}
	LinearDensity   = Dim{Length: -1, Mass: 1}
	SurfaceDensity  = Dim{Length: -2, Mass: 1}
	SurfaceTension  = Dim{Mass: 1, Time: -2}
	Viscosity       = Dim{Length: -1, Mass: 1, Time: -1}
	Density         = Dim{Length: -3, Mass: 1}
	VolumetricFlow  = Dim{Length: 3, Time: -1}
	SpecificEnergy  = Dim{Length: 2, Time: -2}
)

// Add returns the componentwise sum of d and o: the dimension of a product
// of two quantities.
func (d Dim) Add(o Dim) Dim {
	return Dim{
		Length: d.Length + o.Length,
		Mass:   d.Mass + o.Mass,
		Time:   d.Time + o.Time,
	}
}

// Sub returns the componentwise difference of d and o: the dimension of a
// quotient of two quantities.
func (d Dim) Sub(o Dim) Dim {
	return Dim{
		Length: d.Length - o.Length,
		Mass:   d.Mass - o.Mass,
		Time:   d.Time - o.Time,
	}
}

// Neg returns the componentwise negation of d: the dimension of the
// reciprocal of a quantity.
func (d Dim) Neg() Dim {
	return Dim{
		Length: -d.Length,
		Mass:   -d.Mass,
		Time:   -d.Time,
	}
}

// Equal reports whether d and o have equal exponents in every component.
// It is equivalent to d == o; the method form exists for readability at
// call sites that chain algebra operations.
func (d Dim) Equal(o Dim) bool {
	return d == o
}

// String renders the descriptor as exponents over the SI base unit symbols,
// e.g. "m^1 kg^0 s^-1" for velocity. This layout is the unit suffix of
// quant's FormatUnits output.
func (d Dim) String() string {
	return fmt.Sprintf("m^%d kg^%d s^%d", d.Length, d.Mass, d.Time)
}
