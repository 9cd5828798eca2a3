// Package quant provides dimensional analysis for physical quantities with
// zero runtime cost.
//
// Every quantity type in this package wraps exactly one float64 magnitude.
// The physical dimension (its exponents over length, mass and time) lives in
// the Go type, not in the value: a Length and a Mass are distinct types, so
// adding one to the other is a compile error, and the compiled
// representation of either is bit-identical to a plain float64 — no tag, no
// branch, no allocation.
//
// # Core Features
//
//   - Dimensional mismatch is a build failure, never a runtime error
//   - Quantities are the same size as float64 (verified by tests)
//   - Multiplication and division compose dimensions through their result
//     types: Length × Length is an Area, Length ÷ Time is a Velocity
//   - One fixed unit per base dimension (metre, kilogram, second)
//   - NaN and ±Inf propagate per IEEE 754; nothing is validated or trapped
//
// # Basic Usage
//
//	import "github.com/arloliu/quant"
//
//	distance := quant.NewLength(120.0)
//	elapsed := quant.NewTime(8.0)
//
//	speed := distance.DivTime(elapsed)          // quant.Velocity
//	accel := speed.DivTime(elapsed)             // quant.Acceleration
//	force := quant.NewMass(70.0).MulAcceleration(accel) // quant.Force
//
//	fmt.Println(force.FormatUnits())            // "131.2 m^1 kg^1 s^-2"
//
//	// speed.Add(distance) does not compile: Velocity.Add takes a Velocity.
//
// Same-dimension arithmetic uses Add, Sub, Neg and the in-place AddAssign
// and SubAssign. Cross-dimension arithmetic uses the Mul and Div method
// families, whose names carry the right-hand type (MulMass, DivTime, ...)
// and whose result types carry the combined dimension. Inv returns the
// reciprocal for the scalar-over-quantity form: 1/Time is
// NewTime(t).Inv(), a Frequency.
//
// # Package Structure
//
// The quantity types and their operator methods live in quantity_gen.go,
// generated by scripts/genquantity from the named-dimension table. The
// dimension descriptor algebra that drives generation is in the dim
// subpackage; at runtime it surfaces only through Dim accessors and unit
// formatting. To add a named dimension, add a table row to the generator
// and run go generate.
package quant

import (
	"fmt"

	"github.com/arloliu/quant/dim"
)

//go:generate go run ./scripts/genquantity -out quantity_gen.go

// formatUnits renders a magnitude to one decimal place followed by the
// dimension's unit exponents, e.g. "1.0 m^1 kg^0 s^0".
func formatUnits(mag float64, d dim.Dim) string {
	return fmt.Sprintf("%.1f %s", mag, d)
}
