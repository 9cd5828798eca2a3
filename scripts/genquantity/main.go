// Package main generates the quantity types and operator methods of the
// quant package from the named-dimension table.
//
// For every table entry it emits a struct wrapping one float64 plus the
// same-dimension operations (Add, Sub, AddAssign, SubAssign, Neg, Scale).
// For every ordered pair of entries whose descriptor sum or difference is
// itself in the table it emits a Mul or Div method whose result type
// carries the combined dimension. Inv is emitted for entries whose negated
// descriptor is in the table. Dimension arithmetic therefore happens here,
// at generation time; the emitted code contains only float64 arithmetic.
//
// Usage:
//
//	go run ./scripts/genquantity -out quantity_gen.go
package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"

	"github.com/arloliu/quant/dim"
)

var outFlag = flag.String("out", "", "output file path (required)")

// entry is one row of the named-dimension table.
type entry struct {
	Name string
	Dim  dim.Dim
}

// table is the closed universe of named dimensions. Emission follows table
// order, so regeneration is deterministic. To add a dimension, add a row
// here (and its canonical descriptor in the dim package) and regenerate.
var table = []entry{
	{"Dimensionless", dim.Dimensionless},
	{"Length", dim.Length},
	{"Mass", dim.Mass},
	{"Time", dim.Time},
	{"Area", dim.Area},
	{"Volume", dim.Volume},
	{"Velocity", dim.Velocity},
	{"Acceleration", dim.Acceleration},
	{"Force", dim.Force},
	{"Frequency", dim.Frequency},
	{"Pressure", dim.Pressure},
	{"Energy", dim.Energy},
	{"Power", dim.Power},
	{"Wavenumber", dim.Wavenumber},
	{"TimeSquared", dim.TimeSquared},
	{"Momentum", dim.Momentum},
	{"MomentOfInertia", dim.MomentOfInertia},
	{"AngularMomentum", dim.AngularMomentum},
	{"LinearDensity", dim.LinearDensity},
	{"SurfaceDensity", dim.SurfaceDensity},
	{"SurfaceTension", dim.SurfaceTension},
	{"Viscosity", dim.Viscosity},
	{"Density", dim.Density},
	{"VolumetricFlow", dim.VolumetricFlow},
	{"SpecificEnergy", dim.SpecificEnergy},
}

func main() {
	flag.Parse()

	if *outFlag == "" {
		log.Fatal("--out flag is required")
	}

	byDim := make(map[dim.Dim]string, len(table))
	for _, e := range table {
		if prev, ok := byDim[e.Dim]; ok {
			log.Fatalf("duplicate descriptor %v for %s and %s", e.Dim, prev, e.Name)
		}
		byDim[e.Dim] = e.Name
	}

	code, methods := generate(byDim)
	log.Printf("Generated %d types, %d operator methods", len(table), methods)

	formatted, err := format.Source([]byte(code))
	if err != nil {
		log.Fatalf("failed to format generated code: %v", err)
	}

	if err := os.WriteFile(*outFlag, formatted, 0o600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("Generated %s", *outFlag)
}

func generate(byDim map[dim.Dim]string) (string, int) {
	var b strings.Builder
	methods := 0

	b.WriteString("// Code generated by scripts/genquantity. DO NOT EDIT.\n\n")
	b.WriteString("package quant\n\n")
	b.WriteString("import \"github.com/arloliu/quant/dim\"\n\n")

	for _, e := range table {
		writeType(&b, e)

		if inv, ok := byDim[e.Dim.Neg()]; ok {
			fmt.Fprintf(&b, "// Inv returns the reciprocal 1/q, %s %s.\n", article(inv), inv)
			fmt.Fprintf(&b, "func (q %s) Inv() %s {\n\treturn %s{mag: 1 / q.mag}\n}\n\n", e.Name, inv, inv)
			methods++
		}

		for _, rhs := range table {
			if prod, ok := byDim[e.Dim.Add(rhs.Dim)]; ok {
				fmt.Fprintf(&b, "// Mul%s multiplies q by %s %s, producing %s %s.\n",
					rhs.Name, article(rhs.Name), rhs.Name, article(prod), prod)
				fmt.Fprintf(&b, "func (q %s) Mul%s(o %s) %s {\n\treturn %s{mag: q.mag * o.mag}\n}\n\n",
					e.Name, rhs.Name, rhs.Name, prod, prod)
				methods++
			}
		}

		for _, rhs := range table {
			if quot, ok := byDim[e.Dim.Sub(rhs.Dim)]; ok {
				fmt.Fprintf(&b, "// Div%s divides q by %s %s, producing %s %s.\n",
					rhs.Name, article(rhs.Name), rhs.Name, article(quot), quot)
				fmt.Fprintf(&b, "func (q %s) Div%s(o %s) %s {\n\treturn %s{mag: q.mag / o.mag}\n}\n\n",
					e.Name, rhs.Name, rhs.Name, quot, quot)
				methods++
			}
		}
	}

	return b.String(), methods
}

// writeType emits the struct and its dimension-preserving methods.
func writeType(b *strings.Builder, e entry) {
	n := e.Name

	fmt.Fprintf(b, "// %s is a quantity with dimension %s.\n", n, e.Dim)
	fmt.Fprintf(b, "type %s struct {\n\tmag float64\n}\n\n", n)

	fmt.Fprintf(b, "// New%s returns %s %s with magnitude v.\n", n, article(n), n)
	fmt.Fprintf(b, "func New%s(v float64) %s {\n\treturn %s{mag: v}\n}\n\n", n, n, n)

	fmt.Fprintf(b, "// Float returns the magnitude of q.\n")
	fmt.Fprintf(b, "func (q %s) Float() float64 {\n\treturn q.mag\n}\n\n", n)

	fmt.Fprintf(b, "// Dim returns the dimension descriptor of %s.\n", n)
	fmt.Fprintf(b, "func (q %s) Dim() dim.Dim {\n\treturn dim.%s\n}\n\n", n, n)

	fmt.Fprintf(b, "// FormatUnits renders q to one decimal place followed by its unit exponents.\n")
	fmt.Fprintf(b, "func (q %s) FormatUnits() string {\n\treturn formatUnits(q.mag, dim.%s)\n}\n\n", n, n)

	fmt.Fprintf(b, "// String implements fmt.Stringer; it is equivalent to FormatUnits.\n")
	fmt.Fprintf(b, "func (q %s) String() string {\n\treturn q.FormatUnits()\n}\n\n", n)

	fmt.Fprintf(b, "// Add returns the sum of q and o.\n")
	fmt.Fprintf(b, "func (q %s) Add(o %s) %s {\n\treturn %s{mag: q.mag + o.mag}\n}\n\n", n, n, n, n)

	fmt.Fprintf(b, "// Sub returns the difference of q and o.\n")
	fmt.Fprintf(b, "func (q %s) Sub(o %s) %s {\n\treturn %s{mag: q.mag - o.mag}\n}\n\n", n, n, n, n)

	fmt.Fprintf(b, "// AddAssign adds o to q in place.\n")
	fmt.Fprintf(b, "func (q *%s) AddAssign(o %s) {\n\tq.mag += o.mag\n}\n\n", n, n)

	fmt.Fprintf(b, "// SubAssign subtracts o from q in place.\n")
	fmt.Fprintf(b, "func (q *%s) SubAssign(o %s) {\n\tq.mag -= o.mag\n}\n\n", n, n)

	fmt.Fprintf(b, "// Neg returns q with the magnitude sign flipped.\n")
	fmt.Fprintf(b, "func (q %s) Neg() %s {\n\treturn %s{mag: -q.mag}\n}\n\n", n, n, n)

	fmt.Fprintf(b, "// Scale returns q scaled by the dimensionless factor k.\n")
	fmt.Fprintf(b, "func (q %s) Scale(k float64) %s {\n\treturn %s{mag: q.mag * k}\n}\n\n", n, n, n)
}

// article picks the indefinite article for a type name.
func article(name string) string {
	switch name[0] {
	case 'A', 'E', 'I', 'O', 'U':
		return "an"
	default:
		return "a"
	}
}
