// This program must not compile: it adds a Length to a Mass. The
// mismatch test builds it and requires the compiler to reject it.
package main

import (
	"fmt"

	"github.com/arloliu/quant"
)

func main() {
	length := quant.NewLength(1.0)
	mass := quant.NewMass(1.0)
	fmt.Println(length.Add(mass))
}
