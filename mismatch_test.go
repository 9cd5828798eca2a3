package quant

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDimensionMismatchDoesNotCompile verifies the single error taxonomy of
// this package: combining mismatched dimensions where equality is required
// is a build failure, never a runtime condition. The testdata program adds
// a Length to a Mass; the compiler must reject it.
func TestDimensionMismatchDoesNotCompile(t *testing.T) {
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not on PATH")
	}

	src := filepath.Join("testdata", "dimmismatch", "main.go")
	out, err := exec.Command(goBin, "build", "-o", os.DevNull, src).CombinedOutput()

	require.Error(t, err, "build of %s must fail, output:\n%s", src, out)
	require.Contains(t, string(out), "cannot use mass")
}
