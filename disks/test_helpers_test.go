package disks_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvdisks/disks"
	"github.com/stretchr/testify/require"
)

// requireViolation fails the test unless fn panics with an error that
// matches both ErrContractViolation and kind.
func requireViolation(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract-violation panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(err, disks.ErrContractViolation), "want ErrContractViolation, got %v", err)
		require.True(t, errors.Is(err, kind), "want %v, got %v", kind, err)
	}()
	fn()
}

// triangular returns n(n+1)/2, the inversion count of the canonical row.
func triangular(n int) int {
	return n * (n + 1) / 2
}
