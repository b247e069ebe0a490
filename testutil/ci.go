package testutil

import (
	"os"
	"testing"
)

// EnvLongTests enables tests too slow for every run, such as the one
// million byte known-answer vector.
const EnvLongTests = "SHADIGEST_CI"

// SkipCI skips t unless EnvLongTests is set.
func SkipCI(t testing.TB) {
	t.Helper()
	if os.Getenv(EnvLongTests) == "" {
		t.Skipf("set %s to run", EnvLongTests)
	}
}
