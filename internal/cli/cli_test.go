package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given args and returns
// captured stdout, stderr, and the execution error.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeRatesBook creates a portfolio directory with one CUE file holding a
// bond and a put, and returns the directory path.
func writeRatesBook(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	content := `
portfolio: {
	name: "rates-book"
	contracts: [{
		name: "bond-10y"
		zeroCouponBond: {
			maturity: "2030-07-14 00:00:00"
			notional: "1000000"
			currency: "EUR"
		}
	}, {
		name: "put-abc"
		europeanPut: {
			ticker:   "ABC Eqty"
			currency: "USD"
			maturity: "2030-07-14 00:00:00"
			strike:   "123.45"
		}
	}]
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rates.cue"), []byte(content), 0644))
	return dir
}

func writeCUE(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func countLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
