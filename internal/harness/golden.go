package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares the rendering table against
// a golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for expected renderings; the table
// format is one line per contract so diffs stay readable.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(formatResult(result)))

	return nil
}

// formatResult serializes a result as the golden table: one line per
// contract, deterministic because rendering is a pure function of the term
// and iteration follows definition order.
func formatResult(result *Result) string {
	var b strings.Builder
	for _, r := range result.Renderings {
		fmt.Fprintf(&b, "%s/%s depth=%d nodes=%d\n  %s\n", r.Portfolio, r.Name, r.Depth, r.Nodes, r.Rendering)
	}
	return b.String()
}
