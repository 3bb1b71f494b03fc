// Package harness provides a conformance harness for the textual rendering
// of contracts.
//
// Scenarios are YAML files naming portfolio definitions and the renderings
// they are expected to produce. A scenario run loads the portfolios, renders
// every contract, and checks the inline expectations; golden.go additionally
// snapshots the full rendering table against a golden file.
package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roark/covenant/internal/contract"
	"github.com/roark/covenant/internal/portfolio"
	"github.com/roark/covenant/internal/render"
)

// Scenario defines a rendering conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Portfolios lists paths to CUE portfolio files, relative to the
	// scenario file location.
	Portfolios []string `yaml:"portfolios"`

	// Expect lists inline expected renderings, checked during Run.
	// Contracts not named here are still rendered (and still appear in the
	// golden snapshot).
	Expect []Expectation `yaml:"expect,omitempty"`

	// baseDir is the directory of the scenario file, used to resolve
	// portfolio paths. Set by LoadScenario.
	baseDir string
}

// Expectation pins the rendering of one contract.
type Expectation struct {
	// Contract is "portfolio/name".
	Contract string `yaml:"contract"`

	// Rendering is the exact expected canonical text.
	Rendering string `yaml:"rendering"`
}

// RenderedContract is one row of a scenario result.
type RenderedContract struct {
	Portfolio string
	Name      string
	Rendering string
	Depth     int
	Nodes     int
}

// Result holds the renderings produced by a scenario run.
type Result struct {
	Renderings []RenderedContract
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s has no name", path)
	}
	if len(s.Portfolios) == 0 {
		return nil, fmt.Errorf("scenario %s lists no portfolios", path)
	}

	s.baseDir = filepath.Dir(path)
	return &s, nil
}

// Run loads the scenario's portfolios, renders every contract, and checks
// the inline expectations. Rendering order follows portfolio order within
// the scenario, contract order within each portfolio.
func Run(s *Scenario) (*Result, error) {
	printer := render.NewPrinter()
	result := &Result{}

	for _, rel := range s.Portfolios {
		path := rel
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.baseDir, rel)
		}
		p, err := portfolio.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}

		for _, nc := range p.Contracts {
			text, err := printer.Render(nc.Term)
			if err != nil {
				return nil, fmt.Errorf("scenario %s: rendering %s/%s: %w", s.Name, p.Name, nc.Name, err)
			}
			stats, err := contract.Measure(nc.Term)
			if err != nil {
				return nil, fmt.Errorf("scenario %s: measuring %s/%s: %w", s.Name, p.Name, nc.Name, err)
			}
			result.Renderings = append(result.Renderings, RenderedContract{
				Portfolio: p.Name,
				Name:      nc.Name,
				Rendering: text,
				Depth:     stats.Depth,
				Nodes:     stats.Nodes,
			})
		}
	}

	if err := checkExpectations(s, result); err != nil {
		return nil, err
	}

	return result, nil
}

// checkExpectations verifies every inline expectation against the result.
func checkExpectations(s *Scenario, result *Result) error {
	rendered := make(map[string]string, len(result.Renderings))
	for _, r := range result.Renderings {
		rendered[r.Portfolio+"/"+r.Name] = r.Rendering
	}

	for _, exp := range s.Expect {
		got, ok := rendered[exp.Contract]
		if !ok {
			return fmt.Errorf("scenario %s: expectation references unknown contract %q", s.Name, exp.Contract)
		}
		if got != exp.Rendering {
			return fmt.Errorf("scenario %s: contract %q rendered\n  got:  %s\n  want: %s",
				s.Name, exp.Contract, got, exp.Rendering)
		}
	}

	return nil
}
