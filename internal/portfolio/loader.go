// Package portfolio loads declarative contract definitions from CUE files
// and builds validated contract terms from them.
//
// A portfolio file names a set of contracts, each defined either by one of
// the derived combinator templates (zeroCouponBond, european, europeanPut)
// or by a structural term mirroring the primitive variants:
//
//	portfolio: {
//		name: "rates-book"
//		contracts: [{
//			name: "bond-10y"
//			zeroCouponBond: {
//				maturity: "2030-07-14 00:00:00"
//				notional: "1000000"
//				currency: "EUR"
//			}
//		}, {
//			name: "gbp-short"
//			term: give: one: currency: "GBP"
//		}]
//	}
//
// Decimal fields are strings so amounts survive without float rounding;
// horizons use contract.HorizonLayout and are interpreted as UTC.
//
// The loader is a collaborator of the core algebra, not part of it: the
// printer's textual grammar has no reader here, and the algebra itself
// never parses anything.
package portfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roark/covenant/internal/contract"
)

// Error code constants for portfolio loading.
const (
	ErrCodeNotFound    = "P001" // Path not found
	ErrCodeNoFiles     = "P002" // No CUE files found
	ErrCodeBuildFailed = "P003" // CUE compile/build failed
	ErrCodeDecodeError = "P004" // CUE value does not match the portfolio schema
	ErrCodeBadTerm     = "P005" // Definition decoded but produced no valid term
)

// LoadError represents an error that occurred while loading a portfolio.
type LoadError struct {
	Code    string
	File    string
	Message string
}

func (e *LoadError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Portfolio is a named set of contract terms loaded from a definition file.
type Portfolio struct {
	Name      string
	Contracts []NamedContract
}

// NamedContract pairs a contract term with its name in the portfolio.
type NamedContract struct {
	Name string
	Term contract.Contract
}

// LoadFile loads a single CUE portfolio file.
func LoadFile(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, File: path, Message: fmt.Sprintf("reading file: %v", err)}
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, File: path, Message: fmt.Sprintf("compiling CUE: %v", err)}
	}

	portfolioVal := value.LookupPath(cue.ParsePath("portfolio"))
	if !portfolioVal.Exists() {
		return nil, &LoadError{Code: ErrCodeDecodeError, File: path, Message: "no portfolio field found"}
	}

	var spec portfolioSpec
	if err := portfolioVal.Decode(&spec); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeError, File: path, Message: fmt.Sprintf("decoding portfolio: %v", err)}
	}
	if spec.Name == "" {
		return nil, &LoadError{Code: ErrCodeDecodeError, File: path, Message: "portfolio has no name"}
	}
	if len(spec.Contracts) == 0 {
		return nil, &LoadError{Code: ErrCodeBadTerm, File: path, Message: fmt.Sprintf("portfolio %q defines no contracts", spec.Name)}
	}

	p := &Portfolio{Name: spec.Name}
	for _, entry := range spec.Contracts {
		term, err := buildEntry(entry)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeBadTerm, File: path, Message: err.Error()}
		}
		p.Contracts = append(p.Contracts, NamedContract{Name: entry.Name, Term: term})
	}

	return p, nil
}

// LoadDir loads every .cue portfolio file under dir (recursively) and
// returns the portfolios sorted by name for deterministic output.
func LoadDir(dir string) ([]*Portfolio, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, File: dir, Message: fmt.Sprintf("accessing directory: %v", err)}
	}
	if !info.IsDir() {
		// A single file path is accepted for convenience.
		p, err := LoadFile(dir)
		if err != nil {
			return nil, err
		}
		return []*Portfolio{p}, nil
	}

	files, err := FindCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, File: dir, Message: fmt.Sprintf("scanning directory: %v", err)}
	}
	if len(files) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, File: dir, Message: "no CUE files found"}
	}

	var portfolios []*Portfolio
	for _, file := range files {
		p, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}

	sort.Slice(portfolios, func(i, j int) bool {
		return portfolios[i].Name < portfolios[j].Name
	})
	return portfolios, nil
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
