package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roark/covenant/internal/contract"
	"github.com/roark/covenant/internal/portfolio"
)

// ValidationReport summarizes validation of a portfolio path.
type ValidationReport struct {
	Portfolios int              `json:"portfolios"`
	Contracts  int              `json:"contracts"`
	MaxDepth   int              `json:"max_depth"`
	TotalNodes int              `json:"total_nodes"`
	Issues     []ContractIssues `json:"issues,omitempty"`
}

// ContractIssues lists invariant violations found in one contract.
type ContractIssues struct {
	Portfolio string   `json:"portfolio"`
	Name      string   `json:"name"`
	Issues    []string `json:"issues"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <portfolio-path>",
		Short: "Validate portfolio contracts",
		Long: `Load the portfolios at the given path and re-check every contract tree
against its construction invariants, reporting shape statistics and any
violations. Exits 1 when violations are found.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	portfolios, err := portfolio.LoadDir(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	report := ValidationReport{Portfolios: len(portfolios)}
	for _, p := range portfolios {
		for _, nc := range p.Contracts {
			report.Contracts++

			result := contract.Validate(nc.Term)
			if !result.Valid {
				report.Issues = append(report.Issues, ContractIssues{
					Portfolio: p.Name,
					Name:      nc.Name,
					Issues:    result.Issues,
				})
				continue
			}

			stats, err := contract.Measure(nc.Term)
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("measuring %s/%s", p.Name, nc.Name), err)
			}
			if stats.Depth > report.MaxDepth {
				report.MaxDepth = stats.Depth
			}
			report.TotalNodes += stats.Nodes
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		outputValidateText(formatter, report)
	}

	if len(report.Issues) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed for %d contract(s)", len(report.Issues)))
	}
	return nil
}

func outputValidateText(formatter *OutputFormatter, report ValidationReport) {
	if len(report.Issues) == 0 {
		fmt.Fprintf(formatter.Writer, "✓ Validated %d contract(s) in %d portfolio(s)\n",
			report.Contracts, report.Portfolios)
		fmt.Fprintf(formatter.Writer, "  max depth %d, %d node(s) total\n",
			report.MaxDepth, report.TotalNodes)
		return
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, ci := range report.Issues {
		fmt.Fprintf(formatter.Writer, "%s/%s:\n", ci.Portfolio, ci.Name)
		for _, issue := range ci.Issues {
			fmt.Fprintf(formatter.Writer, "  %s\n", issue)
		}
	}
}
