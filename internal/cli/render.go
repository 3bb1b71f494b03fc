package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roark/covenant/internal/contract"
	"github.com/roark/covenant/internal/portfolio"
	"github.com/roark/covenant/internal/render"
	"github.com/roark/covenant/internal/store"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Save string // path to a contract book database; empty means don't persist
}

// RenderedContract is one rendered contract in the command output.
type RenderedContract struct {
	Portfolio string `json:"portfolio"`
	Name      string `json:"name"`
	Rendering string `json:"rendering"`
	Depth     int    `json:"depth"`
	Nodes     int    `json:"nodes"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <portfolio-path>",
		Short: "Render portfolio contracts to canonical text",
		Long: `Render every contract in the given portfolio file or directory to its
canonical parenthesized prefix form.

With --save, renderings are also persisted to a contract book database.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Save, "save", "", "contract book database to save renderings to")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rendered, err := renderPath(formatter, path)
	if err != nil {
		return err
	}

	if opts.Save != "" {
		if err := saveRenderings(opts.Save, rendered); err != nil {
			_ = formatter.Error(portfolio.ErrCodeBuildFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "saving renderings", err)
		}
		formatter.VerboseLog("Saved %d rendering(s) to %s", len(rendered), opts.Save)
	}

	if formatter.Format == "json" {
		return formatter.Success(rendered)
	}

	for _, r := range rendered {
		fmt.Fprintf(formatter.Writer, "%s/%s: %s\n", r.Portfolio, r.Name, r.Rendering)
	}
	return nil
}

// renderPath loads the portfolios at path and renders every contract.
func renderPath(formatter *OutputFormatter, path string) ([]RenderedContract, error) {
	portfolios, err := portfolio.LoadDir(path)
	if err != nil {
		return nil, outputLoadError(formatter, err)
	}

	printer := render.NewPrinter()
	var rendered []RenderedContract
	for _, p := range portfolios {
		formatter.VerboseLog("Rendering portfolio %s (%d contract(s))", p.Name, len(p.Contracts))
		for _, nc := range p.Contracts {
			text, err := printer.Render(nc.Term)
			if err != nil {
				_ = formatter.Error(string(contract.ErrCodeInvalidTerm), err.Error(), nil)
				return nil, WrapExitError(ExitFailure, fmt.Sprintf("rendering %s/%s", p.Name, nc.Name), err)
			}
			stats, err := contract.Measure(nc.Term)
			if err != nil {
				return nil, WrapExitError(ExitFailure, fmt.Sprintf("measuring %s/%s", p.Name, nc.Name), err)
			}
			rendered = append(rendered, RenderedContract{
				Portfolio: p.Name,
				Name:      nc.Name,
				Rendering: text,
				Depth:     stats.Depth,
				Nodes:     stats.Nodes,
			})
		}
	}

	return rendered, nil
}

func saveRenderings(dbPath string, rendered []RenderedContract) error {
	book, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer book.Close()

	ctx := context.Background()
	for _, r := range rendered {
		if _, err := book.SaveRendering(ctx, store.Rendering{
			Portfolio: r.Portfolio,
			Name:      r.Name,
			Rendering: r.Rendering,
			Depth:     r.Depth,
			Nodes:     r.Nodes,
		}); err != nil {
			return err
		}
	}
	return nil
}

// outputLoadError reports a portfolio load failure and wraps it with the
// command-error exit code.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *portfolio.LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, loadErr.File)
		return WrapExitError(ExitCommandError, loadErr.Message, err)
	}
	_ = formatter.Error("P000", err.Error(), nil)
	return WrapExitError(ExitCommandError, "loading portfolios", err)
}
