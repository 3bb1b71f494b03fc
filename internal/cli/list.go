package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roark/covenant/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	DB string // contract book database path
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved contract renderings",
		Long:  "List every rendering saved in a contract book database, ordered by portfolio and name.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "contract book database path (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	book, err := store.Open(opts.DB)
	if err != nil {
		_ = formatter.Error("B001", err.Error(), opts.DB)
		return WrapExitError(ExitCommandError, "opening contract book", err)
	}
	defer book.Close()

	renderings, err := book.ListRenderings(context.Background())
	if err != nil {
		_ = formatter.Error("B002", err.Error(), nil)
		return WrapExitError(ExitCommandError, "listing renderings", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(renderings)
	}

	if len(renderings) == 0 {
		fmt.Fprintln(formatter.Writer, "contract book is empty")
		return nil
	}
	for _, r := range renderings {
		fmt.Fprintf(formatter.Writer, "%s  %s/%s: %s\n", r.ID, r.Portfolio, r.Name, r.Rendering)
	}
	return nil
}
