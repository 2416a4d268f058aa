// Package cli wires the command surface: flags where provided, interactive
// prompts where not.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"invoicesim/config"
	"invoicesim/internal/core"
)

func newRootCommand(logger core.Logger, cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "invoicesim",
		Short: "Simulate a network of businesses invoicing and paying each other",
		Long: `invoicesim builds a directed network of businesses, then steps through
simulated days: each day every business may issue invoices to its customers
and decides, per due invoice, whether to pay. Balance sheets, invoices and
payments are reported at the end of every day.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCommand(logger, cfg))
	return root
}

// Execute runs the CLI against the given context and configuration.
func Execute(ctx context.Context, logger core.Logger, cfg config.Config) error {
	return newRootCommand(logger, cfg).ExecuteContext(ctx)
}
