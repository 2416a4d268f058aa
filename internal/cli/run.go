package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"invoicesim/config"
	"invoicesim/internal/catalog"
	"invoicesim/internal/core"
	"invoicesim/internal/report"
	"invoicesim/internal/sim"
	"invoicesim/internal/sqlite"
)

type runFlags struct {
	businesses   int
	profiles     []string
	days         int
	seed         int64
	dueDays      int
	profilesFile string
	ledgerPath   string
}

func newRunCommand(logger core.Logger, cfg config.Config) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a daily invoice and payment simulation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulation(cmd.Context(), logger, cfg, flags, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&flags.businesses, "businesses", 0, "number of businesses (prompted when omitted)")
	cmd.Flags().StringSliceVar(&flags.profiles, "profile", nil, "profile code per business, cycled (prompted when omitted)")
	cmd.Flags().IntVar(&flags.days, "days", 0, "number of days to simulate (prompted when omitted)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed, 0 means time-derived")
	cmd.Flags().IntVar(&flags.dueDays, "due-days", sim.DefaultDueDays, "payment terms in days for issued invoices")
	cmd.Flags().StringVar(&flags.profilesFile, "profiles", "", "YAML file overriding the built-in profile catalog")
	cmd.Flags().StringVar(&flags.ledgerPath, "ledger", "", "sqlite file recording the run ledger (empty disables)")

	return cmd
}

func runSimulation(ctx context.Context, logger core.Logger, cfg config.Config, flags runFlags, in io.Reader, out io.Writer) error {
	presets := catalog.Builtin()
	if flags.profilesFile != "" {
		if err := presets.MergeFile(flags.profilesFile); err != nil {
			return err
		}
	}

	prompter := NewPrompter(in, out)

	businesses, interactive, err := createBusinesses(presets, flags, prompter)
	if err != nil {
		return err
	}

	days := flags.days
	if days <= 0 {
		if days, err = prompter.Int("Enter the number of days to simulate: ", 1); err != nil {
			return err
		}
	}

	if interactive {
		manual, err := prompter.YesNo("Do you want to manually define customer relationships? (yes/no): ")
		if err != nil {
			return err
		}
		if manual {
			// Manual wiring is not implemented; relationships are drawn
			// randomly either way.
			fmt.Fprintln(out, "Manual relationship definition is not supported yet; wiring randomly.")
		}
	}

	seed := flags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim.BuildNetwork(businesses, rand.New(rand.NewSource(seed)))

	recorders := sim.MultiRecorder{report.NewConsole(out)}

	ledgerPath := flags.ledgerPath
	if ledgerPath == "" {
		ledgerPath = cfg.Database.LedgerPath
	}
	if ledgerPath != "" {
		dbCfg := cfg.Database
		dbCfg.LedgerPath = ledgerPath

		client, err := sqlite.NewClient(dbCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		ledger, err := sqlite.NewLedgerStore(client.DB())
		if err != nil {
			return err
		}

		logger.InfoContext(ctx, "recording run ledger", "path", ledgerPath, "run_id", ledger.RunID())
		recorders = append(recorders, ledger)
	}

	engine, err := sim.NewEngine(sim.Options{
		Days:    days,
		DueDays: flags.dueDays,
		Seed:    seed,
	}, businesses, recorders, logger)
	if err != nil {
		return err
	}

	return engine.Run(ctx)
}

// createBusinesses builds the population either from flags or from
// interactive prompts. The second return reports whether prompting
// happened, which also gates the manual-relationship question.
func createBusinesses(presets *catalog.Catalog, flags runFlags, prompter *Prompter) ([]*core.Business, bool, error) {
	count := flags.businesses
	interactive := count <= 0

	var err error
	if interactive {
		if count, err = prompter.Int("Enter the number of businesses to create: ", 1); err != nil {
			return nil, interactive, err
		}
	}

	codes := make([]string, 0, count)
	switch {
	case len(flags.profiles) > 0:
		for _, code := range flags.profiles {
			if !presets.Has(code) {
				return nil, interactive, fmt.Errorf("profile %q: choose one of %s",
					code, strings.Join(presets.Codes(), ", "))
			}
		}
		for i := 0; i < count; i++ {
			codes = append(codes, flags.profiles[i%len(flags.profiles)])
		}
	default:
		interactive = true
		for i := 0; i < count; i++ {
			code, err := prompter.Choice(
				fmt.Sprintf("Select attributes for Business #%d (A1 to F5): ", i+1), presets.Has)
			if err != nil {
				return nil, interactive, err
			}
			codes = append(codes, code)
		}
	}

	businesses := make([]*core.Business, 0, count)
	for i, code := range codes {
		profile, err := presets.Get(code)
		if err != nil {
			return nil, interactive, err
		}

		business, err := core.NewBusiness(int64(i+1), fmt.Sprintf("Business %d", i+1), profile)
		if err != nil {
			return nil, interactive, err
		}
		businesses = append(businesses, business)
	}

	return businesses, interactive, nil
}
