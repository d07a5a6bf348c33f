package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bross/adapters/ingest"
	"bross/adapters/ledger"
	"bross/adapters/render"
	"bross/adapters/rng"
	"bross/adapters/stats"
	"bross/app"
	"bross/domain/plan"
	"bross/internal"
	"bross/internal/config"
	"bross/internal/robustness"
	"bross/internal/traversal"
	"bross/ports"
	"bross/ui"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "bross",
		Short: "Bross sequential analysis for paired binary outcomes",
		Long: `Runs Bross' sequential plan on paired A-vs-B binary outcomes and
evaluates how robust the conclusion is to the order informative pairs arrive in.`,
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newEvaluateCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var chart bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Run one sequential analysis on a two-column outcome file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := ingest.NewDataReader(args[0]).ReadPairs()
			if err != nil {
				return err
			}

			service := app.NewAnalysisService(traversal.NewEngine(plan.Default()), internal.DefaultLogger)
			result, err := service.Analyze(cmd.Context(), pairs)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%d informative pairs, %d consumed)\n",
				result.Message, result.InformativePairs, result.Steps)
			if chart && result.Grid != nil {
				fmt.Print(render.Chart(result.Grid))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chart, "chart", false, "print the traversed decision map")
	return cmd
}

func newEvaluateCmd() *cobra.Command {
	var iterations int
	var alpha float64
	var seed int64
	var persist bool

	cmd := &cobra.Command{
		Use:   "evaluate <file>",
		Short: "Evaluate order robustness via repeated random reordering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if iterations == 0 {
				iterations = cfg.Run.Iterations
			}
			if alpha == 0 {
				alpha = cfg.Run.Alpha
			}
			if seed == 0 {
				seed = cfg.Run.Seed
			}

			pairs, err := ingest.NewDataReader(args[0]).ReadPairs()
			if err != nil {
				return err
			}

			var progress ports.ProgressPort = ports.NopProgress{}
			if cfg.Run.Progress {
				progress = consoleProgress{}
			}

			service, runLedger, err := buildRobustnessService(cfg, progress)
			if err != nil {
				return err
			}
			if runLedger != nil {
				defer runLedger.Close()
			}

			result, err := service.Evaluate(cmd.Context(), app.EvaluateRequest{
				Pairs:      pairs,
				Iterations: iterations,
				Alpha:      alpha,
				Seed:       seed,
				Persist:    persist,
			})
			if err != nil {
				return err
			}

			fmt.Print(render.Report(result.Run))
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "number of random reorderings (default from BROSS_ITERATIONS)")
	cmd.Flags().Float64VarP(&alpha, "alpha", "a", 0, "significance level for the confidence intervals")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base RNG seed for reproducible permutations")
	cmd.Flags().BoolVar(&persist, "persist", false, "store the run in the configured ledger")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			gin.SetMode(cfg.Server.GinMode)

			service, runLedger, err := buildRobustnessService(cfg, ports.NopProgress{})
			if err != nil {
				return err
			}
			if runLedger != nil {
				defer runLedger.Close()
			}

			analysis := app.NewAnalysisService(traversal.NewEngine(plan.Default()), internal.DefaultLogger)

			var ledgerPort ports.RunLedger
			if runLedger != nil {
				ledgerPort = runLedger
			}
			server := ui.NewServer(analysis, service, ledgerPort, internal.DefaultLogger)
			return server.Run(cfg.Server.Port)
		},
	}
}

// buildRobustnessService wires the evaluation stack from configuration.
// The returned ledger is nil when persistence is not configured.
func buildRobustnessService(cfg *config.Config, progress ports.ProgressPort) (*app.RobustnessService, *ledger.Ledger, error) {
	engine := traversal.NewEngine(plan.Default())
	driver := robustness.NewDriver(engine, rng.NewSeededRNG(), progress, cfg.Run.Workers)
	aggregator := robustness.NewAggregator(stats.NewClopperPearson())

	var runLedger *ledger.Ledger
	var ledgerPort ports.RunLedger
	if cfg.Database.Enabled {
		var err error
		runLedger, err = ledger.Open(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		ledgerPort = runLedger
	}

	return app.NewRobustnessService(driver, aggregator, ledgerPort, internal.DefaultLogger), runLedger, nil
}

// consoleProgress prints a coarse progress line every tenth of the run
type consoleProgress struct{}

func (consoleProgress) Step(completed, total int) {
	if total < 10 || completed%(total/10) == 0 {
		fmt.Fprintf(os.Stderr, "\r%d/%d iterations", completed, total)
		if completed == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}
