package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"feedlens/adapters/tabular"
	"feedlens/domain/feedback"
	"feedlens/internal/analysis"
	"feedlens/internal/charts"
	"feedlens/internal/config"
	"feedlens/internal/testkit"
	"feedlens/ui"
)

func newPipeline() *analysis.Pipeline {
	return analysis.NewPipeline(func(path string) analysis.Loader {
		return tabular.NewDataReader(path)
	})
}

func main() {
	var (
		headless  bool
		file      string
		kindName  string
		chartsZip string
	)

	rootCmd := &cobra.Command{
		Use:   "feedlens",
		Short: "Customer feedback analysis: sentiment, keywords, topics and summaries",
		Long: `feedlens analyzes customer feedback files (csv, txt, xlsx).

With --headless, --file and --analysis it runs once and prints the
report to stdout. Without them it starts the interactive web UI.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if headless && file != "" && kindName != "" {
				return runHeadless(file, kindName, chartsZip)
			}
			return runInteractive()
		},
	}

	rootCmd.Flags().BoolVar(&headless, "headless", false, "run once without the interactive UI")
	rootCmd.Flags().StringVar(&file, "file", "", "path to the feedback data file")
	rootCmd.Flags().StringVar(&kindName, "analysis", "", "analysis kind: sentiment, keywords, topics or summary")
	rootCmd.Flags().StringVar(&chartsZip, "charts", "", "also write the chart archive to this zip path")

	rootCmd.AddCommand(newSampleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runHeadless executes the pipeline once and writes the report to
// stdout. Failures surface inside the report text, not as exit codes.
func runHeadless(file, kindName, chartsZip string) error {
	kind, err := feedback.ParseKind(kindName)
	if err != nil {
		fmt.Println(analysis.ReportUnknownKind)
		return nil
	}

	out := newPipeline().Run(file, kind)
	fmt.Println(out.Report)

	if chartsZip != "" && !out.Failed() {
		if err := writeChartArchive(out, chartsZip); err != nil {
			return err
		}
	}
	return nil
}

func writeChartArchive(out *analysis.Outcome, path string) error {
	artifacts := charts.ForOutcome(out)
	if len(artifacts) == 0 {
		return fmt.Errorf("no charts to export for this analysis")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create chart archive: %w", err)
	}
	defer f.Close()
	if err := charts.WriteArchive(f, artifacts); err != nil {
		return fmt.Errorf("chart archive failed: %w", err)
	}
	log.Printf("[Main] chart archive written to %s", path)
	return nil
}

func runInteractive() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app, err := ui.NewApp(cfg, newPipeline())
	if err != nil {
		return err
	}
	return app.Run()
}

func newSampleCmd() *cobra.Command {
	var (
		rows int
		seed int64
		out  string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a synthetic feedback CSV for trying the analyzers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := testkit.DefaultGeneratorConfig()
			cfg.RowCount = rows
			cfg.Seed = seed

			gen := testkit.NewFeedbackGenerator(cfg)
			if err := gen.WriteCSV(out); err != nil {
				return err
			}
			fmt.Printf("wrote %d feedback rows to %s\n", rows, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 200, "number of feedback rows to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for deterministic output")
	cmd.Flags().StringVar(&out, "out", "feedback_sample.csv", "output CSV path")

	return cmd
}
