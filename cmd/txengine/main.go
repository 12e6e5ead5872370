package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/iho/txengine/internal/adapter/csvfile"
	"github.com/iho/txengine/internal/infrastructure/config"
	"github.com/iho/txengine/internal/infrastructure/logger"
	"github.com/iho/txengine/internal/infrastructure/metrics"
	"github.com/iho/txengine/internal/usecase"
)

const (
	exitUsage = 1
	// exitFatal marks runs that produced no account data: unreadable input,
	// invalid header or failed serialization.
	exitFatal = 255
	// maxErrorExitCode keeps large error counts distinguishable from success
	// and from exitFatal.
	maxErrorExitCode = 254
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return exitFatal
	}

	code := 0
	rootCmd := newRootCmd(cfg, stdout, stderr, &code)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return exitUsage
	}

	return code
}

func newRootCmd(cfg *config.Config, stdout, stderr io.Writer, code *int) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "txengine <transactions.csv>",
		Short: "Apply a CSV stream of transactions to client accounts",
		Long: `Reads deposits, withdrawals, disputes, resolves and chargebacks from a CSV file,
prints the resulting client accounts as CSV on stdout and one line per rejected
record on stderr. The exit code is the number of rejected records.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = process(cfg, args[0], stdout, stderr)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console, json)")
	rootCmd.Flags().StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this file after the run")

	return rootCmd
}

func process(cfg *config.Config, path string, stdout, stderr io.Writer) int {
	start := time.Now()

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: stderr,
		RunID:  ulid.Make().String(),
	})

	reader, file, err := csvfile.OpenFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFatal
	}
	defer file.Close()

	m := metrics.New()
	engine := usecase.NewEngine(log, m)
	errs := engine.Process(reader.All())

	for _, err := range errs {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}

	if err := csvfile.WriteAccounts(stdout, engine.Snapshot()); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFatal
	}

	m.RunDuration.Observe(time.Since(start).Seconds())
	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn().Err(err).Str("path", cfg.MetricsFile).Msg("failed to write metrics")
		}
	}

	log.Info().
		Int("records", engine.Processed()).
		Int("errors", len(errs)).
		Int("accounts", len(engine.Accounts())).
		Dur("elapsed", time.Since(start)).
		Msg("run complete")

	return exitCode(len(errs))
}

func exitCode(errorCount int) int {
	return min(errorCount, maxErrorExitCode)
}
