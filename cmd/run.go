package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abhisek/iq360/internal/app"
	"github.com/abhisek/iq360/internal/evaluation"
	"github.com/abhisek/iq360/internal/game"
	"github.com/abhisek/iq360/internal/llm"
	"github.com/abhisek/iq360/internal/report"
	"github.com/spf13/cobra"
)

// deps holds everything a game session needs.
type deps struct {
	evaluator *evaluation.Service
	generator *report.Service
	ledger    *llm.UsageLedger
	logger    *slog.Logger
	logCloser io.Closer
}

func (d *deps) Close() error {
	return d.logCloser.Close()
}

// buildDeps reads flags and environment, then wires the LLM providers and
// the evaluation and report services.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	logger, closer, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	cfg := llm.ConfigFromEnv()
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.Provider = p
	}

	ledger := llm.NewUsageLedger()
	evalProvider, reportProvider, err := buildProviders(cfg, ledger, logger)
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	// Keys are read per request, so a missing one is only a warning here.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
		logger.Warn("llm config incomplete", slog.String("provider", cfg.Provider), slog.Any("error", err))
	}
	logger.Info("llm configured",
		slog.String("provider", cfg.Provider),
		slog.String("evaluation_model", evalProvider.ModelID()),
		slog.String("report_model", reportProvider.ModelID()))

	return &deps{
		evaluator: evaluation.NewService(evalProvider, evaluation.DefaultConfig()),
		generator: report.NewService(reportProvider, report.DefaultConfig()),
		ledger:    ledger,
		logger:    logger,
		logCloser: closer,
	}, nil
}

// buildProviders returns the evaluation and report providers. The report
// provider uses each backend's stronger report model.
func buildProviders(cfg llm.Config, ledger *llm.UsageLedger, logger *slog.Logger) (llm.Provider, llm.Provider, error) {
	if cfg.Provider == llm.ProviderMock {
		p := llm.WithLogging(llm.WithValidation(newDemoProvider(), cfg.RepairJSON), llm.ProviderMock, ledger, logger)
		return p, p, nil
	}

	evalProvider, err := llm.NewProvider(cfg, ledger, logger)
	if err != nil {
		return nil, nil, err
	}
	reportProvider, err := llm.NewProvider(cfg.ForReport(), ledger, logger)
	if err != nil {
		return nil, nil, err
	}
	return evalProvider, reportProvider, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	machine := game.NewMachine(d.evaluator, d.generator, game.WithLogger(d.logger))
	d.logger.Info("session started", slog.String("session_id", machine.SessionID()))

	skipSplash, _ := cmd.Flags().GetBool("no-splash")
	if err := app.Run(app.Options{Session: machine, SkipSplash: skipSplash}); err != nil {
		return err
	}

	printUsage(cmd.OutOrStdout(), d.ledger)
	return nil
}

// printUsage writes the per-model token and cost summary for this process.
func printUsage(w io.Writer, ledger *llm.UsageLedger) {
	if ledger.Requests() == 0 {
		return
	}

	fmt.Fprintf(w, "%-32s  %-8s  %-8s  %-8s  %s\n", "Model", "Requests", "In", "Out", "Est. cost")
	fmt.Fprintln(w, strings.Repeat("─", 76))
	for _, u := range ledger.Summary() {
		cost := "n/a"
		if u.Known {
			cost = fmt.Sprintf("$%.4f", u.Cost)
		}
		model := u.Model
		if len(model) > 32 {
			model = model[:32]
		}
		fmt.Fprintf(w, "%-32s  %-8d  %-8d  %-8d  %s\n", model, u.Requests, u.InputTokens, u.OutputTokens, cost)
	}
	fmt.Fprintf(w, "Total estimated cost: $%.4f\n", ledger.TotalCost())
}
