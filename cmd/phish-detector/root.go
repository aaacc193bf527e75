package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/phish-detector/internal/adapters/report"
	"github.com/mikey/phish-detector/internal/core"
	"github.com/mikey/phish-detector/internal/di"
	"github.com/mikey/phish-detector/internal/ports"
)

const (
	sourceText  = "text"
	sourceStdin = "stdin"

	emptyInputMessage = "Please enter email text to analyze"
)

// NewRootCmd creates the root command, which analyzes its input.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phish-detector [flags] [file ...]",
		Short: "Score email text for phishing indicators",
		Long: `phish-detector scans email text for common phishing indicators such as
urgent language, account verification requests and generic greetings, and
reports a threat level with a confidence score.

Input is taken from --text, from the given files, or from stdin.
Use --mime to parse input as RFC 5322 messages instead of plain text.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          runAnalyze,
	}

	flags := cmd.Flags()
	flags.StringP("text", "t", "", "Email text to analyze")
	flags.StringP("format", "f", report.FormatText, "Output format ("+strings.Join(report.Formats(), ", ")+")")
	flags.Bool("mime", false, "Parse input as RFC 5322 email messages")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Duration("delay", 0, "Simulated analysis latency")
	flags.Int("max-input-size", 0, "Truncate input to this many bytes (0 = unlimited)")
	flags.IntP("concurrency", "c", 4, "Number of files analyzed in parallel")
	flags.Bool("json-log", false, "Output logs in JSON format")
	flags.String("config", "", "Path to config file")

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRulesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	container, err := di.BuildContainer(di.CLIOptions{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
		Out:        cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	return container.Invoke(func(filter ports.EmailFilter, resultCache core.ResultCache, logger *zap.Logger) error {
		defer func() { _ = logger.Sync() }()
		defer stopCache(resultCache)

		ctx := cmd.Context()
		start := time.Now()

		switch {
		case cmd.Flags().Changed("text"):
			text, err := cmd.Flags().GetString("text")
			if err != nil {
				return err
			}
			_, err = filter.ProcessText(ctx, sourceText, text)
			return err
		case len(args) > 0:
			if _, err := filter.ProcessFiles(ctx, args); err != nil {
				return err
			}
			logger.Info("Batch complete", zap.Int("files", len(args)), zap.Duration("duration", time.Since(start)))
			return nil
		default:
			_, err := filter.ProcessReader(ctx, sourceStdin, cmd.InOrStdin())
			return err
		}
	})
}

// stopCache ends the cache's background cleanup, if it runs one
func stopCache(resultCache core.ResultCache) {
	if stopper, ok := resultCache.(interface{ Stop() }); ok {
		stopper.Stop()
	}
}

// errorMessage is the text shown for err on stderr
func errorMessage(err error) string {
	if errors.Is(err, core.ErrEmptyInput) {
		return emptyInputMessage
	}
	return err.Error()
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}
