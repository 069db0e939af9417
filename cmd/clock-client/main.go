// Command clock-client classifies time and date questions with a conversational
// language understanding project and answers them locally.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhyannv/ai-language-go/pkg/clock"
	configpkg "github.com/minhyannv/ai-language-go/pkg/config"
	"github.com/minhyannv/ai-language-go/pkg/language"
	loggerpkg "github.com/minhyannv/ai-language-go/pkg/logger"
	"github.com/minhyannv/ai-language-go/pkg/repl"
)

var version = "dev" // Overridden at build time via -ldflags

// clockFlags holds analysis flags.
type clockFlags struct {
	ZonesFile string
	Language  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	common := configpkg.DefaultCommon()
	cf := clockFlags{Language: "en"}

	cmd := &cobra.Command{
		Use:           "clock-client",
		Short:         "Ask about time, dates, or days using Azure AI Language",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configpkg.Normalize(common), cf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&common.Verbose, "verbose", "v", common.Verbose, "Verbose request logging to stderr")
	cmd.Flags().StringVar(&common.EnvFile, "env-file", common.EnvFile, "Path to a .env file (default: ./.env when present)")
	cmd.Flags().DurationVar(&common.Timeout, "timeout", common.Timeout, "Timeout for each remote call (0 disables)")
	cmd.Flags().StringVar(&cf.ZonesFile, "zones", "", "YAML zone table replacing the built-in one (overrides CLOCK_ZONES_FILE)")
	cmd.Flags().StringVar(&cf.Language, "language", cf.Language, "Utterance language code")
	return cmd
}

func run(ctx context.Context, common configpkg.Common, cf clockFlags, in io.Reader, out io.Writer, clientOpts ...language.Option) error {
	if err := configpkg.LoadEnv(common.EnvFile); err != nil {
		return err
	}
	cfg, err := configpkg.LoadClock(nil)
	if err != nil {
		return err
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	clk, err := newClock(cf.ZonesFile, cfg.ZonesFile)
	if err != nil {
		return err
	}

	opts := append([]language.Option{
		language.WithLogger(appLogger),
		language.WithVerbose(common.Verbose),
		language.WithAPIVersions("", cfg.APIVersion),
	}, clientOpts...)
	client, err := language.NewClient(cfg.Endpoint, cfg.Key, opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	loggerpkg.Debug(common.Verbose, appLogger, "clock ready", map[string]any{
		"project":    cfg.ProjectName,
		"deployment": cfg.DeploymentName,
	})

	return repl.Run(ctx, in, out, repl.Options{
		Banner:    printWelcome,
		Prompt:    "\n💬 Enter your question (\"quit\" to stop): ",
		Farewell:  "👋 Goodbye! Thanks for using the Clock Assistant!",
		ErrorHint: "🔧 Please check your Azure configuration and try again.",
		Timeout:   common.Timeout,
		Verbose:   common.Verbose,
		Logger:    appLogger,
	}, func(ctx context.Context, text string, w io.Writer) error {
		res, err := client.AnalyzeConversation(ctx, language.ConversationOptions{
			Text:           text,
			ProjectName:    cfg.ProjectName,
			DeploymentName: cfg.DeploymentName,
			Language:       cf.Language,
			Verbose:        true,
		})
		if err != nil {
			return err
		}
		printAnalysis(w, res)
		return respond(w, clk, res.Prediction)
	})
}

// newClock picks the zone table: flag first, then environment, then built-in.
func newClock(flagPath, envPath string) (*clock.Clock, error) {
	path := strings.TrimSpace(flagPath)
	if path == "" {
		path = envPath
	}
	if path == "" {
		return clock.New(), nil
	}
	zones, err := clock.LoadZones(path)
	if err != nil {
		return nil, fmt.Errorf("load zones: %w", err)
	}
	return clock.New(clock.WithZones(zones)), nil
}

// answerer resolves a prediction to a reply line.
type answerer interface {
	Answer(p language.Prediction) (string, error)
}

// respond prints the calculator answer for the predicted intent. Unknown
// intents get the help text; other failures go back to the loop.
func respond(w io.Writer, a answerer, p language.Prediction) error {
	answer, err := a.Answer(p)
	switch {
	case errors.Is(err, clock.ErrUnknownIntent):
		printFallback(w)
		return nil
	case err != nil:
		return fmt.Errorf("answer %s: %w", p.TopIntent, err)
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", answer)
	return nil
}
