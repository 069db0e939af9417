// Command qna-app answers questions from a deployed Azure AI Language question answering project.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	configpkg "github.com/minhyannv/ai-language-go/pkg/config"
	"github.com/minhyannv/ai-language-go/pkg/language"
	loggerpkg "github.com/minhyannv/ai-language-go/pkg/logger"
	"github.com/minhyannv/ai-language-go/pkg/repl"
)

var version = "dev" // Overridden at build time via -ldflags

// qnaFlags holds query shaping flags.
type qnaFlags struct {
	Top         int
	Threshold   float64
	ShortAnswer bool
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
	var qf qnaFlags

	cmd := &cobra.Command{
		Use:           "qna-app",
		Short:         "Ask questions against an Azure AI Language knowledge base",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configpkg.Normalize(common), qf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&common.Verbose, "verbose", "v", common.Verbose, "Verbose request logging to stderr")
	cmd.Flags().StringVar(&common.EnvFile, "env-file", common.EnvFile, "Path to a .env file (default: ./.env when present)")
	cmd.Flags().DurationVar(&common.Timeout, "timeout", common.Timeout, "Timeout for each remote call (0 disables)")
	cmd.Flags().IntVar(&qf.Top, "top", 0, "Maximum number of answers to request (0 = service default)")
	cmd.Flags().Float64Var(&qf.Threshold, "threshold", 0, "Minimum confidence score for returned answers")
	cmd.Flags().BoolVar(&qf.ShortAnswer, "short-answer", false, "Request a short answer span")
	return cmd
}

func run(ctx context.Context, common configpkg.Common, qf qnaFlags, in io.Reader, out io.Writer, clientOpts ...language.Option) error {
	if err := configpkg.LoadEnv(common.EnvFile); err != nil {
		return err
	}
	cfg, err := configpkg.LoadQnA(nil)
	if err != nil {
		return err
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	opts := append([]language.Option{
		language.WithLogger(appLogger),
		language.WithVerbose(common.Verbose),
		language.WithAPIVersions(cfg.APIVersion, ""),
	}, clientOpts...)
	client, err := language.NewClient(cfg.Endpoint, cfg.Key, opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	loggerpkg.Debug(common.Verbose, appLogger, "qna ready", map[string]any{
		"project":    cfg.ProjectName,
		"deployment": cfg.DeploymentName,
	})

	return repl.Run(ctx, in, out, repl.Options{
		Banner:   printWelcome,
		Prompt:   "\nQuestion:\n",
		Farewell: "👋 Exiting.",
		Timeout:  common.Timeout,
		Verbose:  common.Verbose,
		Logger:   appLogger,
	}, func(ctx context.Context, question string, w io.Writer) error {
		res, err := client.GetAnswers(ctx, language.AnswersOptions{
			Question:            question,
			ProjectName:         cfg.ProjectName,
			DeploymentName:      cfg.DeploymentName,
			Top:                 qf.Top,
			ConfidenceThreshold: qf.Threshold,
			ShortAnswer:         qf.ShortAnswer,
		})
		if err != nil {
			return err
		}
		printAnswers(w, res)
		return nil
	})
}
