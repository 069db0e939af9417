// Command audio-chat asks questions about an audio clip using an Azure OpenAI chat deployment.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minhyannv/ai-language-go/pkg/audiochat"
	configpkg "github.com/minhyannv/ai-language-go/pkg/config"
	loggerpkg "github.com/minhyannv/ai-language-go/pkg/logger"
	"github.com/minhyannv/ai-language-go/pkg/repl"
)

var version = "dev" // Overridden at build time via -ldflags

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
	var systemMessage string

	cmd := &cobra.Command{
		Use:           "audio-chat",
		Short:         "Ask questions about an audio clip",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configpkg.Normalize(common), cmd.InOrStdin(), cmd.OutOrStdout(),
				audiochat.WithSystemMessage(systemMessage))
		},
	}
	cmd.Flags().BoolVarP(&common.Verbose, "verbose", "v", common.Verbose, "Verbose request logging to stderr")
	cmd.Flags().StringVar(&common.EnvFile, "env-file", common.EnvFile, "Path to a .env file (default: ./.env when present)")
	cmd.Flags().DurationVar(&common.Timeout, "timeout", common.Timeout, "Timeout for each remote call (0 disables)")
	cmd.Flags().StringVar(&systemMessage, "system-message", audiochat.DefaultSystemMessage, "System prompt for the assistant")
	return cmd
}

func run(ctx context.Context, common configpkg.Common, in io.Reader, out io.Writer, chatOpts ...audiochat.Option) error {
	if err := configpkg.LoadEnv(common.EnvFile); err != nil {
		return err
	}
	cfg, err := configpkg.LoadAudioChat(nil)
	if err != nil {
		return err
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	opts := append([]audiochat.Option{
		audiochat.WithLogger(appLogger),
		audiochat.WithVerbose(common.Verbose),
	}, chatOpts...)
	chat, err := audiochat.New(cfg, opts...)
	if err != nil {
		return fmt.Errorf("create chat client: %w", err)
	}

	return repl.Run(ctx, in, out, repl.Options{
		Prompt:       "\nAsk a question about the audio\n(or type 'quit' to exit)\n",
		EmptyMessage: "Please enter a question.",
		Timeout:      common.Timeout,
		Verbose:      common.Verbose,
		Logger:       appLogger,
	}, func(ctx context.Context, prompt string, w io.Writer) error {
		_, _ = color.New(color.Faint).Fprintln(w, "Getting a response ...")
		_, _ = fmt.Fprintln(w)
		reply, err := chat.Ask(ctx, prompt)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, reply)
		return nil
	})
}
