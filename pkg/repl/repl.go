// Package repl runs the line-oriented interactive loop shared by the demo commands.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	loggerpkg "github.com/minhyannv/ai-language-go/pkg/logger"
)

// QuitWord ends a session when typed on its own, in any case.
const QuitWord = "quit"

// Handler processes one user turn and writes its result to out.
type Handler func(ctx context.Context, input string, out io.Writer) error

// Options configures REPL behavior.
type Options struct {
	// Banner is printed once before the first prompt.
	Banner func(out io.Writer)
	Prompt string
	// Farewell is printed when the user quits.
	Farewell string
	// EmptyMessage is printed for blank input. Blank input is skipped silently when empty.
	EmptyMessage string
	// ErrorHint follows every per-turn error message.
	ErrorHint string
	// Timeout bounds each handler call. Zero disables it.
	Timeout time.Duration

	Verbose bool
	Logger  loggerpkg.Logger
}

// IsQuit reports whether input is the quit sentinel.
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), QuitWord)
}

// Run reads lines from in until EOF, the quit sentinel, or ctx cancellation.
// A handler error is reported and the loop moves on to the next turn.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options, handle Handler) error {
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if handle == nil {
		return fmt.Errorf("handler is required")
	}
	if out == nil {
		out = io.Discard
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", map[string]any{
		"timeout": opts.Timeout.String(),
	})

	if opts.Banner != nil {
		opts.Banner(out)
	}

	// The scanner runs in its own goroutine so a cancelled ctx can interrupt a blocked read.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	turn := 0
	for {
		_, _ = fmt.Fprint(out, opts.Prompt)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(out)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			break
		}

		input := strings.TrimSpace(line)
		if IsQuit(input) {
			if opts.Farewell != "" {
				_, _ = fmt.Fprintln(out, opts.Farewell)
			}
			loggerpkg.Debug(opts.Verbose, opts.Logger, "repl quit", map[string]any{"turns": turn})
			return nil
		}
		if input == "" {
			if opts.EmptyMessage != "" {
				_, _ = fmt.Fprintln(out, opts.EmptyMessage)
			}
			continue
		}

		turn++
		loggerpkg.Debug(opts.Verbose, opts.Logger, "repl turn", map[string]any{
			"turn":  turn,
			"bytes": len(input),
		})
		if err := runTurn(ctx, opts.Timeout, input, out, handle); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			loggerpkg.Warn(opts.Logger, "repl turn failed", map[string]any{
				"turn":  turn,
				"error": err.Error(),
			})
			_, _ = fmt.Fprintf(out, "Error: %v\n", err)
			if opts.ErrorHint != "" {
				_, _ = fmt.Fprintln(out, opts.ErrorHint)
			}
			_, _ = fmt.Fprintln(out)
		}
	}

	if err := <-readErr; err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func runTurn(ctx context.Context, timeout time.Duration, input string, out io.Writer, handle Handler) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return handle(ctx, input, out)
}
