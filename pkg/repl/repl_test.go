package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"
)

func TestIsQuit(t *testing.T) {
	for _, in := range []string{"quit", "QUIT", "  Quit  "} {
		if !IsQuit(in) {
			t.Fatalf("expected %q to quit", in)
		}
	}
	for _, in := range []string{"quit now", "q", "/quit", ""} {
		if IsQuit(in) {
			t.Fatalf("expected %q not to quit", in)
		}
	}
}

func TestRunStopsOnFirstQuitWithoutCallingHandler(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	in := strings.NewReader("first\nQuIt\nsecond\n")

	err := Run(context.Background(), in, &out, Options{Farewell: "bye"}, func(_ context.Context, input string, w io.Writer) error {
		calls = append(calls, input)
		_, _ = fmt.Fprintln(w, "handled", input)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls) != 1 || calls[0] != "first" {
		t.Fatalf("expected one handler call for %q, got %v", "first", calls)
	}
	if !strings.Contains(out.String(), "bye") {
		t.Fatalf("expected farewell in output: %q", out.String())
	}
}

func TestRunContinuesAfterHandlerError(t *testing.T) {
	var out bytes.Buffer
	calls := 0
	in := strings.NewReader("a\nb\n")

	err := Run(context.Background(), in, &out, Options{ErrorHint: "check config"}, func(context.Context, string, io.Writer) error {
		calls++
		if calls == 1 {
			return errors.New("service unavailable")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected loop to continue after error, got %d calls", calls)
	}
	if !strings.Contains(out.String(), "Error: service unavailable\ncheck config") {
		t.Fatalf("expected error and hint in output: %q", out.String())
	}
}

type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Info(string, any)  {}
func (l *recordingLogger) Debug(string, any) {}
func (l *recordingLogger) Error(string, any) {}
func (l *recordingLogger) Warn(msg string, obj any) {
	l.warns = append(l.warns, fmt.Sprintf("%s %v", msg, obj))
}

func TestRunWarnsOnHandlerErrorWithoutVerbose(t *testing.T) {
	rec := &recordingLogger{}
	err := Run(context.Background(), strings.NewReader("a\n"), io.Discard, Options{Logger: rec}, func(context.Context, string, io.Writer) error {
		return errors.New("service unavailable")
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rec.warns) != 1 || !strings.Contains(rec.warns[0], "service unavailable") {
		t.Fatalf("expected one warning with the error, got %v", rec.warns)
	}
}

func TestRunBlankInput(t *testing.T) {
	var out bytes.Buffer
	called := false

	err := Run(context.Background(), strings.NewReader("   \n"), &out, Options{EmptyMessage: "Please enter a question."}, func(context.Context, string, io.Writer) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if called {
		t.Fatal("handler must not run for blank input")
	}
	if !strings.Contains(out.String(), "Please enter a question.") {
		t.Fatalf("expected empty message, got %q", out.String())
	}
}

func TestRunAppliesTurnTimeout(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("slow\n"), &out, Options{Timeout: 10 * time.Millisecond}, func(ctx context.Context, _ string, _ io.Writer) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), context.DeadlineExceeded.Error()) {
		t.Fatalf("expected deadline error in output: %q", out.String())
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pr, pw := io.Pipe()
	defer pw.Close()

	err := Run(ctx, pr, io.Discard, Options{}, func(context.Context, string, io.Writer) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunRequiresHandler(t *testing.T) {
	if err := Run(context.Background(), strings.NewReader(""), nil, Options{}, nil); err == nil {
		t.Fatal("expected error for nil handler")
	}
}
