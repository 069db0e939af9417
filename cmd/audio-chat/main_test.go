package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"

	"github.com/minhyannv/ai-language-go/pkg/audiochat"
	configpkg "github.com/minhyannv/ai-language-go/pkg/config"
)

func init() {
	color.NoColor = true
}

func TestRunAsksAboutAudio(t *testing.T) {
	var chatCalls atomic.Int32
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("fake-audio"))
			return
		}
		chatCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","created":1,"model":"m",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"The caller wants strawberries."}}]}`))
	}))
	defer srv.Close()

	t.Setenv("PROJECT_ENDPOINT", srv.URL)
	t.Setenv("MODEL_DEPLOYMENT", "gpt-4o-audio-preview")
	t.Setenv("PROJECT_KEY", "key")
	t.Setenv("AUDIO_URL", srv.URL+"/fresas.mp3")

	var out bytes.Buffer
	err := run(context.Background(), configpkg.DefaultCommon(), strings.NewReader("\nWhat does the customer want?\nquit\n"), &out,
		audiochat.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := chatCalls.Load(); got != 1 {
		t.Fatalf("expected one chat call, got %d", got)
	}
	got := out.String()
	for _, want := range []string{"Please enter a question.", "Getting a response ...", "The caller wants strawberries."} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in output:\n%s", want, got)
		}
	}
}

func TestRunMissingDeployment(t *testing.T) {
	t.Setenv("PROJECT_ENDPOINT", "https://res.openai.azure.com")
	t.Setenv("MODEL_DEPLOYMENT", "")

	err := run(context.Background(), configpkg.DefaultCommon(), strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "MODEL_DEPLOYMENT") {
		t.Fatalf("expected missing deployment error, got %v", err)
	}
}
