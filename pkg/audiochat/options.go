package audiochat

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	loggerpkg "github.com/minhyannv/ai-language-go/pkg/logger"
)

// Option configures optional runtime dependencies for Chat.
type Option func(*chatDeps)

type chatDeps struct {
	logger        loggerpkg.Logger
	verbose       bool
	httpClient    *http.Client
	credential    azcore.TokenCredential
	systemMessage string
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *chatDeps) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithVerbose enables debug logging.
func WithVerbose(v bool) Option {
	return func(d *chatDeps) {
		d.verbose = v
	}
}

// WithHTTPClient routes both the chat and the audio download through c.
func WithHTTPClient(c *http.Client) Option {
	return func(d *chatDeps) {
		d.httpClient = c
	}
}

// WithTokenCredential replaces DefaultAzureCredential for keyless auth.
func WithTokenCredential(cred azcore.TokenCredential) Option {
	return func(d *chatDeps) {
		d.credential = cred
	}
}

// WithSystemMessage overrides the system prompt.
func WithSystemMessage(msg string) Option {
	return func(d *chatDeps) {
		if msg != "" {
			d.systemMessage = msg
		}
	}
}
