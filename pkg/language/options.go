package language

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	loggerpkg "github.com/minhyannv/ai-language-go/pkg/logger"
)

// Option configures optional client dependencies.
type Option func(*clientOptions)

type clientOptions struct {
	client  policy.ClientOptions
	logger  loggerpkg.Logger
	verbose bool

	answersVersion      string
	conversationVersion string
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(o *clientOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithVerbose enables request/response debug logging.
func WithVerbose(v bool) Option {
	return func(o *clientOptions) {
		o.verbose = v
	}
}

// WithTransport replaces the HTTP transport, e.g. an *http.Client.
func WithTransport(t policy.Transporter) Option {
	return func(o *clientOptions) {
		o.client.Transport = t
	}
}

// WithRetry overrides the pipeline retry policy.
func WithRetry(r policy.RetryOptions) Option {
	return func(o *clientOptions) {
		o.client.Retry = r
	}
}

// WithAPIVersions overrides the REST api-version of either endpoint. Empty values keep the default.
func WithAPIVersions(answers, conversation string) Option {
	return func(o *clientOptions) {
		if answers != "" {
			o.answersVersion = answers
		}
		if conversation != "" {
			o.conversationVersion = conversation
		}
	}
}
