// Package language is a small client for the Azure AI Language question
// answering and conversational language understanding REST endpoints.
package language

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	loggerpkg "github.com/minhyannv/ai-language-go/pkg/logger"
)

const (
	moduleName    = "ai-language-go/language"
	moduleVersion = "v0.1.0"

	// SubscriptionKeyHeader carries the resource key on every request.
	SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	DefaultAnswersAPIVersion      = "2021-10-01"
	DefaultConversationAPIVersion = "2023-04-01"
)

// Client calls a single Azure AI Language resource.
type Client struct {
	endpoint string
	pl       runtime.Pipeline

	answersVersion      string
	conversationVersion string

	logger  loggerpkg.Logger
	verbose bool
}

// NewClient builds a client authenticated with a resource key.
func NewClient(endpoint, key string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q", endpoint)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("key is required")
	}

	o := clientOptions{
		logger:              loggerpkg.NopLogger{},
		answersVersion:      DefaultAnswersAPIVersion,
		conversationVersion: DefaultConversationAPIVersion,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cred := azcore.NewKeyCredential(key)
	pl := runtime.NewPipeline(moduleName, moduleVersion, runtime.PipelineOptions{
		PerRetry: []policy.Policy{runtime.NewKeyCredentialPolicy(cred, SubscriptionKeyHeader, nil)},
	}, &o.client)

	loggerpkg.Debug(o.verbose, o.logger, "language client init", map[string]any{
		"endpoint":             endpoint,
		"answers_version":      o.answersVersion,
		"conversation_version": o.conversationVersion,
	})

	return &Client{
		endpoint:            endpoint,
		pl:                  pl,
		answersVersion:      o.answersVersion,
		conversationVersion: o.conversationVersion,
		logger:              o.logger,
		verbose:             o.verbose,
	}, nil
}

// Endpoint returns the normalized resource endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// post sends body as JSON to path and decodes a 200 response into out.
func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	req, err := runtime.NewRequest(ctx, http.MethodPost, runtime.JoinPaths(c.endpoint, path))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	q := req.Raw().URL.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	req.Raw().URL.RawQuery = q.Encode()
	req.Raw().Header["Accept"] = []string{"application/json"}
	if err := runtime.MarshalAsJSON(req, body); err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	loggerpkg.Debug(c.verbose, c.logger, "language request", map[string]any{
		"path":  path,
		"query": req.Raw().URL.RawQuery,
	})
	resp, err := c.pl.Do(req)
	if err != nil {
		return err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return runtime.NewResponseError(resp)
	}
	if err := runtime.UnmarshalAsJSON(resp, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	loggerpkg.Debug(c.verbose, c.logger, "language response", map[string]any{
		"path":   path,
		"status": resp.StatusCode,
	})
	return nil
}
