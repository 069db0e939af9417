// Package audiochat sends text prompts together with an audio clip to an
// Azure OpenAI chat deployment.
package audiochat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	configpkg "github.com/minhyannv/ai-language-go/pkg/config"
	loggerpkg "github.com/minhyannv/ai-language-go/pkg/logger"
)

const (
	moduleName    = "ai-language-go/audiochat"
	moduleVersion = "v0.1.0"

	DefaultSystemMessage = "You are an AI assistant for a produce supplier company."
)

// ErrEmptyPrompt is returned by Ask for blank prompts.
var ErrEmptyPrompt = errors.New("prompt is required")

// Chat holds the chat client and the audio clip attached to every prompt.
type Chat struct {
	client        openai.Client
	deployment    string
	systemMessage string
	audio         *audioSource

	logger  loggerpkg.Logger
	verbose bool
}

// New builds a Chat for the configured deployment. Without a key it
// authenticates with DefaultAzureCredential.
func New(cfg configpkg.AudioChat, opts ...Option) (*Chat, error) {
	deps := chatDeps{
		logger:        loggerpkg.NopLogger{},
		systemMessage: DefaultSystemMessage,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	deployment := strings.TrimSpace(cfg.Deployment)
	if endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	if deployment == "" {
		return nil, errors.New("deployment is required")
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = configpkg.DefaultOpenAIVersion
	}
	audioURL := cfg.AudioURL
	if audioURL == "" {
		audioURL = configpkg.DefaultAudioURL
	}

	loggerpkg.Debug(deps.verbose, deps.logger, "audio chat init", map[string]any{
		"endpoint":    endpoint,
		"deployment":  deployment,
		"api_version": apiVersion,
		"audio_url":   audioURL,
		"keyless":     cfg.Key == "",
	})

	clientOpts := &policy.ClientOptions{}
	if deps.httpClient != nil {
		clientOpts.Transport = deps.httpClient
	}
	audio, err := newAudioSource(audioURL, clientOpts)
	if err != nil {
		return nil, err
	}

	reqOpts := []option.RequestOption{azure.WithEndpoint(endpoint, apiVersion)}
	switch {
	case cfg.Key != "":
		reqOpts = append(reqOpts, azure.WithAPIKey(cfg.Key))
	case deps.credential != nil:
		reqOpts = append(reqOpts, azure.WithTokenCredential(deps.credential))
	default:
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("default azure credential: %w", err)
		}
		reqOpts = append(reqOpts, azure.WithTokenCredential(cred))
	}
	if deps.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(deps.httpClient))
	}

	return &Chat{
		client:        openai.NewClient(reqOpts...),
		deployment:    deployment,
		systemMessage: deps.systemMessage,
		audio:         audio,
		logger:        deps.logger,
		verbose:       deps.verbose,
	}, nil
}

// Ask sends prompt with the audio clip and returns the assistant reply.
func (c *Chat) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	audio, err := c.audio.load(ctx)
	if err != nil {
		return "", err
	}
	c.debugf("audio chat: sending prompt bytes=%d audio_format=%s", len(prompt), c.audio.format)

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.deployment),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemMessage),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(prompt),
				openai.InputAudioContentPart(openai.ChatCompletionContentPartInputAudioInputAudioParam{
					Data:   audio,
					Format: c.audio.format,
				}),
			}),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	c.debugf("audio chat: finish_reason=%s", completion.Choices[0].FinishReason)
	return completion.Choices[0].Message.Content, nil
}

func (c *Chat) debugf(format string, args ...any) {
	loggerpkg.Debugf(c.verbose, c.logger, format, args...)
}
