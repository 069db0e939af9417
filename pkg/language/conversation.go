package language

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	conversationPath = "/language/:analyze-conversations"

	ProjectKindConversation  = "Conversation"
	ProjectKindOrchestration = "Orchestration"
)

// ErrUnsupportedProjectKind is returned for orchestration workflow predictions.
var ErrUnsupportedProjectKind = errors.New("unsupported project kind")

// ConversationOptions describes one utterance to analyze.
type ConversationOptions struct {
	Text           string
	ProjectName    string
	DeploymentName string
	// Language defaults to "en".
	Language string
	Verbose  bool
}

// Intent is one candidate intent with its score.
type Intent struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidenceScore"`
}

// Entity is a labeled span of the utterance.
type Entity struct {
	Category   string  `json:"category"`
	Text       string  `json:"text"`
	Offset     int     `json:"offset"`
	Length     int     `json:"length"`
	Confidence float64 `json:"confidenceScore"`
}

// Prediction is the model output for a conversation project.
type Prediction struct {
	TopIntent   string
	ProjectKind string
	Intents     []Intent
	Entities    []Entity
}

// TopCandidate returns the first ranked intent.
func (p Prediction) TopCandidate() (Intent, bool) {
	if len(p.Intents) == 0 {
		return Intent{}, false
	}
	return p.Intents[0], true
}

// EntityText returns the text of the last entity with the given category.
func (p Prediction) EntityText(category string) (string, bool) {
	text, found := "", false
	for _, e := range p.Entities {
		if e.Category == category {
			text, found = e.Text, true
		}
	}
	return text, found
}

// ConversationResult is the analysis of one utterance.
type ConversationResult struct {
	Query            string
	DetectedLanguage string
	Prediction       Prediction
}

type conversationTask struct {
	Kind          string             `json:"kind"`
	AnalysisInput analysisInput      `json:"analysisInput"`
	Parameters    conversationParams `json:"parameters"`
}

type analysisInput struct {
	ConversationItem conversationItem `json:"conversationItem"`
}

type conversationItem struct {
	ParticipantID string `json:"participantId"`
	ID            string `json:"id"`
	Modality      string `json:"modality"`
	Language      string `json:"language"`
	Text          string `json:"text"`
}

type conversationParams struct {
	ProjectName      string `json:"projectName"`
	DeploymentName   string `json:"deploymentName"`
	Verbose          bool   `json:"verbose"`
	IsLoggingEnabled bool   `json:"isLoggingEnabled"`
	StringIndexType  string `json:"stringIndexType"`
}

type conversationResponse struct {
	Kind   string `json:"kind"`
	Result struct {
		Query            string         `json:"query"`
		DetectedLanguage string         `json:"detectedLanguage"`
		Prediction       wirePrediction `json:"prediction"`
	} `json:"result"`
}

// wirePrediction defers intent decoding: orchestration projects return an object, not a list.
type wirePrediction struct {
	TopIntent   string          `json:"topIntent"`
	ProjectKind string          `json:"projectKind"`
	Intents     json.RawMessage `json:"intents"`
	Entities    []Entity        `json:"entities"`
}

// AnalyzeConversation classifies the intent of an utterance and extracts its entities.
func (c *Client) AnalyzeConversation(ctx context.Context, opts ConversationOptions) (ConversationResult, error) {
	text := strings.TrimSpace(opts.Text)
	if text == "" {
		return ConversationResult{}, errors.New("text is required")
	}
	if opts.ProjectName == "" || opts.DeploymentName == "" {
		return ConversationResult{}, errors.New("project and deployment names are required")
	}
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}

	task := conversationTask{
		Kind: "Conversation",
		AnalysisInput: analysisInput{
			ConversationItem: conversationItem{
				ParticipantID: "1",
				ID:            uuid.NewString(),
				Modality:      "text",
				Language:      lang,
				Text:          text,
			},
		},
		Parameters: conversationParams{
			ProjectName:      opts.ProjectName,
			DeploymentName:   opts.DeploymentName,
			Verbose:          opts.Verbose,
			IsLoggingEnabled: false,
			StringIndexType:  "Utf16CodeUnit",
		},
	}
	query := url.Values{"api-version": {c.conversationVersion}}

	var resp conversationResponse
	if err := c.post(ctx, conversationPath, query, task, &resp); err != nil {
		return ConversationResult{}, fmt.Errorf("analyze conversation: %w", err)
	}

	wp := resp.Result.Prediction
	if wp.ProjectKind == ProjectKindOrchestration {
		return ConversationResult{}, fmt.Errorf("analyze conversation: %w: %s", ErrUnsupportedProjectKind, wp.ProjectKind)
	}
	var intents []Intent
	if len(wp.Intents) > 0 && string(wp.Intents) != "null" {
		if err := json.Unmarshal(wp.Intents, &intents); err != nil {
			return ConversationResult{}, fmt.Errorf("analyze conversation: decode intents: %w", err)
		}
	}

	return ConversationResult{
		Query:            resp.Result.Query,
		DetectedLanguage: resp.Result.DetectedLanguage,
		Prediction: Prediction{
			TopIntent:   wp.TopIntent,
			ProjectKind: wp.ProjectKind,
			Intents:     intents,
			Entities:    wp.Entities,
		},
	}, nil
}
