package language

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const answersPath = "/language/:query-knowledgebases"

// AnswersOptions selects the knowledge base and shapes one question.
type AnswersOptions struct {
	Question       string
	ProjectName    string
	DeploymentName string
	// Top limits the number of answers. Zero leaves it to the service.
	Top int
	// ConfidenceThreshold drops answers scored below it. Zero disables it.
	ConfidenceThreshold float64
	// ShortAnswer asks the service for a precise answer span.
	ShortAnswer bool
}

// Answer is one ranked knowledge base answer.
type Answer struct {
	Answer     string            `json:"answer"`
	Confidence float64           `json:"confidenceScore"`
	ID         int               `json:"id"`
	Source     string            `json:"source,omitempty"`
	Questions  []string          `json:"questions,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Span       *AnswerSpan       `json:"answerSpan,omitempty"`
}

// AnswerSpan is the short answer extracted from Answer, when requested.
type AnswerSpan struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidenceScore"`
	Offset     int     `json:"offset"`
	Length     int     `json:"length"`
}

// AnswersResult holds answers in service ranking order.
type AnswersResult struct {
	Answers []Answer `json:"answers"`
}

// Top returns the highest ranked answer.
func (r AnswersResult) Top() (Answer, bool) {
	if len(r.Answers) == 0 {
		return Answer{}, false
	}
	return r.Answers[0], true
}

type answersRequest struct {
	Question            string             `json:"question"`
	Top                 int                `json:"top,omitempty"`
	ConfidenceThreshold float64            `json:"confidenceScoreThreshold,omitempty"`
	AnswerSpan          *answerSpanRequest `json:"answerSpanRequest,omitempty"`
}

type answerSpanRequest struct {
	Enable bool `json:"enable"`
}

// GetAnswers queries a deployed question answering project.
func (c *Client) GetAnswers(ctx context.Context, opts AnswersOptions) (AnswersResult, error) {
	question := strings.TrimSpace(opts.Question)
	if question == "" {
		return AnswersResult{}, errors.New("question is required")
	}
	if opts.ProjectName == "" || opts.DeploymentName == "" {
		return AnswersResult{}, errors.New("project and deployment names are required")
	}

	body := answersRequest{
		Question:            question,
		Top:                 opts.Top,
		ConfidenceThreshold: opts.ConfidenceThreshold,
	}
	if opts.ShortAnswer {
		body.AnswerSpan = &answerSpanRequest{Enable: true}
	}
	query := url.Values{
		"projectName":    {opts.ProjectName},
		"deploymentName": {opts.DeploymentName},
		"api-version":    {c.answersVersion},
	}

	var result AnswersResult
	if err := c.post(ctx, answersPath, query, body, &result); err != nil {
		return AnswersResult{}, fmt.Errorf("get answers: %w", err)
	}
	return result, nil
}
