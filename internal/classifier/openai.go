package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/credlens/credlens/internal/model"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClassifier implements Provider on OpenAI's Chat Completions API
type OpenAIClassifier struct {
	client *openai.Client
	cfg    model.ClassifierConfig
}

// NewOpenAIClassifier creates a new OpenAI-backed classifier
func NewOpenAIClassifier(cfg model.ClassifierConfig) (*OpenAIClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}, nil
}

// Name returns the provider name
func (c *OpenAIClassifier) Name() string {
	return "openai"
}

// IsAvailable checks the API is reachable with the configured key
func (c *OpenAIClassifier) IsAvailable(ctx context.Context) bool {
	_, err := c.client.ListModels(ctx)
	return err == nil
}

// remoteVerdict is the JSON shape the model is instructed to return
type remoteVerdict struct {
	Verdict     string  `json:"verdict"`    // "fake" or "real"
	Confidence  float64 `json:"confidence"` // 0-100
	Importances []struct {
		Token  string  `json:"token"`
		Weight float64 `json:"weight"`
	} `json:"importances"`
}

// Classify asks the model for a verdict and word importances
func (c *OpenAIClassifier) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = c.cfg.Model
	}
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 1000
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Text,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0, // Verdicts must be reproducible
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	var verdict remoteVerdict
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &verdict); err != nil {
		return nil, fmt.Errorf("parse classifier response: %w", err)
	}

	prediction := model.PredictionLikelyReal
	if strings.EqualFold(verdict.Verdict, "fake") {
		prediction = model.PredictionLikelyFake
	}

	confidence := verdict.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	importances := make([]model.WordImportance, 0, len(verdict.Importances))
	for _, imp := range verdict.Importances {
		if imp.Token == "" {
			continue
		}
		importances = append(importances, model.WordImportance{
			Token:  imp.Token,
			Weight: imp.Weight,
		})
	}

	return &ClassifyResponse{
		Prediction:  prediction,
		Confidence:  confidence,
		Importances: importances,
		Model:       modelName,
	}, nil
}

const systemPrompt = `You classify news article text as likely fake or likely real.

Respond with a single JSON object:
{"verdict": "fake" | "real", "confidence": 0-100, "importances": [{"token": "...", "weight": signed number}]}

Rules:
- "importances" lists the words or phrases that most influenced the verdict.
- Positive weights support "real", negative weights support "fake".
- Judge language patterns and sourcing signals only; do not browse or cite external facts.`
