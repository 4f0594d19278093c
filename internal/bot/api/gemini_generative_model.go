package api

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiAPI wraps the Gemini text-generation backend.
type GeminiAPI struct {
	client *genai.Client          // Client for interacting with the API
	model  *genai.GenerativeModel // Model used for content generation
	apiKey string                 // API key (kept for re-initialization)
}

// NewGeminiAPI creates a new GeminiAPI instance. Safety filtering is disabled
// across all harm categories: legitimate news content (crime, accidents,
// politics) routinely trips the default thresholds.
func NewGeminiAPI(apiKey string, modelName string) (*GeminiAPI, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}

	return &GeminiAPI{
		client: client,
		model:  model,
		apiKey: apiKey,
	}, nil
}

// GenerateTextMsg sends the prompt to Gemini and returns the generated text.
// Long segment scripts can take a while, hence the generous timeout.
func (g *GeminiAPI) GenerateTextMsg(text string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		err = fmt.Errorf("failed to create request: %w", err)
		logrus.WithError(err).Error("Error creating Gemini request")
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini API")
	}
	if respText, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		return string(respText), nil
	}
	return "", fmt.Errorf("unexpected part type in Gemini response")
}
