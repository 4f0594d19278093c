package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"
	"github.com/sirupsen/logrus"
)

// DeepSeekAPI wraps the DeepSeek chat-completions backend.
type DeepSeekAPI struct {
	client    deepseek.Client // Client for interacting with the API
	modelName string          // Generative model version
}

// NewDeepSeekAPI creates a new DeepSeekAPI instance.
func NewDeepSeekAPI(apiKey string, modelName string) (*DeepSeekAPI, error) {
	client, err := deepseek.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create DeepSeek client: %w", err)
	}

	return &DeepSeekAPI{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateTextMsg sends the prompt to DeepSeek and returns the generated text.
func (d *DeepSeekAPI) GenerateTextMsg(text string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	chatReq := &request.ChatCompletionsRequest{
		Model:  d.modelName,
		Stream: false,
		Messages: []*request.Message{
			{Role: "user", Content: text},
		},
	}

	resp, err := d.client.CallChatCompletionsChat(ctx, chatReq)
	if err != nil {
		err = fmt.Errorf("failed to create request: %w", err)
		logrus.WithError(err).Error("Error creating DeepSeek request")
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from DeepSeek API")
	}

	return resp.Choices[0].Message.Content, nil
}
