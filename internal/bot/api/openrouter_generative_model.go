package api

import (
	"fmt"

	"github.com/sirupsen/logrus"
	openrouterapigo "github.com/wojtess/openrouter-api-go"
)

// OpenRouterAPI wraps the OpenRouter chat-completions backend, which fronts
// many hosted models behind one API.
type OpenRouterAPI struct {
	client    *openrouterapigo.OpenRouterClient // Client for interacting with the API
	modelName string                            // Generative model version
}

// NewOpenRouterAPI creates a new OpenRouterAPI instance.
func NewOpenRouterAPI(apiKey string, modelName string) (*OpenRouterAPI, error) {
	client := openrouterapigo.NewOpenRouterClient(apiKey)

	return &OpenRouterAPI{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateTextMsg sends the prompt to OpenRouter and returns the generated text.
func (o *OpenRouterAPI) GenerateTextMsg(text string) (string, error) {
	chatReq := openrouterapigo.Request{
		Model: o.modelName,
		Messages: []openrouterapigo.MessageRequest{
			{Role: openrouterapigo.RoleUser, Content: openrouterapigo.TextContent(text)},
		},
	}

	resp, err := o.client.FetchChatCompletions(chatReq)
	if err != nil {
		err = fmt.Errorf("failed to create request: %w", err)
		logrus.WithError(err).Errorf("Error creating %s request", o.modelName)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from model %s", o.modelName)
	}

	return resp.Choices[0].Message.Content, nil
}
