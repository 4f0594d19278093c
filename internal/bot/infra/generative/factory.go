package generative

import (
	"fmt"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/api"
	botServ "github.com/prajwalhegde/NewsScriptBot/internal/bot/service"
)

// generativeCreator defines a function to create a GenerativeModel
type generativeCreator func(apiKey, modelName string) (botServ.GenerativeModel, error)

// generativeRegistry stores registered implementations
var generativeRegistry = map[string]generativeCreator{
	"gemini": func(apiKey, modelName string) (botServ.GenerativeModel, error) {
		return api.NewGeminiAPI(apiKey, modelName)
	},
	"deepseek": func(apiKey, modelName string) (botServ.GenerativeModel, error) {
		return api.NewDeepSeekAPI(apiKey, modelName)
	},
	"openrouter": func(apiKey, modelName string) (botServ.GenerativeModel, error) {
		return api.NewOpenRouterAPI(apiKey, modelName)
	},
}

// ModelFactory creates a GenerativeModel implementation based on an environment variable
func ModelFactory(generativeName, apiKey, modelName string) (botServ.GenerativeModel, error) {
	creator, exists := generativeRegistry[generativeName]
	if !exists {
		return nil, fmt.Errorf("unsupported GENERATIVE_NAME: %s (expected 'gemini', 'deepseek' or 'openrouter')", generativeName)
	}
	return creator(apiKey, modelName)
}
