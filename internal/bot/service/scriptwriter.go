package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/constant"
)

// GenerativeModel defines the interface for the external text-generation
// backend (Gemini, DeepSeek or OpenRouter).
type GenerativeModel interface {
	GenerateTextMsg(text string) (string, error)
}

// ScriptWriter wraps a generative backend so that callers always receive a
// string: backend failures are translated into localized fallback messages
// and never propagate as errors. Callers can therefore treat the result
// uniformly as content.
type ScriptWriter struct {
	generative GenerativeModel
}

// NewScriptWriter creates a ScriptWriter over the given backend.
func NewScriptWriter(generative GenerativeModel) *ScriptWriter {
	return &ScriptWriter{generative: generative}
}

// Generate sends the prompt to the backend and returns generated text, or a
// localized apology classified by the failure's error message: "quota" means
// the API limit was hit, "invalid" a bad request, anything else a transient
// service problem.
func (w *ScriptWriter) Generate(prompt string) string {
	text, err := w.generative.GenerateTextMsg(prompt)
	if err != nil {
		logrus.WithError(err).Error("Generative backend request failed")
		errText := strings.ToLower(err.Error())
		switch {
		case strings.Contains(errText, "quota"):
			return constant.MSG_QUOTA_EXCEEDED
		case strings.Contains(errText, "invalid"):
			return constant.MSG_INVALID_REQUEST
		default:
			return constant.MSG_SERVICE_TROUBLE
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return constant.MSG_EMPTY_RESPONSE
	}
	return text
}
