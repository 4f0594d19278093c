package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/constant"
)

type stubGenerative struct {
	resp    string
	err     error
	prompts []string
}

func (s *stubGenerative) GenerateTextMsg(text string) (string, error) {
	s.prompts = append(s.prompts, text)
	return s.resp, s.err
}

func TestGenerateReturnsTrimmedText(t *testing.T) {
	w := NewScriptWriter(&stubGenerative{resp: "  ಸ್ಕ್ರಿಪ್ಟ್ ಪಠ್ಯ  \n"})
	assert.Equal(t, "ಸ್ಕ್ರಿಪ್ಟ್ ಪಠ್ಯ", w.Generate("prompt"))
}

func TestGenerateFallbackMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"quota", errors.New("googleapi: quota exceeded for model"), constant.MSG_QUOTA_EXCEEDED},
		{"invalid", errors.New("400 INVALID_ARGUMENT: bad request"), constant.MSG_INVALID_REQUEST},
		{"other", errors.New("connection reset by peer"), constant.MSG_SERVICE_TROUBLE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewScriptWriter(&stubGenerative{err: tt.err})
			assert.Equal(t, tt.want, w.Generate("prompt"))
		})
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	w := NewScriptWriter(&stubGenerative{resp: "   "})
	assert.Equal(t, constant.MSG_EMPTY_RESPONSE, w.Generate("prompt"))
}
