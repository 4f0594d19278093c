package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCategoryUserCategoryWins(t *testing.T) {
	got := DetectCategory("  ಕ್ರೀಡೆ  ", "ಅಪಘಾತ ಸಂಭವಿಸಿದೆ")
	assert.Equal(t, "ಕ್ರೀಡೆ", got, "explicit category must pass through trimmed, keywords ignored")
}

func TestDetectCategoryKeywordRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"politics", "ಇಂದು ರಾಜಕೀಯ ಬೆಳವಣಿಗೆ", "politics"},
		{"accidents", "ರಸ್ತೆಯಲ್ಲಿ ಅಪಘಾತ ಸಂಭವಿಸಿದೆ", "accidents"},
		{"crime", "ನಗರದಲ್ಲಿ ಕೊಲೆ ಪ್ರಕರಣ", "crime"},
		{"cinema", "ಹೊಸ ಸಿನಿಮಾ ಬಿಡುಗಡೆ", "cinema"},
		{"infrastructure", "ಗ್ರಾಮದಲ್ಲಿ ನೀರು ಸಮಸ್ಯೆ", "infrastructure"},
		{"culture", "ಊರಿನ ಹಬ್ಬ ಆಚರಣೆ", "culture"},
		{"spiritual", "ದೇವಸ್ಥಾನದಲ್ಲಿ ಪೂಜೆ", "spiritual"},
		{"health", "ಆರೋಗ್ಯ ಶಿಬಿರ ನಡೆಯಿತು", "health"},
		{"business", "ಬ್ಯಾಂಕ್ ಬಡ್ಡಿದರ ಇಳಿಕೆ", "business"},
		{"no match", "ಮಳೆ ಬಂತು", "general"},
		{"empty", "", "general"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCategory("", tt.content))
		})
	}
}

func TestDetectCategoryFirstRuleWins(t *testing.T) {
	// "ಅಪಘಾತ" (accidents) and "ಪೊಲೀಸ್" (crime) co-occur; the earlier rule
	// must win regardless of keyword position in the text.
	got := DetectCategory("", "ಪೊಲೀಸ್ ತನಿಖೆ ನಡೆಸುತ್ತಿರುವ ಅಪಘಾತ ಪ್ರಕರಣ")
	assert.Equal(t, "accidents", got)
}

func TestClassifyTopicType(t *testing.T) {
	assert.Equal(t, "factual", ClassifyTopicType("ಇತ್ತೀಚಿನ ಚುನಾವಣೆ ಫಲಿತಾಂಶ"))
	assert.Equal(t, "factual", ClassifyTopicType("ಸಿಎಂ ಘೋಷಣೆ"))
	assert.Equal(t, "general", ClassifyTopicType("ಯೋಗದ ಪ್ರಯೋಜನಗಳು"))
	assert.Equal(t, "general", ClassifyTopicType(""))
}

func TestIsCancel(t *testing.T) {
	assert.True(t, IsCancel("cancel"))
	assert.True(t, IsCancel("  Stop  "))
	assert.True(t, IsCancel("❌ STOP"))
	assert.True(t, IsCancel("🔴 Abort & Reset"))
	assert.True(t, IsCancel("❌ ರದ್ದುಮಾಡಿ"))
	assert.True(t, IsCancel("❌ ನಿಲ್ಲಿಸಿ"))

	assert.False(t, IsCancel("done"))
	assert.False(t, IsCancel("ಸುದ್ದಿ"))
	assert.False(t, IsCancel(""))
}
