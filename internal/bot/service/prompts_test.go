package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

func TestCalculateContentNeeds(t *testing.T) {
	tests := []struct {
		duration int
		want     models.ContentNeeds
	}{
		{1, models.ContentNeeds{TotalWords: 150, Sections: 2, Detail: "brief"}},
		{2, models.ContentNeeds{TotalWords: 300, Sections: 2, Detail: "brief"}},
		{3, models.ContentNeeds{TotalWords: 450, Sections: 3, Detail: "moderate"}},
		{5, models.ContentNeeds{TotalWords: 750, Sections: 3, Detail: "moderate"}},
		{7, models.ContentNeeds{TotalWords: 1050, Sections: 4, Detail: "detailed"}},
		{10, models.ContentNeeds{TotalWords: 1500, Sections: 4, Detail: "detailed"}},
		{11, models.ContentNeeds{TotalWords: 1650, Sections: 5, Detail: "comprehensive"}},
		{15, models.ContentNeeds{TotalWords: 2250, Sections: 5, Detail: "comprehensive"}},
		{21, models.ContentNeeds{TotalWords: 3150, Sections: 7, Detail: "comprehensive"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d min", tt.duration), func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateContentNeeds(tt.duration))
		})
	}
}

func TestAVPromptContainsCategoryAndContent(t *testing.T) {
	prompt := AVPrompt("politics", "ಸಚಿವ ಸಂಪುಟ ವಿಸ್ತರಣೆ")
	assert.Contains(t, prompt, "politics")
	assert.Contains(t, prompt, "ಸಚಿವ ಸಂಪುಟ ವಿಸ್ತರಣೆ")
}

func TestPackagePromptStructure(t *testing.T) {
	prompt := PackagePrompt("crime", "ದರೋಡೆ ಪ್ರಕರಣ")
	assert.Contains(t, prompt, "'crime'")
	assert.Contains(t, prompt, "ಆಂಕರ್ ಇಂಟ್ರೋ")
	assert.Contains(t, prompt, "ಹಿನ್ನೆಲೆ")
	assert.Contains(t, prompt, "ಮುಕ್ತಾಯ")
	assert.Contains(t, prompt, "ದರೋಡೆ ಪ್ರಕರಣ")
}

func TestSpeedAVPrompt(t *testing.T) {
	prompt := SpeedAVPrompt("ಮಳೆ ಹಾನಿ ವರದಿ", "general")
	assert.Contains(t, prompt, "60-90")
	assert.Contains(t, prompt, "general")
	assert.Contains(t, prompt, "ಮಳೆ ಹಾನಿ ವರದಿ")
}

func TestEnhancedSegmentPromptFactualWithResults(t *testing.T) {
	needs := CalculateContentNeeds(5)
	prompt := EnhancedSegmentPrompt("ಚುನಾವಣೆ", 5, "factual", needs, "Title: x\nSnippet: y\nSource: z")

	assert.Contains(t, prompt, "ಸತ್ಯ-ಪರಿಶೀಲನೆ ಅಗತ್ಯ")
	assert.Contains(t, prompt, "Title: x")
	assert.Contains(t, prompt, "750 ಪದಗಳು")
	assert.Contains(t, prompt, "3 ಮುಖ್ಯ ವಿಭಾಗ")
	assert.NotContains(t, prompt, "ವೆಬ್ ಮಾಹಿತಿ ಲಭ್ಯವಿಲ್ಲ")
}

func TestEnhancedSegmentPromptFactualWithoutResults(t *testing.T) {
	needs := CalculateContentNeeds(2)
	prompt := EnhancedSegmentPrompt("ಚುನಾವಣೆ", 2, "factual", needs, "")
	assert.Contains(t, prompt, "ವೆಬ್ ಮಾಹಿತಿ ಲಭ್ಯವಿಲ್ಲ")
}

func TestEnhancedSegmentPromptGeneral(t *testing.T) {
	needs := CalculateContentNeeds(12)
	prompt := EnhancedSegmentPrompt("ಯೋಗ", 12, "general", needs, "")

	assert.Contains(t, prompt, "ಸಾಮಾನ್ಯ ಜ್ಞಾನ/ಶಿಕ್ಷಣ/ಮನರಂಜನೆ")
	assert.Contains(t, prompt, "ನಿಮ್ಮ ಜ್ಞಾನ ಆಧಾರದಲ್ಲಿ ಸಂಪೂರ್ಣ ಸೆಗ್ಮೆಂಟ್ ರಚಿಸಿ")
	assert.Contains(t, prompt, "1800 ಪದಗಳು")
}

func TestInteractiveSegmentPromptReflectsChoices(t *testing.T) {
	prefs := models.SegmentPreferences{
		Topic:             "ಮೈಸೂರು ದಸರಾ",
		ContentType:       "🎭 ಮನರಂಜನೆ/ಸಂಸ್ಕೃತಿ",
		InfoSource:        "🧠 ಕೇವಲ AI ಜ್ಞಾನ",
		DetailLevel:       "📖 ವಿಸ್ತೃತ ವಿವರಣೆ",
		PresentationStyle: "🎙️ ರೇಡಿಯೋ ಶೈಲಿ",
		ContentRichness:   "🌟 ಕಥೆಗಳು + ಉದಾಹರಣೆಗಳು",
		Duration:          5,
	}
	prompt := InteractiveSegmentPrompt(prefs, "")

	assert.Contains(t, prompt, `"ಮೈಸೂರು ದಸರಾ"`)
	assert.Contains(t, prompt, "750 ಪದಗಳು")
	assert.Contains(t, prompt, "ವಿವರವಾದ ವಿವರಣೆ, ಬಹು ಉದಾಹರಣೆಗಳು, ಸಂದರ್ಭ ಮಾಹಿತಿ ಸೇರಿಸಿ")
	assert.Contains(t, prompt, "ರೇಡಿಯೋ ಶೈಲಿ, ವರ್ಣನಾತ್ಮಕ ಭಾಷೆ")
	assert.Contains(t, prompt, "ಆಸಕ್ತಿದಾಯಕ ಕಥೆಗಳು")
}

func TestInteractiveSegmentPromptWebBlockOnlyForWebSource(t *testing.T) {
	prefs := models.SegmentPreferences{
		Topic:      "ಚುನಾವಣೆ",
		InfoSource: "🔍 ವೆಬ್ ಸರ್ಚ್ + AI ಜ್ಞಾನ",
		Duration:   3,
	}
	withWeb := InteractiveSegmentPrompt(prefs, "Title: a")
	assert.Contains(t, withWeb, "ವೆಬ್ ಸರ್ಚ್ ಫಲಿತಾಂಶಗಳು")
	assert.Contains(t, withWeb, "Title: a")

	prefs.InfoSource = "🧠 ಕೇವಲ AI ಜ್ಞಾನ"
	withoutWeb := InteractiveSegmentPrompt(prefs, "Title: a")
	assert.False(t, strings.Contains(withoutWeb, "ವೆಬ್ ಸರ್ಚ್ ಫಲಿತಾಂಶಗಳು"),
		"web block must be omitted when the user did not pick web search")
}
