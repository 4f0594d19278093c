package service

import (
	"fmt"
	"strings"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// Prompt construction is pure string assembly: every function here is
// side-effect free and fully determined by its arguments.

// WordsPerMinute is the assumed Kannada anchor speaking rate used to turn a
// duration into a word budget.
const WordsPerMinute = 150

// CalculateContentNeeds maps a segment duration in minutes to the word
// budget, section count and detail label the prompt templates interpolate.
// The breakpoints are deliberately kept as tuned in production: <=2 minutes
// is a brief two-section piece, <=5 moderate with three, <=10 detailed with
// four, anything longer comprehensive with max(5, duration/3) sections.
func CalculateContentNeeds(durationMinutes int) models.ContentNeeds {
	needs := models.ContentNeeds{TotalWords: durationMinutes * WordsPerMinute}

	switch {
	case durationMinutes <= 2:
		needs.Sections, needs.Detail = 2, "brief"
	case durationMinutes <= 5:
		needs.Sections, needs.Detail = 3, "moderate"
	case durationMinutes <= 10:
		needs.Sections, needs.Detail = 4, "detailed"
	default:
		needs.Sections = durationMinutes / 3
		if needs.Sections < 5 {
			needs.Sections = 5
		}
		needs.Detail = "comprehensive"
	}
	return needs
}

// AVPrompt asks for one continuous anchor-style paragraph for the given
// category and content, with no sentence-by-sentence breaks.
func AVPrompt(category, contentText string) string {
	return fmt.Sprintf(`
%s ವಿಭಾಗಕ್ಕೆ ಸಂಬಂಧಿಸಿದಂತೆ, ಕೆಳಗಿನ ಮಾಹಿತಿಯನ್ನು ಆಧರಿಸಿ ಒಂದು ಶಕ್ತಿಯುತವಾದ, ಶುದ್ಧ ಕನ್ನಡದಲ್ಲಿ ಬರೆಯಲ್ಪಟ್ಟ ಎಐ ಆಧಾರಿತ ಶೀರ್ಷಿಕೆ ರೂಪಿಸಿ.

ಇದರ ಆವೃತ್ತಿ ಟಿವಿ ನ್ಯೂಸ್ ಎಂಕರ್ ಉಚ್ಚಾರಣೆಗೆ ಅನುಗುಣವಾಗಿ, ಒಂದು ಹೂರಣದಂತೆ ಇರಲಿ. ಅಂದರೆ, ಬೇರೆ ಬೇರೆ ವಾಕ್ಯಗಳ ಬದಲು ನಿರಂತರವಾಗಿ ಓದಬಹುದಾದ, ತೀವ್ರ ಶೈಲಿಯ ಒಂದು ಪ್ಯಾರಾಗ್ರಾಫ್ ಆಗಿರಬೇಕು.

ವಿಷಯ:
%s

ಇದನ್ನು ಒಂದು ಶಕ್ತಿಯುತ ಕನ್ನಡ ಪ್ಯಾರಾಗ್ರಾಫ್ ರೂಪದಲ್ಲಿ ಬರೆಯಿರಿ.
`, category, contentText)
}

// PackagePrompt asks for the structured four-section package script
// (anchor intro / background / full report / closing).
func PackagePrompt(category, contentText string) string {
	return fmt.Sprintf(`
ನೀವು ಕನ್ನಡದ ಹಿರಿಯ ಸುದ್ದಿ ವರದಿಗಾರರಾಗಿದ್ದು, ಈ ಸುದ್ದಿ '%s' ವರ್ಗಕ್ಕೆ ಸೇರಿದ ವರದಿ. ಕೆಳಗಿನ ಮಾಹಿತಿಯ ಆಧಾರದ ಮೇಲೆ ಸಂಪೂರ್ಣ ಪ್ಯಾಕೇಜ್ ಸ್ಕ್ರಿಪ್ಟ್ (PKG Script) ಸಿದ್ಧಪಡಿಸಿ.

ಸ್ಕ್ರಿಪ್ಟ್ ಫಾರ್ಮಾಟ್ ಈ ರೀತಿ ಇರಲಿ:

📦 ಪ್ಯಾಕೇಜ್ ಸ್ಕ್ರಿಪ್ಟ್ (PKG Script)

Headline:
"<ಮುಖ್ಯ ಶೀರ್ಷಿಕೆ>"

Script:

🎙 ಆಂಕರ್ ಇಂಟ್ರೋ:
<ಗಮನ ಸೆಳೆಯುವ ಆರಂಭ, ವಿಷಯ ಪರಿಚಯ, ಸುದ್ದಿ ಸದ್ಯ ಎಷ್ಟು ಮಹತ್ವದ್ದಾಗಿದೆ ಎಂಬ ಬಿಂಬ>

🎙 ಹಿನ್ನೆಲೆ:
<ಈ ವಿಷಯದ ಹಿಂದಿನ ಹಿನ್ನೆಲೆ, ಈ ಹಿಂದೆ ಏನು ನಡೆದಿದೆ, ಸಂಬಂಧಿತ ಘಟನೆಗಳು>

🎙 ವರದಿ:
<ಪೂರ್ಣ ವಿಷಯ ವಿವರಣೆ, ಘಟನೆಯ ವಿಷಯಗಳು, ತೀವ್ರತೆ, ಸ್ಥಳೀಯರ ಪ್ರತಿಕ್ರಿಯೆ>

🎙 ಮುಕ್ತಾಯ:
<ಅಧಿಕಾರಿಗಳ ಸ್ಪಂದನೆ ಸಾಧ್ಯತೆ, ಮುಂದಿನ ನಡೆಯ ಬಗ್ಗೆ ಪ್ರಶ್ನಾತ್ಮಕ ಮುಕ್ತಾಯ>

ವಿಷಯ:
%s
`, category, contentText)
}

// SpeedAVPrompt asks for a 60-90 second single-paragraph AV script for one
// headline: 4-5 sentences, pure Kannada, one quoted statement.
func SpeedAVPrompt(contentText, category string) string {
	return fmt.Sprintf(`
ನೀವು ಕನ್ನಡ ವಾರ್ತಾ ಆಂಕರ್. ಈ ಕೆಳಗಿನ '%s' ವಿಷಯಕ್ಕಾಗಿ 60-90 ಸೆಕೆಂಡುಗಳ AV ಸ್ಕ್ರಿಪ್ಟ್ ರಚಿಸಿ:

ನಿಯಮಗಳು:
1. 1 ಪ್ಯಾರಾಗ್ರಾಫ್ ಮಾತ್ರ (4-5 ವಾಕ್ಯಗಳು)
2. ಪ್ರತಿ ಶೀರ್ಷಿಕೆಗೆ ಸ್ವತಂತ್ರ ಸ್ಕ್ರಿಪ್ಟ್
3. ಸ್ಥಳ, ಘಟನೆ, ಪ್ರಮುಖ ವಿವರಗಳು, ಒಂದು ಉಲ್ಲೇಖಿತ ಹೇಳಿಕೆ ಸೇರಿಸಿ
4. ಶುದ್ಧ ಕನ್ನಡ, ಯಾವುದೇ ಇಂಗ್ಲಿಷ್ ಪದಗಳಿಲ್ಲ
5. TV ಶೈಲಿಯಲ್ಲಿ ಸರಳ ಮತ್ತು ಸ್ಪಷ್ಟವಾಗಿ

ವಿಷಯ:
%s
`, category, contentText)
}

// EnhancedSegmentPrompt builds the duration/topic-type driven segment prompt:
// factual topics are pinned to the supplied web results, general topics get
// free rein, and the duration controls word budget and structure.
func EnhancedSegmentPrompt(topic string, duration int, topicType string, needs models.ContentNeeds, webResults string) string {
	var contentGuidance string
	if topicType == "factual" {
		webBlock := webResults
		if webBlock == "" {
			webBlock = "ವೆಬ್ ಮಾಹಿತಿ ಲಭ್ಯವಿಲ್ಲ - ಸಾಮಾನ್ಯ ಮಾಹಿತಿ ಮಾತ್ರ ನೀಡಿ"
		}
		contentGuidance = fmt.Sprintf(`
📊 ವಿಷಯ ಪ್ರಕಾರ: ಸತ್ಯ-ಪರಿಶೀಲನೆ ಅಗತ್ಯ (ಸದ್ಯದ ಸುದ್ದಿ)

⚠️ ಮಹತ್ವದ ನಿಯಮಗಳು:
• ಕೇವಲ ಕೆಳಗಿನ ವೆಬ್ ಸರ್ಚ್ ಮಾಹಿತಿಯನ್ನು ಮಾತ್ರ ಬಳಸಿ
• "ವರದಿಗಳ ಪ್ರಕಾರ", "ಮೂಲಗಳ ಪ್ರಕಾರ" ಎಂಬ ಪದಗಳನ್ನು ಬಳಸಿ
• ದಿನಾಂಕಗಳು ಮತ್ತು ಅಂಕಿಅಂಶಗಳನ್ನು ಸೇರಿಸಿ

🔍 ವೆಬ್ ಸರ್ಚ್ ಮಾಹಿತಿ:
%s
`, webBlock)
	} else {
		webBlock := webResults
		if webBlock == "" {
			webBlock = "ನಿಮ್ಮ ಜ್ಞಾನ ಆಧಾರದಲ್ಲಿ ಸಂಪೂರ್ಣ ಸೆಗ್ಮೆಂಟ್ ರಚಿಸಿ"
		}
		contentGuidance = fmt.Sprintf(`
📚 ವಿಷಯ ಪ್ರಕಾರ: ಸಾಮಾನ್ಯ ಜ್ಞಾನ/ಶಿಕ್ಷಣ/ಮನರಂಜನೆ

✅ ನಿಮಗೆ ಸಂಪೂರ್ಣ ಸ್ವಾತಂತ್ರ್ಯ:
• ನಿಮ್ಮ ಸಂಪೂರ್ಣ ಜ್ಞಾನವನ್ನು ಬಳಸಿ
• ವಿಸ್ತೃತ ವಿವರಣೆಗಳು, ಉದಾಹರಣೆಗಳು, ಕಥೆಗಳನ್ನು ಸೇರಿಸಿ
• ಐತಿಹಾಸಿಕ ಸಂದರ್ಭ, ವೈಜ್ಞಾನಿಕ ವಿವರಣೆಗಳನ್ನು ನೀಡಿ
• ಆಸಕ್ತಿದಾಯಕ ಮತ್ತು ಶಿಕ್ಷಣಾತ್ಮಕವಾಗಿ ಮಾಡಿ

💡 ಹೆಚ್ಚುವರಿ ಮಾಹಿತಿ:
%s
`, webBlock)
	}

	var durationGuide string
	switch {
	case duration <= 2:
		durationGuide = "• ಸಂಕ್ಷಿಪ್ತ ಆದರೆ ಪೂರ್ಣ ಮಾಹಿತಿ"
	case duration <= 5:
		durationGuide = "• ಮಧ್ಯಮ ವಿವರಣೆ ಮತ್ತು ಉದಾಹರಣೆಗಳು"
	case duration <= 10:
		durationGuide = "• ವಿವರವಾದ ವಿವರಣೆ, ಬಹು ಉದಾಹರಣೆಗಳು"
	default:
		durationGuide = "• ಸಮಗ್ರ ವಿವರಣೆ, ಇತಿಹಾಸ, ಸಂದರ್ಭ, ಅನುಷಂಗಿಕ ವಿಷಯಗಳು"
	}

	return fmt.Sprintf(`
ನೀವು ಅನುಭವಿ ಕನ್ನಡ ಟಿವಿ ಹೋಸ್ಟ್ ಮತ್ತು ಶಿಕ್ಷಣ ತಜ್ಞ. "%s" ವಿಷಯದ ಬಗ್ಗೆ ನಿಖರವಾಗಿ %d ನಿಮಿಷಗಳ ಟಿವಿ ಸೆಗ್ಮೆಂಟ್ ರಚಿಸಿ.

%s

📏 ಅವಧಿ ಅವಶ್ಯಕತೆಗಳು:
• ನಿಖರವಾಗಿ %d ನಿಮಿಷಗಳ ಓದುವ ಸಮಯ (ಸುಮಾರು %d ಪದಗಳು)
• %d ಮುಖ್ಯ ವಿಭಾಗಗಳಲ್ಲಿ ವಿಂಗಡಿಸಿ
%s

🎯 ಸೆಗ್ಮೆಂಟ್ ರಚನೆ:
1. ಆಕರ್ಷಕ ಪರಿಚಯ (ಪ್ರೇಕ್ಷಕರ ಗಮನ ಸೆಳೆಯಿರಿ)
2. ಮುಖ್ಯ ವಿಷಯ ವಿವರಣೆ
3. ಉದಾಹರಣೆಗಳು ಮತ್ತು ವಿವರಗಳು (%s ಮಟ್ಟದಲ್ಲಿ)
4. ಪ್ರಭಾವಶಾಲಿ ಮುಕ್ತಾಯ

📝 ಭಾಷಾ ಮಾರ್ಗದರ್ಶನ:
• ಶುದ್ಧ ಕನ್ನಡ, ಸರಳ ಮತ್ತು ಸ್ಪಷ್ಟ
• ಟಿವಿ ಪ್ರೇಕ್ಷಕರಿಗೆ ಸೂಕ್ತ ಶೈಲಿ
• ಪ್ರತಿ ಪ್ಯಾರಾಗ್ರಾಫ್ 30-40 ಸೆಕೆಂಡುಗಳ ಓದುವ ಸಮಯ

⚠️ ಮುಖ್ಯ: ಸೆಗ್ಮೆಂಟ್ ಓದಲು ನಿಖರವಾಗಿ %d ನಿಮಿಷಗಳು ಬೇಕಾಗಬೇಕು. ತುಂಬಾ ಚಿಕ್ಕದಾಗಿರಬಾರದು!
`, topic, duration, contentGuidance, duration, needs.TotalWords, needs.Sections, durationGuide, needs.Detail, duration)
}

// InteractiveSegmentPrompt builds the fully customized prompt from the five
// collected answers plus duration. Per-answer guidance blocks are chosen by
// substring match against the stored preference strings, so keyboard labels
// can carry emoji without affecting selection.
func InteractiveSegmentPrompt(prefs models.SegmentPreferences, webResults string) string {
	totalWords := prefs.Duration * WordsPerMinute

	contentStrategy := fmt.Sprintf(`
🎯 ಕಸ್ಟಮೈಜ್ಡ್ ಸೆಗ್ಮೆಂಟ್ ಸೃಷ್ಟಿ
━━━━━━━━━━━━━━━━━━━━━━━━

👤 ಯೂಸರ್ ಆಯ್ಕೆಗಳು:
• ವಿಷಯ ಪ್ರಕಾರ: %s
• ಮಾಹಿತಿ ಮೂಲ: %s
• ವಿವರ ಮಟ್ಟ: %s
• ಪ್ರಸ್ತುತಿ ಶೈಲಿ: %s
• ವಿಷಯ ಸಮೃದ್ಧಿ: %s
`, prefs.ContentType, prefs.InfoSource, prefs.DetailLevel, prefs.PresentationStyle, prefs.ContentRichness)

	if webResults != "" && strings.Contains(prefs.InfoSource, "ವೆಬ್ ಸರ್ಚ್") {
		contentStrategy += fmt.Sprintf(`
🔍 ವೆಬ್ ಸರ್ಚ್ ಫಲಿತಾಂಶಗಳು:
%s

⚠️ ಮೇಲಿನ ವೆಬ್ ಮಾಹಿತಿಯನ್ನು ಬಳಸಿ ಮತ್ತು ಯೂಸರ್ ಆಯ್ಕೆಗಳಿಗೆ ಅನುಗುಣವಾಗಿ ಬರೆಯಿರಿ.
`, webResults)
	}

	var depthInstructions string
	switch {
	case strings.Contains(prefs.DetailLevel, "ಸಂಕ್ಷಿಪ್ತ"):
		depthInstructions = "• ಮುಖ್ಯ ಅಂಶಗಳನ್ನು ಮಾತ್ರ ಒಳಗೊಳ್ಳಿ, ಸಂಕ್ಷಿಪ್ತವಾಗಿ ಬರೆಯಿರಿ"
	case strings.Contains(prefs.DetailLevel, "ಮಧ್ಯಮ"):
		depthInstructions = "• ಮುಖ್ಯ ಅಂಶಗಳು + ಕೆಲವು ಉದಾಹರಣೆಗಳನ್ನು ಸೇರಿಸಿ"
	case strings.Contains(prefs.DetailLevel, "ವಿಸ್ತೃತ"):
		depthInstructions = "• ವಿವರವಾದ ವಿವರಣೆ, ಬಹು ಉದಾಹರಣೆಗಳು, ಸಂದರ್ಭ ಮಾಹಿತಿ ಸೇರಿಸಿ"
	default: // ಸಮಗ್ರ
		depthInstructions = "• ಸಂಪೂರ್ಣ ವಿವರಣೆ, ಇತಿಹಾಸ, ಉದಾಹರಣೆಗಳು, ಕಥೆಗಳು, ಸಂಬಂಧಿತ ವಿಷಯಗಳು"
	}

	var styleInstructions string
	switch {
	case strings.Contains(prefs.PresentationStyle, "ಟಿವಿ ನ್ಯೂಸ್"):
		styleInstructions = "• ಟಿವಿ ಆಂಕರ್ ಶೈಲಿ, ಔಪಚಾರಿಕ ಟೋನ್, ಸುದ್ದಿ ಫಾರ್ಮ್ಯಾಟ್"
	case strings.Contains(prefs.PresentationStyle, "ರೇಡಿಯೋ"):
		styleInstructions = "• ರೇಡಿಯೋ ಶೈಲಿ, ವರ್ಣನಾತ್ಮಕ ಭಾಷೆ, ಆಡಿಯೋ-ಫ್ರೆಂಡ್ಲಿ"
	case strings.Contains(prefs.PresentationStyle, "ಶೈಕ್ಷಣಿಕ"):
		styleInstructions = "• ಶಿಕ್ಷಕರ ಶೈಲಿ, ವಿವರಣಾತ್ಮಕ, ಸರಳ ಭಾಷೆ"
	default: // ಸಂಭಾಷಣಾ
		styleInstructions = "• ಸ್ನೇಹಪರ ಟೋನ್, ಸಂವಾದಾತ್ಮಕ, ಪ್ರಶ್ನೆಗಳನ್ನು ಸೇರಿಸಿ"
	}

	var richnessInstructions string
	switch {
	case strings.Contains(prefs.ContentRichness, "ಮುಖ್ಯ ವಿಷಯ ಮಾತ್ರ"):
		richnessInstructions = "• ಮೂಲ ವಿಷಯಕ್ಕೆ ಸೀಮಿತವಾಗಿರಿ"
	case strings.Contains(prefs.ContentRichness, "ಉದಾಹರಣೆಗಳೊಂದಿಗೆ"):
		richnessInstructions = "• ಪ್ರತಿ ಪಾಯಿಂಟ್‌ಗೆ ಉದಾಹರಣೆಗಳನ್ನು ಸೇರಿಸಿ"
	case strings.Contains(prefs.ContentRichness, "ಕಥೆಗಳು"):
		richnessInstructions = "• ಆಸಕ್ತಿದಾಯಕ ಕಥೆಗಳು, ಉದಾಹರಣೆಗಳು, ವೈಯಕ್ತಿಕ ಅನುಭವಗಳನ್ನು ಸೇರಿಸಿ"
	default: // ಸಂವಾದಾತ್ಮಕ
		richnessInstructions = "• ಪ್ರೇಕ್ಷಕರೊಂದಿಗೆ ಸಂವಾದ, ಪ್ರಶ್ನೆಗಳು, ಕ್ರಿಯಾಶೀಲ ಭಾಗವಹಿಸುವಿಕೆ"
	}

	return fmt.Sprintf(`
ನೀವು ಅನುಭವಿ ಕನ್ನಡ ಮಾಧ್ಯಮ ವ್ಯಕ್ತಿತ್ವ. "%s" ವಿಷಯದ ಬಗ್ಗೆ ನಿಖರವಾಗಿ %d ನಿಮಿಷಗಳ ಸೆಗ್ಮೆಂಟ್ ರಚಿಸಿ.

%s

📋 ವಿಷಯ ನಿರ್ದೇಶನಗಳು:
%s
%s
%s

📏 ನಿಖರ ಅವಶ್ಯಕತೆಗಳು:
• ಅವಧಿ: ನಿಖರವಾಗಿ %d ನಿಮಿಷಗಳು (ಸುಮಾರು %d ಪದಗಳು)
• ಭಾಷೆ: ಶುದ್ಧ ಕನ್ನಡ, ಸರಳ ಮತ್ತು ಸ್ಪಷ್ಟ
• ರಚನೆ: ಆಕರ್ಷಕ ಪರಿಚಯ → ಮುಖ್ಯ ವಿಷಯ → ಪ್ರಭಾವಶಾಲಿ ಮುಕ್ತಾಯ

⚠️ ಮುಖ್ಯ: ಟೆಂಪ್ಲೇಟ್ ಅಥವಾ ಸೂಚನೆಗಳನ್ನು ಬರೆಯಬೇಡಿ. ಪೂರ್ಣ ಸ್ಕ್ರಿಪ್ಟ್ ಮಾತ್ರ ಬರೆಯಿರಿ.

ಈಗ ಯೂಸರ್ ಆಯ್ಕೆಗಳ ಪ್ರಕಾರ ಸಂಪೂರ್ಣ %d-ನಿಮಿಷದ ಸೆಗ್ಮೆಂಟ್ ಬರೆಯಿರಿ:
`, prefs.Topic, prefs.Duration, contentStrategy, depthInstructions, styleInstructions, richnessInstructions, prefs.Duration, totalWords, prefs.Duration)
}
