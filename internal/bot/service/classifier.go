package service

import (
	"strings"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/constant"
)

// categoryRule pairs a topic tag with the keywords that select it. The rules
// form an ordered list, not a map: several rows' keywords co-occur in real
// news text and first-match-wins must stay deterministic.
type categoryRule struct {
	tag      string
	keywords []string
}

var categoryRules = []categoryRule{
	{"politics", []string{"ರಾಜಕೀಯ", "ಸಿಎಂ", "ಪಕ್ಷ"}},
	{"accidents", []string{"ಅಪಘಾತ", "ಸಾವು", "ಗಾಯ"}},
	{"crime", []string{"ಕೊಲೆ", "ಅಪರಾಧ", "ಪೊಲೀಸ್"}},
	{"cinema", []string{"ಸಿನಿಮಾ", "ನಟ", "ಚಿತ್ರ"}},
	{"infrastructure", []string{"ನೀರು", "ರಸ್ತೆ", "ಆಸ್ಪತ್ರೆ"}},
	{"culture", []string{"ಹಬ್ಬ", "ಸಂಭ್ರಮ", "ಕಾರ್ಯಕ್ರಮ"}},
	{"spiritual", []string{"ಧಾರ್ಮಿಕ", "ಪೂಜೆ", "ಆಧ್ಯಾತ್ಮಿಕ"}},
	{"health", []string{"ಆರೋಗ್ಯ", "ಹಾಸ್ಪಟಲ್"}},
	{"business", []string{"ಬ್ಯಾಂಕ್", "ಹೂಡಿಕೆ"}},
}

// DetectCategory returns the user-supplied category verbatim (whitespace
// trimmed) when one is given, otherwise scans the content for the first rule
// whose keyword appears as a substring. Content matching no rule is "general".
func DetectCategory(userCategory, contentText string) string {
	if trimmed := strings.TrimSpace(userCategory); trimmed != "" {
		return trimmed
	}

	textLower := strings.ToLower(contentText)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(textLower, keyword) {
				return rule.tag
			}
		}
	}
	return "general"
}

// factualKeywords mark topics that need current information rather than
// general knowledge.
var factualKeywords = []string{
	"ಸದ್ಯದ", "ಇತ್ತೀಚಿನ", "ಇಂದಿನ", "ಈಗಿನ", "ಪ್ರಸ್ತುತ", "ಸುದ್ದಿ",
	"ರಾಜಕೀಯ", "ಸರ್ಕಾರ", "ಚುನಾವಣೆ", "ಸಿಎಂ", "ಪ್ರಧಾನಿ", "ಪಕ್ಷ",
	"ಘಟನೆ", "ಕ್ರೀಡಾ ಸುದ್ದಿ", "ಪಂದ್ಯ ಫಲಿತಾಂಶ", "ಮುಖ್ಯಮಂತ್ರಿ",
}

// ClassifyTopicType reports whether a segment topic needs fact-checking
// against current sources ("factual") or can rely on general model knowledge
// ("general").
func ClassifyTopicType(topic string) string {
	topicLower := strings.ToLower(topic)
	for _, keyword := range factualKeywords {
		if strings.Contains(topicLower, keyword) {
			return "factual"
		}
	}
	return "general"
}

// IsCancel reports whether the message is one of the recognized cancel
// keywords, compared case-insensitively after trimming.
func IsCancel(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, keyword := range constant.CancelKeywords {
		if normalized == strings.ToLower(keyword) {
			return true
		}
	}
	return false
}
