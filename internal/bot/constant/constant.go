// Package constant holds the fixed vocabulary of the bot: menu labels,
// keyboard options, cancel keywords, localized fallback messages and the
// allow-list of trusted news domains.
package constant

const (
	MENU_NEWS    = "📝 ಸುದ್ದಿ ಸ್ಕ್ರಿಪ್ಟ್ ಪ್ರಾರಂಭಿಸಿ"
	MENU_SPEED50 = "⚡ ಸ್ಪೀಡ್ 50 (ತ್ವರಿತ ಸುದ್ದಿ)"
	MENU_SEGMENT = "🎬 ಕಸ್ಟಮ್ ಸೆಗ್ಮೆಂಟ್"
	MENU_STOP    = "❌ ನಿಲ್ಲಿಸಿ"

	BUTTON_TEXT_PASTE_HEADLINES = "📋 Paste Headlines"
	BUTTON_TEXT_UPLOAD_DOCUMENT = "📄 Upload Word Document"
	BUTTON_TEXT_ABORT           = "🔴 Abort & Reset"
	BUTTON_TEXT_CANCEL          = "❌ ರದ್ದುಮಾಡಿ"

	// DONE_KEYWORD finishes headline collection in speed mode.
	DONE_KEYWORD = "done"
	// HEADLINE_DELIMITER separates pasted headlines when present; otherwise
	// input is split by line.
	HEADLINE_DELIMITER = "++...++"
)

// CancelKeywords abort the current flow from any non-menu state. Matched
// case-insensitively after trimming.
var CancelKeywords = []string{
	"cancel",
	"stop",
	"❌ stop",
	BUTTON_TEXT_ABORT,
	BUTTON_TEXT_CANCEL,
	MENU_STOP,
}

// Localized fallback messages returned in place of generated content when the
// generative backend fails. Callers always receive text, never an error.
const (
	MSG_QUOTA_EXCEEDED  = "ಕ್ಷಮಿಸಿ, API ಮಿತಿ ತಲುಪಿದೆ. ದಯವಿಟ್ಟು ನಂತರ ಪ್ರಯತ್ನಿಸಿ."
	MSG_INVALID_REQUEST = "ದೋಷ: ಅಮಾನ್ಯ ವಿನಂತಿ. ದಯವಿಟ್ಟು ನಿಮ್ಮ ಇನ್ಪುಟ್ ಪರಿಶೀಲಿಸಿ."
	MSG_SERVICE_TROUBLE = "ಕ್ಷಮಿಸಿ, ಸೇವೆಯಲ್ಲಿ ತಾತ್ಕಾಲಿಕ ತೊಂದರೆ. ದಯವಿಟ್ಟು ನಂತರ ಪ್ರಯತ್ನಿಸಿ."
	MSG_EMPTY_RESPONSE  = "ಸಂಪಾದನೆ ಸಾಧ್ಯವಾಗಿಲ್ಲ."
	MSG_HEADLINE_FAILED = "⚠️ AV ಸ್ಕ್ರಿಪ್ಟ್ ತಯಾರಿಸಲು ಸಾಧ್ಯವಾಗಿಲ್ಲ."
)

// DEFAULT_CATEGORY labels content matching no classifier rule; the speed AV
// prompt also uses it as its default category ("general" in Kannada).
const DEFAULT_CATEGORY = "ಸಾಮಾನ್ಯ"

// AllowedDocumentExtensions are the only upload types accepted in speed mode.
var AllowedDocumentExtensions = []string{".txt", ".docx"}

// TrustedSources is the ordered allow-list of news domains. The first five
// bias the search query via site: filters; the full list filters results.
var TrustedSources = []string{
	"thehindu.com", "indianexpress.com", "hindustantimes.com",
	"timesofindia.indiatimes.com", "ndtv.com", "news18.com",
	"thewire.in", "scroll.in", "deccanherald.com", "telegraphindia.com",
	"livemint.com", "business-standard.com", "pib.gov.in", "prsindia.org",
	"factchecker.in", "altnews.in", "boomlive.in", "thequint.com",
	"indiatoday.in", "publictv.in", "vijaykarnataka.com",
	"kannada.asianetnews.com", "udayavani.com", "republickannada.co.in",
}
