// Package service implements the bot's dialogue state machine and the
// script generation pipeline behind it: category detection, prompt
// construction, web grounding and output file assembly.
package service

import (
	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/constant"
	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// Messenger defines the transport surface the state machine talks to. It is
// intentionally narrow so dialogue logic stays independent of the Telegram
// client types.
type Messenger interface {
	SendText(chatID int64, text string) error
	SendKeyboard(chatID int64, text string, rows [][]string) error
	RemoveKeyboard(chatID int64, text string) error
	SendTyping(chatID int64)
	SendDocument(chatID int64, path, caption string) error
	DownloadFile(fileID, destPath string) error
}

// ConversationRepository defines the interface for per-chat dialogue state
// persistence.
type ConversationRepository interface {
	State(chatID int64) models.ConversationState
	SetState(chatID int64, state models.ConversationState)
	Context(chatID int64) *models.ConversationContext
	Reset(chatID int64)
}

// Searcher retrieves web grounding snippets for a topic. Implementations
// return "" when nothing was found or the lookup failed.
type Searcher interface {
	Search(topic string) string
}

// BotService is the dialogue state machine: it routes every incoming message
// by the chat's current state and drives the generation pipeline.
type BotService struct {
	messenger Messenger
	repo      ConversationRepository
	writer    *ScriptWriter
	search    Searcher // nil when web search is disabled
	files     *FileManager
}

// NewBotService creates a BotService with the specified dependencies. The
// searcher may be nil to run without web grounding.
func NewBotService(messenger Messenger, repo ConversationRepository, writer *ScriptWriter, search Searcher, files *FileManager) *BotService {
	return &BotService{
		messenger: messenger,
		repo:      repo,
		writer:    writer,
		search:    search,
		files:     files,
	}
}

// showMainMenu presents the four top-level options and is the landing point
// of every completed or aborted flow.
func (b *BotService) showMainMenu(chatID int64) {
	rows := [][]string{
		{constant.MENU_NEWS},
		{constant.MENU_SPEED50},
		{constant.MENU_SEGMENT},
		{constant.MENU_STOP},
	}
	err := b.messenger.SendKeyboard(chatID,
		"ನಮಸ್ಕಾರ! ದಯವಿಟ್ಟು ನಿಮ್ಮ ಆಯ್ಕೆಮಾಡಿ:\n\n"+
			"1. ಸುದ್ದಿ ಸ್ಕ್ರಿಪ್ಟ್ ರಚನೆ\n"+
			"2. ಸ್ಪೀಡ್ 50 ತ್ವರಿತ ಸುದ್ದಿ\n"+
			"3. ಕಸ್ಟಮ್ ವಿಷಯ ಸೆಗ್ಮೆಂಟ್\n"+
			"4. ಬಾಟ್ ನಿಲ್ಲಿಸಿ",
		rows)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to show main menu to chat %d", chatID)
	}
}

// speedModeKeyboard offers the paste-or-upload choice of speed mode.
func speedModeKeyboard() [][]string {
	return [][]string{
		{constant.BUTTON_TEXT_PASTE_HEADLINES, constant.BUTTON_TEXT_UPLOAD_DOCUMENT},
		{constant.BUTTON_TEXT_ABORT},
	}
}

// The five segment question keyboards. Stored answers keep the emoji label
// verbatim; downstream prompt selection matches by substring.
func segmentQ1Keyboard() [][]string {
	return [][]string{
		{"📰 ಇತ್ತೀಚಿನ ಸುದ್ದಿ/ಘಟನೆಗಳು"},
		{"📚 ಸಾಮಾನ್ಯ ಜ್ಞಾನ/ಶಿಕ್ಷಣ"},
		{"🎭 ಮನರಂಜನೆ/ಸಂಸ್ಕೃತಿ"},
		{constant.BUTTON_TEXT_CANCEL},
	}
}

func segmentQ2Keyboard() [][]string {
	return [][]string{
		{"🔍 ವೆಬ್ ಸರ್ಚ್ + AI ಜ್ಞಾನ"},
		{"🧠 ಕೇವಲ AI ಜ್ಞಾನ"},
		{"🎯 ನೀವೇ ನಿರ್ಧರಿಸಿ"},
		{constant.BUTTON_TEXT_CANCEL},
	}
}

func segmentQ3Keyboard() [][]string {
	return [][]string{
		{"📊 ಸಂಕ್ಷಿಪ್ತ ಮಾಹಿತಿ"},
		{"📋 ಮಧ್ಯಮ ವಿವರಣೆ"},
		{"📖 ವಿಸ್ತೃತ ವಿವರಣೆ"},
		{"🎓 ಸಮಗ್ರ ಸ್ಕ್ರಿಪ್ಟ್"},
		{constant.BUTTON_TEXT_CANCEL},
	}
}

func segmentQ4Keyboard() [][]string {
	return [][]string{
		{"📺 ಟಿವಿ ನ್ಯೂಸ್ ಶೈಲಿ"},
		{"🎙️ ರೇಡಿಯೋ ಶೈಲಿ"},
		{"📖 ಶೈಕ್ಷಣಿಕ ಶೈಲಿ"},
		{"💬 ಸಂಭಾಷಣಾ ಶೈಲಿ"},
		{constant.BUTTON_TEXT_CANCEL},
	}
}

func segmentQ5Keyboard() [][]string {
	return [][]string{
		{"🎯 ಮುಖ್ಯ ವಿಷಯ ಮಾತ್ರ"},
		{"📝 ಉದಾಹರಣೆಗಳೊಂದಿಗೆ"},
		{"🌟 ಕಥೆಗಳು + ಉದಾಹರಣೆಗಳು"},
		{"🎭 ಸಂವಾದಾತ್ಮಕ ವಿಷಯ"},
		{constant.BUTTON_TEXT_CANCEL},
	}
}

func segmentDurationKeyboard() [][]string {
	return [][]string{
		{"2", "3", "5"},
		{"7", "10", "15"},
		{constant.BUTTON_TEXT_CANCEL},
	}
}
