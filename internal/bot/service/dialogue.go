package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/constant"
	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// HandleMessage routes one incoming message through the state machine.
// The /start command and the cancel keywords are handled before state
// dispatch so they work from anywhere; a panic inside a handler resets the
// chat to the main menu so one conversation can never wedge.
func (b *BotService) HandleMessage(chatID int64, text string, doc *models.Document) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Recovered from panic handling chat %d: %v", chatID, r)
			if err := b.messenger.SendText(chatID, "⚠️ ತಾಂತ್ರಿಕ ಸಮಸ್ಯೆ ಸಂಭವಿಸಿದೆ. ದಯವಿಟ್ಟು ಕೆಲವು ನಿಮಿಷಗಳ ನಂತರ ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ."); err != nil {
				logrus.WithError(err).Error("Failed to send panic apology")
			}
			b.repo.Reset(chatID)
			b.showMainMenu(chatID)
		}
	}()

	trimmed := strings.TrimSpace(text)

	if trimmed == "/start" {
		b.repo.Reset(chatID)
		b.showMainMenu(chatID)
		return
	}

	state := b.repo.State(chatID)

	if state != models.StateMainMenu && IsCancel(trimmed) {
		if err := b.messenger.RemoveKeyboard(chatID, "ಪ್ರಕ್ರಿಯೆ ರದ್ದುಪಡಿಸಲಾಗಿದೆ."); err != nil {
			logrus.WithError(err).Error("Failed to send cancel confirmation")
		}
		b.repo.Reset(chatID)
		b.showMainMenu(chatID)
		return
	}

	switch state {
	case models.StateMainMenu:
		b.handleMenuChoice(chatID, trimmed)
	case models.StateAwaitingNewsContent:
		b.handleNewsContent(chatID, trimmed)
	case models.StateAwaitingSpeedMode:
		b.handleSpeedMode(chatID, trimmed)
	case models.StateAwaitingSpeedHeadlines:
		b.handleSpeedHeadlines(chatID, trimmed)
	case models.StateAwaitingSpeedDocument:
		b.handleSpeedDocument(chatID, doc)
	case models.StateAwaitingSegmentTopic:
		b.handleSegmentTopic(chatID, trimmed)
	case models.StateAwaitingSegmentAnswer1:
		b.handleSegmentAnswer1(chatID, trimmed)
	case models.StateAwaitingSegmentAnswer2:
		b.handleSegmentAnswer2(chatID, trimmed)
	case models.StateAwaitingSegmentAnswer3:
		b.handleSegmentAnswer3(chatID, trimmed)
	case models.StateAwaitingSegmentAnswer4:
		b.handleSegmentAnswer4(chatID, trimmed)
	case models.StateAwaitingSegmentAnswer5:
		b.handleSegmentAnswer5(chatID, trimmed)
	case models.StateAwaitingSegmentDuration:
		b.handleSegmentDuration(chatID, trimmed)
	default:
		logrus.Errorf("Chat %d in unknown state %q, resetting", chatID, state)
		b.repo.Reset(chatID)
		b.showMainMenu(chatID)
	}
}

// handleMenuChoice dispatches one of the four main menu options. Matching is
// case-insensitive on the trimmed label so retyped choices still work.
func (b *BotService) handleMenuChoice(chatID int64, text string) {
	choice := strings.ToLower(text)
	logrus.Infof("Menu choice %q from chat %d", text, chatID)

	var err error
	switch choice {
	case strings.ToLower(constant.MENU_NEWS):
		b.repo.SetState(chatID, models.StateAwaitingNewsContent)
		err = b.messenger.RemoveKeyboard(chatID,
			"📝 ಸುದ್ದಿ ಸ್ಕ್ರಿಪ್ಟ್ ಮೋಡ್ ಆಯ್ಕೆಮಾಡಲಾಗಿದೆ\n"+
				"ದಯವಿಟ್ಟು ಸುದ್ದಿಯ ಪಠ್ಯವನ್ನು ನಮೂದಿಸಿ:")

	case strings.ToLower(constant.MENU_SPEED50):
		b.repo.SetState(chatID, models.StateAwaitingSpeedMode)
		err = b.messenger.SendKeyboard(chatID,
			"⚡ Speed 50 ಮೋಡ್ ಆಯ್ಕೆಮಾಡಲಾಗಿದೆ\n"+
				"ಪಠ್ಯ ಪೇಸ್ಟ್ ಅಥವಾ ಡಾಕ್ಯುಮೆಂಟ್ ಅಪ್ಲೋಡ್ ಆಯ್ಕೆಮಾಡಿ:",
			speedModeKeyboard())

	case strings.ToLower(constant.MENU_SEGMENT):
		b.repo.SetState(chatID, models.StateAwaitingSegmentTopic)
		err = b.messenger.RemoveKeyboard(chatID,
			"🎬 ಕಸ್ಟಮ್ ಸೆಗ್ಮೆಂಟ್ ಮೋಡ್ ಆಯ್ಕೆಮಾಡಲಾಗಿದೆ\n"+
				"ದಯವಿಟ್ಟು ಸೆಗ್ಮೆಂಟ್ ವಿಷಯವನ್ನು ನಮೂದಿಸಿ:")

	case strings.ToLower(constant.MENU_STOP), strings.ToLower(constant.BUTTON_TEXT_ABORT):
		err = b.messenger.RemoveKeyboard(chatID,
			"❌ ಕಾರ್ಯಾಚರಣೆ ರದ್ದುಗೊಳಿಸಲಾಗಿದೆ\n"+
				"ಮುಖ್ಯ ಮೆನುಗೆ ಮರಳಲು /start ಒತ್ತಿರಿ")

	default:
		err = b.messenger.RemoveKeyboard(chatID, "⚠️ ತಪ್ಪಾದ ಆಯ್ಕೆ! ದಯವಿಟ್ಟು ಕೆಳಗಿನ ಮೆನು ಆಯ್ಕೆಗಳಲ್ಲಿ ಒಂದನ್ನು ಆರಿಸಿ:")
		b.showMainMenu(chatID)
	}
	if err != nil {
		logrus.WithError(err).Errorf("Failed to answer menu choice for chat %d", chatID)
	}
}
