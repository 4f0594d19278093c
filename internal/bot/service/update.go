package service

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// UpdateProcessing handles one incoming Telegram update. Only plain messages
// are of interest; the attached document, if any, is converted to the
// transport-free form before the state machine sees it.
func (b *BotService) UpdateProcessing(update *tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := update.Message.Text
	logrus.Infof("Message [%s] from %s (chat %d)", text, update.Message.From.UserName, chatID)

	var doc *models.Document
	if update.Message.Document != nil {
		doc = &models.Document{
			FileID:   update.Message.Document.FileID,
			FileName: update.Message.Document.FileName,
			FileSize: int64(update.Message.Document.FileSize),
		}
	}

	b.HandleMessage(chatID, text, doc)
}
