package api

import (
	"fmt"
	"io"
	"net/http"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// TelegramMessenger adapts the Telegram Bot API to the narrow messenger
// surface the dialogue state machine talks to: send text, send a keyboard,
// send a file with caption, download an uploaded file.
type TelegramMessenger struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramMessenger creates a messenger backed by the given bot instance.
func NewTelegramMessenger(bot *tgbotapi.BotAPI) *TelegramMessenger {
	return &TelegramMessenger{bot: bot}
}

// SendText sends a plain text message to the chat.
func (t *TelegramMessenger) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		logrus.WithError(err).Errorf("Failed to send message to chat %d", chatID)
		return err
	}
	return nil
}

// SendKeyboard sends a message with a one-time reply keyboard built from the
// given button rows.
func (t *TelegramMessenger) SendKeyboard(chatID int64, text string, rows [][]string) error {
	keyboardRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		keyboardRows = append(keyboardRows, tgbotapi.NewKeyboardButtonRow(buttons...))
	}
	markup := tgbotapi.NewReplyKeyboard(keyboardRows...)
	markup.ResizeKeyboard = true
	markup.OneTimeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	if _, err := t.bot.Send(msg); err != nil {
		logrus.WithError(err).Errorf("Failed to send keyboard to chat %d", chatID)
		return err
	}
	return nil
}

// RemoveKeyboard sends a text message that also hides any open reply keyboard.
func (t *TelegramMessenger) RemoveKeyboard(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if _, err := t.bot.Send(msg); err != nil {
		logrus.WithError(err).Errorf("Failed to send message to chat %d", chatID)
		return err
	}
	return nil
}

// SendTyping shows the "typing..." chat action; failures are only logged
// since the action is cosmetic.
func (t *TelegramMessenger) SendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := t.bot.Request(action); err != nil {
		logrus.WithError(err).Debugf("Failed to send chat action to chat %d", chatID)
	}
}

// SendDocument uploads the file at path as a document with the given caption.
func (t *TelegramMessenger) SendDocument(chatID int64, path, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	if _, err := t.bot.Send(doc); err != nil {
		logrus.WithError(err).Errorf("Failed to send document to chat %d", chatID)
		return err
	}
	return nil
}

// DownloadFile fetches an uploaded file by its Telegram file ID and writes it
// to destPath.
func (t *TelegramMessenger) DownloadFile(fileID, destPath string) error {
	file, err := t.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return fmt.Errorf("failed to resolve file %s: %w", fileID, err)
	}

	resp, err := http.Get(file.Link(t.bot.Token))
	if err != nil {
		return fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			logrus.WithError(err).Error("Failed to close download body")
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d downloading file %s", resp.StatusCode, fileID)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer func() {
		if err = out.Close(); err != nil {
			logrus.WithError(err).Errorf("Failed to close file: %v", err)
		}
	}()

	if _, err = io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return nil
}
