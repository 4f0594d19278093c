package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// handleNewsContent runs the full-script pipeline for one pasted news item:
// detect the category, generate the anchor paragraph and the package script,
// assemble both into one export file and deliver it. The flow always ends
// back at the main menu.
func (b *BotService) handleNewsContent(chatID int64, contentText string) {
	b.messenger.SendTyping(chatID)

	category := DetectCategory("", contentText)
	avContent := b.writer.Generate(AVPrompt(category, contentText))
	pkgContent := b.writer.Generate(PackagePrompt(category, contentText))

	artifact, err := b.files.AssembleNewsScript(chatID, "News Script", category, avContent, pkgContent)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to assemble news script for chat %d", chatID)
		if sendErr := b.messenger.SendText(chatID, "ಕ್ಷಮಿಸಿ, ಸ್ಕ್ರಿಪ್ಟ್ ರಚನೆಯಲ್ಲಿ ದೋಷ ಸಂಭವಿಸಿದೆ."); sendErr != nil {
			logrus.WithError(sendErr).Error("Failed to send news failure message")
		}
		b.finishToMenu(chatID)
		return
	}

	if err = b.messenger.SendText(chatID, fmt.Sprintf("✅ Category: %s\nಫೈಲ್ ಕಳುಹಿಸಲಾಗುತ್ತಿದೆ...", category)); err != nil {
		logrus.WithError(err).Error("Failed to send category message")
	}
	b.deliver(chatID, artifact)
	b.finishToMenu(chatID)
}

// deliver sends a generated artifact as a document and removes the file
// afterwards. A failed send keeps the file on disk for inspection.
func (b *BotService) deliver(chatID int64, artifact models.GeneratedArtifact) {
	if err := b.messenger.SendDocument(chatID, artifact.Path, artifact.Caption); err != nil {
		logrus.WithError(err).Errorf("Failed to deliver %s to chat %d", artifact.Filename, chatID)
		return
	}
	b.files.Remove(artifact.Path)
}

// finishToMenu closes out a flow: context is discarded and the main menu is
// shown again.
func (b *BotService) finishToMenu(chatID int64) {
	b.repo.Reset(chatID)
	b.showMainMenu(chatID)
}
