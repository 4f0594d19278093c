package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/constant"
	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// handleSpeedMode processes the paste-or-upload choice of speed mode.
func (b *BotService) handleSpeedMode(chatID int64, text string) {
	var err error
	switch text {
	case constant.BUTTON_TEXT_PASTE_HEADLINES:
		ctx := b.repo.Context(chatID)
		ctx.Headlines = nil
		b.repo.SetState(chatID, models.StateAwaitingSpeedHeadlines)
		err = b.messenger.RemoveKeyboard(chatID,
			"ಶೀರ್ಷಿಕೆಗಳನ್ನು ಪೇಸ್ಟ್ ಮಾಡಲು ಮುಂದಾಗಿ. ಪ್ರತಿ ಶೀರ್ಷಿಕೆಯ ನಂತರ '++...++' ಹಾಕಿ.\n\n"+
				"ನಿಮ್ಮ ಶೀರ್ಷಿಕೆಗಳನ್ನು ಪೇಸ್ಟ್ ಮಾಡಿದ ನಂತರ, 'Done' ಅಥವಾ 'Cancel' ಟೈಪ್ ಮಾಡಿ.")

	case constant.BUTTON_TEXT_UPLOAD_DOCUMENT:
		b.repo.SetState(chatID, models.StateAwaitingSpeedDocument)
		err = b.messenger.RemoveKeyboard(chatID, "ದಯವಿಟ್ಟು Word ಡಾಕ್ಯುಮೆಂಟ್ ಅಪ್ಲೋಡ್ ಮಾಡಿ (.docx ಅಥವಾ .txt ಮಾತ್ರ).")

	default:
		err = b.messenger.SendKeyboard(chatID, "⚠️ ದಯವಿಟ್ಟು ಮಾನ್ಯ ಆಯ್ಕೆಯನ್ನು ಆರಿಸಿ:", speedModeKeyboard())
	}
	if err != nil {
		logrus.WithError(err).Errorf("Failed to answer speed mode choice for chat %d", chatID)
	}
}

// handleSpeedHeadlines accumulates pasted headlines until "done" arrives,
// then generates the whole batch. Each paste reports the added and running
// totals.
func (b *BotService) handleSpeedHeadlines(chatID int64, text string) {
	ctx := b.repo.Context(chatID)

	if strings.EqualFold(text, constant.DONE_KEYWORD) {
		if len(ctx.Headlines) == 0 {
			if err := b.messenger.SendText(chatID, "ದಯವಿಟ್ಟು ಕನಿಷ್ಠ 1 ಶೀರ್ಷಿಕೆ ಸೇರಿಸಿ."); err != nil {
				logrus.WithError(err).Error("Failed to send empty-batch message")
			}
			return
		}
		msg := fmt.Sprintf("✅ %d ಶೀರ್ಷಿಕೆ(ಗಳು) ಸ್ವೀಕರಿಸಲಾಗಿದೆ.\nಮುಂದುವರೆಯಲು ದಯವಿಟ್ಟು ಕಾಯಿರಿ...", len(ctx.Headlines))
		if err := b.messenger.SendText(chatID, msg); err != nil {
			logrus.WithError(err).Error("Failed to send batch start message")
		}
		b.processHeadlines(chatID, ctx.Headlines)
		b.finishToMenu(chatID)
		return
	}

	added := splitHeadlines(text)
	ctx.Headlines = append(ctx.Headlines, added...)
	msg := fmt.Sprintf("✅ %d ಶೀರ್ಷಿಕೆ(ಗಳು) ಸೇರಿಸಲಾಗಿದೆ. (ಒಟ್ಟು: %d)\n"+
		"ಶೀರ್ಷಿಕೆಗಳನ್ನು ಪೇಸ್ಟ್ ಮಾಡುವುದನ್ನು ಮುಂದುವರಿಸಿ ಅಥವಾ 'Done' ಟೈಪ್ ಮಾಡಿ.",
		len(added), len(ctx.Headlines))
	if err := b.messenger.SendText(chatID, msg); err != nil {
		logrus.WithError(err).Error("Failed to send headline count message")
	}
}

// splitHeadlines splits pasted input on the explicit delimiter when present,
// otherwise one headline per line. Blank entries are dropped.
func splitHeadlines(input string) []string {
	var parts []string
	if strings.Contains(input, constant.HEADLINE_DELIMITER) {
		parts = strings.Split(input, constant.HEADLINE_DELIMITER)
	} else {
		parts = strings.Split(input, "\n")
	}

	headlines := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			headlines = append(headlines, trimmed)
		}
	}
	return headlines
}

// handleSpeedDocument validates and ingests an uploaded headline document.
// A missing document or a bad extension keeps the chat in the upload state;
// download or extraction trouble falls back to the mode choice.
func (b *BotService) handleSpeedDocument(chatID int64, doc *models.Document) {
	if doc == nil {
		if err := b.messenger.SendText(chatID, "⚠️ ದಯವಿಟ್ಟು ಮಾನ್ಯ ಡಾಕ್ಯುಮೆಂಟ್ ಅಪ್ಲೋಡ್ ಮಾಡಿ"); err != nil {
			logrus.WithError(err).Error("Failed to send missing-document message")
		}
		return
	}

	ext := strings.ToLower(filepath.Ext(doc.FileName))
	if !extensionAllowed(ext) {
		if err := b.messenger.SendText(chatID, fmt.Sprintf("⚠️ ಅಸಮರ್ಪಕ ಫೈಲ್ ಪ್ರಕಾರ: %s", ext)); err != nil {
			logrus.WithError(err).Error("Failed to send bad-extension message")
		}
		return
	}

	if err := b.messenger.SendText(chatID, fmt.Sprintf("📥 ಫೈಲ್ '%s' ಡೌನ್ಲೋಡ್ ಆಗುತ್ತಿದೆ...", doc.FileName)); err != nil {
		logrus.WithError(err).Error("Failed to send download message")
	}
	received := fmt.Sprintf("📄 ಫೈಲ್ ಸ್ವೀಕರಿಸಲಾಗಿದೆ:\nಹೆಸರು: %s\nಗಾತ್ರ: %s\nಪ್ರಕ್ರಿಯೆಗೊಳಿಸಲಾಗುತ್ತಿದೆ...",
		doc.FileName, formatSize(doc.FileSize))
	if err := b.messenger.SendText(chatID, received); err != nil {
		logrus.WithError(err).Error("Failed to send received message")
	}

	destPath := b.files.UploadPath(doc.FileName)
	if err := b.messenger.DownloadFile(doc.FileID, destPath); err != nil {
		logrus.WithError(err).Errorf("Document download failed for chat %d", chatID)
		b.documentFailure(chatID)
		return
	}
	defer b.files.Remove(destPath)

	content, err := ExtractDocumentText(destPath)
	if err != nil {
		logrus.WithError(err).Errorf("Document extraction failed for chat %d", chatID)
		b.documentFailure(chatID)
		return
	}
	if strings.TrimSpace(content) == "" {
		if err = b.messenger.SendText(chatID, "⚠️ ಡಾಕ್ಯುಮೆಂಟ್ ಖಾಲಿ ಇದೆ"); err != nil {
			logrus.WithError(err).Error("Failed to send empty-document message")
		}
		b.backToSpeedMode(chatID)
		return
	}

	headlines := splitHeadlines(content)
	if err = b.messenger.SendText(chatID,
		fmt.Sprintf("✅ %d ಹೆಡ್ಲೈನ್ಗಳು ಸ್ವೀಕರಿಸಲ್ಪಟ್ಟಿವೆ\nಮುಂದುವರೆಯಲು ದಯವಿಟ್ಟು ಕಾಯಿರಿ...", len(headlines))); err != nil {
		logrus.WithError(err).Error("Failed to send headlines received message")
	}
	b.processHeadlines(chatID, headlines)
	b.finishToMenu(chatID)
}

// documentFailure apologizes and returns the chat to the mode choice.
func (b *BotService) documentFailure(chatID int64) {
	if err := b.messenger.SendText(chatID, "⚠️ ದೋಷ ಸಂಭವಿಸಿದೆ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ"); err != nil {
		logrus.WithError(err).Error("Failed to send document failure message")
	}
	b.backToSpeedMode(chatID)
}

func (b *BotService) backToSpeedMode(chatID int64) {
	b.repo.SetState(chatID, models.StateAwaitingSpeedMode)
	if err := b.messenger.SendKeyboard(chatID, "ಪಠ್ಯ ಪೇಸ್ಟ್ ಅಥವಾ ಡಾಕ್ಯುಮೆಂಟ್ ಅಪ್ಲೋಡ್ ಆಯ್ಕೆಮಾಡಿ:", speedModeKeyboard()); err != nil {
		logrus.WithError(err).Error("Failed to re-show speed mode keyboard")
	}
}

// processHeadlines generates one anchor script per headline and delivers the
// batch as a single file.
func (b *BotService) processHeadlines(chatID int64, headlines []string) {
	b.messenger.SendTyping(chatID)

	scripts := make([]string, 0, len(headlines))
	for _, headline := range headlines {
		category := DetectCategory("", headline)
		script := b.writer.Generate(SpeedAVPrompt(headline, category))
		if script == "" {
			script = constant.MSG_HEADLINE_FAILED
		}
		scripts = append(scripts, script)
	}

	artifact, err := b.files.AssembleSpeedBatch(chatID, scripts)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to assemble speed batch for chat %d", chatID)
		if sendErr := b.messenger.SendText(chatID, "ಕ್ಷಮಿಸಿ, ಸ್ಕ್ರಿಪ್ಟ್ ರಚನೆಯಲ್ಲಿ ದೋಷ ಸಂಭವಿಸಿದೆ."); sendErr != nil {
			logrus.WithError(sendErr).Error("Failed to send speed failure message")
		}
		return
	}
	b.deliver(chatID, artifact)
}

func extensionAllowed(ext string) bool {
	for _, allowed := range constant.AllowedDocumentExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// formatSize renders a byte count in the nearest binary unit.
func formatSize(sizeBytes int64) string {
	switch {
	case sizeBytes < 1024:
		return fmt.Sprintf("%d B", sizeBytes)
	case sizeBytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(sizeBytes)/1024)
	case sizeBytes < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(sizeBytes)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", float64(sizeBytes)/(1024*1024*1024))
	}
}
