package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// handleSegmentTopic stores the segment topic and opens the five-question
// interview.
func (b *BotService) handleSegmentTopic(chatID int64, topic string) {
	if topic == "" {
		if err := b.messenger.SendText(chatID, "ದಯವಿಟ್ಟು ಮಾನ್ಯ ವಿಷಯವನ್ನು ನಮೂದಿಸಿ."); err != nil {
			logrus.WithError(err).Error("Failed to send empty-topic message")
		}
		return
	}

	b.repo.Context(chatID).Topic = topic
	b.repo.SetState(chatID, models.StateAwaitingSegmentAnswer1)
	msg := fmt.Sprintf("✅ ವಿಷಯ: '%s'\n\n❓ ಪ್ರಶ್ನೆ 1/5: ಈ ವಿಷಯವು ಯಾವ ಪ್ರಕಾರದ್ದು?", topic)
	if err := b.messenger.SendKeyboard(chatID, msg, segmentQ1Keyboard()); err != nil {
		logrus.WithError(err).Error("Failed to send question 1")
	}
}

func (b *BotService) handleSegmentAnswer1(chatID int64, choice string) {
	b.repo.Context(chatID).ContentType = choice
	b.repo.SetState(chatID, models.StateAwaitingSegmentAnswer2)
	if err := b.messenger.SendKeyboard(chatID, "❓ ಪ್ರಶ್ನೆ 2/5: ಮಾಹಿತಿ ಮೂಲ ಆಯ್ಕೆಮಾಡಿ:", segmentQ2Keyboard()); err != nil {
		logrus.WithError(err).Error("Failed to send question 2")
	}
}

func (b *BotService) handleSegmentAnswer2(chatID int64, choice string) {
	b.repo.Context(chatID).InfoSource = choice
	b.repo.SetState(chatID, models.StateAwaitingSegmentAnswer3)
	if err := b.messenger.SendKeyboard(chatID, "❓ ಪ್ರಶ್ನೆ 3/5: ವಿಷಯದ ವಿವರ ಮಟ್ಟ ಆಯ್ಕೆಮಾಡಿ:", segmentQ3Keyboard()); err != nil {
		logrus.WithError(err).Error("Failed to send question 3")
	}
}

func (b *BotService) handleSegmentAnswer3(chatID int64, choice string) {
	b.repo.Context(chatID).DetailLevel = choice
	b.repo.SetState(chatID, models.StateAwaitingSegmentAnswer4)
	if err := b.messenger.SendKeyboard(chatID, "❓ ಪ್ರಶ್ನೆ 4/5: ಪ್ರಸ್ತುತಿ ಶೈಲಿ ಆಯ್ಕೆಮಾಡಿ:", segmentQ4Keyboard()); err != nil {
		logrus.WithError(err).Error("Failed to send question 4")
	}
}

func (b *BotService) handleSegmentAnswer4(chatID int64, choice string) {
	b.repo.Context(chatID).PresentationStyle = choice
	b.repo.SetState(chatID, models.StateAwaitingSegmentAnswer5)
	if err := b.messenger.SendKeyboard(chatID, "❓ ಪ್ರಶ್ನೆ 5/5: ವಿಷಯ ಸಮೃದ್ಧಿ ಆಯ್ಕೆಮಾಡಿ:", segmentQ5Keyboard()); err != nil {
		logrus.WithError(err).Error("Failed to send question 5")
	}
}

// handleSegmentAnswer5 stores the last preference, echoes the full recap and
// asks for the duration.
func (b *BotService) handleSegmentAnswer5(chatID int64, choice string) {
	ctx := b.repo.Context(chatID)
	ctx.ContentRichness = choice
	b.repo.SetState(chatID, models.StateAwaitingSegmentDuration)

	recap := fmt.Sprintf(`
✅ ನಿಮ್ಮ ಆಯ್ಕೆಗಳು:
━━━━━━━━━━━━━━━━━
📌 ವಿಷಯ: %s
🎯 ಪ್ರಕಾರ: %s
🔍 ಮೂಲ: %s
📋 ವಿವರ: %s
🎙️ ಶೈಲಿ: %s
🌟 ಸಮೃದ್ಧಿ: %s
`, ctx.Topic, ctx.ContentType, ctx.InfoSource, ctx.DetailLevel, ctx.PresentationStyle, ctx.ContentRichness)
	if err := b.messenger.SendText(chatID, recap); err != nil {
		logrus.WithError(err).Error("Failed to send recap")
	}

	if err := b.messenger.SendKeyboard(chatID,
		"⏱️ ಅಂತಿಮ ಪ್ರಶ್ನೆ: ಸೆಗ್ಮೆಂಟ್ ಅವಧಿ ಆಯ್ಕೆಮಾಡಿ (ನಿಮಿಷಗಳಲ್ಲಿ):",
		segmentDurationKeyboard()); err != nil {
		logrus.WithError(err).Error("Failed to send duration keyboard")
	}
}

// handleSegmentDuration validates the duration and, when valid, immediately
// runs segment generation in the same turn.
func (b *BotService) handleSegmentDuration(chatID int64, text string) {
	duration, err := strconv.Atoi(text)
	if err != nil || duration <= 0 {
		if sendErr := b.messenger.SendText(chatID, "⚠️ ದಯವಿಟ್ಟು ಮಾನ್ಯ ಸಂಖ್ಯೆಯನ್ನು ನಮೂದಿಸಿ (ಉದಾಹರಣೆ: 2, 5, 10)"); sendErr != nil {
			logrus.WithError(sendErr).Error("Failed to send invalid-duration message")
		}
		return
	}

	b.repo.Context(chatID).Duration = duration
	b.repo.SetState(chatID, models.StateProcessingSegment)
	msg := fmt.Sprintf("✅ ಅವಧಿ: %d ನಿಮಿಷಗಳು\n\n"+
		"🔄 ನಿಮ್ಮ ಕಸ್ಟಮ್ ಸೆಗ್ಮೆಂಟ್ ಅನ್ನು ರಚಿಸಲಾಗುತ್ತಿದೆ...\n"+
		"ದಯವಿಟ್ಟು ಕೆಲವು ಸೆಕೆಂಡುಗಳು ಕಾಯಿರಿ.", duration)
	if err = b.messenger.RemoveKeyboard(chatID, msg); err != nil {
		logrus.WithError(err).Error("Failed to send processing message")
	}

	b.processSegment(chatID)
}

// processSegment synthesizes the collected preferences into a prompt, runs
// generation with optional web grounding and delivers the finished segment.
// When the user delegated the source choice the prompt strategy is picked by
// classifying the topic itself.
func (b *BotService) processSegment(chatID int64) {
	ctx := b.repo.Context(chatID)
	prefs := models.SegmentPreferences{
		Topic:             ctx.Topic,
		ContentType:       ctx.ContentType,
		InfoSource:        ctx.InfoSource,
		DetailLevel:       ctx.DetailLevel,
		PresentationStyle: ctx.PresentationStyle,
		ContentRichness:   ctx.ContentRichness,
		Duration:          ctx.Duration,
	}

	b.messenger.SendTyping(chatID)

	var webResults string
	shouldSearch := strings.Contains(prefs.ContentType, "ಇತ್ತೀಚಿನ ಸುದ್ದಿ") ||
		strings.Contains(prefs.InfoSource, "ವೆಬ್ ಸರ್ಚ್")
	if shouldSearch && b.search != nil {
		logrus.Infof("Performing web search for topic %q", prefs.Topic)
		webResults = b.search.Search(prefs.Topic)
	}

	var prompt string
	if strings.Contains(prefs.InfoSource, "ನೀವೇ ನಿರ್ಧರಿಸಿ") {
		topicType := ClassifyTopicType(prefs.Topic)
		if topicType == "factual" && webResults == "" && b.search != nil {
			logrus.Infof("Performing web search for factual topic %q", prefs.Topic)
			webResults = b.search.Search(prefs.Topic)
		}
		needs := CalculateContentNeeds(prefs.Duration)
		prompt = EnhancedSegmentPrompt(prefs.Topic, prefs.Duration, topicType, needs, webResults)
	} else {
		prompt = InteractiveSegmentPrompt(prefs, webResults)
	}

	script := b.writer.Generate(prompt)
	category := DetectCategory("", prefs.Topic)

	sources := "AI ಜ್ಞಾನ + ಯೂಸರ್ ಪ್ರಿಫರೆನ್ಸ್"
	if webResults != "" {
		sources = "ವೆಬ್ ಸರ್ಚ್ + AI ಕಸ್ಟಮೈಜೇಶನ್"
	}

	details := fmt.Sprintf("✅ ಸೆಗ್ಮೆಂಟ್ ಯಶಸ್ವಿಯಾಗಿ ರಚಿಸಲಾಗಿದೆ!\n\n"+
		"📊 ವಿವರಗಳು:\n"+
		"• ವಿಷಯ: %s\n"+
		"• ಅವಧಿ: %d ನಿಮಿಷಗಳು\n"+
		"• ವರ್ಗ: %s\n"+
		"• ಮೂಲಗಳು: %s",
		prefs.Topic, prefs.Duration, category, sources)
	if err := b.messenger.SendText(chatID, details); err != nil {
		logrus.WithError(err).Error("Failed to send segment details")
	}

	artifact, err := b.files.AssembleSegment(prefs, script)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to assemble segment for chat %d", chatID)
		if sendErr := b.messenger.SendText(chatID, "⚠️ ಸೆಗ್ಮೆಂಟ್ ಪ್ರಕ್ರಿಯೆ ವಿಫಲವಾಗಿದೆ"); sendErr != nil {
			logrus.WithError(sendErr).Error("Failed to send segment failure message")
		}
		b.finishToMenu(chatID)
		return
	}
	b.deliver(chatID, artifact)
	b.finishToMenu(chatID)
}
