// Package models defines the data types shared between the bot's
// repository, services and the Telegram transport layer.
package models

// ConversationState identifies where a single chat's dialogue currently sits.
// Exactly one state is active per conversation; transitions are the only
// mutation and every error path collapses back to StateMainMenu.
type ConversationState string

const (
	// StateMainMenu is the initial and fallback state showing the four menu options.
	StateMainMenu ConversationState = "main_menu"
	// StateAwaitingNewsContent waits for the body text of a news item.
	StateAwaitingNewsContent ConversationState = "awaiting_news_content"
	// StateAwaitingSpeedMode waits for the paste-or-upload choice of speed mode.
	StateAwaitingSpeedMode ConversationState = "awaiting_speed_mode"
	// StateAwaitingSpeedHeadlines accumulates pasted headlines until "done".
	StateAwaitingSpeedHeadlines ConversationState = "awaiting_speed_headlines"
	// StateAwaitingSpeedDocument waits for a .txt/.docx upload with headlines.
	StateAwaitingSpeedDocument ConversationState = "awaiting_speed_document"
	// StateAwaitingSegmentTopic waits for the custom segment topic.
	StateAwaitingSegmentTopic ConversationState = "awaiting_segment_topic"
	// StateAwaitingSegmentAnswer1..5 walk the five preference questions.
	StateAwaitingSegmentAnswer1 ConversationState = "awaiting_segment_answer_1"
	StateAwaitingSegmentAnswer2 ConversationState = "awaiting_segment_answer_2"
	StateAwaitingSegmentAnswer3 ConversationState = "awaiting_segment_answer_3"
	StateAwaitingSegmentAnswer4 ConversationState = "awaiting_segment_answer_4"
	StateAwaitingSegmentAnswer5 ConversationState = "awaiting_segment_answer_5"
	// StateAwaitingSegmentDuration waits for a positive integer of minutes.
	StateAwaitingSegmentDuration ConversationState = "awaiting_segment_duration"
	// StateProcessingSegment synthesizes preferences and generates the segment.
	StateProcessingSegment ConversationState = "processing_segment"
)

// ConversationContext is the per-chat scratch storage accumulated while a
// dialogue is in flight. It is owned exclusively by one conversation and is
// cleared whenever the state resets to StateMainMenu. A preference field is
// only ever written at its corresponding state transition, so the context
// never holds an answer for a question the user has not reached.
type ConversationContext struct {
	Topic             string   `json:"topic,omitempty"`
	ContentType       string   `json:"contentType,omitempty"`
	InfoSource        string   `json:"infoSource,omitempty"`
	DetailLevel       string   `json:"detailLevel,omitempty"`
	PresentationStyle string   `json:"presentationStyle,omitempty"`
	ContentRichness   string   `json:"contentRichness,omitempty"`
	Duration          int      `json:"duration,omitempty"`
	Headlines         []string `json:"headlines,omitempty"`
}

// Conversation couples a chat's current state with its scratch context.
type Conversation struct {
	ChatID  int64                `json:"chatID"`
	State   ConversationState    `json:"state"`
	Context *ConversationContext `json:"context"`
}

// SegmentPreferences is the finalized snapshot of the six segment choices
// plus a positive duration in minutes. It is built once all five questions
// and the duration are answered and is immutable from then on.
type SegmentPreferences struct {
	Topic             string
	ContentType       string
	InfoSource        string
	DetailLevel       string
	PresentationStyle string
	ContentRichness   string
	Duration          int
}

// ContentNeeds describes how much material a segment of a given duration
// requires: total word budget, number of sections and a detail label.
type ContentNeeds struct {
	TotalWords int
	Sections   int
	Detail     string
}

// GeneratedArtifact is a finished script file ready for delivery. The
// delivery step owns it and must remove the file after a successful send.
type GeneratedArtifact struct {
	Path     string
	Filename string
	Caption  string
}

// Document carries the metadata of an inbound Telegram file upload.
type Document struct {
	FileID   string
	FileName string
	FileSize int64
}
