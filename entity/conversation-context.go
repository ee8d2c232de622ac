package entity

import "time"

// TurnContext is the stored snapshot of a single exchange.
type TurnContext struct {
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Intent      Intent    `json:"intent"`
	Timestamp   time.Time `json:"timestamp"`
}

// ConversationContext is upserted per turn, keyed by conversation id.
// Last write wins; there is no history array.
type ConversationContext struct {
	ConversationID string      `json:"conversationId"`
	Context        TurnContext `json:"context"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
