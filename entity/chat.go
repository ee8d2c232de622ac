package entity

import (
	"PharmaCS/internal/lib/validate"
	"net/http"
)

// Intent is the classified purpose of a single user message.
type Intent string

const (
	IntentOrderStatus    Intent = "order_status"
	IntentProductCompare Intent = "product_compare"
	IntentProductSearch  Intent = "product_search"
	IntentGreeting       Intent = "greeting"
	IntentGeneralInfo    Intent = "general_info"
)

// ChatTurn is one incoming chat request. ConversationID is generated by the
// widget once per session and reused for every turn; it is treated as opaque.
type ChatTurn struct {
	UserID         string `json:"userId,omitempty" validate:"omitempty"`
	Message        string `json:"message" validate:"required,min=1"`
	ConversationID string `json:"conversationId" validate:"omitempty"`
}

func (t *ChatTurn) Bind(_ *http.Request) error {
	return validate.Struct(t)
}

type ChatResponse struct {
	Message        string    `json:"message"`
	Products       []Product `json:"products"`
	Intent         Intent    `json:"intent"`
	ConversationID string    `json:"conversationId"`
}
