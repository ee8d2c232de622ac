package core

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/sl"
	"PharmaCS/internal/service/intent"
	"context"
	"log/slog"
	"time"
)

const persistTimeout = 5 * time.Second

// Chat runs one turn: classify the message, gather catalog or order context
// the intent calls for, compose the reply, then persist the turn without
// gating the response on it. Every internal failure degrades; Chat always
// produces a response.
func (c *Core) Chat(ctx context.Context, turn entity.ChatTurn) *entity.ChatResponse {
	label := intent.Classify(turn.Message)

	products := []entity.Product{}
	if label == entity.IntentProductSearch || label == entity.IntentProductCompare {
		products = c.searchProducts(ctx, turn.Message)
	}

	var order *entity.Order
	if label == entity.IntentOrderStatus && turn.UserID != "" {
		order = c.resolveOrder(ctx, turn.UserID, turn.Message)
	}

	reply := c.composeReply(ctx, turn.Message, label, products, order)

	c.persistTurn(turn, label, reply)

	c.log.With(
		slog.String("intent", string(label)),
		slog.Int("products", len(products)),
		slog.String("conversation_id", turn.ConversationID),
	).Debug("chat turn")

	return &entity.ChatResponse{
		Message:        reply,
		Products:       products,
		Intent:         label,
		ConversationID: turn.ConversationID,
	}
}

// persistTurn saves the conversation context in a detached goroutine. The
// write is best effort: failures are logged and otherwise ignored, and the
// response never waits for it.
func (c *Core) persistTurn(turn entity.ChatTurn, label entity.Intent, reply string) {
	if c.store == nil || turn.ConversationID == "" {
		return
	}

	now := time.Now()
	cc := entity.ConversationContext{
		ConversationID: turn.ConversationID,
		Context: entity.TurnContext{
			UserMessage: turn.Message,
			BotResponse: reply,
			Intent:      label,
			Timestamp:   now,
		},
		UpdatedAt: now,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := c.store.Save(ctx, cc); err != nil {
			c.log.With(
				slog.String("conversation_id", cc.ConversationID),
				sl.Err(err),
			).Error("save conversation context")
		}
	}()
}
