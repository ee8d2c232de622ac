package chat

import (
	"PharmaCS/entity"
	"context"
)

type Core interface {
	Chat(ctx context.Context, turn entity.ChatTurn) *entity.ChatResponse
}
