package core

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/sl"
	"context"
	"log/slog"
	"regexp"

	"github.com/google/uuid"
)

var orderIdPattern = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// resolveOrder finds the order a status question refers to: an order id
// embedded in the message wins, otherwise the user's most recent order.
// Ownership is enforced in the query, so a lookup never crosses users.
// Any failure resolves to nil.
func (c *Core) resolveOrder(ctx context.Context, userID, message string) *entity.Order {
	if c.orders == nil {
		return nil
	}

	if raw := orderIdPattern.FindString(message); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil
		}

		order, err := c.orders.GetOrderForUser(ctx, id.String(), userID)
		if err != nil {
			c.log.With(
				slog.String("order_id", id.String()),
				sl.Err(err),
			).Error("order lookup")
			return nil
		}
		return order
	}

	order, err := c.orders.LatestOrderForUser(ctx, userID)
	if err != nil {
		c.log.With(sl.Err(err)).Error("latest order lookup")
		return nil
	}
	return order
}
