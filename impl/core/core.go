package core

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/sl"
	"context"
	"log/slog"
)

type Catalog interface {
	SearchProducts(ctx context.Context, query string) ([]entity.Product, error)
}

type Orders interface {
	GetOrderForUser(ctx context.Context, orderID, userID string) (*entity.Order, error)
	LatestOrderForUser(ctx context.Context, userID string) (*entity.Order, error)
}

type Assistant interface {
	Configured() bool
	Ask(ctx context.Context, systemMsg, userMsg string) entity.ModelResult
}

type ContextStore interface {
	Save(ctx context.Context, cc entity.ConversationContext) error
}

type Core struct {
	catalog Catalog
	orders  Orders
	ass     Assistant
	store   ContextStore
	log     *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetCatalog(catalog Catalog) {
	c.catalog = catalog
}

func (c *Core) SetOrders(orders Orders) {
	c.orders = orders
}

func (c *Core) SetAssistant(ass Assistant) {
	c.ass = ass
}

func (c *Core) SetContextStore(store ContextStore) {
	c.store = store
}

// Backends reports which external collaborators are wired, for the health
// endpoint. No secrets, just presence.
func (c *Core) Backends() (model, catalog, contextStore bool) {
	model = c.ass != nil && c.ass.Configured()
	catalog = c.catalog != nil
	contextStore = c.store != nil
	return model, catalog, contextStore
}
