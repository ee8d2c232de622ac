package core

import (
	"PharmaCS/entity"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	products  []entity.Product
	err       error
	lastQuery string
}

func (f *fakeCatalog) SearchProducts(_ context.Context, query string) ([]entity.Product, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeOrders struct {
	orders []entity.Order
	err    error
}

func (f *fakeOrders) GetOrderForUser(_ context.Context, orderID, userID string) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == orderID && f.orders[i].UserID == userID {
			return &f.orders[i], nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) LatestOrderForUser(_ context.Context, userID string) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var latest *entity.Order
	for i := range f.orders {
		if f.orders[i].UserID != userID {
			continue
		}
		if latest == nil || f.orders[i].CreatedAt.After(latest.CreatedAt) {
			latest = &f.orders[i]
		}
	}
	return latest, nil
}

type fakeStore struct {
	mu    sync.Mutex
	saved map[string]entity.ConversationContext
	done  chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		saved: make(map[string]entity.ConversationContext),
		done:  make(chan struct{}, 8),
	}
}

func (f *fakeStore) Save(_ context.Context, cc entity.ConversationContext) error {
	f.mu.Lock()
	f.saved[cc.ConversationID] = cc
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeStore) waitForSave(t *testing.T) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(time.Second):
		t.Fatal("context save never happened")
	}
}

func (f *fakeStore) get(conversationID string) (entity.ConversationContext, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cc, ok := f.saved[conversationID]
	return cc, ok
}

func TestChatGreetingWithoutModel(t *testing.T) {
	c := newTestCore()

	resp := c.Chat(context.Background(), entity.ChatTurn{Message: "hi", ConversationID: "c1"})

	assert.Equal(t, entity.IntentGreeting, resp.Intent)
	assert.Empty(t, resp.Products)
	assert.Equal(t, fallbackTemplates[entity.IntentGreeting], resp.Message)
	assert.Equal(t, "c1", resp.ConversationID)
}

func TestChatProductSearch(t *testing.T) {
	c := newTestCore()
	catalog := &fakeCatalog{products: []entity.Product{{ID: "p1", Name: "Paracetamol 500mg", Price: 45.50, Stock: 10}}}
	c.SetCatalog(catalog)

	resp := c.Chat(context.Background(), entity.ChatTurn{Message: "I need paracetamol 500mg", ConversationID: "c2"})

	assert.Equal(t, entity.IntentProductSearch, resp.Intent)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Paracetamol 500mg", resp.Products[0].Name)
	assert.Contains(t, resp.Message, "1")
	assert.Equal(t, "I need paracetamol 500mg", catalog.lastQuery)
}

func TestChatCatalogErrorDegradesToEmptyResults(t *testing.T) {
	c := newTestCore()
	c.SetCatalog(&fakeCatalog{err: fmt.Errorf("catalog down")})

	resp := c.Chat(context.Background(), entity.ChatTurn{Message: "I need paracetamol", ConversationID: "c3"})

	assert.Equal(t, entity.IntentProductSearch, resp.Intent)
	assert.Empty(t, resp.Products)
	assert.Equal(t, templateReply(entity.IntentProductSearch, nil), resp.Message)
}

func TestChatOrderStatusFeedsOrderToModel(t *testing.T) {
	c := newTestCore()
	orderID := "a1b2c3d4-0000-0000-0000-000000000000"
	c.SetOrders(&fakeOrders{orders: []entity.Order{{
		ID: orderID, UserID: "u1", Status: "out_for_delivery", TotalAmount: 249.00, CreatedAt: time.Now(),
	}}})
	ass := &fakeAssistant{result: entity.ModelResult{State: entity.ModelSuccess, Text: "Your order is on the way."}}
	c.SetAssistant(ass)

	resp := c.Chat(context.Background(), entity.ChatTurn{
		UserID:         "u1",
		Message:        "track my order " + orderID,
		ConversationID: "c4",
	})

	assert.Equal(t, entity.IntentOrderStatus, resp.Intent)
	assert.Equal(t, "Your order is on the way.", resp.Message)
	assert.Contains(t, ass.askedUser, orderID)
	assert.Contains(t, ass.askedUser, "out_for_delivery")
	assert.Contains(t, ass.askedUser, "249.00")
}

func TestChatOrderStatusWithoutUserSkipsLookup(t *testing.T) {
	c := newTestCore()
	orders := &fakeOrders{err: fmt.Errorf("must not be called")}
	c.SetOrders(orders)

	resp := c.Chat(context.Background(), entity.ChatTurn{Message: "track my order", ConversationID: "c5"})

	assert.Equal(t, entity.IntentOrderStatus, resp.Intent)
	assert.Equal(t, fallbackTemplates[entity.IntentOrderStatus], resp.Message)
}

func TestChatPersistsContextLastWriteWins(t *testing.T) {
	c := newTestCore()
	store := newFakeStore()
	c.SetContextStore(store)

	first := c.Chat(context.Background(), entity.ChatTurn{Message: "hello", ConversationID: "c6"})
	store.waitForSave(t)
	second := c.Chat(context.Background(), entity.ChatTurn{Message: "anything else?", ConversationID: "c6"})
	store.waitForSave(t)

	assert.NotEmpty(t, first.Message)
	assert.NotEmpty(t, second.Message)

	cc, ok := store.get("c6")
	require.True(t, ok)
	assert.Equal(t, "anything else?", cc.Context.UserMessage)
	assert.Equal(t, second.Message, cc.Context.BotResponse)

	store.mu.Lock()
	assert.Len(t, store.saved, 1)
	store.mu.Unlock()
}

func TestChatSkipsPersistWithoutConversationID(t *testing.T) {
	c := newTestCore()
	store := newFakeStore()
	c.SetContextStore(store)

	c.Chat(context.Background(), entity.ChatTurn{Message: "hello"})

	select {
	case <-store.done:
		t.Fatal("context saved without a conversation id")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestResolveOrder(t *testing.T) {
	ownID := "a1b2c3d4-1111-2222-3333-444455556666"
	foreignID := "b1b2c3d4-1111-2222-3333-444455556666"
	now := time.Now()

	orders := &fakeOrders{orders: []entity.Order{
		{ID: ownID, UserID: "u1", Status: "delivered", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: foreignID, UserID: "u2", Status: "processing", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "c1b2c3d4-1111-2222-3333-444455556666", UserID: "u1", Status: "shipped", CreatedAt: now},
	}}

	c := newTestCore()
	c.SetOrders(orders)
	ctx := context.Background()

	t.Run("embedded id owned by user", func(t *testing.T) {
		order := c.resolveOrder(ctx, "u1", "status of "+ownID+" please")
		require.NotNil(t, order)
		assert.Equal(t, ownID, order.ID)
	})

	t.Run("embedded id of another user", func(t *testing.T) {
		assert.Nil(t, c.resolveOrder(ctx, "u1", "status of "+foreignID))
	})

	t.Run("uppercase id still matches", func(t *testing.T) {
		order := c.resolveOrder(ctx, "u1", "track "+"A1B2C3D4-1111-2222-3333-444455556666")
		require.NotNil(t, order)
		assert.Equal(t, ownID, order.ID)
	})

	t.Run("no id falls back to latest order", func(t *testing.T) {
		order := c.resolveOrder(ctx, "u1", "where is my order")
		require.NotNil(t, order)
		assert.Equal(t, "shipped", order.Status)
	})

	t.Run("no orders at all", func(t *testing.T) {
		assert.Nil(t, c.resolveOrder(ctx, "u3", "where is my order"))
	})

	t.Run("store error resolves to nil", func(t *testing.T) {
		broken := newTestCore()
		broken.SetOrders(&fakeOrders{err: fmt.Errorf("orders down")})
		assert.Nil(t, broken.resolveOrder(ctx, "u1", "where is my order"))
	})
}
