package chat

import (
	"PharmaCS/entity"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCore struct {
	resp *entity.ChatResponse
	got  entity.ChatTurn
}

func (f *fakeCore) Chat(_ context.Context, turn entity.ChatTurn) *entity.ChatResponse {
	f.got = turn
	return f.resp
}

func post(t *testing.T, handler http.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleValidTurn(t *testing.T) {
	core := &fakeCore{resp: &entity.ChatResponse{
		Message:        "Hello!",
		Products:       []entity.Product{},
		Intent:         entity.IntentGreeting,
		ConversationID: "c1",
	}}
	handler := Handle(slog.New(slog.NewTextHandler(io.Discard, nil)), core)

	rec := post(t, handler, []byte(`{"message":"hi","conversationId":"c1"}`))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hello!", resp.Message)
	assert.Equal(t, entity.IntentGreeting, resp.Intent)
	assert.Equal(t, "c1", resp.ConversationID)
	assert.NotNil(t, resp.Products)

	assert.Equal(t, "hi", core.got.Message)
	assert.Equal(t, "c1", core.got.ConversationID)
}

func TestHandleMalformedBody(t *testing.T) {
	handler := Handle(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeCore{})

	rec := post(t, handler, []byte(`{not json`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestHandleEmptyMessage(t *testing.T) {
	handler := Handle(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeCore{})

	rec := post(t, handler, []byte(`{"message":"","conversationId":"c1"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestHandleNilCore(t *testing.T) {
	handler := Handle(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	rec := post(t, handler, []byte(`{"message":"hi"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
