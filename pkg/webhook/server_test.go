package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type recordingHandler struct {
	updates []tgbotapi.Update
}

func (r *recordingHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	r.updates = append(r.updates, update)
}

func TestHealthRoute(t *testing.T) {
	srv := New("tok", &recordingHandler{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestWebhookRejectsWrongToken(t *testing.T) {
	handler := &recordingHandler{}
	srv := New("tok", handler)

	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook/other", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if len(handler.updates) != 0 {
		t.Fatalf("handler must not run for wrong token")
	}
}

func TestWebhookAcksMalformedPayload(t *testing.T) {
	handler := &recordingHandler{}
	srv := New("tok", handler)

	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook/tok", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("malformed payloads are ACKed, got %d", w.Code)
	}
	if len(handler.updates) != 0 {
		t.Fatalf("handler must not run for malformed payload")
	}
}

func TestWebhookDispatchesUpdate(t *testing.T) {
	handler := &recordingHandler{}
	srv := New("tok", handler)

	body := `{"update_id":5,"message":{"message_id":1,"from":{"id":42},"chat":{"id":42},"text":"/start"}}`
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook/tok", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(handler.updates) != 1 {
		t.Fatalf("expected 1 dispatched update, got %d", len(handler.updates))
	}
	upd := handler.updates[0]
	if upd.UpdateID != 5 || upd.Message == nil || upd.Message.Text != "/start" {
		t.Fatalf("unexpected update: %+v", upd)
	}
}
