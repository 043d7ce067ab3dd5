package fakeadapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/silkshine/booking-bot/pkg/ports/botport"
)

func TestSendMessageRecordsCall(t *testing.T) {
	f := &FakeAdapter{}
	msg, err := f.SendMessage(context.Background(), 1, "hello", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.MessageID == 0 || msg.ChatID != 1 || msg.Transport != "telegram" || msg.Payload != "hello" {
		t.Fatalf("unexpected bot message: %+v", msg)
	}
	call := f.LastCall("send_message")
	if call == nil || call.Text != "hello" || call.ChatID != 1 {
		t.Fatalf("recorded call mismatch: %+v", call)
	}
}

func TestFailNextWrapsError(t *testing.T) {
	f := &FakeAdapter{}
	f.Fail("send_message", errors.New("boom"))
	_, err := f.SendMessage(context.Background(), 1, "x", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	var be *botport.BotError
	if !errors.As(err, &be) {
		t.Fatalf("expected BotError, got %T", err)
	}
	if be.Code != "fake_error" {
		t.Fatalf("expected fake_error, got %s", be.Code)
	}
}

func TestFailNextPassesThroughBotError(t *testing.T) {
	f := &FakeAdapter{}
	f.Fail("send_message", RateLimited("send_message", 2*time.Second))
	_, err := f.SendMessage(context.Background(), 1, "x", nil)
	if !botport.IsCode(err, "rate_limited") {
		t.Fatalf("expected rate_limited, got %v", err)
	}
}

func TestCallsForFiltersByOp(t *testing.T) {
	f := &FakeAdapter{}
	_, _ = f.SendMessage(context.Background(), 1, "a", nil)
	_ = f.AnswerCallback(context.Background(), "cb1", "")
	_, _ = f.SendMessage(context.Background(), 1, "b", nil)

	sends := f.CallsFor("send_message")
	if len(sends) != 2 || sends[0].Text != "a" || sends[1].Text != "b" {
		t.Fatalf("unexpected sends: %+v", sends)
	}
}

func TestContextCancellation(t *testing.T) {
	f := &FakeAdapter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.SendMessage(ctx, 1, "x", nil)
	if !botport.IsCode(err, "context_canceled") {
		t.Fatalf("expected context_canceled, got %v", err)
	}
}
