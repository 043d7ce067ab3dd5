package botport

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Package botport is the outbound messaging boundary between the
// conversation engine and chat adapters (Telegram, fake).

// BotMessage captures adapter-agnostic identifiers for a sent message.
type BotMessage struct {
	ChatID    int64
	MessageID int
	Transport string
	Payload   string
}

// BotError wraps adapter failures with retry hints and normalized codes.
type BotError struct {
	Op         string
	Code       string
	RetryAfter time.Duration
	Wrapped    error
}

func (e *BotError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

// Unwrap exposes the underlying adapter error for errors.Is/As.
func (e *BotError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Wrapped
}

// NewBotError builds a BotError with the provided operation/code,
// preserving the wrapped error.
func NewBotError(op, code string, err error) *BotError {
	return &BotError{
		Op:      op,
		Code:    code,
		Wrapped: err,
	}
}

// IsCode determines whether err represents a BotError with the provided code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var be *BotError
	if errors.As(err, &be) {
		return be != nil && be.Code == code
	}
	return false
}

// BotPort abstracts the outbound message operations the booking flow
// performs. Keyboards travel as opaque markup so adapters decide the
// concrete wire types.
type BotPort interface {
	SendMessage(ctx context.Context, chatID int64, text string, markup interface{}) (BotMessage, error)
	RemoveReplyKeyboard(ctx context.Context, chatID int64, text string) (BotMessage, error)
	AnswerCallback(ctx context.Context, callbackID string, text string) error
}
