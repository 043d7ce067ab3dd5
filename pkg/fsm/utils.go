package fsm

import (
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/looplab/fsm"
)

func isNoTransitionError(err error) bool {
	if err == nil {
		return false
	}
	var noTransitionError fsm.NoTransitionError
	return errors.As(err, &noTransitionError)
}

func isRestartInput(message *tgbotapi.Message) bool {
	if message.IsCommand() && message.Command() == "start" {
		return true
	}
	// Command entities are not guaranteed on webhook payloads.
	if strings.TrimSpace(message.Text) == "/start" {
		return true
	}
	return isGreeting(message.Text)
}

func isGreeting(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, kw := range greetingKeywords {
		if normalized == kw {
			return true
		}
	}
	return false
}

func languageFromLabel(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	for _, l := range languageLabels {
		if strings.EqualFold(trimmed, l.Label) {
			return l.Code, true
		}
	}
	return "", false
}
