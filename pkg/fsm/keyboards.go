package fsm

import (
	"fmt"

	"github.com/silkshine/booking-bot/pkg/i18n"
	"github.com/silkshine/booking-bot/pkg/state"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup()
	for _, l := range languageLabels {
		row := tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Label, CallbackLangPrefix+l.Code),
		)
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, row)
	}
	return keyboard
}

func menuKeyboard(language string) tgbotapi.InlineKeyboardMarkup {
	labels, ok := menuButtonLabels[language]
	if !ok {
		labels = menuButtonLabels[i18n.LangEnglish]
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(labels.About, CallbackMenuPrefix+MenuIntentAbout),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(labels.Book, CallbackMenuPrefix+MenuIntentBook),
		),
	)
}

// slotKeyboard builds one button per offered slot. The payload carries
// everything the booking call needs; the offer persisted on the session
// is what the callback is later validated against.
func slotKeyboard(offer *state.PendingOffer, name, phone string) tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup()
	for _, slot := range offer.Slots {
		payload := fmt.Sprintf("%s%s|%s|%s|%s", CallbackBookPrefix, offer.EventType, name, phone, slot)
		row := tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(slot, payload),
		)
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, row)
	}
	return keyboard
}
