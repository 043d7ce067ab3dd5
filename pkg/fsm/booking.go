package fsm

import (
	"context"
	"log"
	"strings"

	"github.com/silkshine/booking-bot/pkg/i18n"
	"github.com/silkshine/booking-bot/pkg/state"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// offerSlots stores the phone answer, fetches candidate slots and shows
// them as inline buttons. With no event type or no free slots the user
// gets the failure text and stays at the phone step, so sending the
// phone again retries.
func (e *Engine) offerSlots(ctx context.Context, session *state.Session, chatID int64, phone string) {
	session.SetAnswer(state.AnswerPhone, phone)

	eventTypes, err := e.gateway.ListEventTypes(ctx)
	if err != nil {
		log.Printf("[offerSlots] Error listing event types for user %d: %v", session.UserID, err)
		e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyFail), nil)
		return
	}
	if len(eventTypes) == 0 {
		log.Printf("[offerSlots] No event types configured; user %d stays at phone step", session.UserID)
		e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyFail), nil)
		return
	}
	eventType := eventTypes[0]

	slots, err := e.gateway.ListAvailableSlots(ctx, eventType)
	if err != nil {
		log.Printf("[offerSlots] Error listing slots for user %d: %v", session.UserID, err)
		e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyFail), nil)
		return
	}
	if len(slots) == 0 {
		log.Printf("[offerSlots] No slots available for user %d", session.UserID)
		e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyFail), nil)
		return
	}

	if !advance(ctx, session, EventSubmitPhone) {
		return
	}

	offer := &state.PendingOffer{EventType: eventType, Slots: slots}
	session.PendingOffer = offer

	keyboard := slotKeyboard(offer, session.Answer(state.AnswerName), phone)
	e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyChooseSlot), keyboard)
}

func (e *Engine) handleCallbackQuery(ctx context.Context, session *state.Session, chatID int64, query *tgbotapi.CallbackQuery) {
	data := query.Data

	if err := e.bot.AnswerCallback(ctx, query.ID, ""); err != nil {
		log.Printf("[handleCallbackQuery] Error answering callback %s for user %d: %v", query.ID, session.UserID, err)
	}

	switch {
	case strings.HasPrefix(data, CallbackLangPrefix):
		e.selectLanguage(ctx, session, chatID, strings.TrimPrefix(data, CallbackLangPrefix))

	case strings.HasPrefix(data, CallbackMenuPrefix):
		e.handleMenuIntent(ctx, session, chatID, strings.TrimPrefix(data, CallbackMenuPrefix))

	case strings.HasPrefix(data, CallbackBookPrefix):
		e.handleBookCallback(ctx, session, chatID, data)

	default:
		log.Printf("[handleCallbackQuery] Unknown callback payload from user %d: %q", session.UserID, data)
	}
}

func (e *Engine) handleMenuIntent(ctx context.Context, session *state.Session, chatID int64, intent string) {
	if session.Stage != state.StageLangSelected {
		log.Printf("[handleMenuIntent] Ignoring menu intent '%s' from user %d at stage %s", intent, session.UserID, session.Stage)
		return
	}

	switch intent {
	case MenuIntentAbout:
		text := e.texts.Text(session.Language, i18n.KeyAbout)
		if e.adminContact != "" {
			text += "\n\n📞 " + e.adminContact
		}
		e.send(ctx, chatID, text, nil)

	case MenuIntentBook:
		if !advance(ctx, session, EventStartBooking) {
			return
		}
		// The first free-text question also clears any reply keyboard a
		// previous session may have left on screen.
		if _, err := e.bot.RemoveReplyKeyboard(ctx, chatID, e.texts.Text(session.Language, i18n.KeyAskName)); err != nil {
			log.Printf("[handleMenuIntent] Error sending name prompt to chat %d: %v", chatID, err)
		}

	default:
		log.Printf("[handleMenuIntent] Unknown menu intent '%s' from user %d", intent, session.UserID)
	}
}

// handleBookCallback validates a slot pick against the offer persisted
// on the session and books it. Payloads that do not match what was
// offered (stale keyboards, tampered data) are dropped without a
// transition.
func (e *Engine) handleBookCallback(ctx context.Context, session *state.Session, chatID int64, data string) {
	parts := strings.SplitN(data, "|", 5)
	if len(parts) != 5 {
		log.Printf("[handleBookCallback] Malformed booking payload from user %d: %q", session.UserID, data)
		return
	}
	eventType, name, phone, slot := parts[1], parts[2], parts[3], parts[4]

	offer := session.PendingOffer
	if session.Stage != state.StageSlotOffered || offer == nil {
		log.Printf("[handleBookCallback] No live offer for user %d (stage %s); ignoring", session.UserID, session.Stage)
		return
	}
	if offer.EventType != eventType || !offer.Contains(slot) {
		log.Printf("[handleBookCallback] Stale or tampered booking payload from user %d (event %q, slot %q)", session.UserID, eventType, slot)
		return
	}

	if !advance(ctx, session, EventChooseSlot) {
		return
	}
	session.PendingOffer = nil

	ok, err := e.gateway.BookSlot(ctx, eventType, name, phone, slot)
	if err != nil {
		log.Printf("[handleBookCallback] Booking call failed for user %d: %v", session.UserID, err)
		ok = false
	}

	if ok {
		e.send(ctx, chatID, e.texts.Booked(session.Language, slot), nil)
	} else {
		e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyFail), nil)
	}
}
