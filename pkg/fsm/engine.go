package fsm

import (
	"context"
	"log"

	"github.com/silkshine/booking-bot/pkg/i18n"
	"github.com/silkshine/booking-bot/pkg/ports/botport"
	"github.com/silkshine/booking-bot/pkg/scheduling"
	"github.com/silkshine/booking-bot/pkg/state"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Engine drives the booking conversation: it classifies an inbound
// update against the user's session stage, mutates the session, and
// dispatches outbound messages through the bot port.
type Engine struct {
	bot          botport.BotPort
	gateway      scheduling.Gateway
	texts        *i18n.Table
	store        *state.Store
	adminContact string
}

func NewEngine(bot botport.BotPort, gateway scheduling.Gateway, texts *i18n.Table, store *state.Store) *Engine {
	return &Engine{
		bot:     bot,
		gateway: gateway,
		texts:   texts,
		store:   store,
	}
}

// SetAdminContact attaches a salon contact line to the about message.
func (e *Engine) SetAdminContact(contact string) {
	e.adminContact = contact
}

// HandleUpdate processes one webhook update. Per-user handling is fully
// serialized: the session lock is held across load, transition, gateway
// calls and save.
func (e *Engine) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	var chatID int64
	var from *tgbotapi.User

	if update.Message != nil {
		if update.Message.From == nil {
			log.Printf("Warning: Received message with nil From field")
			return
		}
		from = update.Message.From
		chatID = update.Message.Chat.ID
	} else if update.CallbackQuery != nil {
		if update.CallbackQuery.From == nil {
			log.Printf("Warning: Received callback with nil From field")
			return
		}
		from = update.CallbackQuery.From
		if update.CallbackQuery.Message == nil || update.CallbackQuery.Message.Chat == nil {
			log.Printf("Warning: Received callback query with nil Message or Chat field")
			return
		}
		chatID = update.CallbackQuery.Message.Chat.ID
	} else {
		log.Printf("Ignoring update without message or callback (id %d)", update.UpdateID)
		return
	}

	userID := from.ID

	unlock := e.store.Lock(userID)
	defer unlock()

	session, err := e.store.Load(ctx, userID)
	if err != nil {
		log.Printf("Error: Failed to load session for user %d: %v", userID, err)
		return
	}

	if update.Message != nil {
		e.handleMessage(ctx, session, chatID, update.Message)
	} else {
		e.handleCallbackQuery(ctx, session, chatID, update.CallbackQuery)
	}

	if err := e.store.Save(ctx, session); err != nil {
		log.Printf("Error: Failed to save session for user %d: %v", userID, err)
	}
}

func (e *Engine) handleMessage(ctx context.Context, session *state.Session, chatID int64, message *tgbotapi.Message) {
	text := message.Text
	if text == "" {
		return
	}

	if isRestartInput(message) {
		e.restart(ctx, session, chatID)
		return
	}

	switch session.Stage {
	case state.StageInitial:
		if lang, ok := languageFromLabel(text); ok {
			e.selectLanguage(ctx, session, chatID, lang)
			return
		}
		// Language not chosen yet: stay silent.

	case state.StageCollectingName:
		if !advance(ctx, session, EventSubmitName) {
			return
		}
		session.SetAnswer(state.AnswerName, text)
		e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyAskSurname), nil)

	case state.StageCollectingSurname:
		if !advance(ctx, session, EventSubmitSurname) {
			return
		}
		session.SetAnswer(state.AnswerSurname, text)
		e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyAskPhone), nil)

	case state.StageCollectingPhone:
		e.offerSlots(ctx, session, chatID, text)

	default:
		// Menu choices and slot picks arrive as callbacks; stray text
		// in those stages is dropped.
		log.Printf("[handleMessage] Ignoring text from user %d at stage %s", session.UserID, session.Stage)
	}
}

func (e *Engine) restart(ctx context.Context, session *state.Session, chatID int64) {
	log.Printf("[restart] Resetting session for user %d (was %s)", session.UserID, session.Stage)

	if !advance(ctx, session, EventRestart) {
		session.Stage = state.StageInitial
	}
	session.Restart()

	keyboard := languageKeyboard()
	e.send(ctx, chatID, e.texts.Text(session.Language, i18n.KeyWelcome), keyboard)
}

func (e *Engine) selectLanguage(ctx context.Context, session *state.Session, chatID int64, lang string) {
	if !i18n.IsKnownLanguage(lang) {
		log.Printf("[selectLanguage] Unknown language code '%s' from user %d", lang, session.UserID)
		return
	}
	if !advance(ctx, session, EventSelectLanguage) {
		return
	}
	session.Language = lang

	keyboard := menuKeyboard(lang)
	e.send(ctx, chatID, e.texts.Text(lang, i18n.KeyMenu), keyboard)
}

// send dispatches an outbound message, logging and swallowing transport
// failures so one user's turn never takes the handler down.
func (e *Engine) send(ctx context.Context, chatID int64, text string, markup interface{}) {
	if _, err := e.bot.SendMessage(ctx, chatID, text, markup); err != nil {
		log.Printf("[send] Error sending message to chat %d: %v", chatID, err)
	}
}
