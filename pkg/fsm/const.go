package fsm

import "github.com/silkshine/booking-bot/pkg/i18n"

const (
	EventRestart        = "restart"
	EventSelectLanguage = "select_language"
	EventStartBooking   = "start_booking"
	EventSubmitName     = "submit_name"
	EventSubmitSurname  = "submit_surname"
	EventSubmitPhone    = "submit_phone"
	EventChooseSlot     = "choose_slot"
)

// Intent codes ride inside callback data so relabeling buttons or adding
// languages never breaks input classification.
const (
	CallbackLangPrefix = "lang:"
	CallbackMenuPrefix = "menu:"
	CallbackBookPrefix = "BOOK|"
)

const (
	MenuIntentAbout = "about"
	MenuIntentBook  = "book"
)

// The language names shown on the picker. These are a fixed set, not
// localized strings, so matching them as plain text is safe.
const (
	LabelEnglish = "English"
	LabelRussian = "Русский"
	LabelUzbek   = "Oʻzbekcha"
)

var languageLabels = []struct {
	Label string
	Code  string
}{
	{LabelEnglish, i18n.LangEnglish},
	{LabelRussian, i18n.LangRussian},
	{LabelUzbek, i18n.LangUzbek},
}

// Plain-text greetings that behave like /start.
var greetingKeywords = []string{"hi", "hello", "start", "привет", "salom"}

var menuButtonLabels = map[string]struct {
	About string
	Book  string
}{
	i18n.LangEnglish: {About: "📖 About Us", Book: "📅 Book Appointment"},
	i18n.LangRussian: {About: "📖 О нас", Book: "📅 Записаться"},
	i18n.LangUzbek:   {About: "📖 Biz haqimizda", Book: "📅 Uchrashuvni bron qilish"},
}
