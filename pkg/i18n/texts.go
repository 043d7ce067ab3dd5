package i18n

func defaultTexts() map[string]map[string]string {
	return map[string]map[string]string{
		LangEnglish: {
			KeyWelcome:    "👋 Welcome! Choose your language:",
			KeyMenu:       "Please choose:",
			KeyAbout:      "ℹ️ We are Silk & Shine Beauty — making you glow ✨",
			KeyAskName:    "What is your <b>Name</b>?",
			KeyAskSurname: "What is your <b>Surname</b>?",
			KeyAskPhone:   "Please provide your <b>Phone Number</b>:",
			KeyChooseSlot: "Choose a time:",
			KeyBooked:     "✅ Your appointment is booked for %s",
			KeyFail:       "❌ Failed to book appointment.",
		},
		LangRussian: {
			KeyWelcome:    "👋 Добро пожаловать! Выберите язык:",
			KeyMenu:       "Пожалуйста, выберите:",
			KeyAbout:      "ℹ️ Мы Silk & Shine Beauty — делаем вас сияющими ✨",
			KeyAskName:    "Введите ваше <b>Имя</b>:",
			KeyAskSurname: "Введите вашу <b>Фамилию</b>:",
			KeyAskPhone:   "Введите ваш <b>Номер телефона</b>:",
			KeyChooseSlot: "Выберите время:",
			KeyBooked:     "✅ Ваша запись подтверждена на %s",
			KeyFail:       "❌ Не удалось забронировать запись.",
		},
		LangUzbek: {
			KeyWelcome:    "👋 Xush kelibsiz! Tilni tanlang:",
			KeyMenu:       "Iltimos, tanlang:",
			KeyAbout:      "ℹ️ Biz Silk & Shine Beauty — sizni yanada goʻzal qilamiz ✨",
			KeyAskName:    "Ismingizni kiriting:",
			KeyAskSurname: "Familiyangizni kiriting:",
			KeyAskPhone:   "Telefon raqamingizni kiriting:",
			KeyChooseSlot: "Vaqtni tanlang:",
			KeyBooked:     "✅ Sizning uchrashuvingiz %s ga belgilandi",
			KeyFail:       "❌ Uchrashuvni bron qilishda xatolik yuz berdi.",
		},
	}
}
