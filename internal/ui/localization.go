package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle    = "app_title"
	KeyTabHome     = "tab_home"
	KeyTabColor    = "tab_color"
	KeyTabUpload   = "tab_upload"
	KeyTabStars    = "tab_stars"
	KeyTabSettings = "tab_settings"
	KeyBack        = "back"
	KeyCancel      = "cancel"
	KeyOK          = "ok"

	// Home
	KeyWelcome         = "welcome"
	KeyChooseAdventure = "choose_adventure"
	KeyPictures        = "pictures"
	KeyFeatureNumbers  = "feature_numbers"
	KeyFeaturePens     = "feature_pens"
	KeyFeatureSounds   = "feature_sounds"
	KeyFeatureRewards  = "feature_rewards"

	// Picture selection
	KeyChoosePicture = "choose_picture"
	KeyUnlockHint    = "unlock_hint"
	KeyCategoryTally = "category_tally"
	KeyAreas         = "areas"

	// Coloring
	KeyReferencePicture = "reference_picture"
	KeyYourColoring     = "your_coloring"
	KeyChoosePen        = "choose_pen"
	KeyPickColors       = "pick_colors"
	KeyStartOver        = "start_over"
	KeySaveAndWin       = "save_and_win"
	KeyMusicOn          = "music_on"
	KeyMusicOff         = "music_off"
	KeyPerfectTitle     = "perfect_title"
	KeyPerfectMessage   = "perfect_message"
	KeyGreatTitle       = "great_title"
	KeyGreatMessage     = "great_message"
	KeySavedTitle       = "saved_title"
	KeySavedMessage     = "saved_message"
	KeyContinueColoring = "continue_coloring"
	KeyGoBack           = "go_back"
	KeyResetTitle       = "reset_title"
	KeyResetMessage     = "reset_message"
	KeyKeepColoring     = "keep_coloring"

	// Upload
	KeyUploadTitle        = "upload_title"
	KeyAddPicture         = "add_picture"
	KeyFormatsHint        = "formats_hint"
	KeyYourPictures       = "your_pictures"
	KeyNoPictures         = "no_pictures"
	KeyFileAddedTitle     = "file_added_title"
	KeyFileAddedMessage   = "file_added_message"
	KeyPickErrorTitle     = "pick_error_title"
	KeyPickErrorMessage   = "pick_error_message"
	KeyUnsupportedMessage = "unsupported_message"
	KeyRemove             = "remove"
	KeyRemoveTitle        = "remove_title"
	KeyRemoveMessage      = "remove_message"

	// Progress
	KeyProgressTitle    = "progress_title"
	KeyCompleted        = "completed"
	KeyDayStreak        = "day_streak"
	KeyTotalStars       = "total_stars"
	KeyOverallProgress  = "overall_progress"
	KeyRecentRewards    = "recent_rewards"
	KeyCategoryProgress = "category_progress"
	KeyAchievements     = "achievements"

	// Settings
	KeySoundEffects    = "sound_effects"
	KeyBackgroundMusic = "background_music"
	KeyVibration       = "vibration"
	KeyLanguage        = "language"
	KeyAbout           = "about"
	KeyLicense         = "license"
	KeyContact         = "contact"
	KeyAboutTitle      = "about_title"
	KeyAboutMessage    = "about_message"
	KeyContactTitle    = "contact_title"
	KeyContactMessage  = "contact_message"

	// License
	KeyLicenseTitle       = "license_title"
	KeyOwnerInfo          = "owner_info"
	KeyFullName           = "full_name"
	KeyIDNumber           = "id_number"
	KeyEmail              = "email"
	KeyPassword           = "password"
	KeyLockLicense        = "lock_license"
	KeyUnlockLicense      = "unlock_license"
	KeyLockTitle          = "lock_title"
	KeyLockMessage        = "lock_message"
	KeyLockedTitle        = "locked_title"
	KeyLockedMessage      = "locked_message"
	KeyUnlockTitle        = "unlock_title"
	KeyUnlockMessage      = "unlock_message"
	KeyUnlockedTitle      = "unlocked_title"
	KeyUnlockedMessage    = "unlocked_message"
	KeyMissingInfoTitle   = "missing_info_title"
	KeyMissingInfoMessage = "missing_info_message"
	KeyLicenseLocked      = "license_locked"
	KeyLicenseUnlocked    = "license_unlocked"
	KeyOpenSourceNotice   = "open_source_notice"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:    "Color & Learn",
		KeyTabHome:     "Home",
		KeyTabColor:    "Color",
		KeyTabUpload:   "Upload",
		KeyTabStars:    "Stars",
		KeyTabSettings: "Settings",
		KeyBack:        "Back",
		KeyCancel:      "Cancel",
		KeyOK:          "OK",

		KeyWelcome:         "Welcome, Amazing Artist! 🌟",
		KeyChooseAdventure: "Choose Your Adventure",
		KeyPictures:        "Pictures",
		KeyFeatureNumbers:  "🔢 Numbers to guide you",
		KeyFeaturePens:     "🎨 Many colorful pens",
		KeyFeatureSounds:   "🎵 Calm nature sounds",
		KeyFeatureRewards:  "⭐ Win stars & flowers",

		KeyChoosePicture: "Choose Your Picture! 🎨",
		KeyUnlockHint:    "Complete more to unlock!",
		KeyCategoryTally: "%d of %d open · %d colored",
		KeyAreas:         "areas",

		KeyReferencePicture: "🖼️ Reference Picture",
		KeyYourColoring:     "🎨 Your Coloring",
		KeyChoosePen:        "Choose Your Pen 🖍️",
		KeyPickColors:       "Pick Your Colors! 🌈",
		KeyStartOver:        "Start Over",
		KeySaveAndWin:       "Save & Win Stars!",
		KeyMusicOn:          "🎵 Music On",
		KeyMusicOff:         "🔇 Music Off",
		KeyPerfectTitle:     "🏆 Perfect! 🏆",
		KeyPerfectMessage:   "You colored everything! Amazing job! 🌟",
		KeyGreatTitle:       "⭐ Great! ⭐",
		KeyGreatMessage:     "You're doing wonderful! Keep going! 🎨",
		KeySavedTitle:       "🎉 Amazing Work! 🎉",
		KeySavedMessage:     "You colored %d out of %d areas!\n⭐ You earned %d stars! ⭐\n\nKeep going, you're doing great!",
		KeyContinueColoring: "Continue Coloring 🎨",
		KeyGoBack:           "Go Back 🏠",
		KeyResetTitle:       "Start Fresh? 🎨",
		KeyResetMessage:     "Do you want to clear all your colors and start over?",
		KeyKeepColoring:     "Keep Coloring",

		KeyUploadTitle:        "📁 Upload Your Pictures",
		KeyAddPicture:         "Add Picture",
		KeyFormatsHint:        "Images: JPG, PNG, GIF · Documents: PDF",
		KeyYourPictures:       "Your Pictures 🖼️ (%d)",
		KeyNoPictures:         "No Pictures Yet",
		KeyFileAddedTitle:     "🎉 File Added!",
		KeyFileAddedMessage:   "%s has been added to your coloring collection!",
		KeyPickErrorTitle:     "Oops!",
		KeyPickErrorMessage:   "Something went wrong while picking the file. Please try again.",
		KeyUnsupportedMessage: "Please choose a picture or a PDF file.",
		KeyRemove:             "Remove",
		KeyRemoveTitle:        "Remove File?",
		KeyRemoveMessage:      "Are you sure you want to remove this file from your collection?",

		KeyProgressTitle:    "🏆 Your Amazing Progress",
		KeyCompleted:        "Completed",
		KeyDayStreak:        "Day Streak",
		KeyTotalStars:       "Total Stars",
		KeyOverallProgress:  "Overall Progress 📊",
		KeyRecentRewards:    "Recent Rewards 🎁",
		KeyCategoryProgress: "Category Progress 📚",
		KeyAchievements:     "Achievements 🏅",

		KeySoundEffects:    "Sound Effects",
		KeyBackgroundMusic: "Background Music",
		KeyVibration:       "Gentle Vibration",
		KeyLanguage:        "Language",
		KeyAbout:           "About This App",
		KeyLicense:         "License & Copyright",
		KeyContact:         "Contact Support",
		KeyAboutTitle:      "🎨 About Color & Learn",
		KeyAboutMessage:    "Color & Learn is a free, open-source coloring app designed specifically for autistic children and their families.\n\nOur mission is to provide a calm, educational, and joyful coloring experience that helps children learn while having fun.\n\nVersion %s",
		KeyContactTitle:    "📧 Contact Us",
		KeyContactMessage:  "For support or questions, please email us at:\n\n%s\n\nWe love hearing from our amazing artists!",

		KeyLicenseTitle:       "🛡️ License & Copyright",
		KeyOwnerInfo:          "License Owner Information",
		KeyFullName:           "Full Name *",
		KeyIDNumber:           "ID Number *",
		KeyEmail:              "Contact Email *",
		KeyPassword:           "Protection Password *",
		KeyLockLicense:        "Lock License",
		KeyUnlockLicense:      "Unlock License",
		KeyLockTitle:          "🔒 Lock License?",
		KeyLockMessage:        "Once locked, only you will be able to modify this license with your password. This action cannot be undone without the password.",
		KeyLockedTitle:        "✅ License Locked!",
		KeyLockedMessage:      "Your license is now protected. Keep your password safe!",
		KeyUnlockTitle:        "🔓 Unlock License?",
		KeyUnlockMessage:      "Unlock the license to change the owner information.",
		KeyUnlockedTitle:      "✅ License Unlocked!",
		KeyUnlockedMessage:    "You can now modify the license information.",
		KeyMissingInfoTitle:   "Missing Information",
		KeyMissingInfoMessage: "Please fill in all fields before locking the license.",
		KeyLicenseLocked:      "License Locked",
		KeyLicenseUnlocked:    "License Unlocked",
		KeyOpenSourceNotice:   "Color & Learn - Autism-Friendly Coloring App\nOpen Source Educational Software",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:    "Раскрась и Узнай",
		KeyTabHome:     "Главная",
		KeyTabColor:    "Раскраска",
		KeyTabUpload:   "Загрузка",
		KeyTabStars:    "Звёзды",
		KeyTabSettings: "Настройки",
		KeyBack:        "Назад",
		KeyCancel:      "Отмена",
		KeyOK:          "ОК",

		KeyWelcome:         "Привет, юный художник! 🌟",
		KeyChooseAdventure: "Выбери приключение",
		KeyPictures:        "Картинки",
		KeyFeatureNumbers:  "🔢 Цифры-подсказки",
		KeyFeaturePens:     "🎨 Много цветных карандашей",
		KeyFeatureSounds:   "🎵 Спокойные звуки природы",
		KeyFeatureRewards:  "⭐ Звёзды и цветы в награду",

		KeyChoosePicture: "Выбери картинку! 🎨",
		KeyUnlockHint:    "Раскрась больше, чтобы открыть!",
		KeyCategoryTally: "Открыто %d из %d · раскрашено %d",
		KeyAreas:         "областей",

		KeyReferencePicture: "🖼️ Образец",
		KeyYourColoring:     "🎨 Твоя раскраска",
		KeyChoosePen:        "Выбери карандаш 🖍️",
		KeyPickColors:       "Выбери цвета! 🌈",
		KeyStartOver:        "Начать заново",
		KeySaveAndWin:       "Сохранить и получить звёзды!",
		KeyMusicOn:          "🎵 Музыка вкл.",
		KeyMusicOff:         "🔇 Музыка выкл.",
		KeyPerfectTitle:     "🏆 Отлично! 🏆",
		KeyPerfectMessage:   "Ты раскрасил всё! Замечательно! 🌟",
		KeyGreatTitle:       "⭐ Здорово! ⭐",
		KeyGreatMessage:     "У тебя прекрасно получается! Продолжай! 🎨",
		KeySavedTitle:       "🎉 Прекрасная работа! 🎉",
		KeySavedMessage:     "Ты раскрасил %d из %d областей!\n⭐ Ты заработал звёзд: %d! ⭐\n\nПродолжай, у тебя отлично получается!",
		KeyContinueColoring: "Рисовать дальше 🎨",
		KeyGoBack:           "Назад 🏠",
		KeyResetTitle:       "Начать заново? 🎨",
		KeyResetMessage:     "Стереть все цвета и начать сначала?",
		KeyKeepColoring:     "Рисовать дальше",

		KeyUploadTitle:        "📁 Загрузи свои картинки",
		KeyAddPicture:         "Добавить картинку",
		KeyFormatsHint:        "Изображения: JPG, PNG, GIF · Документы: PDF",
		KeyYourPictures:       "Твои картинки 🖼️ (%d)",
		KeyNoPictures:         "Пока нет картинок",
		KeyFileAddedTitle:     "🎉 Файл добавлен!",
		KeyFileAddedMessage:   "%s добавлен в твою коллекцию!",
		KeyPickErrorTitle:     "Ой!",
		KeyPickErrorMessage:   "Не удалось выбрать файл. Попробуй ещё раз.",
		KeyUnsupportedMessage: "Выбери картинку или PDF-файл.",
		KeyRemove:             "Удалить",
		KeyRemoveTitle:        "Удалить файл?",
		KeyRemoveMessage:      "Точно удалить этот файл из коллекции?",

		KeyProgressTitle:    "🏆 Твои успехи",
		KeyCompleted:        "Готово",
		KeyDayStreak:        "Дней подряд",
		KeyTotalStars:       "Всего звёзд",
		KeyOverallProgress:  "Общий прогресс 📊",
		KeyRecentRewards:    "Последние награды 🎁",
		KeyCategoryProgress: "Прогресс по темам 📚",
		KeyAchievements:     "Достижения 🏅",

		KeySoundEffects:    "Звуковые эффекты",
		KeyBackgroundMusic: "Фоновая музыка",
		KeyVibration:       "Мягкая вибрация",
		KeyLanguage:        "Язык",
		KeyAbout:           "О приложении",
		KeyLicense:         "Лицензия и авторские права",
		KeyContact:         "Связаться с поддержкой",
		KeyAboutTitle:      "🎨 О приложении",
		KeyAboutMessage:    "Раскрась и Узнай - бесплатная раскраска с открытым кодом для детей с аутизмом и их семей.\n\nМы хотим, чтобы рисование было спокойным, полезным и радостным.\n\nВерсия %s",
		KeyContactTitle:    "📧 Напишите нам",
		KeyContactMessage:  "По вопросам и за помощью пишите на:\n\n%s\n\nМы рады каждому письму!",

		KeyLicenseTitle:       "🛡️ Лицензия и авторские права",
		KeyOwnerInfo:          "Владелец лицензии",
		KeyFullName:           "Полное имя *",
		KeyIDNumber:           "Номер документа *",
		KeyEmail:              "Электронная почта *",
		KeyPassword:           "Пароль защиты *",
		KeyLockLicense:        "Заблокировать",
		KeyUnlockLicense:      "Разблокировать",
		KeyLockTitle:          "🔒 Заблокировать лицензию?",
		KeyLockMessage:        "После блокировки изменить лицензию можно будет только с паролем.",
		KeyLockedTitle:        "✅ Лицензия заблокирована!",
		KeyLockedMessage:      "Лицензия защищена. Сохраните пароль!",
		KeyUnlockTitle:        "🔓 Разблокировать лицензию?",
		KeyUnlockMessage:      "Разблокируйте лицензию, чтобы изменить данные владельца.",
		KeyUnlockedTitle:      "✅ Лицензия разблокирована!",
		KeyUnlockedMessage:    "Теперь данные лицензии можно изменить.",
		KeyMissingInfoTitle:   "Не все поля заполнены",
		KeyMissingInfoMessage: "Заполните все поля перед блокировкой лицензии.",
		KeyLicenseLocked:      "Лицензия заблокирована",
		KeyLicenseUnlocked:    "Лицензия разблокирована",
		KeyOpenSourceNotice:   "Раскрась и Узнай - раскраска для детей с аутизмом\nОбразовательное ПО с открытым кодом",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:    "Colorir e Aprender",
		KeyTabHome:     "Início",
		KeyTabColor:    "Colorir",
		KeyTabUpload:   "Enviar",
		KeyTabStars:    "Estrelas",
		KeyTabSettings: "Ajustes",
		KeyBack:        "Voltar",
		KeyCancel:      "Cancelar",
		KeyOK:          "OK",

		KeyWelcome:         "Bem-vindo, Artista Incrível! 🌟",
		KeyChooseAdventure: "Escolha sua aventura",
		KeyPictures:        "Desenhos",
		KeyFeatureNumbers:  "🔢 Números para guiar você",
		KeyFeaturePens:     "🎨 Muitas canetas coloridas",
		KeyFeatureSounds:   "🎵 Sons calmos da natureza",
		KeyFeatureRewards:  "⭐ Ganhe estrelas e flores",

		KeyChoosePicture: "Escolha seu desenho! 🎨",
		KeyUnlockHint:    "Complete mais para desbloquear!",
		KeyCategoryTally: "%d de %d abertos · %d coloridos",
		KeyAreas:         "áreas",

		KeyReferencePicture: "🖼️ Desenho de exemplo",
		KeyYourColoring:     "🎨 Sua pintura",
		KeyChoosePen:        "Escolha sua caneta 🖍️",
		KeyPickColors:       "Escolha suas cores! 🌈",
		KeyStartOver:        "Recomeçar",
		KeySaveAndWin:       "Salvar e ganhar estrelas!",
		KeyMusicOn:          "🎵 Música ligada",
		KeyMusicOff:         "🔇 Música desligada",
		KeyPerfectTitle:     "🏆 Perfeito! 🏆",
		KeyPerfectMessage:   "Você coloriu tudo! Trabalho incrível! 🌟",
		KeyGreatTitle:       "⭐ Ótimo! ⭐",
		KeyGreatMessage:     "Você está indo muito bem! Continue! 🎨",
		KeySavedTitle:       "🎉 Trabalho incrível! 🎉",
		KeySavedMessage:     "Você coloriu %d de %d áreas!\n⭐ Você ganhou %d estrelas! ⭐\n\nContinue, você está indo muito bem!",
		KeyContinueColoring: "Continuar colorindo 🎨",
		KeyGoBack:           "Voltar 🏠",
		KeyResetTitle:       "Começar de novo? 🎨",
		KeyResetMessage:     "Quer apagar todas as cores e recomeçar?",
		KeyKeepColoring:     "Continuar colorindo",

		KeyUploadTitle:        "📁 Envie seus desenhos",
		KeyAddPicture:         "Adicionar desenho",
		KeyFormatsHint:        "Imagens: JPG, PNG, GIF · Documentos: PDF",
		KeyYourPictures:       "Seus desenhos 🖼️ (%d)",
		KeyNoPictures:         "Nenhum desenho ainda",
		KeyFileAddedTitle:     "🎉 Arquivo adicionado!",
		KeyFileAddedMessage:   "%s foi adicionado à sua coleção!",
		KeyPickErrorTitle:     "Ops!",
		KeyPickErrorMessage:   "Algo deu errado ao escolher o arquivo. Tente novamente.",
		KeyUnsupportedMessage: "Escolha uma imagem ou um arquivo PDF.",
		KeyRemove:             "Remover",
		KeyRemoveTitle:        "Remover arquivo?",
		KeyRemoveMessage:      "Tem certeza de que deseja remover este arquivo da sua coleção?",

		KeyProgressTitle:    "🏆 Seu progresso incrível",
		KeyCompleted:        "Concluídos",
		KeyDayStreak:        "Dias seguidos",
		KeyTotalStars:       "Total de estrelas",
		KeyOverallProgress:  "Progresso geral 📊",
		KeyRecentRewards:    "Prêmios recentes 🎁",
		KeyCategoryProgress: "Progresso por categoria 📚",
		KeyAchievements:     "Conquistas 🏅",

		KeySoundEffects:    "Efeitos sonoros",
		KeyBackgroundMusic: "Música de fundo",
		KeyVibration:       "Vibração suave",
		KeyLanguage:        "Idioma",
		KeyAbout:           "Sobre o app",
		KeyLicense:         "Licença e direitos autorais",
		KeyContact:         "Falar com o suporte",
		KeyAboutTitle:      "🎨 Sobre o Colorir e Aprender",
		KeyAboutMessage:    "Colorir e Aprender é um app de colorir gratuito e de código aberto, feito para crianças autistas e suas famílias.\n\nNossa missão é oferecer uma experiência calma, educativa e alegre.\n\nVersão %s",
		KeyContactTitle:    "📧 Fale conosco",
		KeyContactMessage:  "Para suporte ou dúvidas, escreva para:\n\n%s\n\nAdoramos ouvir nossos artistas!",

		KeyLicenseTitle:       "🛡️ Licença e direitos autorais",
		KeyOwnerInfo:          "Dados do titular da licença",
		KeyFullName:           "Nome completo *",
		KeyIDNumber:           "Número do documento *",
		KeyEmail:              "E-mail de contato *",
		KeyPassword:           "Senha de proteção *",
		KeyLockLicense:        "Bloquear licença",
		KeyUnlockLicense:      "Desbloquear licença",
		KeyLockTitle:          "🔒 Bloquear licença?",
		KeyLockMessage:        "Depois de bloqueada, só você poderá alterar esta licença com sua senha.",
		KeyLockedTitle:        "✅ Licença bloqueada!",
		KeyLockedMessage:      "Sua licença está protegida. Guarde sua senha!",
		KeyUnlockTitle:        "🔓 Desbloquear licença?",
		KeyUnlockMessage:      "Desbloqueie a licença para alterar os dados do titular.",
		KeyUnlockedTitle:      "✅ Licença desbloqueada!",
		KeyUnlockedMessage:    "Agora você pode alterar os dados da licença.",
		KeyMissingInfoTitle:   "Informações faltando",
		KeyMissingInfoMessage: "Preencha todos os campos antes de bloquear a licença.",
		KeyLicenseLocked:      "Licença bloqueada",
		KeyLicenseUnlocked:    "Licença desbloqueada",
		KeyOpenSourceNotice:   "Colorir e Aprender - app de colorir para crianças autistas\nSoftware educativo de código aberto",
	}
}
