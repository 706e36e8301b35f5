package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyHome            = "home"
	KeyAbout           = "about"
	KeySettings        = "settings"
	KeyProfile         = "profile"
	KeyGreet           = "greet"
	KeyEnterName       = "enter_name"
	KeyWelcome         = "welcome"
	KeyVersion         = "version"
	KeyTheme           = "theme"
	KeyThemeSystem     = "theme_system"
	KeyThemeLight      = "theme_light"
	KeyThemeDark       = "theme_dark"
	KeyLanguage        = "language"
	KeyUsername        = "username"
	KeyEmail           = "email"
	KeySave            = "save"
	KeySignOut         = "sign_out"
	KeyProfileSaved    = "profile_saved"
	KeyInvalidEmail    = "invalid_email"
	KeyNewFile         = "new_file"
	KeyOpened          = "opened"
	KeySavedTo         = "saved_to"
	KeyDevTools        = "devtools"
	KeyDevToolsHint    = "devtools_hint"
	KeyCommandFailed   = "command_failed"
	KeyUnknownRoute    = "unknown_route"
	KeyThemeSwitched   = "theme_switched"
	KeyDocumentation   = "documentation"
	KeyLanguageChanged = "language_changed"
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

// SetLanguage sets the current language. "system" resolves through the
// platform locale; unsupported languages leave the current one in place.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

func systemLanguage() string {
	loc := lang.SystemLocale().String()
	if i := strings.IndexAny(loc, "-_"); i >= 0 {
		loc = loc[:i]
	}
	return strings.ToLower(loc)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// LanguageCodes returns "system" followed by the supported codes, sorted.
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.texts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return append([]string{"system"}, codes...)
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Squri",
		KeyHome:            "Home",
		KeyAbout:           "About",
		KeySettings:        "Settings",
		KeyProfile:         "Profile",
		KeyGreet:           "Greet",
		KeyEnterName:       "Enter a name...",
		KeyWelcome:         "Welcome, %s",
		KeyVersion:         "Version",
		KeyTheme:           "Theme",
		KeyThemeSystem:     "System",
		KeyThemeLight:      "Light",
		KeyThemeDark:       "Dark",
		KeyLanguage:        "Language",
		KeyUsername:        "Username",
		KeyEmail:           "Email",
		KeySave:            "Save",
		KeySignOut:         "Sign out",
		KeyProfileSaved:    "Profile saved",
		KeyInvalidEmail:    "Invalid email address",
		KeyNewFile:         "New file feature coming soon...",
		KeyOpened:          "Opened: %s",
		KeySavedTo:         "Saved to: %s",
		KeyDevTools:        "Developer tools",
		KeyDevToolsHint:    "Press F12 again to hide developer tools",
		KeyCommandFailed:   "Command failed: %s",
		KeyUnknownRoute:    "Unknown page: %s",
		KeyThemeSwitched:   "Theme: %s",
		KeyDocumentation:   "Documentation",
		KeyLanguageChanged: "Language changed",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Squri",
		KeyHome:            "Главная",
		KeyAbout:           "О программе",
		KeySettings:        "Настройки",
		KeyProfile:         "Профиль",
		KeyGreet:           "Поприветствовать",
		KeyEnterName:       "Введите имя...",
		KeyWelcome:         "Добро пожаловать, %s",
		KeyVersion:         "Версия",
		KeyTheme:           "Тема",
		KeyThemeSystem:     "Системная",
		KeyThemeLight:      "Светлая",
		KeyThemeDark:       "Тёмная",
		KeyLanguage:        "Язык",
		KeyUsername:        "Имя пользователя",
		KeyEmail:           "Эл. почта",
		KeySave:            "Сохранить",
		KeySignOut:         "Выйти",
		KeyProfileSaved:    "Профиль сохранён",
		KeyInvalidEmail:    "Неверный адрес эл. почты",
		KeyNewFile:         "Создание файлов скоро появится...",
		KeyOpened:          "Открыто: %s",
		KeySavedTo:         "Сохранено в: %s",
		KeyDevTools:        "Инструменты разработчика",
		KeyDevToolsHint:    "Нажмите F12 ещё раз, чтобы скрыть инструменты",
		KeyCommandFailed:   "Ошибка команды: %s",
		KeyUnknownRoute:    "Неизвестная страница: %s",
		KeyThemeSwitched:   "Тема: %s",
		KeyDocumentation:   "Документация",
		KeyLanguageChanged: "Язык изменён",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Squri",
		KeyHome:            "Início",
		KeyAbout:           "Sobre",
		KeySettings:        "Configurações",
		KeyProfile:         "Perfil",
		KeyGreet:           "Saudar",
		KeyEnterName:       "Digite um nome...",
		KeyWelcome:         "Bem-vindo, %s",
		KeyVersion:         "Versão",
		KeyTheme:           "Tema",
		KeyThemeSystem:     "Sistema",
		KeyThemeLight:      "Claro",
		KeyThemeDark:       "Escuro",
		KeyLanguage:        "Idioma",
		KeyUsername:        "Usuário",
		KeyEmail:           "E-mail",
		KeySave:            "Salvar",
		KeySignOut:         "Sair",
		KeyProfileSaved:    "Perfil salvo",
		KeyInvalidEmail:    "Endereço de e-mail inválido",
		KeyNewFile:         "Novo arquivo em breve...",
		KeyOpened:          "Aberto: %s",
		KeySavedTo:         "Salvo em: %s",
		KeyDevTools:        "Ferramentas de desenvolvedor",
		KeyDevToolsHint:    "Pressione F12 novamente para ocultar as ferramentas",
		KeyCommandFailed:   "Falha no comando: %s",
		KeyUnknownRoute:    "Página desconhecida: %s",
		KeyThemeSwitched:   "Tema: %s",
		KeyDocumentation:   "Documentação",
		KeyLanguageChanged: "Idioma alterado",
	}
}
