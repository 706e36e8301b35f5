package ui

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/config"
)

func (f *Frontend) page(route Route) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(f.loc.GetText(route.TitleKey()), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	var body fyne.CanvasObject
	switch route {
	case RouteAbout:
		body = f.aboutPage()
	case RouteSettings:
		body = f.settingsPage()
	case RouteProfile:
		body = f.profilePage()
	default:
		body = f.homePage()
	}
	return container.NewBorder(container.NewVBox(title, widget.NewSeparator()), nil, nil, nil, container.NewVScroll(body))
}

func (f *Frontend) homePage() fyne.CanvasObject {
	profile := f.settings.GetProfile()
	welcome := widget.NewLabel(fmt.Sprintf(f.loc.GetText(KeyWelcome), profile.DisplayName()))

	f.greetName = widget.NewEntry()
	f.greetName.SetPlaceHolder(f.loc.GetText(KeyEnterName))
	f.greetName.OnSubmitted = func(string) { f.greet() }
	f.greetResult = widget.NewLabel("")

	greetBtn := widget.NewButton(f.loc.GetText(KeyGreet), f.greet)
	greetBtn.Importance = widget.HighImportance

	return container.NewVBox(
		welcome,
		container.NewBorder(nil, nil, nil, greetBtn, f.greetName),
		f.greetResult,
	)
}

func (f *Frontend) greet() {
	out, err := f.invoke(command.CmdGreet, map[string]string{"name": strings.TrimSpace(f.greetName.Text)})
	if err != nil {
		return
	}
	var msg string
	if err := json.Unmarshal(out, &msg); err != nil {
		f.log.Warn().Err(err).Msg("decode greet result")
		return
	}
	f.greetResult.SetText(msg)
}

func (f *Frontend) aboutPage() fyne.CanvasObject {
	icon := canvas.NewImageFromResource(AppIcon)
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(64, 64))

	f.aboutInfo = widget.NewLabel(DashPlaceholder)
	f.aboutInfo.Wrapping = fyne.TextWrapWord
	if out, err := f.invoke(command.CmdGetAppInfo, nil); err == nil {
		var info command.AppInfo
		if err := json.Unmarshal(out, &info); err == nil {
			f.aboutInfo.SetText(fmt.Sprintf("%s%s%s %s\n%s",
				info.Name, MiddleDotSeparator, f.loc.GetText(KeyVersion), info.Version, info.Description))
		}
	}

	docs := widget.NewButton(f.loc.GetText(KeyDocumentation), f.openDocumentation)
	docs.Importance = widget.LowImportance

	return container.NewVBox(
		container.NewHBox(icon, f.aboutInfo),
		docs,
	)
}

func (f *Frontend) themeLabel(mode config.ThemeMode) string {
	switch mode {
	case config.ThemeLight:
		return f.loc.GetText(KeyThemeLight)
	case config.ThemeDark:
		return f.loc.GetText(KeyThemeDark)
	default:
		return f.loc.GetText(KeyThemeSystem)
	}
}

func (f *Frontend) languageLabel(code string) string {
	if code == "system" {
		return f.loc.GetText(KeyThemeSystem)
	}
	if name, ok := f.loc.GetAvailableLanguages()[code]; ok {
		return name
	}
	return code
}

func (f *Frontend) settingsPage() fyne.CanvasObject {
	modes := f.settings.GetThemeModeOptions()
	labels := make([]string, len(modes))
	byLabel := make(map[string]config.ThemeMode, len(modes))
	for i, m := range modes {
		labels[i] = f.themeLabel(m)
		byLabel[labels[i]] = m
	}
	f.themeRadio = widget.NewRadioGroup(labels, nil)
	f.themeRadio.Horizontal = true
	f.themeRadio.SetSelected(f.themeLabel(f.settings.GetThemeMode()))
	f.themeRadio.OnChanged = func(label string) {
		mode, ok := byLabel[label]
		if !ok || mode == f.settings.GetThemeMode() {
			return
		}
		f.settings.SetThemeMode(mode)
		f.ApplyTheme()
	}

	codes := f.loc.LanguageCodes()
	langLabels := make([]string, len(codes))
	codeByLabel := make(map[string]string, len(codes))
	for i, c := range codes {
		langLabels[i] = f.languageLabel(c)
		codeByLabel[langLabels[i]] = c
	}
	language := widget.NewSelect(langLabels, nil)
	language.SetSelected(f.languageLabel(f.settings.GetLanguage()))
	language.OnChanged = func(label string) {
		f.changeLanguage(codeByLabel[label])
	}

	return widget.NewForm(
		widget.NewFormItem(f.loc.GetText(KeyTheme), f.themeRadio),
		widget.NewFormItem(f.loc.GetText(KeyLanguage), language),
	)
}

func (f *Frontend) changeLanguage(code string) {
	if code == "" || code == f.settings.GetLanguage() {
		return
	}
	f.settings.SetLanguage(code)
	f.loc.SetLanguage(code)
	f.window.SetContent(f.Content())
	f.Notice(f.loc.GetText(KeyLanguageChanged))
}

func (f *Frontend) profilePage() fyne.CanvasObject {
	profile := f.settings.GetProfile()

	f.profileUser = widget.NewEntry()
	f.profileUser.SetText(profile.Username)
	f.profileEmail = widget.NewEntry()
	f.profileEmail.SetText(profile.Email)
	f.profileEmail.Validator = validateEmail

	save := widget.NewButton(f.loc.GetText(KeySave), f.saveProfile)
	save.Importance = widget.HighImportance
	signOut := widget.NewButton(f.loc.GetText(KeySignOut), f.signOut)
	signOut.Importance = widget.LowImportance
	if !profile.IsSignedIn() {
		signOut.Disable()
	}

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(f.loc.GetText(KeyUsername), f.profileUser),
			widget.NewFormItem(f.loc.GetText(KeyEmail), f.profileEmail),
		),
		container.NewHBox(save, signOut),
	)
}

// validateEmail accepts an empty address.
func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fmt.Errorf("invalid email address %q", s)
	}
	return nil
}

func (f *Frontend) saveProfile() {
	if err := validateEmail(f.profileEmail.Text); err != nil {
		f.Notice(f.loc.GetText(KeyInvalidEmail))
		return
	}
	f.settings.SetProfile(config.Profile{
		Username: strings.TrimSpace(f.profileUser.Text),
		Email:    strings.TrimSpace(f.profileEmail.Text),
	})
	f.render(RouteProfile)
	f.Notice(f.loc.GetText(KeyProfileSaved))
}

func (f *Frontend) signOut() {
	f.settings.ClearProfile()
	f.render(RouteProfile)
}
