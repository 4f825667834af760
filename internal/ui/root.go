package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/catalog"
	"github.com/colorandlearn/color-and-learn/internal/config"
	"github.com/colorandlearn/color-and-learn/internal/license"
	"github.com/colorandlearn/color-and-learn/internal/upload"
)

// Tab positions
const (
	tabHome = iota
	tabColor
	tabUpload
	tabStars
	tabSettings
)

// tabRoutes maps tab positions to the route they display
var tabRoutes = [...]string{
	tabHome:     RouteHome,
	tabColor:    RouteColoring,
	tabUpload:   RouteUpload,
	tabStars:    RouteProgress,
	tabSettings: RouteSettings,
}

// pushedScreen is a screen shown above the tabs until Back
type pushedScreen struct {
	route Route
	view  fyne.CanvasObject
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	catalog      *catalog.Catalog
	uploads      upload.Uploader
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	license      *license.Form
	verbose      bool

	root    *fyne.Container
	tabs    *container.AppTabs
	stack   []pushedScreen
	current Route

	home     *homeScreen
	pictures *pictureScreen
	uploadV  *uploadScreen
	progress *progressScreen
	prefs    *settingsScreen
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, cat *catalog.Catalog, uploads upload.Uploader) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		catalog:      cat,
		uploads:      uploads,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		license:      license.NewForm(),
		current:      Route{Name: RouteHome},
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.root = container.NewStack()
	ui.buildTabs()
	window.SetContent(ui.root)

	log.Printf("UI setup completed successfully")
	return ui
}

// SetVerbose enables per-tap debug logging
func (ui *RootUI) SetVerbose(verbose bool) {
	ui.verbose = verbose
}

// ApplyLanguage switches the UI language for this run without saving it
func (ui *RootUI) ApplyLanguage(lang string) {
	ui.localization.SetLanguage(lang)
	ui.refreshUITexts()
}

// CurrentRoute returns the route on screen
func (ui *RootUI) CurrentRoute() Route {
	return ui.current
}

// Navigate shows the screen for path, e.g. "/coloring/cat?category=animals"
func (ui *RootUI) Navigate(path string) error {
	route, err := ParseRoute(path)
	if err != nil {
		log.Printf("Navigation failed: %v", err)
		return err
	}
	ui.debugf("Navigate %s", route.Path())

	switch route.Name {
	case RouteHome:
		ui.selectTab(tabHome)
	case RouteColoring:
		ui.pictures.ShowCategory(route.Param(ParamCategory))
		ui.selectTab(tabColor)
	case RouteUpload:
		ui.selectTab(tabUpload)
	case RouteProgress:
		ui.selectTab(tabStars)
	case RouteSettings:
		ui.selectTab(tabSettings)
	case RoutePage:
		page := ui.catalog.PageOrPlaceholder(route.ID)
		if !page.IsPlayable() {
			log.Printf("Ignoring navigation to locked page %s", route.ID)
			return fmt.Errorf("%w: %s", ErrPageLocked, route.ID)
		}
		screen := newColoringScreen(ui, page)
		ui.push(route, ui.catalog.PageTitle(page.ID), screen.view)
	case RouteLicense:
		screen := newLicenseScreen(ui)
		ui.push(route, ui.localization.GetText(KeyLicenseTitle), screen.view)
	}

	ui.current = route
	return nil
}

// Back pops the top pushed screen. It reports false when nothing was pushed.
func (ui *RootUI) Back() bool {
	if len(ui.stack) == 0 {
		return false
	}

	ui.stack = ui.stack[:len(ui.stack)-1]
	if len(ui.stack) > 0 {
		top := ui.stack[len(ui.stack)-1]
		ui.current = top.route
		ui.show(top.view)
		return true
	}

	ui.current = Route{Name: tabRoutes[ui.tabs.SelectedIndex()]}
	ui.show(ui.tabs)
	return true
}

// buildTabs creates all tab screens with the current language
func (ui *RootUI) buildTabs() {
	selected := tabHome
	categoryID := ""
	if ui.tabs != nil {
		selected = ui.tabs.SelectedIndex()
		categoryID = ui.pictures.categoryID
	}

	ui.home = newHomeScreen(ui)
	ui.pictures = newPictureScreen(ui)
	ui.pictures.ShowCategory(categoryID)
	ui.uploadV = newUploadScreen(ui)
	ui.progress = newProgressScreen(ui)
	ui.prefs = newSettingsScreen(ui)

	l := ui.localization
	ui.tabs = container.NewAppTabs(
		container.NewTabItem(IconHome+" "+l.GetText(KeyTabHome), ui.home.view),
		container.NewTabItem(IconPalette+" "+l.GetText(KeyTabColor), ui.pictures.view),
		container.NewTabItem(IconUpload+" "+l.GetText(KeyTabUpload), ui.uploadV.view),
		container.NewTabItem(IconStar+" "+l.GetText(KeyTabStars), ui.progress.view),
		container.NewTabItem(IconSettings+" "+l.GetText(KeyTabSettings), ui.prefs.view),
	)
	ui.tabs.SetTabLocation(container.TabLocationBottom)
	ui.tabs.SelectIndex(selected)
	ui.tabs.OnSelected = func(*container.TabItem) {
		ui.current = Route{Name: tabRoutes[ui.tabs.SelectedIndex()]}
		ui.debugf("Tab selected: %s", ui.current.Name)
	}

	if len(ui.stack) == 0 {
		ui.show(ui.tabs)
	}
}

// selectTab drops pushed screens and shows tab index
func (ui *RootUI) selectTab(index int) {
	if len(ui.stack) > 0 {
		ui.stack = nil
		ui.show(ui.tabs)
	}
	ui.tabs.SelectIndex(index)
}

// push shows view above the tabs with a back header. The header takes the
// swipe-back gesture since scrolling bodies consume their own drags.
func (ui *RootUI) push(route Route, title string, view fyne.CanvasObject) {
	backBtn := widget.NewButton(IconBack+" "+ui.localization.GetText(KeyBack), func() { ui.Back() })
	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := newSwipeBack(container.NewBorder(nil, nil, backBtn, nil, titleLabel), func() { ui.Back() })

	screen := container.NewBorder(header, nil, nil, nil, view)
	ui.stack = append(ui.stack, pushedScreen{route: route, view: screen})
	ui.show(screen)
}

func (ui *RootUI) show(view fyne.CanvasObject) {
	ui.root.Objects = []fyne.CanvasObject{view}
	ui.root.Refresh()
}

// onLanguageChange handles language change from the settings screen
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the tabs with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.buildTabs()
}

// showInfo shows a localized information dialog
func (ui *RootUI) showInfo(titleKey, message string) {
	dialog.ShowInformation(ui.localization.GetText(titleKey), message, ui.window)
}

// confirm shows a localized two-button dialog
func (ui *RootUI) confirm(titleKey, messageKey, confirmKey, dismissKey string, callback func(bool)) {
	l := ui.localization
	d := dialog.NewConfirm(l.GetText(titleKey), l.GetText(messageKey), callback, ui.window)
	d.SetConfirmText(l.GetText(confirmKey))
	d.SetDismissText(l.GetText(dismissKey))
	d.Show()
}

func (ui *RootUI) debugf(format string, args ...any) {
	if ui.verbose {
		log.Printf(format, args...)
	}
}
