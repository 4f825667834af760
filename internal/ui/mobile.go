package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific layout decisions
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CardColumns returns how many picture cards fit in a row
func (m *MobileUI) CardColumns() int {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return MobileColumns
	}
	return DesktopColumns
}

// CreateAdaptiveContainer creates a container that adapts to mobile orientation
func (m *MobileUI) CreateAdaptiveContainer(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(columns, objects...)
}

// CreateMobileButton creates a prominent button for a primary action
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.HighImportance
	return btn
}

// AreaColumns picks a grid width for a page with total areas so rows stay
// roughly square.
func AreaColumns(total int) int {
	switch {
	case total <= 4:
		return 2
	case total <= 9:
		return 3
	case total <= 16:
		return 4
	default:
		return 5
	}
}
