package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// App information shown in dialogs
const (
	AppVersion   = "1.0.0"
	SupportEmail = "support@colorandlearn.app"
)

// Icons (emojis/symbols)
const (
	IconHome     = "🏠"
	IconPalette  = "🎨"
	IconUpload   = "📁"
	IconStar     = "⭐"
	IconNoStar   = "☆"
	IconSettings = "⚙"
	IconLock     = "🔒"
	IconUnlock   = "🔓"
	IconPicture  = "🖼️"
	IconFile     = "📄"
	IconSave     = "💾"
	IconReset    = "🔄"
	IconTrophy   = "🏆"
	IconStreak   = "🔥"
	IconCheck    = "✅"
	IconInfo     = "ℹ️"
	IconShield   = "🛡️"
	IconMail     = "📧"
	IconBack     = "←"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	AreaCellSize     float32 = 56
	SwatchSize       float32 = 40
	ReferenceHeight  float32 = 120
	SelectedStroke   float32 = 3
	AreaCornerRadius float32 = 8

	DesktopColumns = 4
	MobileColumns  = 2
	PaletteColumns = 6
)
