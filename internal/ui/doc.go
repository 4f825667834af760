package ui

// Package ui contains the Fyne user interface for Color & Learn. RootUI owns
// the tab bar and a stack of pushed screens (coloring page, license form) and
// resolves route strings such as "/coloring/cat?category=animals" into them.
// All UI strings are localized via Localization.
