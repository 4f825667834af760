package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/colorandlearn/color-and-learn/internal/catalog"
	"github.com/colorandlearn/color-and-learn/internal/config"
	"github.com/colorandlearn/color-and-learn/internal/ui"
	"github.com/colorandlearn/color-and-learn/internal/upload"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "app.colorandlearn.mobile"
	AppName = "Color & Learn"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	rt, err := config.LoadRuntime()
	if err != nil {
		log.Printf("failed to load startup config, using defaults: %v", err)
	}

	cat := catalog.MustDefault()
	if rt.Catalog.Dir != "" {
		if err := cat.LoadDir(rt.Catalog.Dir); err != nil {
			log.Printf("catalog override ignored: %v", err)
		}
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewKidsTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, cat, upload.NewService())
	root.SetVerbose(rt.Log.Verbose)
	if rt.UI.Language != "" {
		root.ApplyLanguage(rt.UI.Language)
	}

	myWindow.ShowAndRun()
}
