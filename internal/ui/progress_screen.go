package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/progress"
)

// progressScreen is the Stars tab
type progressScreen struct {
	ui        *RootUI
	dashboard *progress.Dashboard
	view      fyne.CanvasObject
}

func newProgressScreen(ui *RootUI) *progressScreen {
	cat := ui.catalog
	s := &progressScreen{
		ui:        ui,
		dashboard: progress.NewDashboard(cat.Stats(), cat.Achievements(), cat.CategoryProgress(), cat.RecentRewards()),
	}
	l := ui.localization
	d := s.dashboard

	totals := widget.NewLabelWithStyle(
		fmt.Sprintf("%s %d   🌸 %d   %s %d", IconStar, d.Stats.TotalStars, d.Stats.TotalFlowers, IconTrophy, d.Earned),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	stats := ui.mobile.CreateAdaptiveContainer(3,
		statCard(fmt.Sprint(d.Stats.TotalCompleted), l.GetText(KeyCompleted)),
		statCard(fmt.Sprintf("%s %d", IconStreak, d.Stats.CurrentStreak), l.GetText(KeyDayStreak)),
		statCard(fmt.Sprintf("%s %d", IconStar, d.Stats.TotalStars), l.GetText(KeyTotalStars)),
	)

	overall := widget.NewProgressBar()
	overall.SetValue(d.Fraction)
	overall.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, d.Percent)
	}

	rewards := container.NewVBox()
	for _, reward := range d.Rewards {
		rewards.Add(widget.NewLabel(fmt.Sprintf("%s +%d  %s", reward.Type.Icon(), reward.Count, reward.Reason)))
	}

	categories := container.NewVBox()
	for _, row := range d.Categories {
		bar := widget.NewProgressBar()
		bar.SetValue(row.Fraction)
		categories.Add(container.NewVBox(
			widget.NewLabelWithStyle(row.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			bar,
			widget.NewLabel(row.Summary),
		))
	}

	achievements := container.NewVBox(widget.NewLabel(d.EarnedLabel()))
	for _, a := range d.Achievements {
		mark := IconLock
		if a.Earned {
			mark = IconCheck
		}
		achievements.Add(widget.NewLabel(fmt.Sprintf("%s %s  %s", mark, a.Title, a.Description)))
	}

	s.view = container.NewVScroll(container.NewVBox(
		heading(l.GetText(KeyProgressTitle), theme.SizeNameSubHeadingText),
		totals,
		stats,
		heading(l.GetText(KeyOverallProgress), theme.SizeNameText),
		widget.NewLabelWithStyle(d.Summary, fyne.TextAlignCenter, fyne.TextStyle{}),
		overall,
		heading(l.GetText(KeyRecentRewards), theme.SizeNameText),
		rewards,
		heading(l.GetText(KeyCategoryProgress), theme.SizeNameText),
		categories,
		heading(l.GetText(KeyAchievements), theme.SizeNameText),
		achievements,
	))
	return s
}

// statCard shows a value over its caption
func statCard(value, caption string) fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle(value, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(caption, fyne.TextAlignCenter, fyne.TextStyle{}),
	)
}
