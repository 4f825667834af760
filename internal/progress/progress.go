// Package progress derives the read-only progress and achievement view from
// the fixed statistics in the catalog.
package progress

import (
	"fmt"
	"math"

	"github.com/colorandlearn/color-and-learn/internal/model"
)

// Percent returns round(completed/total*100), or 0 when total is not positive
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Fraction returns completed/total clamped to 0..1 for progress bars
func Fraction(completed, total int) float64 {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 1
	}
	return float64(completed) / float64(total)
}

// CategoryRow is one line of the per-category section
type CategoryRow struct {
	ID       string
	Title    string
	Summary  string
	Percent  int
	Fraction float64
}

// Dashboard is everything the progress screen shows
type Dashboard struct {
	Stats        model.ProgressStats
	Percent      int
	Fraction     float64
	Summary      string
	Achievements []*model.Achievement
	Earned       int
	Categories   []CategoryRow
	Rewards      []*model.Reward
}

// NewDashboard builds the dashboard. Inputs are not modified.
func NewDashboard(stats model.ProgressStats, achievements []*model.Achievement, categories []*model.CategoryProgress, rewards []*model.Reward) *Dashboard {
	d := &Dashboard{
		Stats:        stats,
		Percent:      Percent(stats.TotalCompleted, stats.TotalPages),
		Fraction:     Fraction(stats.TotalCompleted, stats.TotalPages),
		Summary:      fmt.Sprintf("%d of %d pictures completed! 🎨", stats.TotalCompleted, stats.TotalPages),
		Achievements: achievements,
		Rewards:      rewards,
	}

	for _, a := range achievements {
		if a.Earned {
			d.Earned++
		}
	}

	for _, c := range categories {
		d.Categories = append(d.Categories, CategoryRow{
			ID:       c.ID,
			Title:    c.Title,
			Summary:  fmt.Sprintf("%d/%d completed • %d ⭐", c.Completed, c.Total, c.Stars),
			Percent:  Percent(c.Completed, c.Total),
			Fraction: Fraction(c.Completed, c.Total),
		})
	}

	return d
}

// EarnedLabel returns e.g. "3 of 6 earned"
func (d *Dashboard) EarnedLabel() string {
	return fmt.Sprintf("%d of %d earned", d.Earned, len(d.Achievements))
}
