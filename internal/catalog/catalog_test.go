package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colorandlearn/color-and-learn/internal/model"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	cats := c.Categories()
	require.Len(t, cats, 3)
	require.Equal(t, "animals", cats[0].ID)
	require.Equal(t, "vegetables", cats[1].ID)
	require.Equal(t, "fruits", cats[2].ID)

	require.Len(t, c.Pages("animals"), 5)
	require.Len(t, c.Pages("vegetables"), 4)
	require.Len(t, c.Pages("fruits"), 4)
}

func TestPages_Fallbacks(t *testing.T) {
	c := MustDefault()

	require.Equal(t, c.Pages(DefaultCategory), c.Pages(""))
	require.Empty(t, c.Pages("dinosaurs"))
}

func TestPageLookups(t *testing.T) {
	c := MustDefault()

	tests := []struct {
		id    string
		title string
		areas int
	}{
		{"cat", "Friendly Cat 🐱", 8},
		{"dog", "Happy Dog 🐶", 6},
		{"lion", "Brave Lion 🦁", 20},
		{"apple", "Red Apple 🍎", 4},
		{"strawberry", "Sweet Strawberry 🍓", 16},
		{"unicorn", DefaultPageTitle, DefaultTotalAreas},
		{"", DefaultPageTitle, DefaultTotalAreas},
	}

	for _, test := range tests {
		require.Equal(t, test.title, c.PageTitle(test.id), "title for %q", test.id)
		require.Equal(t, test.areas, c.TotalAreas(test.id), "areas for %q", test.id)
	}
}

func TestLockedPages(t *testing.T) {
	c := MustDefault()

	for _, id := range []string{"lion", "corn", "strawberry"} {
		page, ok := c.Page(id)
		require.True(t, ok)
		require.True(t, page.Locked, "%s should be locked", id)
		require.Equal(t, model.DifficultyHard, page.Difficulty)
	}

	cat, ok := c.Page("cat")
	require.True(t, ok)
	require.False(t, cat.Locked)
	require.Equal(t, 3, cat.PriorStars())
}

func TestPageOrPlaceholder(t *testing.T) {
	c := MustDefault()

	page := c.PageOrPlaceholder("cat")
	require.Equal(t, "Friendly Cat", page.Title)

	placeholder := c.PageOrPlaceholder("mystery")
	require.Equal(t, "mystery", placeholder.ID)
	require.Equal(t, DefaultPageTitle, placeholder.Title)
	require.Equal(t, DefaultTotalAreas, placeholder.NumberedAreas)
}

func TestStats(t *testing.T) {
	c := MustDefault()

	stats := c.Stats()
	require.Equal(t, 8, stats.TotalCompleted)
	require.Equal(t, 15, stats.TotalPages)
	require.Equal(t, 5, stats.CurrentStreak)
	require.Equal(t, 18, stats.TotalStars)
	require.Equal(t, 12, stats.TotalFlowers)

	require.Len(t, c.Achievements(), 6)
	require.Len(t, c.CategoryProgress(), 3)

	rewards := c.RecentRewards()
	require.Len(t, rewards, 3)
	require.Equal(t, model.RewardFlower, rewards[1].Type)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "categories: []"},
		{"no areas", "categories:\n  - id: a\n    pages:\n      - id: p\n        difficulty: Easy\n"},
		{"bad difficulty", "categories:\n  - id: a\n    pages:\n      - id: p\n        difficulty: Extreme\n        numbered_areas: 3\n"},
		{"duplicate page", "categories:\n  - id: a\n    pages:\n      - id: p\n        difficulty: Easy\n        numbered_areas: 3\n  - id: b\n    pages:\n      - id: p\n        difficulty: Easy\n        numbered_areas: 3\n"},
	}

	for _, test := range tests {
		_, err := Parse([]byte(test.data))
		require.Error(t, err, test.name)
		require.True(t, errors.Is(err, ErrInvalidCatalog), "%s: %v", test.name, err)
	}

	_, err := Parse([]byte("categories: [unclosed"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	_, err := LoadFile(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	data := "categories:\n  - id: shapes\n    pages:\n      - id: circle\n        title: Circle\n        difficulty: Medium\n        numbered_areas: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Circle", c.PageTitle("circle"))
	require.Equal(t, []*model.ColoringPage{c.PageOrPlaceholder("circle")}, c.Pages("shapes"))
}

func TestLoadDir(t *testing.T) {
	c := MustDefault()
	dir := t.TempDir()

	override := "categories:\n  - id: shapes\n    title: Shapes\n    pages:\n      - id: star\n        title: Shiny Star\n        difficulty: Easy\n        numbered_areas: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(override), 0o644))

	require.NoError(t, c.LoadDir(dir))
	require.Len(t, c.Categories(), 1)
	require.Equal(t, "Shiny Star", c.PageTitle("star"))
	require.Equal(t, 5, c.TotalAreas("star"))
	require.Equal(t, DefaultTotalAreas, c.TotalAreas("cat"))
}

func TestLoadDir_KeepsCurrentOnError(t *testing.T) {
	c := MustDefault()

	err := c.LoadDir(t.TempDir())
	require.Error(t, err)
	require.Len(t, c.Categories(), 3)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("categories: []"), 0o644))
	require.ErrorIs(t, c.LoadDir(dir), ErrInvalidCatalog)
	require.Equal(t, 8, c.TotalAreas("cat"))
}
