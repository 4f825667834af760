package model

// MaxStars is the highest rating a page can earn
const MaxStars = 3

// ColoringPage is a static catalog entry. It is never mutated by a session.
type ColoringPage struct {
	ID            string     `yaml:"id"`
	Title         string     `yaml:"title"`
	Difficulty    Difficulty `yaml:"difficulty"`
	Completed     bool       `yaml:"completed"`
	Locked        bool       `yaml:"locked"`
	Stars         int        `yaml:"stars"`
	ImageURL      string     `yaml:"image_url"`
	NumberedAreas int        `yaml:"numbered_areas"`
}

// PriorStars returns the catalog star count clamped to 0..MaxStars
func (p *ColoringPage) PriorStars() int {
	if p.Stars < 0 {
		return 0
	}
	if p.Stars > MaxStars {
		return MaxStars
	}
	return p.Stars
}

// IsPlayable reports whether the page can be opened
func (p *ColoringPage) IsPlayable() bool {
	return !p.Locked && p.NumberedAreas > 0
}

// Category groups coloring pages on the home screen
type Category struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Icon        string          `yaml:"icon"`
	ImageURL    string          `yaml:"image_url"`
	Count       int             `yaml:"count"`
	Stars       int             `yaml:"stars"`
	Pages       []*ColoringPage `yaml:"pages"`
}

// UnlockedPages returns all pages that are not locked
func (c *Category) UnlockedPages() []*ColoringPage {
	var unlocked []*ColoringPage
	for _, page := range c.Pages {
		if !page.Locked {
			unlocked = append(unlocked, page)
		}
	}
	return unlocked
}

// CompletedPages returns all pages the catalog marks as completed
func (c *Category) CompletedPages() []*ColoringPage {
	var completed []*ColoringPage
	for _, page := range c.Pages {
		if page.Completed {
			completed = append(completed, page)
		}
	}
	return completed
}
