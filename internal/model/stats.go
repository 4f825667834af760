package model

// RewardType distinguishes star rewards from flower rewards
type RewardType string

const (
	RewardStar   RewardType = "star"
	RewardFlower RewardType = "flower"
)

// Icon returns the emoji shown next to a reward
func (rt RewardType) Icon() string {
	if rt == RewardStar {
		return "⭐"
	}
	return "🌸"
}

// ProgressStats are the fixed statistics shown on the progress screen
type ProgressStats struct {
	TotalCompleted int `yaml:"total_completed"`
	TotalPages     int `yaml:"total_pages"`
	CurrentStreak  int `yaml:"current_streak"`
	TotalStars     int `yaml:"total_stars"`
	TotalFlowers   int `yaml:"total_flowers"`
}

// Achievement is a badge with a fixed earned flag
type Achievement struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Reward      string `yaml:"reward"`
	Earned      bool   `yaml:"earned"`
}

// CategoryProgress is the per-category completion summary
type CategoryProgress struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Completed int    `yaml:"completed"`
	Total     int    `yaml:"total"`
	Stars     int    `yaml:"stars"`
}

// Reward is a recently granted reward
type Reward struct {
	Type   RewardType `yaml:"type"`
	Count  int        `yaml:"count"`
	Reason string     `yaml:"reason"`
}
