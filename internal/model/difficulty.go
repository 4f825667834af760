package model

// Difficulty represents how demanding a coloring page is
type Difficulty string

const (
	// DifficultyEasy pages have few, large areas
	DifficultyEasy Difficulty = "Easy"

	// DifficultyMedium pages have a dozen or so areas
	DifficultyMedium Difficulty = "Medium"

	// DifficultyHard pages have many small areas
	DifficultyHard Difficulty = "Hard"
)

// String returns the string representation of Difficulty
func (d Difficulty) String() string {
	return string(d)
}

// IsValid returns true if d is one of the known tiers
func (d Difficulty) IsValid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}
