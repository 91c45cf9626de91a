package assess

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the generation response. Sized
	// for 20 questions with room to spare.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// timeLimitPerQuestion is the suggested seconds-per-question budget by
// difficulty. Informational only.
var timeLimitPerQuestion = map[Difficulty]int{
	DifficultyEasy:   30,
	DifficultyMedium: 45,
	DifficultyHard:   60,
}

// TimeLimitSeconds returns the suggested budget for a whole assessment.
func TimeLimitSeconds(difficulty Difficulty, questionCount int) int {
	per, ok := timeLimitPerQuestion[difficulty]
	if !ok {
		per = timeLimitPerQuestion[DifficultyMedium]
	}
	return per * questionCount
}
