package assess

import "time"

// Question is one multiple-choice assessment item.
type Question struct {
	// Prompt is the question text, without its "Q<n>." numbering prefix.
	Prompt string

	// Options holds exactly 4 answer choices, indexed a..d.
	Options []string

	// CorrectOption is the answer key letter, one of "a".."d". Empty when
	// the generated text omitted or garbled the answer line; such a
	// question is still presented but can never be marked correct.
	CorrectOption string
}

// Gradable reports whether this question carries a usable answer key.
func (q Question) Gradable() bool {
	return q.CorrectOption != ""
}

// Difficulty selects how hard the generated questions should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Category selects the framing template used to phrase the generation
// prompt. Unknown values fall back to CategoryTechnical.
type Category string

const (
	// CategoryTechnical frames questions as practical technical scenarios.
	CategoryTechnical Category = "technical"

	// CategorySoftSkill frames questions as workplace situations.
	CategorySoftSkill Category = "soft-skill"

	// CategoryDomain frames questions around domain terminology and concepts.
	CategoryDomain Category = "domain"

	// CategoryLanguage frames questions as language-proficiency checks.
	CategoryLanguage Category = "language"
)

// Assessment is one test instance, alive only for the duration of a
// single take. Partial state is never persisted.
type Assessment struct {
	Topic      string
	Difficulty Difficulty
	Category   Category
	Questions  []Question

	// TimeLimitSeconds is the suggested time budget for the whole
	// assessment. Informational; nothing enforces it.
	TimeLimitSeconds int

	StartedAt time.Time
}

// Submission maps question index to the chosen option letter ("a".."d").
// A missing index means the question was left unanswered.
type Submission map[int]string

// Level is the discrete skill tier derived from a percentage score.
type Level string

const (
	LevelNovice       Level = "Novice"
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

// Result is the outcome of grading one submission.
type Result struct {
	CorrectCount int
	Total        int
	Percentage   float64
	Level        Level
}

// CertificateEligible reports whether this result qualifies for a
// certificate. The 80 threshold is independent of the Advanced level
// cutoff of 75; the two are distinct on purpose.
func (r Result) CertificateEligible() bool {
	return r.Percentage >= certificateThreshold
}
