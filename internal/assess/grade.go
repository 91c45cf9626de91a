package assess

import "strings"

// certificateThreshold is the minimum percentage for a certificate.
// Deliberately not the same constant as the Advanced level cutoff.
const certificateThreshold = 80.0

// Grade scores a submission against the questions. Every presented
// question counts toward the denominator, including ones with no answer
// key; those silently cap the achievable score. Unanswered questions
// are simply wrong. Never fails.
func Grade(questions []Question, sub Submission) Result {
	correct := 0
	for i, q := range questions {
		if !q.Gradable() {
			continue
		}
		chosen, ok := sub[i]
		if !ok {
			continue
		}
		if firstLetter(chosen) == firstLetter(q.CorrectOption) {
			correct++
		}
	}

	total := len(questions)
	pct := 0.0
	if total > 0 {
		pct = 100.0 * float64(correct) / float64(total)
	}

	return Result{
		CorrectCount: correct,
		Total:        total,
		Percentage:   pct,
		Level:        LevelFor(pct),
	}
}

// firstLetter returns the lowercased first character of s, or "" when
// s is empty.
func firstLetter(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToLower(s[:1])
}

// LevelFor maps a percentage to a skill level.
func LevelFor(percentage float64) Level {
	switch {
	case percentage >= 90:
		return LevelExpert
	case percentage >= 75:
		return LevelAdvanced
	case percentage >= 60:
		return LevelIntermediate
	case percentage >= 40:
		return LevelBeginner
	default:
		return LevelNovice
	}
}
