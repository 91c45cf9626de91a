package assess

import (
	"strings"
	"testing"
)

func TestBuildPrompt_Technical(t *testing.T) {
	p := BuildPrompt("Kubernetes", DifficultyMedium, 5, CategoryTechnical)

	if !strings.Contains(p, "Kubernetes") {
		t.Error("missing topic")
	}
	if !strings.Contains(p, "exactly 5 multiple-choice questions") {
		t.Error("missing question count")
	}
	if !strings.Contains(p, "medium difficulty") {
		t.Error("missing difficulty")
	}
	if !strings.Contains(p, "Answer: <letter>") {
		t.Error("missing answer line in format block")
	}
	if !strings.Contains(p, "a) <option>") {
		t.Error("missing option markers in format block")
	}
}

func TestBuildPrompt_CategoryFramings(t *testing.T) {
	soft := BuildPrompt("conflict resolution", DifficultyEasy, 3, CategorySoftSkill)
	if !strings.Contains(soft, "workplace-scenario") {
		t.Error("soft-skill framing not applied")
	}

	domain := BuildPrompt("anatomy", DifficultyHard, 3, CategoryDomain)
	if !strings.Contains(domain, "terminology") {
		t.Error("domain framing not applied")
	}

	lang := BuildPrompt("Spanish", DifficultyEasy, 3, CategoryLanguage)
	if !strings.Contains(lang, "language-proficiency") {
		t.Error("language framing not applied")
	}
}

func TestBuildPrompt_UnknownCategoryFallsBackToTechnical(t *testing.T) {
	unknown := BuildPrompt("Go", DifficultyEasy, 4, Category("astrology"))
	technical := BuildPrompt("Go", DifficultyEasy, 4, CategoryTechnical)

	if unknown != technical {
		t.Error("unknown category should use the technical template")
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt("SQL", DifficultyHard, 10, CategoryTechnical)
	b := BuildPrompt("SQL", DifficultyHard, 10, CategoryTechnical)
	if a != b {
		t.Error("same inputs must produce the same prompt")
	}
}
