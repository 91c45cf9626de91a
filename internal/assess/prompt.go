package assess

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an examiner writing multiple-choice skill assessments.

Rules:
- Produce exactly the requested number of questions, numbered Q1, Q2, and so on.
- Every question has exactly 4 options labelled a) through d), one of which is correct.
- Every question ends with an answer line of the form "Answer: <letter>".
- Use plain ASCII text. No markdown, no LaTeX, no commentary outside the questions.
- Separate questions with a single blank line.
- Distractors should be plausible, not obviously wrong.`

// categoryFramings phrases the request per test category. Unknown
// categories use the technical framing.
var categoryFramings = map[Category]string{
	CategoryTechnical: "Write practical, scenario-based technical questions that test hands-on knowledge of %s.",
	CategorySoftSkill: "Write workplace-scenario questions that test soft skills related to %s. Each question describes a realistic situation and asks for the best response.",
	CategoryDomain:    "Write questions that test knowledge of the terminology, concepts, and established facts of %s.",
	CategoryLanguage:  "Write language-proficiency questions for %s, testing grammar, vocabulary, and comprehension.",
}

// grammarBlock shows the generator the exact output shape expected by
// the parser.
const grammarBlock = `Q<n>. <question text>
a) <option>
b) <option>
c) <option>
d) <option>
Answer: <letter>`

// BuildPrompt constructs the generation instruction for a topic. Pure
// function; questionCount is assumed positive and small (the caller
// bounds it).
func BuildPrompt(topic string, difficulty Difficulty, questionCount int, category Category) string {
	framing, ok := categoryFramings[category]
	if !ok {
		framing = categoryFramings[CategoryTechnical]
	}

	var b strings.Builder

	fmt.Fprintf(&b, framing, topic)
	fmt.Fprintf(&b, "\n\nGenerate exactly %d multiple-choice questions at %s difficulty.\n", questionCount, difficulty)

	b.WriteString("\nUse exactly this format for every question:\n\n")
	b.WriteString(grammarBlock)
	b.WriteString("\n")

	return b.String()
}
