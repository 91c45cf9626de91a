package assess

import (
	"regexp"
	"strings"
)

var (
	// questionMarkerRe matches the "Q<n>." numbering prefix, with or
	// without the trailing dot.
	questionMarkerRe = regexp.MustCompile(`^[Qq]\d+[.)]?\s*`)

	// optionMarkerRe matches the "a)".."d)" option prefix. Generators
	// occasionally emit "a." instead of "a)".
	optionMarkerRe = regexp.MustCompile(`^[a-dA-D][).]\s*`)
)

// Parse turns raw generated text into structured questions. Malformed
// blocks are dropped, never reported; a block with no answer line still
// yields a question, just one that can never be marked correct. Output
// order matches input order. Pure transform.
func Parse(rawText string) []Question {
	var questions []Question
	for _, block := range splitBlocks(rawText) {
		if q, ok := parseBlock(block); ok {
			questions = append(questions, q)
		}
	}
	return questions
}

// splitBlocks divides the text into one slice of non-empty lines per
// question. Blocks start at each "Q<n>" marker; when the generator
// numbered nothing, consecutive non-empty lines separated by blank
// lines form the blocks instead.
func splitBlocks(rawText string) [][]string {
	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")

	hasMarkers := false
	for _, line := range lines {
		if questionMarkerRe.MatchString(strings.TrimSpace(line)) {
			hasMarkers = true
			break
		}
	}

	var blocks [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if hasMarkers {
			// Blank lines inside a block are tolerated; only a new
			// question marker starts a new block. Text before the
			// first marker is preamble and gets dropped later.
			if questionMarkerRe.MatchString(trimmed) {
				flush()
			}
			if trimmed != "" {
				current = append(current, trimmed)
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()

	if hasMarkers && len(blocks) > 0 && !questionMarkerRe.MatchString(blocks[0][0]) {
		blocks = blocks[1:]
	}

	return blocks
}

// parseBlock recovers one question from a block of non-empty lines:
// prompt, four options, optionally an answer line. Returns false when
// the block is too short or its option lines are missing.
func parseBlock(lines []string) (Question, bool) {
	if len(lines) < 5 {
		return Question{}, false
	}

	prompt := strings.TrimSpace(questionMarkerRe.ReplaceAllString(lines[0], ""))
	if prompt == "" {
		return Question{}, false
	}

	options := make([]string, 0, 4)
	for _, line := range lines[1:5] {
		if isAnswerLine(line) {
			// Fewer than 4 options before the answer line.
			return Question{}, false
		}
		options = append(options, strings.TrimSpace(optionMarkerRe.ReplaceAllString(line, "")))
	}

	correct := ""
	for _, line := range lines[5:] {
		if isAnswerLine(line) {
			correct = extractAnswer(line)
			break
		}
	}

	return Question{Prompt: prompt, Options: options, CorrectOption: correct}, true
}

func isAnswerLine(line string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "answer")
}

// extractAnswer pulls the option letter out of an "Answer: <letter>"
// line. Anything that does not resolve to a..d comes back empty, which
// grades as never-correct.
func extractAnswer(line string) string {
	rest := strings.TrimSpace(line)
	rest = rest[len("answer"):]
	rest = strings.TrimSpace(strings.TrimLeft(rest, ":. \t"))
	if rest == "" {
		return ""
	}
	letter := strings.ToLower(string(rest[0]))
	if letter < "a" || letter > "d" {
		return ""
	}
	return letter
}
