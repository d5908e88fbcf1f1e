package articles

import (
	"regexp"
	"strings"
)

// DefaultSummaryLength is the character budget for article summaries.
const DefaultSummaryLength = 200

var sentenceBoundary = regexp.MustCompile(`[.!?]+(\s+|$)`)

// Summarize returns the leading whole sentences of text that fit within
// maxLen characters. Text already within budget is returned unchanged.
func Summarize(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	var b strings.Builder
	for _, sentence := range splitSentences(text) {
		if b.Len()+len(sentence) > maxLen {
			break
		}
		b.WriteString(sentence)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// splitSentences divides text on terminal punctuation followed by
// whitespace, keeping the punctuation with the preceding sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		sentences = append(sentences, strings.TrimSpace(text[start:loc[1]]))
		start = loc[1]
	}
	if trailing := strings.TrimSpace(text[start:]); trailing != "" {
		sentences = append(sentences, trailing)
	}
	return sentences
}
