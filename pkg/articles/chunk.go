package articles

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// DefaultChunkWords bounds a chunk to the model input window.
	DefaultChunkWords = 512
	// DefaultChunkOverlap is the word overlap between consecutive chunks.
	DefaultChunkOverlap = 50
)

// Chunk splits text into overlapping word windows so each piece fits a
// downstream model's input limit. Text at or below maxWords is returned as a
// single chunk, unchanged. Window i starts at word index i*(maxWords-overlap).
func Chunk(text string, maxWords, overlap int) []string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return []string{text}
	}

	step := maxWords - overlap
	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

var tokenEncoding = sync.OnceValues(func() (*tiktoken.Tiktoken, error) {
	return tiktoken.GetEncoding("cl100k_base")
})

// EstimateTokens reports the token count of text under the cl100k_base
// encoding, falling back to the chars/4 heuristic when the encoding cannot
// be loaded.
func EstimateTokens(text string) int {
	enc, err := tokenEncoding()
	if err != nil {
		return len(text) / 4
	}
	return len(enc.Encode(text, nil, nil))
}
