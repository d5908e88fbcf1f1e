package articles

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return words
}

func TestChunkShortTextUnchanged(t *testing.T) {
	text := strings.Join(numberedWords(512), " ")
	chunks := Chunk(text, DefaultChunkWords, DefaultChunkOverlap)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestChunkPreservesWhitespaceWhenNotSplit(t *testing.T) {
	text := "one  two\n\nthree"
	chunks := Chunk(text, DefaultChunkWords, DefaultChunkOverlap)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestChunkOverlappingWindows(t *testing.T) {
	words := numberedWords(600)
	chunks := Chunk(strings.Join(words, " "), 512, 50)
	require.Len(t, chunks, 2)

	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	require.Len(t, first, 512)
	assert.Equal(t, "w0", first[0])
	assert.Equal(t, "w511", first[511])
	assert.Equal(t, "w462", second[0])
	assert.Equal(t, "w599", second[len(second)-1])

	// Consecutive chunks overlap by exactly 50 words.
	assert.Equal(t, first[462:], second[:50])

	// Every original word index is covered at least once.
	covered := make(map[string]bool)
	for _, chunk := range chunks {
		for _, w := range strings.Fields(chunk) {
			covered[w] = true
		}
	}
	assert.Len(t, covered, 600)
}

func TestChunkWindowStride(t *testing.T) {
	words := numberedWords(30)
	chunks := Chunk(strings.Join(words, " "), 10, 4)
	// Windows start at i*(10-4) = 0, 6, 12, 18, 24.
	require.Len(t, chunks, 5)
	for i, chunk := range chunks {
		fields := strings.Fields(chunk)
		assert.Equal(t, fmt.Sprintf("w%d", i*6), fields[0])
	}
}
