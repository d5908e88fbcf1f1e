package articles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordScorerScoresPerKeyword(t *testing.T) {
	scorer := NewKeywordScorer()
	scores, err := scorer.Classify(context.Background(), "A gang smuggled cocaine and heroin, prosecutors said, in a trafficking plot.", nil)
	require.NoError(t, err)
	require.Len(t, scores, 1)

	assert.Equal(t, "Drug Trafficking", scores[0].Category)
	// cocaine + heroin + trafficking.
	assert.InDelta(t, 0.6, scores[0].Confidence, 1e-9)
}

func TestKeywordScorerThresholdIsStrict(t *testing.T) {
	scorer := NewKeywordScorer()

	// One keyword scores 0.2, below threshold.
	scores, err := scorer.Classify(context.Background(), "Officers recovered a gun from the vehicle.", nil)
	require.NoError(t, err)
	assert.Empty(t, scores)

	// Two keywords score 0.4 > 0.3.
	scores, err = scorer.Classify(context.Background(), "Officers recovered a gun and ammunition.", nil)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "Firearms Offenses", scores[0].Category)
}

func TestKeywordScorerCapsConfidence(t *testing.T) {
	scorer := NewKeywordScorer()
	text := "drug cocaine heroin cannabis trafficking smuggling narcotics"

	scores, err := scorer.Classify(context.Background(), text, []string{"Drug Trafficking"})
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 0.95, scores[0].Confidence)
}

func TestKeywordScorerCaseInsensitive(t *testing.T) {
	scorer := NewKeywordScorer()
	scores, err := scorer.Classify(context.Background(), "COCAINE and HEROIN and NARCOTICS seized", []string{"Drug Trafficking"})
	require.NoError(t, err)
	require.Len(t, scores, 1)
}

func TestKeywordScorerEmptyText(t *testing.T) {
	scores, err := NewKeywordScorer().Classify(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestKeywordScorerUnknownLabel(t *testing.T) {
	scores, err := NewKeywordScorer().Classify(context.Background(), "cocaine heroin trafficking", []string{"Jaywalking"})
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestParseCategoryScores(t *testing.T) {
	payload := `Here you go: [{"category": "Fraud", "confidence": 0.8},
		{"category": "Made Up", "confidence": 0.9},
		{"category": "Terrorism", "confidence": 0.99}]`

	scores, err := parseCategoryScores(payload, CrimeCategories)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, CategoryScore{Category: "Fraud", Confidence: 0.8}, scores[0])
	// Confidence is capped like the keyword path.
	assert.Equal(t, CategoryScore{Category: "Terrorism", Confidence: 0.95}, scores[1])
}

func TestParseCategoryScoresNoArray(t *testing.T) {
	_, err := parseCategoryScores("no json here", CrimeCategories)
	assert.Error(t, err)
}
