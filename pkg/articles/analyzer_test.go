package articles

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecognizer struct {
	entities []RecognizedEntity
	err      error
	calls    int
}

func (s *stubRecognizer) Recognize(context.Context, string) ([]RecognizedEntity, error) {
	s.calls++
	return s.entities, s.err
}

type failingClassifier struct{}

func (failingClassifier) Classify(context.Context, string, []string) ([]CategoryScore, error) {
	return nil, errors.New("model unavailable")
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

const articleBody = "John Smith, 34, from Manchester, was arrested and later pleaded guilty to conspiracy to supply cocaine. " +
	"He was sentenced to 12 years in prison on 5 March 2020. " +
	"Investigators from the National Crime Agency said the gang smuggling operation moved 2 tons of cocaine worth £1.5 million. " +
	"Prosecutors said John Smith was a member of the Zodiac Crew."

func articleJSON() string {
	return `{"content": "` + articleBody + `", "title": "Gang jailed"}`
}

func TestAnalyzeFullDocument(t *testing.T) {
	recognizer := &stubRecognizer{entities: []RecognizedEntity{
		{Text: "John Smith", Type: "PER"},
		{Text: "Manchester", Type: "LOC"},
		{Text: "National Crime Agency", Type: "ORG"},
		{Text: "Zodiac Crew", Type: "ORG"},
		{Text: "5 March 2020", Type: "DATE"},
	}}

	analyzer := NewAnalyzer(recognizer, nil, quietLogger())
	result := analyzer.Analyze(context.Background(), "article.json", articleJSON())

	assert.Empty(t, result.Error)
	assert.Empty(t, result.ExtractionError)
	assert.Equal(t, "article.json", result.Source)
	assert.Equal(t, "Gang jailed", result.Title)
	assert.False(t, result.ProcessedAt.IsZero())

	require.NotNil(t, result.Entities)
	assert.Equal(t, []string{"John Smith"}, result.Entities.People)
	assert.Equal(t, []string{"Manchester"}, result.Locations)
	assert.Equal(t, []string{"National Crime Agency", "Zodiac Crew"}, result.Organizations)

	require.Len(t, result.Perpetrators, 1)
	assert.Equal(t, "John Smith", result.Perpetrators[0].Name)
	assert.Equal(t, "34", result.Perpetrators[0].Age)
	assert.Equal(t, "Manchester", result.Perpetrators[0].Location)

	assert.Contains(t, result.Sentences, "12 years in prison on 5 March 2020")
	assert.Contains(t, result.Charges, "conspiracy to supply cocaine")

	require.Len(t, result.MoneyAmounts, 1)
	assert.Equal(t, 1500000.0, result.MoneyAmounts[0].Amount)

	require.Len(t, result.DrugQuantities, 1)
	assert.Equal(t, 2000.0, result.DrugQuantities[0].KgEquivalent)

	assert.Contains(t, result.Timeline, "5 March 2020")
	assert.Contains(t, result.Categories, "Drug Trafficking")

	require.Len(t, result.Relationships, 1)
	assert.Equal(t, "member of", result.Relationships[0].Relationship)

	assert.NotEmpty(t, result.Summary)
	assert.LessOrEqual(t, len(result.Summary), DefaultSummaryLength)
}

func TestAnalyzeInsufficientContent(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, quietLogger())
	result := analyzer.Analyze(context.Background(), "empty.html", "<html><body><p>hi</p></body></html>")

	assert.Equal(t, "Insufficient content extracted", result.ExtractionError)
	assert.Empty(t, result.Content)
	assert.Nil(t, result.Entities)
	assert.Empty(t, result.Perpetrators)
}

func TestAnalyzeRecognizerFailureDegrades(t *testing.T) {
	recognizer := &stubRecognizer{err: errors.New("model crashed")}
	analyzer := NewAnalyzer(recognizer, nil, quietLogger())

	result := analyzer.Analyze(context.Background(), "article.json", articleJSON())

	assert.Empty(t, result.Error)
	require.NotNil(t, result.Entities)
	assert.Empty(t, result.Entities.People)
	// Structured facts do not depend on the recognizer.
	assert.NotEmpty(t, result.Charges)
	assert.NotEmpty(t, result.MoneyAmounts)
}

func TestAnalyzeNilRecognizer(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, quietLogger())
	result := analyzer.Analyze(context.Background(), "article.json", articleJSON())

	require.NotNil(t, result.Entities)
	assert.Empty(t, result.Entities.People)
	assert.NotEmpty(t, result.Sentences)
}

func TestAnalyzeClassifierFailureFallsBackToKeywords(t *testing.T) {
	analyzer := NewAnalyzer(nil, failingClassifier{}, quietLogger())
	result := analyzer.Analyze(context.Background(), "article.json", articleJSON())

	assert.Contains(t, result.Categories, "Drug Trafficking")
}

func TestAnalyzeChunksLongBodies(t *testing.T) {
	recognizer := &stubRecognizer{}
	analyzer := NewAnalyzer(recognizer, nil, quietLogger())

	long := `{"content": "` + strings.Repeat("word ", 1200) + `", "title": "T"}`
	analyzer.Analyze(context.Background(), "long.json", long)

	// 1200 words with a 512/50 window means three recognizer calls.
	assert.Equal(t, 3, recognizer.calls)
}
