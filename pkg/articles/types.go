package articles

import (
	"context"
	"time"
)

// ExtractionMethod identifies which content extraction strategy produced a
// document's body text.
type ExtractionMethod string

const (
	MethodJSONEmbedded   ExtractionMethod = "json_embedded"
	MethodPureJSON       ExtractionMethod = "pure_json"
	MethodHTMLStructured ExtractionMethod = "html_structured"
	MethodHTMLParagraphs ExtractionMethod = "html_fallback_paragraphs"
	MethodRawTextLines   ExtractionMethod = "raw_text_lines"
)

// ExtractedContent is the normalized output of the content extraction chain.
// Content may be empty when no strategy produced a usable body.
type ExtractedContent struct {
	Title   string           `json:"title"`
	Content string           `json:"content"`
	Method  ExtractionMethod `json:"extraction_method"`
}

// RecognizedEntity is a single span returned by an entity recognizer.
type RecognizedEntity struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// EntityBag holds recognized entities bucketed by semantic category.
// Each bucket contains unique trimmed surface strings.
type EntityBag struct {
	People        []string `json:"people"`
	Locations     []string `json:"locations"`
	Organizations []string `json:"organizations"`
	Miscellaneous []string `json:"miscellaneous"`
	Dates         []string `json:"dates"`
}

// Perpetrator is a person judged by nearby crime-indicator language to be
// implicated in an offense. Age and Location are best-effort and may be empty.
type Perpetrator struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Location string `json:"location"`
}

// Relationship links a person to an organization through an indicator phrase
// found in a shared mention window.
type Relationship struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Relationship string `json:"relationship"`
}

// MoneyAmount is a monetary figure normalized to base currency units.
type MoneyAmount struct {
	Original  string  `json:"original"`
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

// DrugQuantity is a seized-drug figure normalized to kilograms.
type DrugQuantity struct {
	Original     string  `json:"original"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Drug         string  `json:"drug"`
	KgEquivalent float64 `json:"kgEquivalent"`
}

// CategoryScore is one crime-category label with its capped confidence.
type CategoryScore struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// ProcessingResult is the terminal record for one document. On failure the
// Error or ExtractionError field coexists with whatever partial fields were
// extracted before the failure.
type ProcessingResult struct {
	Title           string         `json:"title,omitempty"`
	Content         string         `json:"content,omitempty"`
	Summary         string         `json:"summary,omitempty"`
	Source          string         `json:"source"`
	ProcessedAt     time.Time      `json:"processedAt"`
	Entities        *EntityBag     `json:"entities,omitempty"`
	Locations       []string       `json:"locations,omitempty"`
	Organizations   []string       `json:"organizations,omitempty"`
	Timeline        []string       `json:"timeline,omitempty"`
	Perpetrators    []Perpetrator  `json:"perpetrators,omitempty"`
	Sentences       []string       `json:"sentences,omitempty"`
	Charges         []string       `json:"charges,omitempty"`
	MoneyAmounts    []MoneyAmount  `json:"moneyAmounts,omitempty"`
	DrugQuantities  []DrugQuantity `json:"drugQuantities,omitempty"`
	Categories      []string       `json:"categories,omitempty"`
	Relationships   []Relationship `json:"relationships,omitempty"`
	Quotes          []string       `json:"quotes,omitempty"`
	ExtractionError string         `json:"extraction_error,omitempty"`
	Error           string         `json:"error,omitempty"`
}

// EntityRecognizer is the external NER capability. The pipeline chunks text
// before calling Recognize and merges results across chunks. Implementations
// must be safe for concurrent use.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]RecognizedEntity, error)
}

// Classifier scores text against a label set. A nil or empty label set means
// the implementation's default taxonomy.
type Classifier interface {
	Classify(ctx context.Context, text string, labels []string) ([]CategoryScore, error)
}
