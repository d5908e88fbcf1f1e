package articles

import (
	"context"
	"strings"
)

// DefaultScoreThreshold is the minimum accumulated score a category must
// strictly exceed to be reported.
const DefaultScoreThreshold = 0.3

// CrimeCategories is the fixed classification taxonomy, in reporting order.
var CrimeCategories = []string{
	"Drug Trafficking",
	"Money Laundering",
	"Firearms Offenses",
	"Fraud",
	"Human Trafficking",
	"Cybercrime",
	"Terrorism",
}

var categoryKeywords = map[string][]string{
	"Drug Trafficking":  {"drug", "cocaine", "heroin", "cannabis", "trafficking", "smuggling", "narcotics"},
	"Money Laundering":  {"money laundering", "financial crime", "illegal proceeds", "cash", "offshore", "bank account"},
	"Firearms Offenses": {"firearm", "gun", "weapon", "ammunition", "pistol", "rifle", "shotgun"},
	"Fraud":             {"fraud", "scam", "defraud", "counterfeit", "fake", "victim", "scheme"},
	"Human Trafficking": {"trafficking", "smuggling", "migrant", "illegal entry", "immigration", "border"},
	"Cybercrime":        {"cyber", "online", "internet", "hacker", "ransomware", "malware", "computer"},
	"Terrorism":         {"terror", "extremist", "attack", "bomb", "explosive", "threat", "security"},
}

// KeywordScorer is the deterministic fallback classifier: each keyword from a
// category's list found case-insensitively in the text adds 0.2 confidence,
// capped at 0.95, and a category is reported only when its score strictly
// exceeds Threshold. The scan always covers the caller's full text; no
// truncation is applied here.
type KeywordScorer struct {
	Threshold float64
}

// NewKeywordScorer returns a scorer with the default threshold.
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{Threshold: DefaultScoreThreshold}
}

// Classify implements the Classifier interface. A nil or empty label set
// means the full crime taxonomy. Labels without a keyword list score zero.
func (s *KeywordScorer) Classify(_ context.Context, text string, labels []string) ([]CategoryScore, error) {
	if text == "" {
		return nil, nil
	}
	if len(labels) == 0 {
		labels = CrimeCategories
	}

	lower := strings.ToLower(text)
	var scores []CategoryScore
	for _, category := range labels {
		score := 0.0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				score += 0.2
			}
		}
		if score > 0.95 {
			score = 0.95
		}
		if score > s.Threshold {
			scores = append(scores, CategoryScore{Category: category, Confidence: score})
		}
	}
	return scores, nil
}
