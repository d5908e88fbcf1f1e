package articles

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

var sentencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sentenced to\s+([^.;]+)`),
	regexp.MustCompile(`(?i)jailed for\s+([^.;]+)`),
	regexp.MustCompile(`(?i)imprisonment of\s+([^.;]+)`),
	regexp.MustCompile(`(?i)([^.;]+?)\s+imprisonment`),
	regexp.MustCompile(`(?i)sentenced\s+([^.;]+?)\s+to\s+([^.;]+)`),
}

var chargePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:pleaded guilty to|admitted|convicted of|charged with)\s+([^.;]+)`),
	regexp.MustCompile(`(?i)(?:charges of|accused of|committed)\s+([^.;]+)`),
	regexp.MustCompile(`(?i)(?:found guilty of|in connection with)\s+([^.;]+)`),
}

var (
	moneyPattern    = regexp.MustCompile(`£\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*(million|billion|m|k|thousand)?`)
	drugPattern     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(tons?|kilos?|kg|grams?|g|tonnes?)\s+(?:of\s+)?(cocaine|heroin|cannabis|mdma|drugs)`)
	digitPattern    = regexp.MustCompile(`\d+`)
	yearPattern     = regexp.MustCompile(`\d{4}`)
	quotePattern    = regexp.MustCompile(`[“"]([^”"]+)[”"]`)
	durationKeyword = []string{"year", "month", "week"}
)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4})`),
	regexp.MustCompile(`(?i)((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:st|nd|rd|th)?,\s+\d{4})`),
}

// ExtractSentences pulls prison-sentence phrases. A match is kept only when
// it carries a digit and a duration word, and is dropped when an already
// stored phrase contains it.
func ExtractSentences(text string) []string {
	var sentences []string
	for _, pattern := range sentencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			phrase := strings.TrimSpace(m[1])
			if !containsAnyFold(phrase, durationKeyword) || !digitPattern.MatchString(phrase) {
				continue
			}
			if !containedInAny(phrase, sentences) {
				sentences = append(sentences, phrase)
			}
		}
	}
	return sentences
}

// ExtractCharges pulls criminal-charge phrases, deduplicated by substring
// containment the same way sentences are.
func ExtractCharges(text string) []string {
	var charges []string
	for _, pattern := range chargePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			charge := strings.TrimSpace(m[1])
			if charge != "" && !containedInAny(charge, charges) {
				charges = append(charges, charge)
			}
		}
	}
	return charges
}

// ExtractMoneyAmounts finds currency-prefixed numerals and scales them to
// base units: k/thousand x1e3, m/million x1e6, billion x1e9.
func ExtractMoneyAmounts(text string) []MoneyAmount {
	var amounts []MoneyAmount
	for _, m := range moneyPattern.FindAllStringSubmatch(text, -1) {
		numeral := strings.ReplaceAll(m[1], ",", "")
		value, err := strconv.ParseFloat(numeral, 64)
		if err != nil {
			continue
		}
		switch strings.ToLower(m[2]) {
		case "million", "m":
			value *= 1e6
		case "billion":
			value *= 1e9
		case "k", "thousand":
			value *= 1e3
		}
		amounts = append(amounts, MoneyAmount{
			Original:  m[0],
			Amount:    value,
			Formatted: "£" + groupThousands(value),
		})
	}
	return amounts
}

// ExtractDrugQuantities finds "<number> <unit> [of] <drug>" phrases and
// normalizes the quantity to kilograms. A unit containing "kg" never takes
// the gram branch.
func ExtractDrugQuantities(text string) []DrugQuantity {
	var quantities []DrugQuantity
	for _, m := range drugPattern.FindAllStringSubmatch(text, -1) {
		quantity, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		unit := strings.ToLower(m[2])
		kg := quantity
		switch {
		case strings.Contains(unit, "ton") || strings.Contains(unit, "tonne"):
			kg = quantity * 1000
		case strings.HasPrefix(unit, "g") && !strings.Contains(unit, "kg"):
			kg = quantity / 1000
		}
		quantities = append(quantities, DrugQuantity{
			Original:     m[0],
			Quantity:     quantity,
			Unit:         unit,
			Drug:         strings.ToLower(m[3]),
			KgEquivalent: kg,
		})
	}
	return quantities
}

// ExtractTimeline seeds from recognized date entities that carry a 4-digit
// year, then unions two explicit date-literal patterns. Deduplication is by
// exact string equality, preserving first-seen order.
func ExtractTimeline(text string, dates []string) []string {
	var timeline []string
	seen := mapset.NewSet[string]()
	for _, date := range dates {
		if yearPattern.MatchString(date) && seen.Add(date) {
			timeline = append(timeline, date)
		}
	}
	for _, pattern := range datePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if seen.Add(m[1]) {
				timeline = append(timeline, m[1])
			}
		}
	}
	return timeline
}

// ExtractQuotes returns up to five quoted spans longer than 20 characters.
func ExtractQuotes(text string) []string {
	var quotes []string
	for _, m := range quotePattern.FindAllStringSubmatch(text, -1) {
		quote := strings.TrimSpace(m[1])
		if len(quote) > minFragmentLen {
			quotes = append(quotes, quote)
			if len(quotes) == 5 {
				break
			}
		}
	}
	return quotes
}

// containedInAny reports whether candidate is a substring of any stored
// phrase.
func containedInAny(candidate string, stored []string) bool {
	for _, s := range stored {
		if strings.Contains(s, candidate) {
			return true
		}
	}
	return false
}

// groupThousands renders a rounded amount with comma separators, e.g.
// 1500000 -> "1,500,000".
func groupThousands(amount float64) string {
	digits := strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	out := strings.Join(groups, ",")
	if negative {
		out = "-" + out
	}
	return out
}
