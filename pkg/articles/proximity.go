package articles

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	perpetratorWindow  = 200
	relationshipWindow = 100
)

// Crime-indicator phrases checked case-insensitively inside a mention window.
var crimeIndicators = []string{
	"convicted", "sentenced", "pleaded guilty", "admitted", "arrested",
	"charged", "jailed", "imprisoned", "smuggler", "dealer", "trafficker",
}

var relationshipIndicators = []string{
	"member of", "works for", "associated with", "leader of", "part of",
}

var skipPronouns = mapset.NewSet[string]("he", "she", "they", "him", "her")

var locationPrepositions = []string{"from", "of", "in"}

// ExtractPerpetrators scans a +/-200 character window around every mention of
// each candidate person. A person whose window contains a crime indicator
// becomes a perpetrator; age and location are then pulled from that first
// qualifying window by ordered pattern lists, first match winning per
// attribute. At most one record is produced per distinct name.
func ExtractPerpetrators(text string, people []string) []Perpetrator {
	var perpetrators []Perpetrator
	recorded := mapset.NewSet[string]()

	for _, candidate := range people {
		person := strings.TrimSpace(candidate)
		if len(person) < 4 || skipPronouns.Contains(strings.ToLower(person)) {
			continue
		}
		if recorded.Contains(person) {
			continue
		}

		for _, pos := range indexAll(text, person) {
			window := windowAround(text, pos, perpetratorWindow)
			if !containsAnyFold(window, crimeIndicators) {
				continue
			}
			perpetrators = append(perpetrators, Perpetrator{
				Name:     person,
				Age:      extractAge(window, person),
				Location: extractLocation(window, person),
			})
			recorded.Add(person)
			break
		}
	}
	return perpetrators
}

// ExtractRelationships records person-organization links whenever both appear
// in a +/-100 character window around a person mention together with a
// relationship indicator phrase. Only the first indicator found is recorded
// per window, but every qualifying window contributes, so identical triples
// from different windows are preserved.
func ExtractRelationships(text string, people, organizations []string) []Relationship {
	var relationships []Relationship
	for _, person := range people {
		positions := indexAll(text, person)
		for _, org := range organizations {
			for _, pos := range positions {
				window := windowAround(text, pos, relationshipWindow)
				if !strings.Contains(window, org) {
					continue
				}
				lower := strings.ToLower(window)
				for _, indicator := range relationshipIndicators {
					if strings.Contains(lower, indicator) {
						relationships = append(relationships, Relationship{
							From:         person,
							To:           org,
							Relationship: indicator,
						})
						break
					}
				}
			}
		}
	}
	return relationships
}

func extractAge(window, person string) string {
	quoted := regexp.QuoteMeta(person)
	patterns := []string{
		`\b` + quoted + `.*?(\d{1,2})[,\s]`,
		`\b` + quoted + `.*?aged\s+(\d{1,2})`,
		`(\d{1,2})[\-\s]year[\-\s]old\s+` + quoted,
	}
	return firstSubmatch(window, patterns)
}

func extractLocation(window, person string) string {
	quoted := regexp.QuoteMeta(person)
	patterns := make([]string, 0, len(locationPrepositions))
	for _, prep := range locationPrepositions {
		patterns = append(patterns, `\b`+quoted+`.*?`+prep+`\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	}
	return firstSubmatch(window, patterns)
}

func firstSubmatch(text string, patterns []string) string {
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// indexAll returns the byte offsets of every occurrence of sub in text.
func indexAll(text, sub string) []int {
	if sub == "" {
		return nil
	}
	var positions []int
	offset := 0
	for {
		i := strings.Index(text[offset:], sub)
		if i < 0 {
			return positions
		}
		positions = append(positions, offset+i)
		offset += i + len(sub)
	}
}

func windowAround(text string, pos, radius int) string {
	start := pos - radius
	if start < 0 {
		start = 0
	}
	end := pos + radius
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func containsAnyFold(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
