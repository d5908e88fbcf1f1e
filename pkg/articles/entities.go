package articles

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Organize buckets recognizer output into the semantic categories used by the
// rest of the pipeline. Type tags are recognizer-native: person tags map to
// people, location and geo-political tags to locations, organization tags to
// organizations, date and time tags to dates, and anything else to
// miscellaneous. Surface strings are trimmed, entries of length <= 1 are
// dropped, and each bucket is deduplicated case-sensitively.
func Organize(entities []RecognizedEntity) EntityBag {
	seen := map[string]mapset.Set[string]{
		"people":        mapset.NewSet[string](),
		"locations":     mapset.NewSet[string](),
		"organizations": mapset.NewSet[string](),
		"miscellaneous": mapset.NewSet[string](),
		"dates":         mapset.NewSet[string](),
	}

	var bag EntityBag
	for _, entity := range entities {
		text := strings.TrimSpace(entity.Text)
		if len(text) <= 1 {
			continue
		}

		category := categoryForType(entity.Type)
		if !seen[category].Add(text) {
			continue
		}
		switch category {
		case "people":
			bag.People = append(bag.People, text)
		case "locations":
			bag.Locations = append(bag.Locations, text)
		case "organizations":
			bag.Organizations = append(bag.Organizations, text)
		case "dates":
			bag.Dates = append(bag.Dates, text)
		default:
			bag.Miscellaneous = append(bag.Miscellaneous, text)
		}
	}
	return bag
}

func categoryForType(tag string) string {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "PER", "PERSON":
		return "people"
	case "LOC", "GPE":
		return "locations"
	case "ORG", "ORGANIZATION":
		return "organizations"
	case "DATE", "TIME":
		return "dates"
	default:
		return "miscellaneous"
	}
}
