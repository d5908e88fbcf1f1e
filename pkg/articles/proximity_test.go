package articles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPerpetratorsWithAgeAndLocation(t *testing.T) {
	text := "John Smith, 34, from Manchester, was arrested after officers stopped his van on the motorway."

	perpetrators := ExtractPerpetrators(text, []string{"John Smith"})
	require.Len(t, perpetrators, 1)
	assert.Equal(t, "John Smith", perpetrators[0].Name)
	assert.Equal(t, "34", perpetrators[0].Age)
	assert.Equal(t, "Manchester", perpetrators[0].Location)
}

func TestExtractPerpetratorsRequiresCrimeIndicator(t *testing.T) {
	text := "John Smith, 34, from Manchester, spoke to reporters outside his home yesterday evening."
	assert.Empty(t, ExtractPerpetrators(text, []string{"John Smith"}))
}

func TestExtractPerpetratorsSkipsPronounsAndShortNames(t *testing.T) {
	text := "He was arrested. Bob was arrested. They admitted the charges."
	assert.Empty(t, ExtractPerpetrators(text, []string{"He", "Bob", "They", "she"}))
}

func TestExtractPerpetratorsOneRecordPerName(t *testing.T) {
	text := "John Smith was arrested in May. Months later John Smith was convicted at the crown court."

	perpetrators := ExtractPerpetrators(text, []string{"John Smith", "John Smith"})
	require.Len(t, perpetrators, 1)
	assert.Equal(t, "John Smith", perpetrators[0].Name)
}

func TestExtractPerpetratorsIndicatorOutsideWindow(t *testing.T) {
	// The indicator sits more than 200 characters after the only mention.
	text := "John Smith attended the hearing." + strings.Repeat(" filler", 40) + " Another man was arrested."
	assert.Empty(t, ExtractPerpetrators(text, []string{"John Smith"}))
}

func TestExtractRelationships(t *testing.T) {
	text := "Prosecutors said Alan Price was a member of the Zodiac Crew and handled its cash."

	relationships := ExtractRelationships(text, []string{"Alan Price"}, []string{"Zodiac Crew"})
	require.Len(t, relationships, 1)
	assert.Equal(t, Relationship{From: "Alan Price", To: "Zodiac Crew", Relationship: "member of"}, relationships[0])
}

func TestExtractRelationshipsFirstIndicatorPerWindow(t *testing.T) {
	// Both phrases are in the window; only the first of the fixed indicator
	// order is recorded.
	text := "Alan Price is a member of and leader of the Zodiac Crew."

	relationships := ExtractRelationships(text, []string{"Alan Price"}, []string{"Zodiac Crew"})
	require.Len(t, relationships, 1)
	assert.Equal(t, "member of", relationships[0].Relationship)
}

func TestExtractRelationshipsPreservesDuplicateTriples(t *testing.T) {
	text := "Alan Price works for Omega Ltd in the city. Colleagues said Alan Price works for Omega Ltd still."

	relationships := ExtractRelationships(text, []string{"Alan Price"}, []string{"Omega Ltd"})
	require.Len(t, relationships, 2)
	assert.Equal(t, relationships[0], relationships[1])
}

func TestExtractRelationshipsOrgOutsideWindow(t *testing.T) {
	text := "Alan Price denied everything." + strings.Repeat(" filler", 30) + " The Omega Ltd offices were searched."
	assert.Empty(t, ExtractRelationships(text, []string{"Alan Price"}, []string{"Omega Ltd"}))
}
