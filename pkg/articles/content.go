package articles

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/charmap"
)

const (
	// Minimum body length for the JSON strategies to accept a candidate.
	minJSONContentLen = 100
	// Minimum joined-paragraph length for a selector chain to win.
	minSelectorBodyLen = 200
	// Minimum trimmed length for a paragraph or raw line to be kept.
	minFragmentLen = 20
)

var embeddedJSONPattern = regexp.MustCompile(`(?s)(\{.*"title".*"content".*\})`)

var titleSelectors = []string{
	"h1",
	".uk-article-title",
	".page-header h1",
	".title",
	"title",
	"article h1",
	".article-title",
}

var bodySelectors = []string{
	"article p",
	".uk-article p",
	".tm-main p",
	".article-body p",
	".item-page p",
	".content p",
	"main p",
	".entry-content p",
}

// DecodeBytes converts raw document bytes to a string, falling back to
// Latin-1 when the bytes are not valid UTF-8.
func DecodeBytes(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// bodyStrategy is one step of the extraction chain. It reports whether its
// result was accepted; the chain short-circuits on the first acceptance.
type bodyStrategy struct {
	method ExtractionMethod
	run    func() (ExtractedContent, bool)
}

// ExtractContent turns a raw document into (title, body, method) via an
// ordered fallback chain. It never fails: malformed input degrades to an
// empty body rather than an error.
func ExtractContent(raw string) ExtractedContent {
	// HTML parsing is shared by the last three strategies and only attempted
	// once. goquery tolerates arbitrary junk, so a nil doc means the reader
	// itself failed, which plain strings never do.
	var doc *goquery.Document
	htmlDoc := func() *goquery.Document {
		if doc == nil {
			doc, _ = goquery.NewDocumentFromReader(strings.NewReader(raw))
		}
		return doc
	}

	strategies := []bodyStrategy{
		{MethodJSONEmbedded, func() (ExtractedContent, bool) { return extractEmbeddedJSON(raw) }},
		{MethodPureJSON, func() (ExtractedContent, bool) { return extractPureJSON(raw) }},
		{MethodHTMLStructured, func() (ExtractedContent, bool) { return extractStructuredHTML(htmlDoc()) }},
		{MethodHTMLParagraphs, func() (ExtractedContent, bool) { return extractAllParagraphs(htmlDoc()) }},
		{MethodRawTextLines, func() (ExtractedContent, bool) { return extractRawLines(htmlDoc()) }},
	}

	best := ExtractedContent{Method: MethodRawTextLines}
	for _, s := range strategies {
		result, ok := s.run()
		result.Method = s.method
		if ok {
			return result
		}
		// Keep the longest body seen so far so a failed chain still returns
		// its best-effort extraction.
		if len(result.Content) > len(best.Content) {
			best = result
		}
		if result.Title != "" && best.Title == "" {
			best.Title = result.Title
		}
	}
	return best
}

// extractEmbeddedJSON searches the raw text for a JSON object exposing both
// title and content keys. Malformed candidates are silently discarded.
func extractEmbeddedJSON(raw string) (ExtractedContent, bool) {
	m := embeddedJSONPattern.FindStringSubmatch(raw)
	if m == nil {
		return ExtractedContent{}, false
	}
	return parseJSONDocument(m[1])
}

// extractPureJSON handles documents that are a standalone JSON object.
func extractPureJSON(raw string) (ExtractedContent, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return ExtractedContent{}, false
	}
	return parseJSONDocument(trimmed)
}

func parseJSONDocument(candidate string) (ExtractedContent, bool) {
	if !gjson.Valid(candidate) {
		return ExtractedContent{}, false
	}
	content := gjson.Get(candidate, "content").String()
	if len(content) <= minJSONContentLen {
		return ExtractedContent{}, false
	}
	return ExtractedContent{
		Title:   gjson.Get(candidate, "title").String(),
		Content: content,
	}, true
}

// extractStructuredHTML walks the ordered selector chains: the first title
// selector with a plausible text wins, and the first body selector with at
// least two paragraphs joining to more than 200 characters wins.
func extractStructuredHTML(doc *goquery.Document) (ExtractedContent, bool) {
	if doc == nil {
		return ExtractedContent{}, false
	}
	result := ExtractedContent{Title: selectTitle(doc)}

	for _, selector := range bodySelectors {
		sel := doc.Find(selector)
		if sel.Length() < 2 {
			continue
		}
		body := joinParagraphs(sel, 0)
		if len(body) > minSelectorBodyLen {
			result.Content = body
			return result, true
		}
	}
	return result, false
}

func selectTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		var title string
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := strings.TrimSpace(s.Text())
			if len(text) > 5 && text != "News" {
				title = text
				return false
			}
			return true
		})
		if title != "" {
			return title
		}
	}
	return ""
}

// extractAllParagraphs collects every paragraph over 20 characters regardless
// of container.
func extractAllParagraphs(doc *goquery.Document) (ExtractedContent, bool) {
	if doc == nil {
		return ExtractedContent{}, false
	}
	result := ExtractedContent{
		Title:   selectTitle(doc),
		Content: joinParagraphs(doc.Find("p"), minFragmentLen),
	}
	return result, len(result.Content) >= minSelectorBodyLen
}

// extractRawLines is the last resort: all visible text, split on line breaks,
// keeping lines over 20 characters. It always accepts whatever it produced.
func extractRawLines(doc *goquery.Document) (ExtractedContent, bool) {
	if doc == nil {
		return ExtractedContent{}, false
	}
	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if trimmed := strings.TrimSpace(line); len(trimmed) > minFragmentLen {
			lines = append(lines, trimmed)
		}
	}
	return ExtractedContent{
		Title:   selectTitle(doc),
		Content: strings.Join(lines, "\n\n"),
	}, true
}

func joinParagraphs(sel *goquery.Selection, minLen int) string {
	var paragraphs []string
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" && len(text) > minLen {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}
