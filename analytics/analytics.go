// Package analytics derives word counts and estimated reading times from the
// loosely structured content blobs stored on blog posts and pages.
package analytics

import (
	"encoding/json"
	"html"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// WordsPerMinute is the fixed editorial reading-speed assumption used for
// reading-time estimates. It is not measured from users.
const WordsPerMinute = 225

// stripPolicy removes every HTML element, leaving only text nodes. Stripped
// tags become spaces so adjacent elements do not fuse into one token.
var stripPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// Content is the set of shapes a stored content blob can decode into.
// Modeling the shapes as an explicit union keeps the empty-text fallback for
// unrecognized input in one place instead of scattered shape checks.
type Content interface {
	text() string
}

// PlainText is raw HTML or plain prose.
type PlainText string

// ContentBlock is one element of a block-structured document. Editors differ
// on whether the text lives under "text" or "content", so both are read.
type ContentBlock struct {
	Type    string `json:"type,omitempty"`
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
}

// Blocks is a block-structured document.
type Blocks []ContentBlock

// StructuredDoc is a loosely structured document with well-known fields.
type StructuredDoc struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body,omitempty"`
}

func (p PlainText) text() string {
	stripped := html.UnescapeString(stripPolicy.Sanitize(string(p)))
	return collapseWhitespace(stripped)
}

func (b Blocks) text() string {
	parts := make([]string, 0, len(b))
	for _, block := range b {
		switch {
		case block.Text != "":
			parts = append(parts, block.Text)
		case block.Content != "":
			parts = append(parts, block.Content)
		}
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

func (d StructuredDoc) text() string {
	var parts []string
	for _, field := range []string{d.Title, d.Description, d.Body} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

// DecodeContent maps a stored content blob onto its Content shape. A JSON
// array decodes to Blocks, a JSON object to StructuredDoc; anything else is
// treated as plain text.
func DecodeContent(raw string) Content {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var blocks Blocks
		if err := json.Unmarshal([]byte(trimmed), &blocks); err == nil {
			return blocks
		}
	}
	if strings.HasPrefix(trimmed, "{") {
		var doc StructuredDoc
		if err := json.Unmarshal([]byte(trimmed), &doc); err == nil {
			return doc
		}
	}
	return PlainText(raw)
}

// ExtractText returns the readable text of the content with HTML removed and
// whitespace collapsed.
func ExtractText(c Content) string {
	if c == nil {
		return ""
	}
	return c.text()
}

// WordCount counts whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ReadingTime estimates reading minutes for a word count. Very short posts
// still report one minute rather than zero.
func ReadingTime(words int) int {
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Analyze decodes raw content and returns its word count and reading time.
func Analyze(raw string) (words, minutes int) {
	words = WordCount(ExtractText(DecodeContent(raw)))
	return words, ReadingTime(words)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
