package extractor

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxBreak        = regexp.MustCompile(`<w:(?:br|cr)(?:\s[^>]*)?/>`)
	docxTab          = regexp.MustCompile(`<w:tab(?:\s[^>]*)?/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// extractDocxText returns the body text with one line per paragraph.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens WordprocessingML into plain text.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxBreak.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return strings.TrimRight(html.UnescapeString(content), "\n")
}
