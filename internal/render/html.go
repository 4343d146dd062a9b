// Package render formats API records for terminal display.
package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DescriptionText flattens a job description to plain text. Postings arrive
// with either plain text or embedded HTML depending on how the employer
// composed them; markup is stripped and whitespace normalized, plain text
// passes through untouched apart from trimming.
func DescriptionText(description string) string {
	if !strings.ContainsAny(description, "<>") {
		return strings.TrimSpace(description)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return strings.TrimSpace(description)
	}
	doc.Find("script, style").Remove()
	return cleanWhitespace(doc.Text())
}

// cleanWhitespace collapses blank lines and trims each remaining line.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
