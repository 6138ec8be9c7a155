// Package extract turns uploaded study material into clean text chunks
// sized for the question generator.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromPDF extracts plain text from a PDF, page by page. Pages that
// cannot be decoded are skipped rather than failing the whole document.
func FromPDF(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var text strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String(), nil
}

// CleanText collapses all whitespace runs into single spaces and trims
// the ends.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SplitChunks splits text into chunks of at most maxWords words. The
// generator gets one prompt per chunk so long documents stay within
// the model's context.
func SplitChunks(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = 800
	}

	words := strings.Fields(text)
	var chunks []string
	for start := 0; start < len(words); start += maxWords {
		end := start + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
