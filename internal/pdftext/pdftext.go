// Package pdftext turns a PDF into the flat statement text the extraction
// pipeline consumes. It prefers positioned row extraction, which keeps the
// column structure of tabular statements, and falls back to plain text for
// pages where rows cannot be read.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// Column gaps narrower than this (in PDF points) are treated as word spacing;
// wider gaps become a column separator. Tunable: the exact serialization fed
// to the extraction prompt is a quality knob, not a contract.
const columnGap = 6.0

// Extractor reads statement text out of PDF bytes.
type Extractor struct {
	log zerolog.Logger
}

// NewExtractor creates a PDF text extractor.
func NewExtractor(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract reads every page of the PDF and returns one flattened text blob.
// Row-extracted content is preferred over plain-text fallback content when
// both exist. An unreadable document returns an error; a readable document
// with no content returns "" and nil, and the caller decides what that means.
func (e *Extractor) Extract(data []byte) (string, error) {
	log := e.log
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var rowText, plainText strings.Builder
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err == nil && len(rows) > 0 {
			for _, row := range rows {
				line := serializeRow(row)
				if line == "" {
					continue
				}
				rowText.WriteString(line)
				rowText.WriteString("\n")
			}
			log.Debug().Int("page", i).Int("rows", len(rows)).Msg("extracted rows from page")
			continue
		}

		log.Debug().Int("page", i).Msg("no rows on page, extracting plain text as fallback")
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Msg("page text extraction failed, skipping page")
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				plainText.WriteString(line)
				plainText.WriteString("\n")
			}
		}
	}

	if rowText.Len() > 0 {
		return rowText.String(), nil
	}
	return plainText.String(), nil
}

// serializeRow flattens one positioned row into a line of text. Runs that sit
// close together are joined as words; larger horizontal jumps are rendered as
// a double-space column separator, the convention bank statements use and the
// extraction prompt copes with best.
func serializeRow(row *pdf.Row) string {
	var b strings.Builder
	var prevEnd float64
	for i, text := range row.Content {
		s := strings.TrimSpace(text.S)
		if s == "" {
			continue
		}
		if i > 0 && b.Len() > 0 {
			if text.X-prevEnd > columnGap {
				b.WriteString("  ")
			} else if text.X > prevEnd {
				b.WriteString(" ")
			}
		}
		b.WriteString(s)
		prevEnd = text.X + text.W
	}
	return strings.TrimSpace(b.String())
}
