// ABOUTME: Table documents: a header row plus body rows of loosely typed cells
// ABOUTME: Decodes JSON, YAML, or HTML input and feeds the result into a table

package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/gridtable/pkg/table"
)

// Format identifies a document encoding.
type Format string

// Supported formats. FormatAuto picks one from the file name or content.
const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// ErrUnknownFormat reports a format name Decode does not support.
var ErrUnknownFormat = errors.New("unknown document format")

// Document is a decoded table. Cells hold the values table.AddRow accepts:
// strings, numbers, bools, nil holes, and table.Cell for objects. Values the
// engine rejects (nested objects, arrays) are kept as-is so the error comes
// from the table with its row and cell position.
type Document struct {
	Headers []any
	Rows    [][]any
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON, FormatYAML, FormatHTML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// DetectFormat chooses a format from the file extension, falling back to the
// first non-blank byte of data.
func DetectFormat(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".html", ".htm":
		return FormatHTML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return FormatYAML
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSON
	case '<':
		return FormatHTML
	}
	return FormatYAML
}

// Decode reads a document from r. name is used for format detection and
// error messages.
func Decode(r io.Reader, format Format, name string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if format == "" || format == FormatAuto {
		format = DetectFormat(name, data)
	}

	var doc *Document
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatHTML:
		doc, err = decodeHTML(data)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return doc, nil
}

// Fill sets t's headers and appends the document rows.
func (d *Document) Fill(t *table.Table) error {
	if len(d.Headers) > 0 {
		if err := t.SetHeaders(d.Headers...); err != nil {
			return err
		}
	}
	return t.AddRows(d.Rows...)
}

// text normalizes decoded strings to NFC so composed and decomposed input
// measure and compare the same.
func text(s string) string {
	return norm.NFC.String(s)
}
