// ABOUTME: JSON document decoding with the easyjson lexer
// ABOUTME: Cells are a union of scalars and objects, so the decoders are written by hand

package document

import (
	"strconv"

	"github.com/mailru/easyjson/jlexer"

	"github.com/mauromedda/gridtable/pkg/table"
	"github.com/mauromedda/gridtable/pkg/width"
)

func decodeJSON(data []byte) (*Document, error) {
	var d Document
	l := jlexer.Lexer{Data: data}
	d.UnmarshalEasyJSON(&l)
	if err := l.Error(); err != nil {
		return nil, err
	}
	return &d, nil
}

// UnmarshalEasyJSON decodes {"headers": [...], "rows": [[...], ...]}. A
// bare array of rows is accepted as a document without headers.
func (d *Document) UnmarshalEasyJSON(l *jlexer.Lexer) {
	isTopLevel := l.IsStart()
	if l.IsNull() {
		if isTopLevel {
			l.Consumed()
		}
		l.Skip()
		return
	}
	if l.IsDelim('[') {
		d.Rows = decodeRows(l)
		if isTopLevel {
			l.Consumed()
		}
		return
	}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if l.IsNull() {
			l.Skip()
			l.WantComma()
			continue
		}
		switch key {
		case "headers":
			d.Headers = decodeRow(l)
		case "rows":
			d.Rows = decodeRows(l)
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if isTopLevel {
		l.Consumed()
	}
}

func decodeRows(l *jlexer.Lexer) [][]any {
	var rows [][]any
	l.Delim('[')
	for !l.IsDelim(']') {
		rows = append(rows, decodeRow(l))
		l.WantComma()
	}
	l.Delim(']')
	return rows
}

func decodeRow(l *jlexer.Lexer) []any {
	if l.IsNull() {
		l.Skip()
		return nil
	}
	row := []any{}
	l.Delim('[')
	for !l.IsDelim(']') {
		row = append(row, decodeValue(l, true))
		l.WantComma()
	}
	l.Delim(']')
	return row
}

// decodeValue decodes one JSON value. Objects become table.Cell when
// asCell is set and stay generic maps otherwise.
func decodeValue(l *jlexer.Lexer, asCell bool) any {
	if l.IsNull() {
		l.Skip()
		return nil
	}
	if asCell && l.IsDelim('{') {
		var c jsonCell
		c.UnmarshalEasyJSON(l)
		return c.Cell
	}
	raw := l.Raw()
	if !l.Ok() || len(raw) == 0 {
		return nil
	}
	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		return parseNumber(string(raw))
	}
	sub := jlexer.Lexer{Data: raw}
	v := sub.Interface()
	if err := sub.Error(); err != nil {
		l.AddError(err)
		return nil
	}
	if s, ok := v.(string); ok {
		return text(s)
	}
	return v
}

// parseNumber keeps integers exact and falls back to float64.
func parseNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return f
}

type jsonCell struct {
	table.Cell
}

// UnmarshalEasyJSON decodes a structured cell object.
func (c *jsonCell) UnmarshalEasyJSON(l *jlexer.Lexer) {
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if l.IsNull() {
			l.Skip()
			l.WantComma()
			continue
		}
		switch key {
		case "content":
			c.Content = decodeValue(l, false)
		case "colSpan":
			c.ColSpan = l.Int()
		case "rowSpan":
			c.RowSpan = l.Int()
		case "hAlign":
			c.HAlign = table.HAlign(l.String())
		case "vAlign":
			c.VAlign = table.VAlign(l.String())
		case "maxWidth":
			c.MaxWidth = l.Int()
		case "wordWrap":
			b := l.Bool()
			c.WordWrap = &b
		case "href":
			c.Href = l.String()
		case "truncate":
			var t jsonTruncate
			t.UnmarshalEasyJSON(l)
			c.Truncate = &t.TruncateOptions
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
}

type jsonTruncate struct {
	width.TruncateOptions
}

// UnmarshalEasyJSON decodes truncation options.
func (t *jsonTruncate) UnmarshalEasyJSON(l *jlexer.Lexer) {
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if l.IsNull() {
			l.Skip()
			l.WantComma()
			continue
		}
		switch key {
		case "position":
			t.Position = width.Position(l.String())
		case "character":
			t.Character = l.String()
		case "preferSpace":
			t.PreferSpace = l.Bool()
		case "space":
			t.Space = l.Bool()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
}
