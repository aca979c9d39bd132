// ABOUTME: Tests for document format detection and decoding of JSON, YAML, and HTML
// ABOUTME: Checks that decoded documents render and that bad cells fail in the table

package document

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/gridtable/pkg/table"
	"github.com/mauromedda/gridtable/pkg/width"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		data string
		want Format
	}{
		{"json extension", "t.json", "rows: []", FormatJSON},
		{"yml extension", "t.YML", "{}", FormatYAML},
		{"html extension", "t.htm", "", FormatHTML},
		{"sniff object", "-", "  {\"rows\": []}", FormatJSON},
		{"sniff array", "-", "\n[[1]]", FormatJSON},
		{"sniff markup", "-", "<table></table>", FormatHTML},
		{"sniff yaml", "-", "headers: [a]", FormatYAML},
		{"empty", "-", "", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectFormat(tt.file, []byte(tt.data)); got != tt.want {
				t.Errorf("DetectFormat(%q) = %q; want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"": FormatAuto, "JSON": FormatJSON, "yml": FormatYAML, "htm": FormatHTML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("csv"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(csv) = %v; want ErrUnknownFormat", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	src := `{
		"title": "ignored",
		"headers": ["name", {"content": "size", "hAlign": "right"}],
		"rows": [
			["a", 12, 1.5, true, null],
			[{"content": "link", "href": "https://example.com", "colSpan": 2, "rowSpan": 1,
			  "vAlign": "bottom", "maxWidth": 8, "wordWrap": false,
			  "truncate": {"position": "middle", "character": "~", "preferSpace": true, "space": true},
			  "extra": {"nested": [1, 2]}}],
			[9007199254740993]
		]
	}`
	doc, err := Decode(strings.NewReader(src), FormatJSON, "doc.json")
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Headers) != 2 || doc.Headers[0] != "name" {
		t.Fatalf("Headers = %#v", doc.Headers)
	}
	if h, ok := doc.Headers[1].(table.Cell); !ok || h.Content != "size" || h.HAlign != table.AlignRight {
		t.Errorf("Headers[1] = %#v", doc.Headers[1])
	}

	row := doc.Rows[0]
	want := []any{"a", int64(12), 1.5, true, nil}
	if len(row) != len(want) {
		t.Fatalf("row 0 = %#v", row)
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row 0 cell %d = %#v; want %#v", i, row[i], want[i])
		}
	}

	c, ok := doc.Rows[1][0].(table.Cell)
	if !ok {
		t.Fatalf("row 1 cell 0 = %#v", doc.Rows[1][0])
	}
	if c.Href != "https://example.com" || c.ColSpan != 2 || c.RowSpan != 1 || c.VAlign != table.AlignBottom || c.MaxWidth != 8 {
		t.Errorf("cell = %+v", c)
	}
	if c.WordWrap == nil || *c.WordWrap {
		t.Errorf("WordWrap = %v; want explicit false", c.WordWrap)
	}
	wantTrunc := width.TruncateOptions{Position: width.PositionMiddle, Character: "~", PreferSpace: true, Space: true}
	if c.Truncate == nil || *c.Truncate != wantTrunc {
		t.Errorf("Truncate = %+v", c.Truncate)
	}

	if doc.Rows[2][0] != int64(9007199254740993) {
		t.Errorf("large integer = %#v; want exact int64", doc.Rows[2][0])
	}
}

func TestDecodeJSON_BareRows(t *testing.T) {
	t.Parallel()

	doc, err := Decode(strings.NewReader(`[["x", "y"], []]`), FormatAuto, "-")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Headers != nil || len(doc.Rows) != 2 || len(doc.Rows[1]) != 0 {
		t.Errorf("doc = %#v", doc)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"rows": [["a",]`), FormatJSON, "bad.json")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parsing bad.json") {
		t.Errorf("error = %v; want file context", err)
	}
}

func TestDecode_ObjectContentRejectedByTable(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"json": `{"rows": [["ok", {"content": {"a": 1}}]]}`,
		"yaml": "rows:\n  - [ok, {content: {a: 1}}]\n",
	}
	for format, src := range inputs {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			doc, err := Decode(strings.NewReader(src), Format(format), "-")
			if err != nil {
				t.Fatal(err)
			}
			tbl := table.MustNew()
			err = doc.Fill(tbl)
			if !errors.Is(err, table.ErrInvalidContentType) {
				t.Errorf("Fill() = %v; want ErrInvalidContentType", err)
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	src := `
headers: [name, qty]
defaults: &span
  rowSpan: 2
rows:
  - [{content: fruit, <<: *span}, 3]
  - [null, 4.25]
  - [yes, "007", ~]
  - - content: Span
      colSpan: 2
      truncate: {position: start}
`
	doc, err := Decode(strings.NewReader(src), FormatYAML, "doc.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Headers) != 2 || doc.Headers[1] != "qty" {
		t.Errorf("Headers = %#v", doc.Headers)
	}
	c, ok := doc.Rows[0][0].(table.Cell)
	if !ok || c.Content != "fruit" || c.RowSpan != 2 {
		t.Errorf("row 0 cell 0 = %#v", doc.Rows[0][0])
	}
	if doc.Rows[0][1] != int64(3) {
		t.Errorf("row 0 cell 1 = %#v", doc.Rows[0][1])
	}
	if doc.Rows[1][0] != nil || doc.Rows[1][1] != 4.25 {
		t.Errorf("row 1 = %#v", doc.Rows[1])
	}
	if doc.Rows[2][0] != "yes" || doc.Rows[2][1] != "007" || doc.Rows[2][2] != nil {
		t.Errorf("row 2 = %#v", doc.Rows[2])
	}
	span, ok := doc.Rows[3][0].(table.Cell)
	if !ok || span.ColSpan != 2 || span.Truncate == nil || span.Truncate.Position != width.PositionStart {
		t.Errorf("row 3 cell 0 = %#v", doc.Rows[3][0])
	}
}

func TestDecodeYAML_Shape(t *testing.T) {
	t.Parallel()

	if _, err := Decode(strings.NewReader("rows: {a: 1}\n"), FormatYAML, "-"); !errors.Is(err, errShape) {
		t.Errorf("mapping rows: err = %v; want errShape", err)
	}
	if _, err := Decode(strings.NewReader("just text\n"), FormatYAML, "-"); !errors.Is(err, errShape) {
		t.Errorf("scalar document: err = %v; want errShape", err)
	}
	doc, err := Decode(strings.NewReader(""), FormatYAML, "-")
	if err != nil || len(doc.Rows) != 0 {
		t.Errorf("empty document = %#v, %v", doc, err)
	}
}

func TestDecode_NormalizesToNFC(t *testing.T) {
	t.Parallel()

	doc, err := Decode(strings.NewReader(`[["e\u0301"]]`), FormatJSON, "-")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Rows[0][0] != "\u00e9" {
		t.Errorf("content = %+q; want composed \\u00e9", doc.Rows[0][0])
	}
}

func TestDecodeHTML(t *testing.T) {
	t.Parallel()

	src := `<html><body><p>intro</p>
<table>
  <thead><tr><th>Group</th><th align="right">Value</th><th>Note</th></tr></thead>
  <tbody>
    <tr><td rowspan="2" valign="middle">A</td><td>1</td><td><a href="https://example.com">docs</a></td></tr>
    <tr><td colspan="2">two<br>lines</td></tr>
    <tr><td>B</td><td>  spaced
        out </td></tr>
  </tbody>
</table></body></html>`

	doc, err := Decode(strings.NewReader(src), FormatAuto, "page.html")
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Headers) != 3 {
		t.Fatalf("Headers = %#v", doc.Headers)
	}
	if h := doc.Headers[1].(table.Cell); h.Content != "Value" || h.HAlign != table.AlignRight {
		t.Errorf("header 1 = %+v", h)
	}
	if len(doc.Rows) != 3 {
		t.Fatalf("Rows = %#v", doc.Rows)
	}

	group := doc.Rows[0][0].(table.Cell)
	if group.Content != "A" || group.RowSpan != 2 || group.VAlign != table.AlignMiddle {
		t.Errorf("group = %+v", group)
	}
	if link := doc.Rows[0][2].(table.Cell); link.Href != "https://example.com" || link.Content != "docs" {
		t.Errorf("link = %+v", link)
	}

	second := doc.Rows[1]
	if len(second) != 2 || second[0] != nil {
		t.Fatalf("row 1 = %#v; want a leading hole", second)
	}
	if c := second[1].(table.Cell); c.Content != "two\nlines" || c.ColSpan != 2 {
		t.Errorf("row 1 cell = %+v", c)
	}
	if c := doc.Rows[2][1].(table.Cell); c.Content != "spaced out" {
		t.Errorf("row 2 cell 1 = %q", c.Content)
	}

	tbl := table.MustNew()
	if err := doc.Fill(tbl); err != nil {
		t.Fatal(err)
	}
	l, _ := tbl.Layout()
	if l.Width != 3 || l.Height != 4 {
		t.Errorf("layout %dx%d; want 3x4", l.Width, l.Height)
	}
}

func TestDecodeHTML_NoTable(t *testing.T) {
	t.Parallel()

	doc, err := Decode(strings.NewReader("<p>nothing</p>"), FormatHTML, "-")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Headers != nil || doc.Rows != nil {
		t.Errorf("doc = %#v; want empty", doc)
	}
}

func TestFill_RendersDocument(t *testing.T) {
	t.Parallel()

	src := `{"headers": ["k", "v"], "rows": [[{"content": "Span", "rowSpan": 2}, "B1"], [null, "B2"]]}`
	doc, err := Decode(strings.NewReader(src), FormatJSON, "-")
	if err != nil {
		t.Fatal(err)
	}
	tbl := table.MustNew()
	if err := doc.Fill(tbl); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"┌─────┬───┐",
		"│ k   │ v │",
		"├─────┼───┤",
		"│ Span│ B1│",
		"│     ├───┤",
		"│     │ B2│",
		"└─────┴───┘",
	}, "\n")
	if got := tbl.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteLayout(t *testing.T) {
	t.Parallel()

	l, err := table.BuildLayout([][]any{{table.Cell{Content: "a<b", ColSpan: 2}}, {"x", "\x1b[1my\x1b[0m"}})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteLayout(&buf, l, []int{3, 4}); err != nil {
		t.Fatal(err)
	}

	want := `{"width":2,"height":2,"columnWidths":[3,4],"cells":[` +
		`{"x":0,"y":0,"width":2,"height":1,"content":"a<b","parent":-1},` +
		`{"x":1,"y":0,"width":1,"height":1,"content":"","parent":0},` +
		`{"x":0,"y":1,"width":1,"height":1,"content":"x","parent":-1},` +
		`{"x":1,"y":1,"width":1,"height":1,"content":"\u001b[1my\u001b[0m","parent":-1}]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteLayout() =\n%s\nwant\n%s", got, want)
	}
}
