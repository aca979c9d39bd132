// ABOUTME: HTML document decoding: the first <table> becomes a document
// ABOUTME: colspan/rowspan map onto cell spans; covered slots become nil holes

package document

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/mauromedda/gridtable/pkg/table"
)

func decodeHTML(data []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	tbl := findElement(root, "table")
	if tbl == nil {
		return &Document{}, nil
	}

	var trs []*html.Node
	headRows := 0
	collectRows(tbl, &trs, &headRows, false)

	grid := make([][]any, 0, len(trs))
	covered := map[int]map[int]bool{}
	for y, tr := range trs {
		grid = append(grid, htmlRow(tr, y, covered))
	}

	var d Document
	switch {
	case len(grid) == 0:
	case headRows > 0 || allHeaderCells(trs[0]):
		d.Headers = grid[0]
		d.Rows = grid[1:]
	default:
		d.Rows = grid
	}
	return &d, nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// collectRows gathers <tr> elements in document order without descending
// into nested tables. headRows counts rows inside <thead>.
func collectRows(n *html.Node, trs *[]*html.Node, headRows *int, inHead bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "tr":
			*trs = append(*trs, c)
			if inHead {
				*headRows++
			}
		case "thead":
			collectRows(c, trs, headRows, true)
		case "tbody", "tfoot":
			collectRows(c, trs, headRows, false)
		}
	}
}

func allHeaderCells(tr *html.Node) bool {
	seen := false
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data != "th" {
			return false
		}
		seen = true
	}
	return seen
}

// htmlRow converts one <tr>. HTML omits slots covered by earlier rowspans,
// so they are reinserted as nil holes; covered records spans for later rows.
func htmlRow(tr *html.Node, y int, covered map[int]map[int]bool) []any {
	row := []any{}
	x := 0
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		for covered[y][x] {
			row = append(row, nil)
			x++
		}
		cell := htmlCell(c)
		row = append(row, cell)
		for dy := 1; dy < max(cell.RowSpan, 1); dy++ {
			if covered[y+dy] == nil {
				covered[y+dy] = map[int]bool{}
			}
			for dx := range max(cell.ColSpan, 1) {
				covered[y+dy][x+dx] = true
			}
		}
		x += max(cell.ColSpan, 1)
	}
	for covered[y][x] {
		row = append(row, nil)
		x++
	}
	return row
}

func htmlCell(n *html.Node) table.Cell {
	c := table.Cell{
		ColSpan: spanAttr(n, "colspan"),
		RowSpan: spanAttr(n, "rowspan"),
	}
	switch strings.ToLower(getAttr(n, "align")) {
	case "center":
		c.HAlign = table.AlignCenter
	case "right":
		c.HAlign = table.AlignRight
	case "left":
		c.HAlign = table.AlignLeft
	}
	switch strings.ToLower(getAttr(n, "valign")) {
	case "top":
		c.VAlign = table.AlignTop
	case "middle", "center":
		c.VAlign = table.AlignMiddle
	case "bottom":
		c.VAlign = table.AlignBottom
	}

	if a := onlyLink(n); a != nil {
		c.Href = getAttr(a, "href")
	}
	var b strings.Builder
	cellText(n, &b)
	c.Content = text(cleanLines(b.String()))
	return c
}

// spanAttr reads colspan or rowspan. Missing or invalid values mean 1.
func spanAttr(n *html.Node, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(getAttr(n, key)))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// onlyLink returns the cell's <a href> when it is the only element child.
func onlyLink(n *html.Node) *html.Node {
	var link *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
		case c.Type == html.ElementNode && c.Data == "a" && link == nil && getAttr(c, "href") != "":
			link = c
		default:
			return nil
		}
	}
	return link
}

// cellText extracts text, turning <br> and block elements into newlines.
func cellText(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(strings.Map(flattenSpace, c.Data))
		case html.ElementNode:
			switch c.Data {
			case "br":
				b.WriteString("\n")
				continue
			case "script", "style", "table":
				continue
			case "p", "div", "li":
				b.WriteString("\n")
				cellText(c, b)
				b.WriteString("\n")
				continue
			}
			cellText(c, b)
		}
	}
}

// flattenSpace turns source line breaks into spaces; only <br> and block
// elements break lines.
func flattenSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}

// cleanLines collapses whitespace within each line and drops blank lines.
func cleanLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if f := strings.Fields(line); len(f) > 0 {
			out = append(out, strings.Join(f, " "))
		}
	}
	return strings.Join(out, "\n")
}
