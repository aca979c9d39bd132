// ABOUTME: JSON dump of a computed table layout for inspection and snapshots
// ABOUTME: Written with the easyjson writer; placeholders carry their owner index

package document

import (
	"io"

	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/gridtable/pkg/table"
)

// LayoutDump pairs a layout with its column widths.
type LayoutDump struct {
	Layout *table.Layout
	Widths []int
}

// MarshalEasyJSON writes
// {"width":W,"height":H,"columnWidths":[...],"cells":[...]}.
func (d LayoutDump) MarshalEasyJSON(w *jwriter.Writer) {
	l := d.Layout
	if l == nil {
		l = &table.Layout{}
	}
	w.RawString(`{"width":`)
	w.Int(l.Width)
	w.RawString(`,"height":`)
	w.Int(l.Height)

	w.RawString(`,"columnWidths":[`)
	for i, cw := range d.Widths {
		if i > 0 {
			w.RawByte(',')
		}
		w.Int(cw)
	}

	w.RawString(`],"cells":[`)
	for i, c := range l.Cells {
		if i > 0 {
			w.RawByte(',')
		}
		w.RawString(`{"x":`)
		w.Int(c.X)
		w.RawString(`,"y":`)
		w.Int(c.Y)
		w.RawString(`,"width":`)
		w.Int(c.Width)
		w.RawString(`,"height":`)
		w.Int(c.Height)
		w.RawString(`,"content":`)
		w.String(c.Content)
		w.RawString(`,"parent":`)
		w.Int(c.Parent)
		w.RawByte('}')
	}
	w.RawString(`]}`)
}

// WriteLayout encodes the dump to out followed by a newline.
func WriteLayout(out io.Writer, l *table.Layout, widths []int) error {
	w := jwriter.Writer{NoEscapeHTML: true}
	LayoutDump{Layout: l, Widths: widths}.MarshalEasyJSON(&w)
	w.RawByte('\n')
	if w.Error != nil {
		return w.Error
	}
	_, err := w.DumpTo(out)
	return err
}
