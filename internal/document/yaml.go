// ABOUTME: YAML document decoding by walking yaml.v3 nodes
// ABOUTME: Scalar tags decide the cell type; mappings in a row become table.Cell

package document

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/gridtable/pkg/table"
	"github.com/mauromedda/gridtable/pkg/width"
)

var errShape = errors.New("unexpected document shape")

func decodeYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return &Document{}, nil
	}
	n := resolve(&root)
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = resolve(n.Content[0])
	}

	var d Document
	switch n.Kind {
	case yaml.SequenceNode:
		rows, err := yamlRows(n)
		if err != nil {
			return nil, err
		}
		d.Rows = rows
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i].Value, resolve(n.Content[i+1])
			if isNull(val) {
				continue
			}
			var err error
			switch key {
			case "headers":
				d.Headers, err = yamlRow(val)
			case "rows":
				d.Rows, err = yamlRows(val)
			}
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
	case yaml.ScalarNode:
		if !isNull(n) {
			return nil, fmt.Errorf("%w at line %d: scalar at top level", errShape, n.Line)
		}
	}
	return &d, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func yamlRows(n *yaml.Node) ([][]any, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w at line %d: rows must be a sequence", errShape, n.Line)
	}
	rows := make([][]any, 0, len(n.Content))
	for _, r := range n.Content {
		row, err := yamlRow(resolve(r))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func yamlRow(n *yaml.Node) ([]any, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w at line %d: a row must be a sequence", errShape, n.Line)
	}
	row := make([]any, 0, len(n.Content))
	for _, c := range n.Content {
		v, err := yamlValue(resolve(c), true)
		if err != nil {
			return nil, err
		}
		row = append(row, v)
	}
	return row, nil
}

// yamlValue converts a node to a cell value. Mappings become table.Cell when
// asCell is set; otherwise they decode generically and are left for the
// table to reject.
func yamlValue(n *yaml.Node, asCell bool) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return yamlScalar(n)
	case yaml.MappingNode:
		if asCell {
			return yamlCell(n)
		}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	}
	return text(n.Value), nil
}

// yamlCellFields is the YAML shape of a structured cell apart from its
// content, which needs the node-level handling above.
type yamlCellFields struct {
	ColSpan  int    `yaml:"colSpan"`
	RowSpan  int    `yaml:"rowSpan"`
	HAlign   string `yaml:"hAlign"`
	VAlign   string `yaml:"vAlign"`
	MaxWidth int    `yaml:"maxWidth"`
	WordWrap *bool  `yaml:"wordWrap"`
	Href     string `yaml:"href"`
	Truncate *struct {
		Position    string `yaml:"position"`
		Character   string `yaml:"character"`
		PreferSpace bool   `yaml:"preferSpace"`
		Space       bool   `yaml:"space"`
	} `yaml:"truncate"`
}

func yamlCell(n *yaml.Node) (table.Cell, error) {
	var f yamlCellFields
	if err := n.Decode(&f); err != nil {
		return table.Cell{}, err
	}
	c := table.Cell{
		ColSpan:  f.ColSpan,
		RowSpan:  f.RowSpan,
		HAlign:   table.HAlign(f.HAlign),
		VAlign:   table.VAlign(f.VAlign),
		MaxWidth: f.MaxWidth,
		WordWrap: f.WordWrap,
		Href:     f.Href,
	}
	if t := f.Truncate; t != nil {
		c.Truncate = &width.TruncateOptions{
			Position:    width.Position(t.Position),
			Character:   t.Character,
			PreferSpace: t.PreferSpace,
			Space:       t.Space,
		}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value != "content" {
			continue
		}
		v, err := yamlValue(resolve(n.Content[i+1]), false)
		if err != nil {
			return table.Cell{}, err
		}
		c.Content = v
	}
	return c, nil
}
