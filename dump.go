package tagsoup

import (
	"fmt"
	"io"
	"strconv"
)

// Dumper writes a line per node read from a Reader. Attributes follow
// their node, indented by two spaces.
type Dumper struct{}

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

// Dump reads r to the end.
func (d *Dumper) Dump(out io.Writer, r *Reader) error {
	for {
		ok, err := r.Read()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := d.DumpNode(out, r); err != nil {
			return err
		}
	}
}

// DumpNode writes the node r is positioned on.
func (d *Dumper) DumpNode(out io.Writer, r *Reader) error {
	typ, err := r.NodeType()
	if err != nil {
		return err
	}

	var line string
	switch typ {
	case ElementNode:
		name, err := r.Name()
		if err != nil {
			return err
		}
		line = "Element " + name
		empty, err := r.IsEmptyElement()
		if err != nil {
			return err
		}
		if empty {
			line += " (empty)"
		}
		uri, err := r.NamespaceURI()
		if err != nil {
			return err
		}
		if uri != nil {
			line += " {" + uri.String() + "}"
		}
	case EndElementNode, IdentifierNode:
		name, err := r.Name()
		if err != nil {
			return err
		}
		line = typ.String() + " " + name
	case TextNode, CommentNode:
		v, err := r.Value()
		if err != nil {
			return err
		}
		line = typ.String() + " " + strconv.Quote(v)
	default:
		line = typ.String()
	}

	if err := d.writeString(out, line+"\n"); err != nil {
		return err
	}

	attrs, err := r.Attributes()
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		if err := d.writeString(out, fmt.Sprintf("  %s=%q\n", attr.Name(), attr.Value())); err != nil {
			return err
		}
	}
	return nil
}
