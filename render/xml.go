package render

import (
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/seriate/go-seriate/ir"
)

// XML returns the XML renderer. The tree is wrapped in a fixed <root>
// element; sequence elements become repeated <list-item> elements;
// mapping entries become elements named after their key, with keys in
// sorted order for reproducibility; null emits an empty element.
func XML() Renderer {
	return xmlRenderer{}
}

type xmlRenderer struct{}

func (xmlRenderer) Name() string        { return "xml" }
func (xmlRenderer) ContentType() string { return "application/xml" }
func (xmlRenderer) Available() bool     { return true }

func (xmlRenderer) Render(node *ir.Node, w io.Writer, opts ...Option) error {
	xs := &xmlState{w: w}
	xs.write("<root>")
	xs.encode(node)
	xs.write("</root>")
	return xs.err
}

type xmlState struct {
	w   io.Writer
	err error
}

func (xs *xmlState) write(s string) {
	if xs.err != nil {
		return
	}
	_, xs.err = io.WriteString(xs.w, s)
}

func (xs *xmlState) text(s string) {
	if xs.err != nil {
		return
	}
	xs.err = xml.EscapeText(xs.w, []byte(s))
}

func (xs *xmlState) encode(node *ir.Node) {
	if node == nil {
		// empty element content
		return
	}
	switch node.Type {
	case ir.NullType:
		// empty element content
	case ir.BoolType:
		xs.text(strconv.FormatBool(node.Bool))
	case ir.NumberType:
		xs.text(jsonNumber(node))
	case ir.StringType:
		xs.text(node.String)
	case ir.TimeType:
		xs.text(node.Time.Format(time.RFC3339))
	case ir.ArrayType:
		for _, v := range node.Values {
			xs.write("<list-item>")
			xs.encode(v)
			xs.write("</list-item>")
		}
	case ir.ObjectType:
		keys := make([]string, len(node.Fields))
		byKey := make(map[string]*ir.Node, len(node.Fields))
		for i, f := range node.Fields {
			keys[i] = f.String
			byKey[f.String] = node.Values[i]
		}
		sort.Strings(keys)
		for _, key := range keys {
			name := elementName(key)
			xs.write("<" + name + ">")
			xs.encode(byKey[key])
			xs.write("</" + name + ">")
		}
	}
}

// elementName makes a key safe to use as an element name.
func elementName(key string) string {
	if key == "" {
		return "_"
	}
	var b strings.Builder
	for _, r := range key {
		ok := r == '_' || r == '-' || r == '.' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if ok {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	name := b.String()
	if c := name[0]; c == '-' || c == '.' || (c >= '0' && c <= '9') {
		name = "_" + name
	}
	return name
}
