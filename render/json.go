package render

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/seriate/go-seriate/ir"
)

// JSON returns the JSON renderer. Output preserves object key order as
// produced by conversion; WithSortKeys forces sorted keys. Without
// WithIndent the output is compact.
func JSON() Renderer {
	return jsonRenderer{}
}

type jsonRenderer struct{}

func (jsonRenderer) Name() string        { return "json" }
func (jsonRenderer) ContentType() string { return "application/json" }
func (jsonRenderer) Available() bool     { return true }

func (jsonRenderer) Render(node *ir.Node, w io.Writer, opts ...Option) error {
	o := buildOptions(opts)
	js := &jsonState{w: w, opts: o}
	js.encode(node, 0)
	return js.err
}

type jsonState struct {
	w    io.Writer
	opts *Options
	err  error
}

func (js *jsonState) write(s string) {
	if js.err != nil {
		return
	}
	_, js.err = io.WriteString(js.w, s)
}

func (js *jsonState) color(t ir.Type, attr ColorAttr, s string) string {
	if js.opts.Colors == nil {
		return s
	}
	return js.opts.Colors.Color(t, attr, s)
}

func (js *jsonState) encode(node *ir.Node, depth int) {
	if node == nil {
		node = ir.Null()
	}
	switch node.Type {
	case ir.NullType:
		js.write(js.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		js.write(js.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		js.write(js.color(ir.NumberType, ValueColor, jsonNumber(node)))
	case ir.StringType:
		js.write(js.color(ir.StringType, ValueColor, quoteJSON(node.String)))
	case ir.TimeType:
		js.write(js.color(ir.TimeType, ValueColor, quoteJSON(node.Time.Format(time.RFC3339))))
	case ir.ArrayType:
		js.encodeArray(node, depth)
	case ir.ObjectType:
		js.encodeObject(node, depth)
	}
}

func (js *jsonState) encodeArray(node *ir.Node, depth int) {
	if len(node.Values) == 0 {
		js.write("[]")
		return
	}
	js.write("[")
	for i, v := range node.Values {
		if i > 0 {
			js.write(js.color(ir.ArrayType, SepColor, ","))
		}
		js.newline(depth + 1)
		js.encode(v, depth+1)
	}
	js.newline(depth)
	js.write("]")
}

func (js *jsonState) encodeObject(node *ir.Node, depth int) {
	if len(node.Fields) == 0 {
		js.write("{}")
		return
	}
	order := make([]int, len(node.Fields))
	for i := range order {
		order[i] = i
	}
	if js.opts.SortKeys {
		sort.Slice(order, func(a, b int) bool {
			return node.Fields[order[a]].String < node.Fields[order[b]].String
		})
	}
	js.write("{")
	for i, idx := range order {
		if i > 0 {
			js.write(js.color(ir.ObjectType, SepColor, ","))
		}
		js.newline(depth + 1)
		js.write(js.color(ir.ObjectType, FieldColor, quoteJSON(node.Fields[idx].String)))
		js.write(js.color(ir.ObjectType, SepColor, ":"))
		if js.opts.Indent > 0 {
			js.write(" ")
		}
		js.encode(node.Values[idx], depth+1)
	}
	js.newline(depth)
	js.write("}")
}

func (js *jsonState) newline(depth int) {
	if js.opts.Indent <= 0 {
		return
	}
	js.write("\n" + strings.Repeat(" ", js.opts.Indent*depth))
}

func jsonNumber(node *ir.Node) string {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	default:
		return node.Number
	}
}

// quoteJSON quotes a string with JSON escaping rules. strconv.Quote
// produces Go escapes that JSON does not accept, so quoting goes
// through the json package.
func quoteJSON(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(d)
}
