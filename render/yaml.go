package render

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/seriate/go-seriate/ir"
)

// YAML returns the YAML renderer, backed by goccy/go-yaml. Object key
// order is preserved. Honors WithIndent.
func YAML() Renderer {
	return yamlRenderer{}
}

type yamlRenderer struct{}

func (yamlRenderer) Name() string        { return "yaml" }
func (yamlRenderer) ContentType() string { return "application/yaml" }
func (yamlRenderer) Available() bool     { return true }

func (yamlRenderer) Render(node *ir.Node, w io.Writer, opts ...Option) error {
	o := buildOptions(opts)
	encOpts := []yaml.EncodeOption{}
	if o.Indent > 0 {
		encOpts = append(encOpts, yaml.Indent(o.Indent))
	}
	enc := yaml.NewEncoder(w, encOpts...)
	defer enc.Close()
	return enc.Encode(yamlValue(node))
}

// rawNumber emits decimal digits verbatim, without float round-tripping.
type rawNumber string

func (n rawNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

func yamlValue(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	case ir.TimeType:
		return *node.Time
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.Float64 != nil:
			return *node.Float64
		default:
			return rawNumber(node.Number)
		}
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = yamlValue(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: yamlValue(node.Values[i])}
		}
		return res
	}
	return nil
}
