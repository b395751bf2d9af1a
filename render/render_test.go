package render

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/seriate/go-seriate/ir"
)

func renderString(t *testing.T, r Renderer, node *ir.Node, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(node, &buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func checkRendered(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("rendered output mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

func sampleObject() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromInt(1)},
		{Key: ir.FromString("a"), Val: ir.FromInt(2)},
	})
}

func TestJSONCompact(t *testing.T) {
	got := renderString(t, JSON(), sampleObject())
	checkRendered(t, got, `{"b":1,"a":2}`)
}

func TestJSONSortKeys(t *testing.T) {
	got := renderString(t, JSON(), sampleObject(), WithSortKeys(true))
	checkRendered(t, got, `{"a":2,"b":1}`)
}

func TestJSONIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("xs"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
	})
	got := renderString(t, JSON(), node, WithIndent(2))
	want := "{\n  \"xs\": [\n    1,\n    2\n  ]\n}"
	checkRendered(t, got, want)
}

func TestJSONValues(t *testing.T) {
	when := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null"},
		{"nil node", nil, "null"},
		{"bool", ir.FromBool(false), "false"},
		{"int", ir.FromInt(-12), "-12"},
		{"float", ir.FromFloat(2.5), "2.5"},
		{"decimal", ir.FromDecimal("0.1000000000000000000000001"), "0.1000000000000000000000001"},
		{"string escape", ir.FromString("a\"b\nc"), `"a\"b\nc"`},
		{"time", ir.FromTime(when), `"2024-02-03T04:05:06Z"`},
		{"empty object", ir.FromKeyVals(nil), "{}"},
		{"empty array", ir.FromSlice(nil), "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, JSON(), tt.node)
			checkRendered(t, got, tt.want)
		})
	}
}

func TestJSONColors(t *testing.T) {
	got := renderString(t, JSON(), sampleObject(), WithColors(NewColors()))
	plain := renderString(t, JSON(), sampleObject())
	if got == plain {
		t.Skip("no color support in test environment")
	}
	if !bytes.Contains([]byte(got), []byte(`"b"`)) {
		t.Errorf("colored output lost content: %q", got)
	}
}

func TestXMLObject(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromInt(1)},
		{Key: ir.FromString("a"), Val: ir.Null()},
	})
	got := renderString(t, XML(), node)
	checkRendered(t, got, "<root><a></a><b>1</b></root>")
}

func TestXMLList(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x<y")})
	got := renderString(t, XML(), node)
	checkRendered(t, got, "<root><list-item>1</list-item><list-item>x&lt;y</list-item></root>")
}

func TestXMLElementNames(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"plain", "plain"},
		{"with space", "with_space"},
		{"1st", "_1st"},
		{"", "_"},
		{"a.b-c", "a.b-c"},
	}
	for _, tt := range tests {
		if got := elementName(tt.key); got != tt.want {
			t.Errorf("elementName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestYAMLObject(t *testing.T) {
	got := renderString(t, YAML(), sampleObject())
	checkRendered(t, got, "b: 1\na: 2\n")
}

func TestYAMLNested(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("xs"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null()})},
		{Key: ir.FromString("s"), Val: ir.FromString("hi")},
	})
	got := renderString(t, YAML(), node)
	checkRendered(t, got, "xs:\n- 1\n- null\ns: hi\n")
}

type brokenRenderer struct{}

func (brokenRenderer) Name() string        { return "broken" }
func (brokenRenderer) ContentType() string { return "application/octet-stream" }
func (brokenRenderer) Available() bool     { return false }
func (brokenRenderer) Render(*ir.Node, io.Writer, ...Option) error {
	return errors.New("unreachable")
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(JSON()); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(JSON()); err == nil {
		t.Error("duplicate register should fail")
	}
	if _, err := r.Get("nope"); !errors.Is(err, ErrUnsupportedRenderer) {
		t.Errorf("unknown renderer err = %v", err)
	}
	if err := r.Register(brokenRenderer{}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get("broken"); !errors.Is(err, ErrUnsupportedRenderer) {
		t.Errorf("unavailable renderer err = %v", err)
	}
	got, err := r.Get("json")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "json" {
		t.Errorf("Get returned %q", got.Name())
	}
}

func TestRegistryList(t *testing.T) {
	r := DefaultRegistry()
	r.MustRegister(brokenRenderer{})
	want := []string{"json", "xml", "yaml"}
	got := r.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List() = %v, want %v", got, want)
		}
	}
}
