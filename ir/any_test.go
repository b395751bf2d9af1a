package ir

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFromAnyToAnyRoundTrip(t *testing.T) {
	now := time.Date(2023, 11, 5, 8, 30, 0, 0, time.UTC)
	in := map[string]any{
		"name":    "alice",
		"age":     int64(30),
		"score":   1.5,
		"active":  true,
		"joined":  now,
		"nothing": nil,
		"tags":    []any{"a", "b"},
		"nested": map[string]any{
			"k": int64(1),
		},
	}
	node, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	out := ToAny(node)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAnyNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *Node
	}{
		{"int", 7, FromInt(7)},
		{"uint32", uint32(7), FromInt(7)},
		{"float", 2.5, FromFloat(2.5)},
		{"json int", json.Number("12"), FromInt(12)},
		{"json float", json.Number("2.5"), FromFloat(2.5)},
		{"json decimal", json.Number("12.345678901234567890123456789"), FromDecimal("12.345678901234567890123456789")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if Compare(got, tt.want) != 0 {
				t.Errorf("FromAny(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromAnyUnrepresentable(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("expected error for struct input")
	}
}

func TestNodeJSONRoundTrip(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromInt(1)},
		{Key: FromString("a"), Val: FromSlice([]*Node{FromBool(true), Null()})},
	})
	d, err := json.Marshal(node)
	if err != nil {
		t.Fatal(err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if Compare(node, back) != 0 {
		t.Errorf("JSON round trip changed the node")
	}
}
