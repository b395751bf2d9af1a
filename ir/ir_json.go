package ir

import (
	"encoding/json"
	"time"
)

type irBase struct {
	Type   Type    `json:"type"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`

	Number  string     `json:"number,omitempty"`
	Float64 *float64   `json:"float,omitempty"`
	Int64   *int64     `json:"int,omitempty"`
	Time    *time.Time `json:"time,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Fields:  y.Fields,
		Values:  y.Values,
		Number:  y.Number,
		Float64: y.Float64,
		Int64:   y.Int64,
		Time:    y.Time,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.Number = tmp.Number
	y.Float64 = tmp.Float64
	y.Int64 = tmp.Int64
	y.Time = tmp.Time
	y.String = tmp.String
	y.Bool = tmp.Bool
	for i, f := range y.Fields {
		f.Parent = y
		f.ParentIndex = i
		f.ParentField = f.String
	}
	for i, v := range y.Values {
		v.Parent = y
		v.ParentIndex = i
		if i < len(y.Fields) {
			v.ParentField = y.Fields[i].String
		}
	}
	return nil
}
