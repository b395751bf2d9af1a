package structmodel

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/seriate/go-seriate/model"
)

const tagKey = "seriate"

// NaturalKeyer is implemented by types exposing a natural key
// projection.
type NaturalKeyer interface {
	NaturalKey() []any
}

// Provider implements model.Provider over plain Go structs.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

var _ model.Provider = (*Provider)(nil)

type fieldInfo struct {
	// GoName is the struct field name; Name the serialized name from
	// the tag, defaulting to the lowercased Go name.
	GoName string
	Name   string
	PK     bool
	Omit   bool
	Index  int
	Type   reflect.Type
}

func parseField(sf reflect.StructField, idx int) fieldInfo {
	info := fieldInfo{
		GoName: sf.Name,
		Name:   strings.ToLower(sf.Name),
		Index:  idx,
		Type:   sf.Type,
	}
	tag := sf.Tag.Get(tagKey)
	if tag == "" {
		return info
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		info.Omit = true
		return info
	}
	if parts[0] != "" {
		info.Name = parts[0]
	}
	for _, flag := range parts[1:] {
		if flag == "pk" {
			info.PK = true
		}
	}
	return info
}

func structValue(obj any) (reflect.Value, error) {
	val := reflect.ValueOf(obj)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil object")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("object is %s, not a struct", val.Kind())
	}
	return val, nil
}

func structFields(t reflect.Type) []fieldInfo {
	res := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		info := parseField(sf, i)
		if info.Omit {
			continue
		}
		res = append(res, info)
	}
	return res
}

func (p *Provider) lookup(obj any, name string) (reflect.Value, *fieldInfo, error) {
	val, err := structValue(obj)
	if err != nil {
		return reflect.Value{}, nil, err
	}
	for _, info := range structFields(val.Type()) {
		if info.Name == name || info.GoName == name {
			return val, &info, nil
		}
	}
	return reflect.Value{}, nil, &model.FieldNotFoundError{
		TypeName: p.TypeName(obj),
		Field:    name,
	}
}

func (p *Provider) Value(obj any, name string) (any, error) {
	val, info, err := p.lookup(obj, name)
	if err != nil {
		return nil, err
	}
	return val.Field(info.Index).Interface(), nil
}

func (p *Provider) FieldType(obj any, name string) (string, error) {
	_, info, err := p.lookup(obj, name)
	if err != nil {
		return "", err
	}
	return typeNameOf(info.Type), nil
}

func typeNameOf(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Time{}) {
		return "datetime"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Struct:
		return "relation"
	case reflect.Slice, reflect.Array:
		if relatedElem(t) != nil {
			return "relation"
		}
		return "list"
	case reflect.Map:
		return "map"
	default:
		return t.Kind().String()
	}
}

// relatedElem returns the (de-pointered) struct element type of a
// slice-of-structs type, or nil when t is not one.
func relatedElem(t reflect.Type) reflect.Type {
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return nil
	}
	e := t.Elem()
	for e.Kind() == reflect.Ptr {
		e = e.Elem()
	}
	if e.Kind() == reflect.Struct && e != reflect.TypeOf(time.Time{}) {
		return e
	}
	return nil
}

func isRelationType(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Time{}) {
		return false
	}
	return t.Kind() == reflect.Struct
}

func (p *Provider) Relation(obj any, name string) (*model.Relation, error) {
	val, info, err := p.lookup(obj, name)
	if err != nil {
		return nil, err
	}
	fv := val.Field(info.Index)

	if elem := relatedElem(info.Type); elem != nil {
		members := make([]any, 0, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			members = append(members, fv.Index(i).Interface())
		}
		return &model.Relation{
			Cardinality: model.Multi,
			TargetType:  typeIdent(elem),
			Members:     members,
		}, nil
	}
	if isRelationType(info.Type) {
		rel := &model.Relation{
			Cardinality: model.Single,
			TargetType:  typeIdent(derefType(info.Type)),
		}
		if fv.Kind() == reflect.Ptr && fv.IsNil() {
			return rel, nil
		}
		rel.Object = fv.Interface()
		return rel, nil
	}
	return nil, fmt.Errorf("%w: %q on %s", model.ErrNotRelation, name, p.TypeName(obj))
}

// SerializableValue implements the fast path: a single relation with a
// stored <Name>ID sibling returns that key without touching the
// related object; plain attributes return their value. Multi relations
// have no precomputed form and report FieldNotFound so callers fall
// back to relation resolution.
func (p *Provider) SerializableValue(obj any, name string) (any, error) {
	val, info, err := p.lookup(obj, name)
	if err != nil {
		return nil, err
	}
	if relatedElem(info.Type) != nil {
		return nil, &model.FieldNotFoundError{
			TypeName: p.TypeName(obj),
			Field:    name,
		}
	}
	if isRelationType(info.Type) {
		for _, sibling := range structFields(val.Type()) {
			if sibling.GoName == info.GoName+"ID" {
				return val.Field(sibling.Index).Interface(), nil
			}
		}
		return nil, &model.FieldNotFoundError{
			TypeName: p.TypeName(obj),
			Field:    name,
		}
	}
	return val.Field(info.Index).Interface(), nil
}

func (p *Provider) PrimaryKey(obj any) (any, error) {
	val, err := structValue(obj)
	if err != nil {
		return nil, err
	}
	infos := structFields(val.Type())
	for _, info := range infos {
		if info.PK {
			return val.Field(info.Index).Interface(), nil
		}
	}
	for _, info := range infos {
		if info.GoName == "ID" {
			return val.Field(info.Index).Interface(), nil
		}
	}
	return nil, &model.FieldNotFoundError{
		TypeName: p.TypeName(obj),
		Field:    "pk",
	}
}

func (p *Provider) NaturalKey(obj any) ([]any, bool) {
	if nk, ok := obj.(NaturalKeyer); ok {
		return nk.NaturalKey(), true
	}
	return nil, false
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// typeIdent is the canonical type identifier: lowercased package base
// name and type name, e.g. "auth.user".
func typeIdent(t reflect.Type) string {
	pkg := t.PkgPath()
	if i := strings.LastIndexByte(pkg, '/'); i >= 0 {
		pkg = pkg[i+1:]
	}
	if pkg == "" {
		return strings.ToLower(t.Name())
	}
	return strings.ToLower(pkg + "." + t.Name())
}

func (p *Provider) TypeName(obj any) string {
	t := reflect.TypeOf(obj)
	if t == nil {
		return "<nil>"
	}
	return typeIdent(derefType(t))
}

func (p *Provider) CanonicalString(v any) string {
	switch vv := v.(type) {
	case time.Time:
		return vv.Format(time.RFC3339)
	case encoding.TextMarshaler:
		if text, err := vv.MarshalText(); err == nil {
			return string(text)
		}
	}
	return fmt.Sprint(v)
}
