package structmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seriate/go-seriate/model"
)

type tag struct {
	ID   int64
	Name string
}

type account struct {
	ID    int64 `seriate:"id,pk"`
	Email string
}

type article struct {
	private   string
	Code      string `seriate:"code,pk"`
	Title     string `seriate:"headline"`
	Draft     bool
	Rating    float64
	Author    *account
	AuthorID  int64
	Tags      []tag
	Meta      map[string]string
	Published time.Time
	Internal  string `seriate:"-"`
}

func sampleArticle() *article {
	return &article{
		Code:      "a-1",
		Title:     "hello",
		Rating:    4.5,
		Author:    &account{ID: 7, Email: "x@example.com"},
		AuthorID:  7,
		Tags:      []tag{{ID: 1, Name: "go"}, {ID: 2, Name: "news"}},
		Meta:      map[string]string{"k": "v"},
		Published: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValue(t *testing.T) {
	p := New()
	a := sampleArticle()

	v, err := p.Value(a, "headline")
	require.NoError(t, err)
	require.Equal(t, "hello", v)

	// the Go field name resolves too
	v, err = p.Value(a, "Title")
	require.NoError(t, err)
	require.Equal(t, "hello", v)

	_, err = p.Value(a, "internal")
	require.ErrorIs(t, err, model.ErrFieldNotFound)

	_, err = p.Value(a, "private")
	require.ErrorIs(t, err, model.ErrFieldNotFound)

	_, err = p.Value("not a struct", "x")
	require.Error(t, err)
}

func TestFieldType(t *testing.T) {
	p := New()
	a := sampleArticle()
	tests := []struct {
		field, want string
	}{
		{"code", "string"},
		{"draft", "boolean"},
		{"rating", "float"},
		{"authorid", "integer"},
		{"author", "relation"},
		{"tags", "relation"},
		{"meta", "map"},
		{"published", "datetime"},
	}
	for _, tt := range tests {
		got, err := p.FieldType(a, tt.field)
		require.NoError(t, err, tt.field)
		require.Equal(t, tt.want, got, tt.field)
	}
}

func TestRelation(t *testing.T) {
	p := New()
	a := sampleArticle()

	rel, err := p.Relation(a, "author")
	require.NoError(t, err)
	require.Equal(t, model.Single, rel.Cardinality)
	require.Equal(t, "structmodel.account", rel.TargetType)
	require.Equal(t, a.Author, rel.Object)

	rel, err = p.Relation(a, "tags")
	require.NoError(t, err)
	require.Equal(t, model.Multi, rel.Cardinality)
	require.Equal(t, "structmodel.tag", rel.TargetType)
	require.Len(t, rel.Members, 2)
	require.Equal(t, a.Tags[0], rel.Members[0])

	_, err = p.Relation(a, "headline")
	require.ErrorIs(t, err, model.ErrNotRelation)

	a.Author = nil
	rel, err = p.Relation(a, "author")
	require.NoError(t, err)
	require.Nil(t, rel.Object)
}

func TestSerializableValue(t *testing.T) {
	p := New()
	a := sampleArticle()

	v, err := p.SerializableValue(a, "author")
	require.NoError(t, err)
	require.EqualValues(t, 7, v)

	v, err = p.SerializableValue(a, "headline")
	require.NoError(t, err)
	require.Equal(t, "hello", v)

	// multi relations have no precomputed key
	_, err = p.SerializableValue(a, "tags")
	require.ErrorIs(t, err, model.ErrFieldNotFound)
}

type bare struct {
	ID   int64
	Name string
}

type keyless struct {
	Name string
}

func TestPrimaryKey(t *testing.T) {
	p := New()

	pk, err := p.PrimaryKey(sampleArticle())
	require.NoError(t, err)
	require.Equal(t, "a-1", pk)

	pk, err = p.PrimaryKey(&bare{ID: 9})
	require.NoError(t, err)
	require.EqualValues(t, 9, pk)

	_, err = p.PrimaryKey(&keyless{Name: "x"})
	require.ErrorIs(t, err, model.ErrFieldNotFound)
}

type team struct {
	Org  string
	Name string
}

func (t *team) NaturalKey() []any { return []any{t.Org, t.Name} }

func TestNaturalKey(t *testing.T) {
	p := New()

	key, ok := p.NaturalKey(&team{Org: "acme", Name: "widget"})
	require.True(t, ok)
	require.Equal(t, []any{"acme", "widget"}, key)

	_, ok = p.NaturalKey(&bare{})
	require.False(t, ok)
}

func TestTypeName(t *testing.T) {
	p := New()
	require.Equal(t, "structmodel.article", p.TypeName(sampleArticle()))
	require.Equal(t, "structmodel.article", p.TypeName(article{}))
	require.Equal(t, "<nil>", p.TypeName(nil))
}

type marshalable struct{ v string }

func (m marshalable) MarshalText() ([]byte, error) { return []byte(m.v), nil }

func TestCanonicalString(t *testing.T) {
	p := New()
	when := time.Date(2024, 5, 1, 2, 3, 4, 0, time.UTC)
	require.Equal(t, "2024-05-01T02:03:04Z", p.CanonicalString(when))
	require.Equal(t, "marked", p.CanonicalString(marshalable{v: "marked"}))
	require.Equal(t, "42", p.CanonicalString(42))
}
