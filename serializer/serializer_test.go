package serializer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seriate/go-seriate/fields"
	"github.com/seriate/go-seriate/ir"
	"github.com/seriate/go-seriate/structmodel"
)

type author struct {
	ID   int64 `seriate:"id,pk"`
	Name string
}

type comment struct {
	ID   int64
	Body string
}

type post struct {
	ID       int64 `seriate:"id,pk"`
	Title    string
	Author   *author
	AuthorID int64
	Comments []comment
	Created  time.Time
}

func samplePost() *post {
	return &post{
		ID:       10,
		Title:    "first",
		Author:   &author{ID: 3, Name: "ada"},
		AuthorID: 3,
		Comments: []comment{
			{ID: 100, Body: "nice"},
			{ID: 101, Body: "agreed"},
		},
		Created: time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC),
	}
}

func TestRegisterOrder(t *testing.T) {
	s := New()
	names := []string{"zeta", "alpha", "mid", "beta"}
	for _, name := range names {
		require.NoError(t, s.Register(name, fields.NewValueField()))
	}
	require.Equal(t, names, s.FieldNames())

	require.Error(t, s.Register("alpha", fields.NewValueField()))
	require.Error(t, s.Register("", fields.NewValueField()))
	require.Error(t, s.Register("ok", nil))
}

func TestConvertOrderAndLabels(t *testing.T) {
	s := New()
	s.MustRegister("title", fields.NewValueField())
	s.MustRegister("id", fields.NewValueField(fields.WithLabel("pk")))

	node, err := s.Convert(structmodel.New(), samplePost())
	require.NoError(t, err)
	require.Equal(t, ir.ObjectType, node.Type)
	require.Len(t, node.Fields, 2)
	require.Equal(t, "title", node.Fields[0].String)
	require.Equal(t, "pk", node.Fields[1].String)
	require.Equal(t, "first", node.Values[0].String)
	require.EqualValues(t, 10, *node.Values[1].Int64)
}

func TestConvertFieldError(t *testing.T) {
	s := New()
	s.MustRegister("nope", fields.NewValueField())
	_, err := s.Convert(structmodel.New(), samplePost())
	require.ErrorContains(t, err, `field "nope"`)
}

func TestNestedSerializer(t *testing.T) {
	authors := New()
	authors.MustRegister("id", fields.NewValueField())
	authors.MustRegister("name", fields.NewValueField())

	comments := New()
	comments.MustRegister("body", fields.NewValueField())

	s := New()
	s.MustRegister("title", fields.NewValueField())
	s.MustRegister("author", authors.Field())
	s.MustRegister("comments", comments.Field())

	node, err := s.Convert(structmodel.New(), samplePost())
	require.NoError(t, err)

	a := ir.Get(node, "author")
	require.NotNil(t, a)
	require.Equal(t, ir.ObjectType, a.Type)
	require.Equal(t, "ada", ir.Get(a, "name").String)
	require.EqualValues(t, 3, *ir.Get(a, "id").Int64)

	cs := ir.Get(node, "comments")
	require.NotNil(t, cs)
	require.Equal(t, ir.ArrayType, cs.Type)
	require.Len(t, cs.Values, 2)
	require.Equal(t, "nice", ir.Get(cs.Values[0], "body").String)
	require.Equal(t, "agreed", ir.Get(cs.Values[1], "body").String)
}

func TestNestedNilRelation(t *testing.T) {
	authors := New()
	authors.MustRegister("name", fields.NewValueField())

	s := New()
	s.MustRegister("author", authors.Field())

	p := samplePost()
	p.Author = nil
	node, err := s.Convert(structmodel.New(), p)
	require.NoError(t, err)
	require.Equal(t, ir.NullType, ir.Get(node, "author").Type)
}

type linked struct {
	Name string
	Peer *linked
}

func TestNestedCycleDegrades(t *testing.T) {
	s := New()
	s.MustRegister("name", fields.NewValueField())
	s.MustRegister("peer", s.Field())

	a := &linked{Name: "a"}
	a.Peer = a

	node, err := s.Convert(structmodel.New(), a)
	require.NoError(t, err)
	// the self link is already on the stack; the repeated occurrence
	// degrades to its canonical string form instead of recursing
	peer := ir.Get(node, "peer")
	require.NotNil(t, peer)
	require.Equal(t, ir.StringType, peer.Type)
}

type cycleAuthor struct {
	Name  string
	Posts []*cyclePost
}

type cyclePost struct {
	Title  string
	Tags   []string
	Author *cycleAuthor
}

// Objects on a bidirectional relation carry slice fields, so the cycle
// check must run on the relation pointers, never on dereferenced
// (uncomparable) struct values.
func TestBidirectionalRelationCycle(t *testing.T) {
	authors := New()
	posts := New()
	authors.MustRegister("name", fields.NewValueField())
	authors.MustRegister("posts", posts.Field())
	posts.MustRegister("title", fields.NewValueField())
	posts.MustRegister("tags", fields.NewValueField())
	posts.MustRegister("author", authors.Field())

	a := &cycleAuthor{Name: "ada"}
	p := &cyclePost{Title: "first", Tags: []string{"go"}, Author: a}
	a.Posts = []*cyclePost{p}

	node, err := authors.Convert(structmodel.New(), a)
	require.NoError(t, err)

	ps := ir.Get(node, "posts")
	require.NotNil(t, ps)
	require.Equal(t, ir.ArrayType, ps.Type)
	require.Len(t, ps.Values, 1)

	post := ps.Values[0]
	require.Equal(t, "first", ir.Get(post, "title").String)
	require.Equal(t, ir.ArrayType, ir.Get(post, "tags").Type)
	// the back reference is on the stack and degrades to a string
	require.Equal(t, ir.StringType, ir.Get(post, "author").Type)
}

func TestPrimaryKeyRelation(t *testing.T) {
	s := New()
	s.MustRegister("author", fields.NewPrimaryKeyRelationField())
	s.MustRegister("comments", fields.NewPrimaryKeyRelationField())

	node, err := s.Convert(structmodel.New(), samplePost())
	require.NoError(t, err)
	require.EqualValues(t, 3, *ir.Get(node, "author").Int64)

	cs := ir.Get(node, "comments")
	require.Equal(t, ir.ArrayType, cs.Type)
	require.Len(t, cs.Values, 2)
	require.EqualValues(t, 100, *cs.Values[0].Int64)
	require.EqualValues(t, 101, *cs.Values[1].Int64)
}

func TestUseNaturalKeys(t *testing.T) {
	s := New()
	s.MustRegister("owner", fields.NewPrimaryKeyOrNaturalKeyField())

	obj := &withNatural{Owner: &org{ID: 5, Slug: "acme", Kind: "widget"}, OwnerID: 5}

	node, err := s.Convert(structmodel.New(), obj)
	require.NoError(t, err)
	require.EqualValues(t, 5, *ir.Get(node, "owner").Int64)

	node, err = s.Convert(structmodel.New(), obj, UseNaturalKeys())
	require.NoError(t, err)
	owner := ir.Get(node, "owner")
	require.Equal(t, ir.ArrayType, owner.Type)
	require.Equal(t, "acme", owner.Values[0].String)
	require.Equal(t, "widget", owner.Values[1].String)
}

type org struct {
	ID   int64 `seriate:"id,pk"`
	Slug string
	Kind string
}

func (o *org) NaturalKey() []any { return []any{o.Slug, o.Kind} }

type withNatural struct {
	ID      int64 `seriate:"id,pk"`
	Owner   *org
	OwnerID int64
}

func TestSerializeJSON(t *testing.T) {
	s := New()
	s.MustRegister("id", fields.NewValueField())
	s.MustRegister("title", fields.NewValueField())

	var buf bytes.Buffer
	require.NoError(t, s.Serialize(&buf, structmodel.New(), samplePost(), "json"))
	require.Equal(t, `{"id":10,"title":"first"}`, buf.String())
}

func TestSerializeUnknownFormat(t *testing.T) {
	s := New()
	s.MustRegister("id", fields.NewValueField())

	var buf bytes.Buffer
	err := s.Serialize(&buf, structmodel.New(), samplePost(), "msgpack")
	require.Error(t, err)
	require.Empty(t, buf.String())
}
