package render

import (
	"io"

	"github.com/seriate/go-seriate/ir"
)

// Renderer consumes a value tree and produces format-specific output.
// Renderers hold no per-call state and are safe for concurrent use.
type Renderer interface {
	// Name is the format identifier renderers register under, e.g.
	// "json".
	Name() string

	// ContentType is the MIME type of rendered output.
	ContentType() string

	// Available reports whether the renderer can produce output. An
	// unavailable renderer must be reported at selection time, never
	// silently substituted.
	Available() bool

	// Render writes the tree to w.
	Render(node *ir.Node, w io.Writer, opts ...Option) error
}

// Option configures one render call.
type Option func(*Options)

// Options is the uniform render configuration. Renderers ignore keys
// they do not recognize.
type Options struct {
	// Indent is the pretty-printing width; zero means compact output.
	Indent int

	// SortKeys forces deterministic key ordering. JSON-family only.
	SortKeys bool

	// Colors enables terminal colorization where supported.
	Colors *Colors
}

func WithIndent(n int) Option {
	return func(o *Options) { o.Indent = n }
}

func WithSortKeys(v bool) Option {
	return func(o *Options) { o.SortKeys = v }
}

func WithColors(c *Colors) Option {
	return func(o *Options) { o.Colors = c }
}

func buildOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
