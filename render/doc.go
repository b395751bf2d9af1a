// Package render serializes ir.Node trees to wire formats.
//
// # Usage
//
//	reg := render.DefaultRegistry()
//	r, err := reg.Get("json")
//	if err != nil {
//	    // renderer missing or unavailable
//	}
//	err = r.Render(node, w, render.WithIndent(2), render.WithSortKeys(true))
//
// Renderers are selected by name through a Registry. A renderer whose
// backing support is absent reports itself unavailable; Get surfaces
// that as ErrUnsupportedRenderer instead of silently substituting
// another format.
//
// # Related Packages
//
//   - github.com/seriate/go-seriate/ir - the value tree being rendered
package render
