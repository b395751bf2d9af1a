// Package structmodel backs the model.Provider contract with reflection
// over plain Go structs.
//
// Attributes are exported struct fields, renamed via the `seriate`
// struct tag:
//
//	type Post struct {
//	    ID     int64   `seriate:"id,pk"`
//	    Title  string  `seriate:"title"`
//	    Author *Author `seriate:"author"`
//	    AuthorID int64 `seriate:"author_id"`
//	    Tags   []Tag   `seriate:"tags"`
//	}
//
// Struct-typed and pointer-to-struct fields are single relations;
// slices of structs are multi relations. A sibling field named
// <Name>ID provides the serializable-scalar fast path for a relation,
// so primary-key projection need not touch the related object. The
// primary key is the field tagged "pk", or ID by convention. Types
// expose natural keys by implementing NaturalKeyer.
package structmodel
