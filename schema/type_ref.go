/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package schema

import (
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
)

// A TypeRef describes the (possibly wrapped) type of a field, an argument or a variable. It is one
// of NamedTypeRef, ListTypeRef and NonNullTypeRef.
type TypeRef interface {
	// String renders the reference back in source syntax (e.g., "[Int!]").
	String() string

	// NamedType returns the name of the innermost named type of the reference.
	NamedType() string

	// typeRefNode is a special mark to limit implementations to the ones in this package.
	typeRefNode()
}

var (
	_ TypeRef = NamedTypeRef{}
	_ TypeRef = ListTypeRef{}
	_ TypeRef = NonNullTypeRef{}
)

// NamedTypeRef refers to a named type.
type NamedTypeRef struct {
	Name string
}

// String implements TypeRef.
func (ref NamedTypeRef) String() string { return ref.Name }

// NamedType implements TypeRef.
func (ref NamedTypeRef) NamedType() string { return ref.Name }

func (NamedTypeRef) typeRefNode() {}

// ListTypeRef refers to a list of its element type.
type ListTypeRef struct {
	ItemType TypeRef
}

// String implements TypeRef.
func (ref ListTypeRef) String() string { return "[" + ref.ItemType.String() + "]" }

// NamedType implements TypeRef.
func (ref ListTypeRef) NamedType() string { return ref.ItemType.NamedType() }

func (ListTypeRef) typeRefNode() {}

// NonNullTypeRef refers to the non-null variant of its inner type. The inner type is never itself a
// NonNullTypeRef.
type NonNullTypeRef struct {
	InnerType TypeRef
}

// String implements TypeRef.
func (ref NonNullTypeRef) String() string { return ref.InnerType.String() + "!" }

// NamedType implements TypeRef.
func (ref NonNullTypeRef) NamedType() string { return ref.InnerType.NamedType() }

func (NonNullTypeRef) typeRefNode() {}

// TypeRefFromAST converts an ast.Type into a TypeRef.
func TypeRefFromAST(t ast.Type) TypeRef {
	switch t := t.(type) {
	case ast.NamedType:
		return NamedTypeRef{Name: t.Name.Value()}
	case ast.ListType:
		return ListTypeRef{ItemType: TypeRefFromAST(t.ItemType)}
	case ast.NonNullType:
		return NonNullTypeRef{InnerType: TypeRefFromAST(t.Type)}
	}
	return nil
}

// IsNonNullRef returns true if the reference rejects null.
func IsNonNullRef(ref TypeRef) bool {
	_, ok := ref.(NonNullTypeRef)
	return ok
}

// NullableRef strips the outermost non-null wrapper, if any.
func NullableRef(ref TypeRef) TypeRef {
	if nonNull, ok := ref.(NonNullTypeRef); ok {
		return nonNull.InnerType
	}
	return ref
}
