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

// Package schema builds an immutable, name-resolved type system model from parsed schema
// documents.
package schema

import (
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
)

// Schema is the name-resolved type system of one package. Values are immutable once built: lookups
// are name-keyed while Types and Directives preserve source document order so consumers that need
// determinism never iterate a map.
type Schema struct {
	types        []Type
	typeMap      map[string]Type
	directives   []*Directive
	directiveMap map[string]*Directive

	// rootTypes maps each root operation to the name of its object type. Operations without a
	// serving type are absent.
	rootTypes map[ast.OperationType]string

	// implementations maps an interface name to the names of the object types implementing it, in
	// source document order.
	implementations map[string][]string
}

// Types lists the types defined by the schema documents in source order. Built-in scalars are not
// included; look them up with Type.
func (schema *Schema) Types() []Type { return schema.types }

// Type looks up a named type, including the built-in scalars. Nil if the schema defines no such
// type.
func (schema *Schema) Type(name string) Type { return schema.typeMap[name] }

// Directives lists the directives defined by the schema documents in source order. The built-in
// @skip, @include and @deprecated are not included; look them up with Directive.
func (schema *Schema) Directives() []*Directive { return schema.directives }

// Directive looks up a directive by name, including the built-in ones. Nil if the schema defines no
// such directive.
func (schema *Schema) Directive(name string) *Directive { return schema.directiveMap[name] }

// RootOperationTypeName returns the name of the object type serving the given root operation.
func (schema *Schema) RootOperationTypeName(operation ast.OperationType) (string, bool) {
	name, ok := schema.rootTypes[operation]
	return name, ok
}

// RootOperationType returns the object type serving the given root operation; nil if the schema
// declares none.
func (schema *Schema) RootOperationType(operation ast.OperationType) *ObjectType {
	if name, ok := schema.rootTypes[operation]; ok {
		if object, ok := schema.typeMap[name].(*ObjectType); ok {
			return object
		}
	}
	return nil
}

// PossibleTypes returns the names of the object types an abstract type may resolve to, in source
// document order. For an object type it returns the type itself.
func (schema *Schema) PossibleTypes(t Type) []string {
	switch t := t.(type) {
	case *ObjectType:
		return []string{t.Name()}
	case *InterfaceType:
		return schema.implementations[t.Name()]
	case *UnionType:
		return t.Members()
	}
	return nil
}

// TypesOverlap returns true if the two composite types share at least one possible object type. A
// fragment whose type condition does not overlap the parent selection type can never apply.
func (schema *Schema) TypesOverlap(a, b Type) bool {
	if a == b {
		return true
	}

	possible := schema.PossibleTypes(a)
	others := schema.PossibleTypes(b)
	for _, name := range possible {
		for _, other := range others {
			if name == other {
				return true
			}
		}
	}
	return false
}
