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

// DefaultDeprecationReason is assumed when @deprecated is applied without a reason argument.
const DefaultDeprecationReason = "No longer supported"

func builtInScalar(name string, description string) *ScalarType {
	return &ScalarType{
		typeBase: typeBase{
			name:        name,
			description: description,
			builtIn:     true,
		},
	}
}

func newBuiltInTypes() []*ScalarType {
	return []*ScalarType{
		builtInScalar("Int",
			"The `Int` scalar type represents non-fractional signed whole numeric values."),
		builtInScalar("Float",
			"The `Float` scalar type represents signed double-precision fractional values."),
		builtInScalar("String",
			"The `String` scalar type represents textual data, represented as UTF-8 character "+
				"sequences."),
		builtInScalar("Boolean",
			"The `Boolean` scalar type represents `true` or `false`."),
		builtInScalar("ID",
			"The `ID` scalar type represents a unique identifier, often used to refetch an object "+
				"or as key for a cache."),
	}
}

func newBuiltInDirectives() []*Directive {
	executableLocations := []ast.DirectiveLocation{
		ast.DirectiveLocationField,
		ast.DirectiveLocationFragmentSpread,
		ast.DirectiveLocationInlineFragment,
	}

	condition := func(description string) *InputValue {
		return &InputValue{
			name:        "if",
			description: description,
			typ:         NonNullTypeRef{InnerType: NamedTypeRef{Name: "Boolean"}},
		}
	}

	skipCondition := condition("Skipped when true.")
	includeCondition := condition("Included when true.")
	deprecationReason := &InputValue{
		name: "reason",
		description: "Explains why this element was deprecated, usually also including a " +
			"suggestion for how to access supported similar data.",
		typ: NamedTypeRef{Name: "String"},
	}

	return []*Directive{
		{
			name:        "skip",
			description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
			args:        []*InputValue{skipCondition},
			argMap:      map[string]*InputValue{"if": skipCondition},
			locations:   executableLocations,
			builtIn:     true,
		},
		{
			name:        "include",
			description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
			args:        []*InputValue{includeCondition},
			argMap:      map[string]*InputValue{"if": includeCondition},
			locations:   executableLocations,
			builtIn:     true,
		},
		{
			name:        "deprecated",
			description: "Marks an element of a GraphQL schema as no longer supported.",
			args:        []*InputValue{deprecationReason},
			argMap:      map[string]*InputValue{"reason": deprecationReason},
			locations: []ast.DirectiveLocation{
				ast.DirectiveLocationFieldDefinition,
				ast.DirectiveLocationEnumValue,
			},
			builtIn: true,
		},
	}
}

var typenameMetaField = &Field{
	name:        "__typename",
	description: "The name of the current Object type at runtime.",
	typ:         NonNullTypeRef{InnerType: NamedTypeRef{Name: "String"}},
}

// TypenameMetaField returns the definition of the "__typename" meta field which can be selected on
// any composite type.
func TypenameMetaField() *Field { return typenameMetaField }
