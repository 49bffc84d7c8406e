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

package checker

import (
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/schema"
)

// BoundOperation is an operation definition whose selections, variables and fragment spreads have
// been resolved against a schema. It is the unit consumed by code generation: every name a
// generator needs (response shapes, variable types, fragment types) is reachable from here without
// touching the schema again.
type BoundOperation struct {
	// Definition is the operation definition in the operation document.
	Definition *ast.OperationDefinition

	// Name of the operation; empty for an anonymous operation.
	Name string

	// OperationType is one of query, mutation and subscription.
	OperationType ast.OperationType

	// RootType is the schema object type the operation selects from.
	RootType *schema.ObjectType

	// Variables declared by the operation, in declaration order.
	Variables []*BoundVariable

	// SelectionSet contains the bound top-level selections.
	SelectionSet []BoundSelection

	// Fragments lists the bound fragments reachable from this operation via fragment spreads, in
	// first-use order.
	Fragments []*BoundFragment
}

// Variable returns the bound variable with the given name, or nil.
func (operation *BoundOperation) Variable(name string) *BoundVariable {
	for _, variable := range operation.Variables {
		if variable.Name == name {
			return variable
		}
	}
	return nil
}

// BoundVariable is a variable definition resolved to a schema type reference.
type BoundVariable struct {
	// Definition is the variable definition node.
	Definition *ast.VariableDefinition

	// Name of the variable without the leading "$".
	Name string

	// Type is the declared type of the variable.
	Type schema.TypeRef

	// Default is the declared default value; nil when none was given.
	Default ast.Value
}

// HasDefault returns true if the variable declares a default value.
func (variable *BoundVariable) HasDefault() bool {
	return variable.Default != nil
}

// BoundSelection is a selection in a bound selection set. It is implemented by BoundField,
// BoundFragmentSpread and BoundInlineFragment.
type BoundSelection interface {
	boundSelectionNode()
}

var (
	_ BoundSelection = (*BoundField)(nil)
	_ BoundSelection = (*BoundFragmentSpread)(nil)
	_ BoundSelection = (*BoundInlineFragment)(nil)
)

// BoundField is a field selection resolved against its parent type.
type BoundField struct {
	// Node is the field selection in the operation document.
	Node *ast.Field

	// ParentType is the composite type the field was selected on.
	ParentType schema.Type

	// Definition is the schema field definition; nil when the field does not exist on ParentType (a
	// diagnostic is reported and the output shape degrades to an error placeholder).
	Definition *schema.Field

	// Type is the declared type of the field; nil when Definition is nil.
	Type schema.TypeRef

	// Arguments supplied to the field.
	Arguments []*BoundArgument

	// Directives applied to the field.
	Directives []*BoundDirective

	// SelectionSet contains the bound sub-selections; empty for leaf fields.
	SelectionSet []BoundSelection
}

// ResponseKey returns the key under which the field value appears in the response object.
func (field *BoundField) ResponseKey() string {
	if !field.Node.Alias.IsNil() {
		return field.Node.Alias.Value()
	}
	return field.Node.Name.Value()
}

func (*BoundField) boundSelectionNode() {}

// BoundArgument is an argument resolved to its definition on the enclosing field or directive.
type BoundArgument struct {
	// Node is the argument in the operation document.
	Node *ast.Argument

	// Definition is the argument definition; nil when the enclosing field or directive does not
	// define an argument with this name.
	Definition *schema.InputValue
}

// BoundDirective is a directive application resolved to its schema definition.
type BoundDirective struct {
	// Node is the directive in the operation document.
	Node *ast.Directive

	// Definition is the schema directive; nil when the directive is unknown.
	Definition *schema.Directive

	// Arguments supplied to the directive.
	Arguments []*BoundArgument
}

// BoundFragmentSpread is a fragment spread resolved to a bound fragment.
type BoundFragmentSpread struct {
	// Node is the spread in the operation document.
	Node *ast.FragmentSpread

	// Fragment is the spread target; nil when the fragment is unknown or participates in a spread
	// cycle.
	Fragment *BoundFragment

	// Directives applied to the spread.
	Directives []*BoundDirective
}

func (*BoundFragmentSpread) boundSelectionNode() {}

// BoundInlineFragment is an inline fragment resolved against its type condition.
type BoundInlineFragment struct {
	// Node is the inline fragment in the operation document.
	Node *ast.InlineFragment

	// TypeCondition is the resolved type condition; nil when the inline fragment has none (the
	// parent type applies) or when the named type is unknown.
	TypeCondition schema.Type

	// Directives applied to the inline fragment.
	Directives []*BoundDirective

	// SelectionSet contains the bound selections.
	SelectionSet []BoundSelection
}

func (*BoundInlineFragment) boundSelectionNode() {}

// BoundFragment is a fragment definition resolved against the schema. Fragments are bound once and
// shared by every operation that spreads them.
type BoundFragment struct {
	// Definition is the fragment definition node.
	Definition *ast.FragmentDefinition

	// Name of the fragment.
	Name string

	// TypeCondition is the resolved type condition; nil when the named type is unknown.
	TypeCondition schema.Type

	// SelectionSet contains the bound selections.
	SelectionSet []BoundSelection
}
