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
	"github.com/KoichiKiyokawa/nitrogql/internal/util"
	"github.com/KoichiKiyokawa/nitrogql/schema"
)

//===----------------------------------------------------------------------------------------====//
// Selection sets
//===----------------------------------------------------------------------------------------====//

// bindSelectionSet binds the selections in set against parentType. A nil parentType means the
// parent could not be resolved; selections are still traversed (to collect variable usages and
// fragment spreads) but produce no further field diagnostics.
func (c *checker) bindSelectionSet(parentType schema.Type, set ast.SelectionSet) []BoundSelection {
	if len(set) == 0 {
		return nil
	}

	selections := make([]BoundSelection, 0, len(set))
	for _, selection := range set {
		switch selection := selection.(type) {
		case *ast.Field:
			selections = append(selections, c.bindField(parentType, selection))
		case *ast.FragmentSpread:
			selections = append(selections, c.bindFragmentSpread(parentType, selection))
		case *ast.InlineFragment:
			selections = append(selections, c.bindInlineFragment(parentType, selection))
		}
	}
	return selections
}

func (c *checker) bindField(parentType schema.Type, node *ast.Field) *BoundField {
	bound := &BoundField{
		Node:       node,
		ParentType: parentType,
	}

	fieldName := node.Name.Value()
	switch {
	case fieldName == "__typename":
		bound.Definition = schema.TypenameMetaField()

	case parentType != nil:
		switch t := parentType.(type) {
		case *schema.ObjectType:
			bound.Definition = t.Field(fieldName)
		case *schema.InterfaceType:
			bound.Definition = t.Field(fieldName)
		}
		if bound.Definition == nil {
			typeSuggestions, fieldSuggestions := c.suggestedFieldNames(parentType, fieldName)
			c.reportError(
				undefinedFieldMessage(fieldName, parentType.Name(), typeSuggestions, fieldSuggestions),
				node)
		}
	}

	fieldDef := bound.Definition
	if fieldDef != nil {
		bound.Type = fieldDef.Type()
		if fieldDef.Deprecated() && parentType != nil {
			c.reportWarning(
				deprecatedFieldMessage(parentType.Name(), fieldName, fieldDef.DeprecationReason()),
				node)
		}
	}

	var parentTypeName string
	if parentType != nil {
		parentTypeName = parentType.Name()
	}
	bound.Arguments = c.bindFieldArguments(node, fieldDef, parentTypeName)
	bound.Directives = c.bindDirectives(node.Directives, ast.DirectiveLocationField)

	// Selections nested in the field bind against the field's type. Leaf types must not carry a
	// sub-selection and composite types must.
	var fieldType schema.Type
	if fieldDef != nil {
		fieldType = c.schema.Type(fieldDef.Type().NamedType())
	}
	if fieldType != nil {
		if schema.IsLeafType(fieldType) {
			if len(node.SelectionSet) > 0 {
				c.reportError(
					noSubselectionAllowedMessage(fieldName, fieldDef.Type().String()),
					node.SelectionSet)
			}
		} else if len(node.SelectionSet) == 0 {
			c.reportError(requiredSubselectionMessage(fieldName, fieldDef.Type().String()), node)
		} else {
			bound.SelectionSet = c.bindSelectionSet(fieldType, node.SelectionSet)
		}
	} else if len(node.SelectionSet) > 0 {
		bound.SelectionSet = c.bindSelectionSet(nil, node.SelectionSet)
	}

	return bound
}

// suggestedFieldNames builds "Did you mean" candidates for a field that does not exist on
// parentType: for an abstract type, the possible types that do define the field; otherwise fields
// on the parent type with a similar spelling.
func (c *checker) suggestedFieldNames(parentType schema.Type, fieldName string) (typeSuggestions []string, fieldSuggestions []string) {
	if schema.IsAbstractType(parentType) {
		for _, possibleTypeName := range c.schema.PossibleTypes(parentType) {
			possibleType, ok := c.schema.Type(possibleTypeName).(*schema.ObjectType)
			if ok && possibleType.Field(fieldName) != nil {
				typeSuggestions = append(typeSuggestions, possibleTypeName)
			}
		}
	}

	var fields []*schema.Field
	switch t := parentType.(type) {
	case *schema.ObjectType:
		fields = t.Fields()
	case *schema.InterfaceType:
		fields = t.Fields()
	}
	if len(fields) > 0 {
		names := make([]string, len(fields))
		for i, field := range fields {
			names[i] = field.Name()
		}
		fieldSuggestions = util.SuggestionList(fieldName, names)
	}

	return typeSuggestions, fieldSuggestions
}

//===----------------------------------------------------------------------------------------====//
// Fragment spreads and inline fragments
//===----------------------------------------------------------------------------------------====//

func (c *checker) bindFragmentSpread(parentType schema.Type, node *ast.FragmentSpread) *BoundFragmentSpread {
	bound := &BoundFragmentSpread{
		Node:       node,
		Directives: c.bindDirectives(node.Directives, ast.DirectiveLocationFragmentSpread),
	}

	fragmentName := node.Name.Value()
	info := c.fragments[fragmentName]
	if info == nil {
		c.reportError(unknownFragmentMessage(fragmentName), node)
		return bound
	}

	if c.frame != nil {
		c.frame.spreads = append(c.frame.spreads, fragmentName)
	}

	// Cyclic fragments stay unbound; the cycle itself has already been reported.
	bound.Fragment = c.bindFragment(info)

	if bound.Fragment != nil && bound.Fragment.TypeCondition != nil &&
		parentType != nil && schema.IsCompositeType(parentType) &&
		schema.IsCompositeType(bound.Fragment.TypeCondition) &&
		!c.schema.TypesOverlap(parentType, bound.Fragment.TypeCondition) {
		c.reportError(
			typeIncompatibleSpreadMessage(
				fragmentName, parentType.Name(), bound.Fragment.TypeCondition.Name()),
			node)
	}

	return bound
}

func (c *checker) bindInlineFragment(parentType schema.Type, node *ast.InlineFragment) *BoundInlineFragment {
	bound := &BoundInlineFragment{
		Node:       node,
		Directives: c.bindDirectives(node.Directives, ast.DirectiveLocationInlineFragment),
	}

	// Without a type condition the inline fragment selects on the enclosing type.
	childType := parentType
	if node.HasTypeCondition() {
		childType = nil
		typeName := node.TypeCondition.Name.Value()
		if t := c.schema.Type(typeName); t == nil {
			c.reportError(
				unknownTypeMessage(typeName, c.suggestedTypeNames(typeName)),
				node.TypeCondition)
		} else if !schema.IsCompositeType(t) {
			c.reportError(inlineFragmentOnNonCompositeMessage(typeName), node.TypeCondition)
			bound.TypeCondition = t
		} else {
			bound.TypeCondition = t
			childType = t
			if parentType != nil && schema.IsCompositeType(parentType) &&
				!c.schema.TypesOverlap(parentType, t) {
				c.reportError(
					typeIncompatibleAnonSpreadMessage(parentType.Name(), typeName),
					node.TypeCondition)
			}
		}
	}

	bound.SelectionSet = c.bindSelectionSet(childType, node.SelectionSet)
	return bound
}

//===----------------------------------------------------------------------------------------====//
// Arguments
//===----------------------------------------------------------------------------------------====//

func (c *checker) bindFieldArguments(node *ast.Field, fieldDef *schema.Field, parentTypeName string) []*BoundArgument {
	var (
		bound = make([]*BoundArgument, 0, len(node.Arguments))
		seen  = map[string]bool{}
	)
	for _, argument := range node.Arguments {
		argName := argument.Name.Value()
		if seen[argName] {
			c.reportError(duplicateArgMessage(argName), argument)
		}
		seen[argName] = true

		boundArgument := &BoundArgument{Node: argument}
		if fieldDef != nil {
			boundArgument.Definition = fieldDef.Arg(argName)
			if boundArgument.Definition == nil {
				args := fieldDef.Args()
				knownNames := make([]string, len(args))
				for i, argDef := range args {
					knownNames[i] = argDef.Name()
				}
				c.reportError(
					unknownArgMessage(
						argName, node.Name.Value(), parentTypeName,
						util.SuggestionList(argName, knownNames)),
					argument)
			}
		}
		bound = append(bound, boundArgument)

		if boundArgument.Definition != nil {
			argDef := boundArgument.Definition
			c.checkValue(argument.Value, argDef.Type(), argDef.HasDefaultValue())
		} else {
			c.collectValueVariables(argument.Value)
		}
	}

	if fieldDef != nil {
		for _, argDef := range fieldDef.Args() {
			if schema.IsNonNullRef(argDef.Type()) && !argDef.HasDefaultValue() && !seen[argDef.Name()] {
				c.reportError(
					missingFieldArgMessage(node.Name.Value(), argDef.Name(), argDef.Type().String()),
					node)
			}
		}
	}

	if len(bound) == 0 {
		return nil
	}
	return bound
}

func (c *checker) bindDirectives(directives ast.Directives, location ast.DirectiveLocation) []*BoundDirective {
	if len(directives) == 0 {
		return nil
	}

	var (
		bound = make([]*BoundDirective, 0, len(directives))
		seen  = map[string]bool{}
	)
	for _, directive := range directives {
		directiveName := directive.Name.Value()
		boundDirective := &BoundDirective{
			Node:       directive,
			Definition: c.schema.Directive(directiveName),
		}
		bound = append(bound, boundDirective)

		directiveDef := boundDirective.Definition
		if directiveDef == nil {
			c.reportError(unknownDirectiveMessage(directiveName), directive)
			for _, argument := range directive.Arguments {
				c.collectValueVariables(argument.Value)
			}
			continue
		}

		if !directiveDef.HasLocation(location) {
			c.reportError(misplacedDirectiveMessage(directiveName, string(location)), directive)
		}
		if !directiveDef.Repeatable() {
			if seen[directiveName] {
				c.reportError(duplicateDirectiveMessage(directiveName), directive)
			}
			seen[directiveName] = true
		}

		boundDirective.Arguments = c.bindDirectiveArguments(directive, directiveDef)
	}
	return bound
}

func (c *checker) bindDirectiveArguments(node *ast.Directive, directiveDef *schema.Directive) []*BoundArgument {
	var (
		bound = make([]*BoundArgument, 0, len(node.Arguments))
		seen  = map[string]bool{}
	)
	for _, argument := range node.Arguments {
		argName := argument.Name.Value()
		if seen[argName] {
			c.reportError(duplicateArgMessage(argName), argument)
		}
		seen[argName] = true

		boundArgument := &BoundArgument{
			Node:       argument,
			Definition: directiveDef.Arg(argName),
		}
		bound = append(bound, boundArgument)

		if boundArgument.Definition == nil {
			args := directiveDef.Args()
			knownNames := make([]string, len(args))
			for i, argDef := range args {
				knownNames[i] = argDef.Name()
			}
			c.reportError(
				unknownDirectiveArgMessage(
					argName, directiveDef.Name(), util.SuggestionList(argName, knownNames)),
				argument)
			c.collectValueVariables(argument.Value)
			continue
		}

		argDef := boundArgument.Definition
		c.checkValue(argument.Value, argDef.Type(), argDef.HasDefaultValue())
	}

	for _, argDef := range directiveDef.Args() {
		if schema.IsNonNullRef(argDef.Type()) && !argDef.HasDefaultValue() && !seen[argDef.Name()] {
			c.reportError(
				missingDirectiveArgMessage(directiveDef.Name(), argDef.Name(), argDef.Type().String()),
				node)
		}
	}

	if len(bound) == 0 {
		return nil
	}
	return bound
}

//===----------------------------------------------------------------------------------------====//
// Values
//===----------------------------------------------------------------------------------------====//

// checkValue checks a literal value against the type expected at its position. Variables are not
// checked here; their usage is recorded and checked against the declaring operation afterwards.
func (c *checker) checkValue(value ast.Value, expected schema.TypeRef, hasLocationDefault bool) {
	if variable, ok := value.(ast.Variable); ok {
		c.recordVarUsage(variable, expected, hasLocationDefault)
		return
	}

	switch expected := expected.(type) {
	case schema.NonNullTypeRef:
		if _, ok := value.(ast.NullValue); ok {
			c.reportError(badValueMessage(expected.String(), ast.Print(value), nil), value)
			return
		}
		c.checkValue(value, expected.InnerType, hasLocationDefault)

	case schema.ListTypeRef:
		switch value := value.(type) {
		case ast.NullValue:
		case ast.ListValue:
			for _, item := range value.Values() {
				c.checkValue(item, expected.ItemType, false)
			}
		default:
			// A non-list value coerces to a single-item list.
			c.checkValue(value, expected.ItemType, false)
		}

	case schema.NamedTypeRef:
		if _, ok := value.(ast.NullValue); ok {
			return
		}
		switch t := c.schema.Type(expected.Name).(type) {
		case *schema.ScalarType:
			c.checkScalarValue(t, value)
		case *schema.EnumType:
			c.checkEnumValue(t, value)
		case *schema.InputObjectType:
			c.checkInputObjectValue(t, value)
		default:
			// Unknown or non-input type at this position; reported when the schema was built or
			// when the variable was declared.
			c.collectValueVariables(value)
		}
	}
}

func (c *checker) checkScalarValue(t *schema.ScalarType, value ast.Value) {
	// Literals for custom scalars are passed through as-is.
	if !t.BuiltIn() {
		c.collectValueVariables(value)
		return
	}

	valid := false
	switch t.Name() {
	case "Int":
		if intValue, ok := value.(ast.IntValue); ok {
			_, err := intValue.Int32Value()
			valid = err == nil
		}
	case "Float":
		switch value.(type) {
		case ast.IntValue, ast.FloatValue:
			valid = true
		}
	case "String":
		_, valid = value.(ast.StringValue)
	case "Boolean":
		_, valid = value.(ast.BooleanValue)
	case "ID":
		switch value.(type) {
		case ast.StringValue, ast.IntValue:
			valid = true
		}
	}

	if !valid {
		c.reportError(badValueMessage(t.Name(), ast.Print(value), nil), value)
	}
}

func (c *checker) checkEnumValue(t *schema.EnumType, value ast.Value) {
	if enumValue, ok := value.(ast.EnumValue); ok && t.Value(enumValue.Value()) != nil {
		return
	}

	// Use the raw string for string literals so "GREEN" suggests GREEN.
	input := ast.Print(value)
	if stringValue, ok := value.(ast.StringValue); ok {
		input = stringValue.Value()
	}

	values := t.Values()
	names := make([]string, len(values))
	for i, enumValue := range values {
		names[i] = enumValue.Name()
	}

	c.reportError(
		badValueMessage(t.Name(), ast.Print(value), util.SuggestionList(input, names)),
		value)
}

func (c *checker) checkInputObjectValue(t *schema.InputObjectType, value ast.Value) {
	objectValue, ok := value.(ast.ObjectValue)
	if !ok {
		c.reportError(badValueMessage(t.Name(), ast.Print(value), nil), value)
		return
	}

	seen := map[string]bool{}
	for _, field := range objectValue.Fields() {
		fieldName := field.Name.Value()
		if seen[fieldName] {
			c.reportError(duplicateInputFieldMessage(fieldName), field.Value)
		}
		seen[fieldName] = true

		fieldDef := t.Field(fieldName)
		if fieldDef == nil {
			fields := t.Fields()
			names := make([]string, len(fields))
			for i, inputField := range fields {
				names[i] = inputField.Name()
			}
			c.reportError(
				unknownFieldMessage(t.Name(), fieldName, util.SuggestionList(fieldName, names)),
				field.Value)
			c.collectValueVariables(field.Value)
			continue
		}

		c.checkValue(field.Value, fieldDef.Type(), fieldDef.HasDefaultValue())
	}

	for _, fieldDef := range t.Fields() {
		if schema.IsNonNullRef(fieldDef.Type()) && !fieldDef.HasDefaultValue() && !seen[fieldDef.Name()] {
			c.reportError(
				requiredFieldMessage(t.Name(), fieldDef.Name(), fieldDef.Type().String()),
				value)
		}
	}
}

// collectValueVariables records the variable usages nested in a value whose expected type is
// unknown. They still count as uses so that declared variables are not reported unused, but their
// position cannot be type checked.
func (c *checker) collectValueVariables(value ast.Value) {
	switch value := value.(type) {
	case ast.Variable:
		c.recordVarUsage(value, nil, false)
	case ast.ListValue:
		for _, item := range value.Values() {
			c.collectValueVariables(item)
		}
	case ast.ObjectValue:
		for _, field := range value.Fields() {
			c.collectValueVariables(field.Value)
		}
	}
}

func (c *checker) recordVarUsage(variable ast.Variable, expected schema.TypeRef, hasLocationDefault bool) {
	if c.frame == nil {
		return
	}
	c.frame.varUsages = append(c.frame.varUsages, varUsage{
		node:               variable,
		typeRef:            expected,
		hasLocationDefault: hasLocationDefault,
	})
}
