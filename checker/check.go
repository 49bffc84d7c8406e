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

// Package checker binds operation documents against a schema. It resolves every field, argument,
// variable and fragment spread to its schema definition and reports type errors for the ones that
// do not check, producing BoundOperation values ready for code generation.
package checker

import (
	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/internal/util"
	"github.com/KoichiKiyokawa/nitrogql/operation"
	"github.com/KoichiKiyokawa/nitrogql/schema"
)

// Options configures Check.
type Options struct {
	// WarningsAsErrors reports diagnostics that normally have warning severity (unused fragments,
	// unused variables, deprecated field usage) with error severity instead, making them fail the
	// check.
	WarningsAsErrors bool
}

// Check binds every operation in model against s. It returns the bound operations in declaration
// order together with the diagnostics produced along the way. When any diagnostic is fatal the
// bound operations are discarded and nil is returned.
//
// A field selected on a type that does not define it yields exactly one diagnostic naming the type
// and the field; the rest of the operation is still bound so that later diagnostics are not
// suppressed.
func Check(s *schema.Schema, model *operation.Model, opts Options) ([]*BoundOperation, graphql.Errors) {
	c := &checker{
		schema:    s,
		model:     model,
		opts:      opts,
		fragments: map[string]*fragmentInfo{},
	}

	c.prepareFragments()

	operations := make([]*BoundOperation, 0, len(model.Operations()))
	for _, definition := range model.Operations() {
		operations = append(operations, c.bindOperation(definition))
	}

	c.reportUnusedFragments()

	if c.errs.HaveFatal() {
		return nil, c.errs
	}
	return operations, c.errs
}

type checker struct {
	schema *schema.Schema
	model  *operation.Model
	opts   Options
	errs   graphql.Errors

	// fragments indexes fragmentInfo by fragment name.
	fragments map[string]*fragmentInfo

	// frame receives variable usages and fragment spreads found while binding the current operation
	// or fragment.
	frame *bindFrame
}

// fragmentInfo carries the binding state of one fragment definition.
type fragmentInfo struct {
	definition *ast.FragmentDefinition

	// bound is the binding result; nil until bound, and permanently nil for cyclic fragments.
	bound *BoundFragment

	// cyclic is true when the fragment participates in a spread cycle.
	cyclic bool

	// binding guards against re-entrance while the fragment is being bound.
	binding bool

	// spreads names the fragments this fragment spreads directly.
	spreads []string

	// varUsages lists the variable usages that appear directly in this fragment.
	varUsages []varUsage

	// used is set once any operation reaches this fragment through spreads.
	used bool
}

// varUsage records one use of a variable together with the type expected at the position of use.
type varUsage struct {
	node ast.Variable

	// typeRef is the type expected at the position; nil when the position could not be resolved.
	typeRef schema.TypeRef

	// hasLocationDefault is true when the argument or input field at the position declares a
	// default value.
	hasLocationDefault bool
}

// bindFrame accumulates the variable usages and direct fragment spreads of the definition being
// bound.
type bindFrame struct {
	varUsages []varUsage
	spreads   []string
}

func (c *checker) reportError(message string, args ...interface{}) {
	args = append(args, graphql.ErrKindType)
	c.errs.Emplace(message, args...)
}

// reportWarning reports a diagnostic with warning severity, or error severity under
// Options.WarningsAsErrors.
func (c *checker) reportWarning(message string, args ...interface{}) {
	if !c.opts.WarningsAsErrors {
		args = append(args, graphql.SeverityWarning)
	}
	c.reportError(message, args...)
}

//===----------------------------------------------------------------------------------------====//
// Fragments
//===----------------------------------------------------------------------------------------====//

func (c *checker) prepareFragments() {
	for _, definition := range c.model.Fragments() {
		c.fragments[definition.Name.Value()] = &fragmentInfo{definition: definition}
	}

	c.detectFragmentCycles()

	for _, definition := range c.model.Fragments() {
		info := c.fragments[definition.Name.Value()]
		if info.cyclic {
			// Cyclic fragments are not bound, but their spreads still count for fragment
			// reachability so that reachable fragments are not reported unused.
			for _, spread := range selectionSetSpreads(definition.SelectionSet) {
				info.spreads = append(info.spreads, spread.Name.Value())
			}
			continue
		}
		c.bindFragment(info)
	}
}

// detectFragmentCycles finds every spread cycle among the fragment definitions, reports one
// diagnostic per cycle and marks the participating fragments so they are left unbound.
func (c *checker) detectFragmentCycles() {
	var (
		visited = map[string]bool{}

		// spreadPath is the chain of spreads from the root of the current traversal.
		spreadPath []*ast.FragmentSpread

		// spreadPathIndexByName maps a fragment on the current path to its position in spreadPath.
		spreadPathIndexByName = map[string]int{}
	)

	var detectCycleFrom func(info *fragmentInfo)
	detectCycleFrom = func(info *fragmentInfo) {
		fragmentName := info.definition.Name.Value()
		if visited[fragmentName] {
			return
		}
		visited[fragmentName] = true

		spreadNodes := selectionSetSpreads(info.definition.SelectionSet)
		if len(spreadNodes) == 0 {
			return
		}

		spreadPathIndexByName[fragmentName] = len(spreadPath)

		for _, spreadNode := range spreadNodes {
			spreadName := spreadNode.Name.Value()
			target := c.fragments[spreadName]
			if target == nil {
				// Unknown fragments are reported when the spread is bound.
				continue
			}

			spreadPath = append(spreadPath, spreadNode)
			if cycleIndex, onPath := spreadPathIndexByName[spreadName]; !onPath {
				detectCycleFrom(target)
			} else {
				cyclePath := spreadPath[cycleIndex:]

				viaNames := make([]string, 0, len(cyclePath)-1)
				nodes := make([]ast.Node, len(cyclePath))
				for i, spread := range cyclePath {
					if i != len(cyclePath)-1 {
						viaNames = append(viaNames, spread.Name.Value())
					}
					nodes[i] = spread
					c.fragments[spread.Name.Value()].cyclic = true
				}

				c.reportError(cycleErrorMessage(spreadName, viaNames), nodes)
			}
			spreadPath = spreadPath[:len(spreadPath)-1]
		}

		delete(spreadPathIndexByName, fragmentName)
	}

	for _, definition := range c.model.Fragments() {
		detectCycleFrom(c.fragments[definition.Name.Value()])
	}
}

// bindFragment binds a fragment definition once. Cyclic fragments are skipped and stay unbound.
func (c *checker) bindFragment(info *fragmentInfo) *BoundFragment {
	if info.cyclic || info.binding {
		return nil
	}
	if info.bound != nil {
		return info.bound
	}
	info.binding = true

	definition := info.definition
	bound := &BoundFragment{
		Definition: definition,
		Name:       definition.Name.Value(),
	}

	var parentType schema.Type
	typeName := definition.TypeCondition.Name.Value()
	if t := c.schema.Type(typeName); t == nil {
		c.reportError(
			unknownTypeMessage(typeName, c.suggestedTypeNames(typeName)),
			definition.TypeCondition)
	} else if !schema.IsCompositeType(t) {
		c.reportError(
			fragmentOnNonCompositeMessage(bound.Name, typeName),
			definition.TypeCondition)
		bound.TypeCondition = t
	} else {
		bound.TypeCondition = t
		parentType = t
	}

	frame := &bindFrame{}
	previous := c.frame
	c.frame = frame
	c.bindDirectives(definition.Directives, ast.DirectiveLocationFragmentDefinition)
	bound.SelectionSet = c.bindSelectionSet(parentType, definition.SelectionSet)
	c.frame = previous

	info.varUsages = frame.varUsages
	info.spreads = frame.spreads
	info.binding = false
	info.bound = bound
	return bound
}

// selectionSetSpreads collects the fragment spreads in a selection set, including the ones nested
// under fields and inline fragments.
func selectionSetSpreads(set ast.SelectionSet) []*ast.FragmentSpread {
	var spreads []*ast.FragmentSpread
	for _, selection := range set {
		switch selection := selection.(type) {
		case *ast.FragmentSpread:
			spreads = append(spreads, selection)
		case *ast.Field:
			spreads = append(spreads, selectionSetSpreads(selection.SelectionSet)...)
		case *ast.InlineFragment:
			spreads = append(spreads, selectionSetSpreads(selection.SelectionSet)...)
		}
	}
	return spreads
}

func (c *checker) reportUnusedFragments() {
	for _, definition := range c.model.Fragments() {
		info := c.fragments[definition.Name.Value()]
		if !info.used {
			c.reportWarning(unusedFragmentMessage(definition.Name.Value()), definition)
		}
	}
}

//===----------------------------------------------------------------------------------------====//
// Operations
//===----------------------------------------------------------------------------------------====//

func (c *checker) bindOperation(definition *ast.OperationDefinition) *BoundOperation {
	bound := &BoundOperation{
		Definition:    definition,
		OperationType: definition.OperationType(),
	}
	if !definition.Name.IsNil() {
		bound.Name = definition.Name.Value()
	}

	rootType := c.schema.RootOperationType(bound.OperationType)
	if rootType == nil {
		c.reportError(missingRootTypeMessage(bound.OperationType), definition)
	}
	bound.RootType = rootType

	bound.Variables = c.bindVariableDefinitions(definition.VariableDefinitions)

	frame := &bindFrame{}
	previous := c.frame
	c.frame = frame
	c.bindDirectives(definition.Directives, operationDirectiveLocation(bound.OperationType))
	var parentType schema.Type
	if rootType != nil {
		parentType = rootType
	}
	bound.SelectionSet = c.bindSelectionSet(parentType, definition.SelectionSet)
	c.frame = previous

	usages, fragments := c.collectUsages(frame)
	bound.Fragments = fragments

	c.checkVariableUsages(bound, usages)

	return bound
}

func (c *checker) bindVariableDefinitions(definitions ast.VariableDefinitions) []*BoundVariable {
	if len(definitions) == 0 {
		return nil
	}

	var (
		variables = make([]*BoundVariable, 0, len(definitions))
		seen      = map[string]bool{}
	)
	for _, definition := range definitions {
		name := definition.Variable.Name.Value()
		if seen[name] {
			c.reportError(duplicateVariableMessage(name), definition.Variable)
		}
		seen[name] = true

		typeRef := schema.TypeRefFromAST(definition.Type)
		typeName := typeRef.NamedType()
		if t := c.schema.Type(typeName); t == nil {
			c.reportError(
				unknownTypeMessage(typeName, c.suggestedTypeNames(typeName)),
				definition.Type)
		} else if !schema.IsInputType(t) {
			c.reportError(nonInputTypeOnVarMessage(name, typeRef.String()), definition.Type)
		} else if definition.DefaultValue != nil {
			c.checkValue(definition.DefaultValue, typeRef, false)
		}

		c.bindDirectives(definition.Directives, ast.DirectiveLocationVariableDefinition)

		variables = append(variables, &BoundVariable{
			Definition: definition,
			Name:       name,
			Type:       typeRef,
			Default:    definition.DefaultValue,
		})
	}
	return variables
}

// collectUsages gathers the variable usages reachable from an operation frame, both the direct
// ones and the ones inside fragments reached through spreads. It also returns the reachable bound
// fragments in first-use order and marks them used.
func (c *checker) collectUsages(frame *bindFrame) ([]varUsage, []*BoundFragment) {
	var (
		usages    = frame.varUsages
		fragments []*BoundFragment
		visited   = map[string]bool{}
	)

	var visit func(names []string)
	visit = func(names []string) {
		for _, name := range names {
			if visited[name] {
				continue
			}
			visited[name] = true

			info := c.fragments[name]
			if info == nil {
				continue
			}
			info.used = true
			if info.bound != nil {
				fragments = append(fragments, info.bound)
			}
			usages = append(usages, info.varUsages...)
			visit(info.spreads)
		}
	}
	visit(frame.spreads)

	return usages, fragments
}

func (c *checker) checkVariableUsages(bound *BoundOperation, usages []varUsage) {
	used := map[string]bool{}
	for _, usage := range usages {
		name := usage.node.Name.Value()
		variable := bound.Variable(name)
		if variable == nil {
			c.reportError(
				undefinedVarMessage(name, bound.Name),
				[]ast.Node{usage.node, bound.Definition})
			continue
		}
		used[name] = true

		if usage.typeRef == nil {
			continue
		}
		if !c.allowedVariableUsage(variable, usage) {
			c.reportError(
				badVarPosMessage(name, variable.Type.String(), usage.typeRef.String()),
				[]ast.Node{variable.Definition, usage.node})
		}
	}

	for _, variable := range bound.Variables {
		if !used[variable.Name] {
			c.reportWarning(
				unusedVariableMessage(variable.Name, bound.Name),
				variable.Definition)
		}
	}
}

// allowedVariableUsage returns true if a variable can be used at a position expecting
// usage.typeRef. A nullable variable is allowed at a non-null position only when the variable
// declares a non-null default value or the position itself has a default.
func (c *checker) allowedVariableUsage(variable *BoundVariable, usage varUsage) bool {
	locationType := usage.typeRef
	if schema.IsNonNullRef(locationType) && !schema.IsNonNullRef(variable.Type) {
		_, hasNullDefault := variable.Default.(ast.NullValue)
		hasNonNullVariableDefault := variable.Default != nil && !hasNullDefault
		if !hasNonNullVariableDefault && !usage.hasLocationDefault {
			return false
		}
		return c.isTypeSubTypeOf(variable.Type, schema.NullableRef(locationType))
	}
	return c.isTypeSubTypeOf(variable.Type, locationType)
}

// isTypeSubTypeOf returns true if every value of maybeSubType is also a legal value of superType.
func (c *checker) isTypeSubTypeOf(maybeSubType, superType schema.TypeRef) bool {
	switch superType := superType.(type) {
	case schema.NonNullTypeRef:
		if subType, ok := maybeSubType.(schema.NonNullTypeRef); ok {
			return c.isTypeSubTypeOf(subType.InnerType, superType.InnerType)
		}
		return false

	case schema.ListTypeRef:
		if subType, ok := maybeSubType.(schema.NonNullTypeRef); ok {
			return c.isTypeSubTypeOf(subType.InnerType, superType)
		}
		if subType, ok := maybeSubType.(schema.ListTypeRef); ok {
			return c.isTypeSubTypeOf(subType.ItemType, superType.ItemType)
		}
		return false

	case schema.NamedTypeRef:
		if subType, ok := maybeSubType.(schema.NonNullTypeRef); ok {
			return c.isTypeSubTypeOf(subType.InnerType, superType)
		}
		subType, ok := maybeSubType.(schema.NamedTypeRef)
		if !ok {
			return false
		}
		if subType.Name == superType.Name {
			return true
		}
		superT := c.schema.Type(superType.Name)
		if superT == nil || !schema.IsAbstractType(superT) {
			return false
		}
		for _, possibleType := range c.schema.PossibleTypes(superT) {
			if possibleType == subType.Name {
				return true
			}
		}
		return false
	}
	return false
}

func operationDirectiveLocation(operationType ast.OperationType) ast.DirectiveLocation {
	switch operationType {
	case ast.OperationTypeMutation:
		return ast.DirectiveLocationMutation
	case ast.OperationTypeSubscription:
		return ast.DirectiveLocationSubscription
	}
	return ast.DirectiveLocationQuery
}

// suggestedTypeNames returns type names similar to the given unknown type name.
func (c *checker) suggestedTypeNames(typeName string) []string {
	types := c.schema.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	return util.SuggestionList(typeName, names)
}
