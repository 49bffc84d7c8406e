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

// Package codegen emits typed declarations for a validated schema and its bound operations.
//
// Generation is deterministic: declarations follow the source order of the schema and operation
// documents, never the iteration order of a map, so running the generator twice over unchanged
// input yields byte-identical artifacts.
package codegen

import (
	"fmt"
	"strings"

	"github.com/KoichiKiyokawa/nitrogql/checker"
	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/internal/util"
	"github.com/KoichiKiyokawa/nitrogql/jsonwriter"
	"github.com/KoichiKiyokawa/nitrogql/schema"
)

// Config controls artifact emission for one package.
type Config struct {
	// PackageID identifies the package the artifacts belong to.
	PackageID string

	// ExternalSchemaSpecifier is the module specifier through which the upstream package's schema
	// types are imported. When non-empty no schema artifact is generated and every schema type
	// referenced by an operation declaration becomes an import instead of a local declaration.
	ExternalSchemaSpecifier string
}

// Generate produces the artifacts for a package: a schema artifact (unless the package imports its
// schema from an upstream package) followed by an operations artifact. The bound operations must
// come from a clean check; a bound tree with unresolved bindings reports ErrKindGeneration errors.
func Generate(s *schema.Schema, operations []*checker.BoundOperation, config Config) ([]*GeneratedArtifact, graphql.Errors) {
	var (
		artifacts []*GeneratedArtifact
		errs      graphql.Errors
	)

	if len(config.ExternalSchemaSpecifier) == 0 {
		artifact, schemaErrs := GenerateSchema(s, config)
		errs.AppendErrors(schemaErrs)
		if artifact != nil {
			artifacts = append(artifacts, artifact)
		}
	}

	artifact, operationErrs := GenerateOperations(s, operations, config)
	errs.AppendErrors(operationErrs)
	if artifact != nil {
		artifacts = append(artifacts, artifact)
	}

	if errs.HaveOccurred() {
		return nil, errs
	}
	return artifacts, graphql.NoErrors()
}

// GenerateSchema emits one typed declaration per schema type, skipping built-in types, in the order
// the types were declared.
func GenerateSchema(s *schema.Schema, config Config) (*GeneratedArtifact, graphql.Errors) {
	g := &generator{
		schema: s,
		config: config,
	}

	artifact := &GeneratedArtifact{
		Target:    TargetSchema,
		PackageID: config.PackageID,
	}
	for _, t := range s.Types() {
		if t.BuiltIn() {
			continue
		}
		artifact.Declarations = append(artifact.Declarations, g.typeDeclaration(t))
	}

	if g.errs.HaveOccurred() {
		return nil, g.errs
	}
	return artifact, graphql.NoErrors()
}

// GenerateOperations emits, per operation, a result declaration, a variables declaration and a
// document declaration embedding the printed operation source.
func GenerateOperations(s *schema.Schema, operations []*checker.BoundOperation, config Config) (*GeneratedArtifact, graphql.Errors) {
	g := &generator{
		schema: s,
		config: config,
	}

	artifact := &GeneratedArtifact{
		Target:    TargetOperations,
		PackageID: config.PackageID,
	}
	for _, operation := range operations {
		artifact.Declarations = append(artifact.Declarations, g.operationDeclarations(operation)...)
	}

	if len(config.ExternalSchemaSpecifier) > 0 && len(g.referencedTypes) > 0 {
		artifact.Imports = append(artifact.Imports, &Import{
			Specifier: config.ExternalSchemaSpecifier,
			Names:     g.referencedTypes,
		})
	}

	if g.errs.HaveOccurred() {
		return nil, g.errs
	}
	return artifact, graphql.NoErrors()
}

type generator struct {
	schema *schema.Schema
	config Config
	errs   graphql.Errors

	// Named schema types referenced by emitted operation declarations, in first-use order.
	referencedTypes   []string
	referencedTypeSet map[string]bool
}

func (g *generator) reportError(message string, args ...interface{}) {
	args = append(args, graphql.ErrKindGeneration)
	g.errs.Emplace(message, args...)
}

// referenceType records a named schema type used by an operation declaration so it can be imported
// from the upstream package when one is configured.
func (g *generator) referenceType(name string) {
	if g.referencedTypeSet == nil {
		g.referencedTypeSet = map[string]bool{}
	}
	if !g.referencedTypeSet[name] {
		g.referencedTypeSet[name] = true
		g.referencedTypes = append(g.referencedTypes, name)
	}
}

//===----------------------------------------------------------------------------------------====//
// Schema type declarations
//===----------------------------------------------------------------------------------------====//

func (g *generator) typeDeclaration(t schema.Type) *Declaration {
	var buf strings.Builder

	switch t := t.(type) {
	case *schema.ScalarType:
		// A custom scalar has no serialized shape the generator can know about.
		buf.WriteString("export type ")
		buf.WriteString(t.Name())
		buf.WriteString(" = unknown;")
		return &Declaration{Name: t.Name(), Kind: DeclarationKindScalar, Code: buf.String()}

	case *schema.ObjectType:
		buf.WriteString("export type ")
		buf.WriteString(t.Name())
		buf.WriteString(" = {\n  __typename: ")
		buf.WriteString(quote(t.Name()))
		buf.WriteString(";\n")
		g.writeFieldList(&buf, t.Fields())
		buf.WriteString("};")
		return &Declaration{Name: t.Name(), Kind: DeclarationKindObject, Code: buf.String()}

	case *schema.InterfaceType:
		buf.WriteString("export type ")
		buf.WriteString(t.Name())
		buf.WriteString(" = {\n")
		g.writeFieldList(&buf, t.Fields())
		buf.WriteString("};")
		return &Declaration{Name: t.Name(), Kind: DeclarationKindInterface, Code: buf.String()}

	case *schema.UnionType:
		buf.WriteString("export type ")
		buf.WriteString(t.Name())
		buf.WriteString(" = ")
		for i, member := range t.Members() {
			if i > 0 {
				buf.WriteString(" | ")
			}
			buf.WriteString(member)
		}
		buf.WriteString(";")
		return &Declaration{Name: t.Name(), Kind: DeclarationKindUnion, Code: buf.String()}

	case *schema.EnumType:
		buf.WriteString("export type ")
		buf.WriteString(t.Name())
		buf.WriteString(" = ")
		for i, value := range t.Values() {
			if i > 0 {
				buf.WriteString(" | ")
			}
			buf.WriteString(quote(value.Name()))
		}
		buf.WriteString(";")
		return &Declaration{Name: t.Name(), Kind: DeclarationKindEnum, Code: buf.String()}

	case *schema.InputObjectType:
		buf.WriteString("export type ")
		buf.WriteString(t.Name())
		buf.WriteString(" = {\n")
		for _, field := range t.Fields() {
			buf.WriteString("  ")
			buf.WriteString(field.Name())
			if !schema.IsNonNullRef(field.Type()) || field.HasDefaultValue() {
				buf.WriteString("?")
			}
			buf.WriteString(": ")
			buf.WriteString(g.typeRefCode(field.Type()))
			buf.WriteString(";\n")
		}
		buf.WriteString("};")
		return &Declaration{Name: t.Name(), Kind: DeclarationKindInput, Code: buf.String()}
	}

	g.reportError(fmt.Sprintf("unexpected kind %q of type %q", t.Kind(), t.Name()))
	return &Declaration{Name: t.Name(), Kind: DeclarationKind(t.Kind().String())}
}

func (g *generator) writeFieldList(buf *strings.Builder, fields []*schema.Field) {
	for _, field := range fields {
		buf.WriteString("  ")
		buf.WriteString(field.Name())
		buf.WriteString(": ")
		buf.WriteString(g.typeRefCode(field.Type()))
		buf.WriteString(";\n")
	}
}

//===----------------------------------------------------------------------------------------====//
// Operation declarations
//===----------------------------------------------------------------------------------------====//

func (g *generator) operationDeclarations(operation *checker.BoundOperation) []*Declaration {
	name := declarationBaseName(operation)

	var result strings.Builder
	result.WriteString("export type ")
	result.WriteString(name)
	result.WriteString("Result = ")
	if operation.RootType == nil {
		g.reportError(fmt.Sprintf("operation %q has no root type bound", name), operation.Definition)
		result.WriteString("unknown")
	} else {
		result.WriteString(g.selectionSetCode(operation.SelectionSet, operation.RootType, 0))
	}
	result.WriteString(";")

	var variables strings.Builder
	variables.WriteString("export type ")
	variables.WriteString(name)
	variables.WriteString("Variables = ")
	if len(operation.Variables) == 0 {
		variables.WriteString("{}")
	} else {
		variables.WriteString("{\n")
		for _, variable := range operation.Variables {
			variables.WriteString("  ")
			variables.WriteString(variable.Name)
			if !schema.IsNonNullRef(variable.Type) || variable.HasDefault() {
				variables.WriteString("?")
			}
			variables.WriteString(": ")
			variables.WriteString(g.typeRefCode(variable.Type))
			variables.WriteString(";\n")
		}
		variables.WriteString("}")
	}
	variables.WriteString(";")

	source := g.operationSource(operation)
	var document strings.Builder
	document.WriteString("export const ")
	document.WriteString(name)
	document.WriteString("Document = ")
	document.WriteString(quote(source))
	document.WriteString(";")

	return []*Declaration{
		{Name: name + "Result", Kind: DeclarationKindResult, Code: result.String()},
		{Name: name + "Variables", Kind: DeclarationKindVariables, Code: variables.String()},
		{Name: name + "Document", Kind: DeclarationKindDocument, Code: document.String(), Source: source},
	}
}

// operationSource prints the operation definition followed by every fragment it reaches, in
// first-use order, the way the original documents would be sent over the wire.
func (g *generator) operationSource(operation *checker.BoundOperation) string {
	var buf strings.Builder
	ast.FPrint(&buf, operation.Definition)
	for _, fragment := range operation.Fragments {
		buf.WriteString("\n\n")
		ast.FPrint(&buf, fragment.Definition)
	}
	return buf.String()
}

func declarationBaseName(operation *checker.BoundOperation) string {
	name := operation.Name
	if len(name) == 0 {
		// Anonymous operations fall back to their operation type.
		name = string(operation.OperationType)
	}
	return util.CamelCase(name)
}

//===----------------------------------------------------------------------------------------====//
// Result shapes
//===----------------------------------------------------------------------------------------====//

// resultField is one entry of a flattened selection set. Fields reached through a type condition
// narrower than the parent type may be absent from the response and render as optional.
type resultField struct {
	field    *checker.BoundField
	optional bool
}

func (g *generator) selectionSetCode(selections []checker.BoundSelection, parentType schema.Type, indentLevel int) string {
	var (
		fields []resultField
		seen   = map[string]bool{}
	)
	g.collectResultFields(selections, parentType, false, &fields, seen)

	var (
		buf    strings.Builder
		indent = strings.Repeat("  ", indentLevel+1)
	)
	buf.WriteString("{\n")
	for _, entry := range fields {
		buf.WriteString(indent)
		buf.WriteString(entry.field.ResponseKey())
		if entry.optional {
			buf.WriteString("?")
		}
		buf.WriteString(": ")
		buf.WriteString(g.fieldCode(entry.field, indentLevel+1))
		buf.WriteString(";\n")
	}
	buf.WriteString(strings.Repeat("  ", indentLevel))
	buf.WriteString("}")
	return buf.String()
}

// collectResultFields flattens fragment spreads and inline fragments into the enclosing selection
// set. The first selection of a response key wins; GraphQL field merging rules guarantee that any
// later selection of the same key is compatible.
func (g *generator) collectResultFields(
	selections []checker.BoundSelection,
	parentType schema.Type,
	optional bool,
	out *[]resultField,
	seen map[string]bool) {
	for _, selection := range selections {
		switch selection := selection.(type) {
		case *checker.BoundField:
			key := selection.ResponseKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			*out = append(*out, resultField{field: selection, optional: optional})

		case *checker.BoundFragmentSpread:
			fragment := selection.Fragment
			if fragment == nil {
				g.reportError(
					fmt.Sprintf("fragment spread %q is not bound", selection.Node.Name.Value()),
					selection.Node)
				continue
			}
			g.collectResultFields(
				fragment.SelectionSet,
				fragment.TypeCondition,
				optional || narrowsType(parentType, fragment.TypeCondition),
				out, seen)

		case *checker.BoundInlineFragment:
			childType := selection.TypeCondition
			if childType == nil {
				childType = parentType
			}
			g.collectResultFields(
				selection.SelectionSet,
				childType,
				optional || narrowsType(parentType, childType),
				out, seen)
		}
	}
}

// narrowsType reports whether a type condition selects a strict subset of the parent type's
// possible runtime types.
func narrowsType(parentType schema.Type, condition schema.Type) bool {
	if parentType == nil || condition == nil {
		return false
	}
	return condition.Name() != parentType.Name()
}

func (g *generator) fieldCode(field *checker.BoundField, indentLevel int) string {
	if field.Definition == nil {
		g.reportError(
			fmt.Sprintf("field %q is not bound to a definition", field.Node.Name.Value()),
			field.Node)
		return "unknown"
	}

	if field.Definition == schema.TypenameMetaField() {
		return g.typenameCode(field.ParentType)
	}

	if len(field.SelectionSet) == 0 {
		if len(g.config.ExternalSchemaSpecifier) > 0 {
			// With an upstream schema the leaf renders as an indexed access into the imported type,
			// which already carries the field's nullability and list nesting.
			parentName := field.ParentType.Name()
			g.referenceType(parentName)
			return parentName + "[" + quote(field.Node.Name.Value()) + "]"
		}
		return g.typeRefCode(field.Type)
	}

	fieldType := g.schema.Type(field.Type.NamedType())
	shape := g.selectionSetCode(field.SelectionSet, fieldType, indentLevel)
	return wrapRefCode(field.Type, shape)
}

// typenameCode renders the __typename meta field as the literal union of the parent type's
// possible runtime type names.
func (g *generator) typenameCode(parentType schema.Type) string {
	if parentType == nil {
		return "string"
	}

	possibleTypes := g.schema.PossibleTypes(parentType)
	if len(possibleTypes) == 0 {
		return quote(parentType.Name())
	}

	var buf strings.Builder
	for i, name := range possibleTypes {
		if i > 0 {
			buf.WriteString(" | ")
		}
		buf.WriteString(quote(name))
	}
	return buf.String()
}

//===----------------------------------------------------------------------------------------====//
// Type references
//===----------------------------------------------------------------------------------------====//

// typeRefCode renders a schema type reference, mapping built-in scalars to their primitive
// equivalents and recording named type references for the import list.
func (g *generator) typeRefCode(ref schema.TypeRef) string {
	name := ref.NamedType()
	return wrapRefCode(ref, g.namedTypeCode(name))
}

func (g *generator) namedTypeCode(name string) string {
	switch name {
	case "String", "ID":
		return "string"
	case "Int", "Float":
		return "number"
	case "Boolean":
		return "boolean"
	}
	g.referenceType(name)
	return name
}

// wrapRefCode applies the list nesting and nullability of ref around the rendering of its named
// type. List items whose rendering is itself a compound expression are parenthesized.
func wrapRefCode(ref schema.TypeRef, inner string) string {
	code, nonNull := wrapRefCodeNonNull(ref, inner)
	if nonNull {
		return code
	}
	return code + " | null"
}

func wrapRefCodeNonNull(ref schema.TypeRef, inner string) (string, bool) {
	switch ref := ref.(type) {
	case schema.NonNullTypeRef:
		code, _ := wrapRefCodeNonNull(ref.InnerType, inner)
		return code, true

	case schema.ListTypeRef:
		item := wrapRefCode(ref.ItemType, inner)
		if strings.ContainsRune(item, ' ') {
			return "(" + item + ")[]", false
		}
		return item + "[]", false
	}
	return inner, false
}

// quote encodes s as a JSON string literal, which is also valid TypeScript.
func quote(s string) string {
	var buf strings.Builder
	stream := jsonwriter.NewStream(&buf)
	stream.WriteString(s)
	stream.Flush()
	return buf.String()
}
