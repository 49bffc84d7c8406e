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
	"fmt"
	"strings"

	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
)

// Build constructs a Schema from parsed schema documents. Definitions keep the order in which they
// appear across the documents. All diagnostics are accumulated; when any of them is fatal the
// returned Schema is nil.
func Build(documents []ast.Document) (*Schema, graphql.Errors) {
	b := newBuilder()
	for _, document := range documents {
		b.collectDocument(document)
	}
	b.groupExtensions()
	b.buildDirectives()
	b.buildTypes()
	b.buildRootTypes()

	if b.errs.HaveFatal() {
		return nil, b.errs
	}
	return b.schema, b.errs
}

type builder struct {
	errs   graphql.Errors
	schema *Schema

	// Collected AST definitions in source order
	typeDefs      []ast.TypeDefinition
	typeDefMap    map[string]ast.TypeDefinition
	typeExts      []ast.TypeExtension
	extsByName    map[string][]ast.TypeExtension
	directiveDefs []*ast.DirectiveDefinition
	schemaDef     *ast.SchemaDefinition
	schemaExts    []*ast.SchemaExtension
}

func newBuilder() *builder {
	schema := &Schema{
		typeMap:         map[string]Type{},
		directiveMap:    map[string]*Directive{},
		rootTypes:       map[ast.OperationType]string{},
		implementations: map[string][]string{},
	}
	for _, scalar := range newBuiltInTypes() {
		schema.typeMap[scalar.Name()] = scalar
	}
	for _, directive := range newBuiltInDirectives() {
		schema.directiveMap[directive.Name()] = directive
	}
	return &builder{
		schema:     schema,
		typeDefMap: map[string]ast.TypeDefinition{},
		extsByName: map[string][]ast.TypeExtension{},
	}
}

func (b *builder) emplace(message string, args ...interface{}) {
	args = append(args, graphql.ErrKindSchemaBuild)
	b.errs.Emplace(message, args...)
}

//===----------------------------------------------------------------------------------------====//
// Collection
//===----------------------------------------------------------------------------------------====//

func (b *builder) collectDocument(document ast.Document) {
	for _, definition := range document.Definitions {
		switch definition := definition.(type) {
		case *ast.SchemaDefinition:
			if b.schemaDef != nil {
				b.emplace("Must provide only one schema definition.",
					[]ast.Node{b.schemaDef, definition})
				continue
			}
			b.schemaDef = definition

		case *ast.SchemaExtension:
			b.schemaExts = append(b.schemaExts, definition)

		case *ast.DirectiveDefinition:
			b.collectDirectiveDefinition(definition)

		case ast.TypeDefinition:
			b.collectTypeDefinition(definition)

		case ast.TypeExtension:
			b.typeExts = append(b.typeExts, definition)

		default:
			b.emplace("Schema documents must only contain type system definitions.",
				[]ast.Node{definition})
		}
	}
}

func (b *builder) collectTypeDefinition(definition ast.TypeDefinition) {
	name := definition.TypeName().Value()
	if _, builtIn := b.schema.typeMap[name]; builtIn {
		b.emplace(
			fmt.Sprintf("Type %q cannot be defined because it is a built-in type.", name),
			[]ast.Node{definition.TypeName()})
		return
	}
	if prev, exists := b.typeDefMap[name]; exists {
		b.emplace(
			fmt.Sprintf("There can be only one type named %q.", name),
			[]ast.Node{prev.TypeName(), definition.TypeName()})
		return
	}
	b.typeDefMap[name] = definition
	b.typeDefs = append(b.typeDefs, definition)
}

func (b *builder) collectDirectiveDefinition(definition *ast.DirectiveDefinition) {
	name := definition.Name.Value()
	if _, builtIn := b.schema.directiveMap[name]; builtIn {
		b.emplace(
			fmt.Sprintf("Directive \"@%s\" cannot be defined because it is a built-in directive.",
				name),
			[]ast.Node{definition.Name})
		return
	}
	for _, prev := range b.directiveDefs {
		if prev.Name.Value() == name {
			b.emplace(
				fmt.Sprintf("There can be only one directive named \"@%s\".", name),
				[]ast.Node{prev.Name, definition.Name})
			return
		}
	}
	b.directiveDefs = append(b.directiveDefs, definition)
}

func (b *builder) groupExtensions() {
	for _, ext := range b.typeExts {
		name := ext.TypeName().Value()

		if _, builtIn := b.schema.typeMap[name]; builtIn {
			b.emplace(
				fmt.Sprintf("Cannot extend built-in type %q.", name),
				[]ast.Node{ext.TypeName()})
			continue
		}

		base, defined := b.typeDefMap[name]
		if !defined {
			b.emplace(
				fmt.Sprintf("Cannot extend type %q because it is not defined.", name),
				[]ast.Node{ext.TypeName()})
			continue
		}

		if kind, matched := extensionKind(ext); !matched(base) {
			b.emplace(
				fmt.Sprintf("Cannot extend non-%s type %q.", kind, name),
				[]ast.Node{base.TypeName(), ext.TypeName()})
			continue
		}

		b.extsByName[name] = append(b.extsByName[name], ext)
	}
}

// extensionKind returns a human-readable kind name for the extension and a predicate matching base
// definitions of that kind.
func extensionKind(ext ast.TypeExtension) (string, func(ast.TypeDefinition) bool) {
	switch ext.(type) {
	case *ast.ScalarTypeExtension:
		return "scalar", func(def ast.TypeDefinition) bool {
			_, ok := def.(*ast.ScalarTypeDefinition)
			return ok
		}
	case *ast.ObjectTypeExtension:
		return "object", func(def ast.TypeDefinition) bool {
			_, ok := def.(*ast.ObjectTypeDefinition)
			return ok
		}
	case *ast.InterfaceTypeExtension:
		return "interface", func(def ast.TypeDefinition) bool {
			_, ok := def.(*ast.InterfaceTypeDefinition)
			return ok
		}
	case *ast.UnionTypeExtension:
		return "union", func(def ast.TypeDefinition) bool {
			_, ok := def.(*ast.UnionTypeDefinition)
			return ok
		}
	case *ast.EnumTypeExtension:
		return "enum", func(def ast.TypeDefinition) bool {
			_, ok := def.(*ast.EnumTypeDefinition)
			return ok
		}
	case *ast.InputObjectTypeExtension:
		return "input object", func(def ast.TypeDefinition) bool {
			_, ok := def.(*ast.InputObjectTypeDefinition)
			return ok
		}
	}
	return "", func(ast.TypeDefinition) bool { return false }
}

//===----------------------------------------------------------------------------------------====//
// Name resolution helpers
//===----------------------------------------------------------------------------------------====//

// kindOf resolves a type name against the collected namespace, including built-in scalars, without
// requiring the type to be materialized yet.
func (b *builder) kindOf(name string) (TypeKind, bool) {
	if t, ok := b.schema.typeMap[name]; ok && t.BuiltIn() {
		return TypeKindScalar, true
	}
	def, ok := b.typeDefMap[name]
	if !ok {
		return TypeKind(0), false
	}
	switch def.(type) {
	case *ast.ScalarTypeDefinition:
		return TypeKindScalar, true
	case *ast.ObjectTypeDefinition:
		return TypeKindObject, true
	case *ast.InterfaceTypeDefinition:
		return TypeKindInterface, true
	case *ast.UnionTypeDefinition:
		return TypeKindUnion, true
	case *ast.EnumTypeDefinition:
		return TypeKindEnum, true
	case *ast.InputObjectTypeDefinition:
		return TypeKindInputObject, true
	}
	return TypeKind(0), false
}

// namedTypeNodeOf unwraps list and non-null wrappers down to the named type node, for error
// locations.
func namedTypeNodeOf(t ast.Type) ast.NamedType {
	for {
		switch node := t.(type) {
		case ast.NamedType:
			return node
		case ast.ListType:
			t = node.ItemType
		case ast.NonNullType:
			t = node.Type
		}
	}
}

// checkOutputTypeRef verifies that the referenced type exists and may serve as a field type.
func (b *builder) checkOutputTypeRef(t ast.Type, owner string) {
	node := namedTypeNodeOf(t)
	name := node.Name.Value()
	kind, defined := b.kindOf(name)
	if !defined {
		b.emplace(fmt.Sprintf("Unknown type %q.", name), []ast.Node{node})
		return
	}
	if kind == TypeKindInputObject {
		b.emplace(
			fmt.Sprintf("The type of %s must be Output Type but got: %q.", owner, name),
			[]ast.Node{node})
	}
}

// checkInputTypeRef verifies that the referenced type exists and may serve as an argument, input
// field or variable type.
func (b *builder) checkInputTypeRef(t ast.Type, owner string) {
	node := namedTypeNodeOf(t)
	name := node.Name.Value()
	kind, defined := b.kindOf(name)
	if !defined {
		b.emplace(fmt.Sprintf("Unknown type %q.", name), []ast.Node{node})
		return
	}
	switch kind {
	case TypeKindScalar, TypeKindEnum, TypeKindInputObject:
	default:
		b.emplace(
			fmt.Sprintf("The type of %s must be Input Type but got: %q.", owner, name),
			[]ast.Node{node})
	}
}

// checkReservedName rejects names that collide with the introspection namespace.
func (b *builder) checkReservedName(name ast.Name) {
	if strings.HasPrefix(name.Value(), "__") {
		b.emplace(
			fmt.Sprintf("Name %q must not begin with \"__\", which is reserved by introspection.",
				name.Value()),
			[]ast.Node{name})
	}
}

//===----------------------------------------------------------------------------------------====//
// Directive materialization
//===----------------------------------------------------------------------------------------====//

func (b *builder) buildDirectives() {
	for _, def := range b.directiveDefs {
		directive := b.buildDirective(def)
		b.schema.directives = append(b.schema.directives, directive)
		b.schema.directiveMap[directive.name] = directive
	}

	// Argument types and applied directives can only be checked once every directive is known.
	for _, directive := range b.schema.directives {
		def := directive.definition
		b.checkReservedName(def.Name)
		for _, arg := range def.Arguments {
			b.checkReservedName(arg.Name)
			b.checkInputTypeRef(arg.Type,
				fmt.Sprintf("\"@%s(%s:)\"", directive.name, arg.Name.Value()))
			b.checkAppliedDirectives(arg.Directives, ast.DirectiveLocationArgumentDefinition)

			// A directive is not available to its own definition.
			for _, applied := range arg.Directives {
				if applied.Name.Value() == directive.name {
					b.emplace(
						fmt.Sprintf("Directive \"@%s\" cannot reference itself.", directive.name),
						[]ast.Node{applied.Name})
				}
			}
		}
	}
}

func (b *builder) buildDirective(def *ast.DirectiveDefinition) *Directive {
	directive := &Directive{
		name:        def.Name.Value(),
		description: descriptionOf(def.Description),
		argMap:      map[string]*InputValue{},
		repeatable:  def.Repeatable,
		definition:  def,
	}
	for _, location := range def.Locations {
		directive.locations = append(directive.locations, ast.DirectiveLocation(location.Value()))
	}
	directive.args = b.buildInputValues(def.Arguments, directive.argMap,
		func(name string) string {
			return fmt.Sprintf("\"@%s(%s:)\"", directive.name, name)
		})
	return directive
}

// buildInputValues materializes an argument or input field list, rejecting duplicates. owner
// renders the owner of a value by name for error messages.
func (b *builder) buildInputValues(
	defs []*ast.InputValueDefinition,
	valueMap map[string]*InputValue,
	owner func(name string) string,
) []*InputValue {
	values := make([]*InputValue, 0, len(defs))
	for _, def := range defs {
		name := def.Name.Value()
		if prev, exists := valueMap[name]; exists {
			b.emplace(
				fmt.Sprintf("%s can only be defined once.", owner(name)),
				[]ast.Node{prev.definition.Name, def.Name})
			continue
		}
		value := &InputValue{
			name:         name,
			description:  descriptionOf(def.Description),
			typ:          TypeRefFromAST(def.Type),
			defaultValue: def.DefaultValue,
			definition:   def,
		}
		values = append(values, value)
		valueMap[name] = value
	}
	return values
}

//===----------------------------------------------------------------------------------------====//
// Type materialization
//===----------------------------------------------------------------------------------------====//

func (b *builder) buildTypes() {
	for _, def := range b.typeDefs {
		var t Type
		switch def := def.(type) {
		case *ast.ScalarTypeDefinition:
			t = b.buildScalarType(def)
		case *ast.ObjectTypeDefinition:
			t = b.buildObjectType(def)
		case *ast.InterfaceTypeDefinition:
			t = b.buildInterfaceType(def)
		case *ast.UnionTypeDefinition:
			t = b.buildUnionType(def)
		case *ast.EnumTypeDefinition:
			t = b.buildEnumType(def)
		case *ast.InputObjectTypeDefinition:
			t = b.buildInputObjectType(def)
		}
		b.checkReservedName(def.TypeName())
		b.schema.types = append(b.schema.types, t)
		b.schema.typeMap[t.Name()] = t
	}
}

func (b *builder) typeBaseOf(def ast.TypeDefinition) typeBase {
	return typeBase{
		name:        def.TypeName().Value(),
		description: descriptionOf(def.TypeDescription()),
		definition:  def,
	}
}

func (b *builder) buildScalarType(def *ast.ScalarTypeDefinition) *ScalarType {
	b.checkAppliedDirectives(def.Directives, ast.DirectiveLocationScalar)
	for _, ext := range b.extsByName[def.Name.Value()] {
		b.checkAppliedDirectives(
			ext.(*ast.ScalarTypeExtension).Directives, ast.DirectiveLocationScalar)
	}
	return &ScalarType{typeBase: b.typeBaseOf(def)}
}

func (b *builder) buildObjectType(def *ast.ObjectTypeDefinition) *ObjectType {
	t := &ObjectType{
		typeBase: b.typeBaseOf(def),
		fieldMap: map[string]*Field{},
	}

	interfaceNodes := append([]ast.NamedType(nil), def.Interfaces...)
	fieldNodes := append([]*ast.FieldDefinition(nil), def.Fields...)
	b.checkAppliedDirectives(def.Directives, ast.DirectiveLocationObject)
	for _, ext := range b.extsByName[t.name] {
		ext := ext.(*ast.ObjectTypeExtension)
		interfaceNodes = append(interfaceNodes, ext.Interfaces...)
		fieldNodes = append(fieldNodes, ext.Fields...)
		b.checkAppliedDirectives(ext.Directives, ast.DirectiveLocationObject)
	}

	t.interfaces = b.buildInterfaceRefs(t.name, interfaceNodes)
	t.fields = b.buildFields(t.name, fieldNodes, t.fieldMap)

	for _, iface := range t.interfaces {
		b.schema.implementations[iface] = append(b.schema.implementations[iface], t.name)
	}
	return t
}

func (b *builder) buildInterfaceType(def *ast.InterfaceTypeDefinition) *InterfaceType {
	t := &InterfaceType{
		typeBase: b.typeBaseOf(def),
		fieldMap: map[string]*Field{},
	}

	interfaceNodes := append([]ast.NamedType(nil), def.Interfaces...)
	fieldNodes := append([]*ast.FieldDefinition(nil), def.Fields...)
	b.checkAppliedDirectives(def.Directives, ast.DirectiveLocationInterface)
	for _, ext := range b.extsByName[t.name] {
		ext := ext.(*ast.InterfaceTypeExtension)
		interfaceNodes = append(interfaceNodes, ext.Interfaces...)
		fieldNodes = append(fieldNodes, ext.Fields...)
		b.checkAppliedDirectives(ext.Directives, ast.DirectiveLocationInterface)
	}

	t.interfaces = b.buildInterfaceRefs(t.name, interfaceNodes)
	t.fields = b.buildFields(t.name, fieldNodes, t.fieldMap)
	return t
}

// buildInterfaceRefs resolves an implements list, rejecting duplicates and non-interface types.
func (b *builder) buildInterfaceRefs(typeName string, nodes []ast.NamedType) []string {
	var interfaces []string
	seen := map[string]ast.NamedType{}
	for _, node := range nodes {
		name := node.Name.Value()
		if prev, duplicated := seen[name]; duplicated {
			b.emplace(
				fmt.Sprintf("Type %q can only implement %q once.", typeName, name),
				[]ast.Node{prev, node})
			continue
		}
		seen[name] = node

		kind, defined := b.kindOf(name)
		if !defined {
			b.emplace(fmt.Sprintf("Unknown type %q.", name), []ast.Node{node})
			continue
		}
		if kind != TypeKindInterface {
			b.emplace(
				fmt.Sprintf("Type %q must only implement Interface types, it cannot implement %q.",
					typeName, name),
				[]ast.Node{node})
			continue
		}
		interfaces = append(interfaces, name)
	}
	return interfaces
}

func (b *builder) buildFields(
	typeName string,
	defs []*ast.FieldDefinition,
	fieldMap map[string]*Field,
) []*Field {
	fields := make([]*Field, 0, len(defs))
	for _, def := range defs {
		name := def.Name.Value()
		if prev, exists := fieldMap[name]; exists {
			b.emplace(
				fmt.Sprintf("Field \"%s.%s\" can only be defined once.", typeName, name),
				[]ast.Node{prev.definition.Name, def.Name})
			continue
		}

		b.checkReservedName(def.Name)
		b.checkOutputTypeRef(def.Type, fmt.Sprintf("\"%s.%s\"", typeName, name))
		b.checkAppliedDirectives(def.Directives, ast.DirectiveLocationFieldDefinition)

		field := &Field{
			name:        name,
			description: descriptionOf(def.Description),
			typ:         TypeRefFromAST(def.Type),
			argMap:      map[string]*InputValue{},
			definition:  def,
		}
		field.deprecated, field.deprecationReason = deprecationOf(def.Directives)
		field.args = b.buildInputValues(def.Arguments, field.argMap, func(argName string) string {
			return fmt.Sprintf("Argument \"%s.%s(%s:)\"", typeName, name, argName)
		})
		for _, arg := range def.Arguments {
			b.checkReservedName(arg.Name)
			b.checkInputTypeRef(arg.Type,
				fmt.Sprintf("\"%s.%s(%s:)\"", typeName, name, arg.Name.Value()))
			b.checkAppliedDirectives(arg.Directives, ast.DirectiveLocationArgumentDefinition)
		}

		fields = append(fields, field)
		fieldMap[name] = field
	}
	return fields
}

func (b *builder) buildUnionType(def *ast.UnionTypeDefinition) *UnionType {
	t := &UnionType{typeBase: b.typeBaseOf(def)}

	memberNodes := append([]ast.NamedType(nil), def.Members...)
	b.checkAppliedDirectives(def.Directives, ast.DirectiveLocationUnion)
	for _, ext := range b.extsByName[t.name] {
		ext := ext.(*ast.UnionTypeExtension)
		memberNodes = append(memberNodes, ext.Members...)
		b.checkAppliedDirectives(ext.Directives, ast.DirectiveLocationUnion)
	}

	seen := map[string]ast.NamedType{}
	for _, node := range memberNodes {
		name := node.Name.Value()
		if prev, duplicated := seen[name]; duplicated {
			b.emplace(
				fmt.Sprintf("Union type %q can only include type %q once.", t.name, name),
				[]ast.Node{prev, node})
			continue
		}
		seen[name] = node

		kind, defined := b.kindOf(name)
		if !defined {
			b.emplace(fmt.Sprintf("Unknown type %q.", name), []ast.Node{node})
			continue
		}
		if kind != TypeKindObject {
			b.emplace(
				fmt.Sprintf("Union type %q can only include Object types, it cannot include %q.",
					t.name, name),
				[]ast.Node{node})
			continue
		}
		t.members = append(t.members, name)
	}
	return t
}

func (b *builder) buildEnumType(def *ast.EnumTypeDefinition) *EnumType {
	t := &EnumType{
		typeBase: b.typeBaseOf(def),
		valueMap: map[string]*EnumValue{},
	}

	valueNodes := append([]*ast.EnumValueDefinition(nil), def.Values...)
	b.checkAppliedDirectives(def.Directives, ast.DirectiveLocationEnum)
	for _, ext := range b.extsByName[t.name] {
		ext := ext.(*ast.EnumTypeExtension)
		valueNodes = append(valueNodes, ext.Values...)
		b.checkAppliedDirectives(ext.Directives, ast.DirectiveLocationEnum)
	}

	for _, node := range valueNodes {
		name := node.Name.Value()
		if prev, exists := t.valueMap[name]; exists {
			b.emplace(
				fmt.Sprintf("Enum value \"%s.%s\" can only be defined once.", t.name, name),
				[]ast.Node{prev.definition.Name, node.Name})
			continue
		}

		b.checkReservedName(node.Name)
		b.checkAppliedDirectives(node.Directives, ast.DirectiveLocationEnumValue)

		value := &EnumValue{
			name:        name,
			description: descriptionOf(node.Description),
			definition:  node,
		}
		value.deprecated, value.deprecationReason = deprecationOf(node.Directives)
		t.values = append(t.values, value)
		t.valueMap[name] = value
	}
	return t
}

func (b *builder) buildInputObjectType(def *ast.InputObjectTypeDefinition) *InputObjectType {
	t := &InputObjectType{
		typeBase: b.typeBaseOf(def),
		fieldMap: map[string]*InputValue{},
	}

	fieldNodes := append([]*ast.InputValueDefinition(nil), def.Fields...)
	b.checkAppliedDirectives(def.Directives, ast.DirectiveLocationInputObject)
	for _, ext := range b.extsByName[t.name] {
		ext := ext.(*ast.InputObjectTypeExtension)
		fieldNodes = append(fieldNodes, ext.Fields...)
		b.checkAppliedDirectives(ext.Directives, ast.DirectiveLocationInputObject)
	}

	t.fields = b.buildInputValues(fieldNodes, t.fieldMap, func(name string) string {
		return fmt.Sprintf("Input field \"%s.%s\"", t.name, name)
	})
	for _, def := range fieldNodes {
		b.checkReservedName(def.Name)
		b.checkInputTypeRef(def.Type, fmt.Sprintf("\"%s.%s\"", t.name, def.Name.Value()))
		b.checkAppliedDirectives(def.Directives, ast.DirectiveLocationInputFieldDefinition)
	}
	return t
}

//===----------------------------------------------------------------------------------------====//
// Root operation types
//===----------------------------------------------------------------------------------------====//

func (b *builder) buildRootTypes() {
	if b.schemaDef == nil && len(b.schemaExts) == 0 {
		// Without a schema definition the conventionally named object types serve the root
		// operations.
		for _, name := range []string{"Query", "Mutation", "Subscription"} {
			if object, ok := b.schema.typeMap[name].(*ObjectType); ok {
				b.schema.rootTypes[ast.OperationType(strings.ToLower(name))] = object.name
			}
		}
		return
	}

	var operationTypes []*ast.OperationTypeDefinition
	if b.schemaDef != nil {
		operationTypes = append(operationTypes, b.schemaDef.OperationTypes...)
		b.checkAppliedDirectives(b.schemaDef.Directives, ast.DirectiveLocationSchema)
	}
	for _, ext := range b.schemaExts {
		operationTypes = append(operationTypes, ext.OperationTypes...)
		b.checkAppliedDirectives(ext.Directives, ast.DirectiveLocationSchema)
	}

	seen := map[ast.OperationType]*ast.OperationTypeDefinition{}
	for _, operationType := range operationTypes {
		operation := operationType.Operation()
		if prev, duplicated := seen[operation]; duplicated {
			b.emplace(
				fmt.Sprintf("Must provide only one %s type in schema.", operation),
				[]ast.Node{prev, operationType})
			continue
		}
		seen[operation] = operationType

		node := operationType.Type
		name := node.Name.Value()
		kind, defined := b.kindOf(name)
		if !defined {
			b.emplace(fmt.Sprintf("Unknown type %q.", name), []ast.Node{node})
			continue
		}
		if kind != TypeKindObject {
			b.emplace(
				fmt.Sprintf("%s root type must be Object type, it cannot be %q.",
					rootTypeTitle(operation), name),
				[]ast.Node{node})
			continue
		}
		b.schema.rootTypes[operation] = name
	}
}

func rootTypeTitle(operation ast.OperationType) string {
	switch operation {
	case ast.OperationTypeMutation:
		return "Mutation"
	case ast.OperationTypeSubscription:
		return "Subscription"
	}
	return "Query"
}

//===----------------------------------------------------------------------------------------====//
// Applied directive checks
//===----------------------------------------------------------------------------------------====//

// checkAppliedDirectives verifies directives applied within schema documents: the directive must be
// defined, legal at the location, and repeated only when declared repeatable.
func (b *builder) checkAppliedDirectives(
	directives ast.Directives,
	location ast.DirectiveLocation,
) {
	seen := map[string]*ast.Directive{}
	for _, applied := range directives {
		name := applied.Name.Value()
		directive, known := b.lookupDirective(name)
		if !known {
			b.emplace(fmt.Sprintf("Unknown directive \"@%s\".", name), []ast.Node{applied.Name})
			continue
		}

		if !directive.HasLocation(location) {
			b.emplace(
				fmt.Sprintf("Directive \"@%s\" may not be used on %s.", name, location),
				[]ast.Node{applied.Name})
		}

		if prev, repeated := seen[name]; repeated {
			if !directive.Repeatable() {
				b.emplace(
					fmt.Sprintf("The directive \"@%s\" can only be used once at this location.",
						name),
					[]ast.Node{prev.Name, applied.Name})
			}
			continue
		}
		seen[name] = applied
	}
}

// lookupDirective resolves a directive name during build, before schema.directiveMap is guaranteed
// complete, by also consulting the collected definitions.
func (b *builder) lookupDirective(name string) (*Directive, bool) {
	if directive, ok := b.schema.directiveMap[name]; ok {
		return directive, true
	}
	// Directive definitions are materialized before types, so this path only serves directives
	// applied inside directive definitions themselves.
	for _, def := range b.directiveDefs {
		if def.Name.Value() == name {
			return b.buildDirective(def), true
		}
	}
	return nil, false
}

//===----------------------------------------------------------------------------------------====//
// Small AST helpers
//===----------------------------------------------------------------------------------------====//

func descriptionOf(description ast.StringValue) string {
	if description.Token == nil {
		return ""
	}
	return description.Value()
}

// deprecationOf reads the @deprecated directive from a directives list.
func deprecationOf(directives ast.Directives) (bool, string) {
	for _, directive := range directives {
		if directive.Name.Value() != "deprecated" {
			continue
		}
		for _, argument := range directive.Arguments {
			if argument.Name.Value() == "reason" {
				if reason, ok := argument.Value.(ast.StringValue); ok {
					return true, reason.Value()
				}
			}
		}
		return true, DefaultDeprecationReason
	}
	return false, ""
}
