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

// TypeKind classifies a named type.
type TypeKind uint8

// Enumeration of TypeKind
const (
	TypeKindScalar TypeKind = iota
	TypeKindObject
	TypeKindInterface
	TypeKindUnion
	TypeKindEnum
	TypeKindInputObject
)

func (kind TypeKind) String() string {
	switch kind {
	case TypeKindScalar:
		return "Scalar"
	case TypeKindObject:
		return "Object"
	case TypeKindInterface:
		return "Interface"
	case TypeKindUnion:
		return "Union"
	case TypeKindEnum:
		return "Enum"
	case TypeKindInputObject:
		return "InputObject"
	}
	return "Unknown"
}

// Type is a named type in a Schema. It is one of ScalarType, ObjectType, InterfaceType, UnionType,
// EnumType and InputObjectType.
type Type interface {
	// Name of the type
	Name() string

	// Kind classifying the type
	Kind() TypeKind

	// Description attached to the type definition; empty if none was given.
	Description() string

	// BuiltIn returns true for the five built-in scalar types.
	BuiltIn() bool

	// Definition returns the AST node the type was built from; nil for built-in types.
	Definition() ast.TypeDefinition

	// typeNode is a special mark to limit Type implementations to the ones in this package.
	typeNode()
}

var (
	_ Type = (*ScalarType)(nil)
	_ Type = (*ObjectType)(nil)
	_ Type = (*InterfaceType)(nil)
	_ Type = (*UnionType)(nil)
	_ Type = (*EnumType)(nil)
	_ Type = (*InputObjectType)(nil)
)

// typeBase provides the common state behind every Type implementation.
type typeBase struct {
	name        string
	description string
	builtIn     bool
	definition  ast.TypeDefinition
}

// Name implements Type.
func (t *typeBase) Name() string { return t.name }

// Description implements Type.
func (t *typeBase) Description() string { return t.description }

// BuiltIn implements Type.
func (t *typeBase) BuiltIn() bool { return t.builtIn }

// Definition implements Type.
func (t *typeBase) Definition() ast.TypeDefinition { return t.definition }

func (*typeBase) typeNode() {}

// InputValue describes an argument taken by a field or a directive, or a field of an input object
// type.
type InputValue struct {
	name         string
	description  string
	typ          TypeRef
	defaultValue ast.Value
	definition   *ast.InputValueDefinition
}

// Name of the input value
func (value *InputValue) Name() string { return value.name }

// Description attached to the input value definition
func (value *InputValue) Description() string { return value.description }

// Type of the input value
func (value *InputValue) Type() TypeRef { return value.typ }

// HasDefaultValue returns true if the definition specified a default.
func (value *InputValue) HasDefaultValue() bool { return value.defaultValue != nil }

// DefaultValue returns the default value in AST form; nil if none was specified.
func (value *InputValue) DefaultValue() ast.Value { return value.defaultValue }

// Definition returns the AST node the input value was built from; nil for the arguments of built-in
// directives.
func (value *InputValue) Definition() *ast.InputValueDefinition { return value.definition }

// Field describes one field of an object or interface type.
type Field struct {
	name              string
	description       string
	typ               TypeRef
	args              []*InputValue
	argMap            map[string]*InputValue
	deprecated        bool
	deprecationReason string
	definition        *ast.FieldDefinition
}

// Name of the field
func (field *Field) Name() string { return field.name }

// Description attached to the field definition
func (field *Field) Description() string { return field.description }

// Type of the value the field yields
func (field *Field) Type() TypeRef { return field.typ }

// Args lists the arguments taken by the field in definition order.
func (field *Field) Args() []*InputValue { return field.args }

// Arg looks up an argument by name; nil if the field takes no such argument.
func (field *Field) Arg(name string) *InputValue { return field.argMap[name] }

// Deprecated returns true if the field carries the @deprecated directive.
func (field *Field) Deprecated() bool { return field.deprecated }

// DeprecationReason returns the reason given to @deprecated.
func (field *Field) DeprecationReason() string { return field.deprecationReason }

// Definition returns the AST node the field was built from.
func (field *Field) Definition() *ast.FieldDefinition { return field.definition }

// ScalarType is a leaf type with no sub-structure of its own.
type ScalarType struct {
	typeBase
}

// Kind implements Type.
func (t *ScalarType) Kind() TypeKind { return TypeKindScalar }

// ObjectType describes a concrete object with a set of fields.
type ObjectType struct {
	typeBase
	interfaces []string
	fields     []*Field
	fieldMap   map[string]*Field
}

// Kind implements Type.
func (t *ObjectType) Kind() TypeKind { return TypeKindObject }

// Interfaces lists the names of the interfaces the object implements, in definition order.
func (t *ObjectType) Interfaces() []string { return t.interfaces }

// Fields lists the fields of the object in definition order.
func (t *ObjectType) Fields() []*Field { return t.fields }

// Field looks up a field by name; nil if the object defines no such field.
func (t *ObjectType) Field(name string) *Field { return t.fieldMap[name] }

// InterfaceType describes an abstract type whose fields every implementation must provide.
type InterfaceType struct {
	typeBase
	interfaces []string
	fields     []*Field
	fieldMap   map[string]*Field
}

// Kind implements Type.
func (t *InterfaceType) Kind() TypeKind { return TypeKindInterface }

// Interfaces lists the names of the interfaces this interface itself implements.
func (t *InterfaceType) Interfaces() []string { return t.interfaces }

// Fields lists the fields of the interface in definition order.
func (t *InterfaceType) Fields() []*Field { return t.fields }

// Field looks up a field by name; nil if the interface defines no such field.
func (t *InterfaceType) Field(name string) *Field { return t.fieldMap[name] }

// UnionType describes an abstract type whose value is exactly one of its member object types.
type UnionType struct {
	typeBase
	members []string
}

// Kind implements Type.
func (t *UnionType) Kind() TypeKind { return TypeKindUnion }

// Members lists the names of the member object types in definition order.
func (t *UnionType) Members() []string { return t.members }

// EnumValue describes one value of an enum type.
type EnumValue struct {
	name              string
	description       string
	deprecated        bool
	deprecationReason string
	definition        *ast.EnumValueDefinition
}

// Name of the enum value
func (value *EnumValue) Name() string { return value.name }

// Description attached to the enum value definition
func (value *EnumValue) Description() string { return value.description }

// Deprecated returns true if the value carries the @deprecated directive.
func (value *EnumValue) Deprecated() bool { return value.deprecated }

// DeprecationReason returns the reason given to @deprecated.
func (value *EnumValue) DeprecationReason() string { return value.deprecationReason }

// Definition returns the AST node the enum value was built from.
func (value *EnumValue) Definition() *ast.EnumValueDefinition { return value.definition }

// EnumType describes a leaf type with a finite set of possible values.
type EnumType struct {
	typeBase
	values   []*EnumValue
	valueMap map[string]*EnumValue
}

// Kind implements Type.
func (t *EnumType) Kind() TypeKind { return TypeKindEnum }

// Values lists the values of the enum in definition order.
func (t *EnumType) Values() []*EnumValue { return t.values }

// Value looks up an enum value by name; nil if the enum defines no such value.
func (t *EnumType) Value(name string) *EnumValue { return t.valueMap[name] }

// InputObjectType describes a structured input value.
type InputObjectType struct {
	typeBase
	fields   []*InputValue
	fieldMap map[string]*InputValue
}

// Kind implements Type.
func (t *InputObjectType) Kind() TypeKind { return TypeKindInputObject }

// Fields lists the input fields in definition order.
func (t *InputObjectType) Fields() []*InputValue { return t.fields }

// Field looks up an input field by name; nil if the type defines no such field.
func (t *InputObjectType) Field(name string) *InputValue { return t.fieldMap[name] }

// Directive describes a directive available to documents checked against the schema.
type Directive struct {
	name        string
	description string
	args        []*InputValue
	argMap      map[string]*InputValue
	repeatable  bool
	locations   []ast.DirectiveLocation
	builtIn     bool
	definition  *ast.DirectiveDefinition
}

// Name of the directive (without the leading "@")
func (directive *Directive) Name() string { return directive.name }

// Description attached to the directive definition
func (directive *Directive) Description() string { return directive.description }

// Args lists the arguments taken by the directive in definition order.
func (directive *Directive) Args() []*InputValue { return directive.args }

// Arg looks up an argument by name; nil if the directive takes no such argument.
func (directive *Directive) Arg(name string) *InputValue { return directive.argMap[name] }

// Repeatable returns true if the directive may be applied more than once at a single location.
func (directive *Directive) Repeatable() bool { return directive.repeatable }

// Locations lists the locations the directive may be applied to.
func (directive *Directive) Locations() []ast.DirectiveLocation { return directive.locations }

// HasLocation returns true if the directive may be applied to the given location.
func (directive *Directive) HasLocation(location ast.DirectiveLocation) bool {
	for _, candidate := range directive.locations {
		if candidate == location {
			return true
		}
	}
	return false
}

// BuiltIn returns true for @skip, @include and @deprecated.
func (directive *Directive) BuiltIn() bool { return directive.builtIn }

// Definition returns the AST node the directive was built from; nil for built-in directives.
func (directive *Directive) Definition() *ast.DirectiveDefinition { return directive.definition }

// IsLeafType returns true for types that terminate a selection (scalars and enums).
func IsLeafType(t Type) bool {
	kind := t.Kind()
	return kind == TypeKindScalar || kind == TypeKindEnum
}

// IsCompositeType returns true for types a selection set can be applied to.
func IsCompositeType(t Type) bool {
	switch t.Kind() {
	case TypeKindObject, TypeKindInterface, TypeKindUnion:
		return true
	}
	return false
}

// IsAbstractType returns true for types that resolve to one of several object types.
func IsAbstractType(t Type) bool {
	kind := t.Kind()
	return kind == TypeKindInterface || kind == TypeKindUnion
}

// IsInputType returns true for types usable in input positions (arguments, variables and input
// fields).
func IsInputType(t Type) bool {
	switch t.Kind() {
	case TypeKindScalar, TypeKindEnum, TypeKindInputObject:
		return true
	}
	return false
}

// IsOutputType returns true for types usable as field types.
func IsOutputType(t Type) bool {
	return t.Kind() != TypeKindInputObject
}
