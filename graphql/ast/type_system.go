/**
 * Copyright (c) 2018, The Artemis Authors.
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

package ast

import (
	"github.com/KoichiKiyokawa/nitrogql/graphql/token"
)

//===----------------------------------------------------------------------------------------====//
// 3 Type System
//===----------------------------------------------------------------------------------------====//
// The GraphQL Type system describes the capabilities of a GraphQL service and is used to determine
// if a query is valid.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System

// TypeSystemDefinition represents a definition that describes the type system of a service: a
// schema definition, a type definition or a directive definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#TypeSystemDefinition
type TypeSystemDefinition interface {
	Definition

	// typeSystemDefinitionNode is a special mark to indicate a TypeSystemDefinition node.
	typeSystemDefinitionNode()
}

var (
	_ TypeSystemDefinition = (*SchemaDefinition)(nil)
	_ TypeSystemDefinition = (*ScalarTypeDefinition)(nil)
	_ TypeSystemDefinition = (*ObjectTypeDefinition)(nil)
	_ TypeSystemDefinition = (*InterfaceTypeDefinition)(nil)
	_ TypeSystemDefinition = (*UnionTypeDefinition)(nil)
	_ TypeSystemDefinition = (*EnumTypeDefinition)(nil)
	_ TypeSystemDefinition = (*InputObjectTypeDefinition)(nil)
	_ TypeSystemDefinition = (*DirectiveDefinition)(nil)
)

// TypeSystemExtension represents a definition that extends a previously defined schema or type.
//
// Reference: https://facebook.github.io/graphql/June2018/#TypeSystemExtension
type TypeSystemExtension interface {
	Definition

	// ExtendKeyword returns the "extend" keyword token that starts the extension.
	ExtendKeyword() *token.Token

	// typeSystemExtensionNode is a special mark to indicate a TypeSystemExtension node.
	typeSystemExtensionNode()
}

var (
	_ TypeSystemExtension = (*SchemaExtension)(nil)
	_ TypeSystemExtension = (*ScalarTypeExtension)(nil)
	_ TypeSystemExtension = (*ObjectTypeExtension)(nil)
	_ TypeSystemExtension = (*InterfaceTypeExtension)(nil)
	_ TypeSystemExtension = (*UnionTypeExtension)(nil)
	_ TypeSystemExtension = (*EnumTypeExtension)(nil)
	_ TypeSystemExtension = (*InputObjectTypeExtension)(nil)
)

// TypeDefinition is implemented by the six kinds of type definition nodes. It gives access to the
// fields shared by all of them without knowing the concrete kind.
type TypeDefinition interface {
	TypeSystemDefinition

	// TypeName returns the name of the type being defined.
	TypeName() Name

	// TypeDescription returns the description attached to the definition. The returned value has a
	// nil Token if no description was given.
	TypeDescription() StringValue
}

var (
	_ TypeDefinition = (*ScalarTypeDefinition)(nil)
	_ TypeDefinition = (*ObjectTypeDefinition)(nil)
	_ TypeDefinition = (*InterfaceTypeDefinition)(nil)
	_ TypeDefinition = (*UnionTypeDefinition)(nil)
	_ TypeDefinition = (*EnumTypeDefinition)(nil)
	_ TypeDefinition = (*InputObjectTypeDefinition)(nil)
)

// TypeExtension is implemented by the six kinds of type extension nodes.
type TypeExtension interface {
	TypeSystemExtension

	// TypeName returns the name of the type being extended.
	TypeName() Name
}

var (
	_ TypeExtension = (*ScalarTypeExtension)(nil)
	_ TypeExtension = (*ObjectTypeExtension)(nil)
	_ TypeExtension = (*InterfaceTypeExtension)(nil)
	_ TypeExtension = (*UnionTypeExtension)(nil)
	_ TypeExtension = (*EnumTypeExtension)(nil)
	_ TypeExtension = (*InputObjectTypeExtension)(nil)
)

// typeSystemDefinitionBase is embedded in every TypeSystemDefinition implementation.
type typeSystemDefinitionBase struct {
	DefinitionBase
}

func (typeSystemDefinitionBase) typeSystemDefinitionNode() {}

// typeSystemExtensionBase is embedded in every TypeSystemExtension implementation.
type typeSystemExtensionBase struct {
	DefinitionBase

	// Keyword is the "extend" keyword token that starts the extension.
	Keyword *token.Token
}

// ExtendKeyword implements TypeSystemExtension.
func (base typeSystemExtensionBase) ExtendKeyword() *token.Token {
	return base.Keyword
}

func (typeSystemExtensionBase) typeSystemExtensionNode() {}

// firstDefinitionToken picks the token at which a described definition starts: the description
// string if one was given, otherwise the leading keyword.
func firstDefinitionToken(description StringValue, keyword *token.Token) *token.Token {
	if description.Token != nil {
		return description.Token
	}
	return keyword
}

//===----------------------------------------------------------------------------------------====//
// 3.2 Schema
//===----------------------------------------------------------------------------------------====//

// OperationTypeDefinition assigns a named object type to one of the three root operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationTypeDefinition
type OperationTypeDefinition struct {
	// OperationType is the Name token that contains the operation type ("query", "mutation" or
	// "subscription").
	OperationType *token.Token

	// Type names the object type serving the operation.
	Type NamedType
}

var _ Node = (*OperationTypeDefinition)(nil)

// Operation returns the operation being assigned.
func (node *OperationTypeDefinition) Operation() OperationType {
	return OperationType(node.OperationType.Value)
}

// TokenRange implements Node.
func (node *OperationTypeDefinition) TokenRange() token.Range {
	return token.Range{
		First: node.OperationType,
		Last:  node.Type.Name.Token,
	}
}

// SchemaDefinition defines the root operation types of a schema.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaDefinition
type SchemaDefinition struct {
	typeSystemDefinitionBase

	// Keyword is the "schema" keyword token.
	Keyword *token.Token

	// OperationTypes assigns object types to the root operations.
	OperationTypes []*OperationTypeDefinition
}

// TokenRange implements Node.
func (node *SchemaDefinition) TokenRange() token.Range {
	last := node.Keyword
	if n := len(node.OperationTypes); n > 0 {
		// The right brace closing the operation type list.
		last = node.OperationTypes[n-1].TokenRange().Last.Next
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: node.Keyword,
		Last:  last,
	}
}

// SchemaExtension extends a previously defined schema with directives or additional root operation
// types.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaExtension
type SchemaExtension struct {
	typeSystemExtensionBase

	// OperationTypes assigns object types to the root operations.
	OperationTypes []*OperationTypeDefinition
}

// TokenRange implements Node.
func (node *SchemaExtension) TokenRange() token.Range {
	last := node.Keyword
	if n := len(node.OperationTypes); n > 0 {
		last = node.OperationTypes[n-1].TokenRange().Last.Next
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: node.Keyword,
		Last:  last,
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.5 Scalars
//===----------------------------------------------------------------------------------------====//

// ScalarTypeDefinition defines a leaf type with no expected sub-selections.
//
// Reference: https://facebook.github.io/graphql/June2018/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	typeSystemDefinitionBase

	// Description attached to the definition; Token is nil if no description was given.
	Description StringValue

	// Keyword is the "scalar" keyword token.
	Keyword *token.Token

	// Name of the scalar type
	Name Name
}

// TypeName implements TypeDefinition.
func (node *ScalarTypeDefinition) TypeName() Name { return node.Name }

// TypeDescription implements TypeDefinition.
func (node *ScalarTypeDefinition) TypeDescription() StringValue { return node.Description }

// TokenRange implements Node.
func (node *ScalarTypeDefinition) TokenRange() token.Range {
	last := node.Name.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Keyword),
		Last:  last,
	}
}

// ScalarTypeExtension extends a previously defined scalar type with directives.
type ScalarTypeExtension struct {
	typeSystemExtensionBase

	// Name of the scalar type being extended
	Name Name
}

// TypeName implements TypeExtension.
func (node *ScalarTypeExtension) TypeName() Name { return node.Name }

// TokenRange implements Node.
func (node *ScalarTypeExtension) TokenRange() token.Range {
	last := node.Name.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: node.Keyword,
		Last:  last,
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.6 Objects
//===----------------------------------------------------------------------------------------====//

// FieldDefinition describes one field of an object or interface type.
//
// Reference: https://facebook.github.io/graphql/June2018/#FieldDefinition
type FieldDefinition struct {
	// Description attached to the field; Token is nil if no description was given.
	Description StringValue

	// Name of the field
	Name Name

	// Arguments taken by the field
	Arguments []*InputValueDefinition

	// Type of the value the field yields
	Type Type

	// Directives applied to the field
	Directives Directives
}

var _ Node = (*FieldDefinition)(nil)

// TokenRange implements Node.
func (node *FieldDefinition) TokenRange() token.Range {
	last := node.Type.TokenRange().Last
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Name.Token),
		Last:  last,
	}
}

// InputValueDefinition describes an argument of a field or directive, or a field of an input
// object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputValueDefinition
type InputValueDefinition struct {
	// Description attached to the input value; Token is nil if no description was given.
	Description StringValue

	// Name of the input value
	Name Name

	// Type of the value expected
	Type Type

	// DefaultValue supplied when no input value is given; nil if there's no default.
	DefaultValue Value

	// Directives applied to the input value
	Directives Directives
}

var _ Node = (*InputValueDefinition)(nil)

// TokenRange implements Node.
func (node *InputValueDefinition) TokenRange() token.Range {
	var last *token.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	} else if node.DefaultValue != nil {
		last = node.DefaultValue.TokenRange().Last
	} else {
		last = node.Type.TokenRange().Last
	}
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Name.Token),
		Last:  last,
	}
}

// ObjectTypeDefinition defines an object type with a list of fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	typeSystemDefinitionBase

	// Description attached to the definition; Token is nil if no description was given.
	Description StringValue

	// Keyword is the "type" keyword token.
	Keyword *token.Token

	// Name of the object type
	Name Name

	// Interfaces implemented by the object type
	Interfaces []NamedType

	// Fields of the object type
	Fields []*FieldDefinition
}

// TypeName implements TypeDefinition.
func (node *ObjectTypeDefinition) TypeName() Name { return node.Name }

// TypeDescription implements TypeDefinition.
func (node *ObjectTypeDefinition) TypeDescription() StringValue { return node.Description }

// TokenRange implements Node.
func (node *ObjectTypeDefinition) TokenRange() token.Range {
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Keyword),
		Last:  lastFieldsBlockToken(node.Name, node.Interfaces, node.Directives, node.Fields),
	}
}

// lastFieldsBlockToken finds the last token of a definition of the form
//
//	name implements... directives... { fields... }
//
// where each trailing part is optional.
func lastFieldsBlockToken(
	name Name,
	interfaces []NamedType,
	directives Directives,
	fields []*FieldDefinition,
) *token.Token {
	if n := len(fields); n > 0 {
		// The right brace closing the fields block.
		return fields[n-1].TokenRange().Last.Next
	}
	if len(directives) > 0 {
		return directives.LastToken()
	}
	if n := len(interfaces); n > 0 {
		return interfaces[n-1].Name.Token
	}
	return name.Token
}

// ObjectTypeExtension extends a previously defined object type.
type ObjectTypeExtension struct {
	typeSystemExtensionBase

	// Name of the object type being extended
	Name Name

	// Interfaces added to the object type
	Interfaces []NamedType

	// Fields added to the object type
	Fields []*FieldDefinition
}

// TypeName implements TypeExtension.
func (node *ObjectTypeExtension) TypeName() Name { return node.Name }

// TokenRange implements Node.
func (node *ObjectTypeExtension) TokenRange() token.Range {
	return token.Range{
		First: node.Keyword,
		Last:  lastFieldsBlockToken(node.Name, node.Interfaces, node.Directives, node.Fields),
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.7 Interfaces
//===----------------------------------------------------------------------------------------====//

// InterfaceTypeDefinition defines an abstract type with a list of fields that implementing types
// must include.
//
// Reference: https://facebook.github.io/graphql/June2018/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	typeSystemDefinitionBase

	// Description attached to the definition; Token is nil if no description was given.
	Description StringValue

	// Keyword is the "interface" keyword token.
	Keyword *token.Token

	// Name of the interface type
	Name Name

	// Interfaces implemented by the interface type
	Interfaces []NamedType

	// Fields of the interface type
	Fields []*FieldDefinition
}

// TypeName implements TypeDefinition.
func (node *InterfaceTypeDefinition) TypeName() Name { return node.Name }

// TypeDescription implements TypeDefinition.
func (node *InterfaceTypeDefinition) TypeDescription() StringValue { return node.Description }

// TokenRange implements Node.
func (node *InterfaceTypeDefinition) TokenRange() token.Range {
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Keyword),
		Last:  lastFieldsBlockToken(node.Name, node.Interfaces, node.Directives, node.Fields),
	}
}

// InterfaceTypeExtension extends a previously defined interface type.
type InterfaceTypeExtension struct {
	typeSystemExtensionBase

	// Name of the interface type being extended
	Name Name

	// Interfaces added to the interface type
	Interfaces []NamedType

	// Fields added to the interface type
	Fields []*FieldDefinition
}

// TypeName implements TypeExtension.
func (node *InterfaceTypeExtension) TypeName() Name { return node.Name }

// TokenRange implements Node.
func (node *InterfaceTypeExtension) TokenRange() token.Range {
	return token.Range{
		First: node.Keyword,
		Last:  lastFieldsBlockToken(node.Name, node.Interfaces, node.Directives, node.Fields),
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.8 Unions
//===----------------------------------------------------------------------------------------====//

// UnionTypeDefinition defines a type that is one of a list of object types.
//
// Reference: https://facebook.github.io/graphql/June2018/#UnionTypeDefinition
type UnionTypeDefinition struct {
	typeSystemDefinitionBase

	// Description attached to the definition; Token is nil if no description was given.
	Description StringValue

	// Keyword is the "union" keyword token.
	Keyword *token.Token

	// Name of the union type
	Name Name

	// Members lists the possible object types of the union.
	Members []NamedType
}

// TypeName implements TypeDefinition.
func (node *UnionTypeDefinition) TypeName() Name { return node.Name }

// TypeDescription implements TypeDefinition.
func (node *UnionTypeDefinition) TypeDescription() StringValue { return node.Description }

// TokenRange implements Node.
func (node *UnionTypeDefinition) TokenRange() token.Range {
	last := node.Name.Token
	if n := len(node.Members); n > 0 {
		last = node.Members[n-1].Name.Token
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Keyword),
		Last:  last,
	}
}

// UnionTypeExtension extends a previously defined union type.
type UnionTypeExtension struct {
	typeSystemExtensionBase

	// Name of the union type being extended
	Name Name

	// Members lists object types added to the union.
	Members []NamedType
}

// TypeName implements TypeExtension.
func (node *UnionTypeExtension) TypeName() Name { return node.Name }

// TokenRange implements Node.
func (node *UnionTypeExtension) TokenRange() token.Range {
	last := node.Name.Token
	if n := len(node.Members); n > 0 {
		last = node.Members[n-1].Name.Token
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: node.Keyword,
		Last:  last,
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.9 Enums
//===----------------------------------------------------------------------------------------====//

// EnumValueDefinition describes one possible value of an enum type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValueDefinition
type EnumValueDefinition struct {
	// Description attached to the value; Token is nil if no description was given.
	Description StringValue

	// Name of the enum value
	Name Name

	// Directives applied to the enum value
	Directives Directives
}

var _ Node = (*EnumValueDefinition)(nil)

// TokenRange implements Node.
func (node *EnumValueDefinition) TokenRange() token.Range {
	last := node.Name.Token
	if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Name.Token),
		Last:  last,
	}
}

// EnumTypeDefinition defines a type whose values form a finite set of names.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumTypeDefinition
type EnumTypeDefinition struct {
	typeSystemDefinitionBase

	// Description attached to the definition; Token is nil if no description was given.
	Description StringValue

	// Keyword is the "enum" keyword token.
	Keyword *token.Token

	// Name of the enum type
	Name Name

	// Values of the enum type
	Values []*EnumValueDefinition
}

// TypeName implements TypeDefinition.
func (node *EnumTypeDefinition) TypeName() Name { return node.Name }

// TypeDescription implements TypeDefinition.
func (node *EnumTypeDefinition) TypeDescription() StringValue { return node.Description }

// TokenRange implements Node.
func (node *EnumTypeDefinition) TokenRange() token.Range {
	last := node.Name.Token
	if n := len(node.Values); n > 0 {
		last = node.Values[n-1].TokenRange().Last.Next
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Keyword),
		Last:  last,
	}
}

// EnumTypeExtension extends a previously defined enum type.
type EnumTypeExtension struct {
	typeSystemExtensionBase

	// Name of the enum type being extended
	Name Name

	// Values added to the enum type
	Values []*EnumValueDefinition
}

// TypeName implements TypeExtension.
func (node *EnumTypeExtension) TypeName() Name { return node.Name }

// TokenRange implements Node.
func (node *EnumTypeExtension) TokenRange() token.Range {
	last := node.Name.Token
	if n := len(node.Values); n > 0 {
		last = node.Values[n-1].TokenRange().Last.Next
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: node.Keyword,
		Last:  last,
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.10 Input Objects
//===----------------------------------------------------------------------------------------====//

// InputObjectTypeDefinition defines a composite input type with a list of input fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	typeSystemDefinitionBase

	// Description attached to the definition; Token is nil if no description was given.
	Description StringValue

	// Keyword is the "input" keyword token.
	Keyword *token.Token

	// Name of the input object type
	Name Name

	// Fields of the input object type
	Fields []*InputValueDefinition
}

// TypeName implements TypeDefinition.
func (node *InputObjectTypeDefinition) TypeName() Name { return node.Name }

// TypeDescription implements TypeDefinition.
func (node *InputObjectTypeDefinition) TypeDescription() StringValue { return node.Description }

// TokenRange implements Node.
func (node *InputObjectTypeDefinition) TokenRange() token.Range {
	last := node.Name.Token
	if n := len(node.Fields); n > 0 {
		last = node.Fields[n-1].TokenRange().Last.Next
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Keyword),
		Last:  last,
	}
}

// InputObjectTypeExtension extends a previously defined input object type.
type InputObjectTypeExtension struct {
	typeSystemExtensionBase

	// Name of the input object type being extended
	Name Name

	// Fields added to the input object type
	Fields []*InputValueDefinition
}

// TypeName implements TypeExtension.
func (node *InputObjectTypeExtension) TypeName() Name { return node.Name }

// TokenRange implements Node.
func (node *InputObjectTypeExtension) TokenRange() token.Range {
	last := node.Name.Token
	if n := len(node.Fields); n > 0 {
		last = node.Fields[n-1].TokenRange().Last.Next
	} else if len(node.Directives) > 0 {
		last = node.Directives.LastToken()
	}
	return token.Range{
		First: node.Keyword,
		Last:  last,
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.13 Directives
//===----------------------------------------------------------------------------------------====//

// DirectiveLocation names a location where a directive may be applied.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocations
type DirectiveLocation string

// Enumeration of DirectiveLocation
const (
	DirectiveLocationQuery                DirectiveLocation = "QUERY"
	DirectiveLocationMutation             DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription         DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField                DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition   DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread       DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment       DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition   DirectiveLocation = "VARIABLE_DEFINITION"
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// IsValidDirectiveLocation returns true if s names one of the defined directive locations.
func IsValidDirectiveLocation(s string) bool {
	switch DirectiveLocation(s) {
	case DirectiveLocationQuery,
		DirectiveLocationMutation,
		DirectiveLocationSubscription,
		DirectiveLocationField,
		DirectiveLocationFragmentDefinition,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
		DirectiveLocationVariableDefinition,
		DirectiveLocationSchema,
		DirectiveLocationScalar,
		DirectiveLocationObject,
		DirectiveLocationFieldDefinition,
		DirectiveLocationArgumentDefinition,
		DirectiveLocationInterface,
		DirectiveLocationUnion,
		DirectiveLocationEnum,
		DirectiveLocationEnumValue,
		DirectiveLocationInputObject,
		DirectiveLocationInputFieldDefinition:
		return true
	}
	return false
}

// DirectiveDefinition defines a directive: its arguments and the locations it may be applied to.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	typeSystemDefinitionBase

	// Description attached to the definition; Token is nil if no description was given.
	Description StringValue

	// Keyword is the "directive" keyword token.
	Keyword *token.Token

	// Name of the directive (without the leading "@")
	Name Name

	// Arguments taken by the directive
	Arguments []*InputValueDefinition

	// Repeatable is true if the directive may be applied more than once at a single location.
	Repeatable bool

	// Locations lists the Name nodes naming the locations the directive may be applied to.
	Locations []Name
}

// TokenRange implements Node.
func (node *DirectiveDefinition) TokenRange() token.Range {
	last := node.Name.Token
	if n := len(node.Locations); n > 0 {
		last = node.Locations[n-1].Token
	}
	return token.Range{
		First: firstDefinitionToken(node.Description, node.Keyword),
		Last:  last,
	}
}
