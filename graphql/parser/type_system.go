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

package parser

import (
	"fmt"

	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/graphql/token"
)

// Implements the parsing rules in the Type System Definition section.

//	TypeSystemDefinition ::
//		SchemaDefinition
//		TypeDefinition
//		DirectiveDefinition
//
//	TypeDefinition ::
//		ScalarTypeDefinition
//		ObjectTypeDefinition
//		InterfaceTypeDefinition
//		UnionTypeDefinition
//		EnumTypeDefinition
//		InputObjectTypeDefinition
func (p *parser) parseTypeSystemDefinition() (ast.TypeSystemDefinition, error) {
	// An optional description precedes every definition except SchemaDefinition. Consume it first
	// so the keyword determining the definition kind becomes the current token.
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	keywordToken := p.peek()
	if keywordToken.Kind == token.KindName {
		switch keywordToken.Value {
		case "schema":
			if description.Token != nil {
				return nil, graphql.NewSyntaxError(p.lexer.Source(), description.Token.Location,
					"Unexpected description before schema definition")
			}
			return p.parseSchemaDefinition()
		case "scalar":
			return p.parseScalarTypeDefinition(description)
		case "type":
			return p.parseObjectTypeDefinition(description)
		case "interface":
			return p.parseInterfaceTypeDefinition(description)
		case "union":
			return p.parseUnionTypeDefinition(description)
		case "enum":
			return p.parseEnumTypeDefinition(description)
		case "input":
			return p.parseInputObjectTypeDefinition(description)
		case "directive":
			return p.parseDirectiveDefinition(description)
		}
	}

	return nil, graphql.NewSyntaxError(
		p.lexer.Source(),
		keywordToken.Location,
		fmt.Sprintf("Unexpected %s", keywordToken.Description()))
}

//	TypeSystemExtension ::
//		SchemaExtension
//		TypeExtension
func (p *parser) parseTypeSystemExtension() (ast.TypeSystemExtension, error) {
	// Take the "extend" keyword token and advance over it.
	extendToken, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind == token.KindName {
		switch tok.Value {
		case "schema":
			return p.parseSchemaExtension(extendToken)
		case "scalar":
			return p.parseScalarTypeExtension(extendToken)
		case "type":
			return p.parseObjectTypeExtension(extendToken)
		case "interface":
			return p.parseInterfaceTypeExtension(extendToken)
		case "union":
			return p.parseUnionTypeExtension(extendToken)
		case "enum":
			return p.parseEnumTypeExtension(extendToken)
		case "input":
			return p.parseInputObjectTypeExtension(extendToken)
		}
	}

	return nil, p.unexpected()
}

//	Description ::
//		StringValue
func (p *parser) parseDescription() (ast.StringValue, error) {
	if tok := p.peek(); tok.Kind == token.KindString || tok.Kind == token.KindBlockString {
		if _, err := p.lexer.Advance(); err != nil {
			return ast.StringValue{}, err
		}
		return ast.StringValue{
			Token: tok,
		}, nil
	}
	return ast.StringValue{}, nil
}

// expectSDLKeyword consumes the next token which must be a Name token carrying the given keyword
// and returns it. The callers in this file have all verified the keyword with lookahead so the
// error path only guards against misuse.
func (p *parser) expectSDLKeyword(keyword string) (*token.Token, error) {
	tok := p.peek()
	if tok.Kind != token.KindName || tok.Value != keyword {
		return nil, graphql.NewSyntaxError(p.lexer.Source(), tok.Location,
			fmt.Sprintf(`Expected "%s", found %s`, keyword, tok.Description()))
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

//	SchemaDefinition ::
//		schema Directives[Const]? { OperationTypeDefinition+ }
func (p *parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	keywordToken, err := p.expectSDLKeyword("schema")
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	operationTypes, err := p.parseOperationTypeDefinitions()
	if err != nil {
		return nil, err
	}

	definition := &ast.SchemaDefinition{
		Keyword:        keywordToken,
		OperationTypes: operationTypes,
	}
	definition.Directives = directives
	return definition, nil
}

//	SchemaExtension ::
//		extend schema Directives[Const]? { OperationTypeDefinition+ }
//		extend schema Directives[Const]
func (p *parser) parseSchemaExtension(extendToken *token.Token) (*ast.SchemaExtension, error) {
	if _, err := p.expectSDLKeyword("schema"); err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	if p.peek().Kind == token.KindLeftBrace {
		if operationTypes, err = p.parseOperationTypeDefinitions(); err != nil {
			return nil, err
		}
	}

	if len(directives) == 0 && len(operationTypes) == 0 {
		return nil, p.unexpected()
	}

	extension := &ast.SchemaExtension{
		OperationTypes: operationTypes,
	}
	extension.Keyword = extendToken
	extension.Directives = directives
	return extension, nil
}

//	OperationTypeDefinition ::
//		OperationType : NamedType
func (p *parser) parseOperationTypeDefinitions() ([]*ast.OperationTypeDefinition, error) {
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	operationTypes := make([]*ast.OperationTypeDefinition, 0, 1)
	for {
		operationTypeToken, err := p.expect(token.KindName)
		if err != nil {
			return nil, err
		}

		switch operationTypeToken.Value {
		case "query", "mutation", "subscription":
		default:
			return nil, graphql.NewSyntaxError(p.lexer.Source(), operationTypeToken.Location,
				fmt.Sprintf(`Expected "query", "mutation" or "subscription", found %s`,
					operationTypeToken.Description()))
		}

		if _, err := p.expect(token.KindColon); err != nil {
			return nil, err
		}

		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}

		operationTypes = append(operationTypes, &ast.OperationTypeDefinition{
			OperationType: operationTypeToken,
			Type:          namedType,
		})

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	return operationTypes, nil
}

func (p *parser) parseOptionalConstDirectives() (ast.Directives, error) {
	if p.peek().Kind != token.KindAt {
		return nil, nil
	}
	return p.parseDirectives(true /* isConst */)
}

//	ScalarTypeDefinition ::
//		Description? scalar Name Directives[Const]?
func (p *parser) parseScalarTypeDefinition(description ast.StringValue) (*ast.ScalarTypeDefinition, error) {
	keywordToken, err := p.expectSDLKeyword("scalar")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	definition := &ast.ScalarTypeDefinition{
		Description: description,
		Keyword:     keywordToken,
		Name:        name,
	}
	definition.Directives = directives
	return definition, nil
}

//	ScalarTypeExtension ::
//		extend scalar Name Directives[Const]
func (p *parser) parseScalarTypeExtension(extendToken *token.Token) (*ast.ScalarTypeExtension, error) {
	if _, err := p.expectSDLKeyword("scalar"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 {
		return nil, p.unexpected()
	}

	extension := &ast.ScalarTypeExtension{
		Name: name,
	}
	extension.Keyword = extendToken
	extension.Directives = directives
	return extension, nil
}

//	ImplementsInterfaces ::
//		implements &? NamedType
//		ImplementsInterfaces & NamedType
func (p *parser) parseImplementsInterfaces() ([]ast.NamedType, error) {
	hasImplements, err := p.skipKeyword("implements")
	if err != nil || !hasImplements {
		return nil, err
	}

	var interfaces []ast.NamedType

	// A leading ampersand is optional.
	if _, err := p.skip(token.KindAmp); err != nil {
		return nil, err
	}

	for {
		iface, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, iface)

		hasMore, err := p.skip(token.KindAmp)
		if err != nil {
			return nil, err
		}
		if !hasMore {
			break
		}
	}

	return interfaces, nil
}

//	FieldsDefinition ::
//		{ FieldDefinition+ }
func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil
	}
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	fields := make([]*ast.FieldDefinition, 0, 1)
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	return fields, nil
}

//	FieldDefinition ::
//		Description? Name ArgumentsDefinition? : Type Directives[Const]?
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	return &ast.FieldDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        fieldType,
		Directives:  directives,
	}, nil
}

//	ArgumentsDefinition ::
//		( InputValueDefinition+ )
func (p *parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if p.peek().Kind != token.KindLeftParen {
		return nil, nil
	}
	if _, err := p.expect(token.KindLeftParen); err != nil {
		return nil, err
	}

	arguments := make([]*ast.InputValueDefinition, 0, 1)
	for {
		argument, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		stop, err := p.skip(token.KindRightParen)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	return arguments, nil
}

//	InputValueDefinition ::
//		Description? Name : Type DefaultValue? Directives[Const]?
func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	valueType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if p.peek().Kind == token.KindEquals {
		if defaultValue, err = p.parseDefaultValue(); err != nil {
			return nil, err
		}
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	return &ast.InputValueDefinition{
		Description:  description,
		Name:         name,
		Type:         valueType,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

//	ObjectTypeDefinition ::
//		Description? type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseObjectTypeDefinition(description ast.StringValue) (*ast.ObjectTypeDefinition, error) {
	keywordToken, err := p.expectSDLKeyword("type")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	definition := &ast.ObjectTypeDefinition{
		Description: description,
		Keyword:     keywordToken,
		Name:        name,
		Interfaces:  interfaces,
		Fields:      fields,
	}
	definition.Directives = directives
	return definition, nil
}

//	ObjectTypeExtension ::
//		extend type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend type Name ImplementsInterfaces? Directives[Const]
//		extend type Name ImplementsInterfaces
func (p *parser) parseObjectTypeExtension(extendToken *token.Token) (*ast.ObjectTypeExtension, error) {
	if _, err := p.expectSDLKeyword("type"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	extension := &ast.ObjectTypeExtension{
		Name:       name,
		Interfaces: interfaces,
		Fields:     fields,
	}
	extension.Keyword = extendToken
	extension.Directives = directives
	return extension, nil
}

//	InterfaceTypeDefinition ::
//		Description? interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
func (p *parser) parseInterfaceTypeDefinition(description ast.StringValue) (*ast.InterfaceTypeDefinition, error) {
	keywordToken, err := p.expectSDLKeyword("interface")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	definition := &ast.InterfaceTypeDefinition{
		Description: description,
		Keyword:     keywordToken,
		Name:        name,
		Interfaces:  interfaces,
		Fields:      fields,
	}
	definition.Directives = directives
	return definition, nil
}

//	InterfaceTypeExtension ::
//		extend interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend interface Name ImplementsInterfaces? Directives[Const]
//		extend interface Name ImplementsInterfaces
func (p *parser) parseInterfaceTypeExtension(extendToken *token.Token) (*ast.InterfaceTypeExtension, error) {
	if _, err := p.expectSDLKeyword("interface"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	extension := &ast.InterfaceTypeExtension{
		Name:       name,
		Interfaces: interfaces,
		Fields:     fields,
	}
	extension.Keyword = extendToken
	extension.Directives = directives
	return extension, nil
}

//	UnionMemberTypes ::
//		= |? NamedType
//		UnionMemberTypes | NamedType
func (p *parser) parseUnionMemberTypes() ([]ast.NamedType, error) {
	hasMembers, err := p.skip(token.KindEquals)
	if err != nil || !hasMembers {
		return nil, err
	}

	var members []ast.NamedType

	// A leading pipe is optional.
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	for {
		member, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		members = append(members, member)

		hasMore, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		}
		if !hasMore {
			break
		}
	}

	return members, nil
}

//	UnionTypeDefinition ::
//		Description? union Name Directives[Const]? UnionMemberTypes?
func (p *parser) parseUnionTypeDefinition(description ast.StringValue) (*ast.UnionTypeDefinition, error) {
	keywordToken, err := p.expectSDLKeyword("union")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	members, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	definition := &ast.UnionTypeDefinition{
		Description: description,
		Keyword:     keywordToken,
		Name:        name,
		Members:     members,
	}
	definition.Directives = directives
	return definition, nil
}

//	UnionTypeExtension ::
//		extend union Name Directives[Const]? UnionMemberTypes
//		extend union Name Directives[Const]
func (p *parser) parseUnionTypeExtension(extendToken *token.Token) (*ast.UnionTypeExtension, error) {
	if _, err := p.expectSDLKeyword("union"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	members, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(members) == 0 {
		return nil, p.unexpected()
	}

	extension := &ast.UnionTypeExtension{
		Name:    name,
		Members: members,
	}
	extension.Keyword = extendToken
	extension.Directives = directives
	return extension, nil
}

//	EnumValuesDefinition ::
//		{ EnumValueDefinition+ }
//
//	EnumValueDefinition ::
//		Description? EnumValue Directives[Const]?
func (p *parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil
	}
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	values := make([]*ast.EnumValueDefinition, 0, 1)
	for {
		description, err := p.parseDescription()
		if err != nil {
			return nil, err
		}

		nameToken := p.peek()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}

		switch nameToken.Value {
		case "true", "false", "null":
			return nil, graphql.NewSyntaxError(p.lexer.Source(), nameToken.Location,
				fmt.Sprintf("%s is not a valid enum value", nameToken.Description()))
		}

		directives, err := p.parseOptionalConstDirectives()
		if err != nil {
			return nil, err
		}

		values = append(values, &ast.EnumValueDefinition{
			Description: description,
			Name:        name,
			Directives:  directives,
		})

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	return values, nil
}

//	EnumTypeDefinition ::
//		Description? enum Name Directives[Const]? EnumValuesDefinition?
func (p *parser) parseEnumTypeDefinition(description ast.StringValue) (*ast.EnumTypeDefinition, error) {
	keywordToken, err := p.expectSDLKeyword("enum")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	values, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	definition := &ast.EnumTypeDefinition{
		Description: description,
		Keyword:     keywordToken,
		Name:        name,
		Values:      values,
	}
	definition.Directives = directives
	return definition, nil
}

//	EnumTypeExtension ::
//		extend enum Name Directives[Const]? EnumValuesDefinition
//		extend enum Name Directives[Const]
func (p *parser) parseEnumTypeExtension(extendToken *token.Token) (*ast.EnumTypeExtension, error) {
	if _, err := p.expectSDLKeyword("enum"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	values, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(values) == 0 {
		return nil, p.unexpected()
	}

	extension := &ast.EnumTypeExtension{
		Name:   name,
		Values: values,
	}
	extension.Keyword = extendToken
	extension.Directives = directives
	return extension, nil
}

//	InputFieldsDefinition ::
//		{ InputValueDefinition+ }
func (p *parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil
	}
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	fields := make([]*ast.InputValueDefinition, 0, 1)
	for {
		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}

	return fields, nil
}

//	InputObjectTypeDefinition ::
//		Description? input Name Directives[Const]? InputFieldsDefinition?
func (p *parser) parseInputObjectTypeDefinition(description ast.StringValue) (*ast.InputObjectTypeDefinition, error) {
	keywordToken, err := p.expectSDLKeyword("input")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	definition := &ast.InputObjectTypeDefinition{
		Description: description,
		Keyword:     keywordToken,
		Name:        name,
		Fields:      fields,
	}
	definition.Directives = directives
	return definition, nil
}

//	InputObjectTypeExtension ::
//		extend input Name Directives[Const]? InputFieldsDefinition
//		extend input Name Directives[Const]
func (p *parser) parseInputObjectTypeExtension(extendToken *token.Token) (*ast.InputObjectTypeExtension, error) {
	if _, err := p.expectSDLKeyword("input"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalConstDirectives()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	extension := &ast.InputObjectTypeExtension{
		Name:   name,
		Fields: fields,
	}
	extension.Keyword = extendToken
	extension.Directives = directives
	return extension, nil
}

//	DirectiveDefinition ::
//		Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
//
//	DirectiveLocations ::
//		|? DirectiveLocation
//		DirectiveLocations | DirectiveLocation
func (p *parser) parseDirectiveDefinition(description ast.StringValue) (*ast.DirectiveDefinition, error) {
	keywordToken, err := p.expectSDLKeyword("directive")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}

	repeatable, err := p.skipKeyword("repeatable")
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}

	// A leading pipe is optional.
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var locations []ast.Name
	for {
		locationToken := p.peek()
		location, err := p.parseName()
		if err != nil {
			return nil, err
		}

		if !ast.IsValidDirectiveLocation(locationToken.Value) {
			return nil, graphql.NewSyntaxError(p.lexer.Source(), locationToken.Location,
				fmt.Sprintf("Unexpected %s", locationToken.Description()))
		}
		locations = append(locations, location)

		hasMore, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		}
		if !hasMore {
			break
		}
	}

	return &ast.DirectiveDefinition{
		Description: description,
		Keyword:     keywordToken,
		Name:        name,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   locations,
	}, nil
}
