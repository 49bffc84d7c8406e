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

package parser_test

import (
	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// graphql-js/src/language/__tests__/schema-parser-test.js
var _ = Describe("Parser: Type System Definitions", func() {
	It("parses simple type", func() {
		document, err := parse(util.Dedent(`
      type Hello {
        world: String
      }`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(document.Definitions).Should(HaveLen(1))

		definition, ok := document.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Name.Value()).Should(Equal("Hello"))
		Expect(definition.Fields).Should(HaveLen(1))
		Expect(definition.Fields[0].Name.Value()).Should(Equal("world"))
		Expect(ast.Print(definition.Fields[0].Type)).Should(Equal("String"))
	})

	It("parses type with description string", func() {
		document, err := parse(util.Dedent(`
      "Description"
      type Hello {
        world: String
      }`))
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Description.Token).ShouldNot(BeNil())
		Expect(definition.Description.Value()).Should(Equal("Description"))
	})

	It("parses type with description multi-line string", func() {
		document, err := parse(util.Dedent(`
      """
      Description
      """
      # Even with comments between them
      type Hello {
        world: String
      }`))
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Description.IsBlockString()).Should(BeTrue())
		Expect(definition.Description.Value()).Should(Equal("Description"))
	})

	It("parses schema definition", func() {
		document, err := parse(util.Dedent(`
      schema {
        query: QueryRoot
        mutation: MutationRoot
      }`))
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.SchemaDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.OperationTypes).Should(HaveLen(2))
		Expect(definition.OperationTypes[0].Operation()).Should(Equal(ast.OperationTypeQuery))
		Expect(definition.OperationTypes[0].Type.Name.Value()).Should(Equal("QueryRoot"))
		Expect(definition.OperationTypes[1].Operation()).Should(Equal(ast.OperationTypeMutation))
	})

	It("parses schema extension", func() {
		document, err := parse("extend schema @foo")
		Expect(err).ShouldNot(HaveOccurred())

		extension, ok := document.Definitions[0].(*ast.SchemaExtension)
		Expect(ok).Should(BeTrue())
		Expect(extension.Directives).Should(HaveLen(1))
		Expect(extension.OperationTypes).Should(BeEmpty())
	})

	It("rejects schema extension without anything", func() {
		expectSyntaxError(
			"extend schema",
			"Unexpected <EOF>",
			graphql.ErrorLocation{Line: 1, Column: 14})
	})

	It("parses type extension", func() {
		document, err := parse(util.Dedent(`
      extend type Hello {
        world: String
      }`))
		Expect(err).ShouldNot(HaveOccurred())

		extension, ok := document.Definitions[0].(*ast.ObjectTypeExtension)
		Expect(ok).Should(BeTrue())
		Expect(extension.Name.Value()).Should(Equal("Hello"))
		Expect(extension.Fields).Should(HaveLen(1))
	})

	It("rejects type extension without anything", func() {
		expectSyntaxError(
			"extend type Hello",
			"Unexpected <EOF>",
			graphql.ErrorLocation{Line: 1, Column: 18})
	})

	It("parses type with implements list", func() {
		document, err := parse("type Hello implements World & Wo { field: String }")
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Interfaces).Should(HaveLen(2))
		Expect(definition.Interfaces[0].Name.Value()).Should(Equal("World"))
		Expect(definition.Interfaces[1].Name.Value()).Should(Equal("Wo"))
	})

	It("parses type with leading ampersand in implements list", func() {
		document, err := parse("type Hello implements & World { field: String }")
		Expect(err).ShouldNot(HaveOccurred())

		definition := document.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(definition.Interfaces).Should(HaveLen(1))
	})

	It("parses single value enum", func() {
		document, err := parse("enum Hello { WORLD }")
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.EnumTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Values).Should(HaveLen(1))
		Expect(definition.Values[0].Name.Value()).Should(Equal("WORLD"))
	})

	It("rejects enum value that looks like a boolean", func() {
		expectSyntaxError(
			"enum Hello { true }",
			`Name "true" is not a valid enum value`,
			graphql.ErrorLocation{Line: 1, Column: 14})
	})

	It("parses interface with field arguments", func() {
		document, err := parse(util.Dedent(`
      interface Hello {
        world(flag: Boolean = true): String
      }`))
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.InterfaceTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Fields).Should(HaveLen(1))

		field := definition.Fields[0]
		Expect(field.Arguments).Should(HaveLen(1))
		Expect(field.Arguments[0].Name.Value()).Should(Equal("flag"))
		Expect(field.Arguments[0].DefaultValue).ShouldNot(BeNil())
		Expect(ast.Print(field.Arguments[0].Type)).Should(Equal("Boolean"))
	})

	It("parses simple union", func() {
		document, err := parse("union Hello = World")
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.UnionTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Members).Should(HaveLen(1))
	})

	It("parses union with two types and leading pipe", func() {
		document, err := parse("union Hello = | Wo | World")
		Expect(err).ShouldNot(HaveOccurred())

		definition := document.Definitions[0].(*ast.UnionTypeDefinition)
		Expect(definition.Members).Should(HaveLen(2))
		Expect(definition.Members[0].Name.Value()).Should(Equal("Wo"))
		Expect(definition.Members[1].Name.Value()).Should(Equal("World"))
	})

	It("rejects union with double pipe", func() {
		expectSyntaxError(
			"union Hello = A || B",
			"Expected Name, found |",
			graphql.ErrorLocation{Line: 1, Column: 18})
	})

	It("parses scalar", func() {
		document, err := parse("scalar Hello")
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.ScalarTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Name.Value()).Should(Equal("Hello"))
	})

	It("parses input object with fields", func() {
		document, err := parse(util.Dedent(`
      input Hello {
        world: String
      }`))
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.InputObjectTypeDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Fields).Should(HaveLen(1))
		Expect(definition.Fields[0].Name.Value()).Should(Equal("world"))
	})

	It("rejects input object with argument field", func() {
		expectSyntaxError(
			"input Hello { world(foo: Int): String }",
			"Expected :, found (",
			graphql.ErrorLocation{Line: 1, Column: 20})
	})

	It("parses directive definition", func() {
		document, err := parse("directive @foo(arg: Int) repeatable on FIELD | OBJECT")
		Expect(err).ShouldNot(HaveOccurred())

		definition, ok := document.Definitions[0].(*ast.DirectiveDefinition)
		Expect(ok).Should(BeTrue())
		Expect(definition.Name.Value()).Should(Equal("foo"))
		Expect(definition.Arguments).Should(HaveLen(1))
		Expect(definition.Repeatable).Should(BeTrue())
		Expect(definition.Locations).Should(HaveLen(2))
		Expect(definition.Locations[0].Value()).Should(Equal("FIELD"))
		Expect(definition.Locations[1].Value()).Should(Equal("OBJECT"))
	})

	It("rejects directive with incorrect location", func() {
		expectSyntaxError(
			"directive @foo on FIELD | INCORRECT_LOCATION",
			`Unexpected Name "INCORRECT_LOCATION"`,
			graphql.ErrorLocation{Line: 1, Column: 27})
	})

	It("parses kitchen sink schema document", func() {
		_, err := parse(util.Dedent(`
      schema {
        query: QueryType
        mutation: MutationType
      }

      """
      This is a description of the ` + "`Foo`" + ` type.
      """
      type Foo implements Bar & Baz {
        one: Type
        two(argument: InputType!): Type
        three(argument: InputType, other: String): Int
        seven(argument: [String] = null): Type
      }

      interface Bar {
        one: Type
        four(argument: String = "string"): String
      }

      union Feed = Story | Article | Advert

      scalar CustomScalar

      enum Site {
        DESKTOP
        MOBILE
      }

      input InputType {
        key: String!
        answer: Int = 42
      }

      extend type Foo @onType
      extend interface Bar { five(argument: [String]): String }
      extend union Feed = Photo | Video
      extend enum Site { VR }
      extend input InputType @onInputObject
      extend scalar CustomScalar @onScalar

      directive @include2(if: Boolean!) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT`))
		Expect(err).ShouldNot(HaveOccurred())
	})
})
