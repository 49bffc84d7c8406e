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

package schema_test

import (
	"fmt"

	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/graphql/parser"
	"github.com/KoichiKiyokawa/nitrogql/graphql/token"
	"github.com/KoichiKiyokawa/nitrogql/internal/testutil"
	"github.com/KoichiKiyokawa/nitrogql/internal/util"
	"github.com/KoichiKiyokawa/nitrogql/schema"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parseSchemaDocument(name string, body string) ast.Document {
	document, err := parser.ParseSchema(token.NewSource(&token.SourceConfig{
		Name: name,
		Body: token.SourceBody([]byte(util.Dedent(body))),
	}))
	Expect(err).ShouldNot(HaveOccurred())
	return document
}

func buildSchema(bodies ...string) (*schema.Schema, graphql.Errors) {
	documents := make([]ast.Document, len(bodies))
	for i, body := range bodies {
		documents[i] = parseSchemaDocument(fmt.Sprintf("schema-%d.graphql", i), body)
	}
	return schema.Build(documents)
}

func mustBuildSchema(bodies ...string) *schema.Schema {
	s, errs := buildSchema(bodies...)
	Expect(errs.HaveOccurred()).Should(BeFalse(), "unexpected errors: %v", errs.Errors)
	Expect(s).ShouldNot(BeNil())
	return s
}

var _ = Describe("Build", func() {
	It("builds a schema with object, interface, union, enum and input types", func() {
		s := mustBuildSchema(`
      interface Node {
        id: ID!
      }

      type User implements Node {
        id: ID!
        name: String
        friends(first: Int = 10): [User!]
      }

      type Droid implements Node {
        id: ID!
        primaryFunction: String
      }

      union Actor = User | Droid

      enum Episode {
        NEWHOPE
        EMPIRE
      }

      input ReviewInput {
        stars: Int!
        commentary: String
      }

      type Query {
        node(id: ID!): Node
        actor: Actor
      }`)

		Expect(s.Type("User")).ShouldNot(BeNil())
		user := s.Type("User").(*schema.ObjectType)
		Expect(user.Kind()).Should(Equal(schema.TypeKindObject))
		Expect(user.Interfaces()).Should(Equal([]string{"Node"}))
		Expect(user.Field("name").Type()).Should(Equal(schema.NamedTypeRef{Name: "String"}))
		Expect(user.Field("friends").Type()).Should(Equal(schema.ListTypeRef{
			ItemType: schema.NonNullTypeRef{InnerType: schema.NamedTypeRef{Name: "User"}},
		}))

		first := user.Field("friends").Arg("first")
		Expect(first).ShouldNot(BeNil())
		Expect(first.HasDefaultValue()).Should(BeTrue())

		actor := s.Type("Actor").(*schema.UnionType)
		Expect(actor.Members()).Should(Equal([]string{"User", "Droid"}))

		episode := s.Type("Episode").(*schema.EnumType)
		Expect(episode.Value("NEWHOPE")).ShouldNot(BeNil())
		Expect(episode.Value("JEDI")).Should(BeNil())

		review := s.Type("ReviewInput").(*schema.InputObjectType)
		Expect(review.Field("stars").Type()).Should(Equal(schema.NonNullTypeRef{
			InnerType: schema.NamedTypeRef{Name: "Int"},
		}))

		// Built-in scalars resolve by lookup but are not listed.
		Expect(s.Type("Int")).ShouldNot(BeNil())
		for _, t := range s.Types() {
			Expect(t.BuiltIn()).Should(BeFalse())
		}
	})

	It("keeps source document order in type and field lists", func() {
		s := mustBuildSchema(`
      type Zebra { a: String }
      type Apple { b: String }
      type Query { zebra: Zebra, apple: Apple }`)

		names := make([]string, 0, 3)
		for _, t := range s.Types() {
			names = append(names, t.Name())
		}
		Expect(names).Should(Equal([]string{"Zebra", "Apple", "Query"}))
	})

	It("serves root operations from conventionally named types without a schema definition", func() {
		s := mustBuildSchema(`
      type Query { a: String }
      type Mutation { b: String }`)

		Expect(s.RootOperationType(ast.OperationTypeQuery).Name()).Should(Equal("Query"))
		Expect(s.RootOperationType(ast.OperationTypeMutation).Name()).Should(Equal("Mutation"))
		Expect(s.RootOperationType(ast.OperationTypeSubscription)).Should(BeNil())
	})

	It("serves root operations from an explicit schema definition", func() {
		s := mustBuildSchema(`
      schema {
        query: QueryRoot
      }
      type QueryRoot { a: String }
      type Query { unused: String }`)

		Expect(s.RootOperationType(ast.OperationTypeQuery).Name()).Should(Equal("QueryRoot"))
	})

	It("applies type extensions from any document", func() {
		s := mustBuildSchema(`
      type Query { a: String }
      enum Episode { NEWHOPE }`,
			`
      extend type Query { b: Int }
      extend enum Episode { EMPIRE }`)

		query := s.Type("Query").(*schema.ObjectType)
		Expect(query.Field("b")).ShouldNot(BeNil())
		Expect(query.Fields()).Should(HaveLen(2))

		episode := s.Type("Episode").(*schema.EnumType)
		Expect(episode.Values()).Should(HaveLen(2))
	})

	It("records interface implementations for possible type lookup", func() {
		s := mustBuildSchema(`
      interface Node { id: ID! }
      type User implements Node { id: ID! }
      type Droid implements Node { id: ID! }
      union Actor = User
      type Query { node: Node }`)

		node := s.Type("Node")
		Expect(s.PossibleTypes(node)).Should(Equal([]string{"User", "Droid"}))
		Expect(s.TypesOverlap(node, s.Type("Actor"))).Should(BeTrue())
		Expect(s.TypesOverlap(s.Type("Droid"), s.Type("Actor"))).Should(BeFalse())
	})

	It("reads the deprecated directive on fields and enum values", func() {
		s := mustBuildSchema(`
      type Query {
        old: String @deprecated(reason: "Use new.")
        new: String
      }
      enum Episode {
        NEWHOPE @deprecated
      }`)

		old := s.Type("Query").(*schema.ObjectType).Field("old")
		Expect(old.Deprecated()).Should(BeTrue())
		Expect(old.DeprecationReason()).Should(Equal("Use new."))

		newHope := s.Type("Episode").(*schema.EnumType).Value("NEWHOPE")
		Expect(newHope.Deprecated()).Should(BeTrue())
		Expect(newHope.DeprecationReason()).Should(Equal(schema.DefaultDeprecationReason))
	})

	It("builds user-defined directives and keeps the built-in ones", func() {
		s := mustBuildSchema(`
      directive @auth(role: String!) repeatable on FIELD_DEFINITION
      type Query { a: String @auth(role: "admin") }`)

		auth := s.Directive("auth")
		Expect(auth).ShouldNot(BeNil())
		Expect(auth.Repeatable()).Should(BeTrue())
		Expect(auth.Arg("role")).ShouldNot(BeNil())
		Expect(auth.HasLocation(ast.DirectiveLocationFieldDefinition)).Should(BeTrue())
		Expect(auth.HasLocation(ast.DirectiveLocationField)).Should(BeFalse())

		Expect(s.Directive("skip")).ShouldNot(BeNil())
		Expect(s.Directive("include")).ShouldNot(BeNil())
		Expect(s.Directive("deprecated")).ShouldNot(BeNil())
		Expect(s.Directives()).Should(HaveLen(1))
	})

	Describe("diagnostics", func() {
		It("reports a duplicate type name across two documents with both spans", func() {
			s, errs := buildSchema(
				"type User { id: ID }\ntype Query { user: User }",
				"type User { name: String }")
			Expect(s).Should(BeNil())
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`There can be only one type named "User".`),
				testutil.KindIs(graphql.ErrKindSchemaBuild),
				testutil.LocationsConsistOf([]graphql.ErrorLocation{
					{Line: 1, Column: 6},
					{Line: 1, Column: 6},
				}),
			)))
		})

		It("reports an extension whose base type is not defined", func() {
			_, errs := buildSchema(`
        type Query { a: String }
        extend type User { name: String }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Cannot extend type "User" because it is not defined.`),
				testutil.KindIs(graphql.ErrKindSchemaBuild),
			)))
		})

		It("reports an extension whose kind does not match its base", func() {
			_, errs := buildSchema(`
        enum Color { RED }
        extend type Color { a: String }
        type Query { color: Color }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Cannot extend non-object type "Color".`),
			)))
		})

		It("reports unknown types referenced by fields, arguments and unions", func() {
			_, errs := buildSchema(`
        type Query {
          a: Missing
          b(arg: AlsoMissing): String
        }
        union U = Query | Nope`)
			Expect(errs.HaveOccurred()).Should(BeTrue())
			messages := make([]string, 0, 3)
			for _, err := range errs.Errors {
				messages = append(messages, err.Message)
			}
			Expect(messages).Should(ConsistOf(
				`Unknown type "Missing".`,
				`Unknown type "AlsoMissing".`,
				`Unknown type "Nope".`,
			))
		})

		It("rejects an input object used as a field type", func() {
			_, errs := buildSchema(`
        input In { a: String }
        type Query { bad: In }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`The type of "Query.bad" must be Output Type but got: "In".`),
			)))
		})

		It("rejects an object used as an argument type", func() {
			_, errs := buildSchema(`
        type Query { bad(arg: Query): String }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`The type of "Query.bad(arg:)" must be Input Type but got: "Query".`),
			)))
		})

		It("rejects names reserved by introspection", func() {
			_, errs := buildSchema(`
        type Query { __bad: String }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Name "__bad" must not begin with "__", which is reserved by introspection.`),
			)))
		})

		It("rejects duplicate fields merged from an extension", func() {
			_, errs := buildSchema(`
        type Query { a: String }
        extend type Query { a: Int }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Field "Query.a" can only be defined once.`),
				testutil.LocationsConsistOf([]graphql.ErrorLocation{
					{Line: 1, Column: 14},
					{Line: 2, Column: 21},
				}),
			)))
		})

		It("rejects unknown and misplaced directives in schema documents", func() {
			_, errs := buildSchema(`
        type Query { a: String @nope }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Unknown directive "@nope".`),
			)))

			_, errs = buildSchema(`
        type Query { a: String @skip(if: true) }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Directive "@skip" may not be used on FIELD_DEFINITION.`),
			)))
		})

		It("rejects repeating a non-repeatable directive at one location", func() {
			_, errs := buildSchema(`
        directive @once on OBJECT
        type Query @once @once { a: String }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`The directive "@once" can only be used once at this location.`),
			)))
		})

		It("rejects redefining a built-in type or directive", func() {
			_, errs := buildSchema("scalar Int\ntype Query { a: String }")
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Type "Int" cannot be defined because it is a built-in type.`),
			)))

			_, errs = buildSchema(
				"directive @skip(if: Boolean!) on FIELD\ntype Query { a: String }")
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Directive "@skip" cannot be defined because it is a built-in directive.`),
			)))
		})

		It("rejects a non-object root operation type", func() {
			_, errs := buildSchema(`
        schema { query: Color }
        enum Color { RED }`)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Query root type must be Object type, it cannot be "Color".`),
			)))
		})
	})
})
