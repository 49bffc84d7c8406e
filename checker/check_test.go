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

package checker_test

import (
	"fmt"

	"github.com/KoichiKiyokawa/nitrogql/checker"
	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/graphql/parser"
	"github.com/KoichiKiyokawa/nitrogql/graphql/token"
	"github.com/KoichiKiyokawa/nitrogql/internal/testutil"
	"github.com/KoichiKiyokawa/nitrogql/internal/util"
	"github.com/KoichiKiyokawa/nitrogql/operation"
	"github.com/KoichiKiyokawa/nitrogql/schema"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const testSchemaSDL = `
  type Query {
    user(id: ID): User
    node(id: ID!): Node
    actor: Actor
    colored(color: Color): User
    search(filter: SearchFilter): [User!]
    top(count: Int!): [User!]
    page(limit: Int! = 20): [User!]
  }

  interface Node {
    id: ID!
  }

  type User implements Node {
    id: ID!
    name: String
    nickname: String @deprecated(reason: "Use name.")
    friends(first: Int): [User!]
  }

  type Droid implements Node {
    id: ID!
    primaryFunction: String
  }

  union Actor = User | Droid

  enum Color {
    RED
    GREEN
    BLUE
  }

  input SearchFilter {
    name: String!
    limit: Int = 10
  }
`

func buildTestSchema() *schema.Schema {
	document, err := parser.ParseSchema(token.NewSource(&token.SourceConfig{
		Name: "schema.graphql",
		Body: token.SourceBody([]byte(util.Dedent(testSchemaSDL))),
	}))
	Expect(err).ShouldNot(HaveOccurred())

	s, errs := schema.Build([]ast.Document{document})
	Expect(errs.HaveOccurred()).Should(BeFalse(), "unexpected errors: %v", errs.Errors)
	return s
}

func buildOperationModel(bodies ...string) *operation.Model {
	documents := make([]ast.Document, len(bodies))
	for i, body := range bodies {
		document, err := parser.Parse(token.NewSource(&token.SourceConfig{
			Name: fmt.Sprintf("operation-%d.graphql", i),
			Body: token.SourceBody([]byte(util.Dedent(body))),
		}), parser.ParseOptions{})
		Expect(err).ShouldNot(HaveOccurred())
		documents[i] = document
	}

	model, errs := operation.BuildModel(documents)
	Expect(errs.HaveOccurred()).Should(BeFalse(), "unexpected errors: %v", errs.Errors)
	return model
}

func check(bodies ...string) ([]*checker.BoundOperation, graphql.Errors) {
	return checker.Check(buildTestSchema(), buildOperationModel(bodies...), checker.Options{})
}

func mustCheck(bodies ...string) []*checker.BoundOperation {
	operations, errs := check(bodies...)
	Expect(errs.HaveOccurred()).Should(BeFalse(), "unexpected errors: %v", errs.Errors)
	Expect(operations).ShouldNot(BeNil())
	return operations
}

var _ = Describe("Check", func() {
	Describe("binding", func() {
		It("binds fields, arguments and variables of an operation", func() {
			operations := mustCheck(`
        query GetUser($id: ID) {
          user(id: $id) {
            id
            displayName: name
          }
        }
      `)
			Expect(operations).Should(HaveLen(1))

			op := operations[0]
			Expect(op.Name).Should(Equal("GetUser"))
			Expect(op.OperationType).Should(Equal(ast.OperationTypeQuery))
			Expect(op.RootType.Name()).Should(Equal("Query"))

			Expect(op.Variables).Should(HaveLen(1))
			Expect(op.Variables[0].Name).Should(Equal("id"))
			Expect(op.Variables[0].Type.String()).Should(Equal("ID"))
			Expect(op.Variables[0].HasDefault()).Should(BeFalse())

			Expect(op.SelectionSet).Should(HaveLen(1))
			userField := op.SelectionSet[0].(*checker.BoundField)
			Expect(userField.Definition).ShouldNot(BeNil())
			Expect(userField.Definition.Name()).Should(Equal("user"))
			Expect(userField.Type.String()).Should(Equal("User"))
			Expect(userField.ParentType.Name()).Should(Equal("Query"))
			Expect(userField.Arguments).Should(HaveLen(1))
			Expect(userField.Arguments[0].Definition.Name()).Should(Equal("id"))

			Expect(userField.SelectionSet).Should(HaveLen(2))
			nameField := userField.SelectionSet[1].(*checker.BoundField)
			Expect(nameField.ResponseKey()).Should(Equal("displayName"))
			Expect(nameField.Definition.Name()).Should(Equal("name"))
		})

		It("binds __typename on any composite type", func() {
			operations := mustCheck(`
        {
          actor {
            __typename
          }
        }
      `)
			actorField := operations[0].SelectionSet[0].(*checker.BoundField)
			typenameField := actorField.SelectionSet[0].(*checker.BoundField)
			Expect(typenameField.Definition).Should(Equal(schema.TypenameMetaField()))
			Expect(typenameField.Type.String()).Should(Equal("String!"))
		})

		It("links fragment spreads to bound fragments in first-use order", func() {
			operations := mustCheck(`
        query Actors {
          actor {
            ...droidParts
            ...userParts
          }
        }

        fragment userParts on User {
          name
        }

        fragment droidParts on Droid {
          primaryFunction
        }
      `)
			op := operations[0]
			Expect(op.Fragments).Should(HaveLen(2))
			Expect(op.Fragments[0].Name).Should(Equal("droidParts"))
			Expect(op.Fragments[1].Name).Should(Equal("userParts"))
			Expect(op.Fragments[0].TypeCondition.Name()).Should(Equal("Droid"))

			actorField := op.SelectionSet[0].(*checker.BoundField)
			spread := actorField.SelectionSet[0].(*checker.BoundFragmentSpread)
			Expect(spread.Fragment).Should(Equal(op.Fragments[0]))
		})

		It("binds inline fragments against their type condition", func() {
			operations := mustCheck(`
        {
          node(id: "1") {
            id
            ... on User {
              name
            }
          }
        }
      `)
			nodeField := operations[0].SelectionSet[0].(*checker.BoundField)
			inline := nodeField.SelectionSet[1].(*checker.BoundInlineFragment)
			Expect(inline.TypeCondition.Name()).Should(Equal("User"))
			nameField := inline.SelectionSet[0].(*checker.BoundField)
			Expect(nameField.Definition.Name()).Should(Equal("name"))
		})
	})

	Describe("fields", func() {
		It("reports exactly one error for a field not defined on its type", func() {
			operations, errs := check(`
        {
          user(id: 4) {
            profile {
              bio
            }
          }
        }
      `)
			Expect(operations).Should(BeNil())
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Cannot query field "profile" on type "User".`),
				testutil.KindIs(graphql.ErrKindType),
			)))
		})

		It("suggests similarly named fields", func() {
			_, errs := check(`
        {
          user(id: 4) {
            nam
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Cannot query field "nam" on type "User". Did you mean "name"?`),
			)))
		})

		It("suggests inline fragments for fields on possible types of an abstract type", func() {
			_, errs := check(`
        {
          actor {
            name
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Cannot query field "name" on type "Actor". Did you mean to use an inline fragment on "User"?`),
			)))
		})

		It("rejects a sub-selection on a leaf field", func() {
			_, errs := check(`
        {
          user(id: 4) {
            name {
              length
            }
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Field "name" must not have a selection since type "String" has no subfields.`),
			)))
		})

		It("requires a sub-selection on a composite field", func() {
			_, errs := check(`
        {
          user(id: 4)
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Field "user" of type "User" must have a selection of subfields. Did you mean "user { ... }"?`),
			)))
		})

		It("warns when a deprecated field is selected", func() {
			operations, errs := check(`
        {
          user(id: 4) {
            nickname
          }
        }
      `)
			Expect(operations).ShouldNot(BeNil())
			Expect(errs.HaveFatal()).Should(BeFalse())
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`The field "User.nickname" is deprecated. Use name.`),
				testutil.SeverityIs(graphql.SeverityWarning),
			)))
		})
	})

	Describe("arguments", func() {
		It("reports an unknown argument with a suggestion", func() {
			_, errs := check(`
        {
          user(idd: 4) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Unknown argument "idd" on field "user" of type "Query". Did you mean "id"?`),
			)))
		})

		It("reports a missing required argument", func() {
			_, errs := check(`
        {
          node {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Field "node" argument "id" of type "ID!" is required, but it was not provided.`),
			)))
		})

		It("reports a duplicate argument", func() {
			_, errs := check(`
        {
          user(id: 1, id: 2) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`There can be only one argument named "id".`),
			)))
		})
	})

	Describe("values", func() {
		It("rejects a literal of the wrong type", func() {
			_, errs := check(`
        {
          user(id: 4) {
            friends(first: "a") {
              id
            }
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Expected type Int, found "a".`),
			)))
		})

		It("rejects null for a non-null argument", func() {
			_, errs := check(`
        {
          top(count: null) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Expected type Int!, found null.`),
			)))
		})

		It("suggests enum values for a misspelled enum literal", func() {
			_, errs := check(`
        {
          colored(color: GREE) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Expected type Color, found GREE. Did you mean the enum value GREEN?`),
			)))
		})

		It("checks input object fields", func() {
			_, errs := check(`
        {
          search(filter: { nam: "x" }) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual(
						`Field "nam" is not defined by type SearchFilter. Did you mean "name"?`),
				),
				testutil.MatchGraphQLError(
					testutil.MessageEqual(
						`Field SearchFilter.name of required type String! was not provided.`),
				),
			))
		})
	})

	Describe("variables", func() {
		It("reports an undefined variable naming the operation", func() {
			_, errs := check(`
        query GetUser {
          user(id: $uid) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Variable "$uid" is not defined by operation "GetUser".`),
			)))
		})

		It("reports an undefined variable in an anonymous operation", func() {
			_, errs := check(`
        {
          user(id: $uid) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Variable "$uid" is not defined.`),
			)))
		})

		It("warns about an unused variable", func() {
			operations, errs := check(`
        query GetUser($first: Int) {
          user(id: 4) {
            id
          }
        }
      `)
			Expect(operations).ShouldNot(BeNil())
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Variable "$first" is never used in operation "GetUser".`),
				testutil.SeverityIs(graphql.SeverityWarning),
			)))
		})

		It("counts usages inside spread fragments", func() {
			mustCheck(`
        query Friends($first: Int) {
          user(id: 4) {
            ...friendList
          }
        }

        fragment friendList on User {
          friends(first: $first) {
            id
          }
        }
      `)
		})

		It("reports a duplicate variable", func() {
			_, errs := check(`
        query GetUser($id: ID, $id: ID) {
          user(id: $id) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`There can be only one variable named "$id".`),
			)))
		})

		It("rejects a variable of an output type", func() {
			_, errs := check(`
        query GetUser($u: User) {
          user(id: 4) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual(`Variable "$u" cannot be non-input type "User".`),
					testutil.SeverityIs(graphql.SeverityError),
				),
				testutil.MatchGraphQLError(
					testutil.MessageEqual(`Variable "$u" is never used in operation "GetUser".`),
					testutil.SeverityIs(graphql.SeverityWarning),
				),
			))
		})

		It("rejects a nullable variable at a non-null position", func() {
			_, errs := check(`
        query Top($count: Int) {
          top(count: $count) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Variable "$count" of type "Int" used in position expecting type "Int!".`),
				testutil.KindIs(graphql.ErrKindType),
			)))
		})

		It("allows a nullable variable at a non-null position when it has a default", func() {
			mustCheck(`
        query Top($count: Int = 3) {
          top(count: $count) {
            id
          }
        }
      `)
		})

		It("allows a nullable variable at a non-null position with a location default", func() {
			mustCheck(`
        query Page($limit: Int) {
          page(limit: $limit) {
            id
          }
        }
      `)
		})

		It("allows a non-null variable at a nullable position", func() {
			mustCheck(`
        query GetUser($id: ID!) {
          user(id: $id) {
            id
          }
        }
      `)
		})
	})

	Describe("fragments", func() {
		It("reports an unknown fragment", func() {
			_, errs := check(`
        {
          user(id: 4) {
            ...missingParts
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Unknown fragment "missingParts".`),
			)))
		})

		It("warns about an unused fragment", func() {
			operations, errs := check(`
        {
          user(id: 4) {
            id
          }
        }

        fragment extraParts on User {
          name
        }
      `)
			Expect(operations).ShouldNot(BeNil())
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Fragment "extraParts" is never used.`),
				testutil.SeverityIs(graphql.SeverityWarning),
			)))
		})

		It("reports a fragment spreading itself", func() {
			operations, errs := check(`
        {
          user(id: 4) {
            ...userParts
          }
        }

        fragment userParts on User {
          id
          ...userParts
        }
      `)
			Expect(operations).Should(BeNil())
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Cannot spread fragment "userParts" within itself.`),
				testutil.KindIs(graphql.ErrKindType),
			)))
		})

		It("reports a spread cycle across fragments", func() {
			operations, errs := check(`
        {
          user(id: 4) {
            ...partsA
          }
        }

        fragment partsA on User {
          ...partsB
        }

        fragment partsB on User {
          ...partsA
        }
      `)
			Expect(operations).Should(BeNil())
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Cannot spread fragment "partsA" within itself via partsB.`),
			)))
		})

		It("rejects a spread whose type can never apply", func() {
			_, errs := check(`
        {
          user(id: 4) {
            ...droidParts
          }
        }

        fragment droidParts on Droid {
          primaryFunction
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Fragment "droidParts" cannot be spread here as objects of type "User" can never be of type "Droid".`),
			)))
		})

		It("rejects an inline fragment whose type can never apply", func() {
			_, errs := check(`
        {
          user(id: 4) {
            ... on Droid {
              primaryFunction
            }
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Fragment cannot be spread here as objects of type "User" can never be of type "Droid".`),
			)))
		})

		It("reports an unknown type condition", func() {
			_, errs := check(`
        {
          user(id: 4) {
            ...parts
          }
        }

        fragment parts on Userr {
          id
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Unknown type "Userr". Did you mean "User"?`),
			)))
		})
	})

	Describe("directives", func() {
		It("reports an unknown directive", func() {
			_, errs := check(`
        {
          user(id: 4) {
            id @uppercase
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Unknown directive "@uppercase".`),
			)))
		})

		It("reports a misplaced directive", func() {
			_, errs := check(`
        query GetUser @skip(if: true) {
          user(id: 4) {
            id
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Directive "@skip" may not be used on QUERY.`),
			)))
		})

		It("reports a missing required directive argument", func() {
			_, errs := check(`
        {
          user(id: 4) {
            id @skip
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(
					`Directive "@skip" argument "if" of type "Boolean!" is required, but it was not provided.`),
			)))
		})

		It("rejects repeating a non-repeatable directive", func() {
			_, errs := check(`
        {
          user(id: 4) {
            id @skip(if: true) @skip(if: false)
          }
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`The directive "@skip" can only be used once at this location.`),
			)))
		})
	})

	Describe("operations", func() {
		It("reports an operation type the schema is not configured for", func() {
			_, errs := check(`
        mutation CreateUser {
          createUser
        }
      `)
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Schema is not configured for mutations.`),
			)))
		})
	})

	Describe("Options.WarningsAsErrors", func() {
		It("turns warnings into fatal errors", func() {
			operations, errs := checker.Check(
				buildTestSchema(),
				buildOperationModel(`
          query GetUser($first: Int) {
            user(id: 4) {
              id
            }
          }
        `),
				checker.Options{WarningsAsErrors: true})
			Expect(operations).Should(BeNil())
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(testutil.MatchGraphQLError(
				testutil.MessageEqual(`Variable "$first" is never used in operation "GetUser".`),
				testutil.SeverityIs(graphql.SeverityError),
			)))
		})
	})
})
