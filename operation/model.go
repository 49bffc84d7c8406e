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

// Package operation aggregates the executable definitions of a package's operation documents into
// one model, before any type checking.
package operation

import (
	"fmt"

	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
)

// Model holds every operation and fragment defined across the operation documents of one package,
// in source document order. Names are unique within the model; fragments are shared by all
// operations of the package.
type Model struct {
	operations  []*ast.OperationDefinition
	fragments   []*ast.FragmentDefinition
	fragmentMap map[string]*ast.FragmentDefinition
}

// BuildModel aggregates the executable definitions of the given documents. A duplicate operation
// name, a duplicate fragment name or an anonymous operation next to other operations is fatal to
// the package.
func BuildModel(documents []ast.Document) (*Model, graphql.Errors) {
	var errs graphql.Errors
	model := &Model{
		fragmentMap: map[string]*ast.FragmentDefinition{},
	}
	operationNames := map[string]*ast.OperationDefinition{}

	var anonymous []*ast.OperationDefinition
	for _, document := range documents {
		for _, definition := range document.Definitions {
			switch definition := definition.(type) {
			case *ast.OperationDefinition:
				if definition.Name.IsNil() {
					anonymous = append(anonymous, definition)
				} else {
					name := definition.Name.Value()
					if prev, exists := operationNames[name]; exists {
						errs.Emplace(
							fmt.Sprintf("There can be only one operation named %q.", name),
							[]ast.Node{prev.Name, definition.Name},
							graphql.ErrKindType)
						continue
					}
					operationNames[name] = definition
				}
				model.operations = append(model.operations, definition)

			case *ast.FragmentDefinition:
				name := definition.Name.Value()
				if prev, exists := model.fragmentMap[name]; exists {
					errs.Emplace(
						fmt.Sprintf("There can be only one fragment named %q.", name),
						[]ast.Node{prev.Name, definition.Name},
						graphql.ErrKindType)
					continue
				}
				model.fragmentMap[name] = definition
				model.fragments = append(model.fragments, definition)

			default:
				errs.Emplace(
					"Operation documents must only contain executable definitions.",
					[]ast.Node{definition},
					graphql.ErrKindType)
			}
		}
	}

	if len(model.operations) > 1 {
		for _, definition := range anonymous {
			errs.Emplace(
				"This anonymous operation must be the only defined operation.",
				[]ast.Node{definition},
				graphql.ErrKindType)
		}
	}

	if errs.HaveFatal() {
		return nil, errs
	}
	return model, errs
}

// Operations lists every operation in source document order.
func (model *Model) Operations() []*ast.OperationDefinition { return model.operations }

// Fragments lists every fragment in source document order.
func (model *Model) Fragments() []*ast.FragmentDefinition { return model.fragments }

// Fragment looks up a fragment by name; nil if the model defines no such fragment.
func (model *Model) Fragment(name string) *ast.FragmentDefinition {
	return model.fragmentMap[name]
}
