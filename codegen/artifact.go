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

package codegen

import (
	"strings"

	"github.com/KoichiKiyokawa/nitrogql/jsonwriter"
)

// Target selects which output an artifact carries.
type Target uint8

// Enumeration of Target
const (
	// TargetSchema emits one declaration per schema type.
	TargetSchema Target = iota

	// TargetOperations emits result and variable declarations per operation.
	TargetOperations
)

func (target Target) String() string {
	if target == TargetSchema {
		return "schema"
	}
	return "operations"
}

// DeclarationKind classifies a generated declaration.
type DeclarationKind string

// Enumeration of DeclarationKind
const (
	DeclarationKindScalar    DeclarationKind = "scalar"
	DeclarationKindObject    DeclarationKind = "object"
	DeclarationKindInterface DeclarationKind = "interface"
	DeclarationKindUnion     DeclarationKind = "union"
	DeclarationKindEnum      DeclarationKind = "enum"
	DeclarationKindInput     DeclarationKind = "input"
	DeclarationKindResult    DeclarationKind = "result"
	DeclarationKindVariables DeclarationKind = "variables"
	DeclarationKindDocument  DeclarationKind = "document"
)

// Declaration is one typed declaration in a generated artifact.
type Declaration struct {
	// Name of the declared binding.
	Name string

	// Kind of the declaration.
	Kind DeclarationKind

	// Code is the TypeScript-shaped rendering of the declaration.
	Code string

	// Source is the printed operation document for document declarations; empty otherwise.
	Source string
}

// Import names the schema types an artifact pulls in from an upstream package instead of
// re-declaring them.
type Import struct {
	// Specifier is the module specifier of the upstream package.
	Specifier string

	// Names are the imported type names in first-use order.
	Names []string
}

// GeneratedArtifact is one emitted output for a package. It is write-once: Generate fills it and no
// later stage mutates it. Declarations appear in source order so that repeated runs over unchanged
// input render byte-identical output.
type GeneratedArtifact struct {
	// Target tells whether this artifact carries schema type declarations or operation declarations.
	Target Target

	// PackageID identifies the package the artifact was generated for.
	PackageID string

	// Imports lists the external references the artifact requires.
	Imports []*Import

	// Declarations in source order.
	Declarations []*Declaration
}

const renderHeader = "/* Generated file. Do not edit. */"

// Render returns the artifact as TypeScript-shaped source text.
func (artifact *GeneratedArtifact) Render() string {
	var buf strings.Builder
	buf.WriteString(renderHeader)
	buf.WriteString("\n")

	for _, imported := range artifact.Imports {
		buf.WriteString("\nimport type { ")
		buf.WriteString(strings.Join(imported.Names, ", "))
		buf.WriteString(` } from "`)
		buf.WriteString(imported.Specifier)
		buf.WriteString(`";`)
		buf.WriteString("\n")
	}

	for _, declaration := range artifact.Declarations {
		buf.WriteString("\n")
		buf.WriteString(declaration.Code)
		buf.WriteString("\n")
	}

	return buf.String()
}

var _ jsonwriter.ValueMarshaler = (*GeneratedArtifact)(nil)

// MarshalJSONTo writes the canonical JSON encoding of the artifact. Field order is fixed so the
// encoding is as diff-stable as the rendered text.
func (artifact *GeneratedArtifact) MarshalJSONTo(stream *jsonwriter.Stream) error {
	stream.WriteObjectStart()

	stream.WriteObjectField("target")
	stream.WriteString(artifact.Target.String())

	stream.WriteMore()
	stream.WriteObjectField("package")
	stream.WriteString(artifact.PackageID)

	stream.WriteMore()
	stream.WriteObjectField("imports")
	if len(artifact.Imports) == 0 {
		stream.WriteEmptyArray()
	} else {
		stream.WriteArrayStart()
		for i, imported := range artifact.Imports {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("specifier")
			stream.WriteString(imported.Specifier)
			stream.WriteMore()
			stream.WriteObjectField("names")
			if len(imported.Names) == 0 {
				stream.WriteEmptyArray()
			} else {
				stream.WriteArrayStart()
				for j, name := range imported.Names {
					if j > 0 {
						stream.WriteMore()
					}
					stream.WriteString(name)
				}
				stream.WriteArrayEnd()
			}
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}

	stream.WriteMore()
	stream.WriteObjectField("declarations")
	if len(artifact.Declarations) == 0 {
		stream.WriteEmptyArray()
	} else {
		stream.WriteArrayStart()
		for i, declaration := range artifact.Declarations {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("name")
			stream.WriteString(declaration.Name)
			stream.WriteMore()
			stream.WriteObjectField("kind")
			stream.WriteString(string(declaration.Kind))
			stream.WriteMore()
			stream.WriteObjectField("code")
			stream.WriteString(declaration.Code)
			if len(declaration.Source) > 0 {
				stream.WriteMore()
				stream.WriteObjectField("source")
				stream.WriteString(declaration.Source)
			}
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}

	stream.WriteObjectEnd()
	return stream.Error()
}

// MarshalJSON adapts MarshalJSONTo to the encoding/json Marshaler API.
func (artifact *GeneratedArtifact) MarshalJSON() ([]byte, error) {
	return jsonwriter.Marshal(artifact)
}
