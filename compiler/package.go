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

package compiler

import (
	"github.com/KoichiKiyokawa/nitrogql/codegen"
	"github.com/KoichiKiyokawa/nitrogql/graphql"
)

// Document is one already-read source text handed to the compiler. Reading files is the caller's
// responsibility; the compiler core performs no I/O.
type Document struct {
	// Name identifies the source in diagnostics, typically a file path.
	Name string

	// Body is the raw source text.
	Body string
}

// PackageConfig describes one compilation unit of a project.
type PackageConfig struct {
	// ID uniquely identifies the package within the project.
	ID string

	// SchemaDocuments are the schema sources the package owns. Must be empty when SchemaPackage is
	// set.
	SchemaDocuments []Document

	// OperationDocuments are the operation sources the package owns.
	OperationDocuments []Document

	// SchemaPackage is the ID of the package supplying this package's schema types. When set the
	// package owns no schema of its own and its operations check against the referenced package's
	// schema.
	SchemaPackage string

	// SchemaSpecifier is the module specifier through which other packages import this package's
	// generated schema types.
	SchemaSpecifier string

	// Targets restricts which artifacts are kept for this package; nil keeps every artifact the
	// generator produces.
	Targets []codegen.Target
}

// Result is the per-package outcome of a compilation run. A package with only warnings still
// succeeds; a run as a whole succeeds only if every package did.
type Result struct {
	// PackageID identifies the package the result belongs to.
	PackageID string

	// Success is true when the package produced no fatal diagnostics.
	Success bool

	// Diagnostics accumulated by every stage of the package's pipeline.
	Diagnostics graphql.Errors

	// Artifacts generated for the package; nil when compilation failed.
	Artifacts []*codegen.GeneratedArtifact
}
