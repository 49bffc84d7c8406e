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

// Package compiler orchestrates the per-package pipeline (parse, schema build, operation model,
// check, generate) across a project's package graph.
//
// Packages compile in parallel. The only cross-package synchronization point is the "schema ready"
// milestone: a package whose schema lives in an upstream package awaits the upstream schema build,
// never its code generation. Diagnostics stay per-package; a failing package neither blocks nor
// corrupts its siblings.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KoichiKiyokawa/nitrogql/checker"
	"github.com/KoichiKiyokawa/nitrogql/codegen"
	"github.com/KoichiKiyokawa/nitrogql/concurrent/future"
	"github.com/KoichiKiyokawa/nitrogql/graphql"
	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/graphql/parser"
	"github.com/KoichiKiyokawa/nitrogql/graphql/token"
	"github.com/KoichiKiyokawa/nitrogql/operation"
	"github.com/KoichiKiyokawa/nitrogql/schema"
)

// Options control a compilation run.
type Options struct {
	// WarningsAsErrors promotes checker warnings to fatal diagnostics.
	WarningsAsErrors bool

	// Concurrency caps the number of packages compiled in parallel; 0 means no limit.
	Concurrency int
}

// Compile runs the pipeline for every configured package and returns one Result per package, in
// configuration order. Cross-package schema references are resolved before any compilation starts;
// reference cycles and ambiguous schema sources surface as resolution diagnostics on the affected
// packages while the rest of the project compiles normally.
func Compile(ctx context.Context, configs []PackageConfig, opts Options) []*Result {
	c := newCompilation(configs, opts)
	c.resolvePackageGraph()
	c.run(ctx)

	results := make([]*Result, len(c.units))
	for i, u := range c.units {
		u.result.Success = !u.result.Diagnostics.HaveFatal()
		results[i] = u.result
	}
	return results
}

// unit is the per-package compilation state.
type unit struct {
	config *PackageConfig
	result *Result

	// schemaReady resolves to the package's effective *schema.Schema once it is available.
	// Downstream packages await it; it is resolved on every path, including failures, so awaits
	// always terminate.
	schemaReady *future.Value

	// excluded is set when graph resolution failed the package before compilation.
	excluded bool
}

var errSchemaUnavailable = errors.New("schema unavailable")

type compilation struct {
	opts    Options
	units   []*unit
	unitMap map[string]*unit
}

func newCompilation(configs []PackageConfig, opts Options) *compilation {
	c := &compilation{
		opts:    opts,
		units:   make([]*unit, len(configs)),
		unitMap: map[string]*unit{},
	}
	for i := range configs {
		config := &configs[i]
		u := &unit{
			config:      config,
			result:      &Result{PackageID: config.ID},
			schemaReady: future.NewValue(),
		}
		c.units[i] = u
		if _, exists := c.unitMap[config.ID]; !exists {
			c.unitMap[config.ID] = u
		}
	}
	return c
}

//===----------------------------------------------------------------------------------------====//
// Package graph resolution
//===----------------------------------------------------------------------------------------====//

// exclude fails a package before compilation with a resolution diagnostic.
func (c *compilation) exclude(u *unit, message string) {
	u.result.Diagnostics.Emplace(message, graphql.ErrKindResolution)
	if !u.excluded {
		u.excluded = true
		u.schemaReady.Set(nil, errSchemaUnavailable)
	}
}

// resolvePackageGraph validates the configured package graph: unique package IDs, an unambiguous
// schema source per package, known reference targets and an acyclic reference graph. Every package
// that fails resolution is excluded before any pipeline starts.
func (c *compilation) resolvePackageGraph() {
	for _, u := range c.units {
		if c.unitMap[u.config.ID] != u {
			c.exclude(u, fmt.Sprintf("There can be only one package with ID %q.", u.config.ID))
			continue
		}

		if len(u.config.SchemaPackage) > 0 {
			if len(u.config.SchemaDocuments) > 0 {
				c.exclude(u, fmt.Sprintf(
					"Package %q declares both schema documents and a schema reference to package %q; the schema source must be unambiguous.",
					u.config.ID, u.config.SchemaPackage))
				continue
			}
			if _, exists := c.unitMap[u.config.SchemaPackage]; !exists {
				c.exclude(u, fmt.Sprintf(
					"Package %q references unknown schema package %q.",
					u.config.ID, u.config.SchemaPackage))
				continue
			}
		}
	}

	c.detectReferenceCycles()
}

const (
	colorWhite = iota // unvisited
	colorGray         // on the current reference chain
	colorBlack        // fully resolved
)

// detectReferenceCycles runs DFS coloring over the schema reference edges. Every member of a
// detected cycle is excluded with a diagnostic naming the full chain.
func (c *compilation) detectReferenceCycles() {
	colors := map[string]int{}

	var visit func(u *unit, chain []*unit)
	visit = func(u *unit, chain []*unit) {
		switch colors[u.config.ID] {
		case colorBlack:
			return
		case colorGray:
			// Found a cycle; it spans from the previous occurrence of u on the chain.
			start := 0
			for i, member := range chain {
				if member == u {
					start = i
					break
				}
			}
			cycle := chain[start:]
			names := make([]string, 0, len(cycle)+1)
			for _, member := range cycle {
				names = append(names, member.config.ID)
			}
			names = append(names, u.config.ID)
			message := fmt.Sprintf(
				"Schema package references must not form a cycle: %s.", strings.Join(names, " -> "))
			for _, member := range cycle {
				colors[member.config.ID] = colorBlack
				c.exclude(member, message)
			}
			return
		}

		colors[u.config.ID] = colorGray
		if next, exists := c.unitMap[u.config.SchemaPackage]; exists && !u.excluded {
			visit(next, append(chain, u))
		}
		// A cycle through this unit has already colored it black.
		if colors[u.config.ID] == colorGray {
			colors[u.config.ID] = colorBlack
		}
	}

	for _, u := range c.units {
		if !u.excluded {
			visit(u, nil)
		}
	}
}

//===----------------------------------------------------------------------------------------====//
// Pipeline
//===----------------------------------------------------------------------------------------====//

func (c *compilation) run(ctx context.Context) {
	group, ctx := errgroup.WithContext(ctx)
	if c.opts.Concurrency > 0 {
		group.SetLimit(c.opts.Concurrency)
	}

	// Launch upstream packages before their dependents so that a bounded group never parks a
	// dependent while the package it awaits is still unscheduled.
	for _, u := range c.launchOrder() {
		u := u
		group.Go(func() error {
			c.compileUnit(ctx, u)
			return nil
		})
	}
	// Unit failures land in per-package diagnostics, never in the group error.
	_ = group.Wait()
}

// launchOrder returns the non-excluded units, upstream packages first. The reference graph is
// acyclic here; cycles were excluded during resolution.
func (c *compilation) launchOrder() []*unit {
	var (
		order   []*unit
		ordered = map[*unit]bool{}
	)

	var visit func(u *unit)
	visit = func(u *unit) {
		if u.excluded || ordered[u] {
			return
		}
		ordered[u] = true
		if upstream, exists := c.unitMap[u.config.SchemaPackage]; exists {
			visit(upstream)
		}
		order = append(order, u)
	}

	for _, u := range c.units {
		visit(u)
	}
	return order
}

func (c *compilation) compileUnit(ctx context.Context, u *unit) {
	// Resolve the milestone on every exit so downstream awaits terminate.
	defer func() {
		if !u.schemaReady.Ready() {
			u.schemaReady.Set(nil, errSchemaUnavailable)
		}
	}()

	if err := ctx.Err(); err != nil {
		u.result.Diagnostics.Emplace(
			fmt.Sprintf("Compilation of package %q was cancelled.", u.config.ID),
			err, graphql.ErrKindInternal)
		return
	}

	effective, externalSpecifier, ok := c.effectiveSchema(ctx, u)
	if !ok {
		return
	}

	model, ok := c.buildOperationModel(u)
	if !ok {
		return
	}

	operations, errs := checker.Check(effective, model, checker.Options{
		WarningsAsErrors: c.opts.WarningsAsErrors,
	})
	u.result.Diagnostics.AppendErrors(errs)
	if operations == nil && errs.HaveFatal() {
		return
	}

	artifacts, errs := codegen.Generate(effective, operations, codegen.Config{
		PackageID:               u.config.ID,
		ExternalSchemaSpecifier: externalSpecifier,
	})
	u.result.Diagnostics.AppendErrors(errs)
	u.result.Artifacts = filterTargets(artifacts, u.config.Targets)
}

// effectiveSchema produces the schema the package's operations check against: its own built schema,
// or the referenced package's schema imported read-only.
func (c *compilation) effectiveSchema(ctx context.Context, u *unit) (*schema.Schema, string, bool) {
	if len(u.config.SchemaPackage) > 0 {
		upstream := c.unitMap[u.config.SchemaPackage]
		value, err := upstream.schemaReady.Await(ctx)
		if err != nil {
			u.result.Diagnostics.Emplace(
				fmt.Sprintf("Schema of package %q is unavailable.", u.config.SchemaPackage),
				graphql.ErrKindResolution)
			return nil, "", false
		}
		s := value.(*schema.Schema)
		// Resolve the milestone for packages referencing this one transitively.
		u.schemaReady.Set(s, nil)
		return s, upstream.config.SchemaSpecifier, true
	}

	documents, ok := c.parseDocuments(u, u.config.SchemaDocuments, true)
	if !ok {
		return nil, "", false
	}

	s, errs := schema.Build(documents)
	u.result.Diagnostics.AppendErrors(errs)
	if s == nil {
		return nil, "", false
	}
	u.schemaReady.Set(s, nil)
	return s, "", true
}

func (c *compilation) buildOperationModel(u *unit) (*operation.Model, bool) {
	// A malformed operation document aborts only its own pipeline; siblings still get checked so
	// every document surfaces its diagnostics in one run.
	documents, _ := c.parseDocuments(u, u.config.OperationDocuments, false)

	model, errs := operation.BuildModel(documents)
	u.result.Diagnostics.AppendErrors(errs)
	return model, model != nil
}

// parseDocuments parses every given source and reports whether all of them parsed. Schema building
// requires the full set; operation checking proceeds with the documents that survived.
func (c *compilation) parseDocuments(u *unit, documents []Document, schemaGrammar bool) ([]ast.Document, bool) {
	parsed := make([]ast.Document, 0, len(documents))
	ok := true
	for _, document := range documents {
		source := token.NewSource(&token.SourceConfig{
			Name: document.Name,
			Body: token.SourceBody([]byte(document.Body)),
		})

		var (
			node ast.Document
			err  error
		)
		if schemaGrammar {
			node, err = parser.ParseSchema(source)
		} else {
			node, err = parser.Parse(source, parser.ParseOptions{})
		}
		if err != nil {
			u.result.Diagnostics.Append(err)
			ok = false
			continue
		}
		parsed = append(parsed, node)
	}
	return parsed, ok
}

func filterTargets(artifacts []*codegen.GeneratedArtifact, targets []codegen.Target) []*codegen.GeneratedArtifact {
	if targets == nil {
		return artifacts
	}

	var filtered []*codegen.GeneratedArtifact
	for _, artifact := range artifacts {
		for _, target := range targets {
			if artifact.Target == target {
				filtered = append(filtered, artifact)
				break
			}
		}
	}
	return filtered
}
