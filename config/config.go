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

// Package config loads the YAML project configuration and turns it into compiler package
// configurations. A project file names schema and operation documents with glob patterns and may
// declare additional packages under the "extensions" block for multi-package projects.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KoichiKiyokawa/nitrogql/codegen"
	"github.com/KoichiKiyokawa/nitrogql/compiler"
)

// DefaultPackageID names the package formed from a file's top-level schema and documents fields.
const DefaultPackageID = "default"

// File mirrors the on-disk project configuration.
//
//	schema: ./schema/*.graphql
//	documents:
//	  - ./src/**/*.graphql
//	extensions:
//	  nitrogql:
//	    generate:
//	      schema-output: ./src/generated/schema.d.ts
type File struct {
	// Schema patterns name the documents the project's own schema is built from.
	Schema StringList `yaml:"schema"`

	// Documents patterns name the project's operation documents.
	Documents StringList `yaml:"documents"`

	Extensions Extensions `yaml:"extensions"`
}

type Extensions struct {
	Nitrogql Extension `yaml:"nitrogql"`
}

// Extension is the tool-specific block under extensions.
type Extension struct {
	Generate GenerateConfig `yaml:"generate"`

	// Packages declares further compilation units beyond the top-level one.
	Packages []PackageEntry `yaml:"packages"`
}

// GenerateConfig controls where generated artifacts are written.
type GenerateConfig struct {
	// SchemaOutput is the path the schema artifact is written to.
	SchemaOutput string `yaml:"schema-output"`
}

// PackageEntry declares one package of a multi-package project.
type PackageEntry struct {
	ID        string     `yaml:"id"`
	Schema    StringList `yaml:"schema"`
	Documents StringList `yaml:"documents"`

	// SchemaPackage references the package whose schema this package's operations check against.
	SchemaPackage string `yaml:"schema-package"`

	// SchemaSpecifier is the module specifier other packages import this package's generated schema
	// types through.
	SchemaSpecifier string `yaml:"schema-specifier"`

	// Targets restricts the generated artifacts; valid values are "schema" and "operations".
	Targets []string `yaml:"targets"`
}

// StringList accepts either a single scalar or a sequence of scalars.
type StringList []string

func (list *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*list = StringList{s}
		return nil

	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*list = StringList(ss)
		return nil
	}
	return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
}

// Parse reads a project configuration from YAML source.
func Parse(source []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(source, &file); err != nil {
		return nil, err
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Load reads and parses the project configuration at the given path.
func Load(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

func (file *File) validate() error {
	seen := map[string]bool{}
	if file.hasDefaultPackage() {
		seen[DefaultPackageID] = true
	}
	for i, entry := range file.Extensions.Nitrogql.Packages {
		if len(entry.ID) == 0 {
			return fmt.Errorf("packages[%d]: missing package id", i)
		}
		if seen[entry.ID] {
			return fmt.Errorf("packages[%d]: duplicate package id %q", i, entry.ID)
		}
		seen[entry.ID] = true
		if _, err := parseTargets(entry.Targets); err != nil {
			return fmt.Errorf("packages[%d]: %w", i, err)
		}
	}
	return nil
}

func (file *File) hasDefaultPackage() bool {
	return len(file.Schema) > 0 || len(file.Documents) > 0
}

// PackageConfigs expands the file into compiler package configurations. Document patterns resolve
// relative to baseDir; matched files are read in pattern-match order, which filepath.Glob keeps
// lexical per pattern.
func (file *File) PackageConfigs(baseDir string) ([]compiler.PackageConfig, error) {
	var configs []compiler.PackageConfig

	if file.hasDefaultPackage() {
		config, err := file.packageConfig(baseDir, PackageEntry{
			ID:        DefaultPackageID,
			Schema:    file.Schema,
			Documents: file.Documents,
		})
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	for _, entry := range file.Extensions.Nitrogql.Packages {
		config, err := file.packageConfig(baseDir, entry)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	return configs, nil
}

func (file *File) packageConfig(baseDir string, entry PackageEntry) (compiler.PackageConfig, error) {
	schemaDocuments, err := readDocuments(baseDir, entry.Schema)
	if err != nil {
		return compiler.PackageConfig{}, fmt.Errorf("package %q: %w", entry.ID, err)
	}
	operationDocuments, err := readDocuments(baseDir, entry.Documents)
	if err != nil {
		return compiler.PackageConfig{}, fmt.Errorf("package %q: %w", entry.ID, err)
	}
	targets, err := parseTargets(entry.Targets)
	if err != nil {
		return compiler.PackageConfig{}, fmt.Errorf("package %q: %w", entry.ID, err)
	}

	return compiler.PackageConfig{
		ID:                 entry.ID,
		SchemaDocuments:    schemaDocuments,
		OperationDocuments: operationDocuments,
		SchemaPackage:      entry.SchemaPackage,
		SchemaSpecifier:    entry.SchemaSpecifier,
		Targets:            targets,
	}, nil
}

func parseTargets(names []string) ([]codegen.Target, error) {
	if names == nil {
		return nil, nil
	}
	targets := make([]codegen.Target, 0, len(names))
	for _, name := range names {
		switch name {
		case "schema":
			targets = append(targets, codegen.TargetSchema)
		case "operations":
			targets = append(targets, codegen.TargetOperations)
		default:
			return nil, fmt.Errorf("unknown target %q", name)
		}
	}
	return targets, nil
}

// readDocuments expands each pattern and reads every matched file.
func readDocuments(baseDir string, patterns StringList) ([]compiler.Document, error) {
	var documents []compiler.Document
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(baseDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files", pattern)
		}
		for _, match := range matches {
			body, err := os.ReadFile(match)
			if err != nil {
				return nil, err
			}
			name, err := filepath.Rel(baseDir, match)
			if err != nil {
				name = match
			}
			documents = append(documents, compiler.Document{
				Name: filepath.ToSlash(name),
				Body: string(body),
			})
		}
	}
	return documents, nil
}
