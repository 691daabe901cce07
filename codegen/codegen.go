// Copyright 2026 The workspace-client Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package codegen generates Go types for the operations in a document map.
//
// For every operation it emits a <Name>Variables struct and a <Name>Result
// struct tree with one nested type per selected object, fragments flattened
// into the selecting struct. Enums and the input objects reachable from
// variables are emitted once. The output is gofmt'd and depends only on its
// inputs, so regenerating gives byte-identical files.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"

	"github.com/hexaworks/workspace-client/graphql"
	"github.com/hexaworks/workspace-client/internal/gqlang"
	"golang.org/x/xerrors"
)

// Config controls the generated package.
type Config struct {
	// Package is the name of the generated package. Required.
	Package string
	// Scalars maps custom scalar names to qualified Go types, like
	// "time.Time" or "github.com/google/uuid.UUID". Unmapped custom scalars
	// are decoded as json.RawMessage.
	Scalars map[string]string
	// Generator names the program in the "Code generated" header.
	Generator string
}

const rawMessage = "json.RawMessage"

var builtinScalars = map[string]string{
	"Int":     "int",
	"Float":   "float64",
	"String":  "string",
	"Boolean": "bool",
	"ID":      "string",
}

type goType struct {
	importPath string
	// name is qualified by the package name, like "uuid.UUID".
	name string
}

// parseGoType splits "github.com/google/uuid.UUID" into its import path and
// qualified name.
func parseGoType(s string) (goType, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 || strings.LastIndex(s, "/") > i {
		return goType{}, xerrors.Errorf("%q is not a qualified Go type", s)
	}
	path, name := s[:i], s[i+1:]
	pkg := path[strings.LastIndex(path, "/")+1:]
	if isMajorVersion(pkg) {
		if j := strings.LastIndex(path, "/"); j > 0 {
			trimmed := path[:j]
			pkg = trimmed[strings.LastIndex(trimmed, "/")+1:]
		}
	}
	return goType{importPath: path, name: pkg + "." + name}, nil
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	_, err := strconv.Atoi(s[1:])
	return err == nil
}

type generator struct {
	schema  *graphql.Schema
	cfg     Config
	scalars map[string]goType

	imports map[string]struct{}
	enums   map[string]bool
	inputs  map[string]bool
	// structs maps declared struct names to the operation that declared them.
	structs map[string]string
}

// Generate returns the Go source for the operations in docs.
func Generate(schema *graphql.Schema, docs *graphql.DocumentMap, cfg Config) ([]byte, error) {
	if cfg.Package == "" {
		return nil, xerrors.New("codegen: package name required")
	}
	g := &generator{
		schema:  schema,
		cfg:     cfg,
		scalars: make(map[string]goType),
		imports: make(map[string]struct{}),
		enums:   make(map[string]bool),
		inputs:  make(map[string]bool),
		structs: make(map[string]string),
	}
	for name, qualified := range cfg.Scalars {
		info := schema.Type(name)
		if info == nil || info.Kind != graphql.ScalarKind || info.Builtin {
			return nil, xerrors.Errorf("codegen: %s is not a custom scalar in the schema", name)
		}
		typ, err := parseGoType(qualified)
		if err != nil {
			return nil, xerrors.Errorf("codegen: scalar %s: %w", name, err)
		}
		g.scalars[name] = typ
	}

	var ops bytes.Buffer
	for _, name := range docs.Names() {
		if err := g.operation(&ops, name, docs.Operation(name)); err != nil {
			return nil, xerrors.Errorf("codegen: %s: %w", name, err)
		}
	}
	var defs bytes.Buffer
	for _, name := range sortedKeys(g.enums) {
		if err := g.declare(exportName(name), "enum "+name); err != nil {
			return nil, xerrors.Errorf("codegen: %w", err)
		}
		g.writeEnum(&defs, name)
	}
	for _, name := range sortedKeys(g.inputs) {
		if err := g.declare(exportName(name), "input "+name); err != nil {
			return nil, xerrors.Errorf("codegen: %w", err)
		}
		if err := g.writeInput(&defs, name); err != nil {
			return nil, xerrors.Errorf("codegen: input %s: %w", name, err)
		}
	}

	var out bytes.Buffer
	tool := cfg.Generator
	if tool == "" {
		tool = "codegen"
	}
	fmt.Fprintf(&out, "// Code generated by %s. DO NOT EDIT.\n\n", tool)
	fmt.Fprintf(&out, "package %s\n\n", cfg.Package)
	if len(g.imports) > 0 {
		out.WriteString("import (\n")
		for _, path := range sortedKeys(g.imports) {
			fmt.Fprintf(&out, "\t%q\n", path)
		}
		out.WriteString(")\n\n")
	}
	out.Write(defs.Bytes())
	out.Write(ops.Bytes())
	out.WriteString("// Documents maps operation names to the exact source text to send.\n")
	out.WriteString("var Documents = map[string]string{\n")
	for _, name := range docs.Names() {
		fmt.Fprintf(&out, "\t%q: %s,\n", name, strconv.Quote(docs.Operation(name).Source()))
	}
	out.WriteString("}\n")

	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("codegen: format output: %w", err)
	}
	return src, nil
}

// declare reserves a Go type name.
func (g *generator) declare(name, origin string) error {
	if prev, ok := g.structs[name]; ok {
		return xerrors.Errorf("type name %s used by both %s and %s", name, prev, origin)
	}
	g.structs[name] = origin
	return nil
}

func (g *generator) operation(w *bytes.Buffer, name string, doc *graphql.Document) error {
	parsed, errs := gqlang.Parse(doc.Source())
	if len(errs) > 0 {
		return errs[0]
	}
	op := parsed.FindOperation(name)
	if op == nil {
		return xerrors.New("operation missing from its own document")
	}
	var root string
	switch op.Type {
	case gqlang.Query:
		root = g.schema.QueryType()
	case gqlang.Mutation:
		root = g.schema.MutationType()
	default:
		return xerrors.Errorf("%v operations are not supported", op.Type)
	}

	varsName := name + "Variables"
	if err := g.declare(varsName, "operation "+name); err != nil {
		return err
	}
	fmt.Fprintf(w, "// %s holds the variables of the %s %s.\n", varsName, name, op.Type)
	fmt.Fprintf(w, "type %s struct {\n", varsName)
	if op.VariableDefinitions != nil {
		for _, def := range op.VariableDefinitions.Defs {
			ref := toTypeRef(def.Type)
			typ, err := g.inputType(ref)
			if err != nil {
				return xerrors.Errorf("variable $%s: %w", def.Var.Name.Value, err)
			}
			tag := def.Var.Name.Value
			if !ref.NonNull {
				tag += ",omitempty"
			}
			fmt.Fprintf(w, "\t%s %s `json:%q`\n", exportName(def.Var.Name.Value), typ, tag)
		}
	}
	w.WriteString("}\n\n")

	resultName := name + "Result"
	fmt.Fprintf(w, "// %s is the data returned by the %s %s.\n", resultName, name, op.Type)
	return g.selectionStruct(w, resultName, name, root, []*gqlang.SelectionSet{op.SelectionSet}, parsed, name)
}

type selectedField struct {
	key  string
	name string
	sets []*gqlang.SelectionSet
}

// collectFields merges the fields selected by sets, fragments included, in
// order of first appearance.
func collectFields(sets []*gqlang.SelectionSet, doc *gqlang.Document) ([]*selectedField, error) {
	var fields []*selectedField
	byKey := make(map[string]*selectedField)
	var visit func(set *gqlang.SelectionSet) error
	visit = func(set *gqlang.SelectionSet) error {
		for _, sel := range set.Sel {
			switch {
			case sel.Field != nil:
				key := sel.Field.Key().Value
				f := byKey[key]
				if f == nil {
					f = &selectedField{key: key, name: sel.Field.Name.Value}
					byKey[key] = f
					fields = append(fields, f)
				} else if f.name != sel.Field.Name.Value {
					return xerrors.Errorf("response key %q selects both %s and %s", key, f.name, sel.Field.Name.Value)
				}
				if sel.Field.SelectionSet != nil {
					f.sets = append(f.sets, sel.Field.SelectionSet)
				}
			case sel.FragmentSpread != nil:
				frag := doc.FindFragment(sel.FragmentSpread.Name.Value)
				if frag == nil {
					return xerrors.Errorf("fragment %s not defined", sel.FragmentSpread.Name.Value)
				}
				if err := visit(frag.SelectionSet); err != nil {
					return err
				}
			case sel.InlineFragment != nil:
				if err := visit(sel.InlineFragment.SelectionSet); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, set := range sets {
		if err := visit(set); err != nil {
			return nil, err
		}
	}
	return fields, nil
}

type nestedStruct struct {
	name     string
	typeName string
	sets     []*gqlang.SelectionSet
}

// selectionStruct writes the struct for a selection on parentType and then
// the structs of its object fields, depth first. Nested types are named by
// appending the exported response key to base.
func (g *generator) selectionStruct(w *bytes.Buffer, name, base, parentType string, sets []*gqlang.SelectionSet, doc *gqlang.Document, opName string) error {
	if err := g.declare(name, "operation "+opName); err != nil {
		return err
	}
	info := g.schema.Type(parentType)
	if info == nil || info.Kind != graphql.ObjectKind {
		return xerrors.Errorf("%s is not an object type", parentType)
	}
	fields, err := collectFields(sets, doc)
	if err != nil {
		return err
	}
	var nested []nestedStruct
	goNames := make(map[string]string)
	fmt.Fprintf(w, "type %s struct {\n", name)
	for _, f := range fields {
		goName := exportName(f.key)
		if prev, ok := goNames[goName]; ok {
			return xerrors.Errorf("%s: keys %q and %q both map to field %s", name, prev, f.key, goName)
		}
		goNames[goName] = f.key
		if f.name == "__typename" {
			fmt.Fprintf(w, "\t%s string `json:%q`\n", goName, f.key)
			continue
		}
		field := info.Field(f.name)
		if field == nil {
			return xerrors.Errorf("%s has no field %s", parentType, f.name)
		}
		named := field.Type.NamedType()
		var elem string
		if len(f.sets) > 0 {
			elem = base + goName
			nested = append(nested, nestedStruct{name: elem, typeName: named, sets: f.sets})
		} else {
			elem, err = g.leafType(named)
			if err != nil {
				return xerrors.Errorf("%s.%s: %w", parentType, f.name, err)
			}
		}
		fmt.Fprintf(w, "\t%s %s `json:%q`\n", goName, wrapType(field.Type, elem), f.key)
	}
	w.WriteString("}\n\n")
	for _, n := range nested {
		if err := g.selectionStruct(w, n.name, n.name, n.typeName, n.sets, doc, opName); err != nil {
			return err
		}
	}
	return nil
}

// leafType returns the Go type of a scalar or enum output.
func (g *generator) leafType(name string) (string, error) {
	if t, ok := builtinScalars[name]; ok {
		return t, nil
	}
	info := g.schema.Type(name)
	if info == nil {
		return "", xerrors.Errorf("unknown type %s", name)
	}
	switch info.Kind {
	case graphql.EnumKind:
		g.enums[name] = true
		return exportName(name), nil
	case graphql.ScalarKind:
		return g.customScalar(name), nil
	default:
		return "", xerrors.Errorf("%s requires a selection set", name)
	}
}

func (g *generator) customScalar(name string) string {
	if t, ok := g.scalars[name]; ok {
		g.imports[t.importPath] = struct{}{}
		return t.name
	}
	g.imports["encoding/json"] = struct{}{}
	return rawMessage
}

// inputType returns the Go type of a variable or input field and marks the
// enums and input objects it reaches.
func (g *generator) inputType(ref *graphql.TypeRef) (string, error) {
	named := ref.NamedType()
	var elem string
	if t, ok := builtinScalars[named]; ok {
		elem = t
	} else {
		info := g.schema.Type(named)
		if info == nil {
			return "", xerrors.Errorf("unknown type %s", named)
		}
		switch info.Kind {
		case graphql.EnumKind:
			g.enums[named] = true
			elem = exportName(named)
		case graphql.ScalarKind:
			elem = g.customScalar(named)
		case graphql.InputObjectKind:
			if !g.inputs[named] {
				g.inputs[named] = true
				for _, f := range info.InputFields {
					if _, err := g.inputType(f.Type); err != nil {
						return "", xerrors.Errorf("%s.%s: %w", named, f.Name, err)
					}
				}
			}
			elem = exportName(named)
		default:
			return "", xerrors.Errorf("%s is not an input type", named)
		}
	}
	return wrapType(ref, elem), nil
}

// wrapType applies list and nullability wrappers to elem. Nullable values
// become pointers, except for types that already have a nil value.
func wrapType(ref *graphql.TypeRef, elem string) string {
	if ref.Elem != nil {
		return "[]" + wrapType(ref.Elem, elem)
	}
	if ref.NonNull || elem == rawMessage {
		return elem
	}
	return "*" + elem
}

func toTypeRef(ref *gqlang.TypeRef) *graphql.TypeRef {
	switch {
	case ref.Named != nil:
		return &graphql.TypeRef{Name: ref.Named.Value}
	case ref.List != nil:
		return &graphql.TypeRef{Elem: toTypeRef(ref.List.Type)}
	case ref.NonNull != nil && ref.NonNull.Named != nil:
		return &graphql.TypeRef{Name: ref.NonNull.Named.Value, NonNull: true}
	default:
		return &graphql.TypeRef{Elem: toTypeRef(ref.NonNull.List.Type), NonNull: true}
	}
}

func (g *generator) writeEnum(w *bytes.Buffer, name string) {
	info := g.schema.Type(name)
	typeName := exportName(name)
	writeDoc(w, typeName, info.Description, "is the "+name+" enum.")
	fmt.Fprintf(w, "type %s string\n\n", typeName)
	fmt.Fprintf(w, "// %s values.\n", typeName)
	w.WriteString("const (\n")
	for _, v := range info.EnumValues {
		fmt.Fprintf(w, "\t%s%s %s = %q\n", typeName, enumValueName(v), typeName, v)
	}
	w.WriteString(")\n\n")
}

func (g *generator) writeInput(w *bytes.Buffer, name string) error {
	info := g.schema.Type(name)
	typeName := exportName(name)
	writeDoc(w, typeName, info.Description, "is the "+name+" input object.")
	fmt.Fprintf(w, "type %s struct {\n", typeName)
	for _, f := range info.InputFields {
		typ, err := g.inputType(f.Type)
		if err != nil {
			return err
		}
		tag := f.Name
		if !f.Type.NonNull {
			tag += ",omitempty"
		}
		fmt.Fprintf(w, "\t%s %s `json:%q`\n", exportName(f.Name), typ, tag)
	}
	w.WriteString("}\n\n")
	return nil
}

// writeDoc writes the first paragraph of a schema description as a doc
// comment, or a generic one.
func writeDoc(w *bytes.Buffer, typeName, description, fallback string) {
	text := strings.TrimSpace(description)
	if i := strings.Index(text, "\n\n"); i >= 0 {
		text = text[:i]
	}
	if text == "" {
		fmt.Fprintf(w, "// %s %s\n", typeName, fallback)
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "// %s\n", strings.TrimRight(line, " \t"))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
