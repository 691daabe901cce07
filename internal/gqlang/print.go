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

package gqlang

import (
	"strings"
)

// Print formats a document using graphql-js compatible rules: two-space
// indentation, one selection per line, and a blank line between definitions.
// Scalar literals are printed as they appeared in the source.
func Print(doc *Document) string {
	p := new(printer)
	for i, defn := range doc.Definitions {
		if i > 0 {
			p.sb.WriteString("\n\n")
		}
		p.definition(defn)
	}
	if len(doc.Definitions) > 0 {
		p.sb.WriteString("\n")
	}
	return p.sb.String()
}

// PrintOperation formats a single operation definition without a trailing
// newline.
func PrintOperation(op *Operation) string {
	p := new(printer)
	p.operation(op)
	return p.sb.String()
}

// PrintFragment formats a single fragment definition without a trailing
// newline.
func PrintFragment(defn *FragmentDefinition) string {
	p := new(printer)
	p.fragmentDefinition(defn)
	return p.sb.String()
}

type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) newline() {
	p.sb.WriteByte('\n')
	for i := 0; i < p.indent; i++ {
		p.sb.WriteString("  ")
	}
}

func (p *printer) beginBlock() {
	p.sb.WriteByte('{')
	p.indent++
}

func (p *printer) endBlock() {
	p.indent--
	p.newline()
	p.sb.WriteByte('}')
}

func (p *printer) definition(defn *Definition) {
	switch {
	case defn.Operation != nil:
		p.operation(defn.Operation)
	case defn.Fragment != nil:
		p.fragmentDefinition(defn.Fragment)
	case defn.Type != nil:
		p.typeDefinition(defn.Type)
	}
}

func (p *printer) operation(op *Operation) {
	shorthand := op.Type == Query && op.Name == nil && op.VariableDefinitions == nil && len(op.Directives) == 0
	if !shorthand {
		p.sb.WriteString(op.Type.String())
		if op.Name != nil || op.VariableDefinitions != nil {
			p.sb.WriteByte(' ')
			p.sb.WriteString(op.Name.String())
			p.variableDefinitions(op.VariableDefinitions)
		}
		p.directives(op.Directives)
		p.sb.WriteByte(' ')
	}
	p.selectionSet(op.SelectionSet)
}

func (p *printer) variableDefinitions(defs *VariableDefinitions) {
	if defs == nil || len(defs.Defs) == 0 {
		return
	}
	p.sb.WriteByte('(')
	for i, def := range defs.Defs {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(def.Var.String())
		p.sb.WriteString(": ")
		p.sb.WriteString(def.Type.String())
		p.defaultValue(def.Default)
	}
	p.sb.WriteByte(')')
}

func (p *printer) defaultValue(dv *DefaultValue) {
	if dv == nil {
		return
	}
	p.sb.WriteString(" = ")
	p.sb.WriteString(dv.Value.String())
}

func (p *printer) fragmentDefinition(defn *FragmentDefinition) {
	p.sb.WriteString("fragment ")
	p.sb.WriteString(defn.Name.Value)
	p.sb.WriteString(" on ")
	p.sb.WriteString(defn.Type.Name.String())
	p.directives(defn.Directives)
	p.sb.WriteByte(' ')
	p.selectionSet(defn.SelectionSet)
}

func (p *printer) selectionSet(set *SelectionSet) {
	if set == nil {
		return
	}
	p.beginBlock()
	for _, sel := range set.Sel {
		p.newline()
		p.selection(sel)
	}
	p.endBlock()
}

func (p *printer) selection(sel *Selection) {
	switch {
	case sel.Field != nil:
		f := sel.Field
		if f.Alias != nil {
			p.sb.WriteString(f.Alias.Value)
			p.sb.WriteString(": ")
		}
		p.sb.WriteString(f.Name.Value)
		p.arguments(f.Arguments)
		p.directives(f.Directives)
		if f.SelectionSet != nil {
			p.sb.WriteByte(' ')
			p.selectionSet(f.SelectionSet)
		}
	case sel.FragmentSpread != nil:
		p.sb.WriteString("...")
		p.sb.WriteString(sel.FragmentSpread.Name.Value)
		p.directives(sel.FragmentSpread.Directives)
	case sel.InlineFragment != nil:
		frag := sel.InlineFragment
		p.sb.WriteString("...")
		if frag.Type != nil {
			p.sb.WriteString(" on ")
			p.sb.WriteString(frag.Type.Name.String())
		}
		p.directives(frag.Directives)
		p.sb.WriteByte(' ')
		p.selectionSet(frag.SelectionSet)
	}
}

func (p *printer) arguments(args *Arguments) {
	if args == nil || len(args.Args) == 0 {
		return
	}
	p.sb.WriteByte('(')
	for i, arg := range args.Args {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(arg.Name.Value)
		p.sb.WriteString(": ")
		p.sb.WriteString(arg.Value.String())
	}
	p.sb.WriteByte(')')
}

func (p *printer) directives(ds Directives) {
	for _, d := range ds {
		p.sb.WriteString(" @")
		p.sb.WriteString(d.Name.Value)
		p.arguments(d.Arguments)
	}
}

func (p *printer) description(d *Description) {
	if d == nil {
		return
	}
	p.sb.WriteString(d.Raw)
	p.newline()
}

func (p *printer) typeDefinition(defn *TypeDefinition) {
	p.description(defn.Description())
	switch {
	case defn.Scalar != nil:
		p.sb.WriteString("scalar ")
		p.sb.WriteString(defn.Scalar.Name.Value)
	case defn.Object != nil:
		p.sb.WriteString("type ")
		p.sb.WriteString(defn.Object.Name.Value)
		p.sb.WriteByte(' ')
		p.beginBlock()
		for _, field := range defn.Object.Fields.Defs {
			p.newline()
			p.description(field.Description)
			p.sb.WriteString(field.Name.Value)
			if field.Args != nil && len(field.Args.Args) > 0 {
				p.sb.WriteByte('(')
				for i, arg := range field.Args.Args {
					if i > 0 {
						p.sb.WriteString(", ")
					}
					p.inputValueDefinition(arg)
				}
				p.sb.WriteByte(')')
			}
			p.sb.WriteString(": ")
			p.sb.WriteString(field.Type.String())
			p.directives(field.Directives)
		}
		p.endBlock()
	case defn.Enum != nil:
		p.sb.WriteString("enum ")
		p.sb.WriteString(defn.Enum.Name.Value)
		p.sb.WriteByte(' ')
		p.beginBlock()
		for _, v := range defn.Enum.Values.Values {
			p.newline()
			p.description(v.Description)
			p.sb.WriteString(v.Value.Value)
			p.directives(v.Directives)
		}
		p.endBlock()
	case defn.InputObject != nil:
		p.sb.WriteString("input ")
		p.sb.WriteString(defn.InputObject.Name.Value)
		p.sb.WriteByte(' ')
		p.beginBlock()
		for _, field := range defn.InputObject.Fields.Defs {
			p.newline()
			p.description(field.Description)
			p.inputValueDefinition(field)
		}
		p.endBlock()
	}
}

func (p *printer) inputValueDefinition(defn *InputValueDefinition) {
	p.sb.WriteString(defn.Name.Value)
	p.sb.WriteString(": ")
	p.sb.WriteString(defn.Type.String())
	p.defaultValue(defn.Default)
}
