// Copyright 2019 Ross Light
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

package graphql

import (
	"sort"
	"strings"

	"github.com/hexaworks/workspace-client/internal/gqlang"
	"golang.org/x/xerrors"
)

// maxSchemaSize is the largest schema source ParseSchema accepts.
const maxSchemaSize = 1 << 20 // 1 MiB

// Schema is a parsed set of type definitions.
type Schema struct {
	query     *gqlType
	mutation  *gqlType
	types     map[string]*gqlType
	typeOrder []string
}

// ParseSchema parses a GraphQL document containing type definitions.
func ParseSchema(source string) (*Schema, error) {
	doc, errs := gqlang.ParseWithLimit(source, maxSchemaSize)
	if len(errs) > 0 {
		return nil, xerrors.New(joinPositionedErrors("parse schema:", errs))
	}
	for _, defn := range doc.Definitions {
		if defn.Operation != nil {
			return nil, xerrors.Errorf("parse schema: %v: operations not allowed", defn.Operation.Start.ToPosition(source))
		}
		if defn.Fragment != nil {
			return nil, xerrors.Errorf("parse schema: %v: fragments not allowed", defn.Fragment.Keyword.ToPosition(source))
		}
	}
	typeMap, typeOrder, err := buildTypeMap(source, doc)
	if err != nil {
		return nil, xerrors.Errorf("parse schema: %w", err)
	}
	schema := &Schema{
		query:     typeMap["Query"],
		mutation:  typeMap["Mutation"],
		types:     typeMap,
		typeOrder: typeOrder,
	}
	if schema.query == nil {
		return nil, xerrors.New("parse schema: could not find Query type")
	}
	if !schema.query.isObject() {
		return nil, xerrors.Errorf("parse schema: query type %v must be an object", schema.query)
	}
	if schema.mutation != nil && !schema.mutation.isObject() {
		return nil, xerrors.Errorf("parse schema: mutation type %v must be an object", schema.mutation)
	}
	return schema, nil
}

// joinPositionedErrors formats parse errors one per line, prefixed with their
// line and column when known.
func joinPositionedErrors(prefix string, errs []error) string {
	msgBuilder := new(strings.Builder)
	msgBuilder.WriteString(prefix)
	for _, err := range errs {
		msgBuilder.WriteByte('\n')
		if p, ok := gqlang.ErrorPosition(err); ok {
			msgBuilder.WriteString(p.String())
			msgBuilder.WriteString(": ")
		}
		msgBuilder.WriteString(err.Error())
	}
	return msgBuilder.String()
}

const reservedPrefix = "__"

func buildTypeMap(source string, doc *gqlang.Document) (map[string]*gqlType, []string, error) {
	typeMap := make(map[string]*gqlType)
	builtins := []*gqlType{
		booleanType,
		floatType,
		intType,
		stringType,
		idType,
	}
	for _, b := range builtins {
		typeMap[b.String()] = b
	}
	var typeOrder []string
	// First pass: fill out lookup table.
	for _, defn := range doc.Definitions {
		t := defn.Type
		if t == nil {
			continue
		}
		name := t.Name()
		if strings.HasPrefix(name.Value, reservedPrefix) {
			return nil, nil, xerrors.Errorf("%v: use of reserved name %q", name.Start.ToPosition(source), name.Value)
		}
		if typeMap[name.Value] != nil {
			return nil, nil, xerrors.Errorf("%v: multiple types with name %q", name.Start.ToPosition(source), name.Value)
		}
		typeOrder = append(typeOrder, name.Value)

		switch {
		case t.Scalar != nil:
			typeMap[name.Value] = newScalarType(name.Value, t.Scalar.Description.Value())
		case t.Enum != nil:
			info := &enumType{
				name:    name.Value,
				symbols: make(map[string]struct{}),
			}
			for _, v := range t.Enum.Values.Values {
				sym := v.Value.Value
				if strings.HasPrefix(sym, reservedPrefix) {
					return nil, nil, xerrors.Errorf("%v: use of reserved name %q", v.Value.Start.ToPosition(source), sym)
				}
				if info.has(sym) {
					return nil, nil, xerrors.Errorf("%v: multiple enum values with name %q", v.Value.Start.ToPosition(source), sym)
				}
				info.symbols[sym] = struct{}{}
				info.values = append(info.values, sym)
			}
			typeMap[name.Value] = newEnumType(info, t.Enum.Description.Value())
		case t.Object != nil:
			typeMap[name.Value] = newObjectType(&objectType{
				name:   name.Value,
				fields: make(map[string]*objectTypeField),
			}, t.Object.Description.Value())
		case t.InputObject != nil:
			typeMap[name.Value] = newInputObjectType(&inputObjectType{
				name: name.Value,
			}, t.InputObject.Description.Value())
		}
	}
	// Second pass: fill in object definitions.
	for _, defn := range doc.Definitions {
		if defn.Type == nil {
			continue
		}
		switch {
		case defn.Type.Object != nil:
			if err := fillObjectTypeFields(source, typeMap, defn.Type.Object); err != nil {
				return nil, nil, err
			}
		case defn.Type.InputObject != nil:
			if err := fillInputObjectTypeFields(source, typeMap, defn.Type.InputObject); err != nil {
				return nil, nil, err
			}
		}
	}
	// Third pass: default values can reference any input type, so they are
	// only checked once every type is complete.
	for _, name := range typeOrder {
		typ := typeMap[name]
		switch {
		case typ.isObject():
			for _, fieldName := range typ.obj.fieldOrder {
				for _, arg := range typ.obj.fields[fieldName].args {
					if err := validateDefaultValue(source, arg); err != nil {
						return nil, nil, xerrors.Errorf("%s.%s(%s): %w", name, fieldName, arg.name, err)
					}
				}
			}
		case typ.isInputObject():
			for _, field := range typ.input.fields {
				if err := validateDefaultValue(source, field); err != nil {
					return nil, nil, xerrors.Errorf("%s.%s: %w", name, field.name, err)
				}
			}
		}
	}
	return typeMap, typeOrder, nil
}

func validateDefaultValue(source string, defn inputValueDefinition) error {
	if defn.defaultValue == nil {
		return nil
	}
	if errs := validateConstantValue(source, defn.typ, defn.defaultValue); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func fillObjectTypeFields(source string, typeMap map[string]*gqlType, obj *gqlang.ObjectTypeDefinition) error {
	info := typeMap[obj.Name.Value].obj
	for _, fieldDefn := range obj.Fields.Defs {
		fieldName := fieldDefn.Name.Value
		if strings.HasPrefix(fieldName, reservedPrefix) {
			return xerrors.Errorf("%v: use of reserved name %q", fieldDefn.Name.Start.ToPosition(source), fieldName)
		}
		if _, found := info.fields[fieldName]; found {
			return xerrors.Errorf("%v: multiple fields named %q in %s", fieldDefn.Name.Start.ToPosition(source), fieldName, obj.Name)
		}
		typ := resolveTypeRef(typeMap, fieldDefn.Type)
		if typ == nil {
			return xerrors.Errorf("%v: undefined type %v", fieldDefn.Type.Start().ToPosition(source), fieldDefn.Type)
		}
		if !typ.isOutputType() {
			return xerrors.Errorf("%v: %v is not an output type", fieldDefn.Type.Start().ToPosition(source), fieldDefn.Type)
		}
		f := &objectTypeField{
			name:        fieldName,
			description: fieldDefn.Description.Value(),
			typ:         typ,
		}
		if d := fieldDefn.Directives.ByName("deprecated"); d != nil {
			f.deprecated = "No longer supported"
			if reason := d.Arguments.ByName("reason"); reason != nil && reason.Value.Scalar != nil {
				f.deprecated = reason.Value.Scalar.Value()
			}
		}
		if fieldDefn.Args != nil {
			for _, arg := range fieldDefn.Args.Args {
				argName := arg.Name.Value
				if strings.HasPrefix(argName, reservedPrefix) {
					return xerrors.Errorf("%v: use of reserved name %q", arg.Name.Start.ToPosition(source), argName)
				}
				if f.args.byName(argName) != nil {
					return xerrors.Errorf("%v: multiple arguments named %q for field %s.%s", arg.Name.Start.ToPosition(source), argName, obj.Name, fieldName)
				}
				argDefn, err := resolveInputValueDefinition(source, typeMap, arg)
				if err != nil {
					return err
				}
				f.args = append(f.args, argDefn)
			}
		}
		info.fields[fieldName] = f
		info.fieldOrder = append(info.fieldOrder, fieldName)
	}
	return nil
}

func fillInputObjectTypeFields(source string, typeMap map[string]*gqlType, obj *gqlang.InputObjectTypeDefinition) error {
	info := typeMap[obj.Name.Value].input
	for _, fieldDefn := range obj.Fields.Defs {
		fieldName := fieldDefn.Name.Value
		if strings.HasPrefix(fieldName, reservedPrefix) {
			return xerrors.Errorf("%v: use of reserved name %q", fieldDefn.Name.Start.ToPosition(source), fieldName)
		}
		if info.fields.byName(fieldName) != nil {
			return xerrors.Errorf("%v: multiple fields named %q in %s", fieldDefn.Name.Start.ToPosition(source), fieldName, obj.Name)
		}
		f, err := resolveInputValueDefinition(source, typeMap, fieldDefn)
		if err != nil {
			return err
		}
		info.fields = append(info.fields, f)
	}
	return nil
}

func resolveInputValueDefinition(source string, typeMap map[string]*gqlType, defn *gqlang.InputValueDefinition) (inputValueDefinition, error) {
	typ := resolveTypeRef(typeMap, defn.Type)
	if typ == nil {
		return inputValueDefinition{}, xerrors.Errorf("%v: undefined type %v", defn.Type.Start().ToPosition(source), defn.Type)
	}
	if !typ.isInputType() {
		return inputValueDefinition{}, xerrors.Errorf("%v: %v is not an input type", defn.Type.Start().ToPosition(source), defn.Type)
	}
	ivd := inputValueDefinition{
		name:        defn.Name.Value,
		description: defn.Description.Value(),
		typ:         typ,
	}
	if defn.Default != nil {
		ivd.defaultValue = defn.Default.Value
	}
	return ivd, nil
}

func resolveTypeRef(typeMap map[string]*gqlType, ref *gqlang.TypeRef) *gqlType {
	switch {
	case ref.Named != nil:
		return typeMap[ref.Named.Value]
	case ref.List != nil:
		elem := resolveTypeRef(typeMap, ref.List.Type)
		if elem == nil {
			return nil
		}
		return listOf(elem)
	case ref.NonNull != nil && ref.NonNull.Named != nil:
		base := typeMap[ref.NonNull.Named.Value]
		if base == nil {
			return nil
		}
		return base.toNonNullable()
	case ref.NonNull != nil && ref.NonNull.List != nil:
		elem := resolveTypeRef(typeMap, ref.NonNull.List.Type)
		if elem == nil {
			return nil
		}
		return listOf(elem).toNonNullable()
	default:
		panic("unrecognized type reference form")
	}
}

func (schema *Schema) operationType(opType gqlang.OperationType) *gqlType {
	switch opType {
	case gqlang.Query:
		return schema.query
	case gqlang.Mutation:
		return schema.mutation
	case gqlang.Subscription:
		return nil
	default:
		panic("unknown operation type")
	}
}

// TypeNames returns the names of the types declared in the schema, sorted
// lexicographically. Built-in scalars are not included.
func (schema *Schema) TypeNames() []string {
	names := append([]string(nil), schema.typeOrder...)
	sort.Strings(names)
	return names
}

// Validate parses and validates an executable document against the schema.
// If the document is valid, then Validate returns a non-nil Document and no
// errors.
func (schema *Schema) Validate(source string) (*Document, []*ResponseError) {
	doc, errs := gqlang.Parse(source)
	if len(errs) > 0 {
		respErrs := make([]*ResponseError, 0, len(errs))
		for _, err := range errs {
			respErrs = append(respErrs, toResponseError(err))
		}
		return nil, respErrs
	}
	if errs := schema.validateRequest(source, doc); len(errs) > 0 {
		respErrs := make([]*ResponseError, 0, len(errs))
		for _, err := range errs {
			respErrs = append(respErrs, toResponseError(err))
		}
		return nil, respErrs
	}
	return &Document{
		source: source,
		doc:    doc,
	}, nil
}
