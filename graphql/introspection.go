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
	"fmt"
)

// typeNameFieldName is the meta-field available on every object type.
// https://graphql.github.io/graphql-spec/June2018/#sec-Type-Name-Introspection
const typeNameFieldName = "__typename"

func typeNameField() *objectTypeField {
	return &objectTypeField{
		name: typeNameFieldName,
		typ:  stringType.toNonNullable(),
	}
}

// TypeKind is the kind of a named type. The names follow the __TypeKind
// introspection enum.
type TypeKind int

// Kinds of named types.
const (
	ScalarKind TypeKind = 1 + iota
	ObjectKind
	EnumKind
	InputObjectKind
)

// String returns the __TypeKind name of the kind, like "INPUT_OBJECT".
func (kind TypeKind) String() string {
	switch kind {
	case ScalarKind:
		return "SCALAR"
	case ObjectKind:
		return "OBJECT"
	case EnumKind:
		return "ENUM"
	case InputObjectKind:
		return "INPUT_OBJECT"
	default:
		return fmt.Sprintf("TypeKind(%d)", int(kind))
	}
}

// TypeInfo describes a named type in a schema. It is a static counterpart of
// the __Type introspection object, intended for code generators.
type TypeInfo struct {
	Name        string
	Kind        TypeKind
	Description string
	// Builtin is true for the scalars every schema defines.
	Builtin bool

	// Fields is set for OBJECT types, in declaration order.
	Fields []*FieldInfo
	// EnumValues is set for ENUM types, in declaration order.
	EnumValues []string
	// InputFields is set for INPUT_OBJECT types, in declaration order.
	InputFields []*InputValueInfo
}

// Field returns the field with the given name or nil.
func (info *TypeInfo) Field(name string) *FieldInfo {
	for _, f := range info.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldInfo describes a field of an object type.
type FieldInfo struct {
	Name        string
	Description string
	Type        *TypeRef
	Args        []*InputValueInfo

	// DeprecationReason is non-empty if the field carries @deprecated.
	DeprecationReason string
}

// InputValueInfo describes a field argument or an input object field.
type InputValueInfo struct {
	Name        string
	Description string
	Type        *TypeRef
	// DefaultValue is the default formatted as a GraphQL literal or the empty
	// string if the input value has no default.
	DefaultValue string
}

// TypeRef is a reference to a type: either a named type or a list, possibly
// non-null.
type TypeRef struct {
	// Name is empty for list types.
	Name    string
	Elem    *TypeRef
	NonNull bool
}

// String returns the reference in GraphQL notation, like "[String!]!".
func (ref *TypeRef) String() string {
	s := ref.Name
	if ref.Elem != nil {
		s = "[" + ref.Elem.String() + "]"
	}
	if ref.NonNull {
		s += "!"
	}
	return s
}

// NamedType returns the name of the innermost named type.
func (ref *TypeRef) NamedType() string {
	for ref.Elem != nil {
		ref = ref.Elem
	}
	return ref.Name
}

func toTypeRef(typ *gqlType) *TypeRef {
	ref := &TypeRef{NonNull: !typ.isNullable()}
	if typ.isList() {
		ref.Elem = toTypeRef(typ.listElem)
	} else {
		ref.Name = typ.name()
	}
	return ref
}

// Type returns information about the named type or nil if the schema does not
// contain such a type. Built-in scalars are included.
func (schema *Schema) Type(name string) *TypeInfo {
	typ := schema.types[name]
	if typ == nil {
		return nil
	}
	info := &TypeInfo{
		Name:        name,
		Description: typ.description,
	}
	switch {
	case typ.isScalar():
		info.Kind = ScalarKind
		info.Builtin = typ == intType || typ == floatType || typ == stringType || typ == booleanType || typ == idType
	case typ.isEnum():
		info.Kind = EnumKind
		info.EnumValues = append([]string(nil), typ.enum.values...)
	case typ.isObject():
		info.Kind = ObjectKind
		for _, fieldName := range typ.obj.fieldOrder {
			f := typ.obj.fields[fieldName]
			fi := &FieldInfo{
				Name:              f.name,
				Description:       f.description,
				Type:              toTypeRef(f.typ),
				DeprecationReason: f.deprecated,
			}
			for _, arg := range f.args {
				fi.Args = append(fi.Args, toInputValueInfo(arg))
			}
			info.Fields = append(info.Fields, fi)
		}
	case typ.isInputObject():
		info.Kind = InputObjectKind
		for _, f := range typ.input.fields {
			info.InputFields = append(info.InputFields, toInputValueInfo(f))
		}
	}
	return info
}

func toInputValueInfo(defn inputValueDefinition) *InputValueInfo {
	return &InputValueInfo{
		Name:         defn.name,
		Description:  defn.description,
		Type:         toTypeRef(defn.typ),
		DefaultValue: defn.defaultValue.String(),
	}
}

// QueryType returns the name of the query root type.
func (schema *Schema) QueryType() string {
	return schema.query.name()
}

// MutationType returns the name of the mutation root type or the empty string
// if the schema does not support mutations.
func (schema *Schema) MutationType() string {
	if schema.mutation == nil {
		return ""
	}
	return schema.mutation.name()
}
