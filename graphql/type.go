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
	"sync"

	"github.com/hexaworks/workspace-client/internal/gqlang"
)

// gqlType represents a GraphQL type.
//
// Types can be compared for equality using ==. Types with the same name from
// different schemas are never equal.
type gqlType struct {
	scalar   string
	enum     *enumType
	listElem *gqlType
	obj      *objectType
	input    *inputObjectType
	nonNull  bool

	// description is shared between the nullable and non-nullable variants.
	description string

	// nullVariant is the same type with the nonNull flag flipped.
	// This is to ensure that either version of the type has a consistent address.
	nullVariant *gqlType

	listInit sync.Once
	listOf_  *gqlType
}

type objectType struct {
	name       string
	fields     map[string]*objectTypeField
	fieldOrder []string
}

// field returns the named field or nil if the object does not have such a
// field. It is safe to call on a nil *objectType.
func (obj *objectType) field(name string) *objectTypeField {
	if obj == nil {
		return nil
	}
	return obj.fields[name]
}

type objectTypeField struct {
	name        string
	description string
	typ         *gqlType
	args        inputValueDefinitionList
	deprecated  string
}

type enumType struct {
	name    string
	values  []string
	symbols map[string]struct{}
}

func (info *enumType) has(sym string) bool {
	_, ok := info.symbols[sym]
	return ok
}

type inputObjectType struct {
	name   string
	fields inputValueDefinitionList
}

type inputValueDefinition struct {
	name        string
	description string
	typ         *gqlType

	// defaultValue is nil if the input value has no default.
	defaultValue *gqlang.InputValue
}

// Type returns the declared type of the input value.
func (ivd inputValueDefinition) Type() *gqlType {
	return ivd.typ
}

// hasNonNullDefault reports whether omitting the input value is equivalent to
// passing a non-null value.
func (ivd inputValueDefinition) hasNonNullDefault() bool {
	return ivd.defaultValue != nil && ivd.defaultValue.Null == nil
}

type inputValueDefinitionList []inputValueDefinition

func (list inputValueDefinitionList) byName(name string) *inputValueDefinition {
	for i := range list {
		if list[i].name == name {
			return &list[i]
		}
	}
	return nil
}

// Predefined types.
var (
	intType     = newScalarType("Int", "")
	floatType   = newScalarType("Float", "")
	stringType  = newScalarType("String", "")
	booleanType = newScalarType("Boolean", "")
	idType      = newScalarType("ID", "")
)

func newScalarType(name, description string) *gqlType {
	nullable := &gqlType{scalar: name, description: description}
	nonNullable := &gqlType{scalar: name, description: description, nonNull: true}
	nullable.nullVariant = nonNullable
	nonNullable.nullVariant = nullable
	return nullable
}

func newEnumType(info *enumType, description string) *gqlType {
	nullable := &gqlType{enum: info, description: description}
	nonNullable := &gqlType{enum: info, description: description, nonNull: true}
	nullable.nullVariant = nonNullable
	nonNullable.nullVariant = nullable
	return nullable
}

func newObjectType(info *objectType, description string) *gqlType {
	nullable := &gqlType{obj: info, description: description}
	nonNullable := &gqlType{obj: info, description: description, nonNull: true}
	nullable.nullVariant = nonNullable
	nonNullable.nullVariant = nullable
	return nullable
}

func newInputObjectType(info *inputObjectType, description string) *gqlType {
	nullable := &gqlType{input: info, description: description}
	nonNullable := &gqlType{input: info, description: description, nonNull: true}
	nullable.nullVariant = nonNullable
	nonNullable.nullVariant = nullable
	return nullable
}

func listOf(elem *gqlType) *gqlType {
	elem.listInit.Do(func() {
		nullable := &gqlType{listElem: elem}
		nonNullable := &gqlType{listElem: elem, nonNull: true}
		nullable.nullVariant = nonNullable
		nonNullable.nullVariant = nullable
		elem.listOf_ = nullable
	})
	return elem.listOf_
}

// String returns the type reference string.
func (typ *gqlType) String() string {
	if typ == nil {
		return "<nil>"
	}
	suffix := ""
	if typ.nonNull {
		suffix = "!"
	}
	switch {
	case typ.isList():
		return "[" + typ.listElem.String() + "]" + suffix
	case typ.name() != "":
		return typ.name() + suffix
	default:
		return "<invalid type>"
	}
}

// name returns the name of a named type or the empty string for lists.
func (typ *gqlType) name() string {
	switch {
	case typ.isScalar():
		return typ.scalar
	case typ.isEnum():
		return typ.enum.name
	case typ.isObject():
		return typ.obj.name
	case typ.isInputObject():
		return typ.input.name
	default:
		return ""
	}
}

// isNullable reports whether the type permits null.
func (typ *gqlType) isNullable() bool {
	return !typ.nonNull
}

func (typ *gqlType) toNullable() *gqlType {
	if typ.isNullable() {
		return typ
	}
	return typ.nullVariant
}

func (typ *gqlType) toNonNullable() *gqlType {
	if !typ.isNullable() {
		return typ
	}
	return typ.nullVariant
}

func (typ *gqlType) isScalar() bool {
	return typ.scalar != ""
}

func (typ *gqlType) isEnum() bool {
	return typ.enum != nil
}

func (typ *gqlType) isList() bool {
	return typ.listElem != nil
}

func (typ *gqlType) isObject() bool {
	return typ.obj != nil
}

func (typ *gqlType) isInputObject() bool {
	return typ.input != nil
}

// isInputType reports whether typ can be used as an input.
// See https://graphql.github.io/graphql-spec/June2018/#IsInputType()
func (typ *gqlType) isInputType() bool {
	for typ.isList() {
		typ = typ.listElem
	}
	return typ.isScalar() || typ.isEnum() || typ.isInputObject()
}

// isOutputType reports whether typ can be used as an output.
// See https://graphql.github.io/graphql-spec/June2018/#IsOutputType()
func (typ *gqlType) isOutputType() bool {
	for typ.isList() {
		typ = typ.listElem
	}
	return typ.isScalar() || typ.isEnum() || typ.isObject()
}

// namedType strips list and non-null wrappers from typ.
func (typ *gqlType) namedType() *gqlType {
	for typ.isList() {
		typ = typ.listElem
	}
	return typ.toNullable()
}

func (typ *gqlType) selectionSetType() *gqlType {
	typ = typ.namedType()
	if !typ.isObject() {
		return nil
	}
	return typ
}

// possibleTypes returns the set of object types that a value of typ could
// have at runtime. Schemas only contain object types, so this is the type
// itself.
// See https://graphql.github.io/graphql-spec/June2018/#GetPossibleTypes()
func (typ *gqlType) possibleTypes() map[*gqlType]struct{} {
	named := typ.selectionSetType()
	if named == nil {
		return nil
	}
	return map[*gqlType]struct{}{named: {}}
}

// areTypesCompatible reports if a value variableType can be passed to a usage
// expecting locationType. See https://graphql.github.io/graphql-spec/June2018/#AreTypesCompatible()
func areTypesCompatible(locationType, variableType *gqlType) bool {
	for {
		switch {
		case !locationType.isNullable():
			if variableType.isNullable() {
				return false
			}
			locationType = locationType.toNullable()
			variableType = variableType.toNullable()
		case !variableType.isNullable():
			variableType = variableType.toNullable()
		case locationType.isList():
			if !variableType.isList() {
				return false
			}
			locationType = locationType.listElem
			variableType = variableType.listElem
		case variableType.isList():
			return false
		default:
			return locationType == variableType
		}
	}
}
