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

/*
Package graphql models the client side of a GraphQL API: a schema, the
executable documents written against it, and the JSON shapes exchanged over
the wire. It follows the specification laid out at
https://graphql.github.io/graphql-spec/June2018/

A Schema is parsed from SDL with ParseSchema. Operation documents are checked
against it with Schema.Validate, or registered in bulk with NewDocumentMap,
which rewrites every operation into a self-contained canonical document that
includes exactly the fragments it uses. Regenerating a DocumentMap from the
same inputs always produces byte-identical sources.

Schema.Type exposes a static description of each named type for code
generators.

For sending requests over HTTP, see the graphqlhttp package in this module.
*/
package graphql
