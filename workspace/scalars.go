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

package workspace

import (
	"bytes"
	"strconv"

	"golang.org/x/xerrors"
)

// BigInt is the BigInt scalar: an integer that may exceed 32 bits. Servers
// send it as a JSON number or as a decimal string; it is sent back as a
// decimal string.
type BigInt int64

// String returns the decimal representation of n.
func (n BigInt) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// MarshalJSON encodes n as a decimal string.
func (n BigInt) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, n.String()), nil
}

// UnmarshalJSON accepts a JSON number or a string holding a decimal integer.
func (n *BigInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	i, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return xerrors.Errorf("unmarshal BigInt: %w", err)
	}
	*n = BigInt(i)
	return nil
}
