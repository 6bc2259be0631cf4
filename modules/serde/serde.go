// Copyright 2025 Nguyen Nhat Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serde

import (
	"encoding/json"
	"io"
)

// Ptr returns &v. Function results are not addressable in Go, so this
// allocates a cell for the value and hands back its pointer.
func Ptr[T any](v T) *T {
	return &v
}

// ParseJsonBody decodes a JSON request body into valuePtr. Unknown fields
// are ignored on purpose: the caller maps an explicit whitelist of fields,
// so extras in the body are simply not part of the contract.
func ParseJsonBody[T any](body io.ReadCloser, valuePtr *T) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(valuePtr)
}
