// Copyright 2025 The reddit-cli Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vishwaraja/reddit-cli/models"
)

// Thing is the API's universal envelope: a kind tag plus an opaque
// payload.
type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Listing is a page of Things.
type Listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string  `json:"after"`
		Before   string  `json:"before"`
		Children []Thing `json:"children"`
	} `json:"data"`
}

// ChildrenOf decodes the listing's children into T. When kind is
// non-empty, children of any other kind are skipped; comment listings
// for example carry trailing "more" stubs that no model matches.
func ChildrenOf[T any](l *Listing, kind string) ([]T, error) {
	out := make([]T, 0, len(l.Data.Children))

	for _, child := range l.Data.Children {
		if kind != "" && child.Kind != kind {
			continue
		}

		var v T
		if err := json.Unmarshal(child.Data, &v); err != nil {
			return nil, fmt.Errorf("decode %s child: %w", child.Kind, err)
		}

		out = append(out, v)
	}

	return out, nil
}

// Decode unwraps a single Thing payload into T.
func Decode[T any](t *Thing) (T, error) {
	var v T
	if err := json.Unmarshal(t.Data, &v); err != nil {
		return v, fmt.Errorf("decode %s thing: %w", t.Kind, err)
	}

	return v, nil
}

// JSONResponse is the response shape of form endpoints called with
// api_type=json: an error list plus an endpoint-specific data payload.
type JSONResponse struct {
	JSON struct {
		Errors [][]any         `json:"errors"`
		Data   json.RawMessage `json:"data"`
	} `json:"json"`
}

// Err converts the response's error list into a *models.APIError.
// These errors ride in a 200 response; the original status is kept so
// the message stays truthful.
func (r *JSONResponse) Err() error {
	if len(r.JSON.Errors) == 0 {
		return nil
	}

	apiErr := &models.APIError{StatusCode: http.StatusOK}

	first := r.JSON.Errors[0]
	if len(first) > 0 {
		apiErr.Reason, _ = first[0].(string)
	}

	if len(first) > 1 {
		apiErr.Message, _ = first[1].(string)
	}

	return apiErr
}
