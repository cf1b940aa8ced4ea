package models

import (
	"encoding/json"
)

// Patch is a sparse update: column names mapped to the values the caller
// actually sent. Keys absent from the request body are left untouched; every
// present value is applied, including null, empty strings and zeros.
type Patch map[string]interface{}

// ParsePatch decodes a raw JSON body into a Patch, keeping only keys from the
// allow-list. The allow-list is fixed per resource kind and never includes
// owner columns or primary keys, so the caller cannot reach them through this
// path. An empty result is a validation error, never a silent no-op.
func ParsePatch(body []byte, allowed ...string) (Patch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, NewValidationError("Invalid request body")
	}

	patch := Patch{}
	for _, key := range allowed {
		rv, present := raw[key]
		if !present {
			continue
		}
		var v interface{}
		if err := json.Unmarshal(rv, &v); err != nil {
			return nil, NewValidationError("Invalid value for field " + key)
		}
		patch[key] = v
	}

	if len(patch) == 0 {
		return nil, NewValidationError("No fields to update provided.")
	}
	return patch, nil
}
