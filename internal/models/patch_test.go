package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePatch_AppliesOnlyPresentKeys(t *testing.T) {
	body := []byte(`{"status":"found","description":"seen near the river"}`)

	patch, err := ParsePatch(body, "status", "description", "gender")
	assert.NoError(t, err)
	assert.Equal(t, Patch{
		"status":      "found",
		"description": "seen near the river",
	}, patch)
	assert.NotContains(t, patch, "gender")
}

func TestParsePatch_PresentFalsyValuesAreKept(t *testing.T) {
	body := []byte(`{"description":"","age_at_missing":0,"main_photo_url":null}`)

	patch, err := ParsePatch(body, "description", "age_at_missing", "main_photo_url")
	assert.NoError(t, err)

	// Empty string, zero and null were all sent, so all three are applied.
	assert.Equal(t, "", patch["description"])
	assert.Equal(t, float64(0), patch["age_at_missing"])
	v, present := patch["main_photo_url"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestParsePatch_IgnoresUnknownKeys(t *testing.T) {
	body := []byte(`{"status":"found","reporter_id":999,"id":1}`)

	patch, err := ParsePatch(body, "status", "description")
	assert.NoError(t, err)
	assert.Equal(t, Patch{"status": "found"}, patch)
}

func TestParsePatch_EmptyPatchIsValidationError(t *testing.T) {
	cases := map[string][]byte{
		"empty object":      []byte(`{}`),
		"only unknown keys": []byte(`{"reporter_id":1}`),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePatch(body, "status")
			var appErr *AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, "No fields to update provided.", appErr.Message)
		})
	}
}

func TestParsePatch_InvalidJSONIsValidationError(t *testing.T) {
	_, err := ParsePatch([]byte(`not json`), "status")
	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestAppErrorHTTPStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NewValidationError("bad"), 400},
		{NewUnauthenticatedError("no token"), 401},
		{NewForbiddenError("nope"), 403},
		{NewNotFoundError("Report", 7), 404},
		{NewParentNotFoundError("missing person report"), 404},
		{NewConflictError("dup"), 409},
		{NewInternalError(assert.AnError), 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus(), tc.err.Message)
	}
}

func TestNotFoundErrorMessages(t *testing.T) {
	assert.Equal(t, "Report with ID 7 not found", NewNotFoundError("Report", 7).Message)
	assert.Equal(t, "The specified missing animal report does not exist.",
		NewParentNotFoundError("missing animal report").Message)
}
