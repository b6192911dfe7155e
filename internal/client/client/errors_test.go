package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorBody(t *testing.T) {
	const fallback = "Failed to create application"

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "string detail",
			body: `{"detail":"LOGIN_BAD_CREDENTIALS"}`,
			want: "LOGIN_BAD_CREDENTIALS",
		},
		{
			name: "validation list",
			body: `{"detail":[{"loc":["body","company_name"],"msg":"field required"}]}`,
			want: "body.company_name: field required",
		},
		{
			name: "validation list with several entries and numeric loc",
			body: `{"detail":[{"loc":["body","role"],"msg":"field required"},{"loc":["query",0],"msg":"bad"}]}`,
			want: "body.role: field required, query.0: bad",
		},
		{
			name: "entry without loc",
			body: `{"detail":[{"msg":"oops"}]}`,
			want: "oops",
		},
		{
			name: "object detail serialised",
			body: `{"detail": {"code": "REGISTER_INVALID_PASSWORD", "reason": "too short"}}`,
			want: `{"code":"REGISTER_INVALID_PASSWORD","reason":"too short"}`,
		},
		{
			name: "list of scalars serialised",
			body: `{"detail":[1,2]}`,
			want: `[1,2]`,
		},
		{name: "empty list", body: `{"detail":[]}`, want: fallback},
		{name: "empty string", body: `{"detail":""}`, want: fallback},
		{name: "null detail", body: `{"detail":null}`, want: fallback},
		{name: "no detail", body: `{"message":"x"}`, want: fallback},
		{name: "not json", body: `Internal Server Error`, want: fallback},
		{name: "empty body", body: ``, want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseErrorBody([]byte(tt.body), fallback))
		})
	}
}

func TestRequestError_MatchesRequestFailed(t *testing.T) {
	var err error = &RequestError{StatusCode: 422, Message: "bad"}
	wrapped := fmt.Errorf("create: %w", err)

	assert.True(t, errors.Is(wrapped, ErrRequestFailed))
	assert.False(t, errors.Is(wrapped, ErrNotFound))

	var re *RequestError
	assert.True(t, errors.As(wrapped, &re))
	assert.Equal(t, 422, re.StatusCode)
	assert.Equal(t, "bad", err.Error())
}

func TestValidationError(t *testing.T) {
	err := ValidationError("%s is required", "role")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation error: role is required", err.Error())
}
