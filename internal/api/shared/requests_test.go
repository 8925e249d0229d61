package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title     string `json:"title"     validate:"required,max=5"`
	Completed *bool  `json:"completed"`
	Count     int    `json:"count"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		body          string
		wantErr       error
		wantField     string
		wantFieldMsg  string
		wantTitle     string
		wantCompleted *bool
	}{
		{
			name:      "valid body",
			body:      `{"title":"abc","completed":true}`,
			wantTitle: "abc",
			wantCompleted: func() *bool {
				b := true
				return &b
			}(),
		},
		{
			name:      "unknown fields are ignored",
			body:      `{"title":"abc","owner":"someone"}`,
			wantTitle: "abc",
		},
		{
			name:    "syntax error",
			body:    `{"title":`,
			wantErr: ErrMalformedBody,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: ErrMalformedBody,
		},
		{
			name:         "string for bool",
			body:         `{"title":"abc","completed":"yes"}`,
			wantErr:      domain.ErrValidation,
			wantField:    "completed",
			wantFieldMsg: "must be true or false",
		},
		{
			name:         "string for int",
			body:         `{"count":"many"}`,
			wantErr:      domain.ErrValidation,
			wantField:    "count",
			wantFieldMsg: "has an invalid type",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var got sampleRequest

			err := DecodeJSON(httptest.NewRecorder(), req, &got)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantField != "" {
					var vErr *domain.ValidationError
					require.True(t, errors.As(err, &vErr))
					assert.Equal(t, tt.wantField, vErr.Field)
					assert.Equal(t, tt.wantFieldMsg, vErr.Message)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantCompleted, got.Completed)
		})
	}
}

func TestDecodeJSONRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	body := `{"title":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var got sampleRequest

	err := DecodeJSON(httptest.NewRecorder(), req, &got)

	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestValidateRequestUsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := ValidateRequest(sampleRequest{Title: "too long"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "title", verrs[0].Field())
	assert.Equal(t, "max", verrs[0].Tag())

	assert.NoError(t, ValidateRequest(sampleRequest{Title: "ok"}))
}
