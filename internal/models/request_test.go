package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrCheckCandidateRequestValidate(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		wantCode string
	}{
		{"valid email", "ada@example.com", ""},
		{"email with surrounding space", "  ada@example.com  ", ""},
		{"missing email", "", "missing_email"},
		{"whitespace only", "   ", "missing_email"},
		{"no at sign", "ada.example.com", "invalid_email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &CreateOrCheckCandidateRequest{Email: tc.email}
			err := req.Validate()
			if tc.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "ada@example.com", req.Email, "email is trimmed")
				return
			}
			require.Error(t, err)
			var resp *ErrorResponse
			require.ErrorAs(t, err, &resp)
			assert.Equal(t, tc.wantCode, resp.Code)
		})
	}
}

func TestUpdateCandidateInfoRequestValidate(t *testing.T) {
	t.Run("empty update rejected", func(t *testing.T) {
		req := &UpdateCandidateInfoRequest{Name: "  ", Email: "", Phone: "\t"}
		err := req.Validate()
		require.Error(t, err)
		var resp *ErrorResponse
		require.ErrorAs(t, err, &resp)
		assert.Equal(t, "empty_update", resp.Code)
	})

	t.Run("single field is enough", func(t *testing.T) {
		req := &UpdateCandidateInfoRequest{Phone: "555-0100"}
		assert.NoError(t, req.Validate())
	})

	t.Run("bad email rejected even with other fields", func(t *testing.T) {
		req := &UpdateCandidateInfoRequest{Name: "Ada", Email: "not-an-email"}
		err := req.Validate()
		require.Error(t, err)
		var resp *ErrorResponse
		require.ErrorAs(t, err, &resp)
		assert.Equal(t, "invalid_email", resp.Code)
	})
}

func TestSubmitAnswerRequestAcceptsEmptyAnswer(t *testing.T) {
	req := &SubmitAnswerRequest{}
	assert.NoError(t, req.Validate())
}
