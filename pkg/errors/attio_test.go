package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(ErrCodeInvalidDateRange, "reminder_start must be <= reminder_end")

	assert.Equal(t, ErrCodeInvalidDateRange, err.Code)
	assert.Equal(t, "reminder_start must be <= reminder_end", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.GetHTTPStatus())
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestNotFoundErrors(t *testing.T) {
	testCases := []struct {
		name         string
		err          *AttioError
		expectedCode string
		expectedMsg  string
	}{
		{
			name:         "company",
			err:          NewCompanyNotFoundError("0000f69b-511f-4321-ac32-3e4c2c93894c"),
			expectedCode: ErrCodeCompanyNotFound,
			expectedMsg:  "Company not found: 0000f69b-511f-4321-ac32-3e4c2c93894c",
		},
		{
			name:         "person",
			err:          NewPersonNotFoundError("missing-id"),
			expectedCode: ErrCodePersonNotFound,
			expectedMsg:  "Person not found: missing-id",
		},
		{
			name:         "workspace member",
			err:          NewMemberNotFoundError("82cfb7fc-f667-467d-97db-f5459047eeb6"),
			expectedCode: ErrCodeMemberNotFound,
			expectedMsg:  "Workspace member not found: 82cfb7fc-f667-467d-97db-f5459047eeb6",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, tc.err.Code)
			assert.Equal(t, tc.expectedMsg, tc.err.Error())
			assert.Equal(t, http.StatusNotFound, tc.err.GetHTTPStatus())
			assert.True(t, IsNotFound(tc.err))
			assert.False(t, IsValidation(tc.err))
		})
	}
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(500, `{"message": "internal error"}`)

	assert.Equal(t, ErrCodeAPIError, err.Code)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal error")
	assert.Equal(t, 500, err.GetHTTPStatus())
	assert.Equal(t, `{"message": "internal error"}`, err.Body)
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestGetAttioErrorUnwrapsChains(t *testing.T) {
	inner := NewAPIError(502, "bad gateway")
	wrapped := fmt.Errorf("searching companies: %w", inner)

	attioErr, ok := GetAttioError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeAPIError, attioErr.Code)
	assert.True(t, IsAttioError(wrapped))
}

func TestPlainErrorsAreNotAttioErrors(t *testing.T) {
	err := fmt.Errorf("connection refused")

	assert.False(t, IsAttioError(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(err))

	_, ok := GetAttioError(err)
	assert.False(t, ok)
}
