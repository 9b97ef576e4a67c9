package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoErrorNoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	assert.ErrorIs(t, err, ErrNotFound)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusNotFound, appErr.StatusCode)
}

func TestConvertMongoErrorPassesAppErrorsThrough(t *testing.T) {
	original := NewError(ErrCodeValidationInput, "bad", StatusBadRequest, nil)
	assert.Equal(t, original, ConvertMongoError(original))

	wrapped := fmt.Errorf("service: %w", original)
	var appErr *Error
	require.ErrorAs(t, ConvertMongoError(wrapped), &appErr)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
}

func TestConvertMongoErrorUnknownBecomesInternal(t *testing.T) {
	err := ConvertMongoError(errors.New("boom"))
	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
}

func TestConvertMongoErrorNil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}

func TestSentinelStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrInvalidCredentials, StatusUnauthorized},
		{ErrTokenMissing, StatusUnauthorized},
		{ErrTokenExpired, StatusUnauthorized},
		{ErrUserBlocked, StatusForbidden},
		{ErrInvalidInput, StatusBadRequest},
		{ErrNotFound, StatusNotFound},
		{ErrDuplicate, StatusConflict},
		{ErrConnection, StatusServiceUnavailable},
	}
	for _, tc := range cases {
		var appErr *Error
		require.ErrorAs(t, tc.err, &appErr)
		assert.Equal(t, tc.status, appErr.StatusCode, appErr.Message)
	}
}
