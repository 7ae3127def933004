package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/api/httperrors"
	"github/chapool/sign-oracle/internal/types"
)

// RequireHTTPError asserts that res carries httpErr (status, type and title).
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpErr *httperrors.HTTPError) types.PublicHTTPError {
	t.Helper()

	var response types.PublicHTTPError
	ParseResponseAndValidate(t, res, &response)

	require.Equal(t, int(swag.Int64Value(httpErr.Code)), res.Result().StatusCode)
	require.Equal(t, swag.Int64Value(httpErr.Code), swag.Int64Value(response.Code))
	require.Equal(t, *httpErr.Type, *response.Type)
	require.Equal(t, swag.StringValue(httpErr.Title), swag.StringValue(response.Title))

	return response
}

// RequireHTTPValidationError asserts a 400 validation error naming every key in keys.
func RequireHTTPValidationError(t *testing.T, res *httptest.ResponseRecorder, keys ...string) types.PublicHTTPValidationError {
	t.Helper()

	var response types.PublicHTTPValidationError
	ParseResponseAndValidate(t, res, &response)

	require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	require.Equal(t, types.PublicHTTPErrorTypeINVALIDPAYLOAD, *response.Type)

	found := make([]string, 0, len(response.ValidationErrors))
	for _, detail := range response.ValidationErrors {
		found = append(found, swag.StringValue(detail.Key))
	}
	require.ElementsMatch(t, keys, found)

	return response
}
