package util_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/api/httperrors"
	"github/chapool/sign-oracle/internal/types"
	"github/chapool/sign-oracle/internal/util"
)

func newEchoContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBindAndValidateBody(t *testing.T) {
	c, _ := newEchoContext(`{"accountId": 12, "message": "hi"}`)

	var body types.PostSignPayload
	require.NoError(t, util.BindAndValidateBody(c, &body))
	assert.Equal(t, int64(12), *body.AccountID)
	assert.Equal(t, "hi", *body.Message)
}

func TestBindAndValidateBodyValidationError(t *testing.T) {
	c, _ := newEchoContext(`{"accountId": 70000}`)

	var body types.PostSignPayload
	err := util.BindAndValidateBody(c, &body)
	require.Error(t, err)

	var hve *httperrors.HTTPValidationError
	require.True(t, errors.As(err, &hve))
	assert.Equal(t, int64(http.StatusBadRequest), *hve.Code)
	require.Len(t, hve.ValidationErrors, 2)

	keys := []string{*hve.ValidationErrors[0].Key, *hve.ValidationErrors[1].Key}
	assert.ElementsMatch(t, []string{"accountId", "message"}, keys)
}

func TestBindAndValidateBodyMalformed(t *testing.T) {
	c, _ := newEchoContext(`{"accountId": "zero"}`)

	var body types.PostSignPayload
	err := util.BindAndValidateBody(c, &body)
	require.Error(t, err)

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestValidateAndReturn(t *testing.T) {
	c, rec := newEchoContext("")

	owner := "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	accountID := int64(0)
	require.NoError(t, util.ValidateAndReturn(c, http.StatusOK, &types.AddressResponse{AccountID: &accountID, Owner: &owner}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accountId":0,"owner":"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"}`, rec.Body.String())

	// checksummed owner violates the lowercase response schema
	c, _ = newEchoContext("")
	mixed := "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	require.Error(t, util.ValidateAndReturn(c, http.StatusOK, &types.AddressResponse{AccountID: &accountID, Owner: &mixed}))
}
