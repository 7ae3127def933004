package sign_test

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/test"
	"github/chapool/sign-oracle/internal/types"
	"github/chapool/sign-oracle/internal/wallet/signer"
)

const testHelloSignature = "0xf16ea9a3478698f695fd1401bfe27e9e4a7e8e3da94aa72b021125e31fa899cc573c48ea3fe1d4ab61a9db10c19032026e3ed2dbccba5a178235ac27f94504311c"

func TestPostSignSuccess(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/sign", test.GenericPayload{
			"accountId": 0,
			"message":   "hello",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.SignResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, test.TestOwner, *response.Owner)
		assert.Equal(t, "hello", *response.Message)
		assert.Equal(t, testHelloSignature, *response.Signature)
	})
}

func TestPostSignEchoesMessage(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		for _, msg := range []string{"", "é", "日本語", "{\"json\": true}", strings.Repeat("x", 4096)} {
			res := test.PerformRequest(t, s, "POST", "/sign", test.GenericPayload{
				"accountId": 1,
				"message":   msg,
			}, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode)

			var response types.SignResponse
			test.ParseResponseAndValidate(t, res, &response)
			assert.Equal(t, msg, *response.Message)

			sig, err := signer.SignatureFromHex(*response.Signature)
			require.NoError(t, err)

			recovered, err := signer.NewService().RecoverAddress([]byte(msg), sig)
			require.NoError(t, err)
			assert.Equal(t, *response.Owner, strings.ToLower(recovered.Hex()))
		}
	})
}

func TestPostSignBoundaryAccounts(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		tests := []struct {
			accountID int
			owner     string
		}{
			{0, test.TestOwner},
			{65535, "0x59b7ca2f4eb7a612e8061510dd711c8fb8ff0ed1"},
		}

		for _, tt := range tests {
			res := test.PerformRequest(t, s, "POST", "/sign", test.GenericPayload{
				"accountId": tt.accountID,
				"message":   "boundary",
			}, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode)

			var response types.SignResponse
			test.ParseResponseAndValidate(t, res, &response)
			assert.Equal(t, tt.owner, *response.Owner)
		}
	})
}

func TestPostSignValidation(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		tests := []struct {
			name    string
			payload test.GenericPayload
			keys    []string
		}{
			{"account too large", test.GenericPayload{"accountId": 65536, "message": "hello"}, []string{"accountId"}},
			{"account negative", test.GenericPayload{"accountId": -1, "message": "hello"}, []string{"accountId"}},
			{"account missing", test.GenericPayload{"message": "hello"}, []string{"accountId"}},
			{"message missing", test.GenericPayload{"accountId": 0}, []string{"message"}},
			{"empty object", test.GenericPayload{}, []string{"accountId", "message"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := test.PerformRequest(t, s, "POST", "/sign", tt.payload, nil)
				test.RequireHTTPValidationError(t, res, tt.keys...)
			})
		}
	})
}

func TestPostSignMalformed(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		for _, body := range []string{
			`{"accountId": "0", "message": "hello"}`,
			`{"accountId": 1.5, "message": "hello"}`,
			`{"accountId": 0, "message": 42}`,
			`{"accountId": 0, "message": "hello"`,
			`not json`,
		} {
			t.Run(body, func(t *testing.T) {
				res := test.PerformRequestWithRawBody(t, s, "POST", "/sign", strings.NewReader(body), nil, nil)
				require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

				var response types.PublicHTTPError
				test.ParseResponseAndValidate(t, res, &response)
				assert.Equal(t, types.PublicHTTPErrorTypeGeneric, *response.Type)
			})
		}
	})
}

func TestPostSignWrongMethod(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/sign", nil, nil)
		require.Equal(t, http.StatusMethodNotAllowed, res.Result().StatusCode)
	})
}

func TestPostSignCORSPreflight(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := http.Header{}
		headers.Set(echo.HeaderOrigin, "https://dapp.example")
		headers.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		headers.Set(echo.HeaderAccessControlRequestHeaders, "Content-Type")

		res := test.PerformRequest(t, s, "OPTIONS", "/sign", nil, headers)
		require.Equal(t, http.StatusNoContent, res.Result().StatusCode)
		assert.Equal(t, "*", res.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Contains(t, res.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
		assert.Contains(t, res.Header().Get(echo.HeaderAccessControlAllowHeaders), "Sec-Fetch-Mode")
	})
}

func TestPostSignConcurrent(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		const workers = 8

		var wg sync.WaitGroup
		owners := make([]string, workers)
		codes := make([]int, workers)

		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				res := test.PerformRequest(t, s, "POST", "/sign", test.GenericPayload{
					"accountId": i % 2,
					"message":   fmt.Sprintf("parallel %d", i),
				}, nil)
				codes[i] = res.Result().StatusCode

				var response types.SignResponse
				if err := swag.ReadJSON(res.Body.Bytes(), &response); err == nil {
					owners[i] = swag.StringValue(response.Owner)
				}
			}(i)
		}

		wg.Wait()

		for i := range workers {
			require.Equal(t, http.StatusOK, codes[i])
			if i%2 == 0 {
				assert.Equal(t, test.TestOwner, owners[i])
			} else {
				assert.Equal(t, "0x70997970c51812dc3a010c7d01b50e0d17dc79c8", owners[i])
			}
		}
	})
}
