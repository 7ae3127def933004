package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/api"
	"github/chapool/sign-oracle/internal/test"
)

func TestGetMetrics(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/sign", test.GenericPayload{
			"accountId": 0,
			"message":   "hello",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		body := res.Body.String()
		assert.Contains(t, body, `sign_oracle_sign_requests_total{result="success"} 1`)
		assert.Contains(t, body, `sign_oracle_sign_requests_total{result="failure"} 0`)
		assert.Contains(t, body, "sign_oracle_sign_duration_seconds_count 1")
		assert.Contains(t, body, `http_requests_total{code="200",host="example.com",method="POST",url="/sign"} 1`)
	})
}
