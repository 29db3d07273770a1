//go:build integration

// End-to-end tests against a running server instance.
//
// Start the server first (STORE=memory recommended for a clean slate), then:
//
//	API_ADDRESS=http://localhost:8080 go test -tags integration ./tests/integration/
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseURL string

func TestMain(m *testing.M) {
	baseURL = os.Getenv("API_ADDRESS")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	os.Exit(m.Run())
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func call(t *testing.T, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var resp apiResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	return res.StatusCode, resp
}

func TestInvestmentVersioningEndToEnd(t *testing.T) {
	code, resp := call(t, http.MethodPost, "/api/investments", map[string]interface{}{
		"amount":      100.0,
		"date":        "2024-01-15",
		"description": "e2e versioning",
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success)

	var created struct {
		ID      int64 `json:"id"`
		Version int   `json:"version"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, 1, created.Version)

	code, resp = call(t, http.MethodPut, fmt.Sprintf("/api/investments/%d", created.ID), map[string]interface{}{
		"amount": 150.0,
	})
	require.Equal(t, http.StatusOK, code)

	code, resp = call(t, http.MethodPost, fmt.Sprintf("/api/investments/%d/restore/1", created.ID), nil)
	require.Equal(t, http.StatusOK, code)

	var restored struct {
		Amount  float64 `json:"amount"`
		Version int     `json:"version"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &restored))
	assert.Equal(t, float64(100), restored.Amount)
	assert.Equal(t, 3, restored.Version)

	code, resp = call(t, http.MethodGet, fmt.Sprintf("/api/investments/%d/history", created.ID), nil)
	require.Equal(t, http.StatusOK, code)

	var history []struct {
		ChangeType string `json:"change_type"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &history))
	require.Len(t, history, 4)
	assert.Equal(t, "restored", history[0].ChangeType)

	code, resp = call(t, http.MethodDelete, fmt.Sprintf("/api/investments/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
}

func TestLoanPaymentEndToEnd(t *testing.T) {
	code, resp := call(t, http.MethodPost, "/api/loans", map[string]interface{}{
		"principal_amount": 1000.0,
		"current_balance":  1000.0,
		"start_date":       "2024-01-01",
		"description":      "e2e loan",
	})
	require.Equal(t, http.StatusOK, code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	code, resp = call(t, http.MethodPost, fmt.Sprintf("/api/loans/%d/payments", created.ID), map[string]interface{}{
		"payment_amount": 1500.0,
		"payment_date":   "2024-02-01",
	})
	require.Equal(t, http.StatusOK, code)

	var payment struct {
		RemainingBalance float64 `json:"remaining_balance"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payment))
	assert.Equal(t, float64(0), payment.RemainingBalance)
}

func TestErrorEnvelopes(t *testing.T) {
	code, resp := call(t, http.MethodPost, "/api/investments", map[string]interface{}{
		"date": "2024-01-15",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)

	code, resp = call(t, http.MethodDelete, "/api/investments/999999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestDashboardShape(t *testing.T) {
	code, resp := call(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success)

	var dash map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Data, &dash))
	for _, key := range []string{"totalInvestments", "totalDebts", "netWorth", "goals", "monthlyInvestments"} {
		assert.Contains(t, dash, key)
	}
}
