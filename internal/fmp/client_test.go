package fmp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fundamentals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient("test-key", WithBaseURL(server.URL+"/"))
	require.NoError(t, err)

	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	c, err := NewClient("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, c)
}

func TestFetchStatement(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/income-statement/AAPL", r.URL.Path)
		assert.Equal(t, "quarter", r.URL.Query().Get("period"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"date":"2023-09-30","symbol":"AAPL"},{"date":"2023-07-01","symbol":"AAPL"}]`))
	})

	records := c.FetchStatement(context.Background(), "AAPL", models.IncomeStatementType, models.QuarterPeriod)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"date":"2023-09-30","symbol":"AAPL"}`, string(records[0]))
}

func TestFetchStatementFailsSoft(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"Error Message":"Invalid API KEY."}`))
		}},
		{"error object", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Error Message":"Limit Reach."}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"date":`))
		}},
		{"null body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`null`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)

			records := c.FetchStatement(context.Background(), "AAPL", models.BalanceSheetStatementType, models.AnnualPeriod)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestFetchStatementUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	c, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	records := c.FetchStatement(context.Background(), "AAPL", models.CashFlowStatementType, models.AnnualPeriod)
	assert.Empty(t, records)
}

func TestGetHidesAPIKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	c, err := NewClient("secret-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	var dest []any
	err = c.get(context.Background(), "/stock/list", map[string][]string{}, &dest)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestFetchAllSymbols(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/list", r.URL.Path)
		w.Write([]byte(`[
			{"symbol":"AAPL","name":"Apple Inc.","exchange":"NASDAQ"},
			{"symbol":"","name":"Unnamed"},
			{"symbol":"MSFT","name":"Microsoft Corporation"}
		]`))
	})

	assert.Equal(t, []string{"AAPL", "MSFT"}, c.FetchAllSymbols(context.Background()))
}

func TestFetchAllSymbolsFailsSoft(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	symbols := c.FetchAllSymbols(context.Background())
	assert.NotNil(t, symbols)
	assert.Empty(t, symbols)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, strings.Repeat("a", 5)+"...", truncate(strings.Repeat("a", 10), 5))
}
