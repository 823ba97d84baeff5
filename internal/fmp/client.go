// Package fmp wraps the Financial Modeling Prep statement API.
package fmp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fundamentals/models"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://financialmodelingprep.com/api/v3"

var ErrMissingAPIKey = errors.New("FMP_API_KEY not found")

// Client fetches statements and the symbol directory. It never returns
// transport or provider errors: failures are logged and yield no data.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
	logger  *zap.SugaredLogger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = timeout
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient returns a client authenticated with apiKey. It fails without
// touching the network when apiKey is empty.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	// One attempt per request; pacing is the caller's job.
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.Logger = nil
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	httpClient.HTTPClient.Timeout = 30 * time.Second

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    httpClient,
		logger:  zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(c)
	}

	httpClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
		c.logger.Debugw("Provider request", "path", req.URL.Path)
	}

	return c, nil
}

// FetchStatement returns the raw statements of one symbol, one record per
// reporting date.
func (c *Client) FetchStatement(ctx context.Context, symbol string, statementType models.StatementType, period models.Period) []json.RawMessage {
	query := url.Values{}
	query.Set("period", string(period))

	var records []json.RawMessage
	path := "/" + string(statementType) + "/" + url.PathEscape(symbol)
	if err := c.get(ctx, path, query, &records); err != nil {
		c.logger.Errorw("Failed to fetch statement", "symbol", symbol, "type", statementType, "period", period, "error", err)
		return []json.RawMessage{}
	}

	if records == nil {
		return []json.RawMessage{}
	}

	return records
}

// FetchAllSymbols returns every symbol of the provider's stock directory.
func (c *Client) FetchAllSymbols(ctx context.Context) []string {
	type listing struct {
		Symbol string `json:"symbol"`
	}

	var listings []listing
	if err := c.get(ctx, "/stock/list", url.Values{}, &listings); err != nil {
		c.logger.Errorw("Failed to fetch symbol directory", "error", err)
		return []string{}
	}

	symbols := make([]string, 0, len(listings))
	for _, l := range listings {
		if l.Symbol != "" {
			symbols = append(symbols, l.Symbol)
		}
	}

	return symbols
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	query.Set("apikey", c.apiKey)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// The error includes the URL, and with it the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("GET %s: %w", path, urlErr.Err)
		}
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	// The provider reports some errors as a 200 with an object body.
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("GET %s: %v: %w", path, truncate(string(body), 200), err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
