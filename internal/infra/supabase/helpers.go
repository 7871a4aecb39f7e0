package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ============================================================
// Query building
// ============================================================

// query builds PostgREST filters (column=op.value).
type query struct {
	v url.Values
}

func newQuery() *query { return &query{v: url.Values{}} }

func (q *query) eq(col, val string) *query  { q.v.Add(col, "eq."+val); return q }
func (q *query) gte(col, val string) *query { q.v.Add(col, "gte."+val); return q }
func (q *query) lte(col, val string) *query { q.v.Add(col, "lte."+val); return q }
func (q *query) set(key, val string) *query { q.v.Set(key, val); return q }
func (q *query) order(clause string) *query { return q.set("order", clause) }

func (q *query) limit(n int) *query {
	if n > 0 {
		q.v.Set("limit", fmt.Sprint(n))
	}
	return q
}

func (q *query) or(expr string) *query { q.v.Set("or", expr); return q }

func (q *query) encode() string { return q.v.Encode() }

// num renders a decimal as a JSON number without going through float64.
func num(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ============================================================
// HTTP helpers for GET, POST, PATCH, DELETE
// ============================================================

func (c *Client) doGet(ctx context.Context, table string, q *query) ([]byte, error) {
	return c.do(ctx, http.MethodGet, table, q, nil)
}

func (c *Client) doPost(ctx context.Context, table string, q *query, data map[string]any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, table, q, data)
}

func (c *Client) doPatch(ctx context.Context, table string, q *query, data map[string]any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, table, q, data)
}

func (c *Client) doDelete(ctx context.Context, table string, q *query) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, table, q, nil)
}

// do executes an authenticated request and returns the response body.
// Writes ask for the affected rows back so callers can tell a no-op
// (nothing matched the filter) from a success.
func (c *Client) do(ctx context.Context, method, table string, q *query, data map[string]any) ([]byte, error) {
	path := table
	if q != nil {
		path += "?" + q.encode()
	}
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, path)

	var reqBody io.Reader
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		c.logger.Error("supabase: failed to create request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceRoleKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("supabase: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("supabase: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, classify(&statusError{Method: method, Path: table, Status: resp.StatusCode, Body: string(body)})
	}

	c.logger.Debug("supabase: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)
	return body, nil
}

// decodeRows unmarshals a PostgREST array. An empty body is an empty list.
func decodeRows[T any](body []byte, what string) ([]T, error) {
	rows := make([]T, 0)
	if len(bytes.TrimSpace(body)) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	return rows, nil
}
