// Package store is the HTTP client for the remote content store. It speaks
// the store's REST contract: GET collections and singletons, POST to create,
// PUT full replacements addressed by key, DELETE by key. Mutating calls carry
// a bearer token; public reads and submissions do not.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Doer 抽象 HTTP 客户端，便于在测试中替换。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the content store. The zero token means unauthenticated;
// WithToken derives an authenticated view for admin calls.
type Client struct {
	baseURL string
	token   string
	http    Doer
}

// New constructs a Client for the given API base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of the client that sends the given bearer token on
// every request. The token is threaded explicitly; the client never reads it
// from any ambient state.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = strings.TrimSpace(token)
	return &clone
}

// SetHTTPClient 替换底层 HTTP 客户端，主要面向测试场景。
func (c *Client) SetHTTPClient(d Doer) {
	if d == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	c.http = d
}

// APIError is a non-2xx answer from the store. Detail is the store's own
// `detail` field when the body carried one, echoed verbatim to the user.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("content store returned %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 from the store, the signal to
// clear the operator's session token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError 提取响应体中的 detail 字段，没有时退回通用错误。
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		apiErr.Detail = strings.TrimSpace(payload.Detail)
	}
	return apiErr
}

// GetJSON fetches path and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// PostJSON sends in as a JSON body and decodes the response into out, which
// may be nil for fire-and-forget submissions.
func (c *Client) PostJSON(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", out)
}

// PutJSON replaces the entity at path with in. Full-replace semantics.
func (c *Client) PutJSON(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}
	return c.do(ctx, http.MethodPut, path, bytes.NewReader(body), "application/json", out)
}

// Delete removes the entity at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// PostMultipart sends an already-encoded multipart body.
func (c *Client) PostMultipart(ctx context.Context, path string, body *bytes.Buffer, contentType string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// List fetches a whole collection.
func List[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.GetJSON(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single entity; a failed fetch yields the zero value.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var item T
	if err := c.GetJSON(ctx, path, &item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Create POSTs a new member to a collection; identity assignment is the
// store's job, so the created entity is returned as the store sees it.
func Create[T any](ctx context.Context, c *Client, path string, in T) (T, error) {
	var created T
	if err := c.PostJSON(ctx, path, in, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update PUTs a full replacement addressed by the remembered key.
func Update[T any](ctx context.Context, c *Client, path, key string, in T) (T, error) {
	var updated T
	if err := c.PutJSON(ctx, path+"/"+key, in, &updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Remove deletes a member addressed by key.
func Remove(ctx context.Context, c *Client, path, key string) error {
	return c.Delete(ctx, path+"/"+key)
}
