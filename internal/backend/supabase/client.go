// Package supabase implements service.Store and service.Auth against a
// Supabase-style hosted backend: a PostgREST data API plus a GoTrue auth
// API, both addressed under one base URL.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"tdo/internal/logging"
	"tdo/internal/service"
)

const (
	// APITimeout is the per-call timeout.
	APITimeout = 10 * time.Second

	restPath = "/rest/v1"
	authPath = "/auth/v1"
)

// TokenFunc supplies the access token for data requests; empty means
// unauthenticated (the anon key alone).
type TokenFunc func() string

// Client talks to the hosted service. It is safe for concurrent use.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	token   TokenFunc
	log     *log.Logger
}

// New creates a client for the service at baseURL.
func New(baseURL, anonKey string, token TokenFunc, logger *log.Logger) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{},
		token:   token,
		log:     logger,
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL, anonKey string, token TokenFunc, httpClient *http.Client) *Client {
	c := New(baseURL, anonKey, token, nil)
	c.http = httpClient
	return c
}

// do issues one request with the service headers and per-call timeout.
// A non-2xx response is converted to an error carrying the backend's own
// message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, extraHeaders map[string]string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	bearer := c.anonKey
	if t := c.token(); t != "" {
		bearer = t
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp.StatusCode, data)
	}
	return data, nil
}

// ListTodos implements service.Store. Rows are scoped to the caller
// server-side; the client only asks for the ordering.
func (c *Client) ListTodos(ctx context.Context) ([]service.Todo, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")

	data, err := c.do(ctx, http.MethodGet, restPath+"/todos", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var todos []service.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return todos, nil
}

// CreateTodo implements service.Store. The backend stamps id, user_id
// and timestamps; a nil description is stored as null.
func (c *Client) CreateTodo(ctx context.Context, title string, description *string) (service.Todo, error) {
	body := map[string]any{
		"title":       title,
		"description": description,
	}
	headers := map[string]string{"Prefer": "return=representation"}

	data, err := c.do(ctx, http.MethodPost, restPath+"/todos", nil, body, headers)
	if err != nil {
		return service.Todo{}, err
	}
	return singleRow(data)
}

// UpdateTodo implements service.Store. Only patch fields present in the
// request body are touched; an empty description patches to null.
func (c *Client) UpdateTodo(ctx context.Context, id string, patch service.TodoPatch) (service.Todo, error) {
	body := map[string]any{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			body["description"] = nil
		} else {
			body["description"] = *patch.Description
		}
	}
	if patch.Completed != nil {
		body["completed"] = *patch.Completed
	}

	q := url.Values{}
	q.Set("id", "eq."+id)
	headers := map[string]string{"Prefer": "return=representation"}

	data, err := c.do(ctx, http.MethodPatch, restPath+"/todos", q, body, headers)
	if err != nil {
		return service.Todo{}, err
	}
	return singleRow(data)
}

// DeleteTodo implements service.Store.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)

	_, err := c.do(ctx, http.MethodDelete, restPath+"/todos", q, nil, nil)
	return err
}

// singleRow unwraps the one-element array PostgREST returns for
// return=representation requests.
func singleRow(data []byte) (service.Todo, error) {
	var rows []service.Todo
	if err := json.Unmarshal(data, &rows); err != nil {
		return service.Todo{}, fmt.Errorf("decode row: %w", err)
	}
	if len(rows) == 0 {
		return service.Todo{}, fmt.Errorf("no matching row")
	}
	return rows[0], nil
}
