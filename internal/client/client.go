// Package client talks to a running lovewhisper server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lazypower/lovewhisper/internal/catalog"
	"github.com/lazypower/lovewhisper/internal/session"
)

const httpTimeout = 5 * time.Second

// Client is a thin JSON client for the lovewhisper API.
type Client struct {
	http      *http.Client
	serverURL string
}

// New creates a client for the server at serverURL.
func New(serverURL string) *Client {
	return &Client{
		http:      &http.Client{Timeout: httpTimeout},
		serverURL: serverURL,
	}
}

// Healthy checks if the server is reachable.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// do sends a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s: %w", path, err)
	}
	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return &StatusError{Code: resp.StatusCode, Message: e.Error}
		}
		return &StatusError{Code: resp.StatusCode, Message: string(bytes.TrimSpace(data))}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// StatusError is returned for 4xx and 5xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Message)
}

// Interaction is the server's answer to copy, share and favorite.
type Interaction struct {
	ID        string         `json:"id"`
	Copied    bool           `json:"copied"`
	Shared    bool           `json:"shared"`
	Favorite  bool           `json:"favorite"`
	CareScore int            `json:"careScore"`
	Toasts    []ToastMessage `json:"toasts"`
}

// ToastMessage is the wire form of a toast.
type ToastMessage struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (c *Client) State(ctx context.Context) (session.Snapshot, error) {
	var snap session.Snapshot
	err := c.do(ctx, http.MethodGet, "/api/state", nil, &snap)
	return snap, err
}

func (c *Client) InitialSet(ctx context.Context) (session.Result, error) {
	var res session.Result
	err := c.do(ctx, http.MethodPost, "/api/sets/initial", nil, &res)
	return res, err
}

func (c *Client) NewSet(ctx context.Context) (session.Result, error) {
	var res session.Result
	err := c.do(ctx, http.MethodPost, "/api/sets", nil, &res)
	return res, err
}

func (c *Client) SetFilters(ctx context.Context, f session.Filters) error {
	return c.do(ctx, http.MethodPut, "/api/filters", f, nil)
}

func (c *Client) Copy(ctx context.Context, id string) (Interaction, error) {
	return c.interact(ctx, id, "copy")
}

func (c *Client) Share(ctx context.Context, id string) (Interaction, error) {
	return c.interact(ctx, id, "share")
}

func (c *Client) ToggleFavorite(ctx context.Context, id string) (Interaction, error) {
	return c.interact(ctx, id, "favorite")
}

func (c *Client) interact(ctx context.Context, id, action string) (Interaction, error) {
	var out Interaction
	err := c.do(ctx, http.MethodPost, "/api/assets/"+id+"/"+action, nil, &out)
	return out, err
}

func (c *Client) Favorites(ctx context.Context) ([]catalog.Asset, error) {
	var out struct {
		Favorites []catalog.Asset `json:"favorites"`
	}
	err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &out)
	return out.Favorites, err
}

func (c *Client) SetSubscribed(ctx context.Context, on bool) error {
	return c.do(ctx, http.MethodPut, "/api/subscription", map[string]bool{"subscribed": on}, nil)
}
