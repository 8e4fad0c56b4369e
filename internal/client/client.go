// Package client talks to a share target the way the mobile app does: fetch
// the configuration, then post shares to the endpoint it names.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/its-jojoo/sharebutton/internal/core"
)

const (
	DefaultTimeout = 30 * time.Second
	UserAgent      = "sharebuttonctl/1.0"

	// fallback label when the target does not name itself
	defaultTargetName = "Custom Share"
)

// ServerError is a non-2xx answer, or a 2xx answer with success=false.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

type Client struct {
	http *http.Client
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// ConfigURL and SharesURL derive well-known paths from a server base URL.
func ConfigURL(base string) string { return strings.TrimRight(base, "/") + "/api/config" }
func SharesURL(base string) string { return strings.TrimRight(base, "/") + "/api/shares" }

// FetchConfig reads the share target from configURL. Missing fields fall back
// to a generic name and to configURL itself as the endpoint.
func (c *Client) FetchConfig(ctx context.Context, configURL string) (core.ShareTarget, error) {
	var target core.ShareTarget
	if err := c.getJSON(ctx, configURL, &target); err != nil {
		return core.ShareTarget{}, errors.Wrap(err, "fetch config")
	}
	if target.Name == "" {
		target.Name = defaultTargetName
	}
	if target.Endpoint == "" {
		target.Endpoint = configURL
	}
	return target, nil
}

type shareReply struct {
	Success bool   `json:"success"`
	ID      int    `json:"id"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// PostShare sends one share to endpoint and returns the id the server
// assigned.
func (c *Client) PostShare(ctx context.Context, endpoint string, req core.ShareRequest) (int, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, errors.Wrap(err, "encode share")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.Wrap(err, "build share request")
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	httpReq.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, errors.Wrap(err, "post share")
	}
	defer resp.Body.Close()

	var reply shareReply
	decodeErr := json.NewDecoder(resp.Body).Decode(&reply)

	if resp.StatusCode/100 != 2 || !reply.Success {
		return 0, &ServerError{Status: resp.StatusCode, Message: reply.Error}
	}
	if decodeErr != nil {
		return 0, errors.Wrap(decodeErr, "decode share reply")
	}
	return reply.ID, nil
}

type listReply struct {
	Total int               `json:"total"`
	Items []core.SharedItem `json:"items"`
}

// ListShares fetches every share stored on the server.
func (c *Client) ListShares(ctx context.Context, sharesURL string) ([]core.SharedItem, error) {
	var reply listReply
	if err := c.getJSON(ctx, sharesURL, &reply); err != nil {
		return nil, errors.Wrap(err, "list shares")
	}
	return reply.Items, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &ServerError{Status: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
