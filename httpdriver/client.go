// Package httpdriver is a forestbot.Driver that talks to a chat
// backend over HTTP, POSTing JSON to one endpoint per driver operation.
// No third-party HTTP client appears anywhere in the retrieved corpus,
// so this is built directly on net/http and encoding/json (see
// DESIGN.md).
package httpdriver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nullforest/forestree/forestbot"
)

// Client implements forestbot.Driver by POSTing JSON to
// BaseURL + "/" + operation. Every request carries a fresh
// X-Correlation-ID so requests can be traced through a backend's own
// logs, the same uuid-based convention cmd/demobot uses for its
// synthetic callback ids.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client with a sane default timeout.
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) post(ctx context.Context, op string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("httpdriver: marshal %s request: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/"+op, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("httpdriver: build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Correlation-ID", uuid.NewString())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpdriver: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("httpdriver: %s: unexpected status %s", op, resp.Status)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("httpdriver: decode %s response: %w", op, err)
	}
	return nil
}

func (c *Client) SendMessage(ctx context.Context, req forestbot.SendMessageRequest) (int64, error) {
	var out struct {
		MessageID int64 `json:"message_id"`
	}
	if err := c.post(ctx, "send_message", req, &out); err != nil {
		return 0, err
	}
	return out.MessageID, nil
}

func (c *Client) EditMessage(ctx context.Context, req forestbot.EditMessageRequest) (int64, error) {
	var out struct {
		MessageID int64 `json:"message_id"`
	}
	if err := c.post(ctx, "edit_message", req, &out); err != nil {
		return 0, err
	}
	return out.MessageID, nil
}

func (c *Client) DeleteMessage(ctx context.Context, req forestbot.DeleteMessageRequest) error {
	return c.post(ctx, "delete_message", req, nil)
}

func (c *Client) AnswerCallback(ctx context.Context, req forestbot.AnswerCallbackRequest) (bool, error) {
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.post(ctx, "answer_callback", req, &out); err != nil {
		return false, err
	}
	return out.OK, nil
}

func (c *Client) SetCommands(ctx context.Context, commands []forestbot.CommandDescriptor) (bool, error) {
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.post(ctx, "set_commands", commands, &out); err != nil {
		return false, err
	}
	return out.OK, nil
}

func (c *Client) NextUpdate(ctx context.Context) (forestbot.Update, error) {
	var out forestbot.Update
	if err := c.post(ctx, "next_update", struct{}{}, &out); err != nil {
		return forestbot.Update{}, err
	}
	return out, nil
}

func (c *Client) Poll(ctx context.Context) (int, error) {
	var out struct {
		NewUpdates int `json:"new_updates"`
	}
	if err := c.post(ctx, "poll", struct{}{}, &out); err != nil {
		return 0, err
	}
	return out.NewUpdates, nil
}
