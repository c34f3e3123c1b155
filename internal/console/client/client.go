package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketadmin/internal/domain/entity"
	apperrors "marketadmin/pkg/errors"
)

// Client talks to the admin API. It understands the server's JSON
// envelope and maps error payloads back into AppError values so console
// callers can branch on codes the same way server code does.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token used on every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorInfo      `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type paginatedData struct {
	Items json.RawMessage `json:"items"`
	Total int64           `json:"total"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Internal("request failed", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return apperrors.Internal(fmt.Sprintf("malformed response (status %d)", resp.StatusCode), err)
	}

	if !env.Success {
		code := "INTERNAL_ERROR"
		message := "request failed"
		if env.Error != nil {
			code = env.Error.Code
			message = env.Error.Message
		}
		return apperrors.New(code, message, resp.StatusCode, nil)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) doPaginated(ctx context.Context, path string, items interface{}) error {
	var page paginatedData
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return err
	}
	return json.Unmarshal(page.Items, items)
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.Admin, string, error) {
	var result struct {
		Admin *entity.Admin `json:"admin"`
		Token string        `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", body, &result); err != nil {
		return nil, "", err
	}
	c.token = result.Token
	return result.Admin, result.Token, nil
}

// Me fetches the current principal, refreshing a cached session record.
func (c *Client) Me(ctx context.Context) (*entity.Admin, error) {
	var admin entity.Admin
	if err := c.do(ctx, http.MethodGet, "/v1/auth/me", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Roster lists the operator's conversations, newest activity first.
func (c *Client) Roster(ctx context.Context) ([]*entity.Chat, error) {
	var chats []*entity.Chat
	if err := c.doPaginated(ctx, "/v1/chats?limit=100", &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// History returns a thread's messages, oldest first.
func (c *Client) History(ctx context.Context, chatID string) ([]*entity.Message, error) {
	var messages []*entity.Message
	path := fmt.Sprintf("/v1/chats/%s/messages?limit=200", url.PathEscape(chatID))
	if err := c.doPaginated(ctx, path, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// Send delivers a message over the request/response path and returns the
// stored message, id included.
func (c *Client) Send(ctx context.Context, chatID, content string) (*entity.Message, error) {
	var message entity.Message
	path := fmt.Sprintf("/v1/chats/%s/messages", url.PathEscape(chatID))
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"content": content}, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRead tells the server the operator has viewed a thread.
func (c *Client) MarkRead(ctx context.Context, chatID string) error {
	path := fmt.Sprintf("/v1/chats/%s/read", url.PathEscape(chatID))
	return c.do(ctx, http.MethodPut, path, nil, nil)
}
