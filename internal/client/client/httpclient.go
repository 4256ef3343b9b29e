package client

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

	"github.com/dmitrijs2005/mcpcare/internal/client/models"
	"github.com/dmitrijs2005/mcpcare/internal/common"
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type messageBody struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

func (c *HTTPClient) Signup(ctx context.Context, form models.SignupForm) (string, error) {
	var resp messageBody
	if err := c.do(ctx, http.MethodPost, "/signup", "", form, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp messageBody
	if err := c.do(ctx, http.MethodPost, "/login", "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response carries no token")
	}
	return resp.Token, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*models.Profile, error) {
	var p *models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", token, nil, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", "", nil, nil)
}

// do sends body as JSON and decodes a 2xx answer into out. The token, when
// set, goes out verbatim in the authorization header.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AccessTokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageBody
		_ = json.NewDecoder(resp.Body).Decode(&m)
		return &APIError{StatusCode: resp.StatusCode, Message: m.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
