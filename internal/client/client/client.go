// Package client implements the HTTP API client used by the CLI. It talks
// to the server's JSON endpoints and translates HTTP status codes into
// sentinel errors the caller can match on.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

const requestTimeout = 10 * time.Second

// User is the public user view returned by the server.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Register creates an account. A taken username maps to ErrAlreadyExists.
func (c *Client) Register(ctx context.Context, username string, password []byte) (*User, error) {

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": string(password),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var u User
		if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		return &u, nil
	case http.StatusConflict:
		return nil, ErrAlreadyExists
	default:
		return nil, apiError(resp)
	}
}

// Login exchanges credentials for a bearer token via the form-encoded
// password grant.
func (c *Client) Login(ctx context.Context, username string, password []byte) (string, error) {

	form := url.Values{
		"username": {username},
		"password": {string(password)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var tr struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
			return "", fmt.Errorf("decoding response: %w", err)
		}
		return tr.AccessToken, nil
	case http.StatusUnauthorized:
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, detail(resp))
	default:
		return "", apiError(resp)
	}
}

// Me returns the user bound to the presented token.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerSchemePrefix+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var u User
		if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		return &u, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, apiError(resp)
	}
}

// Ping probes server reachability.
func (c *Client) Ping(ctx context.Context) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrUnavailable
	}
	return nil
}

// detail extracts the server's error message, falling back to the status text.
func detail(resp *http.Response) string {
	var body struct {
		Detail string `json:"detail"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return resp.Status
}

func apiError(resp *http.Response) error {
	return fmt.Errorf("server error: %s", detail(resp))
}
