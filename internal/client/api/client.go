// Package api is a thin HTTP client for the accountd server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// User mirrors the JSON representation the server returns.
type User struct {
	ID          int64     `json:"id"`
	Lastname    string    `json:"lastname"`
	Firstname   string    `json:"firstname"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Role        string    `json:"role"`
	ImgProfile  string    `json:"imgProfile"`
	CreatedAt   time.Time `json:"createdAt"`
}

// APIError carries the status code and the error message from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Register creates an account and returns the created user.
func (c *Client) Register(ctx context.Context, lastname, firstname, email, password, confirmPassword string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"lastname":        lastname,
		"firstname":       firstname,
		"email":           email,
		"password":        password,
		"confirmPassword": confirmPassword,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login authenticates and returns the user together with a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, string, error) {
	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":           email,
		"password":        password,
		"confirmPassword": password,
	}, &out)
	if err != nil {
		return nil, "", err
	}
	return &out.User, out.Token, nil
}

// Verify asks the server to validate the token and returns the claims as a
// loosely typed map.
func (c *Client) Verify(ctx context.Context, token string) (map[string]any, error) {
	out := map[string]any{}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/auth/verify", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUsers returns all registered users.
func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// UpdateUser replaces the mutable profile fields of a user.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, lastname, firstname, description, imgProfile string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", id), token, map[string]string{
		"lastname":    lastname,
		"firstname":   firstname,
		"description": description,
		"imgProfile":  imgProfile,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteUser removes a user by id.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", id), token, nil, nil)
}

// AvatarUploadURL requests a presigned PUT URL for a custom avatar.
func (c *Client) AvatarUploadURL(ctx context.Context, token string) (string, string, error) {
	var out struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/avatars/upload-url", token, nil, &out); err != nil {
		return "", "", err
	}
	return out.Key, out.URL, nil
}
