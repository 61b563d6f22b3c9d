package backend

import (
	"context"
	"net/http"
)

// AuthResult carries the credential issued by the data service.
type AuthResult struct {
	Token    string
	Username string
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		Username string `json:"username"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token. No token is attached
// to the request itself.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", authRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return authResultFrom(resp, username), nil
}

// Register creates an account and returns the issued credential.
func (c *Client) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", "", authRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return authResultFrom(resp, username), nil
}

func authResultFrom(resp authResponse, fallback string) *AuthResult {
	name := resp.User.Username
	if name == "" {
		name = fallback
	}
	return &AuthResult{Token: resp.Token, Username: name}
}
