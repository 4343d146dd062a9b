package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jonathan/job-finder/internal/types"
)

// Login exchanges credentials for a bearer token and the user record.
// It does not touch the session store; the caller decides what to do with
// the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	req := types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp types.LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/api/users/signin", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. Failures surface as *RequestFailure like
// every other operation.
func (c *Client) Register(ctx context.Context, req types.SignupRequest) (*types.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp types.LoginResponse
	if err := c.do(ctx, "register", http.MethodPost, "/api/users/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateUserRole switches an account between jobseeker and employer.
func (c *Client) UpdateUserRole(ctx context.Context, userID string, role types.Role) (*types.User, error) {
	req := types.UpdateRoleRequest{Role: role}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var user types.User
	if err := c.do(ctx, "update user role", http.MethodPut, "/api/users/"+url.PathEscape(userID)+"/role", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
