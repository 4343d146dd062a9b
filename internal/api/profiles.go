package api

import (
	"context"
	"net/http"

	"github.com/jonathan/job-finder/internal/types"
)

// GetUserProfile fetches the authenticated user's profile.
func (c *Client) GetUserProfile(ctx context.Context) (*types.UserProfile, error) {
	var profile types.UserProfile
	if err := c.do(ctx, "get user profile", http.MethodGet, "/api/user-profiles", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateUserProfile overwrites the authenticated user's profile.
func (c *Client) UpdateUserProfile(ctx context.Context, profile types.UserProfile) (*types.UserProfile, error) {
	var updated types.UserProfile
	if err := c.do(ctx, "update user profile", http.MethodPut, "/api/user-profiles", nil, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetCompanyProfile fetches the authenticated employer's company profile.
func (c *Client) GetCompanyProfile(ctx context.Context) (*types.CompanyProfile, error) {
	var profile types.CompanyProfile
	if err := c.do(ctx, "get company profile", http.MethodGet, "/api/company-profiles", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateCompanyProfile overwrites the authenticated employer's company profile.
func (c *Client) UpdateCompanyProfile(ctx context.Context, profile types.CompanyProfile) (*types.CompanyProfile, error) {
	var updated types.CompanyProfile
	if err := c.do(ctx, "update company profile", http.MethodPut, "/api/company-profiles", nil, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
