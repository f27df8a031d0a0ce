package client

import (
	"context"
	"net/http"
	"net/url"
)

// GetCompanies lists companies matching the filter, ordered by name.
func (c *Client) GetCompanies(ctx context.Context, filter CompanyFilter) ([]Company, error) {
	var res struct {
		Companies []Company `json:"companies"`
	}
	if err := c.do(ctx, http.MethodGet, "/companies", filter.query(), nil, &res); err != nil {
		return nil, err
	}
	return res.Companies, nil
}

// GetCompany fetches one company by handle, with its jobs attached.
func (c *Client) GetCompany(ctx context.Context, handle string) (*Company, error) {
	var res struct {
		Company *Company `json:"company"`
	}
	if err := c.do(ctx, http.MethodGet, "/companies/"+url.PathEscape(handle), nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Company, nil
}

// CreateCompany creates a company. Requires an admin token.
func (c *Client) CreateCompany(ctx context.Context, input CompanyInput) (*Company, error) {
	var res struct {
		Company *Company `json:"company"`
	}
	if err := c.do(ctx, http.MethodPost, "/companies", nil, input, &res); err != nil {
		return nil, err
	}
	return res.Company, nil
}

// UpdateCompany patches the provided fields of a company. Requires an admin
// token.
func (c *Client) UpdateCompany(ctx context.Context, handle string, patch CompanyPatch) (*Company, error) {
	var res struct {
		Company *Company `json:"company"`
	}
	if err := c.do(ctx, http.MethodPatch, "/companies/"+url.PathEscape(handle), nil, patch, &res); err != nil {
		return nil, err
	}
	return res.Company, nil
}

// DeleteCompany deletes a company by handle. Requires an admin token.
func (c *Client) DeleteCompany(ctx context.Context, handle string) error {
	return c.do(ctx, http.MethodDelete, "/companies/"+url.PathEscape(handle), nil, nil, nil)
}
