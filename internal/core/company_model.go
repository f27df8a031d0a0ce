package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Company represents an employer that posts job listings.
type Company struct {
	Handle       string       `json:"handle"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	NumEmployees *int         `json:"numEmployees"`
	LogoURL      *string      `json:"logoUrl"`
	Jobs         []CompanyJob `json:"jobs,omitempty"`
}

// CompanyJob is a job row as it appears nested under its company. The
// company columns are omitted; the parent record carries them.
type CompanyJob struct {
	ID     int              `json:"id"`
	Title  string           `json:"title"`
	Salary *int             `json:"salary"`
	Equity *decimal.Decimal `json:"equity"`
}

// CompanyInput holds the fields required to create a company.
type CompanyInput struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyUpdate is a sparse patch. Nil fields are left untouched; the
// handle is the lookup key and can never change.
type CompanyUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyFilter narrows a company search. All criteria are optional and
// combine conjunctively.
type CompanyFilter struct {
	MinEmployees *int
	MaxEmployees *int
	Name         *string
}

// CompanyService provides company master data operations.
type CompanyService interface {
	// Create inserts a new company and returns the stored record.
	Create(ctx context.Context, input CompanyInput) (*Company, error)

	// FindAll returns companies matching the filter, ordered by name.
	FindAll(ctx context.Context, filter CompanyFilter) ([]Company, error)

	// Get returns one company by handle with its jobs attached.
	Get(ctx context.Context, handle string) (*Company, error)

	// Update applies a sparse patch and returns the updated record.
	Update(ctx context.Context, handle string, data CompanyUpdate) (*Company, error)

	// Remove deletes a company by handle.
	Remove(ctx context.Context, handle string) error
}
