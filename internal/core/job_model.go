package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Job represents a single job listing. Equity is a decimal share in [0, 1];
// float64 would drift, so it stays decimal end to end.
type Job struct {
	ID            int              `json:"id"`
	Title         string           `json:"title"`
	Salary        *int             `json:"salary"`
	Equity        *decimal.Decimal `json:"equity"`
	CompanyHandle string           `json:"companyHandle"`
	CompanyName   string           `json:"companyName,omitempty"`
	Company       *Company         `json:"company,omitempty"`
}

// JobInput holds the fields required to create a job listing.
type JobInput struct {
	Title         string           `json:"title"`
	Salary        *int             `json:"salary"`
	Equity        *decimal.Decimal `json:"equity"`
	CompanyHandle string           `json:"companyHandle"`
}

// JobUpdate is a sparse patch. Nil fields are left untouched; the id and
// company handle can never change.
type JobUpdate struct {
	Title  *string          `json:"title"`
	Salary *int             `json:"salary"`
	Equity *decimal.Decimal `json:"equity"`
}

// JobFilter narrows a job search. All criteria are optional and combine
// conjunctively. HasEquity selects jobs with equity strictly above zero;
// false means no equity filtering at all.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity bool
}

// JobService provides job listing operations.
type JobService interface {
	// Create inserts a new job for an existing company.
	Create(ctx context.Context, input JobInput) (*Job, error)

	// FindAll returns jobs matching the filter, ordered by title, with the
	// owning company's name joined in.
	FindAll(ctx context.Context, filter JobFilter) ([]Job, error)

	// Get returns one job by id with its company record attached.
	Get(ctx context.Context, id int) (*Job, error)

	// Update applies a sparse patch and returns the updated record.
	Update(ctx context.Context, id int, data JobUpdate) (*Job, error)

	// Remove deletes a job by id.
	Remove(ctx context.Context, id int) error
}
