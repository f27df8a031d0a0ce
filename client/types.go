package client

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Company is a company record as the API returns it. Jobs is populated only
// by GetCompany; list responses leave it empty.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
	Jobs         []Job   `json:"jobs,omitempty"`
}

// Job is a job listing. Which of the company fields are set depends on the
// endpoint: lists carry CompanyName, GetJob attaches the full Company, and
// jobs nested under a company carry neither.
type Job struct {
	ID            int              `json:"id"`
	Title         string           `json:"title"`
	Salary        *int             `json:"salary"`
	Equity        *decimal.Decimal `json:"equity"`
	CompanyHandle string           `json:"companyHandle,omitempty"`
	CompanyName   string           `json:"companyName,omitempty"`
	Company       *Company         `json:"company,omitempty"`
}

// User is an account record. The API never returns password material.
// Applications is populated only by GetUser.
type User struct {
	Username     string        `json:"username"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	IsAdmin      bool          `json:"isAdmin"`
	Applications []Application `json:"applications,omitempty"`
}

// Application is one job application with its job and company display fields.
type Application struct {
	JobID         int    `json:"jobId"`
	Title         string `json:"title"`
	CompanyHandle string `json:"companyHandle"`
	CompanyName   string `json:"companyName"`
	Status        string `json:"status"`
}

// SignupInput holds the fields for public registration.
type SignupInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CompanyInput holds the fields for creating a company.
type CompanyInput struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	NumEmployees *int    `json:"numEmployees,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
}

// CompanyPatch is a sparse company update; nil fields are omitted from the
// request entirely, leaving the stored values untouched.
type CompanyPatch struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	NumEmployees *int    `json:"numEmployees,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
}

// JobInput holds the fields for creating a job listing.
type JobInput struct {
	Title         string           `json:"title"`
	Salary        *int             `json:"salary,omitempty"`
	Equity        *decimal.Decimal `json:"equity,omitempty"`
	CompanyHandle string           `json:"companyHandle"`
}

// JobPatch is a sparse job update.
type JobPatch struct {
	Title  *string          `json:"title,omitempty"`
	Salary *int             `json:"salary,omitempty"`
	Equity *decimal.Decimal `json:"equity,omitempty"`
}

// UserPatch is a sparse profile update. Only admin credentials may set
// IsAdmin; the server rejects the attempt otherwise.
type UserPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	IsAdmin   *bool   `json:"isAdmin,omitempty"`
}

// CompanyFilter narrows GetCompanies. Unset criteria are not sent.
type CompanyFilter struct {
	MinEmployees *int
	MaxEmployees *int
	Name         *string
}

func (f CompanyFilter) query() url.Values {
	q := url.Values{}
	if f.MinEmployees != nil {
		q.Set("minEmployees", strconv.Itoa(*f.MinEmployees))
	}
	if f.MaxEmployees != nil {
		q.Set("maxEmployees", strconv.Itoa(*f.MaxEmployees))
	}
	if f.Name != nil {
		q.Set("name", *f.Name)
	}
	return q
}

// JobFilter narrows GetJobs. HasEquity false means no equity filtering and
// is not sent.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity bool
}

func (f JobFilter) query() url.Values {
	q := url.Values{}
	if f.Title != nil {
		q.Set("title", *f.Title)
	}
	if f.MinSalary != nil {
		q.Set("minSalary", strconv.Itoa(*f.MinSalary))
	}
	if f.HasEquity {
		q.Set("hasEquity", "true")
	}
	return q
}
