package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/apperror"
)

// companyUpdateColumns is the allow-list of patchable company fields.
var companyUpdateColumns = map[string]string{
	"name":         "name",
	"description":  "description",
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

type companyService struct {
	pool *pgxpool.Pool
}

// NewCompanyService constructs a CompanyService backed by PostgreSQL.
func NewCompanyService(pool *pgxpool.Pool) CompanyService {
	return &companyService{pool: pool}
}

// Create inserts a new company. The pre-insert lookup gives the friendly
// duplicate error; the primary key constraint stays authoritative for the
// race where two inserts pass the check concurrently.
func (s *companyService) Create(ctx context.Context, input CompanyInput) (*Company, error) {
	var existing string
	err := s.pool.QueryRow(ctx,
		`SELECT handle FROM companies WHERE handle = $1`,
		input.Handle,
	).Scan(&existing)
	if err == nil {
		return nil, apperror.Duplicate("company", input.Handle)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check company %q: %w", input.Handle, err)
	}

	c := &Company{}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING handle, name, description, num_employees, logo_url`,
		input.Handle, input.Name, input.Description, input.NumEmployees, input.LogoURL,
	).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Duplicate("company", input.Handle)
		}
		return nil, fmt.Errorf("create company %q: %w", input.Handle, err)
	}
	return c, nil
}

// FindAll returns companies matching the filter, ordered by name.
func (s *companyService) FindAll(ctx context.Context, filter CompanyFilter) ([]Company, error) {
	if filter.MinEmployees != nil && filter.MaxEmployees != nil && *filter.MinEmployees > *filter.MaxEmployees {
		return nil, apperror.BadRequest("Min employees cannot be greater than max")
	}

	query := `SELECT handle, name, description, num_employees, logo_url FROM companies`
	var where []string
	var args []any

	if filter.MinEmployees != nil {
		args = append(args, *filter.MinEmployees)
		where = append(where, fmt.Sprintf("num_employees >= $%d", len(args)))
	}
	if filter.MaxEmployees != nil {
		args = append(args, *filter.MaxEmployees)
		where = append(where, fmt.Sprintf("num_employees <= $%d", len(args)))
	}
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Get returns one company by handle with its jobs attached, ordered by id.
func (s *companyService) Get(ctx context.Context, handle string) (*Company, error) {
	c := &Company{}
	err := s.pool.QueryRow(ctx, `
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
		WHERE handle = $1`,
		handle,
	).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("company", handle)
		}
		return nil, fmt.Errorf("get company %q: %w", handle, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, title, salary, equity
		FROM jobs
		WHERE company_handle = $1
		ORDER BY id`,
		handle,
	)
	if err != nil {
		return nil, fmt.Errorf("get jobs for company %q: %w", handle, err)
	}
	defer rows.Close()

	for rows.Next() {
		var j CompanyJob
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		c.Jobs = append(c.Jobs, j)
	}
	return c, rows.Err()
}

// Update applies a sparse patch to a company and returns the updated record.
func (s *companyService) Update(ctx context.Context, handle string, data CompanyUpdate) (*Company, error) {
	fields := make([]FieldValue, 0, 4)
	if data.Name != nil {
		fields = append(fields, FieldValue{Field: "name", Value: *data.Name})
	}
	if data.Description != nil {
		fields = append(fields, FieldValue{Field: "description", Value: *data.Description})
	}
	if data.NumEmployees != nil {
		fields = append(fields, FieldValue{Field: "numEmployees", Value: *data.NumEmployees})
	}
	if data.LogoURL != nil {
		fields = append(fields, FieldValue{Field: "logoUrl", Value: *data.LogoURL})
	}

	setClause, args, err := BuildPartialUpdate(fields, companyUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, handle)

	c := &Company{}
	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE handle = $%d
		RETURNING handle, name, description, num_employees, logo_url`,
		setClause, len(args))
	err = s.pool.QueryRow(ctx, query, args...).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("company", handle)
		}
		return nil, fmt.Errorf("update company %q: %w", handle, err)
	}
	return c, nil
}

// Remove deletes a company by handle. RETURNING distinguishes a missing row
// from a successful delete without a second query.
func (s *companyService) Remove(ctx context.Context, handle string) error {
	var deleted string
	err := s.pool.QueryRow(ctx,
		`DELETE FROM companies WHERE handle = $1 RETURNING handle`,
		handle,
	).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("company", handle)
		}
		return fmt.Errorf("delete company %q: %w", handle, err)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
