package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/apperror"
)

// jobUpdateColumns is the allow-list of patchable job fields. Field names
// already match their columns; the map still guards against anything else.
var jobUpdateColumns = map[string]string{
	"title":  "title",
	"salary": "salary",
	"equity": "equity",
}

type jobService struct {
	pool *pgxpool.Pool
}

// NewJobService constructs a JobService backed by PostgreSQL.
func NewJobService(pool *pgxpool.Pool) JobService {
	return &jobService{pool: pool}
}

// Create inserts a new job after verifying the company exists, so a bad
// handle surfaces as a not-found error instead of a raw FK violation.
func (s *jobService) Create(ctx context.Context, input JobInput) (*Job, error) {
	var handle string
	err := s.pool.QueryRow(ctx,
		`SELECT handle FROM companies WHERE handle = $1`,
		input.CompanyHandle,
	).Scan(&handle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("company", input.CompanyHandle)
		}
		return nil, fmt.Errorf("check company %q: %w", input.CompanyHandle, err)
	}

	j := &Job{}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, salary, equity, company_handle`,
		input.Title, input.Salary, input.Equity, input.CompanyHandle,
	).Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		return nil, fmt.Errorf("create job %q: %w", input.Title, err)
	}
	return j, nil
}

// FindAll returns jobs matching the filter, ordered by title. The company
// name is joined in for list display.
func (s *jobService) FindAll(ctx context.Context, filter JobFilter) ([]Job, error) {
	query := `
		SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name
		FROM jobs j
		JOIN companies c ON c.handle = j.company_handle`
	var where []string
	var args []any

	if filter.Title != nil {
		args = append(args, "%"+*filter.Title+"%")
		where = append(where, fmt.Sprintf("j.title ILIKE $%d", len(args)))
	}
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		where = append(where, fmt.Sprintf("j.salary >= $%d", len(args)))
	}
	if filter.HasEquity {
		where = append(where, "j.equity > 0")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY j.title"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle, &j.CompanyName); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Get returns one job by id with its full company record attached.
func (s *jobService) Get(ctx context.Context, id int) (*Job, error) {
	j := &Job{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
		WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("job", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}

	c := &Company{}
	err = s.pool.QueryRow(ctx, `
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
		WHERE handle = $1`,
		j.CompanyHandle,
	).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if err != nil {
		return nil, fmt.Errorf("get company for job %d: %w", id, err)
	}
	j.Company = c
	return j, nil
}

// Update applies a sparse patch to a job and returns the updated record.
func (s *jobService) Update(ctx context.Context, id int, data JobUpdate) (*Job, error) {
	fields := make([]FieldValue, 0, 3)
	if data.Title != nil {
		fields = append(fields, FieldValue{Field: "title", Value: *data.Title})
	}
	if data.Salary != nil {
		fields = append(fields, FieldValue{Field: "salary", Value: *data.Salary})
	}
	if data.Equity != nil {
		fields = append(fields, FieldValue{Field: "equity", Value: *data.Equity})
	}

	setClause, args, err := BuildPartialUpdate(fields, jobUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	j := &Job{}
	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING id, title, salary, equity, company_handle`,
		setClause, len(args))
	err = s.pool.QueryRow(ctx, query, args...).Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("job", strconv.Itoa(id))
		}
		return nil, fmt.Errorf("update job %d: %w", id, err)
	}
	return j, nil
}

// Remove deletes a job by id.
func (s *jobService) Remove(ctx context.Context, id int) error {
	var deleted int
	err := s.pool.QueryRow(ctx,
		`DELETE FROM jobs WHERE id = $1 RETURNING id`,
		id,
	).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("job", strconv.Itoa(id))
		}
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	return nil
}
