package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/apperror"
)

// userUpdateColumns is the allow-list of patchable user fields. The
// username is the lookup key and is never updatable.
var userUpdateColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"password":  "password",
	"isAdmin":   "is_admin",
}

type userService struct {
	pool   *pgxpool.Pool
	hasher *Hasher
}

// Hasher is the password hashing dependency of the user service.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// NewUserService constructs a UserService backed by PostgreSQL.
func NewUserService(pool *pgxpool.Pool, hasher Hasher) UserService {
	return &userService{pool: pool, hasher: hasher}
}

// Authenticate checks a username/password pair. A missing user and a wrong
// password return the identical error so responses never reveal which
// usernames exist.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u := &User{}
	var hash string
	err := s.pool.QueryRow(ctx, `
		SELECT username, password, first_name, last_name, email, is_admin
		FROM users
		WHERE username = $1`,
		username,
	).Scan(&u.Username, &hash, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.Unauthorized("Invalid username/password")
		}
		return nil, fmt.Errorf("authenticate %q: %w", username, err)
	}

	if !s.hasher.Verify(hash, password) {
		return nil, apperror.Unauthorized("Invalid username/password")
	}
	return u, nil
}

// Register creates a new user with a hashed password. The pre-insert lookup
// gives the friendly duplicate error; the primary key constraint stays
// authoritative for concurrent registrations.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var existing string
	err := s.pool.QueryRow(ctx,
		`SELECT username FROM users WHERE username = $1`,
		input.Username,
	).Scan(&existing)
	if err == nil {
		return nil, apperror.Duplicate("username", input.Username)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check username %q: %w", input.Username, err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register %q: %w", input.Username, err)
	}

	u := &User{}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING username, first_name, last_name, email, is_admin`,
		input.Username, hash, input.FirstName, input.LastName, input.Email, input.IsAdmin,
	).Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Duplicate("username", input.Username)
		}
		return nil, fmt.Errorf("register %q: %w", input.Username, err)
	}
	return u, nil
}

// FindAll returns all users ordered by username.
func (s *userService) FindAll(ctx context.Context) ([]User, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT username, first_name, last_name, email, is_admin
		FROM users
		ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Get returns one user with their applications attached, ordered by job id.
func (s *userService) Get(ctx context.Context, username string) (*User, error) {
	u := &User{}
	err := s.pool.QueryRow(ctx, `
		SELECT username, first_name, last_name, email, is_admin
		FROM users
		WHERE username = $1`,
		username,
	).Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("user", username)
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT a.job_id, j.title, c.handle, c.name, a.status
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.handle = j.company_handle
		WHERE a.username = $1
		ORDER BY a.job_id`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("get applications for %q: %w", username, err)
	}
	defer rows.Close()

	for rows.Next() {
		var a UserApplication
		if err := rows.Scan(&a.JobID, &a.Title, &a.CompanyHandle, &a.CompanyName, &a.Status); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		u.Applications = append(u.Applications, a)
	}
	return u, rows.Err()
}

// Update applies a sparse patch to a user and returns the updated record.
// A new password is hashed before it joins the update.
func (s *userService) Update(ctx context.Context, username string, data UserUpdate) (*User, error) {
	fields := make([]FieldValue, 0, 5)
	if data.FirstName != nil {
		fields = append(fields, FieldValue{Field: "firstName", Value: *data.FirstName})
	}
	if data.LastName != nil {
		fields = append(fields, FieldValue{Field: "lastName", Value: *data.LastName})
	}
	if data.Email != nil {
		fields = append(fields, FieldValue{Field: "email", Value: *data.Email})
	}
	if data.Password != nil {
		hash, err := s.hasher.Hash(*data.Password)
		if err != nil {
			return nil, fmt.Errorf("update user %q: %w", username, err)
		}
		fields = append(fields, FieldValue{Field: "password", Value: hash})
	}
	if data.IsAdmin != nil {
		fields = append(fields, FieldValue{Field: "isAdmin", Value: *data.IsAdmin})
	}

	setClause, args, err := BuildPartialUpdate(fields, userUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, username)

	u := &User{}
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE username = $%d
		RETURNING username, first_name, last_name, email, is_admin`,
		setClause, len(args))
	err = s.pool.QueryRow(ctx, query, args...).Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("user", username)
		}
		return nil, fmt.Errorf("update user %q: %w", username, err)
	}
	return u, nil
}

// Remove deletes a user by username.
func (s *userService) Remove(ctx context.Context, username string) error {
	var deleted string
	err := s.pool.QueryRow(ctx,
		`DELETE FROM users WHERE username = $1 RETURNING username`,
		username,
	).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("user", username)
		}
		return fmt.Errorf("delete user %q: %w", username, err)
	}
	return nil
}

// ApplyToJob records an application. Job and username are checked in that
// order so each missing entity reports its own not-found error; the second
// application to the same job is rejected.
func (s *userService) ApplyToJob(ctx context.Context, username string, jobID int, status ApplicationStatus) error {
	if status == "" {
		status = StatusApplied
	}
	if !status.Valid() {
		return apperror.BadRequest(fmt.Sprintf("Invalid application status: %s", status))
	}

	var id int
	err := s.pool.QueryRow(ctx, `SELECT id FROM jobs WHERE id = $1`, jobID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("job", strconv.Itoa(jobID))
		}
		return fmt.Errorf("check job %d: %w", jobID, err)
	}

	var existing string
	err = s.pool.QueryRow(ctx, `SELECT username FROM users WHERE username = $1`, username).Scan(&existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("username", username)
		}
		return fmt.Errorf("check username %q: %w", username, err)
	}

	var applied string
	err = s.pool.QueryRow(ctx,
		`SELECT username FROM applications WHERE username = $1 AND job_id = $2`,
		username, jobID,
	).Scan(&applied)
	if err == nil {
		return apperror.BadRequest(fmt.Sprintf("Already applied: job %d", jobID))
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check application: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO applications (username, job_id, status) VALUES ($1, $2, $3)`,
		username, jobID, string(status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.BadRequest(fmt.Sprintf("Already applied: job %d", jobID))
		}
		return fmt.Errorf("apply %q to job %d: %w", username, jobID, err)
	}
	return nil
}
