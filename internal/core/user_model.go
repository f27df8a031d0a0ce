package core

import "context"

// ApplicationStatus tracks where a job application stands.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusInterviewed ApplicationStatus = "interviewed"
	StatusRejected    ApplicationStatus = "rejected"
	StatusAccepted    ApplicationStatus = "accepted"
)

// Valid reports whether s is one of the enumerated application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewed, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// User represents an account holder. The password hash deliberately has no
// field here; it never leaves the users table except inside Authenticate.
type User struct {
	Username     string            `json:"username"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	Email        string            `json:"email"`
	IsAdmin      bool              `json:"isAdmin"`
	Applications []UserApplication `json:"applications,omitempty"`
}

// UserApplication is an application row joined with job and company display
// fields for a user profile.
type UserApplication struct {
	JobID         int               `json:"jobId"`
	Title         string            `json:"title"`
	CompanyHandle string            `json:"companyHandle"`
	CompanyName   string            `json:"companyName"`
	Status        ApplicationStatus `json:"status"`
}

// RegisterInput holds the fields required to create a user. Password is the
// plaintext; it is hashed before it touches the database.
type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UserUpdate is a sparse patch. Nil fields are left untouched; a non-nil
// Password is re-hashed before storage.
type UserUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// UserService provides account and application operations.
type UserService interface {
	// Authenticate checks a username/password pair and returns the user on
	// success. Unknown users and wrong passwords fail identically.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// Register creates a new user with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*User, error)

	// FindAll returns all users ordered by username.
	FindAll(ctx context.Context) ([]User, error)

	// Get returns one user by username with their applications attached.
	Get(ctx context.Context, username string) (*User, error)

	// Update applies a sparse patch and returns the updated record.
	Update(ctx context.Context, username string, data UserUpdate) (*User, error)

	// Remove deletes a user by username.
	Remove(ctx context.Context, username string) error

	// ApplyToJob records username's application to a job. An empty status
	// defaults to applied.
	ApplyToJob(ctx context.Context, username string, jobID int, status ApplicationStatus) error
}
