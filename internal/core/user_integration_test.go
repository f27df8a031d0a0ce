package core_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"jobboard/internal/apperror"
	"jobboard/internal/core"
)

func registerTestUser(t *testing.T, svc core.UserService, username string, isAdmin bool) *core.User {
	t.Helper()
	u, err := svc.Register(context.Background(), core.RegisterInput{
		Username:  username,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
		IsAdmin:   isAdmin,
	})
	if err != nil {
		t.Fatalf("Register %s: %v", username, err)
	}
	return u
}

func TestUser_Register(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewUserService(pool, testHasher())

	t.Run("Register_Success", func(t *testing.T) {
		username := "reg-" + uuid.NewString()[:8]
		u, err := svc.Register(ctx, core.RegisterInput{
			Username:  username,
			Password:  "secret123",
			FirstName: "Aliya",
			LastName:  "Khan",
			Email:     "aliya@example.com",
		})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if u.Username != username {
			t.Errorf("expected username %s, got %s", username, u.Username)
		}
		if u.IsAdmin {
			t.Error("expected non-admin by default")
		}

		// The stored password must be a hash, never the plaintext.
		var stored string
		if err := pool.QueryRow(ctx, "SELECT password FROM users WHERE username = $1", username).Scan(&stored); err != nil {
			t.Fatalf("read stored password: %v", err)
		}
		if stored == "secret123" {
			t.Error("password stored in plaintext")
		}
	})

	t.Run("Register_DuplicateUsername_Fails", func(t *testing.T) {
		registerTestUser(t, svc, "u1", false)

		_, err := svc.Register(ctx, core.RegisterInput{
			Username:  "u1",
			Password:  "different",
			FirstName: "Other",
			LastName:  "Person",
			Email:     "other@example.com",
		})
		if err == nil {
			t.Fatal("expected error for duplicate username, got nil")
		}
		if err.Error() != "Duplicate username: u1" {
			t.Errorf("unexpected error message: %v", err)
		}
		if !errors.Is(err, apperror.ErrBadRequest) {
			t.Errorf("expected ErrBadRequest, got %v", err)
		}
	})
}

func TestUser_Authenticate(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewUserService(pool, testHasher())
	registerTestUser(t, svc, "u1", true)

	t.Run("Authenticate_Success", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "u1", "password123")
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if u.Username != "u1" || !u.IsAdmin {
			t.Errorf("unexpected user: %+v", u)
		}
	})

	t.Run("WrongPassword_Fails", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "u1", "wrong")
		if err == nil {
			t.Fatal("expected error for wrong password, got nil")
		}
		if err.Error() != "Invalid username/password" {
			t.Errorf("unexpected error message: %v", err)
		}
		if !errors.Is(err, apperror.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("UnknownUser_FailsIdentically", func(t *testing.T) {
		_, badPassErr := svc.Authenticate(ctx, "u1", "wrong")
		_, noUserErr := svc.Authenticate(ctx, "ghost", "whatever")
		if noUserErr == nil || badPassErr == nil {
			t.Fatal("expected both authentication attempts to fail")
		}
		// Indistinguishable failures: responses must not reveal which
		// usernames exist.
		if noUserErr.Error() != badPassErr.Error() {
			t.Errorf("errors differ: %q vs %q", noUserErr.Error(), badPassErr.Error())
		}
	})
}

func TestUser_FindAllAndGet(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewUserService(pool, testHasher())
	registerTestUser(t, svc, "zoe", false)
	registerTestUser(t, svc, "adam", false)
	registerTestUser(t, svc, "mila", true)

	t.Run("FindAll_OrderedByUsername", func(t *testing.T) {
		users, err := svc.FindAll(ctx)
		if err != nil {
			t.Fatalf("FindAll: %v", err)
		}
		if len(users) != 3 {
			t.Fatalf("expected 3 users, got %d", len(users))
		}
		want := []string{"adam", "mila", "zoe"}
		for i, username := range want {
			if users[i].Username != username {
				t.Errorf("position %d: expected %s, got %s", i, username, users[i].Username)
			}
		}
	})

	t.Run("Get_Success", func(t *testing.T) {
		u, err := svc.Get(ctx, "mila")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !u.IsAdmin {
			t.Error("expected mila to be admin")
		}
		if len(u.Applications) != 0 {
			t.Errorf("expected no applications yet, got %d", len(u.Applications))
		}
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, "nope")
		if err == nil {
			t.Fatal("expected error for missing user, got nil")
		}
		if err.Error() != "No user: nope" {
			t.Errorf("unexpected error message: %v", err)
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUser_Update(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewUserService(pool, testHasher())
	registerTestUser(t, svc, "u1", false)

	t.Run("PartialUpdate_LeavesOtherFields", func(t *testing.T) {
		u, err := svc.Update(ctx, "u1", core.UserUpdate{FirstName: strPtr("Renamed")})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if u.FirstName != "Renamed" {
			t.Errorf("expected firstName Renamed, got %s", u.FirstName)
		}
		if u.LastName != "User" {
			t.Errorf("expected lastName untouched, got %s", u.LastName)
		}
	})

	t.Run("PasswordUpdate_RehashesAndAuthenticates", func(t *testing.T) {
		_, err := svc.Update(ctx, "u1", core.UserUpdate{Password: strPtr("newpass456")})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}

		if _, err := svc.Authenticate(ctx, "u1", "newpass456"); err != nil {
			t.Errorf("expected new password to authenticate: %v", err)
		}
		if _, err := svc.Authenticate(ctx, "u1", "password123"); err == nil {
			t.Error("expected old password to stop working")
		}

		var stored string
		if err := pool.QueryRow(ctx, "SELECT password FROM users WHERE username = 'u1'").Scan(&stored); err != nil {
			t.Fatalf("read stored password: %v", err)
		}
		if stored == "newpass456" {
			t.Error("password stored in plaintext")
		}
	})

	t.Run("AdminFlagUpdate", func(t *testing.T) {
		u, err := svc.Update(ctx, "u1", core.UserUpdate{IsAdmin: boolPtr(true)})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !u.IsAdmin {
			t.Error("expected isAdmin to flip to true")
		}
	})

	t.Run("EmptyUpdate_Fails", func(t *testing.T) {
		_, err := svc.Update(ctx, "u1", core.UserUpdate{})
		if err == nil {
			t.Fatal("expected error for empty update, got nil")
		}
		if err.Error() != "No data" {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		_, err := svc.Update(ctx, "nope", core.UserUpdate{FirstName: strPtr("x")})
		if err == nil {
			t.Fatal("expected error for missing user, got nil")
		}
		if err.Error() != "No user: nope" {
			t.Errorf("unexpected error message: %v", err)
		}
	})
}

func TestUser_Remove(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewUserService(pool, testHasher())
	registerTestUser(t, svc, "u1", false)

	t.Run("Remove_Success", func(t *testing.T) {
		if err := svc.Remove(ctx, "u1"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		_, err := svc.Get(ctx, "u1")
		if err == nil || err.Error() != "No user: u1" {
			t.Errorf("expected u1 to be gone, got %v", err)
		}
	})

	t.Run("Remove_NotFound", func(t *testing.T) {
		err := svc.Remove(ctx, "nope")
		if err == nil {
			t.Fatal("expected error for missing user, got nil")
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUser_ApplyToJob(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewUserService(pool, testHasher())
	registerTestUser(t, svc, "u1", false)

	t.Run("Apply_DefaultStatus", func(t *testing.T) {
		if err := svc.ApplyToJob(ctx, "u1", 1, ""); err != nil {
			t.Fatalf("ApplyToJob: %v", err)
		}

		u, err := svc.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(u.Applications) != 1 {
			t.Fatalf("expected 1 application, got %d", len(u.Applications))
		}
		a := u.Applications[0]
		if a.JobID != 1 || a.Title != "Engineer" || a.CompanyHandle != "c1" || a.CompanyName != "C1 Inc" {
			t.Errorf("unexpected application: %+v", a)
		}
		if a.Status != core.StatusApplied {
			t.Errorf("expected default status applied, got %s", a.Status)
		}
	})

	t.Run("Apply_ExplicitStatus", func(t *testing.T) {
		if err := svc.ApplyToJob(ctx, "u1", 2, core.StatusInterviewed); err != nil {
			t.Fatalf("ApplyToJob: %v", err)
		}

		u, err := svc.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(u.Applications) != 2 {
			t.Fatalf("expected 2 applications, got %d", len(u.Applications))
		}
		// Applications come back ordered by job id.
		if u.Applications[1].JobID != 2 || u.Applications[1].Status != core.StatusInterviewed {
			t.Errorf("unexpected second application: %+v", u.Applications[1])
		}
	})

	t.Run("Apply_Twice_Fails", func(t *testing.T) {
		err := svc.ApplyToJob(ctx, "u1", 1, "")
		if err == nil {
			t.Fatal("expected error for second application, got nil")
		}
		if err.Error() != "Already applied: job 1" {
			t.Errorf("unexpected error message: %v", err)
		}
		if !errors.Is(err, apperror.ErrBadRequest) {
			t.Errorf("expected ErrBadRequest, got %v", err)
		}
	})

	t.Run("Apply_MissingJob_Fails", func(t *testing.T) {
		err := svc.ApplyToJob(ctx, "u1", 0, "")
		if err == nil {
			t.Fatal("expected error for missing job, got nil")
		}
		if err.Error() != "No job: 0" {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("Apply_MissingUser_Fails", func(t *testing.T) {
		err := svc.ApplyToJob(ctx, "nope", 1, "")
		if err == nil {
			t.Fatal("expected error for missing user, got nil")
		}
		if err.Error() != "No username: nope" {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("Apply_InvalidStatus_Fails", func(t *testing.T) {
		err := svc.ApplyToJob(ctx, "u1", 3, core.ApplicationStatus("ghosted"))
		if err == nil {
			t.Fatal("expected error for invalid status, got nil")
		}
		if err.Error() != fmt.Sprintf("Invalid application status: %s", "ghosted") {
			t.Errorf("unexpected error message: %v", err)
		}
		if !errors.Is(err, apperror.ErrBadRequest) {
			t.Errorf("expected ErrBadRequest, got %v", err)
		}
	})
}
