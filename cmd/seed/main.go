// seed loads a small development fixture set: three companies, a handful of
// job listings, two accounts (admin and demo, both with password "password"),
// and a couple of applications. Existing rows in those tables are cleared
// first, so never point it at a production database.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"

	"jobboard/internal/auth"
	"jobboard/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing existing data...")
	_, err = tx.Exec(ctx, `
		DELETE FROM applications;
		DELETE FROM jobs;
		DELETE FROM users;
		DELETE FROM companies;
	`)
	if err != nil {
		log.Fatalf("Failed to clear tables: %v", err)
	}

	log.Println("Seeding companies...")
	_, err = tx.Exec(ctx, `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES
		  ('lunar-labs', 'Lunar Labs', 'Satellite imaging and analytics.', 85, '/logos/lunar.png'),
		  ('ferrocell', 'Ferrocell', 'Battery manufacturing at grid scale.', 1200, NULL),
		  ('quill', 'Quill', 'Writing tools for small newsrooms.', 9, '/logos/quill.png');
	`)
	if err != nil {
		log.Fatalf("Failed to seed companies: %v", err)
	}

	log.Println("Seeding jobs...")
	_, err = tx.Exec(ctx, `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES
		  ('Backend Engineer', 145000, 0.01, 'lunar-labs'),
		  ('Imaging Scientist', 160000, 0.02, 'lunar-labs'),
		  ('Plant Technician', 72000, 0, 'ferrocell'),
		  ('Process Engineer', 118000, NULL, 'ferrocell'),
		  ('Founding Engineer', 90000, 0.08, 'quill');
	`)
	if err != nil {
		log.Fatalf("Failed to seed jobs: %v", err)
	}

	log.Println("Seeding users...")
	hasher := auth.NewHasher()
	seedUsers := []struct {
		username, firstName, lastName, email string
		isAdmin                              bool
	}{
		{"admin", "Ada", "Admin", "admin@jobboard.local", true},
		{"demo", "Demo", "User", "demo@jobboard.local", false},
	}
	for _, u := range seedUsers {
		// Hash each password separately so every stored hash carries its
		// own salt, same as registration.
		hash, err := hasher.Hash("password")
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", u.username, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO users (username, password, first_name, last_name, email, is_admin)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			u.username, hash, u.firstName, u.lastName, u.email, u.isAdmin)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.username, err)
		}
	}

	log.Println("Seeding applications...")
	_, err = tx.Exec(ctx, `
		INSERT INTO applications (username, job_id, status)
		SELECT 'demo', j.id, a.status
		FROM jobs j
		JOIN (VALUES
		    ('Backend Engineer', 'lunar-labs', 'applied'),
		    ('Founding Engineer', 'quill', 'interviewed')
		) AS a(title, handle, status)
		  ON j.title = a.title AND j.company_handle = a.handle;
	`)
	if err != nil {
		log.Fatalf("Failed to seed applications: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Seed data loaded.")
}
