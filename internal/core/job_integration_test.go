package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"jobboard/internal/apperror"
	"jobboard/internal/core"
)

func TestJob_Create(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewJobService(pool)

	t.Run("Create_Success", func(t *testing.T) {
		equity := decimal.RequireFromString("0.125")
		j, err := svc.Create(ctx, core.JobInput{
			Title:         "Staff Engineer",
			Salary:        intPtr(180000),
			Equity:        &equity,
			CompanyHandle: "c2",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if j.ID == 0 {
			t.Error("expected job ID to be set")
		}
		if j.Title != "Staff Engineer" {
			t.Errorf("expected title 'Staff Engineer', got %s", j.Title)
		}
		if j.Equity == nil || !j.Equity.Equal(equity) {
			t.Errorf("expected equity 0.125, got %v", j.Equity)
		}
		if j.CompanyHandle != "c2" {
			t.Errorf("expected companyHandle c2, got %s", j.CompanyHandle)
		}
	})

	t.Run("Create_NullableFields", func(t *testing.T) {
		j, err := svc.Create(ctx, core.JobInput{
			Title:         "Intern",
			CompanyHandle: "c1",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if j.Salary != nil || j.Equity != nil {
			t.Errorf("expected nil salary and equity, got %v / %v", j.Salary, j.Equity)
		}
	})

	t.Run("Create_MissingCompany_Fails", func(t *testing.T) {
		_, err := svc.Create(ctx, core.JobInput{
			Title:         "Ghost Job",
			CompanyHandle: "nope",
		})
		if err == nil {
			t.Fatal("expected error for missing company, got nil")
		}
		if err.Error() != "No company: nope" {
			t.Errorf("unexpected error message: %v", err)
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestJob_FindAll(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewJobService(pool)

	t.Run("NoFilter_AllOrderedByTitle", func(t *testing.T) {
		jobs, err := svc.FindAll(ctx, core.JobFilter{})
		if err != nil {
			t.Fatalf("FindAll: %v", err)
		}
		if len(jobs) != 3 {
			t.Fatalf("expected 3 jobs, got %d", len(jobs))
		}
		want := []string{"Analyst", "Designer", "Engineer"}
		for i, title := range want {
			if jobs[i].Title != title {
				t.Errorf("position %d: expected %s, got %s", i, title, jobs[i].Title)
			}
		}
		if jobs[0].CompanyName != "C1 Inc" {
			t.Errorf("expected joined company name 'C1 Inc', got %s", jobs[0].CompanyName)
		}
	})

	t.Run("TitleFilter_CaseInsensitiveSubstring", func(t *testing.T) {
		jobs, err := svc.FindAll(ctx, core.JobFilter{Title: strPtr("GINEER")})
		if err != nil {
			t.Fatalf("FindAll: %v", err)
		}
		if len(jobs) != 1 || jobs[0].Title != "Engineer" {
			t.Errorf("expected only Engineer, got %v", jobs)
		}
	})

	t.Run("MinSalary", func(t *testing.T) {
		jobs, err := svc.FindAll(ctx, core.JobFilter{MinSalary: intPtr(80000)})
		if err != nil {
			t.Fatalf("FindAll: %v", err)
		}
		// Designer's NULL salary never matches a range filter.
		if len(jobs) != 1 || jobs[0].Title != "Engineer" {
			t.Errorf("expected only Engineer, got %v", jobs)
		}
	})

	t.Run("HasEquity_SkipsZeroAndNull", func(t *testing.T) {
		jobs, err := svc.FindAll(ctx, core.JobFilter{HasEquity: true})
		if err != nil {
			t.Fatalf("FindAll: %v", err)
		}
		// Analyst has equity 0 and Designer has NULL; neither counts.
		if len(jobs) != 1 || jobs[0].Title != "Engineer" {
			t.Errorf("expected only Engineer, got %v", jobs)
		}
	})

	t.Run("HasEquityFalse_IsNoFilter", func(t *testing.T) {
		jobs, err := svc.FindAll(ctx, core.JobFilter{HasEquity: false})
		if err != nil {
			t.Fatalf("FindAll: %v", err)
		}
		if len(jobs) != 3 {
			t.Errorf("expected all 3 jobs, got %d", len(jobs))
		}
	})

	t.Run("CombinedFilters", func(t *testing.T) {
		jobs, err := svc.FindAll(ctx, core.JobFilter{
			Title:     strPtr("e"),
			MinSalary: intPtr(50000),
			HasEquity: true,
		})
		if err != nil {
			t.Fatalf("FindAll: %v", err)
		}
		if len(jobs) != 1 || jobs[0].Title != "Engineer" {
			t.Errorf("expected only Engineer, got %v", jobs)
		}
	})
}

func TestJob_Get(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewJobService(pool)

	t.Run("Get_AttachesCompany", func(t *testing.T) {
		j, err := svc.Get(ctx, 1)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if j.Title != "Engineer" {
			t.Errorf("expected Engineer, got %s", j.Title)
		}
		if j.Equity == nil || j.Equity.StringFixed(2) != "0.05" {
			t.Errorf("expected equity 0.05, got %v", j.Equity)
		}
		if j.Company == nil {
			t.Fatal("expected company to be attached")
		}
		if j.Company.Handle != "c1" || j.Company.Name != "C1 Inc" {
			t.Errorf("unexpected attached company: %+v", j.Company)
		}
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, 9999)
		if err == nil {
			t.Fatal("expected error for missing job, got nil")
		}
		if err.Error() != "No job: 9999" {
			t.Errorf("unexpected error message: %v", err)
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestJob_Update(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewJobService(pool)

	t.Run("PartialUpdate_LeavesOtherFields", func(t *testing.T) {
		j, err := svc.Update(ctx, 1, core.JobUpdate{Salary: intPtr(120000)})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if j.Salary == nil || *j.Salary != 120000 {
			t.Errorf("expected salary 120000, got %v", j.Salary)
		}
		if j.Title != "Engineer" {
			t.Errorf("expected title untouched, got %s", j.Title)
		}
		if j.Equity == nil || j.Equity.StringFixed(2) != "0.05" {
			t.Errorf("expected equity untouched, got %v", j.Equity)
		}
	})

	t.Run("Update_Equity", func(t *testing.T) {
		equity := decimal.RequireFromString("0.2")
		j, err := svc.Update(ctx, 2, core.JobUpdate{Equity: &equity})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if j.Equity == nil || !j.Equity.Equal(equity) {
			t.Errorf("expected equity 0.2, got %v", j.Equity)
		}
	})

	t.Run("EmptyUpdate_Fails", func(t *testing.T) {
		_, err := svc.Update(ctx, 1, core.JobUpdate{})
		if err == nil {
			t.Fatal("expected error for empty update, got nil")
		}
		if err.Error() != "No data" {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, core.JobUpdate{Title: strPtr("x")})
		if err == nil {
			t.Fatal("expected error for missing job, got nil")
		}
		if err.Error() != "No job: 9999" {
			t.Errorf("unexpected error message: %v", err)
		}
	})
}

func TestJob_Remove(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewJobService(pool)

	t.Run("Remove_Success", func(t *testing.T) {
		if err := svc.Remove(ctx, 3); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		_, err := svc.Get(ctx, 3)
		if err == nil || err.Error() != "No job: 3" {
			t.Errorf("expected job 3 to be gone, got %v", err)
		}
	})

	t.Run("Remove_NotFound", func(t *testing.T) {
		err := svc.Remove(ctx, 9999)
		if err == nil {
			t.Fatal("expected error for missing job, got nil")
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
