package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"lostlink/internal/models"
)

func TestSightingRepository_CreateRejectsMissingParent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSightingRepository(db)
	ctx := context.Background()

	reporter := createTestUser(t, db, "witness")

	err := repo.CreatePersonSighting(ctx, &models.PersonSighting{
		MissingPersonID:  4242,
		ReporterID:       reporter.ID,
		SightingAt:       time.Now(),
		SightingLocation: "Harbor Front",
	})
	if appErrCode(t, err) != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND for missing parent, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing person report") {
		t.Fatalf("expected parent-specific message, got %q", err.Error())
	}

	err = repo.CreateAnimalSighting(ctx, &models.AnimalSighting{
		MissingAnimalID:  4242,
		ReporterID:       reporter.ID,
		SightingAt:       time.Now(),
		SightingLocation: "Harbor Front",
	})
	if appErrCode(t, err) != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND for missing animal parent, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing animal report") {
		t.Fatalf("expected parent-specific message, got %q", err.Error())
	}
}

func TestSightingRepository_ListOrderedBySightingTime(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSightingRepository(db)
	ctx := context.Background()

	reporter := createTestUser(t, db, "spotter")
	other := createTestUser(t, db, "spotter2")
	report := createPersonReport(t, db, reporter.ID, "Sam Oh", models.StatusMissing, time.Now())

	base := time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)
	// Inserted out of order on purpose; listing sorts by sighting_at.
	earlier := models.PersonSighting{
		MissingPersonID:  report.ID,
		ReporterID:       other.ID,
		SightingAt:       base,
		SightingLocation: "Bus Terminal",
	}
	later := models.PersonSighting{
		MissingPersonID:  report.ID,
		ReporterID:       reporter.ID,
		SightingAt:       base.Add(2 * time.Hour),
		SightingLocation: "City Library",
	}
	if err := repo.CreatePersonSighting(ctx, &later); err != nil {
		t.Fatalf("create later: %v", err)
	}
	if err := repo.CreatePersonSighting(ctx, &earlier); err != nil {
		t.Fatalf("create earlier: %v", err)
	}

	views, err := repo.ListPersonSightings(ctx, report.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 sightings, got %d", len(views))
	}
	if views[0].SightingLocation != "City Library" {
		t.Fatalf("expected most recent sighting first, got %+v", views[0])
	}
	if views[0].ReporterNickname != "spotter" || views[1].ReporterNickname != "spotter2" {
		t.Fatalf("expected reporter nicknames resolved, got %+v", views)
	}
}

func TestSightingRepository_ListScopedToReport(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSightingRepository(db)
	ctx := context.Background()

	reporter := createTestUser(t, db, "scoper")
	a := createPersonReport(t, db, reporter.ID, "Report A", models.StatusMissing, time.Now())
	b := createPersonReport(t, db, reporter.ID, "Report B", models.StatusMissing, time.Now())

	if err := repo.CreatePersonSighting(ctx, &models.PersonSighting{
		MissingPersonID: a.ID, ReporterID: reporter.ID,
		SightingAt: time.Now(), SightingLocation: "Somewhere",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	views, err := repo.ListPersonSightings(ctx, b.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected no sightings for report B, got %d", len(views))
	}
}

func TestDeletingReportCascadesToSightings(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	personRepo := NewPersonRepository(db)
	sightingRepo := NewSightingRepository(db)
	ctx := context.Background()

	reporter := createTestUser(t, db, "cascader")
	report := createPersonReport(t, db, reporter.ID, "Cascade Me", models.StatusMissing, time.Now())

	if err := sightingRepo.CreatePersonSighting(ctx, &models.PersonSighting{
		MissingPersonID: report.ID, ReporterID: reporter.ID,
		SightingAt: time.Now(), SightingLocation: "Old Bridge",
	}); err != nil {
		t.Fatalf("create sighting: %v", err)
	}

	if err := personRepo.Delete(ctx, report.ID); err != nil {
		t.Fatalf("delete report: %v", err)
	}

	var count int64
	if err := db.Model(&models.PersonSighting{}).Where("missing_person_id = ?", report.ID).Count(&count).Error; err != nil {
		t.Fatalf("count sightings: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected cascade to remove sightings, found %d", count)
	}
}
