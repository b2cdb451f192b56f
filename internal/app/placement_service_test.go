package app_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glowtours/backoffice/internal/app"
	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/recruited"
	"github.com/glowtours/backoffice/internal/store"
)

func imageURL(content string) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(content))
}

func validWorker() *recruited.Worker {
	return &recruited.Worker{
		Name:        "Ahmed Rasheed",
		PassportNo:  "P1234567",
		Nationality: "Bangladeshi",
		Employer:    "Reef Resort Pvt Ltd",
		JobTitle:    "Chef",
		ArrivalDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestPlacementCreate_AndGet(t *testing.T) {
	t.Parallel()

	svc := app.NewPlacementService(store.New(), testLogger(), 0, "glow_tours")

	created, err := svc.Create(context.Background(), validWorker())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() did not assign an id")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.PassportNo != "P1234567" {
		t.Errorf("PassportNo = %q, want P1234567", got.PassportNo)
	}
}

func TestPlacementCreate_MissingFields(t *testing.T) {
	t.Parallel()

	svc := app.NewPlacementService(store.New(), testLogger(), 0, "glow_tours")

	_, err := svc.Create(context.Background(), &recruited.Worker{Name: "Only Name"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create() error = %v, want ValidationError", err)
	}
	for _, field := range []string{"passport_no", "employer", "job_title"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Fields missing %q: %v", field, verr.Fields)
		}
	}
}

func TestPlacementCreate_PhotoMustBeImage(t *testing.T) {
	t.Parallel()

	svc := app.NewPlacementService(store.New(), testLogger(), 0, "glow_tours")

	w := validWorker()
	w.Photo = "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("doc"))

	_, err := svc.Create(context.Background(), w)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Create() with pdf photo error = %v, want ErrValidation", err)
	}
}

func TestPlacementCreate_AttachmentSizeLimit(t *testing.T) {
	t.Parallel()

	svc := app.NewPlacementService(store.New(), testLogger(), 16, "glow_tours")

	w := validWorker()
	w.Photo = imageURL(strings.Repeat("x", 17))

	_, err := svc.Create(context.Background(), w)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Create() with oversized photo error = %v, want ErrValidation", err)
	}
}

func TestPlacementUpdate_FullReplace(t *testing.T) {
	t.Parallel()

	svc := app.NewPlacementService(store.New(), testLogger(), 0, "glow_tours")

	created, err := svc.Create(context.Background(), validWorker())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	repl := validWorker()
	repl.JobTitle = "Head Chef"
	repl.WorkPermitNo = "WP-1234"

	updated, err := svc.Update(context.Background(), created.ID, repl)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.JobTitle != "Head Chef" {
		t.Errorf("JobTitle = %q, want Head Chef", updated.JobTitle)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed on update: %q -> %q", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}
}

func TestPlacementExportCSV(t *testing.T) {
	t.Parallel()

	svc := app.NewPlacementService(store.New(), testLogger(), 0, "glow_tours")

	for range 3 {
		if _, err := svc.Create(context.Background(), validWorker()); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	filename, data, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}

	if !strings.HasPrefix(filename, "glow_tours_recruited_candidates_") || !strings.HasSuffix(filename, ".csv") {
		t.Errorf("filename = %q, want glow_tours_recruited_candidates_<date>.csv", filename)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("export has %d lines, want 4 (header + 3 rows)", len(lines))
	}
}

func TestPlacementDelete(t *testing.T) {
	t.Parallel()

	svc := app.NewPlacementService(store.New(), testLogger(), 0, "glow_tours")

	created, err := svc.Create(context.Background(), validWorker())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}
