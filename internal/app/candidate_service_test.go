package app_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/glowtours/backoffice/internal/app"
	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/candidate"
	"github.com/glowtours/backoffice/internal/store"
)

func docURL(content string) string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte(content))
}

func validCandidate() *candidate.Candidate {
	return &candidate.Candidate{
		Name:        "Nuzuhath Ahmed",
		Email:       "nuzuhath@example.com",
		Nationality: "Maldivian",
		PassportNo:  "P7654321",
		Position:    "Guest Relations Officer",
	}
}

func TestCandidateCreate_DefaultsToAvailable(t *testing.T) {
	t.Parallel()

	svc := app.NewCandidateService(store.New(), testLogger(), 0)

	created, err := svc.Create(context.Background(), validCandidate())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.Status != candidate.StatusAvailable {
		t.Errorf("Status = %q, want available", created.Status)
	}
	if created.ID == "" {
		t.Error("Create() did not assign an id")
	}
}

func TestCandidateCreate_ExplicitStatusKept(t *testing.T) {
	t.Parallel()

	svc := app.NewCandidateService(store.New(), testLogger(), 0)

	c := validCandidate()
	c.Status = candidate.StatusProcessing
	created, err := svc.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.Status != candidate.StatusProcessing {
		t.Errorf("Status = %q, want processing", created.Status)
	}
}

func TestCandidateCreate_MissingFields(t *testing.T) {
	t.Parallel()

	svc := app.NewCandidateService(store.New(), testLogger(), 0)

	_, err := svc.Create(context.Background(), &candidate.Candidate{Name: "Only Name"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create() error = %v, want ValidationError", err)
	}
	for _, field := range []string{"email", "position"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Fields missing %q: %v", field, verr.Fields)
		}
	}
}

func TestCandidateCreate_ResumeMustBeDocument(t *testing.T) {
	t.Parallel()

	svc := app.NewCandidateService(store.New(), testLogger(), 0)

	c := validCandidate()
	c.Resume = "data:video/mp4;base64," + base64.StdEncoding.EncodeToString([]byte("vid"))

	if _, err := svc.Create(context.Background(), c); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Create() with video resume error = %v, want ErrValidation", err)
	}
}

func TestCandidateCreate_ResumeSizeLimit(t *testing.T) {
	t.Parallel()

	svc := app.NewCandidateService(store.New(), testLogger(), 32)

	c := validCandidate()
	c.Resume = docURL(strings.Repeat("x", 33))

	if _, err := svc.Create(context.Background(), c); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Create() with oversized resume error = %v, want ErrValidation", err)
	}
}

func TestCandidateUpdate_SetsStatusDirectly(t *testing.T) {
	t.Parallel()

	svc := app.NewCandidateService(store.New(), testLogger(), 0)

	created, err := svc.Create(context.Background(), validCandidate())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Candidate status has no transition table; hired can be set straight
	// from available.
	next := *created
	next.Status = candidate.StatusHired
	updated, err := svc.Update(context.Background(), created.ID, &next)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Status != candidate.StatusHired {
		t.Errorf("Status = %q, want hired", updated.Status)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Update() changed CreatedAt")
	}
}

func TestCandidateList_Search(t *testing.T) {
	t.Parallel()

	svc := app.NewCandidateService(store.New(), testLogger(), 0)

	first := validCandidate()
	if _, err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	second := validCandidate()
	second.Name = "Joseph Mathew"
	second.Email = "joseph@example.com"
	second.Position = "Sous Chef"
	if _, err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := svc.List(context.Background(), "chef")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Joseph Mathew" {
		t.Errorf("List(chef) = %v, want only Joseph Mathew", got)
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List(\"\") returned %d candidates, want 2", len(all))
	}
}

func TestCandidateDelete(t *testing.T) {
	t.Parallel()

	svc := app.NewCandidateService(store.New(), testLogger(), 0)

	created, err := svc.Create(context.Background(), validCandidate())
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
