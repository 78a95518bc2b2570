package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsAndSanitizes(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:    "<i>Max</i>",
		Breed:   "Golden Retriever",
		VetName: "Dr. Martin",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Name != "Max" {
		t.Fatalf("expected markup stripped, got %q", p.Name)
	}
	if p.HealthStatus != HealthGood {
		t.Fatalf("expected default health good, got %s", p.HealthStatus)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected timestamps = now")
	}
	if p.Veterinarian.Name != "Dr. Martin" {
		t.Fatalf("expected vet contact kept, got %+v", p.Veterinarian)
	}
}

func TestService_Create_RequiresNameAndOwner(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "  ", CreateInput{Name: "Max"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without owner, got %v", err)
	}
}

func TestService_Update_PatchSemantics(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:  "Max",
		Breed: "Golden Retriever",
		Notes: "original",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	name := "Maxou"
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != "Maxou" {
		t.Fatalf("expected name updated, got %q", updated.Name)
	}
	// campos no enviados quedan intactos
	if updated.Breed != "Golden Retriever" || updated.Notes != "original" {
		t.Fatalf("expected untouched fields preserved, got %+v", updated)
	}

	empty := ""
	if _, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &empty}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
}

func TestService_Update_BirthDate_SetAndClear(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Max"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	birth := time.Date(2021, 3, 10, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{BirthDate: &birth})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.BirthDate == nil || !updated.BirthDate.Equal(birth) {
		t.Fatalf("expected birth date set, got %v", updated.BirthDate)
	}

	updated, err = svc.Update(context.Background(), p.ID, UpdateInput{ClearBirth: true})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.BirthDate != nil {
		t.Fatalf("expected birth date cleared, got %v", updated.BirthDate)
	}
}

func TestService_RequireOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Max"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.RequireOwner(context.Background(), p.ID, "owner-1"); err != nil {
		t.Fatalf("expected owner allowed, got %v", err)
	}
	if _, err := svc.RequireOwner(context.Background(), p.ID, "intruder"); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.RequireOwner(context.Background(), "nope", "owner-1"); err == nil {
		t.Fatalf("expected error for unknown pet")
	}
}

func TestService_ListByOwner_OnlyOwn(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Max"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(context.Background(), "owner-2", CreateInput{Name: "Luna"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.ListByOwner(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Max" {
		t.Fatalf("expected only owner-1 pets, got %+v", got)
	}
}
