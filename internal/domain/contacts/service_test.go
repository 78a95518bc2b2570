package contacts

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	contacts []EmergencyContact
}

func (r *testRepo) Create(ctx context.Context, c EmergencyContact) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	r.contacts = append(r.contacts, c)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]EmergencyContact, error) {
	out := make([]EmergencyContact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

func TestService_Add_ValidatesTypeAndRequiredFields(t *testing.T) {
	svc := NewService(&testRepo{})

	c, err := svc.Add(context.Background(), AddInput{
		Name:  "Clinique Vétérinaire d'Urgence",
		Phone: "01 98 76 54 32",
		Type:  "emergency",
	})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if c.Type != TypeEmergency {
		t.Fatalf("expected emergency type, got %s", c.Type)
	}

	if _, err := svc.Add(context.Background(), AddInput{Phone: "01", Type: "regular"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Add(context.Background(), AddInput{Name: "X", Type: "regular"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without phone, got %v", err)
	}
	if _, err := svc.Add(context.Background(), AddInput{Name: "X", Phone: "01", Type: "clinic"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
}

func TestService_SeedDefaults_OnlyWhenEmpty(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("SeedDefaults error: %v", err)
	}
	if len(repo.contacts) != 3 {
		t.Fatalf("expected 3 seeded contacts, got %d", len(repo.contacts))
	}

	// segunda llamada: no duplica
	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("SeedDefaults #2 error: %v", err)
	}
	if len(repo.contacts) != 3 {
		t.Fatalf("expected seed to be idempotent, got %d contacts", len(repo.contacts))
	}

	types := map[ContactType]bool{}
	for _, c := range repo.contacts {
		types[c.Type] = true
	}
	if !types[TypeRegular] || !types[TypeEmergency] || !types[TypeHospital] {
		t.Fatalf("expected one contact per type, got %v", types)
	}
}

func TestService_FirstAidSteps_FixedGuide(t *testing.T) {
	svc := NewService(&testRepo{})

	steps := svc.FirstAidSteps()
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	if steps[0].Title != "Gardez votre calme" {
		t.Fatalf("unexpected first step: %q", steps[0].Title)
	}
	for i, st := range steps {
		if st.Title == "" || st.Description == "" || st.Icon == "" {
			t.Fatalf("step %d incomplete: %+v", i, st)
		}
	}
}
