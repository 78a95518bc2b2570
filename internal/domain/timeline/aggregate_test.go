package timeline

import (
	"context"
	"testing"
)

// -------------------------
// Fixtures
// -------------------------

// fixtureItems reproduce un carnet típico: visita médica, recuerdos (foto y
// video), actividad y un evento genérico sin discriminante.
func fixtureItems() []Item {
	return []Item{
		{
			ID:   "visit-1",
			Kind: CategoryMedical,
			Date: "2024-01-15",
			Fields: map[string]string{
				"reason":       "Vaccins annuels",
				"veterinarian": "Dr. Martin",
			},
		},
		{
			ID:      "memory-photo-1",
			Kind:    CategoryPhoto,
			Date:    "2024-01-20",
			Caption: "Première neige!",
			Fields: map[string]string{
				"type":    "photo",
				"caption": "Première neige!",
			},
		},
		{
			ID:      "memory-video-1",
			Kind:    CategoryVideo,
			Date:    "2024-01-18",
			Caption: "Max apprend un nouveau tour",
			Fields: map[string]string{
				"type":    "video",
				"caption": "Max apprend un nouveau tour",
			},
		},
		{
			ID:    "activity-1",
			Kind:  CategoryActivity,
			Date:  "2024-01-22",
			Title: "Balade",
			Fields: map[string]string{
				"type":     "Balade",
				"location": "Parc des Buttes-Chaumont",
			},
		},
		{
			// evento genérico legado: sin Kind, Classify decide
			ID:    "event-1",
			Date:  "2024-01-10",
			Title: "Anniversaire",
			Fields: map[string]string{
				"title": "Anniversaire",
			},
		},
	}
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []Item, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d items %v, got %d: %v", len(want), want, len(got), ids(got))
	}
	for i, it := range got {
		if it.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s (full: %v)", i, want[i], it.ID, ids(got))
		}
	}
}

// -------------------------
// Aggregate
// -------------------------

func TestAggregate_NeutralFilters_IncludeEverything_DescByDate(t *testing.T) {
	out := Aggregate(fixtureItems(), QuickAll, Filters{})

	// orden descendente estricto por fecha
	assertIDs(t, out, "activity-1", "memory-photo-1", "memory-video-1", "visit-1", "event-1")
}

func TestAggregate_QuickFilters(t *testing.T) {
	items := fixtureItems()

	cases := []struct {
		name  string
		quick QuickFilter
		want  []string
	}{
		{"photos", QuickPhotos, []string{"memory-photo-1"}},
		{"videos", QuickVideos, []string{"memory-video-1"}},
		{"soins", QuickSoins, []string{"visit-1"}},
		// notes = todo menos recuerdos
		{"notes", QuickNotes, []string{"activity-1", "visit-1", "event-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Aggregate(items, tc.quick, Filters{})
			assertIDs(t, out, tc.want...)
		})
	}
}

func TestAggregate_QuickAndType_AreIndependentRestrictions(t *testing.T) {
	// soins ∩ activities no comparte categorías: set vacío, no un "modo gana"
	out := Aggregate(fixtureItems(), QuickSoins, Filters{Type: TypeActivities})
	if len(out) != 0 {
		t.Fatalf("expected empty set for contradictory filters, got %v", ids(out))
	}
}

func TestAggregate_TypeActivities_KeepsUnknown(t *testing.T) {
	out := Aggregate(fixtureItems(), QuickAll, Filters{Type: TypeActivities})
	assertIDs(t, out, "activity-1", "event-1")
}

func TestAggregate_Search_CaseInsensitive_AllFields(t *testing.T) {
	out := Aggregate(fixtureItems(), QuickAll, Filters{Search: "  BUTTES  "})
	assertIDs(t, out, "activity-1")

	// la búsqueda cubre todos los campos aplanados, no solo el título
	out = Aggregate(fixtureItems(), QuickAll, Filters{Search: "dr. martin"})
	assertIDs(t, out, "visit-1")
}

func TestAggregate_DateRange_IsInclusive(t *testing.T) {
	out := Aggregate(fixtureItems(), QuickAll, Filters{
		DateFrom: "2024-01-15",
		DateTo:   "2024-01-20",
	})
	assertIDs(t, out, "memory-photo-1", "memory-video-1", "visit-1")
}

func TestAggregate_UnparseableDate_SortsLast_AndExcludedFromRanges(t *testing.T) {
	items := append(fixtureItems(), Item{
		ID:     "broken-1",
		Kind:   CategoryActivity,
		Date:   "pas-une-date",
		Fields: map[string]string{"type": "Jeu"},
	})

	// sin rango: incluido, pero al final
	out := Aggregate(items, QuickAll, Filters{})
	if out[len(out)-1].ID != "broken-1" {
		t.Fatalf("expected broken date last, got order %v", ids(out))
	}

	// con rango activo: excluido
	out = Aggregate(items, QuickAll, Filters{DateFrom: "2024-01-01"})
	for _, it := range out {
		if it.ID == "broken-1" {
			t.Fatalf("expected broken date excluded from active range, got %v", ids(out))
		}
	}
}

func TestAggregate_StableOrder_ForEqualDates(t *testing.T) {
	items := []Item{
		{ID: "a", Kind: CategoryActivity, Date: "2024-01-20", Fields: map[string]string{"type": "Jeu"}},
		{ID: "b", Kind: CategoryActivity, Date: "2024-01-20", Fields: map[string]string{"type": "Balade"}},
		{ID: "c", Kind: CategoryActivity, Date: "2024-01-21", Fields: map[string]string{"type": "Jeu"}},
	}

	out := Aggregate(items, QuickAll, Filters{})
	assertIDs(t, out, "c", "a", "b")
}

func TestAggregate_IsIdempotent(t *testing.T) {
	f := Filters{Type: TypeActivities, Search: "balade"}

	once := Aggregate(fixtureItems(), QuickNotes, f)
	twice := Aggregate(once, QuickNotes, f)

	if len(once) != len(twice) {
		t.Fatalf("expected idempotent aggregation, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("expected same order on re-filter, got %v vs %v", ids(once), ids(twice))
		}
	}
}

// -------------------------
// Classify / Normalize
// -------------------------

func TestClassify_Precedence(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]string
		want   Category
	}{
		{"reason wins over type", map[string]string{"reason": "Contrôle", "type": "photo"}, CategoryMedical},
		{"type photo", map[string]string{"type": "photo"}, CategoryPhoto},
		{"type video", map[string]string{"type": "video"}, CategoryVideo},
		{"other type is activity", map[string]string{"type": "Balade"}, CategoryActivity},
		{"nothing known", map[string]string{"title": "x"}, CategoryUnknown},
		{"nil fields", nil, CategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.fields); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNormalize_KeepsExplicitKind(t *testing.T) {
	it := Item{Kind: CategoryMedical, Fields: map[string]string{"type": "photo"}}
	if got := Normalize(it).Kind; got != CategoryMedical {
		t.Fatalf("expected explicit kind preserved, got %s", got)
	}

	it = Item{Fields: map[string]string{"type": "photo"}}
	if got := Normalize(it).Kind; got != CategoryPhoto {
		t.Fatalf("expected classified kind, got %s", got)
	}
}

// -------------------------
// Parsers
// -------------------------

func TestParseQuickFilter(t *testing.T) {
	if q, ok := ParseQuickFilter(""); !ok || q != QuickAll {
		t.Fatalf("empty should be all, got %q ok=%v", q, ok)
	}
	if _, ok := ParseQuickFilter("soins"); !ok {
		t.Fatalf("soins should parse")
	}
	if _, ok := ParseQuickFilter("bogus"); ok {
		t.Fatalf("bogus should not parse")
	}
}

func TestParseDate_Layouts(t *testing.T) {
	for _, s := range []string{"2024-01-15", "2024-01-15T10:30", "2024-01-15T10:30:00Z"} {
		if _, ok := ParseDate(s); !ok {
			t.Fatalf("expected %q to parse", s)
		}
	}
	if _, ok := ParseDate("15/01/2024"); ok {
		t.Fatalf("expected 15/01/2024 to fail")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected empty to fail")
	}
}

// -------------------------
// Service
// -------------------------

type staticSource struct {
	items []Item
	err   error
}

func (s staticSource) TimelineItems(ctx context.Context, petID string) ([]Item, error) {
	return s.items, s.err
}

func TestService_Feed_MergesSources_AndLimits(t *testing.T) {
	svc := NewService(
		staticSource{items: fixtureItems()[:2]},
		staticSource{items: fixtureItems()[2:]},
	)

	out, err := svc.Feed(context.Background(), "pet-1", QuickAll, Filters{}, 0)
	if err != nil {
		t.Fatalf("Feed error: %v", err)
	}
	assertIDs(t, out, "activity-1", "memory-photo-1", "memory-video-1", "visit-1", "event-1")

	out, err = svc.Feed(context.Background(), "pet-1", QuickAll, Filters{}, 2)
	if err != nil {
		t.Fatalf("Feed error: %v", err)
	}
	assertIDs(t, out, "activity-1", "memory-photo-1")
}

func TestService_Feed_RequiresPetID(t *testing.T) {
	svc := NewService(staticSource{items: fixtureItems()})

	if _, err := svc.Feed(context.Background(), "  ", QuickAll, Filters{}, 0); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
