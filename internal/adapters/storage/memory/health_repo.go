package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-companion/internal/domain/health"
)

// healthRepo guarda las cuatro colecciones del carnet de salud en maps
// separados; cada una se lista filtrada por mascota.
type healthRepo struct {
	mu           sync.RWMutex
	vaccinations map[string]health.Vaccination
	treatments   map[string]health.Treatment
	visits       map[string]health.MedicalVisit
	weights      map[string]health.WeightEntry
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		vaccinations: make(map[string]health.Vaccination),
		treatments:   make(map[string]health.Treatment),
		visits:       make(map[string]health.MedicalVisit),
		weights:      make(map[string]health.WeightEntry),
	}
}

func (r *healthRepo) CreateVaccination(ctx context.Context, v health.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vaccination id required")
	}
	if _, exists := r.vaccinations[v.ID]; exists {
		return errors.New("vaccination already exists")
	}
	r.vaccinations[v.ID] = v
	return nil
}

func (r *healthRepo) GetVaccination(ctx context.Context, id string) (health.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vaccinations[id]
	if !ok {
		return health.Vaccination{}, ErrNotFound
	}
	return v, nil
}

func (r *healthRepo) UpdateVaccination(ctx context.Context, v health.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vaccinations[v.ID]; !exists {
		return ErrNotFound
	}
	r.vaccinations[v.ID] = v
	return nil
}

func (r *healthRepo) ListVaccinations(ctx context.Context, petID string) ([]health.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.Vaccination, 0)
	for _, v := range r.vaccinations {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *healthRepo) CreateTreatment(ctx context.Context, t health.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("treatment id required")
	}
	if _, exists := r.treatments[t.ID]; exists {
		return errors.New("treatment already exists")
	}
	r.treatments[t.ID] = t
	return nil
}

func (r *healthRepo) GetTreatment(ctx context.Context, id string) (health.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.treatments[id]
	if !ok {
		return health.Treatment{}, ErrNotFound
	}
	return t, nil
}

func (r *healthRepo) UpdateTreatment(ctx context.Context, t health.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.treatments[t.ID]; !exists {
		return ErrNotFound
	}
	r.treatments[t.ID] = t
	return nil
}

func (r *healthRepo) ListTreatments(ctx context.Context, petID string) ([]health.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.Treatment, 0)
	for _, t := range r.treatments {
		if t.PetID == petID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *healthRepo) CreateVisit(ctx context.Context, v health.MedicalVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("visit id required")
	}
	if _, exists := r.visits[v.ID]; exists {
		return errors.New("visit already exists")
	}
	r.visits[v.ID] = v
	return nil
}

func (r *healthRepo) ListVisits(ctx context.Context, petID string) ([]health.MedicalVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.MedicalVisit, 0)
	for _, v := range r.visits {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *healthRepo) CreateWeight(ctx context.Context, w health.WeightEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(w.ID) == "" {
		return errors.New("weight id required")
	}
	if _, exists := r.weights[w.ID]; exists {
		return errors.New("weight already exists")
	}
	r.weights[w.ID] = w
	return nil
}

func (r *healthRepo) ListWeights(ctx context.Context, petID string) ([]health.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.WeightEntry, 0)
	for _, w := range r.weights {
		if w.PetID == petID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
