package health

import "context"

type Repository interface {
	CreateVaccination(ctx context.Context, v Vaccination) error
	GetVaccination(ctx context.Context, id string) (Vaccination, error)
	UpdateVaccination(ctx context.Context, v Vaccination) error
	ListVaccinations(ctx context.Context, petID string) ([]Vaccination, error)

	CreateTreatment(ctx context.Context, t Treatment) error
	GetTreatment(ctx context.Context, id string) (Treatment, error)
	UpdateTreatment(ctx context.Context, t Treatment) error
	ListTreatments(ctx context.Context, petID string) ([]Treatment, error)

	CreateVisit(ctx context.Context, v MedicalVisit) error
	ListVisits(ctx context.Context, petID string) ([]MedicalVisit, error)

	CreateWeight(ctx context.Context, w WeightEntry) error
	ListWeights(ctx context.Context, petID string) ([]WeightEntry, error)
}
