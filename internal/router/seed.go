package router

import (
	"context"
	"fmt"

	"pet-companion/internal/domain/health"
	"pet-companion/internal/domain/journal"
	"pet-companion/internal/domain/pets"
)

// DemoUserID es el dueño de la data de demo; coincide con el header
// X-Debug-User-ID que se usa en modo dev.
const DemoUserID = "demo-user"

// seedDemo carga la mascota Max con el mismo escenario de salud, actividades
// y recuerdos que mostraba la maqueta original. Solo para dev/demo.
func seedDemo(ctx context.Context, petsSvc *pets.Service, healthSvc *health.Service, journalSvc *journal.Service) error {
	max, err := petsSvc.Create(ctx, DemoUserID, pets.CreateInput{
		Name:       "Max",
		Breed:      "Golden Retriever",
		Gender:     "male",
		Sterilized: true,
		Color:      "Doré",
		VetName:    "Dr. Martin",
		VetPhone:   "01 23 45 67 89",
		VetAddress: "123 Rue de la Santé, 75001 Paris",
	})
	if err != nil {
		return fmt.Errorf("seed pet: %w", err)
	}

	vaccinations := []health.AddVaccinationInput{
		{Name: "Rage", Date: "2024-01-15", NextDue: "2025-01-15"},
		{Name: "CHPPI", Date: "2024-02-10", NextDue: "2025-02-10"},
		{Name: "Leishmaniose", Date: "2023-12-05", NextDue: "2024-12-05"},
	}
	for _, in := range vaccinations {
		if _, err := healthSvc.AddVaccination(ctx, max.ID, in); err != nil {
			return fmt.Errorf("seed vaccination: %w", err)
		}
	}

	treatments := []health.AddTreatmentInput{
		{Name: "Antiparasitaire", Type: "Préventif", StartDate: "2024-01-20", Frequency: "Mensuel"},
		{Name: "Vermifuge", Type: "Traitement", StartDate: "2024-01-10", Frequency: "Trimestriel"},
	}
	for _, in := range treatments {
		if _, err := healthSvc.AddTreatment(ctx, max.ID, in); err != nil {
			return fmt.Errorf("seed treatment: %w", err)
		}
	}

	visits := []health.AddVisitInput{
		{Date: "2024-01-15", Reason: "Vaccins annuels", Veterinarian: "Dr. Martin", Notes: "RAS, animal en bonne santé"},
		{Date: "2023-12-20", Reason: "Contrôle général", Veterinarian: "Dr. Martin", Notes: "Léger surpoids à surveiller"},
	}
	for _, in := range visits {
		if _, err := healthSvc.AddVisit(ctx, max.ID, in); err != nil {
			return fmt.Errorf("seed visit: %w", err)
		}
	}

	weights := []health.AddWeightInput{
		{Date: "2023-12-01", Weight: 26.5},
		{Date: "2023-12-15", Weight: 27.0},
		{Date: "2024-01-01", Weight: 27.8},
		{Date: "2024-01-15", Weight: 28.2},
		{Date: "2024-01-22", Weight: 28.0},
	}
	for _, in := range weights {
		if _, err := healthSvc.AddWeight(ctx, max.ID, in); err != nil {
			return fmt.Errorf("seed weight: %w", err)
		}
	}

	activities := []journal.AddActivityInput{
		{Date: "2024-01-22", Type: "Balade", Duration: "45 min", Notes: "Parc des Buttes-Chaumont"},
		{Date: "2024-01-21", Type: "Jeu", Duration: "20 min", Notes: "Jeu de balle dans le jardin"},
		{Date: "2024-01-20", Type: "Toilettage", Duration: "30 min", Notes: "Brossage et lavage des dents"},
	}
	for _, in := range activities {
		if _, err := journalSvc.AddActivity(ctx, max.ID, in); err != nil {
			return fmt.Errorf("seed activity: %w", err)
		}
	}

	memories := []journal.AddMemoryInput{
		{Kind: "photo", Date: "2024-01-20", URL: "/assets/timeline-1.jpg", Caption: "Première neige!"},
		{Kind: "video", Date: "2024-01-18", URL: "/assets/timeline-2.jpg", Caption: "Max apprend un nouveau tour"},
		{Kind: "photo", Date: "2024-01-15", URL: "/assets/timeline-3.jpg", Caption: "Visite chez le vétérinaire"},
	}
	for _, in := range memories {
		if _, err := journalSvc.AddMemory(ctx, max.ID, in); err != nil {
			return fmt.Errorf("seed memory: %w", err)
		}
	}

	return nil
}
