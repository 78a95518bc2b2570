package pets

import "time"

// HealthStatus es el estado general mostrado en el perfil.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthWatch     HealthStatus = "watch"
)

// VetContact es el veterinario referente de la mascota.
type VetContact struct {
	Name    string
	Phone   string
	Address string
}

// Pet es el perfil completo de una mascota registrada.
type Pet struct {
	ID          string
	OwnerUserID string

	Name       string
	Breed      string
	Gender     string
	Sterilized bool
	ChipNumber string
	Color      string
	PhotoURL   string

	BirthDate *time.Time

	HealthStatus HealthStatus
	Notes        string

	Veterinarian VetContact

	CreatedAt time.Time
	UpdatedAt time.Time
}
