package health

import "time"

// Las fechas de registros de salud viajan como string "2006-01-02" (lo que
// produce el date picker del cliente); solo CreatedAt es un instante real.

type Vaccination struct {
	ID    string
	PetID string

	Name         string
	Date         string
	NextDue      string
	Veterinarian string
	Notes        string

	Status VaccinationStatus

	CreatedAt time.Time
}

type Treatment struct {
	ID    string
	PetID string

	Name         string
	Type         string
	StartDate    string
	EndDate      string
	Frequency    string
	Dosage       string
	Instructions string
	Veterinarian string

	Status TreatmentStatus

	CreatedAt time.Time
}

type MedicalVisit struct {
	ID    string
	PetID string

	Date         string
	Reason       string
	Veterinarian string
	Diagnosis    string
	Treatment    string
	Notes        string
	FollowUp     string
	Cost         string

	CreatedAt time.Time
}

type WeightEntry struct {
	ID    string
	PetID string

	Weight   float64 // kilogramos
	Date     string
	Time     string
	Location string
	Notes    string

	CreatedAt time.Time
}
