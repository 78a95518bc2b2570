package health

// VaccinationStatus alterna entre exactamente dos valores fijos.
type VaccinationStatus string

const (
	VaccinationUpToDate VaccinationStatus = "up-to-date"
	VaccinationOverdue  VaccinationStatus = "overdue"
)

func (s VaccinationStatus) Toggle() VaccinationStatus {
	if s == VaccinationUpToDate {
		return VaccinationOverdue
	}
	return VaccinationUpToDate
}

// TreatmentStatus conserva los valores de la app original.
type TreatmentStatus string

const (
	TreatmentOngoing  TreatmentStatus = "en-cours"
	TreatmentFinished TreatmentStatus = "terminé"
)

func (s TreatmentStatus) Toggle() TreatmentStatus {
	if s == TreatmentOngoing {
		return TreatmentFinished
	}
	return TreatmentOngoing
}
