package contacts

import "time"

// ContactType categoriza el contacto para la pantalla de urgencias.
type ContactType string

const (
	TypeRegular   ContactType = "regular"
	TypeEmergency ContactType = "emergency"
	TypeHospital  ContactType = "hospital"
)

func ParseContactType(s string) (ContactType, bool) {
	switch ContactType(s) {
	case TypeRegular, TypeEmergency, TypeHospital:
		return ContactType(s), true
	default:
		return "", false
	}
}

// EmergencyContact es un veterinario o centro de urgencias cercano.
// Distance y Availability son texto libre tal como se muestran en pantalla.
type EmergencyContact struct {
	ID           string
	Name         string
	Phone        string
	Address      string
	Distance     string
	Availability string
	Type         ContactType

	CreatedAt time.Time
}

// FirstAidStep es un paso de la guía de primeros auxilios.
type FirstAidStep struct {
	Title       string
	Description string
	Icon        string
}
