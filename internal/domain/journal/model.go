package journal

import "time"

// MemoryKind distingue los dos tipos de recuerdo de la galería.
type MemoryKind string

const (
	MemoryPhoto MemoryKind = "photo"
	MemoryVideo MemoryKind = "video"
)

func ParseMemoryKind(s string) (MemoryKind, bool) {
	switch MemoryKind(s) {
	case MemoryPhoto, MemoryVideo:
		return MemoryKind(s), true
	default:
		return "", false
	}
}

// ActivityEntry es una actividad registrada (balade, jeu, toilettage...).
// Type y Duration son texto libre, igual que en la app original.
type ActivityEntry struct {
	ID    string
	PetID string

	Date     string
	Type     string
	Duration string
	Notes    string

	CreatedAt time.Time
}

// Memory es una foto o video de la galería.
type Memory struct {
	ID    string
	PetID string

	Kind    MemoryKind
	Date    string
	URL     string
	Caption string

	CreatedAt time.Time
}

// Event es la entrada genérica que el modal "Ajouter" crea directamente en la
// cronología, sin pertenecer al carnet de salud ni a la galería.
type Event struct {
	ID    string
	PetID string

	Date        string
	Title       string
	Description string
	Duration    string

	CreatedAt time.Time
}
