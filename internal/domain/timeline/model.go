package timeline

import "time"

// Item es la entrada normalizada del feed cronológico. Cada colección fuente
// (visitas médicas, actividades, recuerdos, eventos genéricos) se proyecta a
// esta forma antes de agregarse.
type Item struct {
	ID   string
	Kind Category

	// Date es la fecha cruda del registro fuente ("2006-01-02", con hora,
	// o RFC3339). Se parsea recién al ordenar/filtrar: un valor ilegible no
	// rompe el feed, solo ordena al final.
	Date string

	Title    string
	Notes    string
	URL      string
	Caption  string
	Duration string

	// Fields es la representación aplanada del registro fuente completo.
	// La búsqueda libre matchea contra todos sus valores; Classify usa la
	// presencia de claves para el fallback estructural.
	Fields map[string]string
}

// dateLayouts: los formatos que producen los clientes, del más al menos preciso.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate intenta interpretar la fecha cruda de un item.
// ok=false significa fecha vacía o ilegible; nunca panic.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
