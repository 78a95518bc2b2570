package timeline

// Category es el discriminante de un item del feed.
// Se asigna en el momento de creación del registro; Classify existe como
// fallback estructural para registros que llegan sin discriminante.
type Category string

const (
	CategoryMedical  Category = "medical"
	CategoryPhoto    Category = "photo"
	CategoryVideo    Category = "video"
	CategoryActivity Category = "activity"
	CategoryUnknown  Category = "unknown"
)

// isMemory indica si la categoría corresponde a un recuerdo (foto o video).
func isMemory(c Category) bool {
	return c == CategoryPhoto || c == CategoryVideo
}

// QuickFilter es el filtro de chips de la UI: selección única.
type QuickFilter string

const (
	QuickAll    QuickFilter = "all"
	QuickPhotos QuickFilter = "photos"
	QuickVideos QuickFilter = "videos"
	QuickNotes  QuickFilter = "notes"
	QuickSoins  QuickFilter = "soins"
)

// ParseQuickFilter acepta el valor del query param; vacío => all.
func ParseQuickFilter(s string) (QuickFilter, bool) {
	switch QuickFilter(s) {
	case "", QuickAll:
		return QuickAll, true
	case QuickPhotos, QuickVideos, QuickNotes, QuickSoins:
		return QuickFilter(s), true
	default:
		return "", false
	}
}

// TypeFilter es el filtro de tipo del panel avanzado.
type TypeFilter string

const (
	TypeAll        TypeFilter = "all"
	TypePhotos     TypeFilter = "photos"
	TypeVideos     TypeFilter = "videos"
	TypeMedical    TypeFilter = "medical"
	TypeActivities TypeFilter = "activities"
)

func ParseTypeFilter(s string) (TypeFilter, bool) {
	switch TypeFilter(s) {
	case "", TypeAll:
		return TypeAll, true
	case TypePhotos, TypeVideos, TypeMedical, TypeActivities:
		return TypeFilter(s), true
	default:
		return "", false
	}
}
