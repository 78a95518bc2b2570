package timeline

import "strings"

// Filters es el estado del panel de filtros avanzados. Los valores en su
// default/vacío no imponen restricción.
type Filters struct {
	DateFrom string
	DateTo   string
	Type     TypeFilter
	Search   string
}

// Predicate combina el quick filter y los filtros avanzados en una sola
// decisión aceptar/rechazar. Todos los sub-filtros activos se componen con
// AND: son restricciones independientes, no modos excluyentes, así que un
// quick filter y un type filter contradictorios producen un set vacío.
func Predicate(quick QuickFilter, f Filters) func(Item) bool {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	from, fromOK := ParseDate(f.DateFrom)
	to, toOK := ParseDate(f.DateTo)

	return func(it Item) bool {
		if !matchQuick(quick, it.Kind) {
			return false
		}
		if !matchType(f.Type, it.Kind) {
			return false
		}
		if search != "" && !matchSearch(search, it) {
			return false
		}
		if fromOK || toOK {
			t, ok := ParseDate(it.Date)
			if !ok {
				// fecha ilegible: excluida de cualquier rango activo
				return false
			}
			if fromOK && t.Before(from) {
				return false
			}
			if toOK && t.After(to) {
				return false
			}
		}
		return true
	}
}

func matchQuick(q QuickFilter, k Category) bool {
	switch q {
	case QuickPhotos:
		return k == CategoryPhoto
	case QuickVideos:
		return k == CategoryVideo
	case QuickNotes:
		return !isMemory(k)
	case QuickSoins:
		return k == CategoryMedical
	default: // QuickAll o vacío
		return true
	}
}

func matchType(t TypeFilter, k Category) bool {
	switch t {
	case TypePhotos:
		return k == CategoryPhoto
	case TypeVideos:
		return k == CategoryVideo
	case TypeMedical:
		return k == CategoryMedical
	case TypeActivities:
		// excluye médico y recuerdos; conserva activity y unknown
		return k != CategoryMedical && !isMemory(k)
	default: // TypeAll o vacío
		return true
	}
}

// matchSearch: substring case-insensitive contra el registro aplanado entero.
func matchSearch(needle string, it Item) bool {
	for _, v := range it.Fields {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
