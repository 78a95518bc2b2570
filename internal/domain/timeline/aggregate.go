package timeline

import "sort"

// Aggregate produce el feed final: normaliza, filtra y ordena descendente por
// fecha. El orden es estable: items con la misma fecha conservan su orden
// relativo de entrada. Fechas ilegibles ordenan al final (las más "viejas")
// en vez de romper el comparador. El resultado se recomputa completo en cada
// llamada; no hay estado incremental.
func Aggregate(items []Item, quick QuickFilter, f Filters) []Item {
	pred := Predicate(quick, f)

	out := make([]Item, 0, len(items))
	for _, it := range items {
		it = Normalize(it)
		if pred(it) {
			out = append(out, it)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, iOK := ParseDate(out[i].Date)
		tj, jOK := ParseDate(out[j].Date)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ti.After(tj)
	})

	return out
}
