package health

import "sort"

// TargetZone es el rango de peso ideal configurado para la mascota.
type TargetZone struct {
	Min float64
	Max float64
}

// WeightSummary resume la curva de peso para la vista de seguimiento.
type WeightSummary struct {
	Current float64
	// Trend es la diferencia entre la última pesada y la anterior.
	// |Trend| <= 0.1 kg se considera estable.
	Trend  float64
	Stable bool
	Min    float64
	Max    float64
	Count  int
	// InTargetZone es nil si no hay zona configurada.
	InTargetZone *bool
}

// SummarizeWeights calcula el resumen sobre las pesadas ordenadas por fecha
// ascendente (fechas ilegibles quedan al principio, como las más viejas).
func SummarizeWeights(entries []WeightEntry, target *TargetZone) WeightSummary {
	if len(entries) == 0 {
		return WeightSummary{}
	}

	sorted := make([]WeightEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	sum := WeightSummary{
		Current: sorted[len(sorted)-1].Weight,
		Min:     sorted[0].Weight,
		Max:     sorted[0].Weight,
		Count:   len(sorted),
	}

	for _, e := range sorted {
		if e.Weight < sum.Min {
			sum.Min = e.Weight
		}
		if e.Weight > sum.Max {
			sum.Max = e.Weight
		}
	}

	if len(sorted) >= 2 {
		sum.Trend = sum.Current - sorted[len(sorted)-2].Weight
	}
	sum.Stable = sum.Trend <= 0.1 && sum.Trend >= -0.1

	if target != nil {
		in := sum.Current >= target.Min && sum.Current <= target.Max
		sum.InTargetZone = &in
	}

	return sum
}
