package timeline

// Classify deduce la categoría de un registro aplanado, sin requerir un tipo
// base compartido. Precedencia:
//  1. tiene "reason"            => medical
//  2. "type" == photo|video     => ese recuerdo
//  3. tiene "type" (otro valor) => activity
//  4. si no                     => unknown (se incluye en el feed genérico)
func Classify(fields map[string]string) Category {
	if _, ok := fields["reason"]; ok {
		return CategoryMedical
	}
	if t, ok := fields["type"]; ok {
		switch t {
		case "photo":
			return CategoryPhoto
		case "video":
			return CategoryVideo
		default:
			return CategoryActivity
		}
	}
	return CategoryUnknown
}

// Normalize asegura que el item tenga discriminante. Los servicios asignan
// Kind al crear; esto cubre registros importados/legados sin esa etiqueta.
func Normalize(it Item) Item {
	if it.Kind == "" {
		it.Kind = Classify(it.Fields)
	}
	return it
}
