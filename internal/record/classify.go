package record

// Category is one of the closed lifecycle buckets a ticket's free-text state
// maps to, or CategoryOtros when the state matches none of them.
type Category string

const (
	CategoryFinalizados  Category = "finalizados"
	CategoryEnProceso    Category = "enProceso"
	CategoryEnAprobacion Category = "enAprobacion"
	CategoryEnDiseno     Category = "enDiseno"
	CategoryAPriorizar   Category = "aPriorizar"
	CategoryBocaBacklog  Category = "bocaBacklog"
	CategoryCancelados   Category = "cancelados"

	// CategoryOtros marks states absent from every membership list. It is
	// counted and reported wherever a category breakdown is shown, never
	// merged into a neighboring bucket.
	CategoryOtros Category = "otros"
)

// Categories lists the seven closed lifecycle buckets in display order.
// CategoryOtros is deliberately not included; callers that need the full
// partition append it themselves.
var Categories = []Category{
	CategoryFinalizados,
	CategoryEnProceso,
	CategoryEnAprobacion,
	CategoryEnDiseno,
	CategoryAPriorizar,
	CategoryBocaBacklog,
	CategoryCancelados,
}

// ActiveCategories are the buckets considered "in flight" by the activos
// lifecycle filter. Finalizados, cancelados and otros are excluded.
var ActiveCategories = []Category{
	CategoryEnProceso,
	CategoryEnAprobacion,
	CategoryEnDiseno,
	CategoryAPriorizar,
	CategoryBocaBacklog,
}

// stateCategories holds the verbatim state spellings of each lifecycle bucket.
// Membership is exact and case-sensitive: a state classifies into a bucket
// only when it appears here letter for letter.
var stateCategories = map[Category][]string{
	CategoryFinalizados:  {"DONE", "Pase Produccion", "Completado", "Finalizada", "Completada", "Cerrado", "Resuelto"},
	CategoryEnProceso:    {"ANALISIS", "DEV", "UAT", "En curso", "En pausa", "En planificacion-analisis", "En implementación", "En Planificación", "Esperando por ayuda", "Esperando por el cliente"},
	CategoryEnAprobacion: {"Aprobacion Diseño Negocio", "APROBACION DISEÑO TECNICO"},
	CategoryEnDiseno:     {"SOLUTIONS"},
	CategoryAPriorizar:   {"PRIORIZAR", "Prioridad 1", "Planificación", "Planning-Interno", "backlog", "Por Analizar", "Abierto", "Pendiente"},
	CategoryBocaBacklog:  {"Highest", "Por analizar", "Priorizado", "Analizada - Por implementar", "Escalado"},
	CategoryCancelados:   {"Cancelada", "Analizada - Descartada", "Duplicada", "Cancelado"},
}

var stateToCategory = buildStateIndex()

func buildStateIndex() map[string]Category {
	index := make(map[string]Category)
	for _, cat := range Categories {
		for _, state := range stateCategories[cat] {
			index[state] = cat
		}
	}
	return index
}

// Classify maps a free-text state to its lifecycle category, or CategoryOtros
// when it appears in no membership list. No fuzzy or partial matching.
func Classify(state string) Category {
	if cat, ok := stateToCategory[state]; ok {
		return cat
	}
	return CategoryOtros
}

// IsFinalizado reports whether a state belongs to the terminal-success bucket.
func IsFinalizado(state string) bool {
	return Classify(state) == CategoryFinalizados
}

// IsActive reports whether a state's category is one of the in-flight buckets.
func IsActive(state string) bool {
	switch Classify(state) {
	case CategoryEnProceso, CategoryEnAprobacion, CategoryEnDiseno, CategoryAPriorizar, CategoryBocaBacklog:
		return true
	}
	return false
}
