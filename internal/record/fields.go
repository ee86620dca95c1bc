package record

import (
	"strings"
	"unicode"
)

// Canonical field names used across the pipeline. Every known header spelling
// maps to one of these; anything else survives as a camelCased extra field.
const (
	FieldKey                = "key"
	FieldSummary            = "summary"
	FieldDescription        = "description"
	FieldState              = "state"
	FieldCountry            = "country"
	FieldArea               = "area"
	FieldEpic               = "epic"
	FieldAssignee           = "assignee"
	FieldDevResponsible     = "devResponsible"
	FieldPriority           = "priority"
	FieldStartDate          = "startDate"
	FieldEndDate            = "endDate"
	FieldUATStart           = "uatStart"
	FieldUATEnd             = "uatEnd"
	FieldProdDate           = "prodDate"
	FieldCreatedDate        = "createdDate"
	FieldRegulatoryDate     = "regulatoryDate"
	FieldSizing             = "sizing"
	FieldBusinessPriority   = "businessPriority"
	FieldTechnologyPriority = "technologyPriority"
)

// fieldAliases maps normalized header spellings (Spanish and English, with and
// without accents) to canonical field names.
var fieldAliases = map[string]string{
	"key":   FieldKey,
	"clave": FieldKey,
	"id":    FieldKey,

	"resumen": FieldSummary,
	"summary": FieldSummary,

	"descripcion": FieldDescription,
	"descripción": FieldDescription,
	"description": FieldDescription,

	"estado": FieldState,
	"status": FieldState,
	"state":  FieldState,

	"pais":    FieldCountry,
	"país":    FieldCountry,
	"pais bm": FieldCountry,
	"país bm": FieldCountry,
	"country": FieldCountry,

	"area":             FieldArea,
	"área":             FieldArea,
	"squad":            FieldArea,
	"tribu":            FieldArea,
	"area responsable": FieldArea,
	"área responsable": FieldArea,

	"epic":      FieldEpic,
	"epica":     FieldEpic,
	"épica":     FieldEpic,
	"epic link": FieldEpic,

	"responsable":      FieldAssignee,
	"assignee":         FieldAssignee,
	"owner":            FieldAssignee,
	"persona asignada": FieldAssignee,

	"responsable dev":        FieldDevResponsible,
	"dev responsible":        FieldDevResponsible,
	"responsable desarrollo": FieldDevResponsible,

	"prioridad": FieldPriority,
	"priority":  FieldPriority,

	"start date":      FieldStartDate,
	"fecha inicio":    FieldStartDate,
	"fecha de inicio": FieldStartDate,
	"inicio":          FieldStartDate,

	"end date":             FieldEndDate,
	"due date":             FieldEndDate,
	"fecha fin":            FieldEndDate,
	"fin":                  FieldEndDate,
	"fecha de vencimiento": FieldEndDate,

	"uat start":        FieldUATStart,
	"uat inicio":       FieldUATStart,
	"inicio uat":       FieldUATStart,
	"fecha inicio uat": FieldUATStart,

	"uat end":       FieldUATEnd,
	"uat fin":       FieldUATEnd,
	"fin uat":       FieldUATEnd,
	"fecha fin uat": FieldUATEnd,

	"prod date":         FieldProdDate,
	"fecha prod":        FieldProdDate,
	"production date":   FieldProdDate,
	"fecha pase a prod": FieldProdDate,

	"created":        FieldCreatedDate,
	"created date":   FieldCreatedDate,
	"fecha creacion": FieldCreatedDate,
	"fecha creación": FieldCreatedDate,

	"regulatory date":                   FieldRegulatoryDate,
	"fecha de cumplimiento regulatorio": FieldRegulatoryDate,

	"sizing": FieldSizing,
	"tamaño": FieldSizing,

	"business priority":               FieldBusinessPriority,
	"valoracion prioridad negocio":    FieldBusinessPriority,
	"valoración prioridad negocio":    FieldBusinessPriority,
	"technology priority":             FieldTechnologyPriority,
	"valoracion prioridad tecnologia": FieldTechnologyPriority,
	"valoración prioridad tecnología": FieldTechnologyPriority,
}

// dateFields is the set of canonical fields parsed as calendar dates rather
// than kept as cleaned strings.
var dateFields = map[string]bool{
	FieldStartDate:      true,
	FieldEndDate:        true,
	FieldUATStart:       true,
	FieldUATEnd:         true,
	FieldProdDate:       true,
	FieldCreatedDate:    true,
	FieldRegulatoryDate: true,
}

// IsDateField reports whether a canonical field holds a calendar date.
func IsDateField(field string) bool {
	return dateFields[field]
}

// NormalizeHeader lower-cases and trims a raw column header and collapses runs
// of symbols and whitespace into single spaces, so that "PAIS_BM", "Pais-BM"
// and "pais bm" all resolve to the same alias key.
func NormalizeHeader(header string) string {
	lower := strings.ToLower(strings.TrimSpace(header))

	var sb strings.Builder
	lastSpace := false
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			sb.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(sb.String())
}

// CanonicalField resolves a raw header to its canonical field name. The second
// return value reports whether the header was found in the alias table; when it
// is false the caller keeps the column under its camelCased name instead.
func CanonicalField(header string) (string, bool) {
	normalized := NormalizeHeader(header)
	if field, ok := fieldAliases[normalized]; ok {
		return field, true
	}
	return camelCase(normalized), false
}

// camelCase converts a normalized (space-separated) header into camelCase.
func camelCase(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(words[0])
	for _, w := range words[1:] {
		r := []rune(w)
		sb.WriteRune(unicode.ToUpper(r[0]))
		sb.WriteString(string(r[1:]))
	}
	return sb.String()
}

// NormalizeRow maps one raw row onto canonical field names. Headers and cells
// are matched positionally; when two columns resolve to the same canonical
// field the later column wins, which keeps the mapping deterministic for feeds
// with conflicting header aliases.
func NormalizeRow(headers []string, cells []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, header := range headers {
		if strings.TrimSpace(header) == "" {
			continue
		}
		var value string
		if i < len(cells) {
			value = cells[i]
		}
		field, _ := CanonicalField(header)
		if field == "" {
			continue
		}
		row[field] = value
	}
	return row
}
