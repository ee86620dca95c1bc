package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"gestor/internal/record"
)

// exportColumns is the fixed column set of the canonical CSV export, in
// order. Dates are written ISO, empty when unknown.
var exportColumns = []string{
	"Clave",
	"Resumen",
	"Estado",
	"PAIS_BM",
	"Epica",
	"Persona asignada",
	"Responsable Dev",
	"Prioridad",
	"Area responsable",
	"Fecha de inicio",
	"Fecha de vencimiento",
	"Fecha Inicio UAT",
	"Fecha fin UAT",
	"Fecha pase a PROD",
	"Fecha de cumplimiento regulatorio",
}

// ExportCSV writes the records as a canonical CSV document.
func ExportCSV(w io.Writer, records []record.Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportColumns); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Key,
			r.Summary,
			r.State,
			r.Country,
			r.Epic,
			r.Assignee,
			r.DevResponsible,
			r.Priority,
			r.Area,
			isoDate(r.StartDate),
			isoDate(r.EndDate),
			isoDate(r.UATStart),
			isoDate(r.UATEnd),
			isoDate(r.ProdDate),
			isoDate(r.RegulatoryDate),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing export row %s: %w", r.Key, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
