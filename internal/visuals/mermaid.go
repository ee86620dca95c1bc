package visuals

import (
	"fmt"
	"math"
	"strings"

	"gestor/internal/record"
	"gestor/internal/views"
)

// GenerateTrendChart creates a Mermaid xychart-beta for the monthly completion
// trend: delivered items as bars, active items as a line.
func GenerateTrendChart(months []views.MonthBucket) string {
	if len(months) == 0 {
		return ""
	}

	var labels []string
	var completed []string
	var active []string

	maxVal := 0
	for _, m := range months {
		labels = append(labels, fmt.Sprintf("\"%s\"", m.Start.Format("Jan06")))
		completed = append(completed, fmt.Sprintf("%d", m.Completed))
		active = append(active, fmt.Sprintf("%d", m.Active))
		if m.Completed > maxVal {
			maxVal = m.Completed
		}
		if m.Active > maxVal {
			maxVal = m.Active
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Tendencia Mensual (Completados vs Activos)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Items\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(completed, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(active, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateEpicHealthChart creates a Mermaid bar chart of epic health scores.
func GenerateEpicHealthChart(rollups []views.EpicRollup) string {
	if len(rollups) == 0 {
		return ""
	}

	// Limit to 20 epics to avoid overwhelming the text chart context
	limit := len(rollups)
	if limit > 20 {
		limit = 20
	}

	var labels []string
	var values []string
	for i := 0; i < limit; i++ {
		// Replace spaces to help mermaid rendering
		safeName := strings.ReplaceAll(rollups[i].Epic, " ", "_")
		labels = append(labels, fmt.Sprintf("\"%s\"", safeName))
		values = append(values, fmt.Sprintf("%d", rollups[i].HealthScore))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Salud por Épica\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"Score\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateEpicGantt creates a Mermaid gantt chart for the epic timeline.
// Point-in-time phases (prod pass, regulatory deadline) render as milestones.
func GenerateEpicGantt(timelines []views.EpicTimeline) string {
	if len(timelines) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("gantt\n")
	sb.WriteString("    title Cronograma por Épica\n")
	sb.WriteString("    dateFormat YYYY-MM-DD\n")

	for _, timeline := range timelines {
		sb.WriteString(fmt.Sprintf("    section %s\n", sanitizeGanttLabel(timeline.Epic)))
		for _, ticket := range timeline.Tickets {
			for _, phase := range ticket.Phases {
				name := fmt.Sprintf("%s %s", ticket.Key, phase.Name)
				if phase.Start.Equal(phase.End) {
					sb.WriteString(fmt.Sprintf("    %s : milestone, %s, 0d\n",
						name, phase.Start.Format("2006-01-02")))
					continue
				}
				sb.WriteString(fmt.Sprintf("    %s : %s, %s\n",
					name, phase.Start.Format("2006-01-02"), phase.End.Format("2006-01-02")))
			}
		}
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateCategoryPie creates a Mermaid pie chart of the lifecycle breakdown.
func GenerateCategoryPie(dashboard views.Dashboard) string {
	if dashboard.Total == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie title Distribución por Estado\n")
	for _, category := range append(append([]record.Category{}, record.Categories...), record.CategoryOtros) {
		count := dashboard.Categories[category]
		if count == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("    \"%s\" : %d\n", category, count))
	}
	sb.WriteString("```")
	return sb.String()
}

func sanitizeGanttLabel(label string) string {
	// Colons and hashes are gantt syntax; strip them from free-text labels.
	label = strings.ReplaceAll(label, ":", " ")
	return strings.ReplaceAll(label, "#", " ")
}
