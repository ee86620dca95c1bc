package views

import (
	"sort"
	"time"

	"gestor/internal/record"
)

// Resource identity kinds: who a record was attributed to.
const (
	ResourceDev      = "dev"
	ResourceAssignee = "assignee"
)

// ResourceStats aggregates the workload attributed to one person.
type ResourceStats struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // dev or assignee, from the winning field
	Total       int    `json:"total"`
	Finalizados int    `json:"finalizados"`
	EnProceso   int    `json:"enProceso"`
	Overdue     int    `json:"overdue"`
	Throughput  int    `json:"throughput"` // percent of attributed items finished
}

// TeamMetrics summarizes the resource view as a whole.
type TeamMetrics struct {
	TotalResources     int `json:"totalResources"`
	TotalAssignedItems int `json:"totalAssignedItems"`
	UnassignedItems    int `json:"unassignedItems"`
	AvgThroughput      int `json:"avgThroughput"`
}

// ResourceSummary is the per-resource rollup plus team-level metrics.
type ResourceSummary struct {
	Resources []ResourceStats `json:"resources"`
	Team      TeamMetrics     `json:"team"`
}

// assignedResource resolves the single person a record is attributed to:
// the dev responsible when present, otherwise the assignee. A record lands in
// exactly one bucket, never both.
func assignedResource(r record.Record) (name, kind string, ok bool) {
	if r.DevResponsible != "" {
		return r.DevResponsible, ResourceDev, true
	}
	if r.Assignee != "" {
		return r.Assignee, ResourceAssignee, true
	}
	return "", "", false
}

// BuildResourceSummary computes per-resource workload stats, busiest first.
func BuildResourceSummary(records []record.Record, now time.Time) ResourceSummary {
	byName := make(map[string]*ResourceStats)
	unassigned := 0

	for _, r := range records {
		name, kind, ok := assignedResource(r)
		if !ok {
			unassigned++
			continue
		}

		stats, exists := byName[name]
		if !exists {
			stats = &ResourceStats{Name: name, Type: kind}
			byName[name] = stats
		}
		stats.Total++

		switch record.Classify(r.State) {
		case record.CategoryFinalizados:
			stats.Finalizados++
		case record.CategoryEnProceso:
			stats.EnProceso++
		}

		if r.EndDate != nil && r.EndDate.Before(now) && !record.IsFinalizado(r.State) {
			stats.Overdue++
		}
	}

	resources := make([]ResourceStats, 0, len(byName))
	throughputSum := 0
	for _, stats := range byName {
		stats.Throughput = roundPct(stats.Finalizados, stats.Total)
		throughputSum += stats.Throughput
		resources = append(resources, *stats)
	}
	sort.Slice(resources, func(i, j int) bool {
		if resources[i].Total != resources[j].Total {
			return resources[i].Total > resources[j].Total
		}
		return resources[i].Name < resources[j].Name
	})

	team := TeamMetrics{
		TotalResources:     len(resources),
		TotalAssignedItems: len(records) - unassigned,
		UnassignedItems:    unassigned,
	}
	if len(resources) > 0 {
		team.AvgThroughput = int(float64(throughputSum)/float64(len(resources)) + 0.5)
	}

	return ResourceSummary{Resources: resources, Team: team}
}
