package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"gestor/internal/feed"
	"gestor/internal/record"
	"gestor/internal/views"
	"gestor/internal/visuals"
)

var errNoData = errors.New("no feed loaded; call load_feed first")

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	var data interface{}
	var err error
	now := time.Now().UTC()

	switch call.Name {
	case "load_feed":
		source, _ := call.Arguments["source"].(string)
		data, err = s.handleLoadFeed(source)
	case "get_filters":
		data = map[string]interface{}{
			"filters": s.filters,
			"source":  s.source,
			"records": len(s.records),
		}
	case "set_filters":
		data, err = s.handleSetFilters(call.Arguments)
	case "list_filter_options":
		if err = s.requireData(); err == nil {
			data = views.FilterOptions(s.records, s.filters.Area)
		}
	case "get_dashboard":
		data, err = s.handleDashboard(now)
	case "get_epics":
		data, err = s.handleEpics()
	case "get_resources":
		if err = s.requireData(); err == nil {
			data = views.BuildResourceSummary(s.filtered(), now)
		}
	case "get_monthly_trend":
		data, err = s.handleMonthlyTrend(now)
	case "get_risks":
		if err = s.requireData(); err == nil {
			data = views.BuildRiskSummary(s.filtered(), now)
		}
	case "get_timeline":
		since, _ := call.Arguments["since"].(string)
		data, err = s.handleTimeline(now, since)
	case "get_scoring":
		if err = s.requireData(); err == nil {
			data = views.BuildPriorityRanking(s.filtered(), now)
		}
	case "get_weighted_scoring":
		if err = s.requireData(); err == nil {
			data = views.BuildWeightedRanking(s.filtered(), views.DefaultScoringConfig)
		}
	case "get_finalizados":
		if err = s.requireData(); err == nil {
			data = views.BuildFinalizados(s.filtered())
		}
	case "predict_item":
		key, _ := call.Arguments["key"].(string)
		data, err = s.handlePredict(key)
	case "export_csv":
		path, _ := call.Arguments["path"].(string)
		data, err = s.handleExport(path)
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

func (s *Server) requireData() error {
	if len(s.records) == 0 {
		return errNoData
	}
	return nil
}

func (s *Server) handleLoadFeed(source string) (interface{}, error) {
	if source == "" {
		source = s.cfg.FeedSource()
	}
	if source == "" {
		return nil, errors.New("no source given and no default feed configured")
	}

	table, err := s.loader.Load(context.Background(), source)
	if err != nil {
		return nil, err
	}

	opts := record.DefaultBuildOptions()
	opts.Dates = s.cfg.DateBounds
	opts.RequireKey = s.cfg.RequireKey

	s.records = record.BuildAll(table.Headers, table.Rows, opts)
	s.source = source
	s.filters = views.FilterSet{}

	log.Info().Str("source", source).Int("records", len(s.records)).Msg("Session snapshot replaced")
	return map[string]interface{}{
		"source":  source,
		"records": len(s.records),
	}, nil
}

func (s *Server) handleSetFilters(args map[string]interface{}) (interface{}, error) {
	if err := s.requireData(); err != nil {
		return nil, err
	}

	filters := views.FilterSet{}
	filters.Country, _ = args["country"].(string)
	filters.Epic, _ = args["epic"].(string)
	filters.Area, _ = args["area"].(string)
	filters.Lifecycle, _ = args["lifecycle"].(string)

	if filters.Lifecycle != "" &&
		filters.Lifecycle != views.LifecycleFinalizados && filters.Lifecycle != views.LifecycleActivos {
		return nil, fmt.Errorf("invalid lifecycle %q", filters.Lifecycle)
	}

	var err error
	if filters.CompletedSince, err = parseISODate(args, "completedSince"); err != nil {
		return nil, err
	}
	if filters.TimelineSince, err = parseISODate(args, "timelineSince"); err != nil {
		return nil, err
	}

	s.filters = filters
	return map[string]interface{}{
		"filters":  s.filters,
		"matching": len(s.filtered()),
	}, nil
}

func (s *Server) handleDashboard(now time.Time) (interface{}, error) {
	if err := s.requireData(); err != nil {
		return nil, err
	}

	filtered := s.filtered()
	result := map[string]interface{}{
		"dashboard": views.BuildDashboard(filtered, now),
		"countries": views.CountryMatrix(filtered),
		"areas":     views.AreaBreakdown(filtered),
	}
	if s.cfg.EnableMermaidCharts {
		result["chart"] = visuals.GenerateCategoryPie(views.BuildDashboard(filtered, now))
	}
	return result, nil
}

func (s *Server) handleEpics() (interface{}, error) {
	if err := s.requireData(); err != nil {
		return nil, err
	}

	rollups := views.BuildEpicRollups(s.filtered())
	result := map[string]interface{}{"epics": rollups}
	if s.cfg.EnableMermaidCharts {
		result["chart"] = visuals.GenerateEpicHealthChart(rollups)
	}
	return result, nil
}

func (s *Server) handleMonthlyTrend(now time.Time) (interface{}, error) {
	if err := s.requireData(); err != nil {
		return nil, err
	}

	months := views.BuildMonthlyTrend(s.filtered(), now)
	result := map[string]interface{}{"months": months}
	if s.cfg.EnableMermaidCharts {
		result["chart"] = visuals.GenerateTrendChart(months)
	}
	return result, nil
}

func (s *Server) handleTimeline(now time.Time, since string) (interface{}, error) {
	if err := s.requireData(); err != nil {
		return nil, err
	}

	// The since argument and the session timelineSince filter are the same
	// threshold: whichever is in effect trims the record set and anchors the
	// visible range. An explicit argument wins over the session filter.
	filters := s.filters
	if since != "" {
		parsed, err := time.Parse("2006-01-02", since)
		if err != nil {
			return nil, fmt.Errorf("invalid since date %q: %w", since, err)
		}
		filters.TimelineSince = &parsed
	}

	timelines := views.BuildEpicTimeline(views.Apply(s.records, filters))
	result := map[string]interface{}{
		"range": views.DefaultTimelineRange(now, filters.TimelineSince),
		"epics": timelines,
	}
	if s.cfg.EnableMermaidCharts {
		result["chart"] = visuals.GenerateEpicGantt(timelines)
	}
	return result, nil
}

func (s *Server) handlePredict(key string) (interface{}, error) {
	if err := s.requireData(); err != nil {
		return nil, err
	}

	for _, r := range s.records {
		if r.Key == key {
			result := map[string]interface{}{
				"key":        key,
				"prediction": views.PredictCompletion(r, s.records),
				"risk":       views.ProfileRisk(r, s.records, time.Now().UTC()),
			}
			return result, nil
		}
	}
	return nil, fmt.Errorf("item %s not found", key)
}

func (s *Server) handleExport(path string) (interface{}, error) {
	if err := s.requireData(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New("path is required")
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	filtered := s.filtered()
	if err := feed.ExportCSV(file, filtered); err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Int("records", len(filtered)).Msg("Exported filtered records")
	return map[string]interface{}{
		"path":    path,
		"records": len(filtered),
	}, nil
}

func parseISODate(args map[string]interface{}, key string) (*time.Time, error) {
	raw, _ := args[key].(string)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q: %w", key, raw, err)
	}
	return &parsed, nil
}
