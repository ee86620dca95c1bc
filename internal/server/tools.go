package server

func (s *Server) listTools() interface{} {
	noArgs := map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}

	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "load_feed",
				"description": "Load a ticket feed (CSV or XLSX) from a file path or URL, replacing the current session data.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"source": map[string]interface{}{"type": "string", "description": "File path or http(s) URL. Defaults to the configured feed."},
					},
				},
			},
			map[string]interface{}{
				"name":        "get_filters",
				"description": "Return the currently active filter set.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "set_filters",
				"description": "Replace the session filter set. Omitted fields clear their filter.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"country":        map[string]interface{}{"type": "string", "description": "Country code (GT, RG, CR, SV, MX, AK, PX)"},
						"epic":           map[string]interface{}{"type": "string"},
						"area":           map[string]interface{}{"type": "string"},
						"lifecycle":      map[string]interface{}{"type": "string", "enum": []string{"finalizados", "activos"}},
						"completedSince": map[string]interface{}{"type": "string", "description": "ISO date YYYY-MM-DD"},
						"timelineSince":  map[string]interface{}{"type": "string", "description": "ISO date YYYY-MM-DD"},
					},
				},
			},
			map[string]interface{}{
				"name":        "list_filter_options",
				"description": "List the selectable filter values present in the loaded data. Epics cascade from the active area filter.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "get_dashboard",
				"description": "Lifecycle category counts, active total, items due in 14 days, plus country and area breakdowns.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "get_epics",
				"description": "Per-epic rollups with 0-100 health scores, largest epic first.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "get_resources",
				"description": "Per-person workload stats and team-wide throughput metrics.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "get_monthly_trend",
				"description": "Twelve-month completion trend: delivered and active items per calendar month.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "get_risks",
				"description": "Risk flags over the active records: overdue, due soon, unassigned, high priority, no due date.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "get_timeline",
				"description": "Per-epic chronological spans with per-ticket DEV/UAT/PROD/REG phases.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"since": map[string]interface{}{"type": "string", "description": "ISO date YYYY-MM-DD; window start override"},
					},
				},
			},
			map[string]interface{}{
				"name":        "get_scoring",
				"description": "Simple prioritization ranking over unfinished work: priority weight, schedule urgency, start status.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "get_weighted_scoring",
				"description": "Weighted multi-factor scoring (business 40%, technology 25%, sizing 20%, state 15%) over backlog-stage records, with per-factor breakdowns.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "get_finalizados",
				"description": "Delivered records, most recent delivery first.",
				"inputSchema": noArgs,
			},
			map[string]interface{}{
				"name":        "predict_item",
				"description": "Deterministic completion estimate for one item from similar delivered work, with a sizing-baseline fallback.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"key": map[string]interface{}{"type": "string"},
					},
					"required": []string{"key"},
				},
			},
			map[string]interface{}{
				"name":        "export_csv",
				"description": "Write the filtered records to a canonical CSV file.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"path": map[string]interface{}{"type": "string"},
					},
					"required": []string{"path"},
				},
			},
		},
	}
}
