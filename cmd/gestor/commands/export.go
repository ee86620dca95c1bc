package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gestor/internal/feed"
	"gestor/internal/record"
	"gestor/internal/views"
)

var (
	exportSource    string
	exportOut       string
	exportCountry   string
	exportEpic      string
	exportArea      string
	exportLifecycle string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Load a feed, apply filters and write a canonical CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		source := exportSource
		if source == "" {
			source = cfg.FeedSource()
		}
		if source == "" {
			return fmt.Errorf("no --source given and no default feed configured")
		}

		table, err := feed.NewLoader().Load(context.Background(), source)
		if err != nil {
			return err
		}

		opts := record.DefaultBuildOptions()
		opts.Dates = cfg.DateBounds
		opts.RequireKey = cfg.RequireKey
		records := record.BuildAll(table.Headers, table.Rows, opts)

		filters := views.FilterSet{
			Country:   exportCountry,
			Epic:      exportEpic,
			Area:      exportArea,
			Lifecycle: exportLifecycle,
		}
		if filters.Lifecycle != "" &&
			filters.Lifecycle != views.LifecycleFinalizados && filters.Lifecycle != views.LifecycleActivos {
			return fmt.Errorf("invalid --lifecycle %q", filters.Lifecycle)
		}
		filtered := views.Apply(records, filters)

		out := os.Stdout
		if exportOut != "" {
			file, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", exportOut, err)
			}
			defer file.Close()
			out = file
		}

		start := time.Now()
		if err := feed.ExportCSV(out, filtered); err != nil {
			return err
		}

		log.Info().
			Str("source", source).
			Int("records", len(filtered)).
			Dur("elapsed", time.Since(start)).
			Msg("Export finished")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSource, "source", "", "feed path or URL (defaults to configured feed)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (defaults to stdout)")
	exportCmd.Flags().StringVar(&exportCountry, "country", "", "filter by country code")
	exportCmd.Flags().StringVar(&exportEpic, "epic", "", "filter by epic")
	exportCmd.Flags().StringVar(&exportArea, "area", "", "filter by area")
	exportCmd.Flags().StringVar(&exportLifecycle, "lifecycle", "", "finalizados or activos")

	rootCmd.AddCommand(exportCmd)
}
