package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"srp/internal/adapters/files"
	"srp/internal/application/orchestrators"
	"srp/internal/application/projections"
	"srp/internal/application/reports"
	"srp/internal/domain/export"
)

func exportDeps() orchestrators.ExportDeps {
	return orchestrators.ExportDeps{
		LocalityStore:   current.Localities,
		IndividualStore: current.Individuals,
		ClassStore:      current.Classes,
		GroupStore:      current.Groups,
		CircleStore:     current.Circles,
		FS:              current.fs,
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded data",
	}
	cmd.AddCommand(exportJSONCmd(), exportCSVCmd())
	return cmd
}

func exportJSONCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Export all records as a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = files.Filename("sinsa-srp", "json", time.Now())
			}
			result, err := orchestrators.ExecuteExportJSON(cmd.Context(),
				orchestrators.ExportJSONInput{Path: out}, exportDeps())
			if err != nil {
				return err
			}
			stats := result.Payload.Statistics
			fmt.Printf("Exported %d localities, %d individual entries and %d activities to %s\n",
				stats.TotalLocalities, stats.TotalIndividuals, stats.TotalActivities, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default sinsa-srp-<date>.json)")
	return cmd
}

func exportCSVCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:       "csv <entity>",
		Short:     "Export one entity type as CSV",
		Long:      "Entity is one of: " + strings.Join(export.EntityTypes, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: export.EntityTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = files.Filename("sinsa-srp-"+args[0], "csv", time.Now())
			}
			result, err := orchestrators.ExecuteExportCSV(cmd.Context(),
				orchestrators.ExportCSVInput{EntityType: args[0], Path: out}, exportDeps())
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d rows to %s\n", result.Rows, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Import a JSON backup, replacing stored data per entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Importing replaces existing records for each entity in the backup. Continue?") {
				fmt.Println("Cancelled.")
				return nil
			}
			result, err := orchestrators.ExecuteImportBackup(cmd.Context(),
				orchestrators.ImportBackupInput{Path: args[0]},
				orchestrators.ImportBackupDeps{KV: current.kv, FS: current.fs},
			)
			if err != nil {
				return err
			}
			total := 0
			for _, n := range result.Records {
				total += n
			}
			fmt.Printf("Imported %d records across %d storage keys.\n", total, len(result.Keys))
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var (
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a statistics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := projections.QueryGetDashboard(cmd.Context(), projections.GetDashboardDeps{
				LocalityStore:   current.Localities,
				IndividualStore: current.Individuals,
				ClassStore:      current.Classes,
				GroupStore:      current.Groups,
				CircleStore:     current.Circles,
			})
			if err != nil {
				return err
			}
			md := reports.BuildMarkdown(stats, time.Now())

			content := md
			if format == "html" {
				content, err = reports.RenderHTML(md)
				if err != nil {
					return err
				}
			} else if format != "md" {
				return fmt.Errorf("unknown report format %q", format)
			}
			if out == "" {
				out = files.Filename("sinsa-srp-report", format, time.Now())
			}
			if err := current.fs.WriteFile(out, content); err != nil {
				return err
			}
			fmt.Printf("Report written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path")
	cmd.Flags().StringVar(&format, "format", "html", "report format (md or html)")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show storage usage per entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := projections.QueryGetStorageStats(cmd.Context(),
				projections.GetStorageStatsDeps{KV: current.kv})
			if err != nil {
				return err
			}
			if len(stats.Keys) == 0 {
				fmt.Println("Storage is empty.")
				return nil
			}
			for _, k := range stats.Keys {
				fmt.Printf("%-28s %8d bytes  %d records\n", k.Key, k.SizeBytes, k.RecordCount)
			}
			fmt.Printf("%-28s %8d bytes\n", "total", stats.TotalBytes)
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("This will permanently delete all recorded data. Continue?") {
				fmt.Println("Cancelled.")
				return nil
			}
			if !confirm("Are you absolutely sure?") {
				fmt.Println("Cancelled.")
				return nil
			}
			result, err := orchestrators.ExecuteClearData(cmd.Context(),
				orchestrators.ClearDataDeps{KV: current.kv})
			if err != nil {
				return err
			}
			fmt.Printf("All data cleared (%d keys removed).\n", result.KeysRemoved)
			return nil
		},
	}
}
