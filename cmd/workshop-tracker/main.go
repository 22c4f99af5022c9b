// Command workshop-tracker is the operator CLI: one-off lookups, registry
// listing, spreadsheet export and checklist printing without running the
// daemon.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
	"github.com/ozgarage/workshop-tracker/internal/export"
	"github.com/ozgarage/workshop-tracker/internal/inspection"
	"github.com/ozgarage/workshop-tracker/internal/lookup"
	"github.com/ozgarage/workshop-tracker/internal/repository"
	"github.com/ozgarage/workshop-tracker/internal/services/vehicles"
)

// cfgViper carries flag bindings into config loading; flags bound here are
// visible to every LoadConfig call in this process.
var cfgViper = viper.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "workshop-tracker",
		Short:         "Workshop vehicle registry tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			_ = godotenv.Load()
		},
	}

	root.PersistentFlags().String("db-url", "", "registry database URL (overrides DB_URL)")
	_ = cfgViper.BindPFlag("DB_URL", root.PersistentFlags().Lookup("db-url"))

	root.AddCommand(newLookupCmd(), newListCmd(), newExportCmd(), newChecklistCmd())
	return root
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// openService builds the vehicle service over the configured database,
// optionally with the remote lookup client attached.
func openService(ctx context.Context, logger *slog.Logger, withLookup bool) (*vehicles.Service, func(), error) {
	cfg := common.LoadConfig(cfgViper)
	if withLookup {
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	db, closeDB, err := repository.Open(ctx, repository.Config{
		URL:         cfg.Database.URL,
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	var lookups vehicles.Lookuper
	if withLookup {
		client := lookup.NewClient(lookup.Config{
			BaseURL: cfg.Lookup.BaseURL,
			APIKey:  cfg.Lookup.APIKey,
			Timeout: cfg.Lookup.Timeout,
		}, logger)
		lookups = lookup.NewService(client, logger)
	}

	svc := vehicles.NewService(lookups, repository.NewVehicleRepository(db, logger), logger)
	if err := svc.Load(ctx); err != nil {
		closeDB()
		return nil, nil, err
	}
	return svc, closeDB, nil
}

func newLookupCmd() *cobra.Command {
	var ownerName, ownerPhone string

	cmd := &cobra.Command{
		Use:   "lookup <plate> <state>",
		Short: "Look up a registration and merge it into the registry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			svc, closeDB, err := openService(cmd.Context(), logger, true)
			if err != nil {
				return err
			}
			defer closeDB()

			owner := entity.OwnerDetails{Name: ownerName, Phone: ownerPhone}
			vehicle, err := svc.LookupAndMerge(cmd.Context(), args[0], args[1], owner)
			if err != nil {
				return err
			}
			if vehicle == nil {
				fmt.Fprintln(os.Stderr, "no vehicle details returned")
				return nil
			}
			return printJSON(vehicle)
		},
	}
	cmd.Flags().StringVar(&ownerName, "owner-name", "", "owner name, used only for a new registry entry")
	cmd.Flags().StringVar(&ownerPhone, "owner-phone", "", "owner phone, used only for a new registry entry")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registry vehicles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeDB, err := openService(cmd.Context(), newLogger(), false)
			if err != nil {
				return err
			}
			defer closeDB()
			return printJSON(svc.List())
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the registry to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()
			svc, closeDB, err := openService(cmd.Context(), logger, false)
			if err != nil {
				return err
			}
			defer closeDB()

			data, err := export.NewService(logger).ExportVehiclesXLSX(svc.List())
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "vehicles.xlsx", "output file")
	return cmd
}

func newChecklistCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "checklist <registration>",
		Short: "Print a blank 65-point checklist PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			printer := inspection.NewPrinter(outDir, newLogger())
			path, pages, err := printer.PrintChecklist(args[0], inspection.DefaultChecklist())
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d pages)\n", path, pages)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "output directory")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
