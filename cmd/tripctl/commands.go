package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-journal/internal/app"
	"github.com/pkordes/trip-journal/internal/currency"
	"github.com/pkordes/trip-journal/internal/domain"
)

// opener builds the application for one command invocation.
type opener func(ctx context.Context) (*app.App, error)

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Administer the trip journal store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newExportCmd(open),
		newImportCmd(open),
		newTotalCmd(open),
		newSeedPackingCmd(open),
	)
	return root
}

// withApp opens the application, runs fn, and closes it.
func withApp(cmd *cobra.Command, open opener, fn func(a *app.App) error) error {
	a, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// =============================================================================
// EXPORT
// =============================================================================

func newExportCmd(open opener) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored journal document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				raw, err := a.Store.Export(cmd.Context())
				if err != nil {
					return err
				}
				if outPath == "" {
					_, err = cmd.OutOrStdout().Write(append(raw, '\n'))
					return err
				}
				if err := os.WriteFile(outPath, raw, 0o600); err != nil {
					return fmt.Errorf("write %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "exported %d bytes to %s\n", len(raw), outPath)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "file to write instead of stdout")
	return cmd
}

// =============================================================================
// IMPORT
// =============================================================================

func newImportCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the stored journal document with a JSON file",
		Long: `Validates a journal document (for example a browser localStorage dump of
travel-itinerary-data-v1) and writes it over the stored one. Use - to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, open, func(a *app.App) error {
				if err := a.Store.Import(cmd.Context(), raw); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d bytes under %s\n", len(raw), a.Store.Key())
				return nil
			})
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

// =============================================================================
// TOTAL
// =============================================================================

func newTotalCmd(open opener) *cobra.Command {
	var (
		tripFlag string
		day      int
		target   string
	)
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Print expense totals for a trip or one of its days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trip, err := domain.ParseTripID(tripFlag)
			if err != nil {
				return err
			}
			return withApp(cmd, open, func(a *app.App) error {
				code := target
				if code == "" {
					code = a.Config.DefaultCurrency
				}
				if code == "" {
					code = currency.Reference
				}
				code = strings.ToUpper(code)
				out := cmd.OutOrStdout()
				sym := currency.Symbol(code)

				if day > 0 {
					fmt.Fprintf(out, "%s day %d: %s%.2f %s\n", trip, day, sym, a.Journal.DayTotal(trip, day, code), code)
					return nil
				}
				fmt.Fprintf(out, "%s total: %s%.2f %s\n", trip, sym, a.Journal.TripTotal(trip, code), code)
				for _, ct := range a.Journal.TripTotalsByCategory(trip, code) {
					fmt.Fprintf(out, "  %-13s %s%.2f\n", ct.Category, sym, ct.Amount)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tripFlag, "trip", "", "trip id (thailand, croatia, china)")
	cmd.Flags().IntVar(&day, "day", 0, "day number; omit for the whole trip")
	cmd.Flags().StringVar(&target, "currency", "", "target currency (default DEFAULT_CURRENCY)")
	_ = cmd.MarkFlagRequired("trip")
	return cmd
}

// =============================================================================
// SEED-PACKING
// =============================================================================

func newSeedPackingCmd(open opener) *cobra.Command {
	var tripFlag string
	cmd := &cobra.Command{
		Use:   "seed-packing",
		Short: "Seed a trip's packing list from the default template unless it was already materialized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trip, err := domain.ParseTripID(tripFlag)
			if err != nil {
				return err
			}
			return withApp(cmd, open, func(a *app.App) error {
				list := a.Journal.EnsurePackingList(cmd.Context(), trip)
				checked := 0
				for _, it := range list.Items {
					if it.Checked {
						checked++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s packing list: %d items, %d checked\n", trip, len(list.Items), checked)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tripFlag, "trip", "", "trip id (thailand, croatia, china)")
	_ = cmd.MarkFlagRequired("trip")
	return cmd
}
