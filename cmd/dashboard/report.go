package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"go-trade-dashboard/internal/app"
	"go-trade-dashboard/internal/model"
	"go-trade-dashboard/internal/pipeline"
	"go-trade-dashboard/internal/render"
	"go-trade-dashboard/pkg/utils"
)

type reportOptions struct {
	Year     int
	Country  string
	Output   string
	Export   string
	BarPNG   string
	MapPNG   string
	TopPairs int
}

func newReportCommand() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute the dashboard for one selection and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), c.Config, c.Logger, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			sel := a.Options.Default
			if cmd.Flags().Changed("year") {
				sel.Year = opts.Year
			}
			if opts.Country != "" {
				sel.Country = strings.ToUpper(opts.Country)
			}

			d, err := a.Run(cmd.Context(), sel)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), d, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Year, "year", 0, "year to select (default: dashboard.default_year)")
	f.StringVar(&opts.Country, "country", "", "ISO-3 exporter code (default: dashboard.default_country)")
	f.StringVarP(&opts.Output, "output", "o", "text", "output format: text or json")
	f.StringVar(&opts.Export, "export", "", "also write the selection to this file (.csv, .json or .xlsx)")
	f.StringVar(&opts.BarPNG, "bar-png", "", "also render the bar chart to this PNG file")
	f.StringVar(&opts.MapPNG, "map-png", "", "also render the flow map to this PNG file")
	f.IntVar(&opts.TopPairs, "top", 0, "only print the largest N country pairs (0 prints all)")
	return cmd
}

func writeReport(w io.Writer, d *model.Dashboard, opts *reportOptions) error {
	switch opts.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return err
		}
	case "text", "":
		printText(w, d, opts.TopPairs)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Output)
	}

	if opts.Export != "" {
		if err := exportFile(opts.Export, d); err != nil {
			return err
		}
	}
	if opts.BarPNG != "" {
		if err := writeFileWith(opts.BarPNG, func(f io.Writer) error { return render.BarChartPNG(f, d.Bar) }); err != nil {
			return err
		}
	}
	if opts.MapPNG != "" {
		if err := writeFileWith(opts.MapPNG, func(f io.Writer) error { return render.FlowMapPNG(f, d.Map) }); err != nil {
			return err
		}
	}
	return nil
}

func printText(w io.Writer, d *model.Dashboard, top int) {
	fmt.Fprintln(w, d.Status)
	if len(d.Bar.Bars) == 0 {
		fmt.Fprintln(w, "no trade records for this selection")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PAIR\tMETRIC TONS\t")
	for i, b := range d.Bar.Bars {
		if top > 0 && i >= top {
			break
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", b.Label, b.Text)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d records, %s metric tons\n", len(d.Records), utils.FormatNumber(pipeline.TotalVolume(d.Records)))
}

func exportFile(path string, d *model.Dashboard) error {
	format, err := utils.ResolveExportFormat(path)
	if err != nil {
		return err
	}
	em := &pipeline.ExportManager{RunID: uuid.New().String(), Format: format, ExportedAt: time.Now()}
	return writeFileWith(path, func(f io.Writer) error {
		_, err := em.Export(f, d)
		return err
	})
}

func writeFileWith(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
