package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-trade-dashboard/internal/app"
)

func newOptionsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the selectable years and countries",
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

			w := cmd.OutOrStdout()
			if output == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(a.Options)
			}

			fmt.Fprint(w, "Years:")
			for _, y := range a.Options.Years {
				fmt.Fprintf(w, " %d", y.Value)
			}
			fmt.Fprintln(w)

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tCOUNTRY")
			for _, opt := range a.Options.Countries {
				fmt.Fprintf(tw, "%s\t%s\n", opt.Value, opt.Label)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(w, "Default: %s %d\n", a.Options.Default.Country, a.Options.Default.Year)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}
