package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newDateCmd() *cobra.Command {
	var expandFlag bool

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Print yesterday, today and tomorrow with holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setupApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			service := app.Plugin.Service()
			info, err := service.Raw(cmd.Context())
			if err != nil {
				return err
			}
			if expandFlag || service.Config.EnableLLMExpand {
				info = service.Expander.Expand(cmd.Context(), info)
			}

			fmt.Fprintln(cmd.OutOrStdout(), info)
			return nil
		},
	}

	cmd.Flags().BoolVar(&expandFlag, "expand", false, "Rewrite the block into prose with the configured model")
	return cmd
}

func newHolidaysCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Print the holiday map for a year, fetching and caching it if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setupApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if year == 0 {
				year = time.Now().Year()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(app.Holidays.GetHolidayMap(cmd.Context(), year))
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Calendar year (default: current year)")
	return cmd
}
