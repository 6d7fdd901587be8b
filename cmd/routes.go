package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/auraspaces/internal/catalog"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Lists the routes a build generates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(appConfig)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ROUTE\tPATH\tCITY")
		fmt.Fprintln(w, "home\t/\t-")
		for _, slug := range cat.Routes() {
			city, err := cat.Resolve(slug)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", slug, catalog.CityPath(slug), city.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
