package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/auraspaces/internal/sitemap"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Prints sitemap.xml for the configured base URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(appConfig)
		if err != nil {
			return err
		}
		return sitemap.WriteXML(cmd.OutOrStdout(), sitemap.Build(cat, appConfig.BaseURL, time.Now()))
	},
}

func init() {
	rootCmd.AddCommand(sitemapCmd)
}
