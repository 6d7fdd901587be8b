// cmd/build.go
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/auraspaces/internal/config"
	"github.com/Bitlatte/auraspaces/internal/site"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Renders every page of the site into the output directory",
	Long: `The build command loads the city catalog (built in, or from the configured
content directory), renders the home page, one landing page per city, the
not-found page and sitemap.xml, and writes them with the static assets to the
configured output directory (default './public/'). City pages for cities no
longer in the catalog are removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runBuildProcess(appConfig, logger)
		return err
	},
}

func runBuildProcess(cfg config.Config, logger *slog.Logger) (site.Report, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return site.Report{}, err
	}

	builder, err := site.NewBuilder(cat, site.Options{
		BaseURL:   cfg.BaseURL,
		OutputDir: cfg.OutputDir,
		SiteTitle: cfg.SiteTitle,
		Logger:    logger,
	})
	if err != nil {
		return site.Report{}, err
	}
	return builder.Build()
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
