// Command cardctl previews shoe cards from a YAML catalog file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mamadbah2/shoecard/internal/catalog"
	"github.com/mamadbah2/shoecard/internal/domain/models"
	"github.com/mamadbah2/shoecard/internal/repository/file"
)

var (
	catalogFile string
	slugFilter  string
	nowFlag     string
	windowFlag  time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "cardctl",
	Short:         "Preview shoe product cards",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "file", "f", "shoes.yaml", "YAML catalog file")
	rootCmd.PersistentFlags().StringVar(&slugFilter, "slug", "", "only show the shoe with this slug")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "evaluate variants at this RFC3339 time instead of the clock")
	rootCmd.PersistentFlags().DurationVar(&windowFlag, "window", catalog.DefaultRecencyWindow, "how long a release counts as new")

	rootCmd.AddCommand(renderCmd, classifyCmd, htmlCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadShoes reads the catalog file and applies the --slug filter.
func loadShoes(cmd *cobra.Command) ([]models.Shoe, error) {
	src := file.NewSource(catalogFile, nil)
	shoes, err := src.ListShoes(cmd.Context())
	if err != nil {
		return nil, err
	}
	if slugFilter == "" {
		return shoes, nil
	}
	for _, shoe := range shoes {
		if shoe.Slug == slugFilter {
			return []models.Shoe{shoe}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, slugFilter)
}

func classifier() (catalog.Classifier, error) {
	c := catalog.NewClassifier(windowFlag)
	if nowFlag == "" {
		return c, nil
	}
	at, err := time.Parse(time.RFC3339, nowFlag)
	if err != nil {
		return c, fmt.Errorf("--now must be RFC3339: %w", err)
	}
	c.Now = func() time.Time { return at }
	return c, nil
}
