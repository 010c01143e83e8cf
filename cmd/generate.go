package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/MarvinNL046/cutiepawspedia/internal/logger"
	"github.com/MarvinNL046/cutiepawspedia/internal/sitemap"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

func newGenerateCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate all sitemap files once and write them to disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"output directory (default from sitemap.output_dir)")

	return cmd
}

func runGenerate(cmd *cobra.Command, outputDir string) error {
	deps, err := newAppDeps()
	if err != nil {
		return err
	}
	defer deps.close()

	if outputDir == "" {
		outputDir = deps.cfg.Sitemap.OutputDir
	}

	result, err := deps.generator.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("generate sitemaps: %w", err)
	}

	// Mirror the served URL layout: the index at /sitemap.xml and the
	// sections under /sitemaps/.
	sectionDir := filepath.Join(outputDir, "sitemaps")
	if mkErr := os.MkdirAll(sectionDir, dirPerm); mkErr != nil {
		return fmt.Errorf("create output dir: %w", mkErr)
	}

	indexPath := filepath.Join(outputDir, "sitemap.xml")
	if writeErr := os.WriteFile(indexPath, []byte(result.Index), filePerm); writeErr != nil {
		return fmt.Errorf("write sitemap index: %w", writeErr)
	}

	for _, s := range result.Sitemaps {
		path := filepath.Join(sectionDir, s.Section.ID+".xml")
		if writeErr := os.WriteFile(path, []byte(s.XML), filePerm); writeErr != nil {
			return fmt.Errorf("write sitemap %s: %w", s.Section.ID, writeErr)
		}
	}

	if deps.store != nil {
		if cacheErr := deps.store.StoreResult(cmd.Context(), result); cacheErr != nil {
			deps.log.Warn("failed to refresh sitemap cache", logger.Error(cacheErr))
		}
	}

	printSummary(outputDir, result)

	return nil
}

// printSummary renders the per-section counts as a table on stdout.
func printSummary(outputDir string, result *sitemap.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Section", "File", "URLs"})
	for _, s := range result.Sitemaps {
		t.AppendRow(table.Row{s.Section.ID, filepath.Join(outputDir, "sitemaps", s.Section.ID+".xml"), s.URLCount})
	}
	t.AppendFooter(table.Row{"total", "", result.TotalURLs})
	t.Render()

	fmt.Printf("run %s completed in %s\n", result.RunID, result.Duration.Round(time.Millisecond))
}
