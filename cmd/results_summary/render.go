package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/results-summary/internal/config"
	"github.com/jonathan/results-summary/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the results page from a data file",
	Long:  "Loads the category results from a URL or a path relative to the template, writes them into the page and outputs the rendered HTML. If the data cannot be loaded the page is still written, with an error banner, and the command fails.",
	RunE:  runRender,
}

var (
	renderData       string
	renderTemplate   string
	renderOut        string
	renderConfigPath string
	renderShowTable  bool
	renderTimeout    int
)

func init() {
	renderCmd.Flags().StringVarP(&renderData, "data", "d", "", "Data source URL or path (default: assets/data.json next to the template, or $RESULTS_DATA)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "HTML page template (default: built-in)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output HTML file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderConfigPath, "config", "c", "", "Config file (JSON or YAML)")
	renderCmd.Flags().BoolVar(&renderShowTable, "table", false, "Append a data preview table to the page")
	renderCmd.Flags().IntVar(&renderTimeout, "timeout", 0, "Remote fetch timeout in seconds (default: 30)")

	rootCmd.AddCommand(renderCmd)
}

// renderConfig merges flags over the config file over built-in defaults.
func renderConfig() (config.Config, error) {
	flags := config.Config{
		Data:           renderData,
		Template:       renderTemplate,
		Out:            renderOut,
		ShowTable:      renderShowTable,
		Verbose:        verbose,
		TimeoutSeconds: renderTimeout,
	}

	if renderConfigPath != "" {
		fileCfg, err := config.LoadConfig(renderConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
		flags.ShowTable = flags.ShowTable || fileCfg.ShowTable
		flags.Verbose = flags.Verbose || fileCfg.Verbose
	}

	merged := flags.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := renderConfig()
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		DataSource:   cfg.Data,
		TemplatePath: cfg.Template,
		OutPath:      cfg.Out,
		ShowTable:    cfg.ShowTable,
		Verbose:      cfg.Verbose,
		Timeout:      time.Duration(cfg.TimeoutSeconds) * time.Second,
		Logger:       logger,
		Stdout:       cmd.OutOrStdout(),
		Stderr:       cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	if result != nil && result.Report != nil && cfg.Out != "" && cfg.Out != pipeline.StdoutPath {
		score := "unchanged"
		if result.Report.HasAverage {
			score = strconv.Itoa(result.Report.Average)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %d categories, overall score %s\n", len(result.Report.BoundSlots), score)
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Page: %s\n", cfg.Out)
	}
	return nil
}
