// Package cli wires the travel command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"travel/internal/config"
	"travel/internal/loader"
	"travel/internal/loader/file"
	"travel/internal/loader/httpsrc"
	"travel/internal/loader/memory"
	"travel/internal/logger"
	"travel/internal/service"
	"travel/internal/tui"
)

var (
	cfgPath    string
	dataFlag   string
	sourceFlag string
	verbose    bool
)

// newRecommender is swapped out in tests.
var newRecommender = func(cfg *config.AppConfig) (*service.Recommender, error) {
	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewRecommender(src), nil
}

var rootCmd = &cobra.Command{
	Use:   "travel",
	Short: "Look up beach, temple and country recommendations",
	Long: `Loads a travel-recommendation document once and answers keyword queries.
Search "beach", "temple" or "country" (singular or plural), or a country name.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config (default ./config.yaml or ~/.config/travel/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "", "data file path or URL, overriding the config")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "data source type: file, http or embedded")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// Execute runs the root command.
func Execute() error {
	logger.VerboseFromEnv()
	return rootCmd.Execute()
}

func loadConfig() (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if cfgPath == "" {
		var path string
		cfg, path, err = config.LoadDefault()
		logger.Debug("Config: %s", path)
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if sourceFlag != "" {
		cfg.Data.Source = sourceFlag
	}
	if dataFlag != "" {
		if cfg.Data.Source == "embedded" {
			return nil, errors.New("--data cannot be used with the embedded source")
		}
		if cfg.Data.Source == "http" {
			cfg.Data.URL = dataFlag
		} else {
			cfg.Data.Source = "file"
			cfg.Data.Path = dataFlag
		}
	}
	return cfg, nil
}

func newSource(cfg *config.AppConfig) (loader.Source, error) {
	switch cfg.Data.Source {
	case "file", "":
		return file.NewSource(cfg.Data.Path), nil
	case "http":
		return httpsrc.NewSource(httpsrc.Config{
			URL:     cfg.Data.URL,
			Timeout: time.Duration(cfg.Data.TimeoutSecs) * time.Second,
		})
	case "embedded":
		return memory.Sample(), nil
	default:
		return nil, fmt.Errorf("unknown data source: %s", cfg.Data.Source)
	}
}

// openRecommender builds the recommender and attempts the one-time load.
// A load failure is not returned here; it stays available through LoadErr.
func openRecommender(ctx context.Context) (*service.Recommender, *config.AppConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	rec, err := newRecommender(cfg)
	if err != nil {
		return nil, nil, err
	}
	_ = rec.Load(ctx)
	return rec, cfg, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	rec, cfg, err := openRecommender(cmd.Context())
	if err != nil {
		return err
	}
	st := rec.Stats()
	header := fmt.Sprintf("%d beaches · %d temples · %d countries", st.Beaches, st.Temples, st.Countries)
	m := tui.New(rec, header, rec.LoadErr(), cfg.UI.CardWidth)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
