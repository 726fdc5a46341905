package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel/internal/config"
	"travel/internal/domain"
	"travel/internal/loader/memory"
	"travel/internal/service"
)

func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Beaches: []domain.Place{{Name: "Bora Bora", ImageURL: "bora.jpg", Description: "Lagoon"}},
		Temples: []domain.Place{{Name: "Angkor <Wat>"}},
		Countries: []domain.Country{
			{Name: "Japan", Cities: []domain.Place{{Name: "Tokyo"}, {Name: "Osaka"}}},
		},
	}
}

// setupTestServices points the CLI at an in-memory dataset and an isolated config.
func setupTestServices(t *testing.T, src func() *memory.Source) *bytes.Buffer {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")

	orig := newRecommender
	newRecommender = func(_ *config.AppConfig) (*service.Recommender, error) {
		return service.NewRecommender(src()), nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	t.Cleanup(func() {
		newRecommender = orig
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		cfgPath, dataFlag, sourceFlag = "", "", ""
		searchJSON, searchHTML = false, false
		resetChanged := func(f *pflag.Flag) { f.Changed = false }
		searchCmd.Flags().VisitAll(resetChanged)
		rootCmd.PersistentFlags().VisitAll(resetChanged)
	})
	cfgPath = cfgFile
	return buf
}

func loaded() *memory.Source { return memory.NewSource(testDataset()) }

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"search"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_TextOutput(t *testing.T) {
	buf := setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"search", "--config", cfgPath, "JAPAN"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Tokyo")
	assert.Contains(t, out, "Osaka")
	assert.Contains(t, out, "2 results")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	buf := setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"search", "--json", "beaches"})

	require.NoError(t, rootCmd.Execute())

	var got []domain.ResultRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []domain.ResultRecord{{Name: "Bora Bora", ImageURL: "bora.jpg", Description: "Lagoon"}}, got)
	assert.Contains(t, buf.String(), `"imageUrl"`)
}

func TestSearchCmd_HTMLOutput(t *testing.T) {
	buf := setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"search", "--html", "temple"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "<h3>Angkor &lt;Wat&gt;</h3>")
}

func TestSearchCmd_NoMatch(t *testing.T) {
	buf := setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"search", "xyz-not-a-thing"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "No recommendations found for your search.")
}

func TestSearchCmd_Empty(t *testing.T) {
	buf := setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"search", "   "})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Please enter a valid search query.")
}

func TestSearchCmd_NoMatchJSON(t *testing.T) {
	buf := setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"search", "--json", "atlantis"})

	require.NoError(t, rootCmd.Execute())

	assert.JSONEq(t, "[]", buf.String())
}

func TestSearchCmd_DataNotLoaded(t *testing.T) {
	setupTestServices(t, func() *memory.Source { return memory.Failing(errors.New("fetch failed: 500")) })
	rootCmd.SetArgs([]string{"search", "beach"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataNotLoaded)
	assert.Equal(t, "data not loaded: load memory: fetch failed: 500", err.Error())
}

func TestSearchCmd_JSONAndHTMLExclusive(t *testing.T) {
	setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"search", "--json", "--html", "beach"})

	assert.Error(t, rootCmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	buf := setupTestServices(t, loaded)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "travel dev\n", buf.String())
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		cfg  config.DataConfig
		name string
	}{
		{config.DataConfig{Source: "file", Path: "data.json"}, "file:data.json"},
		{config.DataConfig{}, "file:travel_recommendation_api.json"},
		{config.DataConfig{Source: "http", URL: "https://example.com/d.json"}, "http:https://example.com/d.json"},
		{config.DataConfig{Source: "embedded"}, "embedded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := newSource(&config.AppConfig{Data: tt.cfg})
			require.NoError(t, err)
			assert.Equal(t, tt.name, src.Name())
		})
	}
}

func TestNewSource_Unknown(t *testing.T) {
	_, err := newSource(&config.AppConfig{Data: config.DataConfig{Source: "ftp"}})

	assert.ErrorContains(t, err, "unknown data source")
}

func TestLoadConfig_DataFlagOverrides(t *testing.T) {
	setupTestServices(t, loaded)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  source: http\n  url: https://a.example/x.json\n"), 0o644))
	cfgPath = path

	dataFlag = "https://b.example/y.json"
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://b.example/y.json", cfg.Data.URL)

	dataFlag, sourceFlag = "local.json", "file"
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Data.Source)
	assert.Equal(t, "local.json", cfg.Data.Path)
}

func TestLoadConfig_DataFlagWithEmbeddedSource(t *testing.T) {
	setupTestServices(t, loaded)
	sourceFlag, dataFlag = "embedded", "x.json"

	_, err := loadConfig()

	assert.ErrorContains(t, err, "embedded")
}
