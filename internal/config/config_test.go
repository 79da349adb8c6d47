package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultArtifactDir, cfg.ArtifactDir)
	assert.Equal(t, DefaultBankPath, cfg.AchievementBank)
	assert.Equal(t, DefaultScrapeDelayMin, cfg.ScrapeDelayMin)
	assert.Equal(t, DefaultScrapeDelayMax, cfg.ScrapeDelayMax)
	assert.InDelta(t, 0.3, cfg.VisaThreshold, 1e-9)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9000,
		"artifact_dir": "out",
		"candidate": {
			"skills": ["python", "react"],
			"must_have_skills": ["python"]
		},
		"greenhouse_boards": ["acme"],
		"visa_threshold": 0.5
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "out", cfg.ArtifactDir)
	assert.Equal(t, []string{"python", "react"}, cfg.Candidate.Skills)
	assert.Equal(t, []string{"python"}, cfg.Candidate.MustHaveSkills)
	assert.Equal(t, []string{"acme"}, cfg.GreenhouseBoards)
	assert.InDelta(t, 0.5, cfg.VisaThreshold, 1e-9)

	// Unset values still fall back to defaults
	assert.Equal(t, DefaultBankPath, cfg.AchievementBank)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, "{not json")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `{"port": 9000, "database_url": "postgres://file"}`)

	t.Setenv("JOBPILOT_PORT", "9100")
	t.Setenv("JOBPILOT_DATABASE_URL", "postgres://env")
	t.Setenv("JOBPILOT_ARTIFACT_DIR", "/tmp/assets")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, "/tmp/assets", cfg.ArtifactDir)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_DelayOrdering(t *testing.T) {
	cfg := &Config{Port: 8000, ScrapeDelayMin: 5, ScrapeDelayMax: 2}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scrape_delay_max")
}

func TestValidate_VisaThresholdRange(t *testing.T) {
	cfg := &Config{Port: 8000, VisaThreshold: 1.5}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "visa_threshold")
}
