package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/some/path"},
		Site: SiteConfig{
			Title:       "My blog",
			Description: "New posts of my blog.",
			BaseURL:     "http://localhost:8080",
			PageSize:    3,
		},
		RateLimit: RateLimitConfig{PerMinute: 20, Burst: 5},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_PageSize(t *testing.T) {
	cfg := validConfig()
	cfg.Site.PageSize = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_BaseURLMustBeAbsolute(t *testing.T) {
	cfg := validConfig()
	cfg.Site.BaseURL = "localhost:8080"
	assert.Error(t, cfg.Validate())

	cfg.Site.BaseURL = "https://blog.example.com"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.Burst = 0
	assert.Error(t, cfg.Validate())
}

func TestExpandPath_Tilde(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := expandPath("~/blog-data", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "blog-data"), expanded)
}

func TestExpandPath_EmptyUsesDefault(t *testing.T) {
	expanded, err := expandPath("", "/default/path")
	require.NoError(t, err)
	assert.Equal(t, "/default/path", expanded)
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("INKWELL_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "INKWELL_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "INKWELL_TEST_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "INKWELL_TEST_MISSING", "default"))
}

func TestGetIntConfigValue(t *testing.T) {
	assert.Equal(t, 7, getIntConfigValue("7", "INKWELL_TEST_INT", 3))
	assert.Equal(t, 3, getIntConfigValue("", "INKWELL_TEST_INT", 3))
	assert.Equal(t, 3, getIntConfigValue("not-a-number", "INKWELL_TEST_INT", 3))
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nINKWELL_ENVFILE_TITLE=\"From File\"\n\nINKWELL_ENVFILE_PORT=9090\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("INKWELL_ENVFILE_TITLE", "")
	t.Setenv("INKWELL_ENVFILE_PORT", "")
	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "From File", os.Getenv("INKWELL_ENVFILE_TITLE"))
	assert.Equal(t, "9090", os.Getenv("INKWELL_ENVFILE_PORT"))
}
