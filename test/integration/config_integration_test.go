//go:build integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/adapters/memory"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
)

const configDir = "../../configs"

// TestConfig_ShippedProfilesValidate loads every profile shipped in configs/.
func TestConfig_ShippedProfilesValidate(t *testing.T) {
	for _, profile := range []string{"", "local"} {
		t.Run("profile="+profile, func(t *testing.T) {
			t.Setenv("CODESPACE_NAME", "")

			cfg, err := config.LoadFrom(configDir, profile)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
			assert.NotEmpty(t, cfg.Site.BaseURL(cfg.Server.Port))
		})
	}
}

func TestConfig_EnvOverridesShippedFiles(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "4000")
	t.Setenv("APP_SITE_PUBLIC_BASE_URL", "https://quotes.example.com")

	cfg, err := config.LoadFrom(configDir, "local")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "https://quotes.example.com", cfg.Site.BaseURL(cfg.Server.Port))
}

func TestConfig_CodespaceHost(t *testing.T) {
	t.Setenv("CODESPACE_NAME", "my-space")

	cfg, err := config.LoadFrom(configDir, "local")
	require.NoError(t, err)

	assert.Equal(t, "https://my-space-3001.app.github.dev", cfg.Site.BaseURL(cfg.Server.Port))
}

// TestConfig_SeedFileFromEnv boots a store from the seed file named by the
// environment.
func TestConfig_SeedFileFromEnv(t *testing.T) {
	t.Setenv("APP_QUOTES_SEED_FILE", "../../internal/adapters/memory/seed.yaml")

	cfg, err := config.LoadFrom(configDir, "local")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	seed, err := memory.LoadSeedFile(cfg.Quotes.SeedFile)
	require.NoError(t, err)
	assert.Equal(t, memory.DefaultSeed(), seed)
}
