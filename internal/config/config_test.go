package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DISTRIBUTION_IDS", "OBJECT_PATHS", "DISTRIBUTION_IDS_PARAM", "OBJECT_PATHS_PARAM"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "*", cfg.DistributionIDs)
	assert.Equal(t, "/*", cfg.ObjectPaths)
	assert.Empty(t, cfg.DistributionIDsParam)
	assert.Empty(t, cfg.ObjectPathsParam)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DISTRIBUTION_IDS", "E123,E456")
	t.Setenv("OBJECT_PATHS", "/images/*,/css/*")
	t.Setenv("OBJECT_PATHS_PARAM", "/purgebot/object-paths")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "E123,E456", cfg.DistributionIDs)
	assert.Equal(t, "/images/*,/css/*", cfg.ObjectPaths)
	assert.Equal(t, "/purgebot/object-paths", cfg.ObjectPathsParam)
}
