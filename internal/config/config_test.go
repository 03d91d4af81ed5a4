package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadClean(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadClean(t)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, filepath.Join(".", "assets.yml"), cfg.Manifest)
	assert.Equal(t, DefaultCachePath(), cfg.CachePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_ManifestRelativeToRoot(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("root", "/srv/inkpad")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/srv/inkpad", "assets.yml"), cfg.Manifest)
	assert.Equal(t, filepath.Join("/srv/inkpad", "static"), cfg.StaticDir())
	assert.Equal(t, filepath.Join("/srv/inkpad", "vendor"), cfg.VendorDir())
}

func TestLoad_AbsoluteManifestIsKept(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("manifest", "/etc/inkpad/assets.yml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/etc/inkpad/assets.yml", cfg.Manifest)
}

func TestLoad_CachePathEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("cache_path", "/var/cache/from-config")
	t.Setenv(EnvCachePath, "/var/cache/from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/cache/from-env", cfg.CachePath)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("log.level", "verbose")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log level")
	})

	t.Run("bad log format", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("log.format", "xml")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log format")
	})

	t.Run("dangerous root path", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("root", "/tmp/x;rm -rf /")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDefaultCachePath(t *testing.T) {
	path := DefaultCachePath()
	assert.Equal(t, "assets.cache", filepath.Base(path))
	assert.Contains(t, path, "inkpad")
}
