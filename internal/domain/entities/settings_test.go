//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

func TestSettings(t *testing.T) {
	t.Parallel()

	t.Run("should provide working defaults", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, "pypi", settings.RegistryType)
		assert.Equal(t, "https://pypi.org", settings.RegistryURL)
		assert.Positive(t, settings.TimeoutSeconds)
		assert.Positive(t, settings.Concurrency)
	})

	t.Run("should load a config file and fill defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "reqsync.yaml")
		content := "registry_url: https://registry.internal\nskip_packages:\n  - foo\n  - bar\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://registry.internal", settings.RegistryURL)
		assert.Equal(t, []string{"foo", "bar"}, settings.SkipPackages)
		assert.Equal(t, "pypi", settings.RegistryType)
		assert.Positive(t, settings.Concurrency)
	})

	t.Run("should fail on a missing config file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})

	t.Run("should fail on invalid values", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "reqsync.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concurrency: -1\n"), 0o600))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorContains(t, err, "concurrency")
	})
}
