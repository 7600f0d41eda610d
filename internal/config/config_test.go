package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/gof-patterns/internal/model"
)

// writeFile creates a settings fixture inside a per-test temporary directory
// and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// requireConfigError asserts that err is a CLIError carrying ExitConfigError.
func requireConfigError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected *model.CLIError, got %T", err)
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "windows", s.Platform)
	assert.Equal(t, int64(1), s.Seed)
	assert.Equal(t, "Inception", s.Movie)
	assert.NoError(t, s.Validate())
}

// TestLoad_YAML verifies that a full YAML file replaces every default.
func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", "platform: mac\nseed: 42\nmovie: Interstellar\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{Platform: "mac", Seed: 42, Movie: "Interstellar"}, s)
}

// TestLoad_PartialYAMLKeepsDefaults verifies that keys absent from the
// file keep their default values.
func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "settings.yml", "seed: 7\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "windows", s.Platform)
	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, "Inception", s.Movie)
}

// TestLoad_JSONC verifies that comments and trailing commas are accepted.
func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, "settings.jsonc", `{
	// render the Mac widgets
	"platform": "mac",
	/* block comments work too */
	"movie": "Arrival",
}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mac", s.Platform)
	assert.Equal(t, "Arrival", s.Movie)
	assert.Equal(t, DefaultSeed, s.Seed)
}

func TestLoad_PlainJSON(t *testing.T) {
	path := writeFile(t, "settings.json", `{"seed": 99}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), s.Seed)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		requireConfigError(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "settings.toml", "seed = 1\n"))
		requireConfigError(t, err)
		assert.Contains(t, err.Error(), ".toml")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "settings.yaml", "seed: [1, 2\n"))
		requireConfigError(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(writeFile(t, "settings.json", `{"seed": "many"}`))
		requireConfigError(t, err)
	})

	t.Run("empty movie", func(t *testing.T) {
		_, err := Load(writeFile(t, "settings.yaml", "movie: \"  \"\n"))
		requireConfigError(t, err)
		assert.Contains(t, err.Error(), "movie")
	})
}
