package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/gof-patterns/internal/model"
)

const (
	// DefaultPlatform is the UI platform used by the Abstract Factory
	// demonstration when no settings file overrides it.
	DefaultPlatform = "windows"

	// DefaultSeed seeds the pseudo-random source of the Bridge remote.
	DefaultSeed int64 = 1

	// DefaultMovie is the title played by the Facade home theater.
	DefaultMovie = "Inception"
)

// Settings holds the driver inputs that can be changed without
// recompiling. Field tags cover both supported file formats.
type Settings struct {
	// Platform selects the UI factory ("windows" or "mac").
	Platform string `yaml:"platform" json:"platform"`

	// Seed seeds the random source used by the Bridge remote control.
	Seed int64 `yaml:"seed" json:"seed"`

	// Movie is the title passed to the home theater facade.
	Movie string `yaml:"movie" json:"movie"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Platform: DefaultPlatform,
		Seed:     DefaultSeed,
		Movie:    DefaultMovie,
	}
}

// Validate checks the settings for values no demonstration can work with.
// The platform name is resolved (and rejected) by the Abstract Factory
// demonstration itself, which owns the list of platforms.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Movie) == "" {
		return fmt.Errorf("movie must not be empty")
	}
	if strings.TrimSpace(s.Platform) == "" {
		return fmt.Errorf("platform must not be empty")
	}
	return nil
}

// Load reads a settings file and overlays it on the defaults, so keys
// missing from the file keep their default values.
//
// The decoder is chosen by file extension. Returns a CLIError with
// ExitConfigError for missing files, unknown extensions, parse failures,
// and invalid values.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("settings file not found: %s", path),
				err,
			)
		}
		return Settings{}, model.WrapCLIError(model.ExitConfigError, "failed to read settings file", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to parse YAML settings at %s", path), err)
		}
	case ".json", ".jsonc":
		// Strip comments and trailing commas so hand-edited files decode
		// with the standard library.
		if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
			return Settings{}, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to parse JSON settings at %s", path), err)
		}
	default:
		return Settings{}, model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("unsupported settings file extension %q (valid: .yaml, .yml, .json, .jsonc)", ext))
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, model.WrapCLIError(model.ExitConfigError, "invalid settings", err)
	}
	return settings, nil
}
