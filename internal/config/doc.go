// Package config loads the optional settings file for the gof-patterns CLI.
//
// Most demonstrations run with hard-coded inputs. A few inputs depend on
// the environment in the classic examples (the UI platform picked by the
// Abstract Factory client, the randomness behind the Bridge remote, the
// movie played through the Facade), so they are exposed as settings.
//
// Settings files may be written in YAML (.yaml, .yml) or JSON with
// comments (.json, .jsonc). JSONC is normalized with
// github.com/tidwall/jsonc before decoding with encoding/json.
package config
