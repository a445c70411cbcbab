// Package config loads, normalizes, and validates skinini tool settings.
//
// Settings live in a small TOML file decoded over Default(). Values are
// trimmed and lower-cased before validation, and validation reports every
// failing key by its TOML name. A missing file is not an error.
package config
