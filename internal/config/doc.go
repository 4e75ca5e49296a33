// Package config loads, normalizes, and validates fillercount configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as FILLERCOUNT_BASE_URL.
// A missing configuration file is not an error: defaults cover every setting
// the CLI needs.
package config
