// Package config loads, normalizes, and validates familygarden configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the GARDEN_DATA_DIR environment fallback. Commands
// obtain every setting through Config so downstream packages receive absolute
// paths, a canonical log format, and clear validation errors.
package config
