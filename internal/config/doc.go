// Package config loads, normalizes, and validates tonearm configuration data.
//
// It supplies defaults, reads an optional TOML file from the user config
// directory or the working directory, and honours environment fallbacks such
// as TONEARM_LOG_LEVEL. Custom alignment schemes declared in the file are
// carried through as plain records; the scheme package decides whether they
// clash with the built-in table.
package config
