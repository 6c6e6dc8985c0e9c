// Package main hosts the tonearm CLI entrypoint and command graph.
//
// The root command resolves a pair of null points (from --nulls or a named
// --scheme), runs the geometry calculation, and renders the result as text,
// JSON, or a table. The config subcommands scaffold and validate the optional
// TOML configuration. Every failure ends the invocation with a single
// "error: " line on stderr and exit status 1.
//
// Keep this package declarative: calculation, scheme data, and configuration
// live in the internal packages.
package main
