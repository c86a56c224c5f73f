// Package config loads runtime configuration for the qrforge CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-o string   directory for downloaded code files
//
// # JSON schema
//
//	{
//	  "database_path": "qrforge.db",
//	  "download_dir": "downloads"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
