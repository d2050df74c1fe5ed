// SPDX-License-Identifier: MPL-2.0

// Package config loads sigcalc settings with Viper.
//
// Settings come from, in increasing precedence: built-in defaults, a config file
// (config.cue, or config.toml, in the platform config directory or an explicit
// path), and SIGCALC_* environment variables (SIGCALC_UI_VERBOSE,
// SIGCALC_LOG_LEVEL, ...). Both file formats are validated against the embedded
// CUE schema (config_schema.cue) before they reach Viper.
package config
