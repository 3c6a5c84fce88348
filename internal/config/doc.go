// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. Config file (<dir>/config.toml, dir defaults to ~/.tada)
// 3. Environment variables (TADA_*)
// 4. Root CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// The config directory itself comes from -config-dir, then TADA_CONFIG_DIR,
// then ~/.tada. Credentials, preferences and the TUI log live beside the
// config file unless overridden.
package config
