// Package config handles configuration loading and defaults.
//
// Only presentation and logging are configurable; the task list itself has
// no settings. Configuration is loaded from multiple sources in priority
// order:
// 1. Built-in defaults
// 2. User config file ($XDG_CONFIG_HOME/tasklist/tasklist.toml, the OS
// config directory, or ~/.tasklist.toml)
// 3. Project config file (tasklist.toml or .tasklist.toml in the working directory)
// 4. Environment variables (NO_COLOR, TASKLIST_*)
//
// Each level overrides the previous one. Every file is checked against an
// embedded JSON Schema before it is decoded, so typos in key names are
// reported instead of silently ignored.
package config
