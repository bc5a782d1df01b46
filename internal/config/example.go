package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Environment variables (NO_COLOR, TASKLIST_*) override these values.

# Colour priority and urgency cells: auto, always or never
color = "auto"

# Log level: debug, info, warn, error, fatal (logs go to stderr)
log_level = "warn"

# Log format: text, json or logfmt
log_format = "text"

log_timestamps = false
log_caller = false
log_prefix = "tasklist"
`
}
