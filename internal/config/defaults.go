package config

const (
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultOutputFormat = "table"
	defaultOutputColor  = "auto"
	defaultDebounceMS   = 200
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Watch: Watch{
			DebounceMS: defaultDebounceMS,
		},
	}
}
