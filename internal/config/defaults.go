package config

const (
	defaultConfigPath = "~/.config/tonearm/config.toml"
	projectConfigName = "tonearm.toml"
	defaultOutput     = OutputText
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
)

// Output formats accepted by [output].format and --output.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Output: Output{
			Format: defaultOutput,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
