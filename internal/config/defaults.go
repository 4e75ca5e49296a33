package config

const (
	defaultConfigPath     = "~/.config/fillercount/config.toml"
	projectConfigName     = "fillercount.toml"
	defaultBaseURL        = "https://www.animefillerlist.com/shows"
	defaultUserAgent      = "fillercount/dev"
	defaultTimeoutSeconds = 30
	defaultOutputFormat   = "text"
	defaultOutputColor    = "auto"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// Output formats accepted by output.format.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Colour modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Source: Source{
			BaseURL:        defaultBaseURL,
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: defaultTimeoutSeconds,
			NormalizeNames: true,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
