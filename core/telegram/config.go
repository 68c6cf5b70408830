package telegram

// Config holds configuration for the Bot API transport.
type Config struct {
	// APIBaseURL is the Bot API endpoint, without a trailing slash.
	APIBaseURL string `mapstructure:"api_base_url" default:"https://api.telegram.org"`
	// Proxy is an optional HTTP/SOCKS proxy URL for all API traffic.
	Proxy string `mapstructure:"proxy" default:""`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ReadRetries is how many extra attempts idempotent reads get on
	// transport failure.
	ReadRetries int `mapstructure:"read_retries" default:"2"`
}
