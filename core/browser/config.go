package browser

// Config holds configuration for the browser launch.
type Config struct {
	// Enabled opens the default browser once the server is listening.
	Enabled bool `mapstructure:"enabled" default:"true"`
}
