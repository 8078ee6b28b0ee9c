package scheduler

// Config holds the cycle schedule.
type Config struct {
	// Enabled starts the scheduler with the server.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Schedule is a six-field cron expression (seconds first).
	Schedule string `mapstructure:"schedule" default:"0 */15 * * * *"`
}
