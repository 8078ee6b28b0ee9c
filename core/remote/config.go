package remote

// Config holds configuration for the remote status endpoint.
type Config struct {
	// EndpointURL returns the JSON array of all instances.
	EndpointURL string `mapstructure:"endpoint_url" default:"https://api.status.salesforce.com/v1/instances"`
	// TimeoutSeconds bounds one complete fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// MaxBodyBytes caps the accepted payload size.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" default:"8388608"`
}
