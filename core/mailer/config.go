package mailer

// Config holds the SMTP relay settings.
type Config struct {
	// Host is the SMTP relay host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the SMTP relay port.
	Port int `mapstructure:"port" default:"25"`
	// Username enables SMTP PLAIN auth when set.
	Username string `mapstructure:"username" default:""`
	// Password is the SMTP auth password.
	Password string `mapstructure:"password" default:""`
	// TLSPolicy is one of mandatory, opportunistic or none.
	TLSPolicy string `mapstructure:"tls_policy" default:"opportunistic"`
	// TimeoutSeconds bounds dialing and each SMTP command.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
