package notify

// Config holds the message envelope settings.
type Config struct {
	// Sender is the From and Reply-To address of every notification.
	Sender string `mapstructure:"sender" default:""`
	// Subject is the fixed subject line of every notification.
	Subject string `mapstructure:"subject" default:"Server instance status change"`
}
