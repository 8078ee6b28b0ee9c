package config

import (
	"errors"
	"reflect"
	"strings"

	"status-notifier/core/database"
	"status-notifier/core/lock"
	"status-notifier/core/logger"
	"status-notifier/core/mailer"
	"status-notifier/core/notify"
	"status-notifier/core/reconcile"
	"status-notifier/core/remote"
	"status-notifier/core/scheduler"
	"status-notifier/core/server"
	"status-notifier/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the management HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the instance and subscriber store.
	Database database.Config `mapstructure:"database"`
	// Notify holds the notification envelope (sender, subject).
	Notify notify.Config `mapstructure:"notify"`
	// Remote holds configuration for the remote status endpoint.
	Remote remote.Config `mapstructure:"remote"`
	// Scheduler holds the cycle schedule.
	Scheduler scheduler.Config `mapstructure:"scheduler"`
	// Reconcile holds engine options.
	Reconcile reconcile.Options `mapstructure:"reconcile"`
	// Mail holds the SMTP relay settings.
	Mail mailer.Config `mapstructure:"mail"`
	// Lock selects and configures the cycle lock.
	Lock lock.Config `mapstructure:"lock"`
	// Storage holds configuration for the snapshot archive.
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. NOTIFY_SENDER -> notify.sender)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports every setting the notifier cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Notify.Sender) == "" {
		errs = append(errs, errors.New("notify.sender is required"))
	}
	if strings.TrimSpace(c.Notify.Subject) == "" {
		errs = append(errs, errors.New("notify.subject is required"))
	}
	if strings.TrimSpace(c.Remote.EndpointURL) == "" {
		errs = append(errs, errors.New("remote.endpoint_url is required"))
	}
	if c.Scheduler.Enabled && strings.TrimSpace(c.Scheduler.Schedule) == "" {
		errs = append(errs, errors.New("scheduler.schedule is required when the scheduler is enabled"))
	}
	if c.Storage.Enabled && strings.TrimSpace(c.Storage.Bucket) == "" {
		errs = append(errs, errors.New("storage.bucket is required when archiving is enabled"))
	}
	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
