// Package config provides configuration management for the status notifier.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each setting in the owning
// package, as `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: management API port and API key
//   - Log: logging level and format
//   - Database: MySQL or SQLite connection details
//   - Notify: sender identity and subject line
//   - Remote: status endpoint URL and fetch timeout
//   - Scheduler: six-field cron expression
//   - Reconcile: notification fan-out concurrency
//   - Mail: SMTP relay
//   - Lock: in-process or Redis cycle lock
//   - Storage: MinIO snapshot archive
//
// Environment variables map to nested keys by replacing dots with
// underscores, e.g. NOTIFY_SENDER sets notify.sender.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
