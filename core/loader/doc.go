// Package loader provides the plugin-like feature loading system.
//
// Each management feature (instances, subscribers, notifier) implements the
// Feature interface and registers its routes when loaded:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order and loads every enabled
// one via LoadAll.
package loader
