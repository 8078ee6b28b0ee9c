// Package logger provides a structured logging facility based on Zap.
//
// The debug level selects zap's development configuration; any other level
// uses the production configuration at that level. Encoding is json by
// default or console for interactive use.
//
// # Request Correlation
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so every log line of a management
// request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
