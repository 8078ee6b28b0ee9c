// Package middleware contains HTTP middleware for the management API.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting every route once a key
//     is configured.
//   - rayid: assigns every request a RayID, stored in c.Locals("ray_id") and
//     echoed in the X-Ray-ID response header, so logger.WithRayID can
//     correlate log lines.
package middleware
