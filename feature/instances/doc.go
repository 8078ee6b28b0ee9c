// Package instances stores tracked server instances and exposes them over
// the management API.
//
// # Routes
//
//   - GET /servers: every stored instance.
//   - POST /servers/status: manual status override for an existing key.
//     Unknown keys answer 404 and are never created; the next cycle
//     overwrites the override with the remote status and, since the status
//     then differs, notifies subscribers.
//
// The Store is also the reconcile engine's InstanceStore.
package instances
