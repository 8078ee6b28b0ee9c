// Package notifier exposes the reconcile engine over the management API.
//
//   - POST /notifier/run runs one cycle and answers with its summary: 200 on
//     success, 409 while another cycle runs, 502 when the remote fetch failed.
//   - GET /notifier/status reports the last summary and the next scheduled run.
package notifier
