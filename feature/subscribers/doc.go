// Package subscribers manages notification recipients.
//
// A registration is accepted when it has a first or last name, an email and
// at least one server key. Email is the natural key: registering an email
// again replaces the earlier registration, server list included, and keeps
// its ID.
//
// # Routes
//
//   - GET /subscribers[?server=KEY]
//   - POST /subscribers
//
// Bulk registration from a YAML file is available through ImportYAML and the
// "subscribers import" command.
package subscribers
