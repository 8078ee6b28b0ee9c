// Package models defines the persisted entities shared by the reconcile engine
// and the management features.
//
// # Instance
//
// An Instance is one tracked remote service deployment. It is identified by its
// natural Key (e.g. "NA16"); the ID column is assigned by the database on first
// save and is only used to turn a later save into an update.
//
// Change detection only looks at Key and Status. Location, Environment and
// ReleaseVersion are informational and never make an instance "changed" on
// their own.
//
// # Subscriber
//
// A Subscriber is a notification recipient interested in a set of instance
// keys. The key set is stored as child rows (subscriber_servers) so that
// "who subscribes to NA16" is a plain indexed lookup.
package models
