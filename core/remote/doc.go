// Package remote fetches the authoritative instance list from the status
// endpoint.
//
// The endpoint answers GET with a JSON array:
//
//	[{"key":"NA16","location":"NA","environment":"production","releaseVersion":"Summer '26","status":"OK"}]
//
// Unknown fields are ignored. A non-2xx status, a transport error, an
// oversized body or a payload that is not an array of objects fails the
// fetch; the engine then aborts the cycle without touching the store.
package remote
