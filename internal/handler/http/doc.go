// Package http implements the fixture users API.
//
// It serves the JSONPlaceholder-style routes the example client talks to,
// plus the request tracing, access logging and optional bearer token check
// applied before every handler.
package http
