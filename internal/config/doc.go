// Package config provides configuration loading, merging, and validation
// for the go-rx-api client and the fixture users server.
//
// Configuration is assembled from multiple sources. For every field the
// first source holding a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig].
package config
