// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by an earlier source wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Missing optional values are then filled with defaults and the result is
// validated. The main entry points are [GetStructuredConfig] for the server
// and [GetClientConfig] for the blog API client.
package config
