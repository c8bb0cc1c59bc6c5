// Package config provides configuration loading, merging, and validation
// facilities for the resource service.
//
// Configuration is assembled from multiple sources; an earlier source wins
// for every field it sets:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
