// Package config loads the application configuration for both binaries.
//
// Values come from three sources merged in priority order: environment
// variables, command-line flags, and an optional JSON file. The client
// binary consumes a narrowed [ClientConfig] view of the shared
// [StructuredConfig].
package config
