// Package config loads, merges, and validates the configuration of the
// cloud-storage client.
//
// Values are collected from three sources and merged in priority order
// (the first non-zero value for a field wins): environment variables,
// command-line flags, and an optional JSON file whose path comes from the
// first two sources.
// The merged [StructuredConfig] is then narrowed into a validated
// [ClientConfig] view consumed by the rest of the application.
package config
