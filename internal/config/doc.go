// Package config provides configuration loading, merging, and validation
// facilities for otptray.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later ones):
//  1. Environment variables prefixed with OTPTRAY_
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
