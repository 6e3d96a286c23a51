// Package config loads project configuration for the modui CLI.
//
// Configuration lives in modui.json or modui.yaml at the project root.
// All fields are optional; zero values fall back to defaults.
package config
