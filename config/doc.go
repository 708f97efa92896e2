// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Environment variables override the file for the knobs that differ per
// deployment (port, feed URLs, Redis address).
package config
