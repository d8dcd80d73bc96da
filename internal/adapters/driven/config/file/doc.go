// Package file provides the TOML-based configuration store.
// Configuration is persisted to the local filesystem.
package file
