// Package runtime provides the execution context for review-wizard commands.
//
// It resolves the configuration (file, environment, then command-line
// overrides) and builds the shared dependencies every command needs: the
// logger and the backend client.
package runtime
