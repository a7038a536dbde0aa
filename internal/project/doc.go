// Package project resolves the filesystem context for a pinning run:
// the pinning directory holding the dependency manifest, the repository
// root two levels above it, and the configured output location. It
// provides the Context type consumed by every command.
package project
