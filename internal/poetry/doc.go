// Package poetry provides a wrapper around the external package
// manager's CLI. It handles the lock and export operations and the
// presence check, without depending on other internal packages.
package poetry
