// Package requirements handles parsing, filtering and writing of
// requirements-format pin lists. The generated file carries a
// provenance header followed by the export tool's lines verbatim, with
// locally-published packages stripped.
package requirements
