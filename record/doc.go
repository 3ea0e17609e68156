// Package record collects finished assemblies. A Sink receives each closed
// frame; Discard only counts, Memory retains cloned frames for inspection,
// and Store persists solutions to SQLite (pure-Go driver) so runs survive
// the process.
package record
