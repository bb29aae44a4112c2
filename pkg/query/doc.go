// Package query implements the neighbor-traversal filter used internally by
// the connector pipeline stage. It is modeled as an immutable
// filter descriptor: each builder method returns a new Filter value, and a
// single Get() call performs the BFS materialization. This is a
// core-internal tool, not the polished public fluent surface a downstream
// caller-facing API would expose.
package query
