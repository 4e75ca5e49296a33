// Package main hosts the fillercount CLI entrypoint and command graph.
//
// The root command takes one or more NAME[:LOWER[:UPPER]] arguments, counts
// filler and canon episodes for each show, and renders the results as text,
// a table, or JSON. Configuration is resolved lazily so that scaffolding
// commands such as `config init` work before a config file exists.
//
// Counting, fetching, and parsing live in the internal packages; this package
// only wires them together and formats what they return.
package main
