// Package cli implements the interactive terminal client for the animal
// catalog: a small REPL that registers, logs in and browses or edits the
// catalog through the REST API.
package cli
