// Package nej provides the command-line interface for the nej tool. It
// configures the root strip command and its subcommands (tui, config,
// blocks, etc.), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import nej "github.com/nejtool/nej/cmd/nej"
//	func main() { nej.Execute() }
package nej
