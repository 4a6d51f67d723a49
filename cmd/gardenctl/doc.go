// Package main hosts the gardenctl CLI entrypoint and command graph.
//
// The Cobra command tree checks and parses GEDCOM files, previews duplicate
// detection against the local family tree, commits imports and lists what
// earlier imports stored. Configuration resolution, logger setup and store
// access live in the command context so subcommands only deal with
// presentation.
package main
