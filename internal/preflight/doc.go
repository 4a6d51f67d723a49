// Package preflight provides readiness checks for the paths and database
// familygarden depends on.
//
// The CLI "doctor" command runs RunAll and prints each Result. Individual
// checks are exported so other commands can reuse them.
package preflight
