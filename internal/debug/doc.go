// Package debug provides an optional file logger for etch.
//
// When enabled via the --debug flag, it records mode transitions, grid
// builds and prompt outcomes so odd interaction sequences can be replayed
// by reading the log.
package debug
