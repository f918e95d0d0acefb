// Package display renders search progress and matches for the terminal.
//
// Style holds one *color.Color per output role so nothing depends on
// package-level color state. Reporter applies the verbosity rules:
//
//	event                      normal  quiet  quieter
//	directory skipped          yes     no     no
//	directory checked          yes     yes    yes
//	file skipped               yes     no     no
//	file checked, no match     yes     yes    no
//	file checked, matches      yes     yes    yes
//
// A file is reported only after it has been matched completely, since
// quieter mode needs the outcome before it can print the "Checking file"
// line.
//
// All output goes to an io.Writer so tests can capture it in a buffer.
package display
