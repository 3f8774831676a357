// Package version contains information on the current version of the library.
// It is split from the main package for easy use.
package version

// Current is the string representing the current version of minnow.
const Current = "0.1.0"
