// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains payload decoding for the command line and
// small output helpers.
package lib
