// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains the JSON codec plugged into Echo and small shared helpers.
package lib
