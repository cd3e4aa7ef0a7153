// Package app provides the Bubble Tea application model for etch.
//
// It translates key presses and mouse events into calls on the shared
// sketch.Controller: clicks on the grid toggle draw mode, pointer motion
// over a cell paints it while drawing, and the new grid button (or its key)
// opens the modal column prompt.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
