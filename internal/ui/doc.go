// Package ui provides rendering functions for the etch terminal UI.
//
// Render takes RenderParams and produces the terminal output. Layout
// computes the same geometry so mouse coordinates can be mapped back to
// cells and the new grid button. Rendering is pure and separated from
// state management.
package ui
