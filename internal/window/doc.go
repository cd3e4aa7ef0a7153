// Package window runs etch in a desktop window using Ebiten.
//
// It drives the same sketch.Controller as the terminal UI: clicking the
// grid toggles draw mode, moving the cursor over a cell paints it while
// drawing, and the ebitenui "New grid" button opens a modal text prompt
// for the column count.
package window
