// Package tui bridges floating controllers into bubbletea programs.
//
// Three concerns live here:
//
//   - Binder converts controller callbacks into tea messages, so position
//     commits and open transitions flow through the program's update loop
//     instead of mutating state behind its back.
//   - Dispatcher translates tea key and mouse messages into interaction
//     events and routes them to the merged prop sets by hit-testing the
//     element rects.
//   - Overlay paints a floating view over a base view at cell offsets,
//     preserving styling on both sides.
package tui
