// Package tui implements the polaroid gallery as a terminal user
// interface.
//
// Built with Charmbracelet's BubbleTea, Lipgloss and Bubbles.
//
// Component architecture:
//
//	model.go    root model, message routing, Init/Update/View
//	keys.go     key bindings and the footer hint set
//	styles.go   styles derived from the active theme
//	header.go   title, pulsing banner, footer bar
//	sky.go      ambient decorations (confetti, glyphs, balloons)
//	board.go    string geometry, hit testing, board rendering
//	card.go     a single polaroid
//	lightbox.go full-screen overlay for the selected photo
//	images.go   thumbnail and full-size image loading
//	helpers.go  colour blending, clamping, truncation
package tui
