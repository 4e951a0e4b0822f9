// Package ui implements the product shell around the scene catalog: a
// Bubble Tea application with a formula menu, a pre-launch parameter
// editor, and the live scene view whose tea.Tick loop drives the shared
// stage clock once per rendered frame.
package ui
