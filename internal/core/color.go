package core

// Color is a foreground color for a screen cell, resolved by the platform
// renderer to terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlue
	ColorYellow
	ColorRed
	ColorWhite
	ColorOrange
	ColorGray
)
