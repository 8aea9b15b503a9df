package core

// Color is a semantic palette entry for a screen cell.
// Renderers decide what each entry looks like on their terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorVoid
	ColorFloor
	ColorWall
	ColorDoor
	ColorFrame
	ColorMark
	ColorHero
	ColorHeart
	ColorGoblin
	ColorText
	ColorError
	ColorHint
)
