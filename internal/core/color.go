package core

// Color names what a screen cell shows. Frontends map each role to a
// terminal color of their own.
type Color uint8

const (
	ColorDefault   Color = iota
	ColorPipe            // Obstacles
	ColorGround          // Scrolling ground strip
	ColorBall            // The ball and its off-screen marker
	ColorTitle           // Title and live score
	ColorText            // Prompts and final score
	ColorAlert           // Game over banner
	ColorHighScore       // Best score of the process
)
