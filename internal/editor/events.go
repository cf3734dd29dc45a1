package editor

// Button identifies a pointer button
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is a discrete input event delivered by a frontend or a script.
// Pointer positions are in pixels, origin top-left.
type Event interface {
	isEvent()
}

// KeyDown is a key press carrying the typed character
type KeyDown struct {
	Key rune
}

// PointerDown is a button press
type PointerDown struct {
	Button Button
	X, Y   float64
}

// PointerUp is a button release
type PointerUp struct {
	Button Button
	X, Y   float64
}

// PointerMove is a pointer motion while a button is held
type PointerMove struct {
	X, Y float64
}

func (KeyDown) isEvent()     {}
func (PointerDown) isEvent() {}
func (PointerUp) isEvent()   {}
func (PointerMove) isEvent() {}
