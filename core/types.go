package core

// ObjectID identifies an interactive scene object for the session lifetime
type ObjectID int

// CursorStyle is the pointer affordance written back to the display surface
type CursorStyle string

const (
	// CursorPointer indicates the pointer is over an interactive object
	CursorPointer CursorStyle = "pointer"
	// CursorAuto is the idle affordance
	CursorAuto CursorStyle = "auto"
)
