package input

// Kind discriminates raw events.
type Kind int

const (
	KindUnknown Kind = iota
	KindKey
	KindPointer
)

// Transition is the edge a key event reports. Hosts queue only non-repeat edges.
type Transition int

const (
	KeyDown Transition = iota
	KeyUp
)

// PointerAction distinguishes pointer motion from a completed click.
type PointerAction int

const (
	PointerMove PointerAction = iota
	PointerClick
)

// MouseButton identifies the button of a click.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is the 1st-layer record emitted directly from an input device.
// Code is a DOM-style key code (e.g. "ArrowUp", "Digit1", "KeyW").
// X and Y are pixel offsets from the top-left of the drawing surface.
type Event struct {
	Kind       Kind
	Code       string
	Transition Transition
	Pointer    PointerAction
	Button     MouseButton
	X, Y       float64
}

// NewKeyEvent builds a key transition event.
func NewKeyEvent(code string, tr Transition) Event {
	return Event{
		Kind:       KindKey,
		Code:       code,
		Transition: tr,
	}
}

// NewPointerEvent builds a pointer move or click event.
func NewPointerEvent(action PointerAction, button MouseButton, x, y float64) Event {
	return Event{
		Kind:    KindPointer,
		Pointer: action,
		Button:  button,
		X:       x,
		Y:       y,
	}
}
