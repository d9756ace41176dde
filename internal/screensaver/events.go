package screensaver

// EventKind is an input or window event a host forwards to the controller.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	KeyPress
	Scroll
	TouchStart
	Resize
	// ToggleKey is the manual start/stop key. Hosts emit it instead of
	// KeyPress for that key.
	ToggleKey
)

// ActivityKinds are the events that count as the user being present.
var ActivityKinds = []EventKind{PointerDown, PointerMove, KeyPress, Scroll, TouchStart}

var kindNames = [...]string{"pointerdown", "pointermove", "keypress", "scroll", "touchstart", "resize", "toggle"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

type listener struct {
	id int
	fn func()
}

// Events is a listener registry hosts can embed to satisfy Host.Listen.
// It is not safe for concurrent use; hosts emit from their loop goroutine.
type Events struct {
	nextID    int
	listeners map[EventKind][]listener
}

// Listen registers fn for kind and returns the function that removes it.
func (e *Events) Listen(kind EventKind, fn func()) (release func()) {
	if e.listeners == nil {
		e.listeners = make(map[EventKind][]listener)
	}
	e.nextID++
	id := e.nextID
	e.listeners[kind] = append(e.listeners[kind], listener{id: id, fn: fn})

	return func() {
		ls := e.listeners[kind]
		for i, l := range ls {
			if l.id == id {
				e.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every listener registered for kind.
func (e *Events) Emit(kind EventKind) {
	ls := e.listeners[kind]
	if len(ls) == 0 {
		return
	}
	// Listeners may release themselves while we iterate.
	snapshot := append([]listener(nil), ls...)
	for _, l := range snapshot {
		l.fn()
	}
}

// Listeners reports how many listeners are registered for kind.
func (e *Events) Listeners(kind EventKind) int {
	return len(e.listeners[kind])
}
