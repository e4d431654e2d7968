package event

import "sync"

// DummyListener records everything it receives. Tests use it in place of a
// connected player.
type DummyListener struct {
	sync.Mutex
	received []Event
	err      error
}

func NewDummyListener() *DummyListener {
	return &DummyListener{received: make([]Event, 0)}
}

func (l *DummyListener) OnEvent(e Event) error {
	l.Lock()
	defer l.Unlock()
	l.received = append(l.received, e)
	return l.err
}

// FailWith makes every later OnEvent return err after recording the event.
func (l *DummyListener) FailWith(err error) {
	l.Lock()
	defer l.Unlock()
	l.err = err
}

func (l *DummyListener) Received() []Event {
	l.Lock()
	defer l.Unlock()
	received := make([]Event, len(l.received))
	copy(received, l.received)
	return received
}

func (l *DummyListener) Kinds() []Kind {
	l.Lock()
	defer l.Unlock()
	kinds := make([]Kind, 0, len(l.received))
	for _, e := range l.received {
		kinds = append(kinds, e.Kind())
	}
	return kinds
}

func (l *DummyListener) Reset() {
	l.Lock()
	defer l.Unlock()
	l.received = l.received[:0]
}
