package event

import (
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

type Listener interface {
	OnEvent(Event) error
}

// Dispatcher fans events out to listeners. Publish never blocks on a
// listener: each one owns an unbounded queue drained by its own goroutine,
// so a slow listener only delays itself.
type Dispatcher struct {
	sync.Mutex
	subscribers []*subscriber
	closed      bool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(listener Listener) {
	d.Lock()
	defer d.Unlock()
	if d.closed {
		return
	}
	for _, s := range d.subscribers {
		if s.listener == listener {
			return
		}
	}
	s := newSubscriber(listener)
	d.subscribers = append(d.subscribers, s)
	async.Async(s.run)
}

// Unsubscribe stops delivery to listener once its queued events are drained.
func (d *Dispatcher) Unsubscribe(listener Listener) {
	d.Lock()
	var removed *subscriber
	for i, s := range d.subscribers {
		if s.listener == listener {
			removed = s
			d.subscribers = append(d.subscribers[:i], d.subscribers[i+1:]...)
			break
		}
	}
	d.Unlock()
	if removed != nil {
		removed.close()
	}
}

// Publish queues events for every listener in order.
func (d *Dispatcher) Publish(events ...Event) {
	if len(events) == 0 {
		return
	}
	d.Lock()
	defer d.Unlock()
	for _, s := range d.subscribers {
		s.push(events)
	}
}

// Flush blocks until every event published so far has been handed to its
// listener.
func (d *Dispatcher) Flush() {
	d.Lock()
	subscribers := make([]*subscriber, len(d.subscribers))
	copy(subscribers, d.subscribers)
	d.Unlock()
	for _, s := range subscribers {
		s.wait()
	}
}

// Close drains and stops every listener. Later publishes are dropped.
func (d *Dispatcher) Close() {
	d.Lock()
	subscribers := d.subscribers
	d.subscribers = nil
	d.closed = true
	d.Unlock()
	for _, s := range subscribers {
		s.close()
	}
}

type subscriber struct {
	listener Listener
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []Event
	pending  int
	closed   bool
	done     chan struct{}
}

func newSubscriber(listener Listener) *subscriber {
	s := &subscriber{
		listener: listener,
		done:     make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *subscriber) push(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.queue = append(s.queue, events...)
	s.pending += len(events)
	s.cond.Broadcast()
}

func (s *subscriber) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		batch := s.queue
		s.queue = nil
		s.mu.Unlock()

		for _, e := range batch {
			s.deliver(e)
		}

		s.mu.Lock()
		s.pending -= len(batch)
		s.cond.Broadcast()
		s.mu.Unlock()
	}
}

func (s *subscriber) deliver(e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("deliver %s panic: %v\n", e.Kind(), r)
		}
	}()
	if err := s.listener.OnEvent(e); err != nil {
		log.Errorf("deliver %s failed: %v\n", e.Kind(), err)
	}
}

func (s *subscriber) wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.pending > 0 {
		s.cond.Wait()
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
	<-s.done
}
