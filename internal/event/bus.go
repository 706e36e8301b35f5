// Package event carries named events from the shell to the frontend.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/andeya/squri/internal/logger"
)

// DefaultBuffer is the queue size used by the application bus.
const DefaultBuffer = 64

var (
	ErrClosed     = errors.New("event bus closed")
	ErrBufferFull = errors.New("event buffer full")
	ErrEmptyName  = errors.New("event name is empty")
)

// Event is a named notification with a JSON payload. A payload of JSON null
// means the event carries none.
type Event struct {
	Name      string
	Payload   json.RawMessage
	EmittedAt time.Time
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// Delivery outcomes reported to an Observer.
const (
	OutcomeQueued    = "queued"
	OutcomeDropped   = "dropped"
	OutcomeDelivered = "delivered"
	OutcomePanicked  = "panicked"
)

// Observer is told what happened to each event.
type Observer interface {
	ObserveEvent(name, outcome string)
}

// Listener receives events it subscribed to.
type Listener func(Event)

type subscription struct {
	id uint64
	fn Listener
}

// Bus delivers events in emission order from a single worker goroutine.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]subscription
	nextID    uint64
	observer  Observer

	queue     chan Event
	closeOnce sync.Once
	closed    chan struct{}
	done      chan struct{}

	log zerolog.Logger
}

// New starts a bus with room for buffer queued events.
func New(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}
	b := &Bus{
		listeners: make(map[string][]subscription),
		queue:     make(chan Event, buffer),
		closed:    make(chan struct{}),
		done:      make(chan struct{}),
		log:       logger.For("event"),
	}
	go b.run()
	return b
}

// SetObserver installs o. A nil o removes it.
func (b *Bus) SetObserver(o Observer) {
	b.mu.Lock()
	b.observer = o
	b.mu.Unlock()
}

func (b *Bus) observe(o Observer, name, outcome string) {
	if o != nil {
		o.ObserveEvent(name, outcome)
	}
}

// Emit queues an event without blocking. A nil payload is sent as null.
func (b *Bus) Emit(name string, payload any) error {
	if name == "" {
		return ErrEmptyName
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", name, err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	select {
	case <-b.closed:
		return ErrClosed
	default:
	}

	ev := Event{Name: name, Payload: raw, EmittedAt: time.Now()}
	select {
	case b.queue <- ev:
		b.observe(b.observer, name, OutcomeQueued)
		return nil
	default:
		b.observe(b.observer, name, OutcomeDropped)
		return fmt.Errorf("%w: %s", ErrBufferFull, name)
	}
}

// Listen subscribes fn to events called name. The returned function removes
// the subscription and is safe to call more than once.
func (b *Bus) Listen(name string, fn Listener) (unlisten func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners[name] = append(b.listeners[name], subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.listeners[name]
		for i, s := range subs {
			if s.id == id {
				b.listeners[name] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
		if len(b.listeners[name]) == 0 {
			delete(b.listeners, name)
		}
	}
}

// Close stops accepting events, delivers what is already queued and waits
// for the worker to finish.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		close(b.closed)
		close(b.queue)
		b.mu.Unlock()
	})
	<-b.done
}

func (b *Bus) run() {
	defer close(b.done)
	for ev := range b.queue {
		b.deliver(ev)
	}
}

func (b *Bus) deliver(ev Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.listeners[ev.Name]))
	copy(subs, b.listeners[ev.Name])
	observer := b.observer
	b.mu.RUnlock()

	if len(subs) == 0 {
		b.log.Debug().Str("event", ev.Name).Msg("no listeners")
		return
	}
	for _, s := range subs {
		if b.call(s.fn, ev) {
			b.observe(observer, ev.Name, OutcomeDelivered)
		} else {
			b.observe(observer, ev.Name, OutcomePanicked)
		}
	}
}

func (b *Bus) call(fn Listener, ev Event) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Str("event", ev.Name).Interface("panic", r).Msg("listener panicked")
			ok = false
		}
	}()
	fn(ev)
	return true
}
