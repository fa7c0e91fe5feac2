package core

import (
	"log"
	"sync"
)

// Signal is an intent emitted by the key interpreter for consumers outside
// the editor. The set of signals is closed: only the types in this file
// implement it.
type Signal interface {
	Name() string
	Payload() string
	signal()
}

type Direction int

const (
	DirectionLeft Direction = iota
	DirectionDown
	DirectionUp
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}

type MoveSignal struct {
	direction Direction
}

func NewMoveSignal(d Direction) MoveSignal { return MoveSignal{direction: d} }

func (s MoveSignal) Value() Direction { return s.direction }
func (s MoveSignal) Name() string     { return "move" }
func (s MoveSignal) Payload() string  { return s.direction.String() }
func (MoveSignal) signal()            {}

// GotoNow is the goto target meaning "the current date".
const GotoNow = "now"

type GotoSignal struct {
	target string
}

func NewGotoSignal(target string) GotoSignal { return GotoSignal{target: target} }

func (s GotoSignal) Value() string   { return s.target }
func (s GotoSignal) IsNow() bool     { return s.target == GotoNow }
func (s GotoSignal) Name() string    { return "goto" }
func (s GotoSignal) Payload() string { return s.target }
func (GotoSignal) signal()           {}

type InsertSignal struct {
	text string
}

func NewInsertSignal(text string) InsertSignal { return InsertSignal{text: text} }

func (s InsertSignal) Value() string   { return s.text }
func (s InsertSignal) Name() string    { return "insert" }
func (s InsertSignal) Payload() string { return s.text }
func (InsertSignal) signal()           {}

type SearchSignal struct {
	query string
}

func NewSearchSignal(query string) SearchSignal { return SearchSignal{query: query} }

func (s SearchSignal) Value() string   { return s.query }
func (s SearchSignal) Name() string    { return "search" }
func (s SearchSignal) Payload() string { return s.query }
func (SearchSignal) signal()           {}

// Bus fans signals out to every subscriber. Publishing never blocks: a
// subscriber whose channel is full misses the signal.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Signal
	nextID int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Signal)}
}

// Subscribe registers a new subscriber with a channel buffered to size.
// The returned cancel func unregisters it and closes the channel.
func (b *Bus) Subscribe(size int) (<-chan Signal, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Signal, size)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Bus) Publish(signal Signal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log.Printf("emitting signal %s %q", signal.Name(), signal.Payload())
	for id, ch := range b.subs {
		select {
		case ch <- signal:
		default:
			log.Printf("subscriber %d is full, dropping %s signal", id, signal.Name())
		}
	}
}

func (e *editor) DispatchSignal(signal Signal) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(signal)
}
