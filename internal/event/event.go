// Package event defines the notifications a match emits to its host.
// Events are queued during a tick and drained by the host once per frame.
package event

// Type identifies the kind of event.
type Type uint8

const (
	Score           Type = iota + 1 // Value: points gained
	Kill                            // Value: kind of enemy killed (object.Kind)
	Wave                            // Value: new wave number
	BossWave                        // Value: boss wave number
	Tick                            // Value: elapsed match seconds
	HPChange                        // Value: new hp
	ShieldChange                    // Value: new shield
	SizeChange                      // Value: new ship level
	MissileCooldown                 // Ready + Value: fraction of the cooldown elapsed
	PlayerDestroyed                 // Terminal; emitted once per match
)

var typeNames = [...]string{
	Score:           "score",
	Kill:            "kill",
	Wave:            "wave",
	BossWave:        "boss_wave",
	Tick:            "tick",
	HPChange:        "hp",
	ShieldChange:    "shield",
	SizeChange:      "size",
	MissileCooldown: "missile_cooldown",
	PlayerDestroyed: "player_destroyed",
}

// String returns the wire name of the event type.
func (t Type) String() string {
	if int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return "unknown"
}

// Event is a single notification. Value carries the numeric payload for the
// type; Ready is only meaningful for MissileCooldown.
type Event struct {
	Type  Type    `msgpack:"t" json:"type"`
	Value float64 `msgpack:"v" json:"value"`
	Ready bool    `msgpack:"r,omitempty" json:"ready,omitempty"`
}

// Queue is a FIFO of events owned by one match. It is not safe for
// concurrent use; the match and its host run on the same goroutine.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Emit is shorthand for pushing an event with a value.
func (q *Queue) Emit(t Type, value float64) {
	q.events = append(q.events, Event{Type: t, Value: value})
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain appends all pending events to dst in FIFO order, empties the queue
// and returns the extended slice. Passing a reused dst[:0] avoids allocations.
func (q *Queue) Drain(dst []Event) []Event {
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	return dst
}

// Reset drops all pending events.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}
