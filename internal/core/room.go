package core

import "sync"

// DefaultRoomCapacity is the number of most recent messages a room keeps.
const DefaultRoomCapacity = 200

// Room holds the bounded, insertion-ordered message log of one channel.
type Room struct {
	Name     string
	capacity int

	mu       sync.RWMutex
	messages []Message
}

// NewRoom constructs a room with no messages.
func NewRoom(name string, capacity int) *Room {
	if capacity <= 0 {
		capacity = DefaultRoomCapacity
	}
	return &Room{
		Name:     name,
		capacity: capacity,
		messages: make([]Message, 0, 16),
	}
}

// Append adds msg and drops the oldest entries beyond capacity.
// Returns the number of evicted messages.
func (r *Room) Append(msg Message) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)
	overflow := len(r.messages) - r.capacity
	if overflow <= 0 {
		return 0
	}
	// Copy into a fresh slice so the evicted prefix can be collected.
	kept := make([]Message, r.capacity, r.capacity+1)
	copy(kept, r.messages[overflow:])
	r.messages = kept
	return overflow
}

// Messages returns a copy of every message in insertion order.
func (r *Room) Messages() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneMessages(r.messages)
}

// Since returns messages strictly after the one with the given ID.
// found is false when the ID is not in the room; the full log is returned then.
func (r *Room) Since(id string) (msgs []Message, found bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.messages {
		if r.messages[i].ID == id {
			return cloneMessages(r.messages[i+1:]), true
		}
	}
	return cloneMessages(r.messages), false
}

// Len returns the number of stored messages.
func (r *Room) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}

func cloneMessages(src []Message) []Message {
	out := make([]Message, len(src))
	copy(out, src)
	return out
}
