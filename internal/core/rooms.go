package core

import (
	"sort"
	"sync"
)

// RoomStore maps room names to rooms. Rooms are created on first post and
// live for the lifetime of the store.
type RoomStore struct {
	capacity int

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRoomStore constructs an empty store whose rooms keep at most capacity messages.
func NewRoomStore(capacity int) *RoomStore {
	if capacity <= 0 {
		capacity = DefaultRoomCapacity
	}
	return &RoomStore{
		capacity: capacity,
		rooms:    make(map[string]*Room),
	}
}

// Get returns the named room if it has ever received a message.
func (s *RoomStore) Get(name string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[name]
	return r, ok
}

// GetOrCreate returns the named room, creating it if needed.
// The bool reports whether the room was created.
func (s *RoomStore) GetOrCreate(name string) (*Room, bool) {
	if r, ok := s.Get(name); ok {
		return r, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.rooms[name]; ok {
		return r, false
	}
	r := NewRoom(name, s.capacity)
	s.rooms[name] = r
	return r, true
}

// Names returns the known room names sorted alphabetically.
func (s *RoomStore) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.rooms))
	for name := range s.rooms {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of rooms.
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Capacity returns the per-room message cap.
func (s *RoomStore) Capacity() int {
	return s.capacity
}
