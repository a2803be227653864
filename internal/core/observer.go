package core

// Observer receives notifications about board activity.
// Implementations must be safe for concurrent use.
type Observer interface {
	// MessagePosted is called after a message was appended to room.
	// evicted is the number of old messages dropped to respect the cap.
	MessagePosted(room string, evicted int)

	// ProfileCreated is called when a user ID is seen for the first time.
	ProfileCreated()

	// RoomCreated is called when a room receives its first message.
	RoomCreated(room string)
}

type nopObserver struct{}

func (nopObserver) MessagePosted(string, int) {}
func (nopObserver) ProfileCreated()           {}
func (nopObserver) RoomCreated(string)        {}
