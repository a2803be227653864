package core

import "time"

// Message is a posted chat message. SenderColor, SenderName and SenderShape
// are copied from the sender's profile when the message is posted.
type Message struct {
	ID          string
	Room        string
	Text        string
	SenderID    string
	SenderColor Color
	SenderName  string
	SenderShape Shape
	CreatedAt   time.Time
}
