package core

import (
	"context"
	"strings"
	"time"

	"github.com/vovakirdan/starboard/internal/utils"
)

const (
	// DefaultRoom is used when a request names no room.
	DefaultRoom = "main"
	// AnonymousSender is used when a message carries no sender ID.
	AnonymousSender = "anonymous"
)

// Board is the message and query service over the identity and room stores.
type Board struct {
	identities  *IdentityStore
	rooms       *RoomStore
	defaultRoom string
	observer    Observer
	newID       func() string
	now         func() time.Time
}

// Option customizes a Board.
type Option func(*Board)

// WithObserver registers an activity observer.
func WithObserver(o Observer) Option {
	return func(b *Board) {
		if o != nil {
			b.observer = o
		}
	}
}

// WithDefaultRoom overrides the room used when none is given.
func WithDefaultRoom(name string) Option {
	return func(b *Board) {
		if name != "" {
			b.defaultRoom = name
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithIDGenerator overrides the message ID source.
func WithIDGenerator(gen func() string) Option {
	return func(b *Board) { b.newID = gen }
}

// NewBoard wires a board over the given stores.
func NewBoard(identities *IdentityStore, rooms *RoomStore, opts ...Option) *Board {
	b := &Board{
		identities:  identities,
		rooms:       rooms,
		defaultRoom: DefaultRoom,
		observer:    nopObserver{},
		newID:       utils.NewID,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Post appends a message from senderID to room, stamped with the sender's
// current profile. Returns ErrEmptyMessage if text is blank.
func (b *Board) Post(ctx context.Context, room, text, senderID string) (Message, error) {
	if err := ctx.Err(); err != nil {
		return Message{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	room = b.roomName(room)
	if senderID == "" {
		senderID = AnonymousSender
	}

	profile, created := b.identities.GetOrCreate(senderID)
	if created {
		b.observer.ProfileCreated()
	}

	msg := Message{
		ID:          b.newID(),
		Room:        room,
		Text:        text,
		SenderID:    senderID,
		SenderColor: profile.Color,
		SenderName:  profile.Name,
		SenderShape: profile.Shape,
		CreatedAt:   b.now(),
	}

	r, roomCreated := b.rooms.GetOrCreate(room)
	if roomCreated {
		b.observer.RoomCreated(room)
	}
	evicted := r.Append(msg)
	b.observer.MessagePosted(room, evicted)

	return msg, nil
}

// List returns the messages of room. With a non-empty since, only messages
// posted after that ID are returned; an unknown since yields the whole room.
func (b *Board) List(ctx context.Context, room, since string) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, ok := b.rooms.Get(b.roomName(room))
	if !ok {
		return []Message{}, nil
	}
	if since == "" {
		return r.Messages(), nil
	}
	msgs, _ := r.Since(since)
	return msgs, nil
}

// UpdateProfile applies update to userID's profile, creating it if needed.
func (b *Board) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}

	profile, created, err := b.identities.Upsert(userID, update)
	if err != nil {
		return Profile{}, err
	}
	if created {
		b.observer.ProfileCreated()
	}
	return profile, nil
}

// Rooms returns the names of rooms that have received messages.
func (b *Board) Rooms() []string {
	return b.rooms.Names()
}

func (b *Board) roomName(room string) string {
	if room == "" {
		return b.defaultRoom
	}
	return room
}
