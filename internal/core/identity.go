package core

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// MaxNameLength caps display names, counted in runes.
const MaxNameLength = 20

// Profile is the display identity attached to a client-chosen ID.
type Profile struct {
	Color Color
	Name  string
	Shape Shape
}

// ProfileUpdate carries optional changes to a profile. Empty strings mean
// "leave unchanged"; Color and Shape are parsed against the palette.
type ProfileUpdate struct {
	Name  string
	Color string
	Shape string
}

// IdentityStore maps user IDs to profiles.
// A single lock guards the map since defaults depend on the registrant count.
type IdentityStore struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

// NewIdentityStore constructs an empty identity store.
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		profiles: make(map[string]*Profile),
	}
}

// GetOrCreate returns the profile for userID, creating defaults if unknown.
// The bool reports whether a profile was created.
func (s *IdentityStore) GetOrCreate(userID string) (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.profiles[userID]; ok {
		return *p, false
	}
	p := s.defaultProfileLocked()
	s.profiles[userID] = &p
	return p, true
}

// Upsert validates update and applies it to userID's profile, creating the
// profile if needed. Nothing is mutated when validation fails.
// The bool reports whether a profile was created.
func (s *IdentityStore) Upsert(userID string, update ProfileUpdate) (Profile, bool, error) {
	if userID == "" {
		return Profile{}, false, ErrNoUserID
	}

	var (
		color    Color
		shape    Shape
		hasColor = update.Color != ""
		hasShape = update.Shape != ""
		err      error
	)
	if hasColor {
		if color, err = ParseColor(update.Color); err != nil {
			return Profile{}, false, err
		}
	}
	if hasShape {
		if shape, err = ParseShape(update.Shape); err != nil {
			return Profile{}, false, err
		}
	}
	name := normalizeName(update.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.profiles[userID]
	if !exists {
		def := s.defaultProfileLocked()
		p = &def
		s.profiles[userID] = p
	}
	if name != "" {
		p.Name = name
	}
	if hasColor {
		p.Color = color
	}
	if hasShape {
		p.Shape = shape
	}
	return *p, !exists, nil
}

// Get returns the profile for userID if one exists.
func (s *IdentityStore) Get(userID string) (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return Profile{}, false
	}
	return *p, true
}

// Len returns the number of known profiles.
func (s *IdentityStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}

func (s *IdentityStore) defaultProfileLocked() Profile {
	n := len(s.profiles)
	return Profile{
		Color: DefaultColor(n),
		Name:  "User" + strconv.Itoa(n+1),
		Shape: ShapeSquare,
	}
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	runes := []rune(name)
	return string(runes[:MaxNameLength])
}
