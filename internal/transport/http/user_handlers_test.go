package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/starboard/internal/proto"
)

func TestUpdateUserValidation(t *testing.T) {
	s := newTestServer(t, 0)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing user id", body: `{"name":"alice"}`, want: "No user ID"},
		{name: "invalid color", body: `{"user_id":"u1","color":"#000000"}`, want: "Invalid color"},
		{name: "invalid shape", body: `{"user_id":"u1","shape":"star"}`, want: "Invalid shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.do(t, http.MethodPost, "/user", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, tt.want, decode[proto.ErrorResponse](t, resp).Error)
		})
	}

	// None of the rejected requests registered a profile, so u2 is the first.
	resp := s.do(t, http.MethodPost, "/user", `{"user_id":"u2"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "User1", decode[proto.UserResponse](t, resp).UserInfo.Name)
}

func TestUpdateUserMergesFields(t *testing.T) {
	s := newTestServer(t, 0)

	resp := s.do(t, http.MethodPost, "/user", proto.UserRequest{UserID: "u1", Name: "alice"})
	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[proto.UserResponse](t, resp)
	assert.True(t, got.Success)
	assert.Equal(t, proto.Profile{Color: "#1a73e8", Name: "alice", Shape: "square"}, got.UserInfo)

	resp = s.do(t, http.MethodPost, "/user", proto.UserRequest{UserID: "u1", Color: "#9b59b6"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, proto.Profile{Color: "#9b59b6", Name: "alice", Shape: "square"}, decode[proto.UserResponse](t, resp).UserInfo)
}

func TestUpdateUserAffectsOnlyLaterMessages(t *testing.T) {
	s := newTestServer(t, 0)

	s.do(t, http.MethodPost, "/send", proto.SendRequest{Text: "before", SenderID: "u1"})
	s.do(t, http.MethodPost, "/user", proto.UserRequest{UserID: "u1", Name: "alice", Shape: "circle"})
	s.do(t, http.MethodPost, "/send", proto.SendRequest{Text: "after", SenderID: "u1"})

	msgs := decode[[]proto.Message](t, s.do(t, http.MethodGet, "/messages", nil))
	require.Len(t, msgs, 2)
	assert.Equal(t, "User1", msgs[0].SenderName)
	assert.Equal(t, "square", msgs[0].SenderShape)
	assert.Equal(t, "alice", msgs[1].SenderName)
	assert.Equal(t, "circle", msgs[1].SenderShape)
}
