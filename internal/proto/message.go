package proto

// SendRequest is the body of POST /send.
type SendRequest struct {
	Room     string `json:"room"`
	Text     string `json:"text"`
	SenderID string `json:"sender_id"`
}

// UserRequest is the body of POST /user. Empty optional fields are left unchanged.
type UserRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Shape  string `json:"shape"`
}

// Message is a posted message as returned by GET /messages.
type Message struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	SenderID    string `json:"sender_id"`
	SenderColor string `json:"sender_color"`
	SenderName  string `json:"sender_name"`
	SenderShape string `json:"sender_shape"`
	Timestamp   string `json:"timestamp"`
}

// Profile is a user's display identity.
type Profile struct {
	Color string `json:"color"`
	Name  string `json:"name"`
	Shape string `json:"shape"`
}

// SendResponse acknowledges a posted message.
type SendResponse struct {
	Success bool `json:"success"`
}

// UserResponse acknowledges a profile update.
type UserResponse struct {
	Success  bool    `json:"success"`
	UserInfo Profile `json:"user_info"`
}

// PaletteResponse lists the values accepted by POST /user.
type PaletteResponse struct {
	Colors []string `json:"colors"`
	Shapes []string `json:"shapes"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
