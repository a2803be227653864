package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/vovakirdan/starboard/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "http://localhost:5000", "board base URL")
	user := flag.String("user", "smoke-tester", "user ID to post as")
	name := flag.String("name", "Smoke", "display name to register")
	room := flag.String("room", "main", "room name")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := &http.Client{}

	// Remember where the room was so only our message comes back.
	var before []proto.Message
	if err := getJSON(ctx, client, messagesURL(*addr, *room, ""), &before); err != nil {
		return fmt.Errorf("initial poll: %w", err)
	}
	cursor := ""
	if len(before) > 0 {
		cursor = before[len(before)-1].ID
	}

	var userResp proto.UserResponse
	if err := postJSON(ctx, client, *addr+"/user", proto.UserRequest{UserID: *user, Name: *name}, &userResp); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	fmt.Printf("Profile: name=%s color=%s shape=%s\n", userResp.UserInfo.Name, userResp.UserInfo.Color, userResp.UserInfo.Shape)

	var sendResp proto.SendResponse
	if err := postJSON(ctx, client, *addr+"/send", proto.SendRequest{Room: *room, Text: *text, SenderID: *user}, &sendResp); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	var after []proto.Message
	if err := getJSON(ctx, client, messagesURL(*addr, *room, cursor), &after); err != nil {
		return fmt.Errorf("poll: %w", err)
	}
	for _, m := range after {
		if m.SenderID == *user && m.Text == *text {
			fmt.Printf("Message: id=%s room=%s user=%s text=%q ts=%s\n", m.ID, *room, m.SenderName, m.Text, m.Timestamp)
			return nil
		}
	}
	return fmt.Errorf("posted message not found among %d polled", len(after))
}

func messagesURL(base, room, since string) string {
	q := url.Values{}
	q.Set("room", room)
	if since != "" {
		q.Set("since", since)
	}
	return base + "/messages?" + q.Encode()
}

func getJSON(ctx context.Context, client *http.Client, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return doJSON(client, req, out)
}

func postJSON(ctx context.Context, client *http.Client, target string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(client, req, out)
}

func doJSON(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp proto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("status %d: %s", resp.StatusCode, errResp.Error)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
