package httpdriver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nullforest/forestree/forestbot"
)

func TestClientSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send_message" {
			t.Fatalf("path = %s, want /send_message", r.URL.Path)
		}
		var req forestbot.SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ChatID != 7 || req.Text != "hello" {
			t.Fatalf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{"message_id": 101})
	}))
	defer srv.Close()

	c := New(srv.URL)
	id, err := c.SendMessage(t.Context(), forestbot.SendMessageRequest{ChatID: 7, Text: "hello"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if id != 101 {
		t.Fatalf("id = %d, want 101", id)
	}
}

func TestClientErrorStatusPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.SendMessage(t.Context(), forestbot.SendMessageRequest{ChatID: 1, Text: "x"}); err == nil {
		t.Fatal("expected an error on a 500 response")
	}
}
