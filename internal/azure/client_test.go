package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSend_RequestShape(t *testing.T) {
	var calls atomic.Int32
	var gotPath, gotQuery, gotKey, gotContentType string
	var gotBody ChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("api-key")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	client := NewClient()
	req := NewChatRequest("be helpful", "hello", DefaultParams())
	if _, err := client.Send(context.Background(), srv.URL, "gpt4-deploy", "sk-test", req); err != nil {
		t.Fatal(err)
	}

	if n := calls.Load(); n != 1 {
		t.Errorf("server saw %d requests, want exactly 1", n)
	}
	if gotPath != "/openai/deployments/gpt4-deploy/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "api-version=2024-02-15-preview" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotKey != "sk-test" {
		t.Errorf("api-key header = %q, want %q", gotKey, "sk-test")
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if len(gotBody.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" {
		t.Errorf("messages[0].role = %q, want system", gotBody.Messages[0].Role)
	}
	if gotBody.Messages[1].Role != "user" {
		t.Errorf("messages[1].role = %q, want user", gotBody.Messages[1].Role)
	}
	if gotBody.Messages[1].Content[0].Text != "hello" {
		t.Errorf("messages[1].content[0].text = %q, want hello", gotBody.Messages[1].Content[0].Text)
	}
	if gotBody.Messages[1].Content[0].Type != "text" {
		t.Errorf("content type field = %q, want text", gotBody.Messages[1].Content[0].Type)
	}
}

func TestSend_ReturnsBodyOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"500","message":"boom"}}`))
	}))
	defer srv.Close()

	client := NewClient()
	body, err := client.Send(context.Background(), srv.URL, "d", "k", NewChatRequest("s", "u", DefaultParams()))
	if err != nil {
		t.Fatalf("non-2xx status should not be a transport error, got %v", err)
	}
	if string(body) != `{"error":{"code":"500","message":"boom"}}` {
		t.Errorf("body = %s", body)
	}
}

func TestSend_TransportFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient()
	if _, err := client.Send(context.Background(), srv.URL, "d", "k", NewChatRequest("s", "u", DefaultParams())); err == nil {
		t.Fatal("expected error against closed server")
	}
}

func TestNewChatRequest_FixedParameters(t *testing.T) {
	req := NewChatRequest("sys", "in", DefaultParams())
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
	if req.TopP != 0.95 {
		t.Errorf("top_p = %v, want 0.95", req.TopP)
	}
	if req.MaxTokens != 16384 {
		t.Errorf("max_tokens = %v, want 16384", req.MaxTokens)
	}
	if req.Messages[0].Content[0].Text != "sys" || req.Messages[1].Content[0].Text != "in" {
		t.Errorf("message text = %+v", req.Messages)
	}
}
